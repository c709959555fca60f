package weapon

import (
	"fmt"
	"sort"
)

// Params gives a factory access to the stored configuration of one action.
// *yaml.Node satisfies it.
type Params interface {
	Decode(v any) error
}

// Factory builds an Action from its stored params.
type Factory func(params Params) (Action, error)

// Registry maps stable type tags to factories.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: map[string]Factory{}}
}

// Register adds a factory for tag. Registering the same tag twice or a nil
// factory is a programming error and panics.
func (r *Registry) Register(tag string, f Factory) {
	if f == nil {
		panic("weapon: Register factory is nil for " + tag)
	}
	if _, dup := r.factories[tag]; dup {
		panic("weapon: Register called twice for action " + tag)
	}
	r.factories[tag] = f
}

// Build constructs the action registered under tag.
func (r *Registry) Build(tag string, params Params) (Action, error) {
	f, ok := r.factories[tag]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownAction, tag)
	}
	a, err := f(params)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", tag, err)
	}
	if a == nil {
		return nil, fmt.Errorf("build %s: %w", tag, ErrNilAction)
	}
	return a, nil
}

// Has reports whether tag is registered.
func (r *Registry) Has(tag string) bool {
	_, ok := r.factories[tag]
	return ok
}

// Tags returns the registered tags sorted.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.factories))
	for tag := range r.factories {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
