package weapon

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Mode selects how a binding turns raw input signals into phases.
type Mode string

const (
	// ModePress fires on_perform when the input is performed.
	ModePress Mode = "press"
	// ModeCharge fires on_perform on release once the hold time is reached.
	ModeCharge Mode = "charge"
	// ModeContinuous fires on_start, repeats on_tick while held, then on_cancel.
	ModeContinuous Mode = "continuous"
	// ModeRelease fires on_perform once per press cycle, on release.
	ModeRelease Mode = "release"
)

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool {
	switch m {
	case ModePress, ModeCharge, ModeContinuous, ModeRelease:
		return true
	}
	return false
}

// Phase is the lifecycle moment at which an action fires.
type Phase string

const (
	PhaseOnStart   Phase = "on_start"
	PhaseOnPerform Phase = "on_perform"
	PhaseOnCancel  Phase = "on_cancel"
	PhaseOnTick    Phase = "on_tick"
)

// Valid reports whether p is one of the known phases.
func (p Phase) Valid() bool {
	switch p {
	case PhaseOnStart, PhaseOnPerform, PhaseOnCancel, PhaseOnTick:
		return true
	}
	return false
}

// Hand tags which anchor point(s) a binding's actions use.
type Hand string

const (
	HandRight Hand = "right"
	HandLeft  Hand = "left"
	HandBoth  Hand = "both"
)

// Valid reports whether h is a known hand. Empty is valid and means right.
func (h Hand) Valid() bool {
	switch h {
	case "", HandRight, HandLeft, HandBoth:
		return true
	}
	return false
}

// ActionBinding pairs one action with the phase that triggers it.
type ActionBinding struct {
	Phase Phase `yaml:"phase"`
	// TickRate is the delay in seconds between on_tick executions.
	TickRate float64 `yaml:"tick_rate"`
	// Type is the registry tag the action was built from.
	Type   string    `yaml:"type"`
	Params yaml.Node `yaml:"params"`

	Action Action `yaml:"-"`
}

// InputBinding maps one input source to a set of phase-tagged actions.
type InputBinding struct {
	Name     string          `yaml:"name"`
	Mode     Mode            `yaml:"mode"`
	Input    string          `yaml:"input"`
	Hand     Hand            `yaml:"hand"`
	HoldTime float64         `yaml:"hold_time"` // seconds
	Cooldown float64         `yaml:"cooldown"`  // seconds
	Actions  []ActionBinding `yaml:"actions"`
}

// Definition is a weapon template. It is shared read-only between equipped
// copies; Runtime.Setup works on a Clone.
type Definition struct {
	Name     string         `yaml:"name"`
	Bindings []InputBinding `yaml:"bindings"`
}

// Clone returns a deep copy of the definition. Actions implementing Cloner
// are cloned, all others are shared.
func (d *Definition) Clone() *Definition {
	if d == nil {
		return nil
	}
	out := &Definition{Name: d.Name, Bindings: make([]InputBinding, len(d.Bindings))}
	for i, b := range d.Bindings {
		cp := b
		cp.Actions = make([]ActionBinding, len(b.Actions))
		for j, ab := range b.Actions {
			if c, ok := ab.Action.(Cloner); ok {
				ab.Action = c.CloneAction()
			}
			cp.Actions[j] = ab
		}
		out.Bindings[i] = cp
	}
	return out
}

// Label identifies the binding in logs.
func (b *InputBinding) Label(index int) string {
	if b.Name != "" {
		return fmt.Sprintf("%s[%d]", b.Name, index)
	}
	return fmt.Sprintf("%s:%s[%d]", b.Mode, b.Input, index)
}

// Count returns how many actions are bound to phase.
func (b *InputBinding) Count(phase Phase) int {
	n := 0
	for i := range b.Actions {
		if b.Actions[i].Phase == phase {
			n++
		}
	}
	return n
}

// Check reports the configuration problems that prevent the binding from
// being set up. It does not look at input sources.
func (b *InputBinding) Check() error {
	var errs []error
	if !b.Mode.Valid() {
		errs = append(errs, fmt.Errorf("%w %q", ErrUnknownMode, b.Mode))
	}
	if !b.Hand.Valid() {
		errs = append(errs, fmt.Errorf("%w %q", ErrUnknownHand, b.Hand))
	}
	if b.Input == "" {
		errs = append(errs, fmt.Errorf("%w: no input configured", ErrMissingSource))
	}
	if b.HoldTime < 0 || b.Cooldown < 0 {
		errs = append(errs, fmt.Errorf("%w: hold_time and cooldown must be >= 0", ErrBadTiming))
	}
	for i := range b.Actions {
		ab := &b.Actions[i]
		if !ab.Phase.Valid() {
			errs = append(errs, fmt.Errorf("action %d: unknown phase %q", i, ab.Phase))
		}
		if ab.Action == nil {
			errs = append(errs, fmt.Errorf("action %d (%s): %w", i, ab.Type, ErrNilAction))
		}
		if ab.Phase == PhaseOnTick && ab.TickRate <= 0 {
			errs = append(errs, fmt.Errorf("action %d (%s): %w", i, ab.Type, ErrBadTickRate))
		}
	}
	switch b.Mode {
	case ModePress, ModeCharge, ModeRelease:
		if b.Count(PhaseOnPerform) == 0 {
			errs = append(errs, fmt.Errorf("%w for %s", ErrNoActions, PhaseOnPerform))
		}
	case ModeContinuous:
		if b.Count(PhaseOnStart)+b.Count(PhaseOnTick)+b.Count(PhaseOnCancel) == 0 {
			errs = append(errs, fmt.Errorf("%w for continuous phases", ErrNoActions))
		}
	}
	return errors.Join(errs...)
}

// Validate collects the problems of every binding.
func (d *Definition) Validate() error {
	if d == nil {
		return ErrNilDefinition
	}
	var errs []error
	if d.Name == "" {
		errs = append(errs, errors.New("name must not be empty"))
	}
	for i := range d.Bindings {
		if err := d.Bindings[i].Check(); err != nil {
			errs = append(errs, fmt.Errorf("binding %s: %w", d.Bindings[i].Label(i), err))
		}
	}
	return errors.Join(errs...)
}
