package weapon

import (
	"fmt"
	"log"
	"time"

	"github.com/automoto/doomerang-arsenal/input"
	"github.com/google/uuid"
)

// Sources resolves input source ids. *input.Map satisfies it.
type Sources interface {
	Source(id string) (*input.Source, bool)
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithLogger routes configuration and action fault logs to l.
func WithLogger(l *log.Logger) Option {
	return func(r *Runtime) {
		if l != nil {
			r.logger = l
		}
	}
}

// Runtime owns the binding states of one equipped weapon.
type Runtime struct {
	id      string
	clock   Clock
	sources Sources
	logger  *log.Logger

	def     *Definition
	ctx     Context
	states  []*bindingState
	active  bool
	enabled bool
}

// NewRuntime creates an idle runtime. clock must be the same clock the host
// advances every frame.
func NewRuntime(clock Clock, sources Sources, opts ...Option) *Runtime {
	if clock == nil {
		clock = &FrameClock{}
	}
	r := &Runtime{
		id:      uuid.NewString(),
		clock:   clock,
		sources: sources,
		logger:  log.Default(),
		enabled: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Setup clones def and subscribes a state for every valid binding. A binding
// with a configuration problem is logged and skipped; only a nil definition
// fails the whole setup.
func (r *Runtime) Setup(def *Definition, ctx Context) error {
	if def == nil {
		return ErrNilDefinition
	}
	if r.active {
		return ErrAlreadySetup
	}
	r.def = def.Clone()
	r.ctx = ctx
	r.active = true
	// A runtime disabled before its last Teardown starts fresh
	r.enabled = true
	for i := range r.def.Bindings {
		b := &r.def.Bindings[i]
		if b.Hand == "" {
			b.Hand = HandRight
		}
		src, err := r.resolve(b)
		if err != nil {
			r.logger.Printf("Warning: weapon %s: skipping binding %s: %v", r.label(), b.Label(i), err)
			continue
		}
		s := newBindingState(r, i, b, src)
		s.subscribe()
		r.states = append(r.states, s)
	}
	return nil
}

func (r *Runtime) resolve(b *InputBinding) (*input.Source, error) {
	if err := b.Check(); err != nil {
		return nil, err
	}
	if r.sources == nil {
		return nil, fmt.Errorf("%w %q", ErrMissingSource, b.Input)
	}
	src, ok := r.sources.Source(b.Input)
	if !ok || src == nil {
		return nil, fmt.Errorf("%w %q", ErrMissingSource, b.Input)
	}
	return src, nil
}

// Tick resumes every state's charge task then its tick tasks, in binding
// declaration order. Call once per frame after input has been delivered.
func (r *Runtime) Tick() {
	if !r.active || !r.enabled {
		return
	}
	now := r.clock.Now()
	for _, s := range r.states {
		if !r.active {
			return
		}
		s.resume(now)
	}
}

// Teardown unsubscribes and stops everything. Safe to call repeatedly.
func (r *Runtime) Teardown() {
	if !r.active {
		return
	}
	r.active = false
	for _, s := range r.states {
		s.teardown()
	}
	r.states = nil
	r.ctx = nil
}

// SetEnabled suspends or resumes the runtime without unsubscribing. Disabling
// drops active holds and stops tasks without firing any phase.
func (r *Runtime) SetEnabled(enabled bool) {
	if r.enabled == enabled {
		return
	}
	r.enabled = enabled
	if enabled {
		return
	}
	for _, s := range r.states {
		s.suspend()
	}
}

// Enabled reports whether the runtime reacts to input.
func (r *Runtime) Enabled() bool { return r.enabled }

// Active reports whether Setup ran and Teardown has not.
func (r *Runtime) Active() bool { return r.active }

// ID returns the runtime's unique id.
func (r *Runtime) ID() string { return r.id }

// Name returns the equipped weapon's name, or "" before Setup.
func (r *Runtime) Name() string {
	if r.def == nil {
		return ""
	}
	return r.def.Name
}

func (r *Runtime) label() string {
	return fmt.Sprintf("%s/%.8s", r.Name(), r.id)
}

// ExecutePhase forces the actions of a set-up binding for phase, bypassing
// the mode logic and cooldown. binding is the index in the definition. It
// returns the number of actions that completed without fault.
func (r *Runtime) ExecutePhase(binding int, phase Phase) int {
	if !r.active {
		return 0
	}
	for _, s := range r.states {
		if s.index == binding {
			return r.executePhase(s, phase)
		}
	}
	return 0
}

// BindingStatus is a read-only snapshot of one set-up binding.
type BindingStatus struct {
	Index       int
	Name        string
	Mode        Mode
	Input       string
	Hand        Hand
	Phase       string
	Holding     bool
	Charge      float64
	ChargeTask  bool
	TickTasks   int
	Triggered   bool
	LastTrigger time.Duration
}

// Bindings returns the status of every binding that was set up.
func (r *Runtime) Bindings() []BindingStatus {
	out := make([]BindingStatus, 0, len(r.states))
	for _, s := range r.states {
		ticks := 0
		for _, t := range s.ticks {
			if t.alive() {
				ticks++
			}
		}
		out = append(out, BindingStatus{
			Index:       s.index,
			Name:        s.binding.Name,
			Mode:        s.binding.Mode,
			Input:       s.binding.Input,
			Hand:        s.binding.Hand,
			Phase:       s.phase.Current(),
			Holding:     s.holding(),
			Charge:      s.percent,
			ChargeTask:  s.charge.alive(),
			TickTasks:   ticks,
			Triggered:   s.triggered,
			LastTrigger: s.lastTrigger,
		})
	}
	return out
}

// ActiveTasks counts the live charge and tick tasks.
func (r *Runtime) ActiveTasks() int {
	n := 0
	for _, s := range r.states {
		n += s.tasks()
	}
	return n
}
