package weapon

// Action is a behavior unit run by a binding. Execute must not block: an
// action that lasts several frames schedules its own work (spawns an entity,
// registers a timer) and returns. Returned errors and panics are contained by
// the dispatcher and never reach the caller of the input event.
type Action interface {
	Execute(ctx Context, binding *InputBinding, action *ActionBinding) error
}

// ActionFunc adapts a plain function to Action.
type ActionFunc func(ctx Context, binding *InputBinding, action *ActionBinding) error

func (f ActionFunc) Execute(ctx Context, binding *InputBinding, action *ActionBinding) error {
	return f(ctx, binding, action)
}

// Cloner is implemented by actions that keep per-instance state. Definition
// Clone calls it so equipped copies never share that state.
type Cloner interface {
	CloneAction() Action
}

// Anchor is a spatial attachment point, usually a hand.
type Anchor struct {
	X, Y       float64
	DirX, DirY float64 // facing, unit length
}

// Animator receives animation triggers from actions.
type Animator interface {
	Trigger(name string)
}

// ChargeDisplay shows the progress of a charge binding.
type ChargeDisplay interface {
	Reset()
	Show()
	SetPercent(p float64) // p in [0, 1]
	Hide()
}

// Context bundles what actions need from the host. The core passes it through
// to actions and only uses ChargeDisplay itself.
type Context interface {
	Anchor(hand Hand) (Anchor, bool)
	Owner() any
	// Animator may return nil.
	Animator() Animator
	// ChargeDisplay may return nil.
	ChargeDisplay(hand Hand) ChargeDisplay
}
