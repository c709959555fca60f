package weapon

import "errors"

var (
	// ErrNilDefinition is the only fatal setup error.
	ErrNilDefinition = errors.New("weapon: nil definition")
	ErrAlreadySetup  = errors.New("weapon: runtime already set up")

	ErrUnknownMode   = errors.New("unknown binding mode")
	ErrUnknownHand   = errors.New("unknown hand")
	ErrMissingSource = errors.New("missing input source")
	ErrNoActions     = errors.New("no actions bound")
	ErrBadTickRate   = errors.New("on_tick requires tick_rate > 0")
	ErrBadTiming     = errors.New("invalid timing")
	ErrNilAction     = errors.New("action not built")
	ErrUnknownAction = errors.New("unknown action type")
)
