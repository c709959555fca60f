package components

import (
	"github.com/automoto/doomerang-arsenal/input"
	"github.com/yohamta/donburi"
)

// MaxActions bounds the logical action arrays. config.ActionCount must not
// exceed it; systems/input.go asserts this at compile time.
const MaxActions = 16

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for all
// actions. JustPressed/JustReleased are computed by comparing frames.
type InputData struct {
	Current         [MaxActions]bool
	Previous        [MaxActions]bool
	LastInputMethod InputMethod
}

// JustPressed reports a rising edge for action.
func (d *InputData) JustPressed(action int) bool {
	return action >= 0 && action < MaxActions && d.Current[action] && !d.Previous[action]
}

// JustReleased reports a falling edge for action.
func (d *InputData) JustReleased(action int) bool {
	return action >= 0 && action < MaxActions && !d.Current[action] && d.Previous[action]
}

// Held reports whether action is down this frame.
func (d *InputData) Held(action int) bool {
	return action >= 0 && action < MaxActions && d.Current[action]
}

var Input = donburi.NewComponentType[InputData]()

// PlayerInputData is the per-player input state plus the weapon sources the
// player's actions feed.
type PlayerInputData struct {
	PlayerIndex int
	InputData
	Sources *input.Map
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
