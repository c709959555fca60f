package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionPrimary
	ActionSecondary
	ActionAbility
	ActionMelee
	ActionSwitchWeapon
	ActionPause
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// WeaponSources names the weapon input source each action feeds.
	// Weapon definitions refer to these ids in their "input" field.
	WeaponSources map[ActionID]string
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		WeaponSources: map[ActionID]string{
			ActionPrimary:   "primary",
			ActionSecondary: "secondary",
			ActionAbility:   "ability",
			ActionMelee:     "melee",
		},
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionPrimary: {
				Keys: []ebiten.Key{ebiten.KeyJ, ebiten.KeyZ},
				// Right trigger
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomRight,
				},
			},
			ActionSecondary: {
				Keys: []ebiten.Key{ebiten.KeyK, ebiten.KeyX},
				// Left trigger
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontBottomLeft,
				},
			},
			ActionAbility: {
				Keys: []ebiten.Key{ebiten.KeyL, ebiten.KeyC},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionMelee: {
				Keys: []ebiten.Key{ebiten.KeyF, ebiten.KeyV},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionSwitchWeapon: {
				Keys: []ebiten.Key{ebiten.KeyQ, ebiten.KeyTab},
				// Right bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
}
