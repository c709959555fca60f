package systems

import (
	"github.com/automoto/doomerang-arsenal/components"
	cfg "github.com/automoto/doomerang-arsenal/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InputData arrays are sized by components.MaxActions.
var _ [components.MaxActions - int(cfg.ActionCount)]struct{}

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the Input component.
// Must run BEFORE UpdatePause and UpdatePlayerInput in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [components.MaxActions]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
	}

	// Merge analog stick into movement
	left, right := getAnalogStickState(gamepadIDs)
	if left {
		input.Current[cfg.ActionMoveLeft] = true
		gamepadUsed = true
	}
	if right {
		input.Current[cfg.ActionMoveRight] = true
		gamepadUsed = true
	}

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getAnalogStickState reads the left stick's horizontal axis from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right bool) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
	}
	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// UpdatePlayerInput copies the merged device state to each player and feeds
// the edges of the weapon actions to the player's input sources. Weapon
// runtimes react synchronously, so this must run after UpdateWeaponClock.
func UpdatePlayerInput(ecs *ecs.ECS) {
	global := getOrCreateInput(ecs)

	components.PlayerInput.Each(ecs.World, func(entry *donburi.Entry) {
		pi := components.PlayerInput.Get(entry)
		pi.Previous = pi.Current
		pi.Current = global.Current
		pi.LastInputMethod = global.LastInputMethod

		if pi.Sources == nil {
			return
		}
		for actionID, sourceID := range cfg.Input.WeaponSources {
			src, ok := pi.Sources.Source(sourceID)
			if !ok {
				continue
			}
			src.Step(pi.Previous[actionID], pi.Current[actionID])
		}
	})
}
