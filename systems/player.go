package systems

import (
	"github.com/automoto/doomerang-arsenal/components"
	cfg "github.com/automoto/doomerang-arsenal/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer applies movement input. Weapons are driven separately by
// UpdatePlayerInput and UpdateWeapons.
func UpdatePlayer(ecs *ecs.ECS) {
	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		player := components.Player.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)
		input := components.PlayerInput.Get(playerEntry)

		switch {
		case input.Held(int(cfg.ActionMoveLeft)) && !input.Held(int(cfg.ActionMoveRight)):
			physics.SpeedX -= cfg.Player.Acceleration
			player.Direction.X = cfg.DirectionLeft
		case input.Held(int(cfg.ActionMoveRight)) && !input.Held(int(cfg.ActionMoveLeft)):
			physics.SpeedX += cfg.Player.Acceleration
			player.Direction.X = cfg.DirectionRight
		}

		if input.JustPressed(int(cfg.ActionJump)) && physics.OnGround {
			physics.SpeedY = -cfg.Player.JumpSpeed
		}
	})
}
