package systems

import (
	"github.com/automoto/doomerang-arsenal/components"
	cfg "github.com/automoto/doomerang-arsenal/config"
	"github.com/automoto/doomerang-arsenal/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies friction, the speed cap and gravity to bodies.
// Projectiles have their own system and are skipped.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Projectile) {
			return
		}
		physics := components.Physics.Get(e)

		physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Friction)
		if physics.SpeedX > physics.MaxSpeed {
			physics.SpeedX = physics.MaxSpeed
		} else if physics.SpeedX < -physics.MaxSpeed {
			physics.SpeedX = -physics.MaxSpeed
		}

		physics.SpeedY += physics.Gravity
		if physics.SpeedY > cfg.Physics.MaxFallSpeed {
			physics.SpeedY = cfg.Physics.MaxFallSpeed
		}
	})
}
