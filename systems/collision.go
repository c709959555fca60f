package systems

import (
	"github.com/automoto/doomerang-arsenal/components"
	cfg "github.com/automoto/doomerang-arsenal/config"
	"github.com/automoto/doomerang-arsenal/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions moves players against the range's solids.
func UpdateCollisions(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		resolveHorizontalCollision(physics, obj.Object)
		resolveVerticalCollision(physics, obj.Object)

		// Fallback floor for maps without ground
		if obj.Y+obj.H > cfg.Physics.FloorY {
			obj.Y = cfg.Physics.FloorY - obj.H
			physics.SpeedY = 0
			physics.OnGround = true
		}
	})
}

// resolveHorizontalCollision moves the object by its horizontal speed, stopping at walls
func resolveHorizontalCollision(physics *components.PhysicsData, object *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}
	if check := object.Check(dx, 0, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			dx = check.ContactWithObject(solids[0]).X()
			physics.SpeedX = 0
		}
	}
	object.X += dx
	object.Update()
}

// resolveVerticalCollision moves the object by its vertical speed and tracks ground contact
func resolveVerticalCollision(physics *components.PhysicsData, object *resolv.Object) {
	physics.OnGround = false
	dy := physics.SpeedY

	checkDistance := dy
	if dy >= 0 {
		checkDistance++
	}

	if check := object.Check(0, checkDistance, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			dy = check.ContactWithObject(solids[0]).Y()
			if physics.SpeedY >= 0 {
				physics.OnGround = true
			}
			physics.SpeedY = 0
		}
	}
	object.Y += dy
	object.Update()
}
