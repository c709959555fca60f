package systems

import (
	"math"

	"github.com/automoto/doomerang-arsenal/actions"
	"github.com/automoto/doomerang-arsenal/components"
	"github.com/automoto/doomerang-arsenal/systems/factory"
	"github.com/automoto/doomerang-arsenal/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProjectiles moves shots, applies their damage and expires them at
// walls, at the end of their range or when their pierce runs out.
func UpdateProjectiles(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	tags.Projectile.Each(ecs.World, func(e *donburi.Entry) {
		proj := components.Projectile.Get(e)
		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		obj.X += physics.SpeedX
		obj.Y += physics.SpeedY
		obj.Update()
		proj.Traveled += math.Hypot(physics.SpeedX, physics.SpeedY)

		if proj.Traveled >= proj.Range || outsideLevel(ecs, obj.X, obj.Y) {
			toDestroy = append(toDestroy, e)
			return
		}
		if len(actions.Touching(obj.Object, nil, tags.ResolvSolid)) > 0 {
			factory.CreateSpark(ecs, obj.X+obj.W/2, obj.Y+obj.H/2)
			toDestroy = append(toDestroy, e)
			return
		}

		for _, hit := range actions.Touching(obj.Object, proj.OwnerEntity, tags.ResolvTarget, tags.ResolvPlayer) {
			if proj.HitEntities[hit] {
				continue
			}
			proj.HitEntities[hit] = true
			if r, ok := components.Receiver(hit); ok {
				r.TakeDamage(proj.Damage, proj.DamageType)
			}
			if proj.Pierce == 0 {
				toDestroy = append(toDestroy, e)
				return
			}
			proj.Pierce--
		}
	})

	for _, e := range toDestroy {
		destroyWithObject(e)
	}
}

// outsideLevel reports whether a point has left the range.
func outsideLevel(ecs *ecs.ECS, x, y float64) bool {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return false
	}
	r := components.Level.Get(levelEntry).Range
	if r == nil {
		return false
	}
	return x < 0 || y < 0 || x > float64(r.MapWidth) || y > float64(r.MapHeight)
}

// destroyWithObject removes an entity and its collision object.
func destroyWithObject(e *donburi.Entry) {
	if !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	e.Remove()
}
