package systems

import (
	"github.com/automoto/doomerang-arsenal/actions"
	"github.com/automoto/doomerang-arsenal/components"
	"github.com/automoto/doomerang-arsenal/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHitboxes keeps following hitboxes attached to their owner and
// damages every entity they touch once over their lifetime.
func UpdateHitboxes(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	tags.Hitbox.Each(ecs.World, func(e *donburi.Entry) {
		hb := components.Hitbox.Get(e)
		obj := components.Object.Get(e)

		owner := hb.OwnerEntity
		if owner == nil || !owner.Valid() {
			toDestroy = append(toDestroy, e)
			return
		}

		if hb.Follow && owner.HasComponent(components.Object) {
			cx, cy := components.Object.Get(owner).Center()
			dir := 1.0
			if owner.HasComponent(components.Player) && components.Player.Get(owner).Direction.X < 0 {
				dir = -1
			}
			obj.X = cx + hb.OffsetX
			if dir < 0 {
				obj.X = cx - hb.OffsetX - obj.W
			}
			obj.Y = cy + hb.OffsetY
			obj.Update()
		}

		for _, hit := range actions.Touching(obj.Object, owner, tags.ResolvTarget, tags.ResolvPlayer) {
			if hb.HitEntities[hit] {
				continue
			}
			hb.HitEntities[hit] = true
			if r, ok := components.Receiver(hit); ok {
				r.TakeDamage(hb.Damage, hb.DamageType)
			}
		}

		hb.LifeTime--
		if hb.LifeTime <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		destroyWithObject(e)
	}
}
