package systems

import (
	"github.com/automoto/doomerang-arsenal/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects processes visual effect components (flash, health bars, auto-destroy)
func UpdateEffects(ecs *ecs.ECS) {
	updateFlashEffects(ecs)
	updateHealthBars(ecs)
	updateAutoDestroy(ecs)
}

// updateFlashEffects decrements flash timers
func updateFlashEffects(ecs *ecs.ECS) {
	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
		}
	})
}

func updateHealthBars(ecs *ecs.ECS) {
	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		hb := components.HealthBar.Get(e)
		if hb.TimeToLive > 0 {
			hb.TimeToLive--
		}
	})
}

// updateAutoDestroy removes entities whose countdown ran out
func updateAutoDestroy(ecs *ecs.ECS) {
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.FramesRemaining--
		if ad.FramesRemaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		destroyWithObject(e)
	}
}
