package systems

import (
	"github.com/automoto/doomerang-arsenal/components"
	cfg "github.com/automoto/doomerang-arsenal/config"
	"github.com/automoto/doomerang-arsenal/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat handles damage events and keeps health values within their
// valid range. Targets that reach zero go down until UpdateTargets stands
// them back up.
func UpdateCombat(ecs *ecs.ECS) {
	// --------------------------------------------------------------------
	// 1. Process queued damage events (generic for any entity with Health)
	// --------------------------------------------------------------------
	for e := range components.DamageEvent.Iter(ecs.World) {
		dmg := components.DamageEvent.Get(e)

		hp := components.Health.Get(e)
		hp.Current -= dmg.Amount

		if e.HasComponent(components.Flash) {
			components.Flash.SetValue(e, components.FlashData{
				Duration: cfg.Combat.DamageFlashFrames,
				R:        1, G: 0.5, B: 0.5,
			})
		}
		if e.HasComponent(components.Target) {
			components.Target.Get(e).Hits += dmg.Hits
			components.HealthBar.SetValue(e, components.HealthBarData{
				TimeToLive: cfg.Target.HealthBarDuration,
			})
		}

		// Remove the damage event component so it is processed only once.
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}

	// --------------------------------------------------------------------
	// 2. Debug: press H to hurt the player by 10 HP
	// --------------------------------------------------------------------
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		tags.Player.Each(ecs.World, func(e *donburi.Entry) {
			if r, ok := components.Receiver(e); ok {
				r.TakeDamage(10, "debug")
			}
		})
	}

	// --------------------------------------------------------------------
	// 3. Clamp health ranges (0..Max)
	// --------------------------------------------------------------------
	for e := range components.Health.Iter(ecs.World) {
		hp := components.Health.Get(e)
		if hp.Current < 0 {
			hp.Current = 0
		}
		if hp.Current > hp.Max {
			hp.Current = hp.Max
		}

		if hp.Current > 0 {
			continue
		}
		switch {
		case e.HasComponent(components.Target):
			knockDown(ecs, e)
		case e.HasComponent(components.Player):
			// Nobody dies on the range
			hp.Current = hp.Max
		}
	}
}

// knockDown takes a target out of the collision space until it respawns.
func knockDown(ecs *ecs.ECS, e *donburi.Entry) {
	target := components.Target.Get(e)
	if target.Down {
		return
	}
	target.Down = true
	target.RespawnTimer = target.RespawnFrames

	obj := components.Object.Get(e)
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	if camera, ok := components.Camera.First(ecs.World); ok {
		components.AddScreenShake(camera, cfg.ScreenShake.Intensity, cfg.ScreenShake.Duration)
	}
}

// UpdateTargets counts down downed targets and stands them back up.
func UpdateTargets(ecs *ecs.ECS) {
	space := components.SpaceOf(ecs.World)
	tags.Target.Each(ecs.World, func(e *donburi.Entry) {
		target := components.Target.Get(e)
		if !target.Down {
			return
		}
		target.RespawnTimer--
		if target.RespawnTimer > 0 {
			return
		}

		target.Down = false
		target.RespawnTimer = 0
		hp := components.Health.Get(e)
		hp.Current = hp.Max

		obj := components.Object.Get(e)
		obj.X = target.SpawnX
		obj.Y = target.SpawnY
		if space != nil {
			space.Add(obj.Object)
		}
		components.Flash.SetValue(e, components.FlashData{
			Duration: cfg.Combat.HitFlashFrames,
			R:        1, G: 1, B: 1,
		})
	})
}
