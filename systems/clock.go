package systems

import (
	"github.com/automoto/doomerang-arsenal/archetypes"
	"github.com/automoto/doomerang-arsenal/components"
	cfg "github.com/automoto/doomerang-arsenal/config"
	"github.com/automoto/doomerang-arsenal/weapon"
	"github.com/yohamta/donburi/ecs"
)

// UpdateWeaponClock advances the shared weapon clock by one frame. It is
// paused with the rest of the range so cooldowns and charges freeze too.
func UpdateWeaponClock(ecs *ecs.ECS) {
	GetOrCreateWeaponClock(ecs).Step(cfg.Weapons.TPS)
}

// GetOrCreateWeaponClock returns the world's weapon clock, creating if needed.
func GetOrCreateWeaponClock(ecs *ecs.ECS) *weapon.FrameClock {
	entry, ok := components.WeaponClock.First(ecs.World)
	if !ok {
		entry = archetypes.WeaponClock.Spawn(ecs.World)
		components.WeaponClock.SetValue(entry, components.WeaponClockData{Clock: &weapon.FrameClock{}})
	}
	return components.WeaponClock.Get(entry).Clock
}
