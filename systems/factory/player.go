package factory

import (
	"github.com/automoto/doomerang-arsenal/archetypes"
	"github.com/automoto/doomerang-arsenal/components"
	cfg "github.com/automoto/doomerang-arsenal/config"
	"github.com/automoto/doomerang-arsenal/input"
	"github.com/automoto/doomerang-arsenal/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// weaponSourceIDs lists the weapon input sources in action order.
func weaponSourceIDs() []string {
	var ids []string
	for id := cfg.ActionNone; id < cfg.ActionCount; id++ {
		if src, ok := cfg.Input.WeaponSources[id]; ok {
			ids = append(ids, src)
		}
	}
	return ids
}

func CreatePlayer(ecs *ecs.ECS, index int, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs.World)

	w := float64(cfg.Player.CollisionWidth)
	h := float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, player, obj)

	components.Player.SetValue(player, components.PlayerData{
		Index:        index,
		Direction:    components.Vector{X: cfg.DirectionRight},
		LoadoutIndex: cfg.Weapons.DefaultLoadout,
		SpawnX:       x,
		SpawnY:       y,
	})
	components.PlayerInput.SetValue(player, components.PlayerInputData{
		PlayerIndex: index,
		Sources:     input.NewMap(weaponSourceIDs()...),
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.Health,
		Max:     cfg.Player.Health,
	})

	// Initialize Flash component (permanently attached to avoid archetype thrashing)
	components.Flash.SetValue(player, components.FlashData{R: 1, G: 1, B: 1})

	return player
}
