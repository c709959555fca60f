package factory

import (
	"github.com/automoto/doomerang-arsenal/archetypes"
	"github.com/automoto/doomerang-arsenal/components"
	cfg "github.com/automoto/doomerang-arsenal/config"
	"github.com/automoto/doomerang-arsenal/shared/leveldata"
	"github.com/automoto/doomerang-arsenal/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateTarget places a dummy standing on its spawn point. Tiled points mark
// the dummy's feet.
func CreateTarget(ecs *ecs.ECS, spawn leveldata.TargetSpawn) *donburi.Entry {
	target := archetypes.Target.Spawn(ecs.World)

	health := spawn.Health
	if health <= 0 {
		health = cfg.Target.DefaultHealth
	}
	respawn := spawn.RespawnFrames
	if respawn <= 0 {
		respawn = cfg.Target.RespawnFrames
	}

	x := spawn.X - cfg.Target.Width/2
	y := spawn.Y - cfg.Target.Height
	obj := resolv.NewObject(x, y, cfg.Target.Width, cfg.Target.Height, tags.ResolvTarget)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Target.Width, cfg.Target.Height))
	addToSpace(ecs, target, obj)

	components.Target.SetValue(target, components.TargetData{
		Name:          spawn.Name,
		SpawnX:        x,
		SpawnY:        y,
		RespawnFrames: respawn,
	})
	components.Health.SetValue(target, components.HealthData{Current: health, Max: health})
	components.Flash.SetValue(target, components.FlashData{R: 1, G: 1, B: 1})

	return target
}
