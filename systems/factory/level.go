package factory

import (
	"github.com/automoto/doomerang-arsenal/archetypes"
	"github.com/automoto/doomerang-arsenal/components"
	"github.com/automoto/doomerang-arsenal/shared/leveldata"
	"github.com/automoto/doomerang-arsenal/weapon"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel stores the parsed range and builds its walls and targets.
func CreateLevel(ecs *ecs.ECS, data *leveldata.Range) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs.World)
	components.Level.Set(level, &components.LevelData{Name: data.Name, Range: data})

	for _, s := range data.Solids {
		CreateWall(ecs, s.X, s.Y, s.W, s.H)
	}
	for _, t := range data.Targets {
		CreateTarget(ecs, t)
	}
	return level
}

// CreateArsenal stores the weapon catalog in the world.
func CreateArsenal(ecs *ecs.ECS, catalog *weapon.Catalog) *donburi.Entry {
	arsenal := archetypes.Arsenal.Spawn(ecs.World)
	components.Arsenal.Set(arsenal, &components.ArsenalData{Catalog: catalog})
	return arsenal
}
