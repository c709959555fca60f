package factory

import (
	"github.com/automoto/doomerang-arsenal/archetypes"
	"github.com/automoto/doomerang-arsenal/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs.World)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(ecs, wall, obj)

	return wall
}
