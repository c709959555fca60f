package factory

import (
	"github.com/automoto/doomerang-arsenal/archetypes"
	"github.com/automoto/doomerang-arsenal/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs.World)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace links obj to its entry and adds it to the world's space, if any.
func addToSpace(ecs *ecs.ECS, entry *donburi.Entry, obj *resolv.Object) {
	obj.Data = entry // Link for O(1) lookup
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	if space := components.SpaceOf(ecs.World); space != nil {
		space.Add(obj)
	}
}
