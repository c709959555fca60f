package systems

import (
	"github.com/automoto/doomerang-arsenal/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects syncs moved collision objects with their space cells.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Space != nil {
			obj.Update()
		}
	}
}
