package factory

import (
	"github.com/automoto/doomerang-arsenal/archetypes"
	"github.com/automoto/doomerang-arsenal/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs.World)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}
