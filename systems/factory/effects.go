package factory

import (
	"github.com/automoto/doomerang-arsenal/archetypes"
	"github.com/automoto/doomerang-arsenal/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	sparkSize   = 6
	sparkFrames = 8
)

// CreateSpark spawns a short lived impact marker centred on (x, y). It is
// drawn only and never joins the collision space.
func CreateSpark(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	spark := archetypes.Spark.Spawn(ecs.World)
	obj := resolv.NewObject(x-sparkSize/2, y-sparkSize/2, sparkSize, sparkSize)
	obj.Data = spark
	components.Object.Set(spark, &components.ObjectData{Object: obj})
	components.AutoDestroy.SetValue(spark, components.AutoDestroyData{FramesRemaining: sparkFrames})
	return spark
}
