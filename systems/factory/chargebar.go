package factory

import (
	"github.com/automoto/doomerang-arsenal/archetypes"
	"github.com/automoto/doomerang-arsenal/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateChargeBar creates a hidden charge bar for one of owner's hands.
func CreateChargeBar(ecs *ecs.ECS, owner *donburi.Entry, hand string) *donburi.Entry {
	bar := archetypes.ChargeBar.Spawn(ecs.World)
	components.ChargeBar.Set(bar, &components.ChargeBarData{
		Owner: owner,
		Hand:  hand,
	})
	return bar
}
