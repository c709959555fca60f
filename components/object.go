package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the centre point of the collision box.
func (o *ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the resolv space of the current range. There is one per world.
var Space = donburi.NewComponentType[resolv.Space]()

// SpaceOf returns the world's collision space, or nil before the range is built.
func SpaceOf(w donburi.World) *resolv.Space {
	entry, ok := Space.First(w)
	if !ok {
		return nil
	}
	return Space.Get(entry)
}
