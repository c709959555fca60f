package components

import (
	"github.com/automoto/doomerang-arsenal/weapon"
	"github.com/yohamta/donburi"
)

// WeaponData is the weapon currently equipped by its entity.
type WeaponData struct {
	Name    string
	Runtime *weapon.Runtime
	// ChargeBars are the displays created for Runtime, removed on unequip.
	ChargeBars []*donburi.Entry
}

// Equipped reports whether a runtime is set up.
func (w *WeaponData) Equipped() bool {
	return w != nil && w.Runtime != nil && w.Runtime.Active()
}

var Weapon = donburi.NewComponentType[WeaponData]()

// WeaponClockData holds the world's weapon clock. There is one per world.
type WeaponClockData struct {
	Clock *weapon.FrameClock
}

var WeaponClock = donburi.NewComponentType[WeaponClockData]()

// ArsenalData holds the weapon catalog loaded for the range. There is one per world.
type ArsenalData struct {
	Catalog *weapon.Catalog
}

var Arsenal = donburi.NewComponentType[ArsenalData]()
