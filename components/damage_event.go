package components

import "github.com/yohamta/donburi"

// DamageEventData is pending damage, consumed once by UpdateCombat.
type DamageEventData struct {
	Amount     int
	DamageType string // last type applied this frame
	Hits       int
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
