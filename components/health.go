package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int
}

type HealthBarData struct {
	// TimeToLive is the number of frames the health bar should be visible.
	TimeToLive int
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()

// DamageReceiver queues damage against an entity with Health. The combat
// system applies it on the next update.
type DamageReceiver struct {
	Entry *donburi.Entry
}

// Receiver returns a DamageReceiver for e if it can take damage.
func Receiver(e *donburi.Entry) (DamageReceiver, bool) {
	if e == nil || !e.Valid() || !e.HasComponent(Health) {
		return DamageReceiver{}, false
	}
	return DamageReceiver{Entry: e}, true
}

// TakeDamage adds amount to this frame's pending damage event.
func (r DamageReceiver) TakeDamage(amount int, damageType string) {
	if amount <= 0 || r.Entry == nil || !r.Entry.Valid() {
		return
	}
	if r.Entry.HasComponent(DamageEvent) {
		dmg := DamageEvent.Get(r.Entry)
		dmg.Amount += amount
		dmg.Hits++
		if damageType != "" {
			dmg.DamageType = damageType
		}
		return
	}
	donburi.Add(r.Entry, DamageEvent, &DamageEventData{
		Amount:     amount,
		DamageType: damageType,
		Hits:       1,
	})
}
