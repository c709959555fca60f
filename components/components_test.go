package components

import (
	"testing"

	"github.com/yohamta/donburi"
)

func TestTakeDamageAccumulatesIntoOneEvent(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Entry(w.Create(Health))
	Health.SetValue(e, HealthData{Current: 10, Max: 10})

	r, ok := Receiver(e)
	if !ok {
		t.Fatal("entity with Health should be a receiver")
	}
	r.TakeDamage(3, "kinetic")
	r.TakeDamage(4, "plasma")
	r.TakeDamage(0, "ignored")

	if !e.HasComponent(DamageEvent) {
		t.Fatal("expected a pending damage event")
	}
	dmg := DamageEvent.Get(e)
	if dmg.Amount != 7 || dmg.Hits != 2 || dmg.DamageType != "plasma" {
		t.Errorf("event = %+v", *dmg)
	}
}

func TestReceiverRejectsEntitiesWithoutHealth(t *testing.T) {
	w := donburi.NewWorld()
	e := w.Entry(w.Create(Pose))
	if _, ok := Receiver(e); ok {
		t.Error("entity without Health should not be a receiver")
	}
	if _, ok := Receiver(nil); ok {
		t.Error("nil entry should not be a receiver")
	}

	dead := w.Entry(w.Create(Health))
	r, _ := Receiver(dead)
	w.Remove(dead.Entity())
	r.TakeDamage(5, "kinetic") // must not panic on a removed entry
}

func TestInputEdges(t *testing.T) {
	var in InputData
	in.Current[2] = true
	if !in.JustPressed(2) || in.JustReleased(2) || !in.Held(2) {
		t.Error("rising edge")
	}
	in.Previous = in.Current
	in.Current[2] = false
	if in.JustPressed(2) || !in.JustReleased(2) {
		t.Error("falling edge")
	}
	if in.JustPressed(-1) || in.Held(MaxActions) {
		t.Error("out of range actions must read as released")
	}
}

func TestAddScreenShakeKeepsTheStrongerShake(t *testing.T) {
	w := donburi.NewWorld()
	camera := w.Entry(w.Create(Camera))

	AddScreenShake(camera, 2, 10)
	shake := ScreenShake.Get(camera)
	shake.Elapsed = 8

	AddScreenShake(camera, 1, 4)
	shake = ScreenShake.Get(camera)
	if shake.Intensity != 2 || shake.Duration != 4 || shake.Elapsed != 0 {
		t.Errorf("shake = %+v, want intensity 2 duration 4 restarted", *shake)
	}

	AddScreenShake(camera, 0, 4)
	if ScreenShake.Get(camera).Duration != 4 {
		t.Error("zero intensity must be ignored")
	}
}
