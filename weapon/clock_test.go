package weapon

import (
	"testing"
	"time"
)

func TestFrameClockDoesNotDrift(t *testing.T) {
	c := &FrameClock{}
	for i := 0; i < 30; i++ {
		c.Step(60)
	}
	if got := c.Now(); got != 500*time.Millisecond {
		t.Fatalf("after 30 frames at 60 TPS = %v (%d ns), want 500ms", got, got)
	}
	for i := 0; i < 3570; i++ {
		c.Step(60)
	}
	if got := c.Now(); got != time.Minute {
		t.Errorf("after 3600 frames = %v, want 1m0s", got)
	}
}

func TestFrameClockMixesAdvanceAndRateChanges(t *testing.T) {
	c := &FrameClock{}
	c.Step(60)
	c.Advance(250 * time.Millisecond)
	c.Advance(-time.Second)
	for i := 0; i < 6; i++ {
		c.Step(60)
	}
	want := time.Second/60 + 250*time.Millisecond + 100*time.Millisecond
	if got := c.Now(); got != want {
		t.Errorf("Now = %v, want %v", got, want)
	}

	c.Step(30)
	want += time.Second / 30
	if got := c.Now(); got != want {
		t.Errorf("Now after a rate change = %v, want %v", got, want)
	}
	c.Step(0)
	if got := c.Now(); got != want {
		t.Errorf("Step(0) moved the clock to %v", got)
	}
}
