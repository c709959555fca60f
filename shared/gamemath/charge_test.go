package gamemath

import (
	"math"
	"testing"
	"time"
)

func TestChargeRatio(t *testing.T) {
	tests := []struct {
		name string
		held time.Duration
		hold time.Duration
		want float64
	}{
		{"zero hold is full", 0, 0, 1},
		{"half", 250 * time.Millisecond, 500 * time.Millisecond, 0.5},
		{"clamped", 2 * time.Second, 500 * time.Millisecond, 1},
		{"negative held", -time.Second, 500 * time.Millisecond, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ChargeRatio(tt.held, tt.hold); got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSecondsRoundsToExactDurations(t *testing.T) {
	if got := Seconds(0.1); got != 100*time.Millisecond {
		t.Fatalf("expected 100ms, got %v", got)
	}
	if got := Seconds(0.49); got != 490*time.Millisecond {
		t.Fatalf("expected 490ms, got %v", got)
	}
}

func TestClamp01HandlesNaN(t *testing.T) {
	if got := Clamp01(math.NaN()); got != 0 {
		t.Fatalf("expected NaN to clamp to 0, got %v", got)
	}
}

func TestNormalize(t *testing.T) {
	x, y := Normalize(3, 4)
	if math.Abs(x-0.6) > 1e-9 || math.Abs(y-0.8) > 1e-9 {
		t.Fatalf("expected (0.6, 0.8), got (%v, %v)", x, y)
	}
	if x, y := Normalize(0, 0); x != 0 || y != 0 {
		t.Fatalf("expected zero vector, got (%v, %v)", x, y)
	}
}

func TestApplyFriction(t *testing.T) {
	if got := ApplyFriction(1.0, 0.25); got != 0.75 {
		t.Fatalf("expected 0.75, got %v", got)
	}
	if got := ApplyFriction(-0.1, 0.25); got != 0 {
		t.Fatalf("expected friction to stop small speeds, got %v", got)
	}
}
