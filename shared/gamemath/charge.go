package gamemath

import (
	"math"
	"time"
)

// Clamp01 clamps v to [0, 1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v > 0 {
		return v
	}
	return 0
}

// ChargeRatio returns how far a hold of length held has progressed toward
// hold. A zero hold is always fully charged.
func ChargeRatio(held, hold time.Duration) float64 {
	if hold <= 0 {
		return 1
	}
	return Clamp01(float64(held) / float64(hold))
}

// Seconds converts a configuration value in seconds to a Duration, rounded to
// the nearest nanosecond so values like 0.1 land exactly on 100ms.
func Seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

// ScaleByCharge interpolates between base and max by chargeRatio.
func ScaleByCharge(base, max, chargeRatio float64) float64 {
	return base + Clamp01(chargeRatio)*(max-base)
}

// Normalize returns the unit vector of (x, y), or (0, 0) for a zero vector.
func Normalize(x, y float64) (float64, float64) {
	length := math.Sqrt(x*x + y*y)
	if length == 0 {
		return 0, 0
	}
	return x / length, y / length
}
