package weapon

import "time"

// Clock is the single monotonic time source shared by input handling and
// tasks. Now is the elapsed time since the clock started.
type Clock interface {
	Now() time.Duration
}

// FrameClock is advanced explicitly by the host frame loop. Frames are
// counted rather than summed, so frame n at tps always reads
// n*time.Second/tps with no accumulated rounding.
type FrameClock struct {
	base   time.Duration // time reached before the current frame run
	frames int64
	tps    int
}

// Now implements Clock.
func (c *FrameClock) Now() time.Duration {
	if c.tps <= 0 {
		return c.base
	}
	return c.base + time.Duration(c.frames*int64(time.Second)/int64(c.tps))
}

// Advance moves the clock forward by dt. Negative steps are ignored.
func (c *FrameClock) Advance(dt time.Duration) {
	if dt > 0 {
		c.fold()
		c.base += dt
	}
}

// Step advances the clock by one frame at tps ticks per second.
func (c *FrameClock) Step(tps int) {
	if tps <= 0 {
		return
	}
	if tps != c.tps {
		c.fold()
		c.tps = tps
	}
	c.frames++
}

// fold moves counted frames into base so a new run starts from zero.
func (c *FrameClock) fold() {
	c.base = c.Now()
	c.frames = 0
}
