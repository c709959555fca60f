package weapon

import "time"

// task is a cooperative routine advanced by Runtime.Tick on the frame loop.
// It never runs on its own goroutine: the body only executes inside resume,
// so once stop returns the body will not run again.
type task struct {
	interval time.Duration // zero: every frame
	next     time.Duration
	body     func(now time.Duration) bool
	stopped  bool
}

// newFrameTask resumes body on every frame starting with the current one.
func newFrameTask(now time.Duration, body func(now time.Duration) bool) *task {
	return &task{next: now, body: body}
}

// newIntervalTask resumes body every interval, the first time one interval
// after now. Deadlines are start + k*interval so frame jitter does not drift
// the cadence.
func newIntervalTask(now, interval time.Duration, body func(now time.Duration) bool) *task {
	return &task{interval: interval, next: now + interval, body: body}
}

// resume runs the body if the task is due. A body returning false finishes
// the task. At most one run happens per call.
func (t *task) resume(now time.Duration) {
	if t == nil || t.stopped || now < t.next {
		return
	}
	if !t.body(now) {
		t.stopped = true
		return
	}
	if t.stopped {
		return
	}
	if t.interval <= 0 {
		t.next = now
		return
	}
	// Skip deadlines missed during a long frame rather than bursting
	for t.next <= now {
		t.next += t.interval
	}
}

// stop cancels the task. Safe to call more than once and from inside the body.
func (t *task) stop() {
	if t != nil {
		t.stopped = true
	}
}

func (t *task) alive() bool {
	return t != nil && !t.stopped
}
