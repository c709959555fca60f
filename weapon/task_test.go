package weapon

import (
	"testing"
	"time"
)

func TestFrameTaskRunsEveryResume(t *testing.T) {
	runs := 0
	tk := newFrameTask(0, func(time.Duration) bool { runs++; return true })
	for i := 0; i < 4; i++ {
		tk.resume(time.Duration(i) * time.Millisecond)
	}
	if runs != 4 {
		t.Errorf("runs = %d, want 4", runs)
	}
}

func TestIntervalTaskSkipsMissedDeadlines(t *testing.T) {
	var at []time.Duration
	tk := newIntervalTask(0, 100*time.Millisecond, func(now time.Duration) bool {
		at = append(at, now)
		return true
	})
	tk.resume(50 * time.Millisecond)
	tk.resume(350 * time.Millisecond) // one run despite three missed deadlines
	tk.resume(360 * time.Millisecond)
	tk.resume(400 * time.Millisecond)
	want := []time.Duration{350 * time.Millisecond, 400 * time.Millisecond}
	if len(at) != len(want) {
		t.Fatalf("runs at %v, want %v", at, want)
	}
	for i := range want {
		if at[i] != want[i] {
			t.Errorf("run %d at %v, want %v", i, at[i], want[i])
		}
	}
}

func TestTaskStop(t *testing.T) {
	runs := 0
	var tk *task
	tk = newFrameTask(0, func(time.Duration) bool {
		runs++
		tk.stop()
		return true
	})
	tk.resume(0)
	tk.resume(time.Millisecond)
	if runs != 1 || tk.alive() {
		t.Errorf("runs = %d alive = %v, want 1 false", runs, tk.alive())
	}

	other := newFrameTask(0, func(time.Duration) bool { runs++; return true })
	killer := newFrameTask(0, func(time.Duration) bool { other.stop(); return true })
	killer.resume(0)
	other.resume(0)
	if runs != 1 {
		t.Errorf("task stopped by a sibling in the same frame still ran")
	}

	var nilTask *task
	nilTask.stop()
	nilTask.resume(0)
	if nilTask.alive() {
		t.Error("nil task alive")
	}
}

func TestTaskFinishesWhenBodyReturnsFalse(t *testing.T) {
	runs := 0
	tk := newFrameTask(0, func(time.Duration) bool { runs++; return runs < 2 })
	for i := 0; i < 5; i++ {
		tk.resume(0)
	}
	if runs != 2 || tk.alive() {
		t.Errorf("runs = %d alive = %v, want 2 false", runs, tk.alive())
	}
}
