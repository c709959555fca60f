package weapon

import (
	"context"
	"time"

	"github.com/automoto/doomerang-arsenal/input"
	"github.com/automoto/doomerang-arsenal/shared/gamemath"
	"github.com/looplab/fsm"
)

// Hold phases of a binding. Press bindings stay idle.
const (
	phaseIdle    = "idle"
	phaseHolding = "holding"
	phaseActive  = "active"

	eventStart  = "start"
	eventCancel = "cancel"
	eventReset  = "reset"
)

// newPhaseMachine builds the hold machine for mode. Charge and Release hold
// in "holding", Continuous in "active". Events from the wrong phase are
// rejected by the fsm, which is how cancel-without-start becomes a no-op.
func newPhaseMachine(mode Mode) *fsm.FSM {
	hold := phaseHolding
	if mode == ModeContinuous {
		hold = phaseActive
	}
	return fsm.NewFSM(
		phaseIdle,
		fsm.Events{
			{Name: eventStart, Src: []string{phaseIdle}, Dst: hold},
			{Name: eventCancel, Src: []string{hold}, Dst: phaseIdle},
			{Name: eventReset, Src: []string{hold}, Dst: phaseIdle},
		},
		fsm.Callbacks{},
	)
}

// bindingState is the per-binding runtime state. It is owned by exactly one
// Runtime and only mutated by its own input source handlers and tasks.
type bindingState struct {
	rt      *Runtime
	index   int
	binding *InputBinding
	label   string
	source  *input.Source
	display ChargeDisplay
	phase   *fsm.FSM
	subs    []*input.Subscription

	lastTrigger  time.Duration
	triggered    bool
	inputStart   time.Duration
	releaseFired bool
	percent      float64

	charge *task
	ticks  []*task
}

func newBindingState(rt *Runtime, index int, b *InputBinding, src *input.Source) *bindingState {
	s := &bindingState{
		rt:      rt,
		index:   index,
		binding: b,
		label:   b.Label(index),
		source:  src,
		phase:   newPhaseMachine(b.Mode),
	}
	if rt.ctx != nil && b.Mode == ModeCharge {
		s.display = rt.ctx.ChargeDisplay(b.Hand)
	}
	return s
}

// subscribe attaches the handlers the binding's mode needs.
func (s *bindingState) subscribe() {
	switch s.binding.Mode {
	case ModePress:
		s.on(input.Performed, s.press)
	case ModeCharge:
		s.on(input.Started, s.chargeStart)
		s.on(input.Canceled, s.chargeRelease)
	case ModeContinuous:
		s.on(input.Started, s.continuousStart)
		s.on(input.Canceled, s.continuousCancel)
	case ModeRelease:
		s.on(input.Started, s.releaseStart)
		s.on(input.Canceled, s.releaseCancel)
	}
}

func (s *bindingState) on(sig input.Signal, fn func(now time.Duration)) {
	sub := s.source.Subscribe(sig, func() {
		if !s.rt.active || !s.rt.enabled {
			return
		}
		fn(s.rt.clock.Now())
	})
	s.subs = append(s.subs, sub)
}

func (s *bindingState) cooldownReady(now time.Duration) bool {
	if !s.triggered {
		return true
	}
	return now-s.lastTrigger >= gamemath.Seconds(s.binding.Cooldown)
}

func (s *bindingState) stamp(now time.Duration) {
	s.lastTrigger = now
	s.triggered = true
}

func (s *bindingState) holding() bool {
	return s.phase.Current() != phaseIdle
}

// transition fires event on the hold machine and reports whether it applied.
func (s *bindingState) transition(event string) bool {
	return s.phase.Event(context.Background(), event) == nil
}

// Press: fire on perform.

func (s *bindingState) press(now time.Duration) {
	if !s.cooldownReady(now) {
		return
	}
	s.stamp(now)
	s.rt.executePhase(s, PhaseOnPerform)
}

// Charge: hold, then fire on release once hold_time was reached.

func (s *bindingState) chargeStart(now time.Duration) {
	if !s.transition(eventStart) {
		return
	}
	s.inputStart = now
	s.percent = 0
	if s.display != nil {
		s.display.Reset()
		s.display.Show()
	}
	s.startCharge(now)
}

func (s *bindingState) chargeRelease(now time.Duration) {
	if !s.transition(eventCancel) {
		return
	}
	s.stopCharge()
	if s.display != nil {
		s.display.Hide()
	}
	held := now - s.inputStart
	if held < gamemath.Seconds(s.binding.HoldTime) || !s.cooldownReady(now) {
		// Released early: no effect and no cooldown bump
		return
	}
	s.stamp(now)
	s.rt.executePhase(s, PhaseOnPerform)
}

func (s *bindingState) startCharge(now time.Duration) {
	s.stopCharge()
	hold := gamemath.Seconds(s.binding.HoldTime)
	s.charge = newFrameTask(now, func(now time.Duration) bool {
		if !s.holding() {
			return false
		}
		s.percent = gamemath.ChargeRatio(now-s.inputStart, hold)
		if s.display != nil {
			s.display.SetPercent(s.percent)
		}
		return true
	})
}

func (s *bindingState) stopCharge() {
	s.charge.stop()
	s.charge = nil
}

// Continuous: on_start, on_tick while held, on_cancel.

func (s *bindingState) continuousStart(now time.Duration) {
	if !s.phase.Can(eventStart) || !s.cooldownReady(now) {
		return
	}
	s.stamp(now)
	s.transition(eventStart)
	s.rt.executePhase(s, PhaseOnStart)
	if !s.rt.active || !s.holding() {
		return
	}
	s.startTicks(now)
}

func (s *bindingState) continuousCancel(now time.Duration) {
	if !s.transition(eventCancel) {
		return
	}
	s.stopTicks()
	s.rt.executePhase(s, PhaseOnCancel)
}

func (s *bindingState) startTicks(now time.Duration) {
	s.stopTicks()
	for i := range s.binding.Actions {
		ab := &s.binding.Actions[i]
		if ab.Phase != PhaseOnTick {
			continue
		}
		s.ticks = append(s.ticks, newIntervalTask(now, gamemath.Seconds(ab.TickRate), func(now time.Duration) bool {
			if !s.holding() {
				return false
			}
			if s.cooldownReady(now) {
				s.stamp(now)
				s.rt.execute(s, ab)
			}
			return true
		}))
	}
}

func (s *bindingState) stopTicks() {
	for _, t := range s.ticks {
		t.stop()
	}
	s.ticks = nil
}

// Release: fire once per press cycle, on release.

func (s *bindingState) releaseStart(now time.Duration) {
	if !s.transition(eventStart) {
		return
	}
	s.releaseFired = false
}

func (s *bindingState) releaseCancel(now time.Duration) {
	if !s.transition(eventCancel) {
		return
	}
	if s.releaseFired || !s.cooldownReady(now) {
		return
	}
	s.releaseFired = true
	s.stamp(now)
	s.rt.executePhase(s, PhaseOnPerform)
}

// resume advances the charge task then each tick task in declaration order.
func (s *bindingState) resume(now time.Duration) {
	s.charge.resume(now)
	for _, t := range s.ticks {
		t.resume(now)
	}
}

// suspend drops any hold without firing actions.
func (s *bindingState) suspend() {
	held := s.transition(eventReset)
	s.stopCharge()
	s.stopTicks()
	if held && s.display != nil {
		s.display.Hide()
	}
}

// teardown unsubscribes first so a late event cannot restart a task, then
// stops every task and hides the display.
func (s *bindingState) teardown() {
	for _, sub := range s.subs {
		sub.Unsubscribe()
	}
	s.subs = nil
	s.suspend()
}

func (s *bindingState) tasks() int {
	n := 0
	if s.charge.alive() {
		n++
	}
	for _, t := range s.ticks {
		if t.alive() {
			n++
		}
	}
	return n
}
