// Package input provides observable input sources for weapon bindings.
//
// A Source fans out three signals (Started, Performed, Canceled) to its
// subscribers in subscription order. It has no dependency on ebiten so the
// weapon core and its tests stay headless; systems/input.go feeds sources
// from the keyboard and gamepads each frame.
package input

// Signal is one of the three raw events an input source can raise.
type Signal uint8

const (
	Started Signal = iota
	Performed
	Canceled
	signalCount // Must be last - used for array sizing
)

func (s Signal) String() string {
	switch s {
	case Started:
		return "started"
	case Performed:
		return "performed"
	case Canceled:
		return "canceled"
	}
	return "unknown"
}

// Handler reacts to a signal.
type Handler func()

// Source is a single logical input (a button, a trigger) that many weapon
// runtimes may observe independently.
type Source struct {
	id       string
	disabled bool
	subs     [signalCount][]*Subscription
}

// NewSource creates an enabled source.
func NewSource(id string) *Source {
	return &Source{id: id}
}

// ID returns the source identifier referenced by weapon definitions.
func (s *Source) ID() string {
	return s.id
}

// Subscribe registers h for sig. The returned subscription must be released
// with Unsubscribe when the subscriber goes away.
func (s *Source) Subscribe(sig Signal, h Handler) *Subscription {
	sub := &Subscription{source: s, signal: sig, handler: h}
	if sig >= signalCount || h == nil {
		return sub
	}
	sub.active = true
	s.subs[sig] = append(s.subs[sig], sub)
	return sub
}

// Emit delivers sig to every subscriber active at the time of the call.
// Handlers may unsubscribe themselves or others while the signal is being
// delivered; a subscription released mid-delivery is not called afterwards.
func (s *Source) Emit(sig Signal) {
	if s.disabled || sig >= signalCount {
		return
	}
	// Snapshot so handlers can subscribe/unsubscribe during delivery
	snapshot := append([]*Subscription(nil), s.subs[sig]...)
	for _, sub := range snapshot {
		if sub.active {
			sub.handler()
		}
	}
}

// Step turns one frame of button state into signals: a press raises
// Started then Performed, a release raises Canceled.
func (s *Source) Step(wasDown, down bool) {
	switch {
	case down && !wasDown:
		s.Emit(Started)
		s.Emit(Performed)
	case !down && wasDown:
		s.Emit(Canceled)
	}
}

// Enable resumes delivery.
func (s *Source) Enable() {
	s.disabled = false
}

// Disable drops every signal until Enable is called. Subscriptions are kept.
func (s *Source) Disable() {
	s.disabled = true
}

// Enabled reports whether signals are being delivered.
func (s *Source) Enabled() bool {
	return !s.disabled
}

// Subscribers returns the number of active subscriptions across all signals.
func (s *Source) Subscribers() int {
	n := 0
	for _, list := range s.subs {
		n += len(list)
	}
	return n
}

func (s *Source) remove(sub *Subscription) {
	list := s.subs[sub.signal]
	for i, candidate := range list {
		if candidate == sub {
			s.subs[sub.signal] = append(list[:i:i], list[i+1:]...)
			return
		}
	}
}

// Subscription ties one handler to one signal of one source.
type Subscription struct {
	source  *Source
	signal  Signal
	handler Handler
	active  bool
}

// Unsubscribe detaches the handler. It reports whether the call removed an
// active subscription; calling it again is a no-op that returns false.
func (sub *Subscription) Unsubscribe() bool {
	if sub == nil || !sub.active {
		return false
	}
	sub.active = false
	sub.source.remove(sub)
	return true
}

// Active reports whether the subscription still receives signals.
func (sub *Subscription) Active() bool {
	return sub != nil && sub.active
}

// Signal returns the signal this subscription listens to.
func (sub *Subscription) Signal() Signal {
	return sub.signal
}
