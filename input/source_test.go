package input

import "testing"

func TestEmitDeliversInSubscriptionOrder(t *testing.T) {
	src := NewSource("primary")
	var got []string
	src.Subscribe(Started, func() { got = append(got, "a") })
	src.Subscribe(Started, func() { got = append(got, "b") })
	src.Subscribe(Canceled, func() { got = append(got, "cancel") })

	src.Emit(Started)

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected [a b], got %v", got)
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	src := NewSource("primary")
	calls := 0
	sub := src.Subscribe(Performed, func() { calls++ })

	if !sub.Unsubscribe() {
		t.Fatalf("expected first unsubscribe to report removal")
	}
	if sub.Unsubscribe() {
		t.Fatalf("expected second unsubscribe to be a no-op")
	}
	src.Emit(Performed)
	if calls != 0 {
		t.Fatalf("expected no calls after unsubscribe, got %d", calls)
	}
	if src.Subscribers() != 0 {
		t.Fatalf("expected zero subscribers, got %d", src.Subscribers())
	}
}

func TestUnsubscribeDuringEmitSkipsLaterHandler(t *testing.T) {
	src := NewSource("primary")
	var second *Subscription
	secondCalls := 0
	src.Subscribe(Canceled, func() { second.Unsubscribe() })
	second = src.Subscribe(Canceled, func() { secondCalls++ })

	src.Emit(Canceled)

	if secondCalls != 0 {
		t.Fatalf("expected handler released mid-delivery to be skipped, got %d calls", secondCalls)
	}
}

func TestDisabledSourceDropsSignals(t *testing.T) {
	src := NewSource("primary")
	calls := 0
	src.Subscribe(Started, func() { calls++ })

	src.Disable()
	src.Emit(Started)
	if calls != 0 {
		t.Fatalf("expected disabled source to drop signal")
	}

	src.Enable()
	src.Emit(Started)
	if calls != 1 {
		t.Fatalf("expected 1 call after enable, got %d", calls)
	}
}

func TestIndependentSubscribersOnSharedSource(t *testing.T) {
	src := NewSource("primary")
	a, b := 0, 0
	subA := src.Subscribe(Started, func() { a++ })
	src.Subscribe(Started, func() { b++ })

	src.Emit(Started)
	subA.Unsubscribe()
	src.Emit(Started)

	if a != 1 || b != 2 {
		t.Fatalf("expected a=1 b=2, got a=%d b=%d", a, b)
	}
}

func TestMapAddReturnsExistingSource(t *testing.T) {
	m := NewMap("primary", "secondary")
	first, _ := m.Source("primary")
	if again := m.Add("primary"); again != first {
		t.Fatalf("expected Add to return the existing source")
	}
	if _, ok := m.Source("missing"); ok {
		t.Fatalf("expected missing source lookup to fail")
	}
	sources := m.Sources()
	if len(sources) != 2 || sources[0].ID() != "primary" || sources[1].ID() != "secondary" {
		t.Fatalf("unexpected source order: %v", sources)
	}

	m.SetEnabled(false)
	for _, src := range m.Sources() {
		if src.Enabled() {
			t.Fatalf("expected %s disabled", src.ID())
		}
	}
}

func TestStepTurnsEdgesIntoSignals(t *testing.T) {
	src := NewSource("primary")
	var got []Signal
	for _, sig := range []Signal{Started, Performed, Canceled} {
		sig := sig
		src.Subscribe(sig, func() { got = append(got, sig) })
	}

	src.Step(false, true)
	src.Step(true, true)
	src.Step(true, false)
	src.Step(false, false)

	want := []Signal{Started, Performed, Canceled}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
