package notify

import "testing"

func TestListeners_OrderAndUnsubscribe(t *testing.T) {
	var ls Listeners[func(int)]
	var got []int
	s1 := ls.Add(func(v int) { got = append(got, v*10+1) })
	ls.Add(func(v int) { got = append(got, v*10+2) })
	ls.Each(func(f func(int)) { f(1) })
	if len(got) != 2 || got[0] != 11 || got[1] != 12 {
		t.Fatalf("unexpected order: %v", got)
	}
	s1.Unsubscribe()
	s1.Unsubscribe() // idempotent
	got = nil
	ls.Each(func(f func(int)) { f(2) })
	if len(got) != 1 || got[0] != 22 {
		t.Fatalf("expected only second listener, got %v", got)
	}
	if ls.Len() != 1 {
		t.Fatalf("expected 1 live listener, got %d", ls.Len())
	}
}

func TestListeners_RemoveDuringDispatch(t *testing.T) {
	var ls Listeners[func()]
	calls := 0
	var second *Subscription
	ls.Add(func() { calls++; second.Unsubscribe() })
	second = ls.Add(func() { calls++ })
	ls.Each(func(f func()) { f() })
	if calls != 1 {
		t.Fatalf("removed listener should be skipped, calls=%d", calls)
	}
}

func TestSet_RevokeAll(t *testing.T) {
	var ls Listeners[func()]
	var set Set
	set.Add(ls.Add(func() {}))
	set.Add(ls.Add(func() {}))
	set.Add(nil)
	if set.Len() != 2 {
		t.Fatalf("expected 2 held subscriptions, got %d", set.Len())
	}
	set.RevokeAll()
	if ls.Len() != 0 {
		t.Fatalf("expected no listeners after RevokeAll, got %d", ls.Len())
	}
	set.RevokeAll()
}

func TestSubscription_NilSafe(t *testing.T) {
	var s *Subscription
	s.Unsubscribe()
	if s.Active() {
		t.Fatalf("nil subscription reported active")
	}
}
