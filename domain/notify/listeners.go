// Package notify provides ordered listener lists whose registrations are
// revoked through an explicit Subscription value.
//
// Everything here is meant to be used from the UI goroutine only; there is
// no locking.
package notify

// Subscription is the capability returned by a registration. Unsubscribe
// revokes it; calling it more than once is a no-op.
type Subscription struct {
	cancel func()
}

// NewSubscription wraps cancel so that it runs at most once.
func NewSubscription(cancel func()) *Subscription {
	return &Subscription{cancel: cancel}
}

// Unsubscribe revokes the registration. Nil-safe and idempotent.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.cancel == nil {
		return
	}
	c := s.cancel
	s.cancel = nil
	c()
}

// Active reports whether the subscription has not been revoked yet.
func (s *Subscription) Active() bool { return s != nil && s.cancel != nil }

// Set collects subscriptions so an owner can revoke them all on disposal.
// The zero value is ready to use.
type Set struct {
	subs []*Subscription
}

// Add keeps s for a later RevokeAll. Nil subscriptions are ignored.
func (set *Set) Add(s *Subscription) {
	if s == nil {
		return
	}
	set.subs = append(set.subs, s)
}

// RevokeAll unsubscribes everything held, in reverse registration order.
func (set *Set) RevokeAll() {
	for i := len(set.subs) - 1; i >= 0; i-- {
		set.subs[i].Unsubscribe()
	}
	set.subs = nil
}

// Len returns the number of subscriptions held (revoked or not).
func (set *Set) Len() int { return len(set.subs) }

type entry[F any] struct {
	id uint64
	fn F
}

// Listeners is an ordered list of callbacks of type F. Callbacks run in
// registration order. Removing a listener while Each is iterating is safe;
// the removed listener is skipped if it has not run yet.
type Listeners[F any] struct {
	entries []entry[F]
	nextID  uint64
}

// Add registers fn and returns the subscription that removes it.
func (ls *Listeners[F]) Add(fn F) *Subscription {
	ls.nextID++
	id := ls.nextID
	ls.entries = append(ls.entries, entry[F]{id: id, fn: fn})
	return NewSubscription(func() { ls.remove(id) })
}

func (ls *Listeners[F]) remove(id uint64) {
	for i, e := range ls.entries {
		if e.id == id {
			ls.entries = append(ls.entries[:i:i], ls.entries[i+1:]...)
			return
		}
	}
}

// Each calls visit for every registered listener in order.
func (ls *Listeners[F]) Each(visit func(F)) {
	snapshot := append([]entry[F](nil), ls.entries...)
	for _, e := range snapshot {
		if !ls.has(e.id) {
			continue
		}
		visit(e.fn)
	}
}

func (ls *Listeners[F]) has(id uint64) bool {
	for _, e := range ls.entries {
		if e.id == id {
			return true
		}
	}
	return false
}

// Len returns the number of live listeners.
func (ls *Listeners[F]) Len() int { return len(ls.entries) }

// Clear drops every listener without running their subscriptions' cancel
// functions; outstanding subscriptions become no-ops.
func (ls *Listeners[F]) Clear() { ls.entries = nil }
