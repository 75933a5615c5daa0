package figure

import (
	"image"

	"github.com/soocke/roi-plot-go/domain/notify"
)

// Router priorities. Handles sit above region bodies.
const (
	PriorityBody   = 0
	PriorityHandle = 1
)

type route struct {
	t        *Translator
	priority int
	seq      uint64
}

// Router hit-tests a single pointer against registered translators and
// keeps at most one drag session open.
type Router struct {
	routes  []route
	seq     uint64
	session *Translator
	// Miss is called for presses that hit no translator.
	Miss func(p image.Point)
}

// Register adds t at the given priority. Higher priorities and, within a
// priority, later registrations win the hit test.
func (r *Router) Register(t *Translator, priority int) *notify.Subscription {
	r.seq++
	seq := r.seq
	r.routes = append(r.routes, route{t: t, priority: priority, seq: seq})
	return notify.NewSubscription(func() { r.unregister(seq) })
}

func (r *Router) unregister(seq uint64) {
	for i, rt := range r.routes {
		if rt.seq == seq {
			if r.session == rt.t {
				r.session = nil
			}
			r.routes = append(r.routes[:i:i], r.routes[i+1:]...)
			return
		}
	}
}

// Len returns the number of registered translators.
func (r *Router) Len() int { return len(r.routes) }

// Session returns the translator currently dragging, or nil.
func (r *Router) Session() *Translator { return r.session }

// Hit returns the translator that a press at p would start, or nil.
func (r *Router) Hit(p image.Point) *Translator {
	var best *route
	for i := range r.routes {
		rt := &r.routes[i]
		f := rt.t.Target()
		if !rt.t.Active() || f == nil || !f.Visible() || !f.Contains(p) {
			continue
		}
		if best == nil || rt.priority > best.priority || (rt.priority == best.priority && rt.seq > best.seq) {
			best = rt
		}
	}
	if best == nil {
		return nil
	}
	return best.t
}

// Press starts a session on the topmost hit. A press while a session is
// open is ignored.
func (r *Router) Press(p image.Point) bool {
	if r.session != nil {
		return false
	}
	t := r.Hit(p)
	if t == nil || !t.Press(p) {
		if r.Miss != nil {
			r.Miss(p)
		}
		return false
	}
	r.session = t
	return true
}

func (r *Router) Drag(p image.Point) {
	if r.session != nil {
		r.session.Drag(p)
	}
}

// Release closes the open session, if any.
func (r *Router) Release(p image.Point) {
	t := r.session
	r.session = nil
	if t != nil {
		t.Release(p)
	}
}
