// Package figure is the screen-side model the regions draw into: a layer of
// child figures, square selection handles, drag translators and a router
// that feeds pointer events to them. It holds no toolkit state; a view
// renders a Layer by walking its children.
package figure

import (
	"image"

	"github.com/soocke/roi-plot-go/domain/notify"
)

// Figure is a child of a Layer.
type Figure interface {
	Bounds() image.Rectangle
	Visible() bool
	Contains(p image.Point) bool
}

// Layer is the parent figure shared by every region on a plot.
type Layer struct {
	bounds   image.Rectangle
	children []Figure
	repaints int
	added    int
	removed  int
	onPaint  notify.Listeners[func()]
}

// NewLayer returns an empty layer covering bounds.
func NewLayer(bounds image.Rectangle) *Layer { return &Layer{bounds: bounds} }

func (l *Layer) Bounds() image.Rectangle     { return l.bounds }
func (l *Layer) SetBounds(b image.Rectangle) { l.bounds = b }

// Add appends f on top of the existing children. Nil and already present
// figures are ignored.
func (l *Layer) Add(f Figure) {
	if l == nil || f == nil || l.Has(f) {
		return
	}
	l.children = append(l.children, f)
	l.added++
}

// Remove detaches f and reports whether it was present. Removing a figure
// twice is a no-op.
func (l *Layer) Remove(f Figure) bool {
	if l == nil {
		return false
	}
	for i, c := range l.children {
		if c == f {
			l.children = append(l.children[:i:i], l.children[i+1:]...)
			l.removed++
			return true
		}
	}
	return false
}

// Has reports whether f is a child.
func (l *Layer) Has(f Figure) bool {
	for _, c := range l.children {
		if c == f {
			return true
		}
	}
	return false
}

// Children returns the children bottom to top.
func (l *Layer) Children() []Figure {
	if l == nil {
		return nil
	}
	return append([]Figure(nil), l.children...)
}

func (l *Layer) Len() int { return len(l.children) }

// Repaint records a repaint request and notifies OnRepaint listeners.
func (l *Layer) Repaint() {
	if l == nil {
		return
	}
	l.repaints++
	l.onPaint.Each(func(fn func()) { fn() })
}

// OnRepaint registers fn for repaint requests.
func (l *Layer) OnRepaint(fn func()) *notify.Subscription { return l.onPaint.Add(fn) }

// Stats returns how many repaints, adds and removes the layer has seen.
func (l *Layer) Stats() (repaints, added, removed int) {
	return l.repaints, l.added, l.removed
}
