package region

import (
	"fmt"
	"image"
	"math"

	"github.com/soocke/roi-plot-go/domain/figure"
	"github.com/soocke/roi-plot-go/domain/handler"
	"github.com/soocke/roi-plot-go/domain/notify"
	"github.com/soocke/roi-plot-go/domain/roi"
	"gonum.org/v1/gonum/spatial/r2"
)

// Shape is the screen figure of a region. It owns the handle figures, one
// translator per handle plus one for the body, the committed ROI and the
// transient ROI of a drag in progress.
type Shape struct {
	region  *Region
	parent  *figure.Layer
	router  *figure.Router
	handler handler.Handler

	handles     []*figure.Handle
	translators []*figure.Translator
	subs        notify.Set

	croi roi.ROI
	troi roi.ROI

	dirty    bool
	box      image.Rectangle
	visible  bool
	mobile   bool
	disposed bool

	// spt is the data-space press position of the running drag.
	spt r2.Vec
}

func newShape(r *Region, h handler.Handler, croi roi.ROI) *Shape {
	s := &Shape{
		region:  r,
		parent:  r.layer,
		router:  r.router,
		handler: h,
		croi:    croi,
		dirty:   true,
		visible: r.style.Visible,
		mobile:  r.style.Mobile,
	}
	s.parent.Add(s)
	s.configureHandles()
	return s
}

// ROI returns the transient ROI while dragging, the committed one otherwise.
func (s *Shape) ROI() roi.ROI {
	if s.troi != nil {
		return s.troi
	}
	return s.croi
}

// Committed returns the last committed ROI.
func (s *Shape) Committed() roi.ROI { return s.croi }

// Handler returns the current drag strategy.
func (s *Shape) Handler() handler.Handler { return s.handler }

// Handles returns the live handle figures.
func (s *Shape) Handles() []*figure.Handle { return append([]*figure.Handle(nil), s.handles...) }

// HandleCount returns the number of live handle figures.
func (s *Shape) HandleCount() int { return len(s.handles) }

// Dragging reports whether one of the shape's translators has a session.
func (s *Shape) Dragging() bool {
	for _, t := range s.translators {
		if t.Dragging() {
			return true
		}
	}
	return false
}

func (s *Shape) Visible() bool { return s.visible && !s.disposed }

// Bounds returns the pixel box of the ROI joined with every handle. The
// box is recomputed only when the ROI changed since the last call.
func (s *Shape) Bounds() image.Rectangle {
	if r := s.ROI(); r != nil && s.dirty {
		s.calcBox(r)
	}
	b := s.box
	for _, h := range s.handles {
		b = b.Union(h.Bounds())
	}
	return b
}

// calcBox is the only place the pixel box is derived from a ROI.
func (s *Shape) calcBox(r roi.ROI) {
	s.box = PixelBounds(s.region.CoordinateSystem(), r)
	s.dirty = false
}

// Contains hit-tests a pixel against the committed ROI in data space.
// Open outlines (points, lines) also accept pixels within half a handle of
// the drawn path.
func (s *Shape) Contains(p image.Point) bool {
	if s.croi == nil {
		return p.In(s.Bounds())
	}
	cs := s.region.CoordinateSystem()
	if s.croi.Contains(cs.PointToValue(p)) {
		return true
	}
	pts, closed := s.croi.Outline(outlineSamples)
	if closed {
		return false
	}
	tol := float64(s.side()) / 2
	q := r2.Vec{X: float64(p.X), Y: float64(p.Y)}
	prev := cs.ValueToPosition(pts[0])
	if r2.Norm(r2.Sub(q, prev)) <= tol {
		return true
	}
	for _, v := range pts[1:] {
		cur := cs.ValueToPosition(v)
		if segmentDistance(q, prev, cur) <= tol {
			return true
		}
		prev = cur
	}
	return false
}

func segmentDistance(p, a, b r2.Vec) float64 {
	d := r2.Sub(b, a)
	n2 := r2.Dot(d, d)
	if n2 == 0 {
		return r2.Norm(r2.Sub(p, a))
	}
	t := math.Max(0, math.Min(1, r2.Dot(r2.Sub(p, a), d)/n2))
	return r2.Norm(r2.Sub(p, r2.Add(a, r2.Scale(t, d))))
}

func (s *Shape) side() int {
	if s.region.handleSide > 0 {
		return s.region.handleSide
	}
	return figure.DefaultSide
}

// sideValue converts the handle side to data units along x.
func (s *Shape) sideValue() float64 {
	cs := s.region.CoordinateSystem()
	a := cs.PositionToValue(r2.Vec{})
	b := cs.PositionToValue(r2.Vec{X: float64(s.side())})
	return math.Abs(b.X - a.X)
}

// HandlePoints returns the pixel positions of all handles.
func (s *Shape) HandlePoints() []image.Point {
	pts := make([]image.Point, len(s.handles))
	for i, h := range s.handles {
		pts[i] = h.SelectionPoint()
	}
	return pts
}

// SetCentre moves the ROI so that its centre handle, or its reference point
// for kinds without one, lands on pixel p. No events fire.
func (s *Shape) SetCentre(p image.Point) error {
	if s.croi == nil {
		panic(ErrMissingROI)
	}
	if s.Dragging() {
		return fmt.Errorf("region %q: set centre: %w", s.region.Name(), ErrDragging)
	}
	anchor := s.croi.Point()
	if c := s.handler.CentreHandle(); c != handler.NoHandle {
		anchor = s.handler.AnchorPoint(c, s.sideValue())
	}
	d := r2.Sub(s.region.CoordinateSystem().PointToValue(p), anchor)
	s.updateFromROI(s.croi.Translate(d))
	s.region.updateConnectionBounds()
	return nil
}

// configureHandles drops every handle and translator and rebuilds them from
// the handler.
func (s *Shape) configureHandles() {
	s.teardown()
	cs := s.region.CoordinateSystem()
	side, sideValue := s.side(), s.sideValue()
	show := s.visible && s.handlesShown()
	for i := 0; i < s.handler.Size(); i++ {
		at := cs.ValueToPoint(s.handler.AnchorPoint(i, sideValue))
		h := figure.NewHandle(i, at, side, s.region.style.Color)
		h.SetAlpha(s.region.style.Alpha)
		h.SetVisible(show)
		s.parent.Add(h)
		s.handles = append(s.handles, h)

		t := figure.NewTranslator(h)
		t.SetActive(s.mobile)
		s.subs.Add(t.AddListener(handleDrag{s}))
		s.subs.Add(s.router.Register(t, figure.PriorityHandle))
		s.translators = append(s.translators, t)
	}
	body := figure.NewTranslator(s)
	body.SetActive(s.mobile)
	s.subs.Add(body.AddListener(bodyDrag{s}))
	s.subs.Add(s.router.Register(body, figure.PriorityBody))
	s.translators = append(s.translators, body)
	s.dirty = true
	s.region.debug("handles configured", "kind", s.handler.ROI().Kind().String(), "count", len(s.handles))
}

func (s *Shape) teardown() {
	s.subs.RevokeAll()
	for _, t := range s.translators {
		t.Dispose()
	}
	for _, h := range s.handles {
		h.Dispose()
		s.parent.Remove(h)
	}
	s.translators = nil
	s.handles = nil
}

func (s *Shape) handlesShown() bool { return s.mobile || s.region.style.TrackMouse }

// updateFromROI commits r and rebinds the handler to it.
func (s *Shape) updateFromROI(r roi.ROI) {
	s.croi = r
	if err := s.handler.SetROI(r); err != nil {
		h, err := s.region.capability.NewHandler(r)
		if err != nil {
			panic(err)
		}
		s.handler = h
	}
	s.intUpdateFromROI(r)
}

// intUpdateFromROI moves the handles to r, rebuilding them when the count
// no longer matches the handler.
func (s *Shape) intUpdateFromROI(r roi.ROI) {
	if len(s.handles) != s.handler.Size() {
		s.configureHandles()
	} else if h, err := s.region.capability.NewHandler(r); err == nil {
		cs := s.region.CoordinateSystem()
		sv := s.sideValue()
		for i, fig := range s.handles {
			fig.SetSelectionPoint(cs.ValueToPoint(h.AnchorPoint(i, sv)))
		}
	}
	s.dirty = true
	s.calcBox(r)
	s.parent.Repaint()
}

// refresh repositions everything after an axis change.
func (s *Shape) refresh() {
	if r := s.ROI(); r != nil {
		s.intUpdateFromROI(r)
	}
}

func (s *Shape) setVisible(v bool) {
	s.visible = v
	show := v && s.handlesShown()
	for _, h := range s.handles {
		h.SetVisible(show)
	}
}

func (s *Shape) setMobile(m bool) {
	s.mobile = m
	show := s.visible && s.handlesShown()
	for _, h := range s.handles {
		h.SetVisible(show)
	}
	for _, t := range s.translators {
		t.SetActive(m)
	}
}

func (s *Shape) setHandleStyle() {
	for _, h := range s.handles {
		h.SetColor(s.region.style.Color)
		h.SetAlpha(s.region.style.Alpha)
	}
}

func (s *Shape) dispose() {
	if s.disposed {
		return
	}
	s.teardown()
	s.handler.UnconfigureDragging()
	s.troi = nil
	s.parent.Remove(s)
	s.disposed = true
}

func (s *Shape) valueAt(p image.Point) r2.Vec {
	return s.region.CoordinateSystem().PointToValue(p)
}

// handleDrag interprets a handle translator session through the handler.
type handleDrag struct{ s *Shape }

func (d handleDrag) OnActivate(t *figure.Translator) {
	s := d.s
	s.troi = nil
	s.spt = s.valueAt(t.StartLocation())
	i := s.indexOf(t.Target())
	s.handler.ConfigureDragging(i, handler.StatusFor(s.handler, i))
}

func (d handleDrag) TranslationAfter(t *figure.Translator) {
	s := d.s
	s.troi = s.handler.InterpretMouseDragging(s.spt, s.valueAt(t.EndLocation()))
	s.intUpdateFromROI(s.troi)
	s.region.updateConnectionBounds()
	s.region.fireDragged(s.troi, dragKindFor(s.handler.Status()))
}

func (d handleDrag) TranslationCompleted(t *figure.Translator) {
	s := d.s
	s.troi = nil
	croi := s.handler.InterpretMouseDragging(s.spt, s.valueAt(t.EndLocation()))
	s.handler.UnconfigureDragging()
	s.updateFromROI(croi)
	s.region.updateConnectionBounds()
	s.region.fireChanged(croi)
	s.region.fireSelection()
}

func (s *Shape) indexOf(f figure.Figure) int {
	for i, h := range s.handles {
		if figure.Figure(h) == f {
			return i
		}
	}
	return handler.NoHandle
}

// bodyDrag translates the whole ROI by the dragged distance.
type bodyDrag struct{ s *Shape }

func (d bodyDrag) OnActivate(t *figure.Translator) {
	d.s.troi = nil
	d.s.spt = d.s.valueAt(t.StartLocation())
}

func (d bodyDrag) moved(t *figure.Translator) roi.ROI {
	delta := r2.Sub(d.s.valueAt(t.EndLocation()), d.s.spt)
	if delta == (r2.Vec{}) {
		return d.s.croi
	}
	return d.s.croi.Translate(delta)
}

func (d bodyDrag) TranslationAfter(t *figure.Translator) {
	s := d.s
	s.troi = d.moved(t)
	s.intUpdateFromROI(s.troi)
	s.region.updateConnectionBounds()
	s.region.fireDragged(s.troi, Translate)
}

func (d bodyDrag) TranslationCompleted(t *figure.Translator) {
	s := d.s
	croi := d.moved(t)
	s.troi = nil
	s.updateFromROI(croi)
	s.region.updateConnectionBounds()
	s.region.fireChanged(croi)
	s.region.fireSelection()
}
