package handler

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/soocke/roi-plot-go/domain/roi"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

func sample() []roi.ROI {
	return []roi.ROI{
		roi.Point{P: r2.Vec{X: 1, Y: 2}},
		roi.Line{Start: r2.Vec{}, End: r2.Vec{X: 3, Y: 4}},
		roi.RectangleFromCorners(r2.Vec{X: 10, Y: 10}, r2.Vec{X: 20, Y: 30}),
		roi.Ellipse{Centre: r2.Vec{X: 5, Y: 5}, A: 4, B: 2, Angle: 0.3},
		roi.HyperbolaFromCorners(r2.Vec{X: 0, Y: 10}, r2.Vec{X: 4, Y: -10}),
		roi.PolygonFromCorners(r2.Vec{}, r2.Vec{X: 4, Y: 3}),
	}
}

func mustNew(t *testing.T, r roi.ROI) Handler {
	t.Helper()
	h, err := New(r)
	if err != nil {
		t.Fatalf("new handler for %v: %v", r.Kind(), err)
	}
	return h
}

func near(a, b r2.Vec) bool {
	return scalar.EqualWithinAbs(a.X, b.X, 1e-9) && scalar.EqualWithinAbs(a.Y, b.Y, 1e-9)
}

func TestHandler_SizePerKind(t *testing.T) {
	want := map[roi.Kind]int{
		roi.KindPoint:     1,
		roi.KindLine:      2,
		roi.KindRectangle: 4,
		roi.KindEllipse:   5,
		roi.KindHyperbola: 4,
		roi.KindPolygon:   4,
	}
	for _, r := range sample() {
		h := mustNew(t, r)
		if h.Size() != want[r.Kind()] {
			t.Fatalf("%v: size %d want %d", r.Kind(), h.Size(), want[r.Kind()])
		}
		if h.Dragged() != NoHandle || h.Status() != None {
			t.Fatalf("%v: fresh handler should be unconfigured", r.Kind())
		}
	}
}

func TestHandler_ZeroDeltaIsIdempotent(t *testing.T) {
	p := r2.Vec{X: 7, Y: -3}
	for _, r := range sample() {
		h := mustNew(t, r)
		for i := 0; i < h.Size(); i++ {
			for _, s := range []Status{Resize, Move, StatusFor(h, i)} {
				h.ConfigureDragging(i, s)
				got := h.InterpretMouseDragging(p, p)
				if !roi.Equal(got, r, 0) {
					t.Fatalf("%v handle %d %v: zero drag changed roi", r.Kind(), i, s)
				}
				h.UnconfigureDragging()
			}
		}
	}
}

func TestHandler_MoveTranslates(t *testing.T) {
	d := r2.Vec{X: 2, Y: 5}
	for _, r := range sample() {
		h := mustNew(t, r)
		h.ConfigureDragging(0, Move)
		got := h.InterpretMouseDragging(r2.Vec{}, d)
		if !roi.Equal(got, r.Translate(d), 1e-12) {
			t.Fatalf("%v: move mismatch", r.Kind())
		}
		if !roi.Equal(h.ROI(), r, 0) {
			t.Fatalf("%v: interpret must not rebind the handler", r.Kind())
		}
	}
}

func TestHandler_UnconfiguredReturnsCommitted(t *testing.T) {
	r := sample()[2]
	h := mustNew(t, r)
	if got := h.InterpretMouseDragging(r2.Vec{}, r2.Vec{X: 1}); !roi.Equal(got, r, 0) {
		t.Fatalf("no configured handle should leave roi unchanged")
	}
}

func TestStatusFor_CentrelessKindsResize(t *testing.T) {
	line := mustNew(t, sample()[1])
	if line.CentreHandle() != NoHandle {
		t.Fatalf("line has no centre handle")
	}
	for i := 0; i < line.Size(); i++ {
		if StatusFor(line, i) != Resize {
			t.Fatalf("line handle %d should resize", i)
		}
	}
	ell := mustNew(t, sample()[3])
	if StatusFor(ell, EllipseCentre) != Move || StatusFor(ell, EllipseMajor) != Resize {
		t.Fatalf("ellipse centre should move, ends resize")
	}
}

func TestRectangleHandler_CornerDragKeepsOpposite(t *testing.T) {
	r := roi.RectangleFromCorners(r2.Vec{X: 10, Y: 10}, r2.Vec{X: 20, Y: 30})
	h := NewRectangle(r)
	h.ConfigureDragging(2, StatusFor(h, 2))
	got := h.InterpretMouseDragging(r2.Vec{X: 20, Y: 30}, r2.Vec{X: 25, Y: 40}).(roi.Rectangle)
	if got.Origin != (r2.Vec{X: 10, Y: 10}) || got.Lengths != (r2.Vec{X: 15, Y: 30}) {
		t.Fatalf("corner 2 drag: %+v", got)
	}
	h.ConfigureDragging(0, Resize)
	got = h.InterpretMouseDragging(r2.Vec{}, r2.Vec{X: 15, Y: 25}).(roi.Rectangle)
	if got.Origin != (r2.Vec{X: 20, Y: 30}) || got.Lengths != (r2.Vec{X: 5, Y: 5}) {
		t.Fatalf("origin dragged past opposite corner should flip: %+v", got)
	}
	h.ConfigureDragging(1, Resize)
	got = h.InterpretMouseDragging(r2.Vec{}, r2.Vec{X: 4}).(roi.Rectangle)
	if got.Origin != (r2.Vec{X: 10, Y: 10}) || got.Lengths != (r2.Vec{X: 14, Y: 20}) {
		t.Fatalf("side corner drag: %+v", got)
	}
}

func TestEllipseHandler_MajorDragRotates(t *testing.T) {
	e := roi.Ellipse{Centre: r2.Vec{}, A: 4, B: 2}
	h := NewEllipse(e)
	if !near(h.AnchorPoint(EllipseMajor, 0), r2.Vec{X: 4}) || !near(h.AnchorPoint(EllipseMinorOpposite, 0), r2.Vec{Y: -2}) {
		t.Fatalf("anchors: %v %v", h.AnchorPoint(EllipseMajor, 0), h.AnchorPoint(EllipseMinorOpposite, 0))
	}
	h.ConfigureDragging(EllipseMajor, Resize)
	got := h.InterpretMouseDragging(r2.Vec{X: 4}, r2.Vec{Y: 4}).(roi.Ellipse)
	if !scalar.EqualWithinAbs(got.A, 4, 1e-9) || !scalar.EqualWithinAbs(got.Angle, math.Pi/2, 1e-9) || got.B != 2 {
		t.Fatalf("major drag: %+v", got)
	}
	h.ConfigureDragging(EllipseMinor, Resize)
	got = h.InterpretMouseDragging(r2.Vec{}, r2.Vec{X: 1, Y: 1}).(roi.Ellipse)
	if got.A != 4 || got.Angle != 0 || !scalar.EqualWithinAbs(got.B, 3, 1e-9) {
		t.Fatalf("minor drag: %+v", got)
	}
}

func TestHyperbolaHandler_VertexSetsEccentricity(t *testing.T) {
	hb := roi.HyperbolaFromCorners(r2.Vec{X: 0, Y: 10}, r2.Vec{X: 4, Y: -10})
	h := NewHyperbola(hb)
	h.ConfigureDragging(HyperbolaVertex, StatusFor(h, HyperbolaVertex))
	// Vertex from x=0 to x=-1 puts it 5 from the focus: e = 10/5 - 1 = 1.
	got := h.InterpretMouseDragging(r2.Vec{}, r2.Vec{X: -1}).(roi.Hyperbola)
	if !scalar.EqualWithinAbs(got.Eccentricity, 1, 1e-9) {
		t.Fatalf("vertex drag e=%v", got.Eccentricity)
	}
	got = h.InterpretMouseDragging(r2.Vec{}, r2.Vec{X: 10}).(roi.Hyperbola)
	if got.Eccentricity != roi.MaxEccentricity {
		t.Fatalf("vertex past the focus should clamp, e=%v", got.Eccentricity)
	}
	h.ConfigureDragging(HyperbolaLatus, Resize)
	got = h.InterpretMouseDragging(r2.Vec{}, r2.Vec{Y: 2}).(roi.Hyperbola)
	if !scalar.EqualWithinAbs(got.SemiLatus, 12, 1e-9) || got.Eccentricity != 1.5 {
		t.Fatalf("latus drag: %+v", got)
	}
}

func TestHyperbolaHandler_EccentricityNeverBelowOne(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	rv := func(scale float64) r2.Vec {
		return r2.Vec{X: (rng.Float64()*2 - 1) * scale, Y: (rng.Float64()*2 - 1) * scale}
	}
	for i := 0; i < 2000; i++ {
		scale := math.Pow(10, float64(rng.Intn(12)-4))
		hb := roi.HyperbolaFromCorners(rv(scale), rv(scale))
		if hb.Eccentricity < 1 || !hb.Valid() {
			t.Fatalf("from corners gave %+v", hb)
		}
		h := NewHyperbola(hb)
		idx := rng.Intn(h.Size())
		h.ConfigureDragging(idx, StatusFor(h, idx))
		got := h.InterpretMouseDragging(rv(scale), rv(scale)).(roi.Hyperbola)
		if got.Eccentricity < 1 || !got.Valid() {
			t.Fatalf("handle %d gave %+v", idx, got)
		}
	}
}

func TestPolygonHandler_VertexDrag(t *testing.T) {
	p := roi.PolygonFromCorners(r2.Vec{}, r2.Vec{X: 4, Y: 3})
	h := NewPolygon(p)
	h.ConfigureDragging(2, StatusFor(h, 2))
	got := h.InterpretMouseDragging(r2.Vec{}, r2.Vec{X: 1, Y: 1}).(roi.Polygon)
	if got.Points[2] != (r2.Vec{X: 5, Y: 4}) || p.Points[2] != (r2.Vec{X: 4, Y: 3}) {
		t.Fatalf("vertex drag: %v (source %v)", got.Points, p.Points)
	}
	if err := h.SetROI(p.InsertVertex(1, r2.Vec{X: 2, Y: -1})); err != nil {
		t.Fatalf("set roi: %v", err)
	}
	if h.Size() != 5 {
		t.Fatalf("size should follow vertex count, got %d", h.Size())
	}
}

func TestHandler_NonFiniteDragIgnored(t *testing.T) {
	r := sample()[3]
	h := mustNew(t, r)
	h.ConfigureDragging(EllipseMajor, Resize)
	got := h.InterpretMouseDragging(r2.Vec{}, r2.Vec{X: math.Inf(1)})
	if !roi.Equal(got, r, 0) {
		t.Fatalf("non-finite drag should leave the roi unchanged")
	}
}

func TestHandler_SetROIKindMismatch(t *testing.T) {
	h := mustNew(t, sample()[2])
	err := h.SetROI(roi.Point{})
	if !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("expected ErrKindMismatch, got %v", err)
	}
	if _, err := New(nil); !errors.Is(err, ErrKindMismatch) {
		t.Fatalf("nil roi: %v", err)
	}
}
