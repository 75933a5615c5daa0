package roi

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

func near(a, b r2.Vec) bool {
	return scalar.EqualWithinAbs(a.X, b.X, 1e-9) && scalar.EqualWithinAbs(a.Y, b.Y, 1e-9)
}

func TestKind_ParseRoundTrip(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(" " + k.String() + " ")
		if !ok || got != k {
			t.Fatalf("parse %q: got %v ok=%v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("none"); ok {
		t.Fatalf("none must not parse as a drawable kind")
	}
	if _, ok := ParseKind("spline"); ok {
		t.Fatalf("unknown names must not parse")
	}
}

func TestRectangle_NegativeLengthsCanonicalized(t *testing.T) {
	r := RectangleFromCorners(r2.Vec{X: 10, Y: 10}, r2.Vec{X: 2, Y: 4})
	if r.Origin != (r2.Vec{X: 2, Y: 4}) || r.Lengths != (r2.Vec{X: 8, Y: 6}) {
		t.Fatalf("unexpected rectangle %+v", r)
	}
	if !r.Valid() {
		t.Fatalf("canonical rectangle should be valid")
	}
	if !r.Contains(r2.Vec{X: 5, Y: 5}) || r.Contains(r2.Vec{X: 11, Y: 5}) {
		t.Fatalf("contains mismatch")
	}
	if r.Area() != 48 {
		t.Fatalf("area: %v", r.Area())
	}
}

func TestRectangle_RotatedBoundsAndContains(t *testing.T) {
	r := NewRectangle(r2.Vec{}, r2.Vec{X: 2, Y: 2}, math.Pi/4)
	b := r.Bounds()
	w := 2 * math.Sqrt2
	if !scalar.EqualWithinAbs(b.Lengths.X, w, 1e-9) || !scalar.EqualWithinAbs(b.Lengths.Y, w, 1e-9) {
		t.Fatalf("rotated bounds %+v", b)
	}
	if !r.Contains(r2.Vec{X: 0, Y: 1}) {
		t.Fatalf("point on the diagonal should be inside")
	}
	if r.Contains(r2.Vec{X: 1, Y: 0.1}) {
		t.Fatalf("point below the rotated edge should be outside")
	}
}

func TestEllipse_FromCornersAndBounds(t *testing.T) {
	e := EllipseFromCorners(r2.Vec{X: 0, Y: 0}, r2.Vec{X: 10, Y: 4})
	if e.Centre != (r2.Vec{X: 5, Y: 2}) || e.A != 5 || e.B != 2 {
		t.Fatalf("unexpected ellipse %+v", e)
	}
	b := e.Bounds()
	if !near(b.Origin, r2.Vec{}) || !near(b.Lengths, r2.Vec{X: 10, Y: 4}) {
		t.Fatalf("bounds %+v", b)
	}
	e.Angle = math.Pi / 2
	b = e.Bounds()
	if !scalar.EqualWithinAbs(b.Lengths.X, 4, 1e-9) || !scalar.EqualWithinAbs(b.Lengths.Y, 10, 1e-9) {
		t.Fatalf("quarter turn should swap extents, got %+v", b)
	}
	if !e.Contains(r2.Vec{X: 5, Y: 6.5}) || e.Contains(r2.Vec{X: 9, Y: 2}) {
		t.Fatalf("contains after rotation")
	}
}

func TestHyperbola_FromCornersScenario(t *testing.T) {
	h := HyperbolaFromCorners(r2.Vec{X: 0, Y: 10}, r2.Vec{X: 4, Y: -10})
	if h.Focus != (r2.Vec{X: 4, Y: 0}) {
		t.Fatalf("focus %v", h.Focus)
	}
	if h.SemiLatus != 10 || h.Eccentricity != 1.5 {
		t.Fatalf("l=%v e=%v", h.SemiLatus, h.Eccentricity)
	}
	if !near(h.Vertex(), r2.Vec{X: 0, Y: 0}) {
		t.Fatalf("vertex %v", h.Vertex())
	}
	b := h.Bounds()
	if !scalar.EqualWithinAbs(b.Origin.X, 0, 1e-9) || !scalar.EqualWithinAbs(b.Origin.X+b.Lengths.X, 4, 1e-9) {
		t.Fatalf("x bounds %+v", b)
	}
	if !scalar.EqualWithinAbs(b.Origin.Y, -10, 1e-9) || !scalar.EqualWithinAbs(b.Lengths.Y, 20, 1e-9) {
		t.Fatalf("y bounds %+v", b)
	}
}

func TestHyperbola_FromCornersFloorsEccentricity(t *testing.T) {
	h := HyperbolaFromCorners(r2.Vec{X: 0, Y: 1}, r2.Vec{X: 10, Y: -1})
	if h.Eccentricity != 1 {
		t.Fatalf("wide box should floor eccentricity to 1, got %v", h.Eccentricity)
	}
	h = HyperbolaFromCorners(r2.Vec{X: 3, Y: 1}, r2.Vec{X: 3, Y: -1})
	if h.Eccentricity != MaxEccentricity || !h.Valid() {
		t.Fatalf("zero width should clamp to max, got %v", h.Eccentricity)
	}
	h = HyperbolaFromCorners(r2.Vec{X: 3, Y: 1}, r2.Vec{X: 3, Y: 1})
	if h.Eccentricity != 1 || !h.Valid() {
		t.Fatalf("degenerate box should give e=1, got %v", h.Eccentricity)
	}
}

func TestClampEccentricity(t *testing.T) {
	cases := map[float64]float64{
		0.2:          1,
		1:            1,
		2.5:          2.5,
		math.Inf(1):  MaxEccentricity,
		math.Inf(-1): 1,
		math.NaN():   1,
	}
	for in, want := range cases {
		if got := ClampEccentricity(in); got != want {
			t.Fatalf("clamp(%v)=%v want %v", in, got, want)
		}
	}
}

func TestHyperbola_Contains(t *testing.T) {
	h := Hyperbola{Focus: r2.Vec{}, SemiLatus: 10, Eccentricity: 1.5}
	if !h.Contains(r2.Vec{}) || !h.Contains(r2.Vec{X: 100}) {
		t.Fatalf("focus side should be inside")
	}
	if h.Contains(r2.Vec{X: -5}) {
		t.Fatalf("beyond the vertex should be outside")
	}
}

func TestPolygon_EditsCopy(t *testing.T) {
	p := PolygonFromCorners(r2.Vec{}, r2.Vec{X: 4, Y: 4})
	if len(p.Points) != 4 || !p.Contains(r2.Vec{X: 2, Y: 2}) {
		t.Fatalf("unexpected polygon %+v", p)
	}
	q := p.InsertVertex(2, r2.Vec{X: 6, Y: 2})
	if len(q.Points) != 5 || len(p.Points) != 4 || q.Points[2] != (r2.Vec{X: 6, Y: 2}) {
		t.Fatalf("insert: %+v", q.Points)
	}
	q = q.WithVertex(0, r2.Vec{X: -1, Y: -1})
	if p.Points[0] != (r2.Vec{}) {
		t.Fatalf("WithVertex must not alias the source")
	}
	r, ok := q.RemoveVertex(2)
	if !ok || len(r.Points) != 4 {
		t.Fatalf("remove: ok=%v %+v", ok, r.Points)
	}
	tri := NewPolygon(r2.Vec{}, r2.Vec{X: 1}, r2.Vec{Y: 1})
	if _, ok := tri.RemoveVertex(0); ok {
		t.Fatalf("triangle must keep three vertices")
	}
}

func TestTranslate_AllKinds(t *testing.T) {
	d := r2.Vec{X: 3, Y: -2}
	rois := []ROI{
		Point{P: r2.Vec{X: 1, Y: 1}},
		Line{Start: r2.Vec{}, End: r2.Vec{X: 2, Y: 2}},
		RectangleFromCorners(r2.Vec{}, r2.Vec{X: 2, Y: 1}),
		EllipseFromCorners(r2.Vec{}, r2.Vec{X: 2, Y: 1}),
		HyperbolaFromCorners(r2.Vec{X: 0, Y: 10}, r2.Vec{X: 4, Y: -10}),
		PolygonFromCorners(r2.Vec{}, r2.Vec{X: 2, Y: 1}),
	}
	for _, r := range rois {
		moved := r.Translate(d)
		if moved.Kind() != r.Kind() {
			t.Fatalf("kind changed for %v", r.Kind())
		}
		if !near(moved.Point(), r2.Add(r.Point(), d)) {
			t.Fatalf("%v: point %v -> %v", r.Kind(), r.Point(), moved.Point())
		}
		back := moved.Translate(r2.Scale(-1, d))
		if !Equal(back, r, 1e-9) {
			t.Fatalf("%v: translate back mismatch", r.Kind())
		}
	}
}

func TestEqual(t *testing.T) {
	a := Line{Start: r2.Vec{}, End: r2.Vec{X: 1}}
	if !Equal(a, a, 0) || Equal(a, Point{}, 1) || !Equal(nil, nil, 0) || Equal(a, nil, 0) {
		t.Fatalf("equal semantics")
	}
	if Equal(NewPolygon(r2.Vec{}), NewPolygon(r2.Vec{}, r2.Vec{}), 0) {
		t.Fatalf("different vertex counts must differ")
	}
}
