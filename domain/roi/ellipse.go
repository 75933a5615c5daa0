package roi

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Ellipse is centred on Centre with semi-axis A along Angle and semi-axis
// B perpendicular to it. A may be shorter than B.
type Ellipse struct {
	Centre r2.Vec
	A, B   float64
	Angle  float64
}

// EllipseFromCorners returns the axis-aligned ellipse inscribed in the box
// spanned by two opposite corners.
func EllipseFromCorners(a, c r2.Vec) Ellipse {
	return Ellipse{
		Centre: r2.Scale(0.5, r2.Add(a, c)),
		A:      0.5 * math.Abs(c.X-a.X),
		B:      0.5 * math.Abs(c.Y-a.Y),
	}
}

func (e Ellipse) Kind() Kind    { return KindEllipse }
func (e Ellipse) Point() r2.Vec { return e.Centre }

func (e Ellipse) Valid() bool {
	return finiteVec(e.Centre) && finite(e.A, e.B, e.Angle) && e.A >= 0 && e.B >= 0
}

func (e Ellipse) params() []float64 {
	return []float64{e.Centre.X, e.Centre.Y, e.A, e.B, e.Angle}
}

// Axis returns the unit vectors along A and along B.
func (e Ellipse) Axis() (major, minor r2.Vec) {
	s, c := math.Sincos(e.Angle)
	return r2.Vec{X: c, Y: s}, r2.Vec{X: -s, Y: c}
}

// PointAt returns the boundary point at parametric angle t.
func (e Ellipse) PointAt(t float64) r2.Vec {
	s, c := math.Sincos(t)
	return r2.Add(e.Centre, rotate(r2.Vec{X: e.A * c, Y: e.B * s}, e.Angle))
}

func (e Ellipse) Bounds() Rectangle {
	s, c := math.Sincos(e.Angle)
	hw := math.Hypot(e.A*c, e.B*s)
	hh := math.Hypot(e.A*s, e.B*c)
	return Rectangle{
		Origin:  r2.Vec{X: e.Centre.X - hw, Y: e.Centre.Y - hh},
		Lengths: r2.Vec{X: 2 * hw, Y: 2 * hh},
	}
}

func (e Ellipse) Translate(d r2.Vec) ROI {
	e.Centre = r2.Add(e.Centre, d)
	return e
}

func (e Ellipse) Contains(p r2.Vec) bool {
	if e.A == 0 || e.B == 0 {
		return false
	}
	l := rotate(r2.Sub(p, e.Centre), -e.Angle)
	x, y := l.X/e.A, l.Y/e.B
	return x*x+y*y <= 1
}

func (e Ellipse) Outline(samples int) ([]r2.Vec, bool) {
	if samples < 8 {
		samples = 8
	}
	pts := make([]r2.Vec, samples)
	for i := range pts {
		pts[i] = e.PointAt(2 * math.Pi * float64(i) / float64(samples))
	}
	return pts, true
}
