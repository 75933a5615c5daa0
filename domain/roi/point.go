package roi

import "gonum.org/v1/gonum/spatial/r2"

// Point is a single data-space position.
type Point struct {
	P r2.Vec
}

func (p Point) Kind() Kind        { return KindPoint }
func (p Point) Point() r2.Vec     { return p.P }
func (p Point) Bounds() Rectangle { return Rectangle{Origin: p.P} }
func (p Point) Valid() bool       { return finiteVec(p.P) }
func (p Point) params() []float64 { return []float64{p.P.X, p.P.Y} }

func (p Point) Translate(d r2.Vec) ROI { return Point{P: r2.Add(p.P, d)} }

// Contains reports whether q is exactly the point.
func (p Point) Contains(q r2.Vec) bool { return p.P == q }

func (p Point) Outline(int) ([]r2.Vec, bool) { return []r2.Vec{p.P}, false }

// PointFromCorners places the point at the second corner, where the
// creation gesture was released.
func PointFromCorners(_, c r2.Vec) Point { return Point{P: c} }
