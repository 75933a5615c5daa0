package roi

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Rectangle is a box with its origin corner at Origin, side lengths along
// its own axes and a rotation about the origin.
type Rectangle struct {
	Origin  r2.Vec
	Lengths r2.Vec
	Angle   float64
}

// NewRectangle canonicalizes negative lengths by moving the origin, so the
// result always has non-negative extents.
func NewRectangle(origin, lengths r2.Vec, angle float64) Rectangle {
	local := r2.Vec{}
	if lengths.X < 0 {
		local.X = lengths.X
		lengths.X = -lengths.X
	}
	if lengths.Y < 0 {
		local.Y = lengths.Y
		lengths.Y = -lengths.Y
	}
	return Rectangle{Origin: r2.Add(origin, rotate(local, angle)), Lengths: lengths, Angle: angle}
}

// RectangleFromCorners returns the axis-aligned rectangle spanned by two
// opposite corners.
func RectangleFromCorners(a, c r2.Vec) Rectangle {
	return NewRectangle(a, r2.Sub(c, a), 0)
}

func (r Rectangle) Kind() Kind    { return KindRectangle }
func (r Rectangle) Point() r2.Vec { return r.Origin }

func (r Rectangle) Valid() bool {
	return finiteVec(r.Origin) && finiteVec(r.Lengths) && finite(r.Angle) && r.Lengths.X >= 0 && r.Lengths.Y >= 0
}

func (r Rectangle) params() []float64 {
	return []float64{r.Origin.X, r.Origin.Y, r.Lengths.X, r.Lengths.Y, r.Angle}
}

// Corners returns origin, the corner along the first side, the opposite
// corner and the corner along the second side.
func (r Rectangle) Corners() [4]r2.Vec {
	return [4]r2.Vec{
		r.Origin,
		r2.Add(r.Origin, rotate(r2.Vec{X: r.Lengths.X}, r.Angle)),
		r2.Add(r.Origin, rotate(r.Lengths, r.Angle)),
		r2.Add(r.Origin, rotate(r2.Vec{Y: r.Lengths.Y}, r.Angle)),
	}
}

// Centre returns the middle of the rectangle.
func (r Rectangle) Centre() r2.Vec {
	return r2.Add(r.Origin, rotate(r2.Scale(0.5, r.Lengths), r.Angle))
}

// Local maps p into the rectangle frame (origin at Origin, unrotated).
func (r Rectangle) Local(p r2.Vec) r2.Vec { return rotate(r2.Sub(p, r.Origin), -r.Angle) }

func (r Rectangle) Bounds() Rectangle {
	if r.Angle == 0 {
		return Rectangle{Origin: r.Origin, Lengths: r.Lengths}
	}
	c := r.Corners()
	return boundsOf(c[:])
}

func (r Rectangle) Translate(d r2.Vec) ROI {
	r.Origin = r2.Add(r.Origin, d)
	return r
}

func (r Rectangle) Contains(p r2.Vec) bool {
	l := r.Local(p)
	return l.X >= 0 && l.Y >= 0 && l.X <= r.Lengths.X && l.Y <= r.Lengths.Y
}

func (r Rectangle) Outline(int) ([]r2.Vec, bool) {
	c := r.Corners()
	return c[:], true
}

// Area returns the rectangle area.
func (r Rectangle) Area() float64 { return math.Abs(r.Lengths.X * r.Lengths.Y) }
