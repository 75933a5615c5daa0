package roi

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Line is a segment from Start to End.
type Line struct {
	Start, End r2.Vec
}

// LineFromCorners returns the segment from a to c.
func LineFromCorners(a, c r2.Vec) Line { return Line{Start: a, End: c} }

func (l Line) Kind() Kind    { return KindLine }
func (l Line) Point() r2.Vec { return l.Start }
func (l Line) Valid() bool   { return finiteVec(l.Start) && finiteVec(l.End) }

func (l Line) params() []float64 {
	return []float64{l.Start.X, l.Start.Y, l.End.X, l.End.Y}
}

// Length returns the segment length.
func (l Line) Length() float64 { return r2.Norm(r2.Sub(l.End, l.Start)) }

// Angle returns the direction of the segment in radians.
func (l Line) Angle() float64 {
	d := r2.Sub(l.End, l.Start)
	return math.Atan2(d.Y, d.X)
}

func (l Line) Bounds() Rectangle { return boundsOf([]r2.Vec{l.Start, l.End}) }

func (l Line) Translate(d r2.Vec) ROI {
	return Line{Start: r2.Add(l.Start, d), End: r2.Add(l.End, d)}
}

// Contains reports whether p lies on the segment, within rounding.
func (l Line) Contains(p r2.Vec) bool {
	d := r2.Sub(l.End, l.Start)
	n2 := r2.Dot(d, d)
	if n2 == 0 {
		return p == l.Start
	}
	t := r2.Dot(r2.Sub(p, l.Start), d) / n2
	if t < 0 || t > 1 {
		return false
	}
	closest := r2.Add(l.Start, r2.Scale(t, d))
	return r2.Norm(r2.Sub(p, closest)) <= 1e-9*(1+math.Sqrt(n2))
}

func (l Line) Outline(int) ([]r2.Vec, bool) { return []r2.Vec{l.Start, l.End}, false }
