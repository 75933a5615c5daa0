package roi

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Polygon is a closed polygon through its vertices.
type Polygon struct {
	Points []r2.Vec
}

// NewPolygon copies pts into a new polygon.
func NewPolygon(pts ...r2.Vec) Polygon {
	return Polygon{Points: append([]r2.Vec(nil), pts...)}
}

// PolygonFromCorners returns the four-vertex polygon of the axis-aligned box
// spanned by two opposite corners.
func PolygonFromCorners(a, c r2.Vec) Polygon {
	return NewPolygon(a, r2.Vec{X: c.X, Y: a.Y}, c, r2.Vec{X: a.X, Y: c.Y})
}

func (p Polygon) Kind() Kind { return KindPolygon }

func (p Polygon) Point() r2.Vec {
	if len(p.Points) == 0 {
		return r2.Vec{}
	}
	return p.Points[0]
}

func (p Polygon) Valid() bool {
	if len(p.Points) == 0 {
		return false
	}
	for _, v := range p.Points {
		if !finiteVec(v) {
			return false
		}
	}
	return true
}

func (p Polygon) params() []float64 {
	out := make([]float64, 0, 2*len(p.Points))
	for _, v := range p.Points {
		out = append(out, v.X, v.Y)
	}
	return out
}

func (p Polygon) Bounds() Rectangle { return boundsOf(p.Points) }

func (p Polygon) Translate(d r2.Vec) ROI {
	out := make([]r2.Vec, len(p.Points))
	for i, v := range p.Points {
		out[i] = r2.Add(v, d)
	}
	return Polygon{Points: out}
}

// WithVertex returns a copy with vertex i moved to v.
func (p Polygon) WithVertex(i int, v r2.Vec) Polygon {
	q := NewPolygon(p.Points...)
	if i >= 0 && i < len(q.Points) {
		q.Points[i] = v
	}
	return q
}

// InsertVertex returns a copy with v inserted before index i. An index past
// the end appends.
func (p Polygon) InsertVertex(i int, v r2.Vec) Polygon {
	if i < 0 {
		i = 0
	}
	if i > len(p.Points) {
		i = len(p.Points)
	}
	out := make([]r2.Vec, 0, len(p.Points)+1)
	out = append(out, p.Points[:i]...)
	out = append(out, v)
	out = append(out, p.Points[i:]...)
	return Polygon{Points: out}
}

// RemoveVertex returns a copy without vertex i. Polygons keep at least
// three vertices; ok is false when nothing was removed.
func (p Polygon) RemoveVertex(i int) (q Polygon, ok bool) {
	if i < 0 || i >= len(p.Points) || len(p.Points) <= 3 {
		return NewPolygon(p.Points...), false
	}
	out := make([]r2.Vec, 0, len(p.Points)-1)
	out = append(out, p.Points[:i]...)
	out = append(out, p.Points[i+1:]...)
	return Polygon{Points: out}, true
}

// Contains uses the even-odd rule.
func (p Polygon) Contains(q r2.Vec) bool {
	in := false
	n := len(p.Points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.Points[i], p.Points[j]
		if (a.Y > q.Y) != (b.Y > q.Y) && q.X < (b.X-a.X)*(q.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

func (p Polygon) Outline(int) ([]r2.Vec, bool) {
	return append([]r2.Vec(nil), p.Points...), true
}
