// Package roi holds the data-space region-of-interest models. Every ROI is
// an immutable value: edits return a new ROI.
package roi

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Kind tags the ROI variant.
type Kind int

const (
	KindNone Kind = iota
	KindPoint
	KindLine
	KindRectangle
	KindEllipse
	KindHyperbola
	KindPolygon
)

var kindNames = map[Kind]string{
	KindNone:      "none",
	KindPoint:     "point",
	KindLine:      "line",
	KindRectangle: "rectangle",
	KindEllipse:   "ellipse",
	KindHyperbola: "hyperbola",
	KindPolygon:   "polygon",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind maps a name such as "ellipse" back to its Kind.
func ParseKind(s string) (Kind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if k != KindNone && name == s {
			return k, true
		}
	}
	return KindNone, false
}

// Kinds lists every drawable kind in a stable order.
func Kinds() []Kind {
	return []Kind{KindPoint, KindLine, KindRectangle, KindEllipse, KindHyperbola, KindPolygon}
}

// ROI is a geometric region in data space.
type ROI interface {
	Kind() Kind
	// Point is the reference point: origin, centre, focus or first vertex.
	Point() r2.Vec
	// Bounds is the axis-aligned rectangle enclosing the region.
	Bounds() Rectangle
	Translate(d r2.Vec) ROI
	Contains(p r2.Vec) bool
	// Valid reports whether every parameter is finite and well formed.
	Valid() bool
	// Outline samples the boundary; closed tells whether the last point
	// joins the first.
	Outline(samples int) (pts []r2.Vec, closed bool)

	params() []float64
}

// Equal reports whether a and b are the same kind with parameters equal
// within tol (absolute or relative).
func Equal(a, b ROI, tol float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	pa, pb := a.params(), b.params()
	if len(pa) != len(pb) {
		return false
	}
	for i := range pa {
		if !scalar.EqualWithinAbsOrRel(pa[i], pb[i], tol, tol) {
			return false
		}
	}
	return true
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func finiteVec(v r2.Vec) bool { return finite(v.X, v.Y) }

// rotate turns v by angle radians about the origin.
func rotate(v r2.Vec, angle float64) r2.Vec {
	if angle == 0 {
		return v
	}
	return r2.Rotate(v, angle, r2.Vec{})
}

// boundsOf returns the axis-aligned rectangle around pts.
func boundsOf(pts []r2.Vec) Rectangle {
	if len(pts) == 0 {
		return Rectangle{}
	}
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo.X, lo.Y = math.Min(lo.X, p.X), math.Min(lo.Y, p.Y)
		hi.X, hi.Y = math.Max(hi.X, p.X), math.Max(hi.Y, p.Y)
	}
	return Rectangle{Origin: lo, Lengths: r2.Sub(hi, lo)}
}
