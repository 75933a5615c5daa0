package roi

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// MaxEccentricity bounds the eccentricity of a Hyperbola so that its
// parameters stay finite when the vertex collapses onto the focus.
const MaxEccentricity = 1e6

// Hyperbola is one branch of a hyperbola given in polar form about its
// focus: r(θ) = SemiLatus / (1 - Eccentricity·cos θ), with θ measured from
// the direction Angle. The vertex sits at θ = π, the semi-latus-rectum ends
// at θ = ±π/2.
type Hyperbola struct {
	Focus        r2.Vec
	SemiLatus    float64
	Eccentricity float64
	Angle        float64
}

// ClampEccentricity floors e at 1 and keeps it finite. NaN becomes 1.
func ClampEccentricity(e float64) float64 {
	switch {
	case math.IsNaN(e):
		return 1
	case e > MaxEccentricity:
		return MaxEccentricity
	case e < 1:
		return 1
	}
	return e
}

// HyperbolaFromCorners builds the branch whose vertex lies on the smaller x
// and whose semi-latus-rectum ends touch the y extent of the two corners.
func HyperbolaFromCorners(a, c r2.Vec) Hyperbola {
	cx := math.Max(a.X, c.X)
	cy := 0.5 * (a.Y + c.Y)
	l := 0.5 * math.Abs(a.Y-c.Y)
	e := ClampEccentricity(math.Max(l/math.Abs(a.X-c.X)-1, 1))
	return Hyperbola{Focus: r2.Vec{X: cx, Y: cy}, SemiLatus: l, Eccentricity: e}
}

func (h Hyperbola) Kind() Kind    { return KindHyperbola }
func (h Hyperbola) Point() r2.Vec { return h.Focus }

func (h Hyperbola) Valid() bool {
	return finiteVec(h.Focus) && finite(h.SemiLatus, h.Eccentricity, h.Angle) &&
		h.SemiLatus >= 0 && h.Eccentricity >= 1
}

func (h Hyperbola) params() []float64 {
	return []float64{h.Focus.X, h.Focus.Y, h.SemiLatus, h.Eccentricity, h.Angle}
}

// Axis returns the unit vector from the focus away from the vertex and its
// perpendicular.
func (h Hyperbola) Axis() (along, across r2.Vec) {
	s, c := math.Sincos(h.Angle)
	return r2.Vec{X: c, Y: s}, r2.Vec{X: -s, Y: c}
}

// RadiusAt returns the focal distance at polar angle theta, or +Inf where
// the branch does not exist.
func (h Hyperbola) RadiusAt(theta float64) float64 {
	d := 1 - h.Eccentricity*math.Cos(theta)
	if d <= 0 {
		return math.Inf(1)
	}
	return h.SemiLatus / d
}

// PointAt returns the branch point at polar angle theta.
func (h Hyperbola) PointAt(theta float64) r2.Vec {
	r := h.RadiusAt(theta)
	s, c := math.Sincos(theta)
	return r2.Add(h.Focus, rotate(r2.Vec{X: r * c, Y: r * s}, h.Angle))
}

// Vertex returns the branch point closest to the focus.
func (h Hyperbola) Vertex() r2.Vec { return h.PointAt(math.Pi) }

// VertexDistance is the focus to vertex distance, l/(1+e).
func (h Hyperbola) VertexDistance() float64 { return h.SemiLatus / (1 + h.Eccentricity) }

func (h Hyperbola) Bounds() Rectangle {
	pts, _ := h.Outline(65)
	return boundsOf(pts)
}

func (h Hyperbola) Translate(d r2.Vec) ROI {
	h.Focus = r2.Add(h.Focus, d)
	return h
}

// Contains reports whether p lies on the focus side of the branch.
func (h Hyperbola) Contains(p r2.Vec) bool {
	l := rotate(r2.Sub(p, h.Focus), -h.Angle)
	r := r2.Norm(l)
	if r == 0 {
		return true
	}
	return r <= h.RadiusAt(math.Atan2(l.Y, l.X))
}

// Outline samples the part of the branch between the two semi-latus-rectum
// ends, through the vertex.
func (h Hyperbola) Outline(samples int) ([]r2.Vec, bool) {
	if samples < 3 {
		samples = 3
	}
	pts := make([]r2.Vec, samples)
	for i := range pts {
		theta := math.Pi/2 + math.Pi*float64(i)/float64(samples-1)
		pts[i] = h.PointAt(theta)
	}
	return pts, false
}
