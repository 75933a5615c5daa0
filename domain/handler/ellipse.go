package handler

import (
	"math"

	"github.com/soocke/roi-plot-go/domain/roi"
	"gonum.org/v1/gonum/spatial/r2"
)

// Ellipse handle indices.
const (
	EllipseMajor = iota
	EllipseMinor
	EllipseMajorOpposite
	EllipseMinorOpposite
	EllipseCentre
)

// EllipseHandler has handles on both ends of each semi-axis and one on the
// centre. Dragging a major end sets A and the angle; dragging a minor end
// sets B only.
type EllipseHandler struct {
	drag
	roi roi.Ellipse
}

func NewEllipse(r roi.Ellipse) *EllipseHandler { return &EllipseHandler{drag: newDrag(), roi: r} }

func (h *EllipseHandler) Size() int         { return 5 }
func (h *EllipseHandler) CentreHandle() int { return EllipseCentre }
func (h *EllipseHandler) ROI() roi.ROI      { return h.roi }

func (h *EllipseHandler) AnchorPoint(i int, _ float64) r2.Vec {
	e := h.roi
	major, minor := e.Axis()
	switch i {
	case EllipseMajor:
		return r2.Add(e.Centre, r2.Scale(e.A, major))
	case EllipseMinor:
		return r2.Add(e.Centre, r2.Scale(e.B, minor))
	case EllipseMajorOpposite:
		return r2.Sub(e.Centre, r2.Scale(e.A, major))
	case EllipseMinorOpposite:
		return r2.Sub(e.Centre, r2.Scale(e.B, minor))
	}
	return e.Centre
}

func (h *EllipseHandler) SetROI(r roi.ROI) error {
	e, ok := r.(roi.Ellipse)
	if !ok {
		return mismatch(roi.KindEllipse, r)
	}
	h.roi = e
	return nil
}

func (h *EllipseHandler) InterpretMouseDragging(start, current r2.Vec) roi.ROI {
	return h.interpret(h.roi, start, current, func(i int, d r2.Vec) roi.ROI {
		e := h.roi
		w := r2.Sub(r2.Add(h.AnchorPoint(i, 0), d), e.Centre)
		switch i {
		case EllipseMajor, EllipseMajorOpposite:
			if i == EllipseMajorOpposite {
				w = r2.Scale(-1, w)
			}
			e.A = r2.Norm(w)
			if e.A > 0 {
				e.Angle = math.Atan2(w.Y, w.X)
			}
		case EllipseMinor, EllipseMinorOpposite:
			_, minor := e.Axis()
			e.B = math.Abs(r2.Dot(w, minor))
		default:
			return e.Translate(d)
		}
		return e
	})
}
