package handler

import (
	"math"

	"github.com/soocke/roi-plot-go/domain/roi"
	"gonum.org/v1/gonum/spatial/r2"
)

// Hyperbola handle indices.
const (
	HyperbolaFocus = iota
	HyperbolaVertex
	HyperbolaLatus
	HyperbolaLatusOpposite
)

// HyperbolaHandler has handles on the focus, the vertex and both ends of
// the semi-latus rectum. The focus moves the whole branch, the vertex sets
// the eccentricity and the latus ends set the semi-latus rectum.
type HyperbolaHandler struct {
	drag
	roi roi.Hyperbola
}

func NewHyperbola(r roi.Hyperbola) *HyperbolaHandler {
	return &HyperbolaHandler{drag: newDrag(), roi: r}
}

func (h *HyperbolaHandler) Size() int         { return 4 }
func (h *HyperbolaHandler) CentreHandle() int { return HyperbolaFocus }
func (h *HyperbolaHandler) ROI() roi.ROI      { return h.roi }

func (h *HyperbolaHandler) AnchorPoint(i int, _ float64) r2.Vec {
	hb := h.roi
	_, across := hb.Axis()
	switch i {
	case HyperbolaVertex:
		return hb.Vertex()
	case HyperbolaLatus:
		return r2.Add(hb.Focus, r2.Scale(hb.SemiLatus, across))
	case HyperbolaLatusOpposite:
		return r2.Sub(hb.Focus, r2.Scale(hb.SemiLatus, across))
	}
	return hb.Focus
}

func (h *HyperbolaHandler) SetROI(r roi.ROI) error {
	hb, ok := r.(roi.Hyperbola)
	if !ok {
		return mismatch(roi.KindHyperbola, r)
	}
	h.roi = hb
	return nil
}

func (h *HyperbolaHandler) InterpretMouseDragging(start, current r2.Vec) roi.ROI {
	return h.interpret(h.roi, start, current, func(i int, d r2.Vec) roi.ROI {
		hb := h.roi
		along, across := hb.Axis()
		w := r2.Sub(r2.Add(h.AnchorPoint(i, 0), d), hb.Focus)
		switch i {
		case HyperbolaVertex:
			// The vertex lies behind the focus at l/(1+e).
			dist := -r2.Dot(w, along)
			if dist <= 0 {
				hb.Eccentricity = roi.MaxEccentricity
			} else {
				hb.Eccentricity = roi.ClampEccentricity(hb.SemiLatus/dist - 1)
			}
		case HyperbolaLatus, HyperbolaLatusOpposite:
			hb.SemiLatus = math.Abs(r2.Dot(w, across))
			hb.Eccentricity = roi.ClampEccentricity(hb.Eccentricity)
		default:
			return hb.Translate(d)
		}
		return hb
	})
}

