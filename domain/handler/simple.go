package handler

import (
	"github.com/soocke/roi-plot-go/domain/roi"
	"gonum.org/v1/gonum/spatial/r2"
)

// PointHandler has a single handle on the point, which is also the centre.
type PointHandler struct {
	drag
	roi roi.Point
}

func NewPoint(r roi.Point) *PointHandler { return &PointHandler{drag: newDrag(), roi: r} }

func (h *PointHandler) Size() int                       { return 1 }
func (h *PointHandler) CentreHandle() int               { return 0 }
func (h *PointHandler) AnchorPoint(int, float64) r2.Vec { return h.roi.P }
func (h *PointHandler) ROI() roi.ROI                    { return h.roi }

func (h *PointHandler) SetROI(r roi.ROI) error {
	p, ok := r.(roi.Point)
	if !ok {
		return mismatch(roi.KindPoint, r)
	}
	h.roi = p
	return nil
}

func (h *PointHandler) InterpretMouseDragging(start, current r2.Vec) roi.ROI {
	return h.interpret(h.roi, start, current, func(_ int, d r2.Vec) roi.ROI {
		return h.roi.Translate(d)
	})
}

// LineHandler has handles on both ends and no centre handle.
type LineHandler struct {
	drag
	roi roi.Line
}

func NewLine(r roi.Line) *LineHandler { return &LineHandler{drag: newDrag(), roi: r} }

func (h *LineHandler) Size() int         { return 2 }
func (h *LineHandler) CentreHandle() int { return NoHandle }
func (h *LineHandler) ROI() roi.ROI      { return h.roi }

func (h *LineHandler) AnchorPoint(i int, _ float64) r2.Vec {
	if i == 1 {
		return h.roi.End
	}
	return h.roi.Start
}

func (h *LineHandler) SetROI(r roi.ROI) error {
	l, ok := r.(roi.Line)
	if !ok {
		return mismatch(roi.KindLine, r)
	}
	h.roi = l
	return nil
}

func (h *LineHandler) InterpretMouseDragging(start, current r2.Vec) roi.ROI {
	return h.interpret(h.roi, start, current, func(i int, d r2.Vec) roi.ROI {
		l := h.roi
		switch i {
		case 0:
			l.Start = r2.Add(l.Start, d)
		case 1:
			l.End = r2.Add(l.End, d)
		default:
			return l.Translate(d)
		}
		return l
	})
}

// PolygonHandler has one handle per vertex. Its size follows the vertex
// count, so inserting or removing vertices changes it.
type PolygonHandler struct {
	drag
	roi roi.Polygon
}

func NewPolygon(r roi.Polygon) *PolygonHandler { return &PolygonHandler{drag: newDrag(), roi: r} }

func (h *PolygonHandler) Size() int         { return len(h.roi.Points) }
func (h *PolygonHandler) CentreHandle() int { return NoHandle }
func (h *PolygonHandler) ROI() roi.ROI      { return h.roi }

func (h *PolygonHandler) AnchorPoint(i int, _ float64) r2.Vec {
	if i < 0 || i >= len(h.roi.Points) {
		return h.roi.Point()
	}
	return h.roi.Points[i]
}

func (h *PolygonHandler) SetROI(r roi.ROI) error {
	p, ok := r.(roi.Polygon)
	if !ok {
		return mismatch(roi.KindPolygon, r)
	}
	h.roi = p
	return nil
}

func (h *PolygonHandler) InterpretMouseDragging(start, current r2.Vec) roi.ROI {
	return h.interpret(h.roi, start, current, func(i int, d r2.Vec) roi.ROI {
		if i < 0 || i >= len(h.roi.Points) {
			return h.roi.Translate(d)
		}
		return h.roi.WithVertex(i, r2.Add(h.roi.Points[i], d))
	})
}
