package handler

import (
	"github.com/soocke/roi-plot-go/domain/roi"
	"gonum.org/v1/gonum/spatial/r2"
)

// RectangleHandler puts a handle on each corner, in roi.Rectangle.Corners
// order. Dragging a corner keeps the opposite corner fixed; the body moves
// the rectangle.
type RectangleHandler struct {
	drag
	roi roi.Rectangle
}

func NewRectangle(r roi.Rectangle) *RectangleHandler {
	return &RectangleHandler{drag: newDrag(), roi: r}
}

func (h *RectangleHandler) Size() int         { return 4 }
func (h *RectangleHandler) CentreHandle() int { return NoHandle }
func (h *RectangleHandler) ROI() roi.ROI      { return h.roi }

func (h *RectangleHandler) AnchorPoint(i int, _ float64) r2.Vec {
	if i < 0 || i > 3 {
		return h.roi.Origin
	}
	return h.roi.Corners()[i]
}

func (h *RectangleHandler) SetROI(r roi.ROI) error {
	rect, ok := r.(roi.Rectangle)
	if !ok {
		return mismatch(roi.KindRectangle, r)
	}
	h.roi = rect
	return nil
}

func (h *RectangleHandler) InterpretMouseDragging(start, current r2.Vec) roi.ROI {
	return h.interpret(h.roi, start, current, func(i int, d r2.Vec) roi.ROI {
		if i < 0 || i > 3 {
			return h.roi.Translate(d)
		}
		c := h.roi.Corners()
		fixed := c[(i+2)%4]
		moved := r2.Add(c[i], d)
		return roi.NewRectangle(fixed, rotate(r2.Sub(moved, fixed), -h.roi.Angle), h.roi.Angle)
	})
}
