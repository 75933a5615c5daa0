package figure

import (
	"image"
	"image/color"
)

// DefaultSide is the handle square size in pixels.
const DefaultSide = 8

// Handle is a square grab point centred on its selection point.
type Handle struct {
	index    int
	at       image.Point
	side     int
	color    color.RGBA
	alpha    uint8
	visible  bool
	disposed bool
}

// NewHandle returns a visible handle for handle index i.
func NewHandle(i int, at image.Point, side int, c color.RGBA) *Handle {
	if side <= 0 {
		side = DefaultSide
	}
	return &Handle{index: i, at: at, side: side, color: c, alpha: 255, visible: true}
}

func (h *Handle) Index() int                      { return h.index }
func (h *Handle) SelectionPoint() image.Point     { return h.at }
func (h *Handle) SetSelectionPoint(p image.Point) { h.at = p }
func (h *Handle) Side() int                       { return h.side }
func (h *Handle) Color() color.RGBA               { return h.color }
func (h *Handle) SetColor(c color.RGBA)           { h.color = c }
func (h *Handle) Alpha() uint8                    { return h.alpha }
func (h *Handle) SetAlpha(a uint8)                { h.alpha = a }
func (h *Handle) Visible() bool                   { return h.visible && !h.disposed }
func (h *Handle) SetVisible(v bool)               { h.visible = v }
func (h *Handle) Disposed() bool                  { return h.disposed }
func (h *Handle) Contains(p image.Point) bool     { return p.In(h.Bounds()) }

// Bounds is the side x side square around the selection point.
func (h *Handle) Bounds() image.Rectangle {
	half := h.side / 2
	return image.Rect(h.at.X-half, h.at.Y-half, h.at.X-half+h.side, h.at.Y-half+h.side)
}

// Dispose marks the handle dead; it stays invisible from then on.
func (h *Handle) Dispose() { h.disposed = true }
