// Package handler turns handle drags into new ROI values. There is one
// handler per ROI kind; each holds the committed ROI it was built from.
package handler

import (
	"errors"
	"fmt"
	"math"

	"github.com/soocke/roi-plot-go/domain/roi"
	"gonum.org/v1/gonum/spatial/r2"
)

// Status tags what a configured drag does to the ROI.
type Status int

const (
	None Status = iota
	Resize
	Move
)

func (s Status) String() string {
	switch s {
	case Resize:
		return "resize"
	case Move:
		return "move"
	}
	return "none"
}

// NoHandle is returned by CentreHandle for kinds without a translation
// handle, and by Dragged when no drag is configured.
const NoHandle = -1

// ErrKindMismatch is returned by SetROI when the ROI is of another kind.
var ErrKindMismatch = errors.New("handler: roi kind mismatch")

// Handler is the per-kind drag strategy.
type Handler interface {
	// Size is the number of handles for the current ROI.
	Size() int
	// AnchorPoint returns the data-space position of handle i. side is the
	// handle size in data units, for handles drawn at an offset.
	AnchorPoint(i int, side float64) r2.Vec
	// CentreHandle is the index of the handle that moves the whole ROI, or
	// NoHandle.
	CentreHandle() int
	ConfigureDragging(i int, s Status)
	UnconfigureDragging()
	// InterpretMouseDragging maps a drag from start to current (data space)
	// onto a new ROI. It does not change the handler.
	InterpretMouseDragging(start, current r2.Vec) roi.ROI
	Status() Status
	Dragged() int
	ROI() roi.ROI
	SetROI(r roi.ROI) error
}

// StatusFor returns Move for the centre handle and Resize for every other
// handle. Kinds without a centre handle therefore always resize.
func StatusFor(h Handler, i int) Status {
	if c := h.CentreHandle(); c != NoHandle && c == i {
		return Move
	}
	return Resize
}

// New builds the handler matching the kind of r.
func New(r roi.ROI) (Handler, error) {
	switch v := r.(type) {
	case roi.Point:
		return NewPoint(v), nil
	case roi.Line:
		return NewLine(v), nil
	case roi.Rectangle:
		return NewRectangle(v), nil
	case roi.Ellipse:
		return NewEllipse(v), nil
	case roi.Hyperbola:
		return NewHyperbola(v), nil
	case roi.Polygon:
		return NewPolygon(v), nil
	case nil:
		return nil, fmt.Errorf("handler: nil roi: %w", ErrKindMismatch)
	}
	return nil, fmt.Errorf("handler: no handler for %v: %w", r.Kind(), ErrKindMismatch)
}

// drag is the configure/unconfigure state shared by every handler.
type drag struct {
	handle int
	status Status
}

func (d *drag) ConfigureDragging(i int, s Status) { d.handle, d.status = i, s }
func (d *drag) UnconfigureDragging()              { d.handle, d.status = NoHandle, None }
func (d *drag) Status() Status                    { return d.status }
func (d *drag) Dragged() int                      { return d.handle }

func newDrag() drag { return drag{handle: NoHandle} }

// interpret applies the shared drag rules and defers resizing to resize.
// A zero or non-finite delta returns committed as is, as does a resize
// that produces an invalid ROI.
func (d *drag) interpret(committed roi.ROI, start, current r2.Vec, resize func(i int, delta r2.Vec) roi.ROI) roi.ROI {
	delta := r2.Sub(current, start)
	if delta == (r2.Vec{}) || !finite(delta) {
		return committed
	}
	var out roi.ROI
	switch d.status {
	case Move:
		out = committed.Translate(delta)
	case Resize:
		out = resize(d.handle, delta)
	default:
		return committed
	}
	if out == nil || !out.Valid() {
		return committed
	}
	return out
}

func finite(v r2.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

func rotate(v r2.Vec, angle float64) r2.Vec {
	if angle == 0 {
		return v
	}
	return r2.Rotate(v, angle, r2.Vec{})
}

func mismatch(want roi.Kind, got roi.ROI) error {
	if got == nil {
		return fmt.Errorf("handler: %v handler given nil roi: %w", want, ErrKindMismatch)
	}
	return fmt.Errorf("handler: %v handler given %v: %w", want, got.Kind(), ErrKindMismatch)
}
