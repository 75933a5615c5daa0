package axis

import (
	"image"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// CoordinateSystem maps between data values and pixels for an x/y axis
// pair. It only holds the axes, so every call sees their current ranges.
type CoordinateSystem struct {
	X, Y *Axis
}

// NewCoordinateSystem returns the mapping for x and y.
func NewCoordinateSystem(x, y *Axis) CoordinateSystem {
	return CoordinateSystem{X: x, Y: y}
}

// ValueToPosition maps a data-space point to pixel space.
func (cs CoordinateSystem) ValueToPosition(v r2.Vec) r2.Vec {
	return r2.Vec{X: cs.X.ValueToPixel(v.X), Y: cs.Y.ValueToPixel(v.Y)}
}

// PositionToValue maps a pixel-space point to data space.
func (cs CoordinateSystem) PositionToValue(p r2.Vec) r2.Vec {
	return r2.Vec{X: cs.X.PixelToValue(p.X), Y: cs.Y.PixelToValue(p.Y)}
}

// ValueToPoint maps a data-space point to the nearest whole pixel.
func (cs CoordinateSystem) ValueToPoint(v r2.Vec) image.Point {
	p := cs.ValueToPosition(v)
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}

// PointToValue maps a whole pixel to data space.
func (cs CoordinateSystem) PointToValue(p image.Point) r2.Vec {
	return cs.PositionToValue(r2.Vec{X: float64(p.X), Y: float64(p.Y)})
}

// Valid reports whether both axes are set.
func (cs CoordinateSystem) Valid() bool { return cs.X != nil && cs.Y != nil }
