package region

import (
	"fmt"

	"github.com/soocke/roi-plot-go/domain/handler"
	"github.com/soocke/roi-plot-go/domain/roi"
	"gonum.org/v1/gonum/spatial/r2"
)

// Capability is what a region needs to know about one ROI kind.
type Capability struct {
	Kind roi.Kind
	// NewHandler builds the drag strategy for a ROI of this kind.
	NewHandler func(r roi.ROI) (handler.Handler, error)
	// FromCorners builds the ROI spanned by a creation drag.
	FromCorners func(a, c r2.Vec) roi.ROI
	// Cursor names the drag cursor.
	Cursor string
}

func typed[T roi.ROI, H handler.Handler](ctor func(T) H) func(roi.ROI) (handler.Handler, error) {
	return func(r roi.ROI) (handler.Handler, error) {
		v, ok := r.(T)
		if !ok {
			return nil, fmt.Errorf("region: %T is not %T: %w", r, v, handler.ErrKindMismatch)
		}
		return ctor(v), nil
	}
}

var capabilities = map[roi.Kind]Capability{
	roi.KindPoint: {
		Kind:        roi.KindPoint,
		NewHandler:  typed(handler.NewPoint),
		FromCorners: func(a, c r2.Vec) roi.ROI { return roi.PointFromCorners(a, c) },
		Cursor:      "point",
	},
	roi.KindLine: {
		Kind:        roi.KindLine,
		NewHandler:  typed(handler.NewLine),
		FromCorners: func(a, c r2.Vec) roi.ROI { return roi.LineFromCorners(a, c) },
		Cursor:      "line",
	},
	roi.KindRectangle: {
		Kind:        roi.KindRectangle,
		NewHandler:  typed(handler.NewRectangle),
		FromCorners: func(a, c r2.Vec) roi.ROI { return roi.RectangleFromCorners(a, c) },
		Cursor:      "rectangle",
	},
	roi.KindEllipse: {
		Kind:        roi.KindEllipse,
		NewHandler:  typed(handler.NewEllipse),
		FromCorners: func(a, c r2.Vec) roi.ROI { return roi.EllipseFromCorners(a, c) },
		Cursor:      "ellipse",
	},
	roi.KindHyperbola: {
		Kind:        roi.KindHyperbola,
		NewHandler:  typed(handler.NewHyperbola),
		FromCorners: func(a, c r2.Vec) roi.ROI { return roi.HyperbolaFromCorners(a, c) },
		Cursor:      "hyperbola",
	},
	roi.KindPolygon: {
		Kind:        roi.KindPolygon,
		NewHandler:  typed(handler.NewPolygon),
		FromCorners: func(a, c r2.Vec) roi.ROI { return roi.PolygonFromCorners(a, c) },
		Cursor:      "polygon",
	},
}

// CapabilityFor returns the capability set registered for k.
func CapabilityFor(k roi.Kind) (Capability, error) {
	c, ok := capabilities[k]
	if !ok {
		return Capability{}, fmt.Errorf("region: kind %v: %w", k, ErrUnknownKind)
	}
	return c, nil
}
