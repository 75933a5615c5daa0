package region

import (
	"fmt"
	"image"
	"image/draw"
	"log/slog"

	"github.com/soocke/roi-plot-go/domain/axis"
	"github.com/soocke/roi-plot-go/domain/figure"
	"github.com/soocke/roi-plot-go/domain/notify"
	"github.com/soocke/roi-plot-go/domain/roi"
)

// RegionListener is notified when a graph gains or loses a region.
type RegionListener func(r *Region)

// Graph hosts the regions of one plot: it owns the figure layer and the
// pointer router, runs the click-and-drag gesture that creates regions and
// forwards every other pointer event to the router.
type Graph struct {
	x, y    *axis.Axis
	layer   *figure.Layer
	router  *figure.Router
	logger  *slog.Logger
	cursors CursorLoader
	side    int

	regions  []*Region
	defaults Style
	provider SelectionProvider

	onAdded   notify.Listeners[RegionListener]
	onRemoved notify.Listeners[RegionListener]

	creating    *Region
	pressed     bool
	first, last image.Point
}

// NewGraph returns an empty graph over the plot area bounds.
func NewGraph(x, y *axis.Axis, bounds image.Rectangle, logger *slog.Logger, cursors CursorLoader) *Graph {
	return &Graph{
		x:        x,
		y:        y,
		layer:    figure.NewLayer(bounds),
		router:   &figure.Router{},
		logger:   logger,
		cursors:  cursors,
		defaults: DefaultStyle(""),
	}
}

func (g *Graph) Layer() *figure.Layer                    { return g.layer }
func (g *Graph) Router() *figure.Router                  { return g.router }
func (g *Graph) XAxis() *axis.Axis                       { return g.x }
func (g *Graph) YAxis() *axis.Axis                       { return g.y }
func (g *Graph) Creating() *Region                       { return g.creating }
func (g *Graph) SetHandleSide(px int)                    { g.side = px }
func (g *Graph) SetDefaultStyle(s Style)                 { g.defaults = s }
func (g *Graph) CoordinateSystem() axis.CoordinateSystem { return axis.NewCoordinateSystem(g.x, g.y) }

// SetSelectionProvider sets the provider on every current and future region.
func (g *Graph) SetSelectionProvider(p SelectionProvider) {
	g.provider = p
	for _, r := range g.regions {
		r.SetSelectionProvider(p)
	}
}

// OnRegionAdded registers l for regions that finished their creation.
func (g *Graph) OnRegionAdded(l RegionListener) *notify.Subscription { return g.onAdded.Add(l) }

// OnRegionRemoved registers l for removed regions.
func (g *Graph) OnRegionRemoved(l RegionListener) *notify.Subscription { return g.onRemoved.Add(l) }

// Regions returns the regions in creation order.
func (g *Graph) Regions() []*Region { return append([]*Region(nil), g.regions...) }

// Region returns the region called name, or nil.
func (g *Graph) Region(name string) *Region {
	for _, r := range g.regions {
		if r.Name() == name {
			return r
		}
	}
	return nil
}

func (g *Graph) newRegion(name string, k roi.Kind) (*Region, error) {
	if g.Region(name) != nil || (g.creating != nil && g.creating.Name() == name) {
		return nil, fmt.Errorf("graph: region %q: %w", name, ErrDuplicateName)
	}
	style := g.defaults
	style.Name = name
	r, err := New(style, k, g.x, g.y, Surface{
		Layer:      g.layer,
		Router:     g.router,
		Cursors:    g.cursors,
		Logger:     g.logger,
		HandleSide: g.side,
	})
	if err != nil {
		return nil, err
	}
	r.SetSelectionProvider(g.provider)
	return r, nil
}

// AddRegion creates a region around an existing ROI.
func (g *Graph) AddRegion(name string, v roi.ROI) (*Region, error) {
	if v == nil {
		return nil, fmt.Errorf("graph: region %q: %w", name, ErrMissingROI)
	}
	r, err := g.newRegion(name, v.Kind())
	if err != nil {
		return nil, err
	}
	if err := r.SetROI(v); err != nil {
		r.Remove()
		return nil, err
	}
	g.add(r)
	return r, nil
}

func (g *Graph) add(r *Region) {
	g.regions = append(g.regions, r)
	g.onAdded.Each(func(l RegionListener) { l(r) })
	if g.logger != nil {
		g.logger.Info("region added", "name", r.Name(), "kind", r.Kind().String())
	}
}

// BeginCreate arms the creation gesture: the next press and release on the
// plot span a new region of kind k. A pending creation is cancelled.
func (g *Graph) BeginCreate(name string, k roi.Kind) (*Region, error) {
	g.CancelCreate()
	r, err := g.newRegion(name, k)
	if err != nil {
		return nil, err
	}
	g.creating = r
	return r, nil
}

// CancelCreate drops a pending creation.
func (g *Graph) CancelCreate() {
	if g.creating == nil {
		return
	}
	g.creating.Remove()
	g.creating = nil
	g.pressed = false
	g.layer.Repaint()
}

// Dragging reports whether a creation drag or a figure drag is running.
func (g *Graph) Dragging() bool {
	return (g.creating != nil && g.pressed) || g.router.Session() != nil
}

// Press starts the creation drag when one is armed, otherwise a figure drag.
func (g *Graph) Press(p image.Point) bool {
	if g.creating != nil {
		g.pressed = true
		g.first, g.last = p, p
		return true
	}
	return g.router.Press(p)
}

func (g *Graph) Drag(p image.Point) {
	if g.creating != nil && g.pressed {
		g.last = p
		g.layer.Repaint()
		return
	}
	g.router.Drag(p)
}

// Release finishes a creation drag, adding the new region and firing its
// selection, or ends the figure drag in progress.
func (g *Graph) Release(p image.Point) error {
	if g.creating == nil || !g.pressed {
		g.router.Release(p)
		return nil
	}
	r := g.creating
	g.creating, g.pressed = nil, false
	if err := r.SetLocalBounds(g.first, p, g.layer.Bounds()); err != nil {
		r.Remove()
		return err
	}
	g.add(r)
	return r.FireROISelection()
}

// RemoveRegion removes r from the graph. Removing a region twice is a
// no-op.
func (g *Graph) RemoveRegion(r *Region) bool {
	for i, c := range g.regions {
		if c == r {
			g.regions = append(g.regions[:i:i], g.regions[i+1:]...)
			r.Remove()
			g.onRemoved.Each(func(l RegionListener) { l(r) })
			if g.logger != nil {
				g.logger.Info("region removed", "name", r.Name())
			}
			return true
		}
	}
	return false
}

// Clear removes every region.
func (g *Graph) Clear() {
	g.CancelCreate()
	for len(g.regions) > 0 {
		g.RemoveRegion(g.regions[len(g.regions)-1])
	}
}

// Paint draws every region, then the outline of a creation drag.
func (g *Graph) Paint(dst draw.Image) {
	for _, r := range g.regions {
		r.Paint(dst)
	}
	if g.creating != nil && g.pressed {
		g.creating.PaintBeforeAdded(dst, g.first, g.last, g.layer.Bounds())
	}
}
