// Package region wraps ROIs into named, styled plot regions. A Region owns
// one Shape, which bridges pointer drags on the figure layer to the ROI
// handler of its kind, and notifies drag, change and selection listeners.
//
// All methods must be called from the UI goroutine.
package region

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/soocke/roi-plot-go/domain/axis"
	"github.com/soocke/roi-plot-go/domain/figure"
	"github.com/soocke/roi-plot-go/domain/notify"
	"github.com/soocke/roi-plot-go/domain/roi"
)

// Style is the presentation state of a region.
type Style struct {
	Name         string
	Color        color.RGBA
	Alpha        uint8
	Visible      bool
	Mobile       bool
	ShowLabel    bool
	ShowPosition bool
	LineWidth    int
	TrackMouse   bool
}

// DefaultStyle returns a visible, mobile, labelled style.
func DefaultStyle(name string) Style {
	return Style{
		Name:      name,
		Color:     color.RGBA{R: 0, G: 160, B: 255, A: 255},
		Alpha:     80,
		Visible:   true,
		Mobile:    true,
		ShowLabel: true,
		LineWidth: 1,
	}
}

// Surface is what a region draws into.
type Surface struct {
	Layer  *figure.Layer
	Router *figure.Router
	// Cursors creates drag cursors; nil disables them.
	Cursors CursorLoader
	Logger  *slog.Logger
	// HandleSide is the handle size in pixels; zero uses figure.DefaultSide.
	HandleSide int
}

// Region is a named ROI on a pair of axes.
type Region struct {
	style      Style
	capability Capability

	xAxis, yAxis *axis.Axis
	xSub, ySub   *notify.Subscription

	layer      *figure.Layer
	router     *figure.Router
	handleSide int
	logger     *slog.Logger

	shape    *Shape
	provider SelectionProvider
	onDrag   notify.Listeners[DragListener]
	onChange notify.Listeners[ChangeListener]
	onSelect notify.Listeners[SelectionListener]

	cursors CursorLoader
	cursor  Cursor

	fill       []image.Point
	fillClosed bool
	local      image.Rectangle
	removed bool
}

// New returns a region of kind k on the x and y axes. The region has no ROI
// until SetLocalBounds or SetROI gives it one.
func New(style Style, k roi.Kind, x, y *axis.Axis, surf Surface) (*Region, error) {
	c, err := CapabilityFor(k)
	if err != nil {
		return nil, err
	}
	if x == nil || y == nil {
		return nil, fmt.Errorf("region %q: both axes are required: %w", style.Name, axis.ErrInvalidRange)
	}
	if surf.Layer == nil {
		surf.Layer = figure.NewLayer(image.Rectangle{})
	}
	if surf.Router == nil {
		surf.Router = &figure.Router{}
	}
	r := &Region{
		style:      style,
		capability: c,
		xAxis:      x,
		yAxis:      y,
		layer:      surf.Layer,
		router:     surf.Router,
		handleSide: surf.HandleSide,
		logger:     surf.Logger,
		cursors:    surf.Cursors,
	}
	r.xSub = x.Subscribe(r.axisChanged)
	r.ySub = y.Subscribe(r.axisChanged)
	r.debug("region created", "kind", k.String())
	return r, nil
}

func (r *Region) debug(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Debug(msg, append([]any{"region", r.style.Name}, args...)...)
	}
}

func (r *Region) axisChanged(_ *axis.Axis, _, _ axis.Range) { r.updateRegionBounds() }

// updateRegionBounds re-resolves every pixel position from the ROI.
func (r *Region) updateRegionBounds() {
	if r.shape != nil {
		r.shape.refresh()
	}
	r.updateConnectionBounds()
	r.layer.Repaint()
}

// CoordinateSystem returns the mapping for the region's current axes.
func (r *Region) CoordinateSystem() axis.CoordinateSystem {
	return axis.NewCoordinateSystem(r.xAxis, r.yAxis)
}

// Kind returns the kind tag of the region.
func (r *Region) Kind() roi.Kind { return r.capability.Kind }

// Shape returns the figure, or nil before the region has a ROI.
func (r *Region) Shape() *Shape { return r.shape }

// ROI returns the transient ROI during a drag, otherwise the committed one.
// It is nil before creation.
func (r *Region) ROI() roi.ROI {
	if r.shape == nil {
		return nil
	}
	return r.shape.ROI()
}

// Committed returns the committed ROI, or nil before creation.
func (r *Region) Committed() roi.ROI {
	if r.shape == nil {
		return nil
	}
	return r.shape.Committed()
}

func (r *Region) Removed() bool { return r.removed }

// SetROI replaces the committed ROI. A ROI of another kind switches the
// region to that kind and rebuilds its handles. No events fire. While a
// drag of the region is open it returns ErrDragging; the release commits
// the gesture first.
func (r *Region) SetROI(v roi.ROI) error {
	if r.removed {
		return fmt.Errorf("region %q: %w", r.style.Name, ErrRemoved)
	}
	if v == nil {
		return fmt.Errorf("region %q: set roi: %w", r.style.Name, ErrMissingROI)
	}
	if r.shape != nil && r.shape.Dragging() {
		return fmt.Errorf("region %q: set roi: %w", r.style.Name, ErrDragging)
	}
	c, err := CapabilityFor(v.Kind())
	if err != nil {
		return err
	}
	if r.capability.Kind != c.Kind {
		r.releaseCursor()
		r.debug("region kind changed", "from", r.capability.Kind.String(), "to", c.Kind.String())
	}
	r.capability = c
	if r.shape == nil {
		return r.createContents(v)
	}
	r.shape.updateFromROI(v)
	r.updateConnectionBounds()
	r.layer.Repaint()
	return nil
}

// createContents builds the shape around v.
func (r *Region) createContents(v roi.ROI) error {
	h, err := r.capability.NewHandler(v)
	if err != nil {
		return err
	}
	r.shape = newShape(r, h, v)
	r.updateConnectionBounds()
	r.layer.Repaint()
	return nil
}

// Name and style accessors. Setters propagate to the figures immediately.

func (r *Region) Name() string                 { return r.style.Name }
func (r *Region) Color() color.RGBA            { return r.style.Color }
func (r *Region) Alpha() uint8                 { return r.style.Alpha }
func (r *Region) Visible() bool                { return r.style.Visible }
func (r *Region) Mobile() bool                 { return r.style.Mobile }
func (r *Region) ShowLabel() bool              { return r.style.ShowLabel }
func (r *Region) ShowPosition() bool           { return r.style.ShowPosition }
func (r *Region) LineWidth() int               { return r.style.LineWidth }
func (r *Region) TrackMouse() bool             { return r.style.TrackMouse }
func (r *Region) XAxis() *axis.Axis            { return r.xAxis }
func (r *Region) YAxis() *axis.Axis            { return r.yAxis }
func (r *Region) Style() Style                 { return r.style }
func (r *Region) LocalBounds() image.Rectangle { return r.local }

// SetName renames the region; the label shows the new name.
func (r *Region) SetName(n string) {
	r.style.Name = n
	r.layer.Repaint()
}

func (r *Region) SetColor(c color.RGBA) {
	r.style.Color = c
	if r.shape != nil {
		r.shape.setHandleStyle()
	}
	r.layer.Repaint()
}

func (r *Region) SetAlpha(a uint8) {
	r.style.Alpha = a
	if r.shape != nil {
		r.shape.setHandleStyle()
	}
	r.layer.Repaint()
}

// SetVisible shows or hides the region. Handles only show while the region
// is mobile or tracks the mouse.
func (r *Region) SetVisible(v bool) {
	r.style.Visible = v
	if r.shape != nil {
		r.shape.setVisible(v)
	}
	r.layer.Repaint()
}

// SetMobile enables or disables dragging. Handles follow mobility.
func (r *Region) SetMobile(m bool) {
	r.style.Mobile = m
	if r.shape != nil {
		r.shape.setMobile(m)
	}
	r.layer.Repaint()
}

func (r *Region) SetTrackMouse(v bool) {
	r.style.TrackMouse = v
	if r.shape != nil {
		r.shape.setVisible(r.style.Visible)
	}
	r.layer.Repaint()
}

func (r *Region) SetShowLabel(v bool)    { r.style.ShowLabel = v; r.layer.Repaint() }
func (r *Region) SetShowPosition(v bool) { r.style.ShowPosition = v; r.layer.Repaint() }
func (r *Region) SetLineWidth(w int)     { r.style.LineWidth = w; r.layer.Repaint() }

// Sync applies every field of s through the setters.
func (r *Region) Sync(s Style) {
	r.SetName(s.Name)
	r.SetShowPosition(s.ShowPosition)
	r.SetColor(s.Color)
	r.SetAlpha(s.Alpha)
	r.SetLineWidth(s.LineWidth)
	r.SetTrackMouse(s.TrackMouse)
	r.SetMobile(s.Mobile)
	r.SetVisible(s.Visible)
	r.SetShowLabel(s.ShowLabel)
}

// SetXAxis moves the region to another x axis. The old subscription is
// revoked and the new one taken in the same call.
func (r *Region) SetXAxis(a *axis.Axis) error {
	sub, err := r.swapAxis(r.xAxis, a, r.xSub)
	if err != nil {
		return err
	}
	r.xAxis, r.xSub = a, sub
	r.updateRegionBounds()
	return nil
}

// SetYAxis is SetXAxis for the y axis.
func (r *Region) SetYAxis(a *axis.Axis) error {
	sub, err := r.swapAxis(r.yAxis, a, r.ySub)
	if err != nil {
		return err
	}
	r.yAxis, r.ySub = a, sub
	r.updateRegionBounds()
	return nil
}

func (r *Region) swapAxis(old, a *axis.Axis, sub *notify.Subscription) (*notify.Subscription, error) {
	if r.removed {
		return nil, fmt.Errorf("region %q: %w", r.style.Name, ErrRemoved)
	}
	if a == nil {
		return nil, fmt.Errorf("region %q: nil axis: %w", r.style.Name, axis.ErrInvalidRange)
	}
	if a == old {
		return sub, nil
	}
	sub.Unsubscribe()
	return a.Subscribe(r.axisChanged), nil
}

// SetSelectionProvider sets the receiver of fired selections.
func (r *Region) SetSelectionProvider(p SelectionProvider) { r.provider = p }

// OnDrag registers l for every drag step.
func (r *Region) OnDrag(l DragListener) *notify.Subscription { return r.onDrag.Add(l) }

// OnChanged registers l for gesture commits.
func (r *Region) OnChanged(l ChangeListener) *notify.Subscription { return r.onChange.Add(l) }

// OnSelection registers l for selections, fired after OnChanged.
func (r *Region) OnSelection(l SelectionListener) *notify.Subscription { return r.onSelect.Add(l) }

func (r *Region) fireDragged(v roi.ROI, k DragKind) {
	r.onDrag.Each(func(l DragListener) { l(v, k) })
}

func (r *Region) fireChanged(v roi.ROI) {
	r.onChange.Each(func(l ChangeListener) { l(v) })
}

// fireSelection runs at the end of a gesture, when a committed ROI exists.
func (r *Region) fireSelection() {
	if err := r.FireROISelection(); err != nil {
		panic(err)
	}
}

// FireROISelection sends the committed ROI to the selection provider and
// the selection listeners.
func (r *Region) FireROISelection() error {
	c := r.Committed()
	if c == nil {
		return fmt.Errorf("region %q: fire selection: %w", r.style.Name, ErrMissingROI)
	}
	sel := NewSelection(c)
	if r.provider != nil {
		r.provider.SetSelection(sel)
	}
	r.onSelect.Each(func(l SelectionListener) { l(sel) })
	return nil
}

// Contains reports whether pixel p hits the region.
func (r *Region) Contains(p image.Point) bool {
	if r.shape == nil {
		return p.In(r.local)
	}
	return r.shape.Contains(p)
}

// Repaint asks the layer to redraw.
func (r *Region) Repaint() { r.layer.Repaint() }

// Fill returns the pixel outline Paint fills and strokes, following the
// transient ROI during a drag. closed is false for open kinds.
func (r *Region) Fill() (pts []image.Point, closed bool) {
	return append([]image.Point(nil), r.fill...), r.fillClosed
}

// updateConnectionBounds recomputes the pixel outline used to paint the
// region. Every path that moves the ROI or the axes ends here.
func (r *Region) updateConnectionBounds() {
	v := r.ROI()
	if v == nil {
		r.fill, r.fillClosed = nil, false
		return
	}
	r.fill, r.fillClosed = pixelOutline(r.CoordinateSystem(), v)
}

// SetLocalBounds takes the pixel rectangle of a creation drag, clipped to
// parent, and gives the region the ROI it spans.
func (r *Region) SetLocalBounds(first, drag image.Point, parent image.Rectangle) error {
	if r.removed {
		return fmt.Errorf("region %q: %w", r.style.Name, ErrRemoved)
	}
	a, c := clampTo(first, parent), clampTo(drag, parent)
	r.local = image.Rectangle{Min: a, Max: c}.Canon()
	cs := r.CoordinateSystem()
	return r.SetROI(r.capability.FromCorners(cs.PointToValue(a), cs.PointToValue(c)))
}

// Preview returns the ROI a creation drag from first to drag would give,
// without touching the region.
func (r *Region) Preview(first, drag image.Point, parent image.Rectangle) roi.ROI {
	cs := r.CoordinateSystem()
	return r.capability.FromCorners(cs.PointToValue(clampTo(first, parent)), cs.PointToValue(clampTo(drag, parent)))
}

func clampTo(p image.Point, b image.Rectangle) image.Point {
	if b.Empty() {
		return p
	}
	if p.X < b.Min.X {
		p.X = b.Min.X
	}
	if p.Y < b.Min.Y {
		p.Y = b.Min.Y
	}
	if p.X > b.Max.X {
		p.X = b.Max.X
	}
	if p.Y > b.Max.Y {
		p.Y = b.Max.Y
	}
	return p
}

// Cursor returns the region's drag cursor, creating it on first use.
func (r *Region) Cursor() (Cursor, error) {
	if r.removed {
		return nil, fmt.Errorf("region %q: %w", r.style.Name, ErrRemoved)
	}
	if r.cursor != nil || r.cursors == nil {
		return r.cursor, nil
	}
	c, err := r.cursors(r.capability.Cursor)
	if err != nil {
		return nil, fmt.Errorf("region %q: cursor: %w", r.style.Name, err)
	}
	r.cursor = c
	return c, nil
}

func (r *Region) releaseCursor() {
	if r.cursor == nil {
		return
	}
	c := r.cursor
	r.cursor = nil
	c.Release()
}

// Remove detaches the region: both axis subscriptions are revoked, all
// figures leave the layer, listeners are dropped and the cursor is
// released. Calling it again does nothing.
func (r *Region) Remove() {
	if r.removed {
		return
	}
	r.removed = true
	r.xSub.Unsubscribe()
	r.ySub.Unsubscribe()
	if r.shape != nil {
		r.shape.dispose()
	}
	r.onDrag.Clear()
	r.onChange.Clear()
	r.onSelect.Clear()
	r.releaseCursor()
	r.provider = nil
	r.layer.Repaint()
	r.debug("region removed")
}

// pixelOutline maps the sampled outline of v to pixels.
func pixelOutline(cs axis.CoordinateSystem, v roi.ROI) ([]image.Point, bool) {
	pts, closed := v.Outline(outlineSamples)
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		out[i] = cs.ValueToPoint(p)
	}
	return out, closed
}

