package presenter

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/roi-plot-go/domain/notify"
	"github.com/soocke/roi-plot-go/domain/region"
	"github.com/soocke/roi-plot-go/domain/roi"
	"github.com/soocke/roi-plot-go/ui/images"
	"github.com/soocke/roi-plot-go/ui/model"
)

// RegionSource announces regions entering and leaving the plot.
type RegionSource interface {
	OnRegionAdded(l region.RegionListener) *notify.Subscription
	OnRegionRemoved(l region.RegionListener) *notify.Subscription
}

// StatusView shows the latest region event.
type StatusView interface{ SetStatus(string) }

// SelectionView shows the plot pixels under the selected region.
type SelectionView interface{ UpdateSelection(img image.Image) }

// RegionPresenter listens to every region of the plot. Drag and change
// notifications feed the gesture model and queue a status line; selections
// land in the selection model and refresh the selection preview on Tick.
type RegionPresenter struct {
	source    RegionSource
	gestures  *model.GestureModel
	selection *model.SelectionModel
	status    StatusView
	preview   SelectionView
	// Frame returns the last rendered plot image, if any.
	Frame  func() image.Image
	logger *slog.Logger

	graphSubs notify.Set
	subs      map[*region.Region]*notify.Set
	selected  *region.Region
	pending   []string
	latest    string
}

func NewRegionPresenter(src RegionSource, gestures *model.GestureModel, sel *model.SelectionModel, status StatusView, preview SelectionView, logger *slog.Logger) *RegionPresenter {
	p := &RegionPresenter{
		source:    src,
		gestures:  gestures,
		selection: sel,
		status:    status,
		preview:   preview,
		logger:    logger,
		subs:      make(map[*region.Region]*notify.Set),
	}
	if src != nil {
		p.graphSubs.Add(src.OnRegionAdded(p.OnAdded))
		p.graphSubs.Add(src.OnRegionRemoved(p.OnRemoved))
	}
	return p
}

// OnAdded subscribes to r.
func (p *RegionPresenter) OnAdded(r *region.Region) {
	if p == nil || r == nil || p.subs[r] != nil {
		return
	}
	set := &notify.Set{}
	set.Add(r.OnDrag(func(v roi.ROI, k region.DragKind) {
		p.gestures.Dragged(k)
		p.queue(fmt.Sprintf("%s: %s %s", r.Name(), k, describe(v)))
	}))
	set.Add(r.OnChanged(func(v roi.ROI) {
		p.gestures.Changed()
		p.queue(fmt.Sprintf("%s: changed %s", r.Name(), describe(v)))
	}))
	set.Add(r.OnSelection(func(region.Selection) {
		p.selected = r
		p.selection.SetSource(r.Name())
	}))
	p.subs[r] = set
	p.queue(fmt.Sprintf("%s: added %s", r.Name(), describe(r.Committed())))
}

// OnRemoved drops the subscriptions of r and its selection.
func (p *RegionPresenter) OnRemoved(r *region.Region) {
	if p == nil || r == nil {
		return
	}
	if set := p.subs[r]; set != nil {
		set.RevokeAll()
		delete(p.subs, r)
	}
	if p.selected == r {
		p.selected = nil
		p.selection.Clear()
	}
	p.queue(r.Name() + ": removed")
}

// Dispose revokes every subscription the presenter holds.
func (p *RegionPresenter) Dispose() {
	if p == nil {
		return
	}
	p.graphSubs.RevokeAll()
	for r, set := range p.subs {
		set.RevokeAll()
		delete(p.subs, r)
	}
	p.selected = nil
}

// Tracked returns how many regions the presenter listens to.
func (p *RegionPresenter) Tracked() int { return len(p.subs) }

func (p *RegionPresenter) queue(s string) {
	p.pending = append(p.pending, s)
	if p.logger != nil {
		p.logger.Debug("region event", "status", s)
	}
}

// Tick flushes the latest queued status and refreshes the selection preview.
func (p *RegionPresenter) Tick() {
	if p == nil {
		return
	}
	if len(p.pending) > 0 {
		last := p.pending[len(p.pending)-1]
		p.pending = p.pending[:0]
		if last != p.latest && p.status != nil {
			p.latest = last
			p.status.SetStatus(last)
		}
	}
	if p.selection.TakeDirty() {
		p.refreshPreview()
	}
}

func (p *RegionPresenter) refreshPreview() {
	if p.preview == nil {
		return
	}
	placeholder := image.NewRGBA(image.Rect(0, 0, 1, 1))
	r := p.selected
	if r == nil || r.Removed() || p.selection.First() == nil || r.Committed() == nil || p.Frame == nil {
		p.preview.UpdateSelection(placeholder)
		return
	}
	frame := p.Frame()
	if frame == nil {
		p.preview.UpdateSelection(placeholder)
		return
	}
	box := region.PixelBounds(r.CoordinateSystem(), r.Committed())
	img, _, err := images.ExtractROI(frame, box.Inset(-1), r.Contains)
	if err != nil {
		if p.logger != nil {
			p.logger.Debug("selection preview", "region", r.Name(), "error", err)
		}
		p.preview.UpdateSelection(placeholder)
		return
	}
	p.preview.UpdateSelection(img)
}

func describe(v roi.ROI) string {
	if v == nil {
		return "<empty>"
	}
	pt := v.Point()
	return fmt.Sprintf("%s at (%.4g, %.4g)", v.Kind(), pt.X, pt.Y)
}
