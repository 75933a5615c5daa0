package presenter

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/soocke/roi-plot-go/capture"
	"github.com/soocke/roi-plot-go/domain/figure"
	"github.com/soocke/roi-plot-go/domain/notify"
	"github.com/soocke/roi-plot-go/ui/images"
)

// Plot is the graph surface rendered by the presenter.
type Plot interface {
	Layer() *figure.Layer
	Paint(dst draw.Image)
	Press(p image.Point) bool
	Drag(p image.Point)
	Release(p image.Point) error
}

// FrameSource supplies the most recent background frame.
type FrameSource interface {
	LatestFrame() capture.FrameSnapshot
}

// PlotView displays the rendered plot.
type PlotView interface{ UpdatePlot(img image.Image) }

// PlotPresenter renders background and regions into one image whenever the
// layer asked for a repaint or a new background frame arrived.
type PlotPresenter struct {
	plot       Plot
	view       PlotView
	background FrameSource
	fill       color.Color

	sub     *notify.Subscription
	dirty   bool
	lastSeq uint64
	last    *image.RGBA
	renders int
	pressed bool
}

func NewPlotPresenter(plot Plot, view PlotView, background FrameSource, fill color.Color) *PlotPresenter {
	p := &PlotPresenter{plot: plot, view: view, background: background, fill: fill, dirty: true}
	if plot != nil {
		p.sub = plot.Layer().OnRepaint(func() { p.dirty = true })
	}
	return p
}

// SetFill changes the color behind the plot and forces a render.
func (p *PlotPresenter) SetFill(c color.Color) {
	if p == nil {
		return
	}
	p.fill = c
	p.dirty = true
}

// Invalidate forces a render on the next Tick.
func (p *PlotPresenter) Invalidate() {
	if p != nil {
		p.dirty = true
	}
}

// Tick renders when needed.
func (p *PlotPresenter) Tick() {
	if p == nil || p.plot == nil {
		return
	}
	var bg image.Image
	if p.background != nil {
		snap := p.background.LatestFrame()
		if snap.Sequence != p.lastSeq {
			p.lastSeq = snap.Sequence
			p.dirty = true
		}
		if snap.Image != nil {
			bg = snap.Image
		}
	}
	if !p.dirty {
		return
	}
	p.dirty = false
	b := p.plot.Layer().Bounds()
	dst := images.Backdrop(bg, b.Max.X, b.Max.Y, p.fill)
	p.plot.Paint(dst)
	p.last = dst
	p.renders++
	if p.view != nil {
		p.view.UpdatePlot(dst)
	}
}

// Frame returns the last rendered image, nil before the first render.
func (p *PlotPresenter) Frame() image.Image {
	if p == nil || p.last == nil {
		return nil
	}
	return p.last
}

// Renders returns how many times the plot was rendered.
func (p *PlotPresenter) Renders() int { return p.renders }

// Press forwards a button press at plot pixel pt. It reports whether a
// region took the press.
func (p *PlotPresenter) Press(pt image.Point) bool {
	if p == nil || p.plot == nil {
		return false
	}
	p.pressed = true
	return p.plot.Press(pt)
}

// Drag forwards pointer motion while the button is held.
func (p *PlotPresenter) Drag(pt image.Point) {
	if p == nil || p.plot == nil || !p.pressed {
		return
	}
	p.plot.Drag(pt)
}

// Release ends the press. A release without a press is ignored.
func (p *PlotPresenter) Release(pt image.Point) error {
	if p == nil || p.plot == nil || !p.pressed {
		return nil
	}
	p.pressed = false
	return p.plot.Release(pt)
}

// Gesture replays a press, one drag step per point and a release, the way
// pointer events reach the plot.
func (p *PlotPresenter) Gesture(from image.Point, path ...image.Point) error {
	if p == nil || p.plot == nil || len(path) == 0 {
		return nil
	}
	p.Press(from)
	for _, q := range path {
		p.Drag(q)
	}
	return p.Release(path[len(path)-1])
}

// Dispose stops listening to repaint requests.
func (p *PlotPresenter) Dispose() {
	if p != nil && p.sub != nil {
		p.sub.Unsubscribe()
	}
}
