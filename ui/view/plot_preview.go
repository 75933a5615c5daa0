package view

import (
	"image"

	"github.com/soocke/roi-plot-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PlotPreview shows the rendered plot and the pixels under the selected
// region. It owns two LabelWidgets and provides methods to update or reset them.
type PlotPreview interface {
	UpdatePlot(img image.Image)
	UpdateSelection(img image.Image)
	Reset()
	BindPointer(h PointerHandlers)
}

// PointerHandlers receive button 1 events in plot pixels.
type PointerHandlers struct {
	OnPress   func(p image.Point)
	OnDrag    func(p image.Point)
	OnRelease func(p image.Point)
}

type plotPreview struct {
	plotLabel          *LabelWidget
	selectionLabel     *LabelWidget
	prevPlotPhoto      *Img
	prevSelectionPhoto *Img
}

const (
	// Max selection preview dimensions; the plot itself is shown unscaled so
	// that label pixels match plot pixels.
	maxSelectionW = 160
	maxSelectionH = 160

	// plotInset is the label border; the plot label has no padding or
	// highlight ring, so event coordinates are offset by the border only.
	plotInset = 1
)

// NewPlotPreview creates the labels, grids them at row and returns the view.
// Layout: the plot spans columns 0-3; the selection sits at column 4.
func NewPlotPreview(row, plotW, plotH int) PlotPreview {
	plotPhoto := NewPhoto(Data(images.EncodePNG(image.NewRGBA(image.Rect(0, 0, plotW, plotH)))))
	selPhoto := NewPhoto(Data(images.EncodePNG(image.NewRGBA(image.Rect(0, 0, maxSelectionW, maxSelectionH)))))
	plot := Label(Image(plotPhoto), Borderwidth(plotInset), Relief("sunken"), Padx(0), Pady(0), Highlightthickness(0))
	sel := Label(Image(selPhoto), Borderwidth(1), Relief("sunken"))
	Grid(plot, Row(row), Column(0), Columnspan(4), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	Grid(sel, Row(row), Column(4), Columnspan(1), Sticky("n"), Padx("0.4m"), Pady("0.4m"))
	return &plotPreview{plotLabel: plot, selectionLabel: sel, prevPlotPhoto: plotPhoto, prevSelectionPhoto: selPhoto}
}

func (v *plotPreview) UpdatePlot(img image.Image) {
	if v.plotLabel == nil || img == nil {
		return
	}
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPlotPhoto != nil {
		v.prevPlotPhoto.Delete()
	}
	v.prevPlotPhoto = NewPhoto(Data(images.EncodePNG(img)))
	v.plotLabel.Configure(Image(v.prevPlotPhoto))
}

func (v *plotPreview) UpdateSelection(img image.Image) {
	if v.selectionLabel == nil || img == nil {
		return
	}
	scaled := images.ScaleToFit(img, maxSelectionW, maxSelectionH)
	if v.prevSelectionPhoto != nil {
		v.prevSelectionPhoto.Delete()
	}
	v.prevSelectionPhoto = NewPhoto(Data(images.EncodePNG(scaled)))
	v.selectionLabel.Configure(Image(v.prevSelectionPhoto))
}

func (v *plotPreview) Reset() {
	v.UpdateSelection(image.NewRGBA(image.Rect(0, 0, maxSelectionW, maxSelectionH)))
}

// BindPointer routes press, motion with button 1 held and release on the
// plot label to h.
func (v *plotPreview) BindPointer(h PointerHandlers) {
	if v.plotLabel == nil {
		return
	}
	for _, b := range []struct {
		seq string
		fn  func(image.Point)
	}{{"<ButtonPress-1>", h.OnPress}, {"<B1-Motion>", h.OnDrag}, {"<ButtonRelease-1>", h.OnRelease}} {
		fn := b.fn
		if fn == nil {
			continue
		}
		Bind(v.plotLabel.Window, b.seq, Command(func(e *Event) {
			fn(image.Pt(e.X-plotInset, e.Y-plotInset))
		}))
	}
}
