package region

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"github.com/soocke/roi-plot-go/domain/axis"
	"github.com/soocke/roi-plot-go/domain/roi"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"gonum.org/v1/gonum/spatial/r2"
)

// outlineSamples is the number of points curved outlines are sampled with.
const outlineSamples = 72

// Paint draws the region onto dst: the filled area for closed kinds, the
// outline at the line width, the visible handles and the label line.
func (r *Region) Paint(dst draw.Image) {
	if r.removed || !r.style.Visible || r.shape == nil {
		return
	}
	v := r.ROI()
	px, closed := r.fill, r.fillClosed
	if closed && len(px) > 2 {
		fillPolygon(dst, px, withAlpha(r.style.Color, r.style.Alpha))
	}
	stroke(dst, px, closed, lineWidth(r.style.LineWidth), withAlpha(r.style.Color, 255))
	for _, h := range r.shape.handles {
		if h.Visible() {
			draw.Draw(dst, h.Bounds().Intersect(dst.Bounds()), image.NewUniform(withAlpha(h.Color(), h.Alpha())), image.Point{}, draw.Over)
		}
	}
	if text := r.labelText(v); text != "" {
		box := PixelBounds(r.CoordinateSystem(), v)
		d := font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(withAlpha(r.style.Color, 255)),
			Face: basicfont.Face7x13,
			Dot:  fixed.P(box.Min.X, box.Min.Y-labelGap),
		}
		d.DrawString(text)
	}
}

// labelGap is the pixel distance between the label baseline and the region.
const labelGap = 4

// labelText joins the name and the reference point, as enabled by the style.
func (r *Region) labelText(v roi.ROI) string {
	var parts []string
	if r.style.ShowLabel && r.style.Name != "" {
		parts = append(parts, r.style.Name)
	}
	if r.style.ShowPosition {
		p := v.Point()
		parts = append(parts, fmt.Sprintf("(%.4g, %.4g)", p.X, p.Y))
	}
	return strings.Join(parts, " ")
}

// PaintBeforeAdded draws the provisional outline of a creation drag from
// first to drag, before the region has a ROI.
func (r *Region) PaintBeforeAdded(dst draw.Image, first, drag image.Point, parent image.Rectangle) {
	v := r.Preview(first, drag, parent)
	if v == nil || !v.Valid() {
		return
	}
	px, closed := pixelOutline(r.CoordinateSystem(), v)
	stroke(dst, px, closed, lineWidth(r.style.LineWidth), withAlpha(r.style.Color, 255))
}

func lineWidth(w int) float32 {
	if w < 1 {
		return 1
	}
	return float32(w)
}

func withAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

func fillPolygon(dst draw.Image, px []image.Point, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	z.MoveTo(float32(px[0].X-b.Min.X), float32(px[0].Y-b.Min.Y))
	for _, p := range px[1:] {
		z.LineTo(float32(p.X-b.Min.X), float32(p.Y-b.Min.Y))
	}
	z.ClosePath()
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// stroke rasterizes each segment as a quad of the given width. A single
// point becomes a square dot.
func stroke(dst draw.Image, px []image.Point, closed bool, width float32, c color.Color) {
	if len(px) == 0 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	off := func(p image.Point) (float32, float32) {
		return float32(p.X-b.Min.X) + 0.5, float32(p.Y-b.Min.Y) + 0.5
	}
	h := width / 2
	if len(px) == 1 {
		x, y := off(px[0])
		h = max(h, 1.5)
		z.MoveTo(x-h, y-h)
		z.LineTo(x+h, y-h)
		z.LineTo(x+h, y+h)
		z.LineTo(x-h, y+h)
		z.ClosePath()
		z.Draw(dst, b, image.NewUniform(c), image.Point{})
		return
	}
	seg := func(a, q image.Point) {
		ax, ay := off(a)
		qx, qy := off(q)
		dx, dy := qx-ax, qy-ay
		n := float32(math.Hypot(float64(dx), float64(dy)))
		if n == 0 {
			return
		}
		nx, ny := -dy/n*h, dx/n*h
		z.MoveTo(ax+nx, ay+ny)
		z.LineTo(qx+nx, qy+ny)
		z.LineTo(qx-nx, qy-ny)
		z.LineTo(ax-nx, ay-ny)
		z.ClosePath()
	}
	for i := 1; i < len(px); i++ {
		seg(px[i-1], px[i])
	}
	if closed {
		seg(px[len(px)-1], px[0])
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// PixelBounds returns the pixel box of v under cs, the same box a Shape
// computes for it.
func PixelBounds(cs axis.CoordinateSystem, v roi.ROI) image.Rectangle {
	b := v.Bounds()
	return image.Rectangle{
		Min: cs.ValueToPoint(b.Origin),
		Max: cs.ValueToPoint(r2.Add(b.Origin, b.Lengths)),
	}.Canon()
}
