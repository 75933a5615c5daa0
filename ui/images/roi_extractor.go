package images

import (
	"errors"
	"image"
	"image/draw"
)

// ErrEmptyArea is returned when the requested box misses the frame.
var ErrEmptyArea = errors.New("area does not overlap the frame")

// ExtractROI copies the part of frame under box. Pixels for which inside
// reports false are left transparent; a nil inside keeps the whole box.
// The box is clamped to the frame. The returned image starts at (0,0) and
// the returned rectangle is the clamped box in frame coordinates.
func ExtractROI(frame image.Image, box image.Rectangle, inside func(image.Point) bool) (*image.RGBA, image.Rectangle, error) {
	if frame == nil {
		return nil, image.Rectangle{}, errors.New("nil frame")
	}
	box = box.Canon().Intersect(frame.Bounds())
	if box.Empty() {
		return nil, image.Rectangle{}, ErrEmptyArea
	}
	out := image.NewRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	if inside == nil {
		draw.Draw(out, out.Bounds(), frame, box.Min, draw.Src)
		return out, box, nil
	}
	mask := image.NewAlpha(out.Bounds())
	for y := box.Min.Y; y < box.Max.Y; y++ {
		for x := box.Min.X; x < box.Max.X; x++ {
			if inside(image.Pt(x, y)) {
				mask.Pix[(y-box.Min.Y)*mask.Stride+(x-box.Min.X)] = 0xff
			}
		}
	}
	draw.DrawMask(out, out.Bounds(), frame, box.Min, mask, image.Point{}, draw.Src)
	return out, box, nil
}
