//go:build !windows

package region

import (
	"image"

	"github.com/soocke/roi-plot-go/assets"
)

type imageCursor struct {
	tag     string
	img     image.Image
	hotspot image.Point
}

// SystemCursor decodes the embedded cursor icon for tag. The hotspot is
// the icon centre.
func SystemCursor(tag string) (Cursor, error) {
	img, err := assets.CursorImage(tag)
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	return &imageCursor{tag: tag, img: img, hotspot: image.Pt(b.Dx()/2, b.Dy()/2)}, nil
}

func (c *imageCursor) Tag() string { return c.tag }
func (c *imageCursor) Release()    { c.img = nil }
