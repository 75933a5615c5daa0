package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"image/png"
)

// Cursors holds one 16x16 PNG icon per ROI kind, named <kind>.png.
//
//go:embed cursors/*.png
var Cursors embed.FS

// CursorPNG returns the raw PNG bytes of the cursor icon for tag.
func CursorPNG(tag string) ([]byte, error) {
	b, err := Cursors.ReadFile("cursors/" + tag + ".png")
	if err != nil {
		return nil, fmt.Errorf("cursor %q: %w", tag, err)
	}
	if len(b) == 0 {
		return nil, fmt.Errorf("embedded cursor %q is empty", tag)
	}
	return b, nil
}

// CursorImage decodes the embedded cursor icon for tag into an image.Image.
func CursorImage(tag string) (image.Image, error) {
	b, err := CursorPNG(tag)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	return img, nil
}
