package capture

import (
	"image"

	"github.com/vova616/screenshot"
)

// Grab returns a screen capture of the current active monitor.
func Grab() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, err
	}
	return img, nil
}

// GrabSelection captures the screen rectangle area. An empty area falls back
// to the whole screen.
func GrabSelection(area image.Rectangle) (*image.RGBA, error) {
	if area.Empty() {
		return Grab()
	}
	img, err := screenshot.CaptureRect(area)
	if err != nil {
		return nil, err
	}
	return img, nil
}
