package capture

import (
	"image"
	"time"
)

// FrameSnapshot carries the latest captured background and metadata.
type FrameSnapshot struct {
	Image      *image.RGBA
	CapturedAt time.Time
	Sequence   uint64
}

// Stats summarises background capture behaviour for instrumentation.
type Stats struct {
	Captures       uint64
	Failed         uint64
	AvgCapture     time.Duration
	LastCapture    time.Time
	LatestFrameAge time.Duration
	Sequence       uint64
}

// GrabFunc captures the given screen area.
type GrabFunc func(area image.Rectangle) (*image.RGBA, error)
