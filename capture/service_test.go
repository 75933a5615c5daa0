package capture

import (
	"errors"
	"image"
	"sync/atomic"
	"testing"
	"time"
)

func TestService_CaptureOnceUsesArea(t *testing.T) {
	var got image.Rectangle
	grab := func(area image.Rectangle) (*image.RGBA, error) {
		got = area
		return image.NewRGBA(image.Rect(0, 0, area.Dx(), area.Dy())), nil
	}
	s := NewService(nil, grab, time.Hour)
	s.SetArea(image.Rect(10, 20, 110, 70))
	snap, err := s.CaptureOnce()
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if got != image.Rect(10, 20, 110, 70) || snap.Image.Bounds().Dx() != 100 || snap.Sequence != 1 {
		t.Fatalf("area=%v snap=%+v", got, snap)
	}
	if st := s.Stats(); st.Captures != 1 || st.Failed != 0 || st.Sequence != 1 {
		t.Fatalf("stats %+v", st)
	}
}

func TestService_FailureKeepsPreviousFrame(t *testing.T) {
	fail := false
	grab := func(area image.Rectangle) (*image.RGBA, error) {
		if fail {
			return nil, errors.New("no display")
		}
		return image.NewRGBA(image.Rect(0, 0, 4, 4)), nil
	}
	s := NewService(nil, grab, time.Hour)
	if _, err := s.CaptureOnce(); err != nil {
		t.Fatalf("first capture: %v", err)
	}
	fail = true
	if _, err := s.CaptureOnce(); err == nil {
		t.Fatalf("expected an error")
	}
	if s.LatestFrame().Sequence != 1 || s.Stats().Failed != 1 {
		t.Fatalf("failed grab should keep the previous frame")
	}
}

func TestService_StartStopIdempotent(t *testing.T) {
	var calls atomic.Int32
	grab := func(area image.Rectangle) (*image.RGBA, error) {
		calls.Add(1)
		return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
	}
	s := NewService(nil, grab, 5*time.Millisecond)
	s.Start()
	s.Start()
	if !s.Running() {
		t.Fatalf("service should run")
	}
	deadline := time.Now().Add(2 * time.Second)
	for calls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	s.Stop()
	s.Stop()
	if s.Running() {
		t.Fatalf("service should stop")
	}
	if calls.Load() < 2 {
		t.Fatalf("expected periodic captures, got %d", calls.Load())
	}
	if s.LatestFrame().Image == nil {
		t.Fatalf("latest frame missing")
	}
}
