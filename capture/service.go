package capture

import (
	"image"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

const statsLogInterval = 30 * time.Second

// Service grabs the screen area behind the plot at a fixed interval and
// keeps the latest frame as the plot background.
type Service struct {
	grab     GrabFunc
	interval time.Duration
	logger   *slog.Logger

	mu   sync.Mutex
	area image.Rectangle
	done chan struct{}

	running      atomic.Bool
	latest       atomic.Pointer[FrameSnapshot]
	captures     atomic.Uint64
	failed       atomic.Uint64
	captureNanos atomic.Uint64
	sequence     atomic.Uint64
}

// NewService returns a stopped service. A nil grab uses GrabSelection.
func NewService(logger *slog.Logger, grab GrabFunc, interval time.Duration) *Service {
	if grab == nil {
		grab = GrabSelection
	}
	if interval <= 0 {
		interval = time.Second
	}
	return &Service{grab: grab, interval: interval, logger: logger}
}

// SetArea sets the screen rectangle to capture. Empty means the whole screen.
func (s *Service) SetArea(r image.Rectangle) {
	s.mu.Lock()
	s.area = r
	s.mu.Unlock()
}

func (s *Service) Area() image.Rectangle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.area
}

func (s *Service) Running() bool { return s.running.Load() }

func (s *Service) LatestFrame() FrameSnapshot {
	snap := s.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

func (s *Service) Stats() Stats {
	captures := s.captures.Load()
	var avg time.Duration
	if total := s.captureNanos.Load(); captures > 0 {
		avg = time.Duration(total / captures)
	}
	snap := s.LatestFrame()
	age := time.Duration(0)
	if !snap.CapturedAt.IsZero() {
		age = time.Since(snap.CapturedAt)
	}
	return Stats{
		Captures:       captures,
		Failed:         s.failed.Load(),
		AvgCapture:     avg,
		LastCapture:    snap.CapturedAt,
		LatestFrameAge: age,
		Sequence:       snap.Sequence,
	}
}

// Start launches the capture goroutine. Idempotent.
func (s *Service) Start() {
	if !s.running.CompareAndSwap(false, true) {
		return
	}
	s.mu.Lock()
	s.done = make(chan struct{})
	done := s.done
	s.mu.Unlock()
	go s.loop(done)
}

// Stop ends the capture goroutine. Idempotent.
func (s *Service) Stop() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	s.mu.Lock()
	close(s.done)
	s.done = nil
	s.mu.Unlock()
}

// CaptureOnce grabs one frame synchronously and stores it as the latest.
func (s *Service) CaptureOnce() (FrameSnapshot, error) {
	start := time.Now()
	img, err := s.grab(s.Area())
	if err != nil {
		s.failed.Add(1)
		return FrameSnapshot{}, err
	}
	s.captureNanos.Add(uint64(time.Since(start).Nanoseconds()))
	s.captures.Add(1)
	snap := &FrameSnapshot{Image: img, CapturedAt: time.Now(), Sequence: s.sequence.Add(1)}
	s.latest.Store(snap)
	return *snap, nil
}

func (s *Service) loop(done chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	logTicker := time.NewTicker(statsLogInterval)
	defer logTicker.Stop()
	s.tick()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.tick()
		case <-logTicker.C:
			s.logStats()
		}
	}
}

func (s *Service) tick() {
	if _, err := s.CaptureOnce(); err != nil && s.logger != nil {
		s.logger.Error("background capture", "error", err)
	}
}

func (s *Service) logStats() {
	if s.logger == nil {
		return
	}
	st := s.Stats()
	s.logger.Debug("capture.stats",
		"captures", st.Captures,
		"failed", st.Failed,
		"avg_capture", st.AvgCapture,
		"age", st.LatestFrameAge,
	)
}
