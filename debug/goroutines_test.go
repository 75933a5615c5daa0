package debug

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTakeSnapshot_UsesSampler(t *testing.T) {
	s := TakeSnapshot(func() (int, int) { return 3, 17 })
	if s.Regions != 3 || s.Figures != 17 {
		t.Fatalf("sampler not applied: %+v", s)
	}
	if s.Goroutines == 0 || s.HeapAlloc == 0 {
		t.Fatalf("runtime stats missing: %+v", s)
	}
	if TakeSnapshot(nil).Regions != 0 {
		t.Fatalf("nil sampler should report no regions")
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestStartStatsLogger_LogsUntilStopped(t *testing.T) {
	out := &syncBuffer{}
	logger := slog.New(slog.NewJSONHandler(out, nil))
	stop := make(chan struct{})
	StartStatsLogger(5*time.Millisecond, logger, func() (int, int) { return 2, 9 }, stop)
	deadline := time.Now().Add(2 * time.Second)
	for !strings.Contains(out.String(), `"regions":2`) && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	close(stop)
	if !strings.Contains(out.String(), `"msg":"runtime-stats"`) || !strings.Contains(out.String(), `"figures":9`) {
		t.Fatalf("unexpected log output: %s", out.String())
	}
}
