// Package debug holds periodic runtime loggers started when config.Debug is
// true. They log goroutine, heap and region counts to correlate memory
// growth with the regions alive on the plot.
package debug

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"
)

// Snapshot is one sample of runtime and plot state.
type Snapshot struct {
	Goroutines uint64
	StackInuse uint64
	HeapAlloc  uint64
	NumGC      uint32
	RSS        uint64
	Regions    int
	Figures    int
}

// Sampler reports plot state for a snapshot: live regions and layer figures.
type Sampler func() (regions, figures int)

// TakeSnapshot samples the runtime and the sampler. A nil sampler reports zero
// regions.
func TakeSnapshot(sample Sampler) Snapshot {
	samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	metrics.Read(samples)
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	s := Snapshot{
		StackInuse: ms.StackInuse,
		HeapAlloc:  ms.HeapAlloc,
		NumGC:      ms.NumGC,
	}
	if samples[0].Value.Kind() == metrics.KindUint64 {
		s.Goroutines = samples[0].Value.Uint64()
	} else {
		s.Goroutines = uint64(runtime.NumGoroutine())
	}
	if sample != nil {
		s.Regions, s.Figures = sample()
	}
	return s
}

// LogValue groups the snapshot under one slog attribute.
func (s Snapshot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("goroutines", s.Goroutines),
		slog.Uint64("stack_inuse", s.StackInuse),
		slog.Uint64("heap_alloc", s.HeapAlloc),
		slog.Uint64("num_gc", uint64(s.NumGC)),
		slog.Uint64("rss", s.RSS),
		slog.Int("regions", s.Regions),
		slog.Int("figures", s.Figures),
	)
}

// StartStatsLogger launches a ticker that logs a Snapshot every interval
// until stop is closed. The sampler runs on the logger goroutine, so it must
// be safe to call from there.
func StartStatsLogger(interval time.Duration, logger *slog.Logger, sample Sampler, stop <-chan struct{}) {
	if interval <= 0 {
		interval = time.Second
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		var rssErrLogged bool
		for {
			select {
			case <-stop:
				return
			case <-t.C:
			}
			s := TakeSnapshot(sample)
			rss, err := processRSS()
			if err != nil && !rssErrLogged {
				logger.Warn("stats: process rss unavailable", "error", err)
				rssErrLogged = true
			}
			s.RSS = rss
			logger.Info("runtime-stats", slog.Any("stats", s))
		}
	}()
}
