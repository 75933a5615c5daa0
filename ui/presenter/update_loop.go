package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Stats    *StatsPresenter
	Regions  *RegionPresenter
	Plot     *PlotPresenter
	Schedule func()
}

func NewLoop(stats *StatsPresenter, regions *RegionPresenter, plot *PlotPresenter, schedule func()) *Loop {
	return &Loop{Stats: stats, Regions: regions, Plot: plot, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	// Render before the region presenter so the selection preview crops the
	// current frame.
	if l.Plot != nil {
		l.Plot.Tick()
	}
	if l.Regions != nil {
		l.Regions.Tick()
	}
	if l.Stats != nil {
		l.Stats.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
