package presenter

import (
	"time"

	"github.com/soocke/roi-plot-go/ui/model"
)

// DragState reports whether a gesture is running.
type DragState interface{ Dragging() bool }

// StatsView displays drag durations and event counts.
type StatsView interface {
	SetDragTime(drag, total time.Duration)
	SetCounts(translates, resizes, changes, selections int)
}

// StatsPresenter formats gesture statistics from the models to the view.
type StatsPresenter struct {
	gestures  *model.GestureModel
	selection *model.SelectionModel
	drag      DragState
	view      StatsView
}

func NewStatsPresenter(g *model.GestureModel, sel *model.SelectionModel, drag DragState, view StatsView) *StatsPresenter {
	return &StatsPresenter{gestures: g, selection: sel, drag: drag, view: view}
}

// Tick advances the drag timers and pushes values to the view.
func (p *StatsPresenter) Tick(now time.Time) {
	if p == nil || p.gestures == nil || p.drag == nil || p.view == nil {
		return
	}
	p.gestures.OnTick(p.drag.Dragging(), now)
	d, t := p.gestures.Values()
	p.view.SetDragTime(d, t)
	tr, rs, ch := p.gestures.Counts()
	p.view.SetCounts(tr, rs, ch, p.selection.Count())
}
