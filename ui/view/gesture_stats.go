package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// GestureStats shows drag durations and region event counts.
type GestureStats interface {
	SetDragTime(drag, total time.Duration)
	SetCounts(translates, resizes, changes, selections int)
}

type gestureStats struct {
	dragLbl   *LabelWidget
	countsLbl *LabelWidget
}

// NewGestureStats creates the labels at (row, startCol) and (row, startCol+1)
// inside parent.
func NewGestureStats(parent *FrameWidget, row, startCol int) GestureStats {
	s := &gestureStats{dragLbl: Label(Width(22)), countsLbl: Label(Width(36))}
	Grid(s.dragLbl, In(parent), Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
	Grid(s.countsLbl, In(parent), Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	s.SetDragTime(0, 0)
	s.SetCounts(0, 0, 0, 0)
	return s
}

func (s *gestureStats) SetDragTime(drag, total time.Duration) {
	if s == nil || s.dragLbl == nil {
		return
	}
	s.dragLbl.Configure(Txt(fmt.Sprintf("Drag: %.1fs / %.1fs", drag.Seconds(), total.Seconds())))
}

func (s *gestureStats) SetCounts(translates, resizes, changes, selections int) {
	if s == nil || s.countsLbl == nil {
		return
	}
	s.countsLbl.Configure(Txt(fmt.Sprintf("Move %d  Resize %d  Commit %d  Select %d", translates, resizes, changes, selections)))
}
