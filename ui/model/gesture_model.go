package model

import (
	"time"

	"github.com/soocke/roi-plot-go/domain/region"
)

// GestureModel counts region notifications and tracks how long the user has
// been dragging: the current drag duration and the accumulated total.
// Presenters feed it from region listeners and poll Values() on ticks.
// The zero value is ready to use.
type GestureModel struct {
	translates int
	resizes    int
	changes    int

	active       bool
	dragStart    time.Time
	lastDuration time.Duration
	accumulated  time.Duration
}

// NewGestureModel returns a pointer to a ready-to-use GestureModel.
func NewGestureModel() *GestureModel { return &GestureModel{} }

// Dragged records one drag notification of kind k.
func (m *GestureModel) Dragged(k region.DragKind) {
	if m == nil {
		return
	}
	if k == region.Resize {
		m.resizes++
	} else {
		m.translates++
	}
}

// Changed records one committed gesture.
func (m *GestureModel) Changed() {
	if m == nil {
		return
	}
	m.changes++
}

// Counts returns translate, resize and change notification counts.
func (m *GestureModel) Counts() (translates, resizes, changes int) {
	if m == nil {
		return 0, 0, 0
	}
	return m.translates, m.resizes, m.changes
}

// OnTick updates the timers using the current drag state and timestamp.
func (m *GestureModel) OnTick(dragging bool, now time.Time) {
	if m == nil {
		return
	}
	if dragging {
		if !m.active {
			m.active = true
			m.dragStart = now
			m.lastDuration = 0
		}
		m.lastDuration = now.Sub(m.dragStart)
	} else if m.active {
		m.lastDuration = now.Sub(m.dragStart)
		m.accumulated += m.lastDuration
		m.active = false
	}
}

// Values returns the current drag duration and the total accumulated duration.
// The total includes the ongoing drag when active.
func (m *GestureModel) Values() (drag, total time.Duration) {
	if m == nil {
		return 0, 0
	}
	drag = m.lastDuration
	total = m.accumulated
	if m.active {
		total += drag
	}
	return
}
