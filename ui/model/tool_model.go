package model

import (
	"sync/atomic"

	"github.com/soocke/roi-plot-go/domain/roi"
)

// ToolModel tracks the creation tool the user armed. The zero value has no
// tool armed and is usable. Concurrency-safe via atomics because UI
// callbacks and presenter ticks may race.
type ToolModel struct {
	armed   atomic.Bool
	kind    atomic.Int32
	created atomic.Uint64
}

// Armed reports the armed kind, if any.
func (m *ToolModel) Armed() (roi.Kind, bool) {
	if m == nil || !m.armed.Load() {
		return 0, false
	}
	return roi.Kind(m.kind.Load()), true
}

// Arm stores k as the armed tool.
func (m *ToolModel) Arm(k roi.Kind) {
	if m == nil {
		return
	}
	m.kind.Store(int32(k))
	m.armed.Store(true)
}

// Disarm clears the armed tool.
func (m *ToolModel) Disarm() {
	if m == nil {
		return
	}
	m.armed.Store(false)
}

// NextSeq returns a fresh sequence number for naming created regions.
func (m *ToolModel) NextSeq() uint64 {
	if m == nil {
		return 0
	}
	return m.created.Add(1)
}
