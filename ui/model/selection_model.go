package model

import (
	"github.com/soocke/roi-plot-go/domain/region"
	"github.com/soocke/roi-plot-go/domain/roi"
)

// SelectionModel keeps the last selection fired by a region and which region
// fired it. It satisfies region.SelectionProvider. The zero value is usable.
// No synchronization needed: updates occur on the UI goroutine.
type SelectionModel struct {
	current region.Selection
	source  string
	count   int
	dirty   bool
}

func NewSelectionModel() *SelectionModel { return &SelectionModel{} }

// SetSelection stores s. Empty selections clear the model.
func (m *SelectionModel) SetSelection(s region.Selection) {
	if m == nil {
		return
	}
	m.current = s
	if s.Empty() {
		m.source = ""
	} else {
		m.count++
	}
	m.dirty = true
}

// SetSource records the name of the region the next selection belongs to.
func (m *SelectionModel) SetSource(name string) {
	if m == nil {
		return
	}
	m.source = name
}

// Clear drops the selection, for example when its region is removed.
func (m *SelectionModel) Clear() { m.SetSelection(region.Selection{}) }

// Selection returns the stored selection.
func (m *SelectionModel) Selection() region.Selection {
	if m == nil {
		return region.Selection{}
	}
	return m.current
}

// First returns the first selected ROI or nil.
func (m *SelectionModel) First() roi.ROI { return m.Selection().First() }

// Source returns the name of the selected region, empty when nothing is selected.
func (m *SelectionModel) Source() string {
	if m == nil {
		return ""
	}
	return m.source
}

// Count returns how many non-empty selections were received.
func (m *SelectionModel) Count() int {
	if m == nil {
		return 0
	}
	return m.count
}

// TakeDirty reports whether the selection changed since the last call.
func (m *SelectionModel) TakeDirty() bool {
	if m == nil {
		return false
	}
	d := m.dirty
	m.dirty = false
	return d
}
