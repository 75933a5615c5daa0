package model

import (
	"testing"
	"time"

	"github.com/soocke/roi-plot-go/domain/region"
	"github.com/soocke/roi-plot-go/domain/roi"
	"gonum.org/v1/gonum/spatial/r2"
)

func TestGestureModel_TimersLifecycle(t *testing.T) {
	m := NewGestureModel()
	base := time.Unix(0, 0)

	m.OnTick(true, base)
	m.OnTick(true, base.Add(5*time.Second))
	drag, total := m.Values()
	if drag != 5*time.Second || total != 5*time.Second {
		t.Fatalf("expected 5s drag & total; got drag=%v total=%v", drag, total)
	}

	m.OnTick(false, base.Add(5*time.Second))
	m.OnTick(false, base.Add(7*time.Second))
	drag, total = m.Values()
	if drag != 5*time.Second || total != 5*time.Second {
		t.Fatalf("idle tick should not change durations: drag=%v total=%v", drag, total)
	}

	m.OnTick(true, base.Add(10*time.Second))
	m.OnTick(true, base.Add(13*time.Second))
	drag, total = m.Values()
	if drag != 3*time.Second || total != 8*time.Second {
		t.Fatalf("second drag: drag=%v total=%v", drag, total)
	}
	m.OnTick(false, base.Add(13*time.Second))
	if _, total = m.Values(); total != 8*time.Second {
		t.Fatalf("final total %v", total)
	}
}

func TestGestureModel_Counts(t *testing.T) {
	m := NewGestureModel()
	m.Dragged(region.Translate)
	m.Dragged(region.Translate)
	m.Dragged(region.Resize)
	m.Changed()
	tr, rs, ch := m.Counts()
	if tr != 2 || rs != 1 || ch != 1 {
		t.Fatalf("counts %d %d %d", tr, rs, ch)
	}
	var nilModel *GestureModel
	nilModel.Dragged(region.Resize)
	if a, b, c := nilModel.Counts(); a+b+c != 0 {
		t.Fatalf("nil model should count nothing")
	}
}

func TestSelectionModel_ProviderContract(t *testing.T) {
	var _ region.SelectionProvider = (*SelectionModel)(nil)
	m := NewSelectionModel()
	p := roi.Point{P: r2.Vec{X: 1, Y: 2}}
	m.SetSource("a")
	m.SetSelection(region.NewSelection(p))
	if m.Source() != "a" || m.Count() != 1 || !roi.Equal(m.First(), p, 0) {
		t.Fatalf("selection not stored: %q %d", m.Source(), m.Count())
	}
	if !m.TakeDirty() || m.TakeDirty() {
		t.Fatalf("dirty flag should be consumed once")
	}
	m.Clear()
	if m.First() != nil || m.Source() != "" || m.Count() != 1 || !m.TakeDirty() {
		t.Fatalf("clear failed")
	}
}

func TestToolModel_ArmDisarm(t *testing.T) {
	var m ToolModel
	if _, ok := m.Armed(); ok {
		t.Fatalf("zero value should be disarmed")
	}
	m.Arm(roi.KindEllipse)
	if k, ok := m.Armed(); !ok || k != roi.KindEllipse {
		t.Fatalf("armed %v %v", k, ok)
	}
	m.Disarm()
	if _, ok := m.Armed(); ok {
		t.Fatalf("disarm failed")
	}
	if m.NextSeq() != 1 || m.NextSeq() != 2 {
		t.Fatalf("sequence should count up")
	}
}
