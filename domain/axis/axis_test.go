package axis

import (
	"errors"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

func mustAxis(t *testing.T, o Orientation, r Range, start, length int) *Axis {
	t.Helper()
	a, err := New("test", o, r, start, length)
	if err != nil {
		t.Fatalf("new axis: %v", err)
	}
	return a
}

func TestCoordinateSystem_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		lo := rng.Float64()*200 - 100
		span := rng.Float64()*500 + 0.01
		x := mustAxis(t, Horizontal, Range{lo, lo + span}, rng.Intn(50), 100+rng.Intn(900))
		y := mustAxis(t, Vertical, Range{lo + span, lo}, rng.Intn(50), 100+rng.Intn(900))
		cs := NewCoordinateSystem(x, y)
		v := r2.Vec{X: lo + rng.Float64()*span, Y: lo + rng.Float64()*span}
		back := cs.PositionToValue(cs.ValueToPosition(v))
		if !scalar.EqualWithinAbsOrRel(back.X, v.X, 1e-9, 1e-9) || !scalar.EqualWithinAbsOrRel(back.Y, v.Y, 1e-9, 1e-9) {
			t.Fatalf("round trip mismatch: %v -> %v", v, back)
		}
	}
}

func TestCoordinateSystem_LinearMapping(t *testing.T) {
	x := mustAxis(t, Horizontal, Range{0, 100}, 0, 500)
	y := mustAxis(t, Vertical, Range{0, 100}, 0, 500)
	cs := NewCoordinateSystem(x, y)
	p := cs.ValueToPoint(r2.Vec{X: 10, Y: 10})
	if p.X != 50 || p.Y != 450 {
		t.Fatalf("expected (50,450), got %v", p)
	}
	v := cs.PointToValue(p)
	if !scalar.EqualWithinAbs(v.X, 10, 1e-9) || !scalar.EqualWithinAbs(v.Y, 10, 1e-9) {
		t.Fatalf("expected (10,10), got %v", v)
	}
}

func TestCoordinateSystem_SeesRangeChange(t *testing.T) {
	x := mustAxis(t, Horizontal, Range{0, 100}, 0, 500)
	y := mustAxis(t, Vertical, Range{0, 100}, 0, 500)
	cs := NewCoordinateSystem(x, y)
	before := cs.ValueToPosition(r2.Vec{X: 50, Y: 50})
	if err := x.SetRange(Range{0, 200}); err != nil {
		t.Fatalf("set range: %v", err)
	}
	after := cs.ValueToPosition(r2.Vec{X: 50, Y: 50})
	if before.X == after.X {
		t.Fatalf("coordinate system did not follow range change: %v", after)
	}
	if after.X != 125 {
		t.Fatalf("expected x=125 after zoom out, got %v", after.X)
	}
}

func TestAxis_LogScaleRoundTrip(t *testing.T) {
	a := mustAxis(t, Horizontal, Range{1, 1000}, 0, 300)
	if err := a.SetScale(Log10); err != nil {
		t.Fatalf("set scale: %v", err)
	}
	if p := a.ValueToPixel(10); !scalar.EqualWithinAbs(p, 100, 1e-9) {
		t.Fatalf("expected 10 at pixel 100, got %v", p)
	}
	if v := a.PixelToValue(200); !scalar.EqualWithinAbsOrRel(v, 100, 1e-9, 1e-9) {
		t.Fatalf("expected 100 at pixel 200, got %v", v)
	}
	if err := a.SetRange(Range{-1, 10}); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange for non-positive log range, got %v", err)
	}
}

func TestAxis_RejectsInvalidRange(t *testing.T) {
	if _, err := New("x", Horizontal, Range{1, 1}, 0, 10); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected empty range error, got %v", err)
	}
	if _, err := New("x", Horizontal, Range{0, 1}, 0, 0); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected zero length error, got %v", err)
	}
	a := mustAxis(t, Horizontal, Range{0, 1}, 0, 10)
	calls := 0
	a.Subscribe(func(*Axis, Range, Range) { calls++ })
	_ = a.SetRange(Range{0, 0})
	if calls != 0 || a.Range() != (Range{0, 1}) {
		t.Fatalf("invalid range must not change axis or notify: calls=%d range=%v", calls, a.Range())
	}
}

func TestAxis_SubscribeUnsubscribe(t *testing.T) {
	a := mustAxis(t, Horizontal, Range{0, 1}, 0, 10)
	var olds, news []Range
	sub := a.Subscribe(func(_ *Axis, old, cur Range) {
		olds = append(olds, old)
		news = append(news, cur)
	})
	_ = a.SetRange(Range{0, 2})
	_ = a.SetPixelExtent(5, 20)
	if len(news) != 2 || olds[0] != (Range{0, 1}) || news[0] != (Range{0, 2}) || olds[1] != news[1] {
		t.Fatalf("unexpected notifications old=%v new=%v", olds, news)
	}
	sub.Unsubscribe()
	_ = a.SetRange(Range{0, 3})
	if len(news) != 2 || a.ListenerCount() != 0 {
		t.Fatalf("listener still attached: notifications=%d listeners=%d", len(news), a.ListenerCount())
	}
}
