package figure

import (
	"image"
	"image/color"
	"testing"
)

// box is a test figure.
type box struct {
	r       image.Rectangle
	visible bool
}

func (b *box) Bounds() image.Rectangle     { return b.r }
func (b *box) Visible() bool               { return b.visible }
func (b *box) Contains(p image.Point) bool { return p.In(b.r) }

func TestLayer_AddRemoveTolerant(t *testing.T) {
	l := NewLayer(image.Rect(0, 0, 100, 100))
	b := &box{r: image.Rect(0, 0, 10, 10), visible: true}
	l.Add(b)
	l.Add(b)
	l.Add(nil)
	if l.Len() != 1 {
		t.Fatalf("expected one child, got %d", l.Len())
	}
	if !l.Remove(b) {
		t.Fatalf("first remove should report true")
	}
	if l.Remove(b) {
		t.Fatalf("second remove should be a no-op")
	}
	_, added, removed := l.Stats()
	if added != 1 || removed != 1 {
		t.Fatalf("stats added=%d removed=%d", added, removed)
	}
	var nilLayer *Layer
	nilLayer.Add(b)
	nilLayer.Repaint()
	if nilLayer.Remove(b) || nilLayer.Children() != nil {
		t.Fatalf("nil layer should be inert")
	}
}

func TestLayer_RepaintListeners(t *testing.T) {
	l := NewLayer(image.Rect(0, 0, 1, 1))
	n := 0
	sub := l.OnRepaint(func() { n++ })
	l.Repaint()
	sub.Unsubscribe()
	l.Repaint()
	if n != 1 {
		t.Fatalf("expected one notification, got %d", n)
	}
	if r, _, _ := l.Stats(); r != 2 {
		t.Fatalf("expected two repaints counted, got %d", r)
	}
}

func TestHandle_BoundsCentred(t *testing.T) {
	h := NewHandle(3, image.Pt(50, 60), 8, color.RGBA{R: 255, A: 255})
	if h.Bounds() != image.Rect(46, 56, 54, 64) {
		t.Fatalf("bounds %v", h.Bounds())
	}
	if !h.Contains(image.Pt(50, 60)) || h.Contains(image.Pt(54, 60)) {
		t.Fatalf("contains mismatch")
	}
	h.Dispose()
	if h.Visible() {
		t.Fatalf("disposed handle must not be visible")
	}
}

type recorder struct{ events []string }

func (r *recorder) listener() ListenerFuncs {
	return ListenerFuncs{
		Activate:  func(*Translator) { r.events = append(r.events, "activate") },
		After:     func(*Translator) { r.events = append(r.events, "after") },
		Completed: func(*Translator) { r.events = append(r.events, "completed") },
	}
}

func TestTranslator_SessionOrder(t *testing.T) {
	tr := NewTranslator(&box{visible: true})
	rec := &recorder{}
	tr.AddListener(rec.listener())
	if !tr.Press(image.Pt(1, 1)) {
		t.Fatalf("press should start a session")
	}
	tr.Drag(image.Pt(2, 2))
	tr.Drag(image.Pt(3, 3))
	tr.Release(image.Pt(4, 4))
	tr.Release(image.Pt(5, 5))
	want := []string{"activate", "after", "after", "completed"}
	if len(rec.events) != len(want) {
		t.Fatalf("events %v", rec.events)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Fatalf("events %v", rec.events)
		}
	}
	if tr.StartLocation() != image.Pt(1, 1) || tr.EndLocation() != image.Pt(4, 4) {
		t.Fatalf("locations %v %v", tr.StartLocation(), tr.EndLocation())
	}
}

func TestTranslator_InactiveIgnoresPress(t *testing.T) {
	tr := NewTranslator(&box{visible: true})
	tr.SetActive(false)
	if tr.Press(image.Point{}) {
		t.Fatalf("inactive translator must not start")
	}
	tr.SetActive(true)
	tr.Dispose()
	if tr.Press(image.Point{}) || tr.ListenerCount() != 0 {
		t.Fatalf("disposed translator must not start")
	}
}

func TestRouter_HandlesWinOverBodies(t *testing.T) {
	var r Router
	body := NewTranslator(&box{r: image.Rect(0, 0, 100, 100), visible: true})
	handle := NewTranslator(&box{r: image.Rect(0, 0, 10, 10), visible: true})
	r.Register(handle, PriorityHandle)
	r.Register(body, PriorityBody)
	if r.Hit(image.Pt(5, 5)) != handle {
		t.Fatalf("handle should win inside its square")
	}
	if r.Hit(image.Pt(50, 50)) != body {
		t.Fatalf("body should win elsewhere")
	}
	misses := 0
	r.Miss = func(image.Point) { misses++ }
	if r.Press(image.Pt(500, 500)) || misses != 1 {
		t.Fatalf("press outside should miss")
	}
}

func TestRouter_SingleSession(t *testing.T) {
	var r Router
	a := NewTranslator(&box{r: image.Rect(0, 0, 10, 10), visible: true})
	b := NewTranslator(&box{r: image.Rect(0, 0, 10, 10), visible: true})
	r.Register(a, PriorityBody)
	sub := r.Register(b, PriorityBody)
	if !r.Press(image.Pt(1, 1)) || r.Session() != b {
		t.Fatalf("latest registration should be on top")
	}
	if r.Press(image.Pt(1, 1)) {
		t.Fatalf("second press during a session must be ignored")
	}
	sub.Unsubscribe()
	if r.Session() != nil || r.Len() != 1 {
		t.Fatalf("unregistering the session owner should close routing")
	}
	r.Release(image.Pt(2, 2))
	if !r.Press(image.Pt(1, 1)) || r.Session() != a {
		t.Fatalf("remaining translator should take the press")
	}
	r.Release(image.Pt(1, 1))
	if r.Session() != nil || a.Dragging() {
		t.Fatalf("release should end the session")
	}
}
