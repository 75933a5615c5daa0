package figure

import (
	"image"

	"github.com/soocke/roi-plot-go/domain/notify"
)

// TranslationListener follows one drag session of a Translator.
type TranslationListener interface {
	// OnActivate runs on press, before any movement.
	OnActivate(t *Translator)
	// TranslationAfter runs for every pointer move while dragging.
	TranslationAfter(t *Translator)
	// TranslationCompleted runs once on release.
	TranslationCompleted(t *Translator)
}

// ListenerFuncs adapts plain functions to TranslationListener. Nil fields
// are skipped.
type ListenerFuncs struct {
	Activate  func(t *Translator)
	After     func(t *Translator)
	Completed func(t *Translator)
}

func (f ListenerFuncs) OnActivate(t *Translator) {
	if f.Activate != nil {
		f.Activate(t)
	}
}

func (f ListenerFuncs) TranslationAfter(t *Translator) {
	if f.After != nil {
		f.After(t)
	}
}

func (f ListenerFuncs) TranslationCompleted(t *Translator) {
	if f.Completed != nil {
		f.Completed(t)
	}
}

// Translator is the drag controller of one figure. It only reports
// positions; listeners decide what moves.
type Translator struct {
	target    Figure
	active    bool
	dragging  bool
	disposed  bool
	start     image.Point
	end       image.Point
	listeners notify.Listeners[TranslationListener]
}

// NewTranslator returns an active translator for target.
func NewTranslator(target Figure) *Translator {
	return &Translator{target: target, active: true}
}

func (t *Translator) Target() Figure { return t.target }
func (t *Translator) Active() bool   { return t.active && !t.disposed }
func (t *Translator) Dragging() bool { return t.dragging }

// SetActive gates new presses. A session already running is not affected.
func (t *Translator) SetActive(v bool) { t.active = v }

// StartLocation is the press position of the current or last session.
func (t *Translator) StartLocation() image.Point { return t.start }

// EndLocation is the latest pointer position of the current or last session.
func (t *Translator) EndLocation() image.Point { return t.end }

// AddListener registers l for drag sessions.
func (t *Translator) AddListener(l TranslationListener) *notify.Subscription {
	return t.listeners.Add(l)
}

func (t *Translator) ListenerCount() int { return t.listeners.Len() }

// Press starts a session at p. It reports false when the translator is
// inactive, disposed or already dragging.
func (t *Translator) Press(p image.Point) bool {
	if !t.Active() || t.dragging {
		return false
	}
	t.dragging = true
	t.start, t.end = p, p
	t.listeners.Each(func(l TranslationListener) { l.OnActivate(t) })
	return true
}

// Drag moves the session to p.
func (t *Translator) Drag(p image.Point) {
	if !t.dragging {
		return
	}
	t.end = p
	t.listeners.Each(func(l TranslationListener) { l.TranslationAfter(t) })
}

// Release ends the session at p. There is no other way to end one.
func (t *Translator) Release(p image.Point) {
	if !t.dragging {
		return
	}
	t.dragging = false
	t.end = p
	t.listeners.Each(func(l TranslationListener) { l.TranslationCompleted(t) })
}

// Dispose drops all listeners and ends any session without notifying.
func (t *Translator) Dispose() {
	t.listeners.Clear()
	t.dragging = false
	t.disposed = true
}
