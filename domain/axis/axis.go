// Package axis models plot axes and the coordinate system that maps
// between data values and pixel positions.
package axis

import (
	"errors"
	"fmt"
	"math"

	"github.com/soocke/roi-plot-go/domain/notify"
)

// ErrInvalidRange is returned when a range is not finite, is empty or is
// not representable on the axis scale.
var ErrInvalidRange = errors.New("axis: invalid range")

// Orientation tells which screen direction an axis runs along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Scale selects the value transform of an axis.
type Scale int

const (
	Linear Scale = iota
	Log10
)

func (s Scale) String() string {
	if s == Log10 {
		return "log10"
	}
	return "linear"
}

// Range is a closed value interval. Lower may exceed Upper for inverted axes.
type Range struct {
	Lower, Upper float64
}

// Span returns Upper - Lower.
func (r Range) Span() float64 { return r.Upper - r.Lower }

// RangeListener is notified after the range or pixel extent of an axis
// changed. For a pure revalidation old and new are equal.
type RangeListener func(a *Axis, old, new Range)

// Axis maps values to pixels along one screen direction. Horizontal axes
// grow to the right, vertical axes grow upwards (pixel y grows downwards).
type Axis struct {
	title       string
	orientation Orientation
	scale       Scale
	rng         Range
	pixelStart  float64
	pixelLength float64
	listeners   notify.Listeners[RangeListener]
}

// New returns an axis covering r over length pixels starting at start.
func New(title string, o Orientation, r Range, start, length int) (*Axis, error) {
	a := &Axis{title: title, orientation: o, pixelStart: float64(start), pixelLength: float64(length)}
	if length <= 0 {
		return nil, fmt.Errorf("axis %q: pixel length %d: %w", title, length, ErrInvalidRange)
	}
	if err := a.check(r, Linear); err != nil {
		return nil, err
	}
	a.rng = r
	return a, nil
}

func (a *Axis) check(r Range, s Scale) error {
	if math.IsNaN(r.Lower) || math.IsNaN(r.Upper) || math.IsInf(r.Lower, 0) || math.IsInf(r.Upper, 0) {
		return fmt.Errorf("axis %q: non-finite range %v: %w", a.title, r, ErrInvalidRange)
	}
	if r.Lower == r.Upper {
		return fmt.Errorf("axis %q: empty range %v: %w", a.title, r, ErrInvalidRange)
	}
	if s == Log10 && (r.Lower <= 0 || r.Upper <= 0) {
		return fmt.Errorf("axis %q: log range must be positive %v: %w", a.title, r, ErrInvalidRange)
	}
	return nil
}

// Title returns the axis title.
func (a *Axis) Title() string { return a.title }

// Orientation returns the screen direction of the axis.
func (a *Axis) Orientation() Orientation { return a.orientation }

// Scale returns the value transform in use.
func (a *Axis) Scale() Scale { return a.scale }

// Range returns the current value range.
func (a *Axis) Range() Range { return a.rng }

// PixelExtent returns the first pixel and the pixel length of the axis.
func (a *Axis) PixelExtent() (start, length int) {
	return int(a.pixelStart), int(a.pixelLength)
}

// SetRange changes the value range and notifies listeners.
func (a *Axis) SetRange(r Range) error {
	if err := a.check(r, a.scale); err != nil {
		return err
	}
	old := a.rng
	a.rng = r
	a.fire(old)
	return nil
}

// SetScale switches between linear and log10. The current range must be
// valid for the new scale.
func (a *Axis) SetScale(s Scale) error {
	if err := a.check(a.rng, s); err != nil {
		return err
	}
	if s == a.scale {
		return nil
	}
	a.scale = s
	a.fire(a.rng)
	return nil
}

// SetPixelExtent moves or resizes the axis on screen; listeners see a
// revalidation with equal old and new ranges.
func (a *Axis) SetPixelExtent(start, length int) error {
	if length <= 0 {
		return fmt.Errorf("axis %q: pixel length %d: %w", a.title, length, ErrInvalidRange)
	}
	a.pixelStart, a.pixelLength = float64(start), float64(length)
	a.fire(a.rng)
	return nil
}

func (a *Axis) fire(old Range) {
	cur := a.rng
	a.listeners.Each(func(l RangeListener) { l(a, old, cur) })
}

// Subscribe registers l for range and extent changes.
func (a *Axis) Subscribe(l RangeListener) *notify.Subscription {
	return a.listeners.Add(l)
}

// ListenerCount returns the number of live range listeners.
func (a *Axis) ListenerCount() int { return a.listeners.Len() }

func (a *Axis) transform(v float64) float64 {
	if a.scale == Log10 {
		return math.Log10(v)
	}
	return v
}

func (a *Axis) inverse(t float64) float64 {
	if a.scale == Log10 {
		return math.Pow(10, t)
	}
	return t
}

// ValueToPixel maps a value to a (fractional) pixel coordinate.
func (a *Axis) ValueToPixel(v float64) float64 {
	lo, hi := a.transform(a.rng.Lower), a.transform(a.rng.Upper)
	f := (a.transform(v) - lo) / (hi - lo)
	if a.orientation == Vertical {
		f = 1 - f
	}
	return a.pixelStart + f*a.pixelLength
}

// PixelToValue maps a (fractional) pixel coordinate back to a value.
func (a *Axis) PixelToValue(p float64) float64 {
	lo, hi := a.transform(a.rng.Lower), a.transform(a.rng.Upper)
	f := (p - a.pixelStart) / a.pixelLength
	if a.orientation == Vertical {
		f = 1 - f
	}
	return a.inverse(lo + f*(hi-lo))
}
