package region

import (
	"errors"

	"github.com/soocke/roi-plot-go/domain/handler"
	"github.com/soocke/roi-plot-go/domain/roi"
)

var (
	// ErrMissingROI is returned when an operation needs a committed ROI
	// before the creation gesture produced one.
	ErrMissingROI = errors.New("region: no roi")
	// ErrUnknownKind is returned for kinds with no registered capability.
	ErrUnknownKind = errors.New("region: unknown kind")
	// ErrRemoved is returned by operations on a removed region.
	ErrRemoved = errors.New("region: removed")
	// ErrDuplicateName is returned when a graph already has a region with
	// the requested name.
	ErrDuplicateName = errors.New("region: duplicate name")
	// ErrDragging is returned when the ROI is replaced while a drag
	// session of the region is open.
	ErrDragging = errors.New("region: drag in progress")
)

// DragKind tags a drag notification.
type DragKind int

const (
	Translate DragKind = iota
	Resize
)

func (k DragKind) String() string {
	if k == Resize {
		return "resize"
	}
	return "translate"
}

func dragKindFor(s handler.Status) DragKind {
	if s == handler.Move {
		return Translate
	}
	return Resize
}

// Selection carries committed ROI snapshots to selection providers.
type Selection struct {
	items []roi.ROI
}

// NewSelection wraps rois; nil entries are dropped.
func NewSelection(rois ...roi.ROI) Selection {
	var s Selection
	for _, r := range rois {
		if r != nil {
			s.items = append(s.items, r)
		}
	}
	return s
}

// First returns the first ROI or nil.
func (s Selection) First() roi.ROI {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[0]
}

func (s Selection) Len() int    { return len(s.items) }
func (s Selection) Empty() bool { return len(s.items) == 0 }

// SelectionProvider receives the selection fired at the end of a gesture.
type SelectionProvider interface {
	SetSelection(s Selection)
}

type (
	// DragListener runs for every pointer move of a gesture.
	DragListener func(r roi.ROI, kind DragKind)
	// ChangeListener runs once when a gesture commits.
	ChangeListener func(r roi.ROI)
	// SelectionListener runs once after ChangeListener.
	SelectionListener func(s Selection)
)
