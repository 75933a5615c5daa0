//go:build windows

package region

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// Stock cursor ids (IDC_*).
const (
	idcArrow    = 32512
	idcCross    = 32515
	idcSizeNWSE = 32642
	idcSizeWE   = 32644
	idcSizeAll  = 32646
)

func idcFor(tag string) uintptr {
	switch tag {
	case "point", "polygon":
		return idcCross
	case "line":
		return idcSizeWE
	case "rectangle", "ellipse":
		return idcSizeNWSE
	case "hyperbola":
		return idcSizeAll
	}
	return idcArrow
}

type systemCursor struct {
	tag    string
	handle uintptr
}

// SystemCursor copies the stock cursor for tag into a handle the region
// owns and destroys on Release.
func SystemCursor(tag string) (Cursor, error) {
	user32 := windows.NewLazySystemDLL("user32.dll")
	shared, _, err := user32.NewProc("LoadCursorW").Call(0, idcFor(tag))
	if shared == 0 {
		return nil, fmt.Errorf("load cursor %q: %w", tag, err)
	}
	owned, _, err := user32.NewProc("CopyIcon").Call(shared)
	if owned == 0 {
		return nil, fmt.Errorf("copy cursor %q: %w", tag, err)
	}
	return &systemCursor{tag: tag, handle: owned}, nil
}

func (c *systemCursor) Tag() string { return c.tag }

func (c *systemCursor) Release() {
	if c.handle == 0 {
		return
	}
	user32 := windows.NewLazySystemDLL("user32.dll")
	_, _, _ = user32.NewProc("DestroyCursor").Call(c.handle)
	c.handle = 0
}
