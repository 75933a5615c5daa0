package region

// Cursor is a drag cursor resource owned by a single region.
type Cursor interface {
	Tag() string
	// Release frees the underlying resource. Regions call it at most once.
	Release()
}

// CursorLoader creates the cursor named by a capability.
type CursorLoader func(tag string) (Cursor, error)
