package assets

import "testing"

func TestCursorImage_AllKinds(t *testing.T) {
	for _, tag := range []string{"point", "line", "rectangle", "ellipse", "hyperbola", "polygon"} {
		img, err := CursorImage(tag)
		if err != nil {
			t.Fatalf("%s: %v", tag, err)
		}
		if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 16 {
			t.Fatalf("%s: size %v", tag, b)
		}
	}
}

func TestCursorImage_Unknown(t *testing.T) {
	if _, err := CursorImage("spiral"); err == nil {
		t.Fatalf("expected an error for a missing icon")
	}
}
