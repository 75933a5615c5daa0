package view

import (
	"image"
	"regexp"
	"strconv"
	"strings"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// GesturePanel replays a pointer drag on the plot from typed pixel
// coordinates: a press at From, drag steps through Via and a release at To.
type GesturePanel interface {
	Build(startRow int) (endRow int)
}

type gesturePanel struct {
	from, via, to *TextWidget
	onGesture     func(from image.Point, path []image.Point)
	onError       func(msg string)
}

// NewGesturePanel creates the panel. onGesture receives the parsed points.
func NewGesturePanel(onGesture func(from image.Point, path []image.Point), onError func(msg string)) GesturePanel {
	return &gesturePanel{onGesture: onGesture, onError: onError}
}

func (v *gesturePanel) Build(startRow int) int {
	frame := Frame()
	Grid(frame, Row(startRow), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	field := func(col int, label, value string) *TextWidget {
		Grid(Label(Txt(label), Anchor("w")), In(frame), Row(0), Column(col), Sticky("w"), Padx("0.2m"))
		w := Text(Height(1), Width(14))
		Grid(w, In(frame), Row(0), Column(col+1), Sticky("we"), Padx("0.2m"))
		w.Insert("1.0", value)
		return w
	}
	v.from = field(0, "Press", "100,100")
	v.via = field(2, "Via", "")
	v.to = field(4, "Release", "200,200")
	btn := Button(Txt("Drag"), Command(v.run))
	Grid(btn, In(frame), Row(0), Column(6), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	return startRow + 1
}

func (v *gesturePanel) run() {
	from, ok := parsePoint(textOf(v.from))
	if !ok {
		v.fail("press point must look like x,y")
		return
	}
	var path []image.Point
	for _, s := range strings.Split(textOf(v.via), ";") {
		if strings.TrimSpace(s) == "" {
			continue
		}
		p, ok := parsePoint(s)
		if !ok {
			v.fail("via points must look like x,y;x,y")
			return
		}
		path = append(path, p)
	}
	to, ok := parsePoint(textOf(v.to))
	if !ok {
		v.fail("release point must look like x,y")
		return
	}
	if v.onGesture != nil {
		v.onGesture(from, append(path, to))
	}
}

func (v *gesturePanel) fail(msg string) {
	if v.onError != nil {
		v.onError(msg)
	}
}

func textOf(w *TextWidget) string {
	if w == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), ""))
}

// pointRe matches "x,y" with optional spaces and signs.
var pointRe = regexp.MustCompile(`^\s*(-?\d+)\s*,\s*(-?\d+)\s*$`)

func parsePoint(s string) (image.Point, bool) {
	m := pointRe.FindStringSubmatch(s)
	if len(m) != 3 {
		return image.Point{}, false
	}
	x, _ := strconv.Atoi(m[1])
	y, _ := strconv.Atoi(m[2])
	return image.Pt(x, y), true
}
