package theme

// Centralized theming for the ROI plot UI: widget palette, plot colors and
// one region color per ROI kind. InitStyles activates a base theme and
// configures the semantic widget styles.

import (
	"image/color"

	"github.com/soocke/roi-plot-go/domain/roi"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PaletteSnapshot represents resolved colors for the active mode.
type PaletteSnapshot struct {
	AppBg     string
	Surface   string
	Border    string
	Primary   string
	Danger    string
	Accent    string
	Text      string
	TextMuted string
	// PlotBg fills the plot where no background frame is shown.
	PlotBg color.RGBA
}

var (
	light = PaletteSnapshot{
		AppBg:     "#f7f9fb",
		Surface:   "#ffffff",
		Border:    "#d0d7de",
		Primary:   "#2563eb",
		Danger:    "#dc2626",
		Accent:    "#10b981",
		Text:      "#1e293b",
		TextMuted: "#64748b",
		PlotBg:    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
	dark = PaletteSnapshot{
		AppBg:     "#0f172a",
		Surface:   "#1e293b",
		Border:    "#334155",
		Primary:   "#3b82f6",
		Danger:    "#ef4444",
		Accent:    "#10b981",
		Text:      "#f1f5f9",
		TextMuted: "#94a3b8",
		PlotBg:    color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff},
	}
)

// kindColors gives every ROI kind its own region color.
var kindColors = map[roi.Kind]color.RGBA{
	roi.KindPoint:     {R: 0xe1, G: 0x1d, B: 0x48, A: 0xff},
	roi.KindLine:      {R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff},
	roi.KindRectangle: {R: 0x00, G: 0xa0, B: 0xff, A: 0xff},
	roi.KindEllipse:   {R: 0x10, G: 0xb9, B: 0x81, A: 0xff},
	roi.KindHyperbola: {R: 0x8b, G: 0x5c, B: 0xf6, A: 0xff},
	roi.KindPolygon:   {R: 0xec, G: 0x48, B: 0x99, A: 0xff},
}

// KindColor returns the region color for k; unknown kinds get the primary blue.
func KindColor(k roi.Kind) color.RGBA {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
}

// CurrentPalette returns colors for the current dark/light mode.
func CurrentPalette() PaletteSnapshot {
	if darkMode {
		return dark
	}
	return light
}

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleStatusLabel   = "status.TLabel"
)

// internal flag for current mode
var darkMode bool

// onChange runs after the mode switched, so the plot can re-render.
var onChange func(PaletteSnapshot)

// InitStyles (re)applies styles for the current darkMode value.
func InitStyles() { applyStyles(CurrentPalette()) }

// OnChange registers fn to run after every mode switch.
func OnChange(fn func(PaletteSnapshot)) { onChange = fn }

// SetDark toggles dark mode and reapplies styles. Returns new mode value.
func SetDark(d bool) bool {
	darkMode = d
	p := CurrentPalette()
	applyStyles(p)
	if onChange != nil {
		onChange(p)
	}
	return darkMode
}

// ToggleDark flips dark mode and reapplies styles. Returns new mode value.
func ToggleDark() bool { return SetDark(!darkMode) }

// IsDark reports current mode.
func IsDark() bool { return darkMode }

func applyStyles(p PaletteSnapshot) {
	_ = ActivateTheme("azure light") // baseline metrics
	App.Configure(Background(p.AppBg))
	for name, bg := range map[string]string{StylePrimaryButton: p.Primary, StyleDangerButton: p.Danger} {
		StyleConfigure(name,
			Background(bg),
			Foreground("white"),
			Padding("4p 3p"),
			Borderwidth(1),
			Relief("ridge"),
		)
	}
	StyleConfigure(StyleStatusLabel,
		Foreground(p.Text),
		Background(p.Surface),
		Padding("2p 1p"),
	)
}
