package view

import (
	"image"
	"log/slog"
	"time"

	"github.com/soocke/roi-plot-go/config"
	"github.com/soocke/roi-plot-go/domain/roi"
	"github.com/soocke/roi-plot-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Stats       GestureStats
	ConfigPanel ConfigPanel
	Preview     PlotPreview
	Gestures    GesturePanel

	// Widgets
	ToolLabel   *LabelWidget
	StatusLabel *LabelWidget
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	SetToolLabel(text string)
	ConfigEditable(enabled bool)
	SetStatus(text string)
	UpdatePlot(img image.Image)
	UpdateSelection(img image.Image)
	SetDragTime(drag, total time.Duration)
	SetCounts(translates, resizes, changes, selections int)
}

// Handlers carries the callbacks the root view invokes on user actions.
type Handlers struct {
	OnTool    func(k roi.Kind)
	OnCancel  func()
	OnClear   func()
	OnExit    func()
	OnGesture func(from image.Point, path []image.Point)
	OnApply   func(cfg *config.Config)
	Pointer   PointerHandlers
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout. kinds lists the tools offered, one button each.
func (rv *RootView) Build(kinds []roi.Kind, h Handlers) {
	if rv == nil {
		return
	}
	// Row 0: tool label, status label, stats
	top := Frame()
	Grid(top, Row(0), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.ToolLabel = Label(Txt("Tool: <none>"), Borderwidth(1), Relief("ridge"))
	Grid(rv.ToolLabel, In(top), Row(0), Column(0), Sticky("w"), Padx("0.2m"))
	rv.StatusLabel = Label(Txt("Ready"), Width(48), Anchor("w"), Borderwidth(1), Relief("ridge"))
	Grid(rv.StatusLabel, In(top), Row(0), Column(1), Sticky("we"), Padx("0.2m"))
	rv.Stats = NewGestureStats(top, 0, 2)

	// Row 1: tool buttons
	tools := Frame()
	Grid(tools, Row(1), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	col := 0
	for _, k := range kinds {
		k := k
		btn := TButton(Txt(k.String()), Style(theme.StylePrimaryButton), Command(func() {
			if h.OnTool != nil {
				h.OnTool(k)
			}
		}))
		Grid(btn, In(tools), Row(0), Column(col), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		col++
	}
	for _, b := range []struct {
		text string
		fn   func()
	}{{"Cancel", h.OnCancel}, {"Clear", h.OnClear}, {"Dark Mode", func() { theme.ToggleDark() }}, {"Exit", h.OnExit}} {
		fn := b.fn
		btn := TButton(Txt(b.text), Style(theme.StyleDangerButton), Command(func() {
			if fn != nil {
				fn()
			}
		}))
		Grid(btn, In(tools), Row(0), Column(col), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		col++
	}

	// Row 2: plot and selection preview
	rv.Preview = NewPlotPreview(2, rv.cfg.PlotWidth, rv.cfg.PlotHeight)
	rv.Preview.BindPointer(h.Pointer)

	// Row 3: gesture replay
	rv.Gestures = NewGesturePanel(h.OnGesture, rv.SetStatus)
	row := rv.Gestures.Build(3)

	// Config panel rows
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger, h.OnApply)
	rv.ConfigPanel.Build(row)
}

// SetToolLabel updates the tool label text.
func (rv *RootView) SetToolLabel(text string) {
	if rv != nil && rv.ToolLabel != nil {
		rv.ToolLabel.Configure(Txt(text))
	}
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// ConfigEditable toggles config panel editability while a tool is armed.
func (rv *RootView) ConfigEditable(enabled bool) {
	if rv != nil && rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(enabled)
	}
}

// UpdatePlot proxies to the plot preview.
func (rv *RootView) UpdatePlot(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.UpdatePlot(img)
	}
}

// UpdateSelection proxies to the plot preview.
func (rv *RootView) UpdateSelection(img image.Image) {
	if rv != nil && rv.Preview != nil {
		rv.Preview.UpdateSelection(img)
	}
}

// SetDragTime updates the drag timers.
func (rv *RootView) SetDragTime(drag, total time.Duration) {
	if rv != nil && rv.Stats != nil {
		rv.Stats.SetDragTime(drag, total)
	}
}

// SetCounts updates the event counters.
func (rv *RootView) SetCounts(translates, resizes, changes, selections int) {
	if rv != nil && rv.Stats != nil {
		rv.Stats.SetCounts(translates, resizes, changes, selections)
	}
}

// PreviewReset clears the selection preview.
func (rv *RootView) PreviewReset() {
	if rv != nil && rv.Preview != nil {
		rv.Preview.Reset()
	}
}
