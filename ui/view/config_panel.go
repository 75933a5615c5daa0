package view

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/roi-plot-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel is the axis and region defaults form. Apply parses the
// widgets into a copy of the config, validates it, hands it to the apply
// callback and saves it.
type ConfigPanel interface {
	Build(startRow int) (endRow int)
	SetEditable(enabled bool)
	ApplyChanges()
}

// formField binds one text widget to a field of a config value. bind is a
// *float64, *int or *bool.
type formField struct {
	id, label string
	bind      any
}

// formFields lists the editable fields of c, grouped by section.
func formFields(c *config.Config) (axes, regions []formField) {
	axes = []formField{
		{"xLower", "X lower", &c.XAxis.Lower},
		{"xUpper", "X upper", &c.XAxis.Upper},
		{"xLog", "X log10", &c.XAxis.Log},
		{"yLower", "Y lower", &c.YAxis.Lower},
		{"yUpper", "Y upper", &c.YAxis.Upper},
		{"yLog", "Y log10", &c.YAxis.Log},
	}
	regions = []formField{
		{"alpha", "Alpha (0-255)", &c.Alpha},
		{"lineWidth", "Line width", &c.LineWidth},
		{"handleSide", "Handle side px", &c.HandleSide},
		{"showLabel", "Show label", &c.ShowLabel},
		{"showPosition", "Show position", &c.ShowPosition},
		{"mobile", "Mobile", &c.Mobile},
	}
	return axes, regions
}

func (f formField) format() string {
	switch p := f.bind.(type) {
	case *float64:
		return strconv.FormatFloat(*p, 'g', -1, 64)
	case *int:
		return strconv.Itoa(*p)
	case *bool:
		return strconv.FormatBool(*p)
	}
	return ""
}

// parse stores s into the bound field. Unparsable input leaves it alone.
func (f formField) parse(s string) bool {
	s = strings.TrimSpace(s)
	switch p := f.bind.(type) {
	case *float64:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return false
		}
		*p = v
	case *int:
		v, err := strconv.Atoi(s)
		if err != nil {
			return false
		}
		*p = v
	case *bool:
		v, ok := parseBoolLoose(s)
		if !ok {
			return false
		}
		*p = v
	default:
		return false
	}
	return true
}

func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	}
	return false, false
}

type configPanel struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	onApply  func(*config.Config)
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget
}

// NewConfigPanel creates the form bound to cfg. onApply runs after a
// successful apply, before the config is saved.
func NewConfigPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApply func(*config.Config)) ConfigPanel {
	return &configPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onApply: onApply, widgets: make(map[string]*TextWidget)}
}

// Build lays the axis fields in columns 0-1 and the region fields in
// columns 2-3, one field per row.
func (v *configPanel) Build(startRow int) int {
	axes, regions := formFields(v.cfg)
	Grid(Label(Txt("Axes"), Anchor("w")), Row(startRow), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"))
	Grid(Label(Txt("Regions"), Anchor("w")), Row(startRow), Column(2), Columnspan(2), Sticky("w"), Padx("0.4m"))
	column := func(col int, fields []formField) int {
		row := startRow + 1
		for _, f := range fields {
			Grid(Label(Txt(f.label), Anchor("w")), Row(row), Column(col), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
			w := Text(Height(1), Width(12))
			Grid(w, Row(row), Column(col+1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
			w.Insert("1.0", f.format())
			v.widgets[f.id] = w
			row++
		}
		return row
	}
	row := max(column(0, axes), column(2, regions))
	v.applyBtn = Button(Txt("Apply"), Command(v.ApplyChanges))
	Grid(v.applyBtn, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	return row + 1
}

func (v *configPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		w.Configure(State(state))
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *configPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg
	axes, regions := formFields(&cfg)
	for _, f := range append(axes, regions...) {
		w := v.widgets[f.id]
		if w == nil {
			continue
		}
		if text := strings.Join(w.Get("1.0", END), ""); !f.parse(text) && v.logger != nil {
			v.logger.Warn("config field ignored", "field", f.id, "value", strings.TrimSpace(text))
		}
	}
	if err := cfg.Validate(); err != nil {
		if v.logger != nil {
			v.logger.Error("config invalid", "error", err)
		}
		return
	}
	*v.cfg = cfg
	v.refresh()
	if v.onApply != nil {
		v.onApply(v.cfg)
	}
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
		return
	}
	if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
}

// refresh writes the validated values back so clamped input is visible.
func (v *configPanel) refresh() {
	axes, regions := formFields(v.cfg)
	for _, f := range append(axes, regions...) {
		if w := v.widgets[f.id]; w != nil {
			w.Delete("1.0", END)
			w.Insert("1.0", f.format())
		}
	}
}
