package app

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/soocke/roi-plot-go/capture"
	"github.com/soocke/roi-plot-go/config"
	"github.com/soocke/roi-plot-go/domain/axis"
	"github.com/soocke/roi-plot-go/domain/region"
	"github.com/soocke/roi-plot-go/ui/model"
	"github.com/soocke/roi-plot-go/ui/presenter"
	"github.com/soocke/roi-plot-go/ui/theme"
	"github.com/soocke/roi-plot-go/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config  *config.Config
	CfgPath string
	Logger  *slog.Logger

	XAxis, YAxis *axis.Axis
	Graph        *region.Graph
	Background   *capture.Service

	Tools     *model.ToolModel
	Gestures  *model.GestureModel
	Selection *model.SelectionModel

	RootView *view.RootView
	UI       view.UI

	// Presenters
	ToolPresenter   *presenter.ToolPresenter
	RegionPresenter *presenter.RegionPresenter
	PlotPresenter   *presenter.PlotPresenter
	StatsPresenter  *presenter.StatsPresenter
	Loop            *presenter.Loop
}

// BuildContainer constructs the plot and its models. Presenters are wired by
// WirePresenters once the UI exists.
func BuildContainer(cfg *config.Config, cfgPath string, logger *slog.Logger) (*AppContainer, error) {
	c := &AppContainer{Config: cfg, CfgPath: cfgPath, Logger: logger}
	var err error
	if c.XAxis, err = newAxis(cfg.XAxis, axis.Horizontal, cfg.PlotWidth); err != nil {
		return nil, fmt.Errorf("x axis: %w", err)
	}
	if c.YAxis, err = newAxis(cfg.YAxis, axis.Vertical, cfg.PlotHeight); err != nil {
		return nil, fmt.Errorf("y axis: %w", err)
	}
	c.Graph = region.NewGraph(c.XAxis, c.YAxis, image.Rect(0, 0, cfg.PlotWidth, cfg.PlotHeight), logger, region.SystemCursor)
	c.Graph.SetHandleSide(cfg.HandleSide)
	c.Graph.SetDefaultStyle(styleFrom(cfg, region.DefaultStyle("")))
	c.Background = capture.NewService(logger, nil, time.Second)

	c.Tools = &model.ToolModel{}
	c.Gestures = model.NewGestureModel()
	c.Selection = model.NewSelectionModel()
	c.Graph.SetSelectionProvider(c.Selection)

	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView
	return c, nil
}

// WirePresenters connects models, graph and UI. schedule re-arms the tick.
func (c *AppContainer) WirePresenters(ui view.UI, schedule func()) {
	c.UI = ui
	c.ToolPresenter = presenter.NewToolPresenter(c.Tools, c.Graph, ui, c.Logger)
	c.Graph.OnRegionAdded(c.ToolPresenter.OnRegionAdded)
	c.Graph.OnRegionAdded(c.styleRegion)
	c.RegionPresenter = presenter.NewRegionPresenter(c.Graph, c.Gestures, c.Selection, ui, ui, c.Logger)
	c.PlotPresenter = presenter.NewPlotPresenter(c.Graph, ui, c.Background, theme.CurrentPalette().PlotBg)
	c.RegionPresenter.Frame = c.PlotPresenter.Frame
	c.StatsPresenter = presenter.NewStatsPresenter(c.Gestures, c.Selection, c.Graph, ui)
	c.Loop = presenter.NewLoop(c.StatsPresenter, c.RegionPresenter, c.PlotPresenter, schedule)
}

// ApplyConfig pushes edited settings into the axes, the graph defaults and
// every live region.
func (c *AppContainer) ApplyConfig(cfg *config.Config) {
	for _, a := range []struct {
		axis *axis.Axis
		cfg  config.AxisConfig
	}{{c.XAxis, cfg.XAxis}, {c.YAxis, cfg.YAxis}} {
		if err := configureAxis(a.axis, a.cfg); err != nil && c.Logger != nil {
			c.Logger.Error("axis config", "axis", a.axis.Title(), "error", err)
		}
	}
	c.Graph.SetHandleSide(cfg.HandleSide)
	c.Graph.SetDefaultStyle(styleFrom(cfg, region.DefaultStyle("")))
	for _, r := range c.Graph.Regions() {
		r.Sync(styleFrom(cfg, r.Style()))
	}
	c.PlotPresenter.Invalidate()
}

// styleRegion colors a new region by its kind.
func (c *AppContainer) styleRegion(r *region.Region) {
	r.SetColor(theme.KindColor(r.Kind()))
}

func newAxis(ac config.AxisConfig, o axis.Orientation, length int) (*axis.Axis, error) {
	a, err := axis.New(ac.Title, o, axis.Range{Lower: ac.Lower, Upper: ac.Upper}, 0, length)
	if err != nil {
		return nil, err
	}
	if err := configureAxis(a, ac); err != nil {
		return nil, err
	}
	return a, nil
}

// configureAxis applies range and scale in the order the current scale
// accepts: a log axis drops to linear before taking a non-positive range.
func configureAxis(a *axis.Axis, ac config.AxisConfig) error {
	r := axis.Range{Lower: ac.Lower, Upper: ac.Upper}
	if !ac.Log {
		if err := a.SetScale(axis.Linear); err != nil {
			return err
		}
		return a.SetRange(r)
	}
	if err := a.SetRange(r); err != nil {
		return err
	}
	return a.SetScale(axis.Log10)
}

// styleFrom overlays the config defaults on s, keeping its name and color.
func styleFrom(cfg *config.Config, s region.Style) region.Style {
	s.Alpha = uint8(cfg.Alpha)
	s.LineWidth = cfg.LineWidth
	s.ShowLabel = cfg.ShowLabel
	s.ShowPosition = cfg.ShowPosition
	s.Mobile = cfg.Mobile
	return s
}
