// Package app wires the ROI plot: configuration, the region graph, the
// background capture service, presenters and the Tk root view.
package app

import (
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/roi-plot-go/config"
	"github.com/soocke/roi-plot-go/debug"
	"github.com/soocke/roi-plot-go/domain/region"
	"github.com/soocke/roi-plot-go/domain/roi"
	"github.com/soocke/roi-plot-go/ui/theme"
	"github.com/soocke/roi-plot-go/ui/view"
)

const (
	tick = 50 * time.Millisecond
)

type app struct {
	c       *AppContainer
	title   string
	width   int
	height  int
	afterID string
	stop    chan struct{}

	// Counters read by the debug stats goroutine.
	regions atomic.Int64
	figures atomic.Int64
}

// NewApp builds the container and the main window geometry.
func NewApp(title string, width, height int, cfg *config.Config, cfgPath string, logger *slog.Logger) (*app, error) {
	c, err := BuildContainer(cfg, cfgPath, logger)
	if err != nil {
		return nil, err
	}
	a := &app{c: c, title: title, width: width, height: height, stop: make(chan struct{})}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a, nil
}

// Start builds the UI, starts the services and blocks in the Tk event loop.
func (a *app) Start() {
	c := a.c
	theme.InitStyles()
	c.RootView.Build(roi.Kinds(), view.Handlers{
		OnTool: func(k roi.Kind) {
			if err := c.ToolPresenter.Toggle(k); err != nil {
				c.RootView.SetStatus(err.Error())
			}
		},
		OnCancel:  func() { c.ToolPresenter.Disarm() },
		OnClear:   c.Graph.Clear,
		OnExit:    a.exitHandler,
		OnGesture: a.gesture,
		OnApply:   c.ApplyConfig,
		Pointer: view.PointerHandlers{
			OnPress:   func(p image.Point) { c.PlotPresenter.Press(p) },
			OnDrag:    c.PlotPresenter.Drag,
			OnRelease: a.release,
		},
	})
	c.WirePresenters(c.RootView, a.scheduleUpdate)
	c.Graph.OnRegionAdded(a.trackCursor)
	theme.OnChange(func(p theme.PaletteSnapshot) {
		c.PlotPresenter.SetFill(p.PlotBg)
	})

	if c.Config.CaptureBackground {
		c.Background.Start()
	}
	if c.Config.Debug {
		interval := time.Duration(c.Config.StatsIntervalSeconds) * time.Second
		debug.StartStatsLogger(interval, c.Logger, a.sampleCounts, a.stop)
	}
	c.Logger.Info("plot ready", "width", c.Config.PlotWidth, "height", c.Config.PlotHeight)

	a.scheduleUpdate()
	App.Wait()
}

func (a *app) update() {
	a.c.Loop.Tick()
	a.regions.Store(int64(len(a.c.Graph.Regions())))
	a.figures.Store(int64(a.c.Graph.Layer().Len()))
}

func (a *app) sampleCounts() (int, int) {
	return int(a.regions.Load()), int(a.figures.Load())
}

// gesture replays a typed drag on the plot.
func (a *app) gesture(from image.Point, path []image.Point) {
	if err := a.c.PlotPresenter.Gesture(from, path...); err != nil {
		a.c.Logger.Error("gesture", "error", err)
		a.c.RootView.SetStatus(err.Error())
	}
}

// release ends a mouse drag on the plot.
func (a *app) release(p image.Point) {
	if err := a.c.PlotPresenter.Release(p); err != nil {
		a.c.Logger.Error("release", "error", err)
		a.c.RootView.SetStatus(err.Error())
	}
}

// trackCursor loads the region's drag cursor on its first drag.
func (a *app) trackCursor(r *region.Region) {
	r.OnDrag(func(roi.ROI, region.DragKind) {
		if _, err := r.Cursor(); err != nil {
			a.c.Logger.Error("region cursor", "region", r.Name(), "error", err)
		}
	})
}

func (a *app) exitHandler() {
	// Cancel scheduled after event if any.
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	a.c.Background.Stop()
	a.c.Graph.Clear()
	select {
	case <-a.stop:
	default:
		close(a.stop)
	}
	if err := a.c.Config.Save(a.c.CfgPath); err != nil {
		a.c.Logger.Error("config save failed", "error", err)
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.update() })
}
