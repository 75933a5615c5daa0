package main

import (
	"flag"
	"os"

	"github.com/soocke/roi-plot-go/app"
	"github.com/soocke/roi-plot-go/config"
)

func main() {
	cfgPath := flag.String("config", "roi-plot.yaml", "configuration file (.json, .yaml or .yml)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)

	// Set up logger
	logger := NewLogger(cfg.Level())
	if err != nil {
		logger.Error("config load failed, using defaults", "path", *cfgPath, "error", err)
	}

	application, err := app.NewApp("ROI Plot", cfg.PlotWidth+220, cfg.PlotHeight+420, cfg, *cfgPath, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	application.Start()
}
