package config

import (
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// AxisConfig describes one plot axis.
type AxisConfig struct {
	Title string  `json:"title" yaml:"title"`
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
	Log   bool    `json:"log" yaml:"log"`
}

// Config holds runtime configuration for the plot and its regions.
// Files ending in .yaml or .yml are read and written as YAML, anything else
// as JSON.
type Config struct {
	Debug    bool   `json:"debug" yaml:"debug"`
	LogLevel string `json:"log_level" yaml:"log_level"`

	// Plot area in pixels
	PlotWidth  int        `json:"plot_width" yaml:"plot_width"`
	PlotHeight int        `json:"plot_height" yaml:"plot_height"`
	XAxis      AxisConfig `json:"x_axis" yaml:"x_axis"`
	YAxis      AxisConfig `json:"y_axis" yaml:"y_axis"`

	// Region defaults
	HandleSide   int  `json:"handle_side" yaml:"handle_side"`
	Alpha        int  `json:"alpha" yaml:"alpha"`
	LineWidth    int  `json:"line_width" yaml:"line_width"`
	ShowLabel    bool `json:"show_label" yaml:"show_label"`
	ShowPosition bool `json:"show_position" yaml:"show_position"`
	Mobile       bool `json:"mobile" yaml:"mobile"`

	// Background screen grab behind the plot
	CaptureBackground bool `json:"capture_background" yaml:"capture_background"`
	// Seconds between runtime stats log lines when Debug is set
	StatsIntervalSeconds int `json:"stats_interval_seconds" yaml:"stats_interval_seconds"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:                false,
		LogLevel:             "info",
		PlotWidth:            640,
		PlotHeight:           480,
		XAxis:                AxisConfig{Title: "x", Lower: 0, Upper: 100},
		YAxis:                AxisConfig{Title: "y", Lower: 0, Upper: 100},
		HandleSide:           8,
		Alpha:                80,
		LineWidth:            1,
		ShowLabel:            true,
		ShowPosition:         false,
		Mobile:               true,
		CaptureBackground:    false,
		StatsIntervalSeconds: 30,
	}
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func validAxis(a *AxisConfig, def AxisConfig) {
	if a.Lower == a.Upper || !finite(a.Lower) || !finite(a.Upper) {
		a.Lower, a.Upper = def.Lower, def.Upper
	}
	if a.Log && (a.Lower <= 0 || a.Upper <= 0) {
		a.Log = false
	}
	if strings.TrimSpace(a.Title) == "" {
		a.Title = def.Title
	}
}

// Validate clamps/normalizes values to safe ranges.
func (c *Config) Validate() error {
	def := DefaultConfig()
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(c.LogLevel)
	default:
		c.LogLevel = def.LogLevel
	}
	if c.PlotWidth < 100 {
		c.PlotWidth = def.PlotWidth
	}
	if c.PlotHeight < 100 {
		c.PlotHeight = def.PlotHeight
	}
	validAxis(&c.XAxis, def.XAxis)
	validAxis(&c.YAxis, def.YAxis)
	if c.HandleSide < 3 || c.HandleSide > 32 {
		c.HandleSide = def.HandleSide
	}
	if c.Alpha < 0 || c.Alpha > 255 {
		c.Alpha = def.Alpha
	}
	if c.LineWidth < 1 {
		c.LineWidth = def.LineWidth
	}
	if c.StatsIntervalSeconds <= 0 {
		c.StatsIntervalSeconds = def.StatsIntervalSeconds
	}
	return nil
}

// Level maps LogLevel to a slog level. Debug mode always logs at debug level.
func (c *Config) Level() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load attempts to read configuration from the given file path. If the file does not
// exist it returns DefaultConfig(). On decode error it returns defaults with the error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	defer f.Close()
	if err := decode(f, isYAML(path), cfg); err != nil {
		return DefaultConfig(), err
	}
	_ = cfg.Validate()
	return cfg, nil
}

func decode(r io.Reader, asYAML bool, cfg *Config) error {
	if asYAML {
		err := yaml.NewDecoder(r).Decode(cfg)
		if err == io.EOF {
			return nil
		}
		return err
	}
	return json.NewDecoder(r).Decode(cfg)
}

// Save writes the configuration to the given path, as YAML or JSON by extension.
func (c *Config) Save(path string) error {
	_ = c.Validate()
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if isYAML(path) {
		enc := yaml.NewEncoder(f)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
