// Package config defines the voronoi command configuration: plain data
// types, defaults and validation.
package config

import (
	"fmt"

	"github.com/beetlebugorg/voronoi/internal/logging"
	"github.com/beetlebugorg/voronoi/pkg/geofile"
	"github.com/beetlebugorg/voronoi/pkg/voronoi"
)

// Defaults used when a setting is absent from file and environment.
const (
	DefaultRingPoints   = 100
	DefaultRingMargin   = 10.0
	DefaultBoxMargin    = 1.0
	DefaultParallel     = true
	DefaultWorkers      = 0
	DefaultOutputFormat = "kml"
	DefaultAxis         = "lonlat"
	DefaultLogLevel     = logging.LevelInfo
	DefaultLogFormat    = logging.FormatConsole
)

// TessellationConfig tunes the boundary ring, the clipping box and the
// clipping worker pool.
type TessellationConfig struct {
	RingPoints int     `mapstructure:"ring_points"`
	RingMargin float64 `mapstructure:"ring_margin"`
	BoxMargin  float64 `mapstructure:"box_margin"`
	Parallel   bool    `mapstructure:"parallel"`
	Workers    int     `mapstructure:"workers"` // 0 = one per CPU
}

// OutputConfig selects how regions are written.
type OutputConfig struct {
	Format string `mapstructure:"format"` // kml | geojson | wkt
	Axis   string `mapstructure:"axis"`   // lonlat | latlon
}

// LogConfig selects log level and encoding.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // console | json
}

// Config is the root configuration.
type Config struct {
	Tessellation TessellationConfig `mapstructure:"tessellation"`
	Output       OutputConfig       `mapstructure:"output"`
	Log          LogConfig          `mapstructure:"log"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	return &Config{
		Tessellation: TessellationConfig{
			RingPoints: DefaultRingPoints,
			RingMargin: DefaultRingMargin,
			BoxMargin:  DefaultBoxMargin,
			Parallel:   DefaultParallel,
			Workers:    DefaultWorkers,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
			Axis:   DefaultAxis,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// ApplyDefaults fills empty string settings. Numeric and boolean defaults
// come from viper so that an explicit zero is preserved.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = DefaultOutputFormat
	}
	if cfg.Output.Axis == "" {
		cfg.Output.Axis = DefaultAxis
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
}

// Validate checks every setting and returns the first problem found.
func (c *Config) Validate() error {
	t := c.Tessellation
	if t.RingPoints < 3 {
		return fmt.Errorf("config: tessellation.ring_points must be at least 3, got %d", t.RingPoints)
	}
	if !(t.RingMargin > 0) {
		return fmt.Errorf("config: tessellation.ring_margin must be positive, got %v", t.RingMargin)
	}
	if !(t.BoxMargin >= 0) {
		return fmt.Errorf("config: tessellation.box_margin must not be negative, got %v", t.BoxMargin)
	}
	if t.Workers < 0 {
		return fmt.Errorf("config: tessellation.workers must not be negative, got %d", t.Workers)
	}

	if _, err := geofile.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("config: output.format: %w", err)
	}
	if _, err := geofile.ParseAxis(c.Output.Axis); err != nil {
		return fmt.Errorf("config: output.axis: %w", err)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("config: log.level: %w", err)
	}
	switch c.Log.Format {
	case logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected console|json", c.Log.Format)
	}
	return nil
}

// Options converts the tessellation settings to library options.
func (c *Config) Options() voronoi.Options {
	opts := voronoi.DefaultOptions()
	opts.RingPoints = c.Tessellation.RingPoints
	opts.RingMargin = c.Tessellation.RingMargin
	opts.BoxMargin = c.Tessellation.BoxMargin
	opts.Parallel = c.Tessellation.Parallel
	opts.Workers = c.Tessellation.Workers
	return opts
}

// Format returns the parsed output format. Call after Validate.
func (c *Config) Format() geofile.Format {
	f, _ := geofile.ParseFormat(c.Output.Format)
	return f
}

// Axis returns the parsed axis order. Call after Validate.
func (c *Config) Axis() geofile.Axis {
	a, _ := geofile.ParseAxis(c.Output.Axis)
	return a
}

// Logging returns the logger settings.
func (c *Config) Logging() logging.Config {
	return logging.Config{Level: c.Log.Level, Format: c.Log.Format}
}
