package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beetlebugorg/voronoi/pkg/geofile"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	opts := cfg.Options()
	assert.Equal(t, DefaultRingPoints, opts.RingPoints)
	assert.Equal(t, DefaultRingMargin, opts.RingMargin)
	assert.Equal(t, DefaultBoxMargin, opts.BoxMargin)
	assert.True(t, opts.Parallel)
	assert.Equal(t, 0, opts.Workers)
	assert.Equal(t, geofile.FormatKML, cfg.Format())
	assert.Equal(t, geofile.AxisLonLat, cfg.Axis())
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)
	assert.Equal(t, DefaultOutputFormat, cfg.Output.Format)
	assert.Equal(t, DefaultAxis, cfg.Output.Axis)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Zero(t, cfg.Tessellation.RingPoints)

	ApplyDefaults(nil)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"ring points", func(c *Config) { c.Tessellation.RingPoints = 2 }, "ring_points"},
		{"ring margin", func(c *Config) { c.Tessellation.RingMargin = 0 }, "ring_margin"},
		{"box margin", func(c *Config) { c.Tessellation.BoxMargin = -1 }, "box_margin"},
		{"workers", func(c *Config) { c.Tessellation.Workers = -2 }, "workers"},
		{"format", func(c *Config) { c.Output.Format = "svg" }, "output.format"},
		{"axis", func(c *Config) { c.Output.Axis = "up" }, "output.axis"},
		{"log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"log format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestZeroBoxMarginIsValid(t *testing.T) {
	cfg := Default()
	cfg.Tessellation.BoxMargin = 0
	assert.NoError(t, cfg.Validate())
}
