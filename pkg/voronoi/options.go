package voronoi

import (
	"math"
	"runtime"

	"go.uber.org/zap"

	"github.com/beetlebugorg/voronoi/internal/geometry"
	"github.com/beetlebugorg/voronoi/internal/logging"
)

// Options controls augmentation, clipping and parallelism.
type Options struct {
	// RingPoints is the number of synthetic sites placed around the input.
	// Must be at least 3. More points give rounder outer cells.
	RingPoints int

	// RingMargin is added to the largest centroid distance to get the ring
	// radius. Must be positive.
	RingMargin float64

	// BoxMargin grows the bounding box of the augmented sites on every side.
	// Same units as the site coordinates. Must not be negative.
	BoxMargin float64

	// Parallel enables concurrent per-site clipping.
	Parallel bool

	// Workers specifies the number of clipping goroutines.
	// If 0, defaults to runtime.NumCPU().
	// Only used when Parallel is true.
	Workers int

	// Progress is an optional callback for tracking clipping progress.
	// Parameters: (done, total) where done counts sites processed so far.
	Progress func(done, total int)

	// Logger receives stage timings at debug level and skipped sites at
	// warn level. Nil disables logging.
	Logger *zap.Logger
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		RingPoints: geometry.DefaultRingPoints,
		RingMargin: geometry.DefaultRingMargin,
		BoxMargin:  1.0,
		Parallel:   true,
		Workers:    runtime.NumCPU(),
		Progress:   nil,
		Logger:     nil,
	}
}

// Validate checks the numeric options.
func (o Options) Validate() error {
	if o.RingPoints < 3 {
		return &geometry.InputError{Reason: "ring points must be at least 3"}
	}
	if !(o.RingMargin > 0) || math.IsInf(o.RingMargin, 0) {
		return &geometry.InputError{Reason: "ring margin must be positive and finite"}
	}
	if !(o.BoxMargin >= 0) || math.IsInf(o.BoxMargin, 0) {
		return &geometry.InputError{Reason: "box margin must be non-negative and finite"}
	}
	if o.Workers < 0 {
		return &geometry.InputError{Reason: "workers must not be negative"}
	}
	return nil
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return logging.Nop()
	}
	return o.Logger
}
