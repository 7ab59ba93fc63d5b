package mandelbrot

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/lvfractal/limits"
)

// Option customizes ComputeField.
type Option func(*config)

type config struct {
	limits limits.Limits
	logger *slog.Logger

	// workers is set by WithWorkers and wins over limits.Workers
	// regardless of option order; 0 means unset.
	workers int
}

// WithLimits replaces the resource ceilings (MaxRasterCells, MaxRasterWork,
// Workers). An explicit WithWorkers takes precedence over l.Workers.
func WithLimits(l limits.Limits) Option {
	if err := l.Validate(); err != nil {
		panic("mandelbrot: WithLimits: " + err.Error())
	}
	return func(c *config) {
		c.limits = l.Resolve()
	}
}

// WithWorkers caps the number of column workers. 0 selects GOMAXPROCS.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("mandelbrot: WithWorkers(n<0)")
	}
	if n == 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithLogger attaches a structured logger for debug records.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("mandelbrot: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}

func newConfig(opts ...Option) config {
	c := config{
		limits: limits.Default(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.workers > 0 {
		c.limits.Workers = c.workers
	}
	return c
}
