package lsystem

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/lvfractal/limits"
)

// Option customizes Compute.
type Option func(*config)

type config struct {
	limits limits.Limits
	logger *slog.Logger
}

// WithLimits replaces the resource ceilings. Only MaxSymbols is consulted.
func WithLimits(l limits.Limits) Option {
	if err := l.Validate(); err != nil {
		panic("lsystem: WithLimits: " + err.Error())
	}
	return func(c *config) {
		c.limits = l.Resolve()
	}
}

// WithLogger attaches a structured logger for per-pass debug records.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("lsystem: WithLogger(nil)")
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
	return c
}
