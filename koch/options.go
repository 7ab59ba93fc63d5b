package koch

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/lvfractal/limits"
)

// Option customizes Curve and Snowflake.
type Option func(*config)

type config struct {
	limits limits.Limits
	logger *slog.Logger
}

// WithLimits replaces the resource ceilings. Only MaxCurvePoints is consulted.
func WithLimits(l limits.Limits) Option {
	if err := l.Validate(); err != nil {
		panic("koch: WithLimits: " + err.Error())
	}
	return func(c *config) {
		c.limits = l.Resolve()
	}
}

// WithLogger attaches a structured logger.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("koch: WithLogger(nil)")
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
