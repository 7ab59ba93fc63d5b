// SPDX-License-Identifier: MIT
// Package: lvfractal/menger
//
// options.go — functional options for Generate.
//
// Contract:
//   • Option constructors panic on meaningless inputs (nil logger, workers < 0).
//   • Generate itself never panics; it returns wrapped limits sentinels.

package menger

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/lvfractal/limits"
)

// Option customizes Generate.
type Option func(*config)

type config struct {
	limits limits.Limits
	logger *slog.Logger

	// workers is set by WithWorkers and wins over limits.Workers
	// regardless of option order; 0 means unset.
	workers int
}

// WithLimits replaces the resource ceilings. Zero fields keep their defaults.
// An explicit WithWorkers takes precedence over l.Workers.
func WithLimits(l limits.Limits) Option {
	if err := l.Validate(); err != nil {
		panic("menger: WithLimits: " + err.Error())
	}
	return func(c *config) {
		c.limits = l.Resolve()
	}
}

// WithWorkers caps the number of slab workers. 0 selects GOMAXPROCS.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("menger: WithWorkers(n<0)")
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
		panic("menger: WithLogger(nil)")
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
