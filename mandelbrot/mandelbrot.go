// SPDX-License-Identifier: MIT
// Package: lvfractal/mandelbrot
//
// mandelbrot.go — escape-time field computation.
//
// Numeric policy:
//   • Continuation test is |z|² ≤ 4 everywhere (never |z| ≤ 2), so boundary
//     samples such as c = -2 are classified the same way in every path.
// Concurrency:
//   • One task per column, at most Limits.Workers in flight, disjoint writes.

package mandelbrot

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvfractal/limits"
)

const methodComputeField = "mandelbrot.ComputeField"

// escapeRadiusSq is |z|² beyond which the orbit is known to diverge.
const escapeRadiusSq = 4.0

// Escape iterates z ← z² + c from z = 0 while |z|² ≤ 4 and fewer than
// maxIter steps ran, and returns the number of steps taken.
func Escape(c complex128, maxIter int) int {
	cr, ci := real(c), imag(c)
	var zr, zi float64
	n := 0
	for n < maxIter && zr*zr+zi*zi <= escapeRadiusSq {
		zr, zi = zr*zr-zi*zi+cr, 2*zr*zi+ci
		n++
	}
	return n
}

// ComputeField samples r on a width×height grid and returns the escape
// counts.
//
// Errors (all detected before allocation):
//   - limits.ErrInvalidParameter: width, height or maxIter ≤ 0, non-finite or
//     degenerate range.
//   - limits.ErrResourceExhausted: width·height > MaxRasterCells or
//     width·height·maxIter > MaxRasterWork.
//   - ctx.Err() (wrapped) on cancellation; no partial raster is returned.
func ComputeField(ctx context.Context, r Range, width, height, maxIter int, opts ...Option) (*Raster, error) {
	cfg := newConfig(opts...)
	if width <= 0 || height <= 0 {
		return nil, limits.Invalidf(methodComputeField, "size %dx%d must be positive", width, height)
	}
	if maxIter <= 0 {
		return nil, limits.Invalidf(methodComputeField, "maxIter %d must be positive", maxIter)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	cells, ok := limits.Mul(uint64(width), uint64(height))
	if !ok {
		return nil, limits.Overflow(methodComputeField, "raster cells")
	}
	if err := limits.Exceeds(methodComputeField, "raster cells", cells, cfg.limits.MaxRasterCells); err != nil {
		return nil, err
	}
	work, ok := limits.Mul(cells, uint64(maxIter))
	if !ok {
		return nil, limits.Overflow(methodComputeField, "iterations")
	}
	if err := limits.Exceeds(methodComputeField, "iterations", work, cfg.limits.MaxRasterWork); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodComputeField, err)
	}

	start := time.Now()
	f := &Raster{
		r:       r,
		width:   width,
		height:  height,
		maxIter: maxIter,
		xs:      linspace(r.XMin, r.XMax, width),
		ys:      linspace(r.YMin, r.YMax, height),
		counts:  make([]int, cells),
	}
	cfg.logger.Debug("mandelbrot: computing", "width", width, "height", height,
		"maxIter", maxIter, "workers", cfg.limits.Workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.limits.Workers)
	for x := 0; x < width; x++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			col := f.counts[x*height : (x+1)*height]
			cr := f.xs[x]
			for y := range col {
				col[y] = Escape(complex(cr, f.ys[y]), maxIter)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodComputeField, err)
	}

	cfg.logger.Debug("mandelbrot: computed", "cells", cells, "elapsed", time.Since(start))
	return f, nil
}

// linspace returns n evenly spaced samples from lo to hi inclusive; n == 1
// yields [lo].
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	return floats.Span(out, lo, hi)
}
