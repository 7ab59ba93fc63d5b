// SPDX-License-Identifier: MIT
// Package: lvfractal/menger
//
// menger.go — voxel subdivision by base-3 digit peeling.
//
// Determinism:
//   • The grid depends only on order; worker count changes nothing but speed.
// Concurrency:
//   • One goroutine per x-slab (bounded by Limits.Workers), disjoint writes.
//   • ctx is checked before each slab; a cancelled ctx aborts with ctx.Err().

package menger

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvfractal/limits"
)

const methodGenerate = "menger.Generate"

// Removed reports whether cell (x,y,z) of a sponge is empty: at some base-3
// digit position at least two of the coordinates have digit 1. Coordinates
// must be non-negative. The loop runs at most order+1 times.
func Removed(x, y, z int) bool {
	for x > 0 || y > 0 || z > 0 {
		ones := 0
		if x%3 == 1 {
			ones++
		}
		if y%3 == 1 {
			ones++
		}
		if z%3 == 1 {
			ones++
		}
		if ones >= 2 {
			return true
		}
		x /= 3
		y /= 3
		z /= 3
	}
	return false
}

// ExpectedSolidCount returns 20^order, the number of solid cells of a sponge.
// ok is false on overflow or negative order.
func ExpectedSolidCount(order int) (n uint64, ok bool) {
	if order < 0 {
		return 0, false
	}
	return limits.Pow(20, order)
}

// Generate builds a Menger sponge of the given order.
//
// Errors:
//   - limits.ErrInvalidParameter if order < 0.
//   - limits.ErrResourceExhausted if 27^order exceeds Limits.MaxVoxelCells.
//   - ctx.Err() (wrapped) when ctx is cancelled before the last slab.
//
// Complexity: Θ(27^order · order) time, Θ(27^order) memory.
func Generate(ctx context.Context, order int, opts ...Option) (*VoxelGrid, error) {
	cfg := newConfig(opts...)
	if order < 0 {
		return nil, limits.Invalidf(methodGenerate, "order %d < 0", order)
	}
	cells, ok := limits.Pow(27, order)
	if !ok {
		return nil, limits.Overflow(methodGenerate, "voxel cells")
	}
	if err := limits.Exceeds(methodGenerate, "voxel cells", cells, cfg.limits.MaxVoxelCells); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	start := time.Now()
	side := 1
	for i := 0; i < order; i++ {
		side *= 3
	}
	grid := &VoxelGrid{order: order, side: side, cells: make([]bool, cells)}
	cfg.logger.Debug("menger: generating", "order", order, "side", side, "workers", cfg.limits.Workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.limits.Workers)
	for x := 0; x < side; x++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fillSlab(grid, x)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	cfg.logger.Debug("menger: generated", "order", order, "cells", cells, "elapsed", time.Since(start))
	return grid, nil
}

// fillSlab marks every cell of slab x: solid first, then cleared where Removed.
// Each slab owns a disjoint range [x·side², (x+1)·side²).
func fillSlab(g *VoxelGrid, x int) {
	base := x * g.side * g.side
	slab := g.cells[base : base+g.side*g.side]
	for i := range slab {
		slab[i] = true
	}
	for y := 0; y < g.side; y++ {
		row := slab[y*g.side : (y+1)*g.side]
		for z := range row {
			if Removed(x, y, z) {
				row[z] = false
			}
		}
	}
}
