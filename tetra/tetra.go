// SPDX-License-Identifier: MIT
// Package: lvfractal/tetra
//
// tetra.go — recursive tetrahedral subdivision.
//
// Contract:
//   • Output length is exactly 4^order; slice is allocated once up front.
//   • Child order follows the documented midpoint pairing (see doc.go).
//   • ctx is polled at subtrees of depth ≥ cancelCheckDepth, i.e. every 256 leaves.

package tetra

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvfractal/geom"
	"github.com/katalvlaran/lvfractal/limits"
)

const (
	methodGenerate   = "tetra.Generate"
	cancelCheckDepth = 4
)

// Regular returns the canonical unit base tetrahedron:
// (0,0,0), (1,0,0), (½, √3/2, 0), (½, √3/6, √(2/3)).
func Regular() geom.Tetrahedron {
	return geom.Tetrahedron{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 0.5, Y: math.Sqrt(3) / 2, Z: 0},
		{X: 0.5, Y: math.Sqrt(3) / 6, Z: math.Sqrt(2.0 / 3.0)},
	}
}

// Count returns 4^order; ok is false on overflow or negative order.
func Count(order int) (n uint64, ok bool) {
	if order < 0 {
		return 0, false
	}
	return limits.Pow(4, order)
}

// Generate subdivides base order times and returns the 4^order corner
// tetrahedra in depth-first child order.
//
// Errors:
//   - limits.ErrInvalidParameter if order < 0.
//   - limits.ErrResourceExhausted if 4^order exceeds Limits.MaxTetrahedra.
//   - ctx.Err() (wrapped) on cancellation.
func Generate(ctx context.Context, base geom.Tetrahedron, order int, opts ...Option) ([]geom.Tetrahedron, error) {
	cfg := newConfig(opts...)
	if order < 0 {
		return nil, limits.Invalidf(methodGenerate, "order %d < 0", order)
	}
	n, ok := Count(order)
	if !ok {
		return nil, limits.Overflow(methodGenerate, "tetrahedra")
	}
	if err := limits.Exceeds(methodGenerate, "tetrahedra", n, cfg.limits.MaxTetrahedra); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	start := time.Now()
	out, err := subdivide(ctx, make([]geom.Tetrahedron, 0, n), base, order)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodGenerate, err)
	}
	cfg.logger.Debug("tetra: generated", "order", order, "tetrahedra", len(out), "elapsed", time.Since(start))
	return out, nil
}

// subdivide appends the leaves of t at the given depth to dst.
func subdivide(ctx context.Context, dst []geom.Tetrahedron, t geom.Tetrahedron, order int) ([]geom.Tetrahedron, error) {
	if order == 0 {
		return append(dst, t), nil
	}
	if order >= cancelCheckDepth {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	var err error
	for _, child := range Children(t) {
		if dst, err = subdivide(ctx, dst, child, order-1); err != nil {
			return nil, err
		}
	}
	return dst, nil
}

// Children splits t once into its four corner tetrahedra using the fixed
// midpoint pairing documented on the package.
func Children(t geom.Tetrahedron) [4]geom.Tetrahedron {
	var m [6]geom.Point3D
	k := 0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			m[k] = geom.Midpoint(t[i], t[j])
			k++
		}
	}
	return [4]geom.Tetrahedron{
		{t[0], m[0], m[1], m[2]},
		{t[1], m[0], m[3], m[4]},
		{t[2], m[1], m[3], m[5]},
		{t[3], m[2], m[4], m[5]},
	}
}

// Faces flattens tetrahedra into their triangular faces, four per
// tetrahedron, in input order.
func Faces(ts []geom.Tetrahedron) []geom.Triangle {
	out := make([]geom.Triangle, 0, 4*len(ts))
	for _, t := range ts {
		f := t.Faces()
		out = append(out, f[:]...)
	}
	return out
}
