// SPDX-License-Identifier: MIT
// Package: lvfractal/koch
//
// koch.go — recursive Koch subdivision.
//
// Contract:
//   • len(Curve(k)) == 4^k + 1; first point == start, last point == end (exact).
//   • Output is allocated once; recursion depth equals order, which the
//     MaxCurvePoints ceiling keeps small.

package koch

import (
	"context"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/lvfractal/geom"
	"github.com/katalvlaran/lvfractal/limits"
)

const (
	methodCurve     = "koch.Curve"
	methodSnowflake = "koch.Snowflake"

	// bumpAngle rotates the middle third to the apex of the bump.
	bumpAngle = math.Pi / 3

	cancelCheckDepth = 4
)

// PointCount returns 4^order + 1; ok is false on overflow or negative order.
func PointCount(order int) (n uint64, ok bool) {
	if order < 0 {
		return 0, false
	}
	segs, ok := limits.Pow(4, order)
	if !ok || segs == math.MaxUint64 {
		return 0, false
	}
	return segs + 1, true
}

// Curve returns the Koch curve of the given order from start to end.
//
// Errors:
//   - limits.ErrInvalidParameter if order < 0.
//   - limits.ErrResourceExhausted if 4^order+1 exceeds Limits.MaxCurvePoints.
//   - ctx.Err() (wrapped) on cancellation.
func Curve(ctx context.Context, order int, start, end geom.Point2D, opts ...Option) (geom.PolyLine, error) {
	cfg := newConfig(opts...)
	n, err := reserve(methodCurve, order, 1, cfg)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodCurve, err)
	}
	out, err := appendCurve(ctx, make(geom.PolyLine, 0, n), order, start, end)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCurve, err)
	}
	out = append(out, end)
	cfg.logger.Debug("koch: curve", "order", order, "points", len(out))
	return out, nil
}

// Snowflake joins the curves a→b, b→c and c→a into one closed polyline of
// 3·4^order + 1 points whose first and last points are both a.
func Snowflake(ctx context.Context, order int, a, b, c geom.Point2D, opts ...Option) (geom.PolyLine, error) {
	cfg := newConfig(opts...)
	n, err := reserve(methodSnowflake, order, 3, cfg)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodSnowflake, err)
	}
	start := time.Now()
	out := make(geom.PolyLine, 0, n)
	for _, side := range [3][2]geom.Point2D{{a, b}, {b, c}, {c, a}} {
		if out, err = appendCurve(ctx, out, order, side[0], side[1]); err != nil {
			return nil, fmt.Errorf("%s: %w", methodSnowflake, err)
		}
	}
	out = append(out, a)
	cfg.logger.Debug("koch: snowflake", "order", order, "points", len(out), "elapsed", time.Since(start))
	return out, nil
}

// UnitSnowflake builds a snowflake over the unit triangle
// (0,0), (½, √3/2), (1,0).
func UnitSnowflake(ctx context.Context, order int, opts ...Option) (geom.PolyLine, error) {
	return Snowflake(ctx, order,
		geom.Point2D{X: 0, Y: 0},
		geom.Point2D{X: 0.5, Y: math.Sqrt(3) / 2},
		geom.Point2D{X: 1, Y: 0},
		opts...)
}

// reserve validates order and returns sides·4^order + 1 checked against the ceiling.
func reserve(method string, order, sides int, cfg config) (uint64, error) {
	if order < 0 {
		return 0, limits.Invalidf(method, "order %d < 0", order)
	}
	segs, ok := limits.Pow(4, order)
	if ok {
		segs, ok = limits.Mul(segs, uint64(sides))
	}
	if !ok || segs == math.MaxUint64 {
		return 0, limits.Overflow(method, "curve points")
	}
	if err := limits.Exceeds(method, "curve points", segs+1, cfg.limits.MaxCurvePoints); err != nil {
		return 0, err
	}
	return segs + 1, nil
}

// appendCurve appends every point of the order-k curve a→b except b itself,
// so consecutive sub-curves share junctions without duplicates.
func appendCurve(ctx context.Context, dst geom.PolyLine, order int, a, b geom.Point2D) (geom.PolyLine, error) {
	if order == 0 {
		return append(dst, a), nil
	}
	if order >= cancelCheckDepth {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	third := r2.Scale(1.0/3.0, r2.Sub(b, a))
	p1 := r2.Add(a, third)
	p3 := r2.Add(a, r2.Scale(2, third))
	p2 := r2.Rotate(p3, bumpAngle, p1)

	var err error
	for _, seg := range [4][2]geom.Point2D{{a, p1}, {p1, p2}, {p2, p3}, {p3, b}} {
		if dst, err = appendCurve(ctx, dst, order-1, seg[0], seg[1]); err != nil {
			return nil, err
		}
	}
	return dst, nil
}
