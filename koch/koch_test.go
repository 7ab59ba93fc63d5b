package koch_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lvfractal/geom"
	"github.com/katalvlaran/lvfractal/koch"
	"github.com/katalvlaran/lvfractal/limits"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

var (
	origin = geom.Point2D{X: 0, Y: 0}
	unitX  = geom.Point2D{X: 1, Y: 0}
)

// TestCurve_OrderZero returns exactly [start, end].
func TestCurve_OrderZero(t *testing.T) {
	start, end := geom.Point2D{X: -1, Y: 2}, geom.Point2D{X: 3, Y: 5}
	got, err := koch.Curve(context.Background(), 0, start, end)
	require.NoError(t, err)
	assert.Equal(t, geom.PolyLine{start, end}, got)
}

// TestCurve_PointCount verifies 4^k + 1 points and exact endpoints.
func TestCurve_PointCount(t *testing.T) {
	start, end := geom.Point2D{X: 2, Y: -1}, geom.Point2D{X: -4, Y: 7}
	for k := 0; k <= 6; k++ {
		got, err := koch.Curve(context.Background(), k, start, end)
		require.NoError(t, err)
		want, ok := koch.PointCount(k)
		require.True(t, ok)
		assert.Len(t, got, int(want), "order %d", k)
		assert.Equal(t, start, got[0])
		assert.Equal(t, end, got[len(got)-1])
	}
}

// TestCurve_OrderOne pins the bump apex on the unit segment.
func TestCurve_OrderOne(t *testing.T) {
	got, err := koch.Curve(context.Background(), 1, origin, unitX)
	require.NoError(t, err)
	want := geom.PolyLine{
		{X: 0, Y: 0},
		{X: 1.0 / 3, Y: 0},
		{X: 0.5, Y: math.Sqrt(3) / 6},
		{X: 2.0 / 3, Y: 0},
		{X: 1, Y: 0},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("order-1 curve mismatch (-want +got):\n%s", diff)
	}
}

// TestCurve_SegmentLengths: every segment has length |end-start| / 3^k,
// so the total length is (4/3)^k · |end-start|.
func TestCurve_SegmentLengths(t *testing.T) {
	const k = 4
	got, err := koch.Curve(context.Background(), k, origin, geom.Point2D{X: 81, Y: 0})
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		d := r2.Norm(r2.Sub(got[i], got[i-1]))
		assert.InDelta(t, 1.0, d, 1e-9, "segment %d", i)
	}
	assert.InDelta(t, 81*math.Pow(4.0/3.0, k), got.Length(), 1e-6)
}

// TestCurve_NoDuplicateJunctions: consecutive points are always distinct.
func TestCurve_NoDuplicateJunctions(t *testing.T) {
	got, err := koch.Curve(context.Background(), 3, origin, unitX)
	require.NoError(t, err)
	for i := 1; i < len(got); i++ {
		assert.NotEqual(t, got[i-1], got[i], "duplicate at %d", i)
	}
}

// TestSnowflake_Closed checks point count, closure and outward bumps.
func TestSnowflake_Closed(t *testing.T) {
	for k := 0; k <= 4; k++ {
		got, err := koch.UnitSnowflake(context.Background(), k)
		require.NoError(t, err)
		segs, _ := limits.Pow(4, k)
		assert.Len(t, got, int(3*segs+1), "order %d", k)
		assert.Equal(t, got[0], got[len(got)-1], "closed at order %d", k)
	}

	flake, err := koch.UnitSnowflake(context.Background(), 1)
	require.NoError(t, err)
	b := flake.Bounds()
	assert.InDelta(t, -math.Sqrt(3)/6, b.Min.Y, 1e-12, "bottom bump points down, away from the triangle")
}

func TestCurve_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := koch.Curve(ctx, -1, origin, unitX)
	assert.ErrorIs(t, err, limits.ErrInvalidParameter)

	_, err = koch.Curve(ctx, 5, origin, unitX, koch.WithLimits(limits.Limits{MaxCurvePoints: 100}))
	assert.ErrorIs(t, err, limits.ErrResourceExhausted)

	_, err = koch.Snowflake(ctx, 40, origin, unitX, origin)
	assert.ErrorIs(t, err, limits.ErrResourceExhausted)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	got, err := koch.Curve(cancelled, 6, origin, unitX)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, got)
}

func TestPointCount(t *testing.T) {
	n, ok := koch.PointCount(3)
	assert.True(t, ok)
	assert.Equal(t, uint64(65), n)

	_, ok = koch.PointCount(-2)
	assert.False(t, ok)
	_, ok = koch.PointCount(32)
	assert.False(t, ok)
}
