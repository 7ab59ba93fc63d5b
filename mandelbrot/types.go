package mandelbrot

import (
	"math"

	"github.com/katalvlaran/lvfractal/limits"
)

// Range is the sampled rectangle of the complex plane.
type Range struct {
	XMin, XMax float64 // real axis
	YMin, YMax float64 // imaginary axis
}

// DefaultRange returns [-2, 1] × [-1.5, 1.5], which frames the whole set.
func DefaultRange() Range {
	return Range{XMin: -2, XMax: 1, YMin: -1.5, YMax: 1.5}
}

// Validate rejects non-finite bounds and degenerate intervals (min ≥ max).
func (r Range) Validate() error {
	for _, v := range [...]float64{r.XMin, r.XMax, r.YMin, r.YMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return limits.Invalidf(methodComputeField, "range %+v is not finite", r)
		}
	}
	if r.XMin >= r.XMax {
		return limits.Invalidf(methodComputeField, "xmin %g >= xmax %g", r.XMin, r.XMax)
	}
	if r.YMin >= r.YMax {
		return limits.Invalidf(methodComputeField, "ymin %g >= ymax %g", r.YMin, r.YMax)
	}
	return nil
}

// Raster holds one iteration count per sample, indexed [x][y].
type Raster struct {
	r       Range
	width   int
	height  int
	maxIter int
	xs, ys  []float64
	counts  []int // counts[x*height+y]
}

// Width returns the number of columns (real-axis samples).
func (f *Raster) Width() int { return f.width }

// Height returns the number of rows (imaginary-axis samples).
func (f *Raster) Height() int { return f.height }

// MaxIter returns the iteration cap the raster was computed with.
func (f *Raster) MaxIter() int { return f.maxIter }

// Range returns the sampled rectangle.
func (f *Raster) Range() Range { return f.r }

// At returns the iteration count of column x, row y.
func (f *Raster) At(x, y int) int { return f.counts[x*f.height+y] }

// X returns the real part sampled by column i.
func (f *Raster) X(i int) float64 { return f.xs[i] }

// Y returns the imaginary part sampled by row j.
func (f *Raster) Y(j int) float64 { return f.ys[j] }

// Column returns a copy of the counts of column x, bottom (ymin) first.
func (f *Raster) Column(x int) []int {
	out := make([]int, f.height)
	copy(out, f.counts[x*f.height:(x+1)*f.height])
	return out
}

// InSetCount returns how many samples reached maxIter.
func (f *Raster) InSetCount() int {
	n := 0
	for _, c := range f.counts {
		if c == f.maxIter {
			n++
		}
	}
	return n
}

// Histogram returns h where h[k] is the number of samples with count k,
// for k in [0, maxIter].
func (f *Raster) Histogram() []int {
	h := make([]int, f.maxIter+1)
	for _, c := range f.counts {
		h[c]++
	}
	return h
}
