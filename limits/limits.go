// SPDX-License-Identifier: MIT
// Package: lvfractal/limits
//
// limits.go — resource ceilings and overflow-checked size arithmetic.

package limits

import (
	"fmt"
	"math/bits"
	"runtime"
)

// Defaults. Each ceiling is the largest artifact a generator builds without
// explicit configuration.
const (
	DefaultMaxVoxelCells  uint64 = 14_348_907 // 27^5, Menger order 5
	DefaultMaxTetrahedra  uint64 = 1 << 20    // 4^10
	DefaultMaxSymbols     uint64 = 1 << 26    // L-system string length
	DefaultMaxCurvePoints uint64 = 1<<22 + 1  // Koch order 11
	DefaultMaxRasterCells uint64 = 1 << 26    // width × height
	DefaultMaxRasterWork  uint64 = 1 << 34    // width × height × maxIter
)

// Limits bounds the size of generated artifacts. Zero fields fall back to the
// package defaults (see Resolve).
type Limits struct {
	MaxVoxelCells  uint64 `yaml:"max_voxel_cells"`
	MaxTetrahedra  uint64 `yaml:"max_tetrahedra"`
	MaxSymbols     uint64 `yaml:"max_symbols"`
	MaxCurvePoints uint64 `yaml:"max_curve_points"`
	MaxRasterCells uint64 `yaml:"max_raster_cells"`
	MaxRasterWork  uint64 `yaml:"max_raster_work"`

	// Workers caps the goroutines used by parallel generators.
	// 0 means runtime.GOMAXPROCS(0).
	Workers int `yaml:"workers"`
}

// Default returns the default ceilings with Workers resolved.
func Default() Limits {
	return Limits{}.Resolve()
}

// Resolve returns a copy of l with every zero field replaced by its default.
func (l Limits) Resolve() Limits {
	if l.MaxVoxelCells == 0 {
		l.MaxVoxelCells = DefaultMaxVoxelCells
	}
	if l.MaxTetrahedra == 0 {
		l.MaxTetrahedra = DefaultMaxTetrahedra
	}
	if l.MaxSymbols == 0 {
		l.MaxSymbols = DefaultMaxSymbols
	}
	if l.MaxCurvePoints == 0 {
		l.MaxCurvePoints = DefaultMaxCurvePoints
	}
	if l.MaxRasterCells == 0 {
		l.MaxRasterCells = DefaultMaxRasterCells
	}
	if l.MaxRasterWork == 0 {
		l.MaxRasterWork = DefaultMaxRasterWork
	}
	if l.Workers <= 0 {
		l.Workers = runtime.GOMAXPROCS(0)
	}
	return l
}

// Validate rejects a negative worker count. Ceilings are unsigned and always valid.
func (l Limits) Validate() error {
	if l.Workers < 0 {
		return fmt.Errorf("limits: workers %d < 0: %w", l.Workers, ErrInvalidParameter)
	}
	return nil
}

// Pow returns base^exp and false when the result overflows uint64.
// exp must be non-negative; Pow(b, 0) == 1.
func Pow(base uint64, exp int) (uint64, bool) {
	result := uint64(1)
	for i := 0; i < exp; i++ {
		hi, lo := bits.Mul64(result, base)
		if hi != 0 {
			return 0, false
		}
		result = lo
	}
	return result, true
}

// Mul returns a*b and false on uint64 overflow.
func Mul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}
