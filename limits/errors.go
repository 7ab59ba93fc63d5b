// SPDX-License-Identifier: MIT
// Package: lvfractal/limits
//
// errors.go — sentinel errors shared by all generators.
//
// Error policy:
//   • Only the two sentinels below classify failures.
//   • Generators attach context with %w; never compare error strings.
//   • No generator returns a partial artifact together with an error.

package limits

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates a rejected input: negative order, non-positive
// width/height/maxIter, a degenerate range or a symbol outside the alphabet.
var ErrInvalidParameter = errors.New("lvfractal: invalid parameter")

// ErrResourceExhausted indicates that the requested artifact exceeds a
// configured ceiling. It is reported before allocation.
var ErrResourceExhausted = errors.New("lvfractal: resource ceiling exceeded")

// Invalidf wraps ErrInvalidParameter with a method tag and a formatted reason.
func Invalidf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), ErrInvalidParameter)
}

// Exceeds reports ErrResourceExhausted when need > ceiling.
// what names the quantity ("voxel cells", "symbols", ...).
func Exceeds(method, what string, need, ceiling uint64) error {
	if need <= ceiling {
		return nil
	}
	return fmt.Errorf("%s: %d %s requested, ceiling is %d: %w", method, need, what, ceiling, ErrResourceExhausted)
}

// Overflow reports ErrResourceExhausted for a quantity that does not even fit
// in 64 bits.
func Overflow(method, what string) error {
	return fmt.Errorf("%s: %s overflow uint64: %w", method, what, ErrResourceExhausted)
}
