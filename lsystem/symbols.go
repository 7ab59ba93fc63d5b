// SPDX-License-Identifier: MIT
// Package: lvfractal/lsystem
//
// symbols.go — alphabet, symbol strings and package sentinels.

package lsystem

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/lvfractal/limits"
)

// Symbol is one letter of the rewriting alphabet.
type Symbol byte

// Alphabet.
const (
	SymbolF     Symbol = 'F'
	SymbolG     Symbol = 'G'
	SymbolUp    Symbol = 'U'
	SymbolDown  Symbol = 'D'
	SymbolRight Symbol = '+'
	SymbolLeft  Symbol = '-'
)

// Alphabet lists every valid symbol; its order fixes count-vector indices.
const Alphabet = "FGUD+-"

// SymbolString is an immutable sequence of symbols.
type SymbolString string

// ErrUnknownSymbol indicates a symbol outside Alphabet. It wraps
// limits.ErrInvalidParameter.
var ErrUnknownSymbol = fmt.Errorf("lsystem: unknown symbol: %w", limits.ErrInvalidParameter)

// Valid reports whether sym belongs to Alphabet.
func (sym Symbol) Valid() bool {
	return strings.IndexByte(Alphabet, byte(sym)) >= 0
}

// String returns the symbol as a one-letter string.
func (sym Symbol) String() string { return string(rune(sym)) }

// Symbols yields the symbols of s in order.
func (s SymbolString) Symbols() iter.Seq[Symbol] {
	return func(yield func(Symbol) bool) {
		for i := 0; i < len(s); i++ {
			if !yield(Symbol(s[i])) {
				return
			}
		}
	}
}

// Count returns how many times sym occurs in s.
func (s SymbolString) Count(sym Symbol) int {
	return strings.Count(string(s), string(rune(sym)))
}

// validate returns ErrUnknownSymbol for the first symbol outside Alphabet.
func validate(method, what string, s string) error {
	for i := 0; i < len(s); i++ {
		if !Symbol(s[i]).Valid() {
			return fmt.Errorf("%s: %s[%d]=%q: %w", method, what, i, s[i], ErrUnknownSymbol)
		}
	}
	return nil
}
