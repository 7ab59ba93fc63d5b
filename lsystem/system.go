// SPDX-License-Identifier: MIT
// Package: lvfractal/lsystem
//
// system.go — productions, eager and lazy rewriting, closed-form length.
//
// Contract:
//   • A System is immutable after NewSystem; all methods are safe for
//     concurrent use.
//   • Next never mutates its input; Compute replaces the whole string per pass.
//   • Compute checks Length against Limits.MaxSymbols before allocating.

package lsystem

import (
	"context"
	"fmt"
	"iter"
	"math"
	"math/bits"
	"strings"
	"time"

	"github.com/katalvlaran/lvfractal/limits"
)

const (
	methodNewSystem = "lsystem.NewSystem"
	methodCompute   = "lsystem.Compute"
	methodLength    = "lsystem.Length"
	methodStream    = "lsystem.Stream"

	// cancelCheckSymbols is how often Compute polls ctx inside a pass.
	cancelCheckSymbols = 1 << 16
)

// Rules maps a symbol to its production. Symbols without an entry rewrite to
// themselves.
type Rules map[Symbol]string

// System is a deterministic context-free L-system with a turning angle.
type System struct {
	name  string
	axiom SymbolString
	rules Rules
	angle float64

	// growth[s][c] counts symbol c in the production of s.
	growth [len(Alphabet)][len(Alphabet)]uint64
}

// NewSystem validates and freezes an L-system. rules is copied.
//
// Errors: ErrUnknownSymbol (wraps limits.ErrInvalidParameter) for symbols
// outside Alphabet in axiom, rule keys or bodies; limits.ErrInvalidParameter
// for an empty axiom or a non-finite angle.
func NewSystem(name string, axiom SymbolString, rules Rules, angle float64) (*System, error) {
	if axiom == "" {
		return nil, limits.Invalidf(methodNewSystem, "%s: empty axiom", name)
	}
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return nil, limits.Invalidf(methodNewSystem, "%s: angle %v is not finite", name, angle)
	}
	if err := validate(methodNewSystem, "axiom", string(axiom)); err != nil {
		return nil, err
	}

	s := &System{name: name, axiom: axiom, rules: make(Rules, len(rules)), angle: angle}
	for sym, body := range rules {
		if !sym.Valid() {
			return nil, fmt.Errorf("%s: rule key %q: %w", methodNewSystem, byte(sym), ErrUnknownSymbol)
		}
		if err := validate(methodNewSystem, "rule "+sym.String(), body); err != nil {
			return nil, err
		}
		s.rules[sym] = body
	}

	for i := 0; i < len(Alphabet); i++ {
		for j := 0; j < len(Alphabet); j++ {
			s.growth[i][j] = uint64(strings.Count(string(s.Rewrite(Symbol(Alphabet[i]))), Alphabet[j:j+1]))
		}
	}
	return s, nil
}

// Carpet returns the Sierpiński carpet curve: axiom "F",
// F → "F+F-F-F-UGD+F+F+F-F", G → "GGG", 90°.
func Carpet() *System {
	return mustSystem("carpet", "F", Rules{
		SymbolF: "F+F-F-F-UGD+F+F+F-F",
		SymbolG: "GGG",
	}, 90)
}

// Triangle returns the Sierpiński triangle curve: axiom "F-G-G",
// F → "F-G+F+G-F", G → "GG", 120°.
func Triangle() *System {
	return mustSystem("triangle", "F-G-G", Rules{
		SymbolF: "F-G+F+G-F",
		SymbolG: "GG",
	}, 120)
}

// Preset returns a built-in system by name ("carpet" or "triangle").
func Preset(name string) (*System, error) {
	switch strings.ToLower(name) {
	case "carpet":
		return Carpet(), nil
	case "triangle":
		return Triangle(), nil
	default:
		return nil, limits.Invalidf("lsystem.Preset", "unknown preset %q", name)
	}
}

func mustSystem(name string, axiom SymbolString, rules Rules, angle float64) *System {
	s, err := NewSystem(name, axiom, rules, angle)
	if err != nil {
		panic(err)
	}
	return s
}

// Name returns the system label.
func (s *System) Name() string { return s.name }

// Axiom returns the start string.
func (s *System) Axiom() SymbolString { return s.axiom }

// Angle returns the turning angle in degrees.
func (s *System) Angle() float64 { return s.angle }

// Rewrite applies the production of sym once. Symbols without a rule map to
// themselves.
func (s *System) Rewrite(sym Symbol) SymbolString {
	if body, ok := s.rules[sym]; ok {
		return SymbolString(body)
	}
	return SymbolString(rune(sym))
}

// Next performs one rewriting pass over in and returns a new string.
func (s *System) Next(in SymbolString) SymbolString {
	var b strings.Builder
	b.Grow(len(in))
	for i := 0; i < len(in); i++ {
		b.WriteString(string(s.Rewrite(Symbol(in[i]))))
	}
	return SymbolString(b.String())
}

// Length returns the exact string length after iterations passes without
// building the string: per-symbol counts are propagated through the growth
// matrix. Complexity: O(iterations · |Alphabet|²).
//
// Errors: limits.ErrInvalidParameter for negative iterations,
// limits.ErrResourceExhausted when the length overflows uint64.
func (s *System) Length(iterations int) (uint64, error) {
	ls, err := s.lengths(iterations)
	if err != nil {
		return 0, err
	}
	return ls[iterations], nil
}

// lengths returns the string length after every pass 0..iterations.
func (s *System) lengths(iterations int) ([]uint64, error) {
	if iterations < 0 {
		return nil, limits.Invalidf(methodLength, "iterations %d < 0", iterations)
	}
	var counts [len(Alphabet)]uint64
	for i := 0; i < len(s.axiom); i++ {
		counts[strings.IndexByte(Alphabet, s.axiom[i])]++
	}
	out := make([]uint64, 0, iterations+1)
	out = append(out, uint64(len(s.axiom)))
	for pass := 0; pass < iterations; pass++ {
		var next [len(Alphabet)]uint64
		var total uint64
		for from, n := range counts {
			if n == 0 {
				continue
			}
			for to, k := range s.growth[from] {
				add, ok := limits.Mul(n, k)
				if !ok {
					return nil, limits.Overflow(methodLength, "symbol count")
				}
				var c1, c2 uint64
				next[to], c1 = bits.Add64(next[to], add, 0)
				total, c2 = bits.Add64(total, add, 0)
				if c1 != 0 || c2 != 0 {
					return nil, limits.Overflow(methodLength, "symbol count")
				}
			}
		}
		counts = next
		out = append(out, total)
	}
	return out, nil
}

// Compute rewrites the axiom iterations times and returns the final string.
//
// Errors: limits.ErrInvalidParameter for negative iterations;
// limits.ErrResourceExhausted when the final length exceeds
// Limits.MaxSymbols; ctx.Err() (wrapped) on cancellation.
func (s *System) Compute(ctx context.Context, iterations int, opts ...Option) (SymbolString, error) {
	cfg := newConfig(opts...)
	if iterations < 0 {
		return "", limits.Invalidf(methodCompute, "iterations %d < 0", iterations)
	}
	ls, err := s.lengths(iterations)
	if err != nil {
		return "", fmt.Errorf("%s: %w", methodCompute, err)
	}
	// Productions may be empty, so the largest pass is not always the last.
	var peak uint64
	for _, n := range ls {
		peak = max(peak, n)
	}
	if err := limits.Exceeds(methodCompute, "symbols", peak, cfg.limits.MaxSymbols); err != nil {
		return "", err
	}

	start := time.Now()
	cur := s.axiom
	for pass := 1; pass <= iterations; pass++ {
		next, err := s.nextCtx(ctx, cur, int(ls[pass]))
		if err != nil {
			return "", fmt.Errorf("%s: pass %d: %w", methodCompute, pass, err)
		}
		cur = next
		cfg.logger.Debug("lsystem: pass", "system", s.name, "pass", pass, "length", len(cur))
	}
	cfg.logger.Debug("lsystem: computed", "system", s.name, "iterations", iterations,
		"length", len(cur), "elapsed", time.Since(start))
	return cur, nil
}

// nextCtx is Next with periodic cancellation checks.
func (s *System) nextCtx(ctx context.Context, in SymbolString, size int) (SymbolString, error) {
	var b strings.Builder
	b.Grow(size)
	for i := 0; i < len(in); i++ {
		if i%cancelCheckSymbols == 0 {
			if err := ctx.Err(); err != nil {
				return "", err
			}
		}
		b.WriteString(string(s.Rewrite(Symbol(in[i]))))
	}
	return SymbolString(b.String()), nil
}

// Stream returns the symbols of Compute(iterations) lazily, depth-first,
// using O(iterations) stack and no intermediate strings.
func (s *System) Stream(iterations int) (iter.Seq[Symbol], error) {
	if iterations < 0 {
		return nil, limits.Invalidf(methodStream, "iterations %d < 0", iterations)
	}
	return func(yield func(Symbol) bool) {
		for i := 0; i < len(s.axiom); i++ {
			if !s.expand(Symbol(s.axiom[i]), iterations, yield) {
				return
			}
		}
	}, nil
}

// expand yields the depth-pass expansion of sym; false means the consumer stopped.
func (s *System) expand(sym Symbol, depth int, yield func(Symbol) bool) bool {
	body, ok := s.rules[sym]
	if depth == 0 || !ok {
		return yield(sym)
	}
	for i := 0; i < len(body); i++ {
		if !s.expand(Symbol(body[i]), depth-1, yield) {
			return false
		}
	}
	return true
}
