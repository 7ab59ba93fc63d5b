// SPDX-License-Identifier: MIT
// Package: lvfractal/lsystem
//
// commands.go — symbol → drawing command mapping.
//
//	F, G → MoveForward(step)
//	U    → PenUp
//	D    → PenDown
//	+    → TurnRight(angle)
//	-    → TurnLeft(angle)

package lsystem

import (
	"fmt"
	"iter"
	"math"

	"github.com/katalvlaran/lvfractal/limits"
)

const methodCommands = "lsystem.Commands"

// Op tags a drawing command.
type Op uint8

const (
	OpMoveForward Op = iota
	OpPenUp
	OpPenDown
	OpTurnRight
	OpTurnLeft
)

var opNames = [...]string{"MoveForward", "PenUp", "PenDown", "TurnRight", "TurnLeft"}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// Command is one turtle instruction. Arg is the step length for
// OpMoveForward, the angle in degrees for turns and zero otherwise.
type Command struct {
	Op  Op
	Arg float64
}

// MoveForward returns a forward move of length step.
func MoveForward(step float64) Command { return Command{Op: OpMoveForward, Arg: step} }

// PenUp lifts the pen.
func PenUp() Command { return Command{Op: OpPenUp} }

// PenDown lowers the pen.
func PenDown() Command { return Command{Op: OpPenDown} }

// TurnRight turns clockwise by angle degrees.
func TurnRight(angle float64) Command { return Command{Op: OpTurnRight, Arg: angle} }

// TurnLeft turns counter-clockwise by angle degrees.
func TurnLeft(angle float64) Command { return Command{Op: OpTurnLeft, Arg: angle} }

func (c Command) String() string {
	switch c.Op {
	case OpPenUp, OpPenDown:
		return c.Op.String()
	default:
		return fmt.Sprintf("%s(%g)", c.Op, c.Arg)
	}
}

// command maps one symbol; ok is false outside Alphabet.
func (s *System) command(sym Symbol, step float64) (Command, bool) {
	switch sym {
	case SymbolF, SymbolG:
		return MoveForward(step), true
	case SymbolUp:
		return PenUp(), true
	case SymbolDown:
		return PenDown(), true
	case SymbolRight:
		return TurnRight(s.angle), true
	case SymbolLeft:
		return TurnLeft(s.angle), true
	default:
		return Command{}, false
	}
}

func checkStep(step float64) error {
	if !(step > 0) || math.IsInf(step, 0) {
		return limits.Invalidf(methodCommands, "step %v must be positive and finite", step)
	}
	return nil
}

// Commands maps every symbol of str to one Command, in order.
//
// Errors: limits.ErrInvalidParameter for a non-positive step;
// ErrUnknownSymbol for a symbol outside Alphabet (no partial result).
func (s *System) Commands(str SymbolString, step float64) ([]Command, error) {
	if err := checkStep(step); err != nil {
		return nil, err
	}
	out := make([]Command, len(str))
	for i := 0; i < len(str); i++ {
		c, ok := s.command(Symbol(str[i]), step)
		if !ok {
			return nil, fmt.Errorf("%s: symbol %q at %d: %w", methodCommands, str[i], i, ErrUnknownSymbol)
		}
		out[i] = c
	}
	return out, nil
}

// CommandStream is the lazy counterpart of Commands(Compute(iterations)).
// Every streamed symbol is in Alphabet because NewSystem validated the rules.
func (s *System) CommandStream(iterations int, step float64) (iter.Seq[Command], error) {
	if err := checkStep(step); err != nil {
		return nil, err
	}
	syms, err := s.Stream(iterations)
	if err != nil {
		return nil, err
	}
	return func(yield func(Command) bool) {
		for sym := range syms {
			c, _ := s.command(sym, step)
			if !yield(c) {
				return
			}
		}
	}, nil
}
