// Package lsystem generates Sierpiński curves by string rewriting
// (Lindenmayer systems) and turns the symbol stream into drawing commands.
//
// Alphabet:
//
//	F, G  move forward one step (pen state unchanged)
//	U, D  pen up, pen down
//	+, -  turn right (clockwise), turn left, by the system angle
//
// Presets:
//
//	Carpet():   axiom "F",     F → "F+F-F-F-UGD+F+F+F-F", G → "GGG", 90°
//	Triangle(): axiom "F-G-G", F → "F-G+F+G-F",           G → "GG",  120°
//
// Each rewriting pass maps every symbol through its production (symbols
// without a rule map to themselves) and yields a new string; input strings
// are never modified. Length grows geometrically (the carpet's F count is
// multiplied by 8 per pass), so iteration counts beyond single digits are
// impractical to materialize. Length computes the exact size in closed form
// before any allocation, and Stream / CommandStream expand symbols lazily in
// O(iterations) memory for callers that only need to walk the curve once.
//
// A Turtle executes commands and records the drawn strokes, which is enough
// to check geometric properties (closure, net turning) without a renderer.
package lsystem
