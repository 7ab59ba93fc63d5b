package lsystem_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvfractal/lsystem"
)

// ExampleSystem_Compute shows the first rewriting passes of the triangle curve.
func ExampleSystem_Compute() {
	sys := lsystem.Triangle()
	for n := 0; n <= 2; n++ {
		s, _ := sys.Compute(context.Background(), n)
		l, _ := sys.Length(n)
		fmt.Printf("%d: len=%d %s\n", n, l, s)
	}

	// Output:
	// 0: len=5 F-G-G
	// 1: len=15 F-G+F+G-F-GG-GG
	// 2: len=45 F-G+F+G-F-GG+F-G+F+G-F+GG-F-G+F+G-F-GGGG-GGGG
}

// ExampleSystem_Commands maps the carpet's first pass to turtle commands.
func ExampleSystem_Commands() {
	sys := lsystem.Carpet()
	cmds, _ := sys.Commands("F+UGD", 10)
	for _, c := range cmds {
		fmt.Println(c)
	}

	// Output:
	// MoveForward(10)
	// TurnRight(90)
	// PenUp
	// MoveForward(10)
	// PenDown
}
