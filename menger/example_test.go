// File: menger/example_test.go
package menger_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvfractal/menger"
)

// ExampleGenerate prints the size of the first sponges and the carpet face
// of order 1.
func ExampleGenerate() {
	for order := 0; order <= 2; order++ {
		grid, _ := menger.Generate(context.Background(), order)
		fmt.Printf("order %d: side=%d solid=%d\n", order, grid.Side(), grid.SolidCount())
	}

	grid, _ := menger.Generate(context.Background(), 1)
	for _, row := range grid.Slice(0) {
		for _, solid := range row {
			if solid {
				fmt.Print("#")
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println()
	}

	// Output:
	// order 0: side=1 solid=1
	// order 1: side=3 solid=20
	// order 2: side=9 solid=400
	// ###
	// #.#
	// ###
}
