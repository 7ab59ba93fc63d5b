package tetra_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvfractal/tetra"
)

// ExampleGenerate subdivides the canonical tetrahedron twice.
func ExampleGenerate() {
	ts, err := tetra.Generate(context.Background(), tetra.Regular(), 2)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("tetrahedra:", len(ts))
	fmt.Println("faces:", len(tetra.Faces(ts)))
	fmt.Printf("first corner: (%.2f, %.2f, %.2f)\n", ts[0][1].X, ts[0][1].Y, ts[0][1].Z)

	// Output:
	// tetrahedra: 16
	// faces: 64
	// first corner: (0.25, 0.00, 0.00)
}
