package mandelbrot_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvfractal/mandelbrot"
)

// ExampleEscape shows the two reference samples.
func ExampleEscape() {
	fmt.Println(mandelbrot.Escape(0, 100))
	fmt.Println(mandelbrot.Escape(3, 100))

	// Output:
	// 100
	// 1
}

// ExampleComputeField renders a coarse density preview.
func ExampleComputeField() {
	f, err := mandelbrot.ComputeField(context.Background(), mandelbrot.DefaultRange(), 31, 11, 50)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(f.Width(), f.Height(), f.At(20, 5))

	// Output:
	// 31 11 50
}
