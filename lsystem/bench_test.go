package lsystem_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvfractal/lsystem"
)

// BenchmarkCompute_Carpet5 materializes the carpet string at 5 passes.
func BenchmarkCompute_Carpet5(b *testing.B) {
	sys := lsystem.Carpet()
	for i := 0; i < b.N; i++ {
		if _, err := sys.Compute(context.Background(), 5); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkStream_Carpet5 walks the same symbols lazily.
func BenchmarkStream_Carpet5(b *testing.B) {
	sys := lsystem.Carpet()
	for i := 0; i < b.N; i++ {
		seq, err := sys.Stream(5)
		if err != nil {
			b.Fatal(err)
		}
		n := 0
		for range seq {
			n++
		}
	}
}
