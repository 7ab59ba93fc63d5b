package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfractal/mandelbrot"
)

// densityRamp shades counts from escaped-at-once to in-set.
const densityRamp = " .:-=+*#%@"

func newMandelbrotCmd(a *app) *cobra.Command {
	var (
		r             = mandelbrot.DefaultRange()
		width, height int
		maxIter       int
		ascii         bool
	)
	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Compute a Mandelbrot escape-time raster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := mandelbrot.ComputeField(cmd.Context(), r, width, height, maxIter,
				mandelbrot.WithLimits(a.limits),
				mandelbrot.WithLogger(a.logger))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "mandelbrot width=%d height=%d max_iter=%d in_set=%d\n",
				f.Width(), f.Height(), f.MaxIter(), f.InSetCount()); err != nil {
				return err
			}
			if ascii {
				return writeDensity(out, f)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&r.XMin, "xmin", r.XMin, "Real axis minimum")
	cmd.Flags().Float64Var(&r.XMax, "xmax", r.XMax, "Real axis maximum")
	cmd.Flags().Float64Var(&r.YMin, "ymin", r.YMin, "Imaginary axis minimum")
	cmd.Flags().Float64Var(&r.YMax, "ymax", r.YMax, "Imaginary axis maximum")
	cmd.Flags().IntVar(&width, "width", 60, "Samples along the real axis")
	cmd.Flags().IntVar(&height, "height", 24, "Samples along the imaginary axis")
	cmd.Flags().IntVar(&maxIter, "max-iter", 100, "Iteration cap")
	cmd.Flags().BoolVar(&ascii, "ascii", false, "Print a character density preview")
	return cmd
}

// writeDensity prints the raster top row (ymax) first, one rune per sample.
func writeDensity(w io.Writer, f *mandelbrot.Raster) error {
	last := len(densityRamp) - 1
	var sb strings.Builder
	for y := f.Height() - 1; y >= 0; y-- {
		sb.Reset()
		for x := range f.Width() {
			sb.WriteByte(densityRamp[f.At(x, y)*last/f.MaxIter()])
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}
