package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfractal/geom"
	"github.com/katalvlaran/lvfractal/lsystem"
)

func newLSystemCmd(a *app) *cobra.Command {
	var (
		curve      string
		iterations int
		step       float64
	)
	cmd := &cobra.Command{
		Use:   "lsystem",
		Short: "Expand an L-system preset and trace it with a turtle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, err := lsystem.Preset(curve)
			if err != nil {
				return err
			}
			str, err := sys.Compute(cmd.Context(), iterations,
				lsystem.WithLimits(a.limits),
				lsystem.WithLogger(a.logger))
			if err != nil {
				return err
			}
			cmds, err := sys.Commands(str, step)
			if err != nil {
				return err
			}

			t := lsystem.NewTurtle(geom.Point2D{}, 0)
			for _, c := range cmds {
				t.Exec(c)
			}
			end := t.Position()
			_, err = fmt.Fprintf(cmd.OutOrStdout(),
				"lsystem curve=%s iterations=%d symbols=%d commands=%d strokes=%d net_turn=%g end=(%.4f, %.4f)\n",
				sys.Name(), iterations, len(str), len(cmds), len(t.Strokes()), t.NetTurn(), round4(end.X), round4(end.Y))
			return err
		},
	}
	cmd.Flags().StringVar(&curve, "curve", "carpet", "Preset name (carpet, triangle)")
	cmd.Flags().IntVar(&iterations, "iterations", 2, "Number of rewriting passes")
	cmd.Flags().Float64Var(&step, "step", 1, "Turtle step length")
	return cmd
}

// round4 rounds v to the printed precision and folds -0 into 0, so float
// drift around the origin never prints as "-0.0000".
func round4(v float64) float64 {
	r := math.Round(v*1e4) / 1e4
	if r == 0 {
		return 0
	}
	return r
}
