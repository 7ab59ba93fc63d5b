package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfractal/tetra"
)

func newTetraCmd(a *app) *cobra.Command {
	var order int
	cmd := &cobra.Command{
		Use:   "tetra",
		Short: "Subdivide the regular tetrahedron into a Sierpinski tetrahedron",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := tetra.Generate(cmd.Context(), tetra.Regular(), order,
				tetra.WithLimits(a.limits),
				tetra.WithLogger(a.logger))
			if err != nil {
				return err
			}
			var volume float64
			for _, t := range ts {
				volume += t.Volume()
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "tetra order=%d tetrahedra=%d faces=%d volume=%.6f\n",
				order, len(ts), 4*len(ts), volume)
			return err
		},
	}
	cmd.Flags().IntVar(&order, "order", 3, "Recursion depth")
	return cmd
}
