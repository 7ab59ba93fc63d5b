package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfractal/menger"
)

func newMengerCmd(a *app) *cobra.Command {
	var order int
	cmd := &cobra.Command{
		Use:   "menger",
		Short: "Generate a Menger sponge voxel grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := menger.Generate(cmd.Context(), order,
				menger.WithLimits(a.limits),
				menger.WithLogger(a.logger))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "menger order=%d side=%d cells=%d solid=%d\n",
				g.Order(), g.Side(), g.Len(), g.SolidCount())
			return err
		},
	}
	cmd.Flags().IntVar(&order, "order", 2, "Recursion depth")
	return cmd
}
