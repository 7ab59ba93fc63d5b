package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfractal/geom"
	"github.com/katalvlaran/lvfractal/koch"
)

func newKochCmd(a *app) *cobra.Command {
	var (
		order     int
		snowflake bool
	)
	cmd := &cobra.Command{
		Use:   "koch",
		Short: "Generate a Koch curve or snowflake",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []koch.Option{koch.WithLimits(a.limits), koch.WithLogger(a.logger)}
			var (
				pts geom.PolyLine
				err error
			)
			if snowflake {
				pts, err = koch.UnitSnowflake(cmd.Context(), order, opts...)
			} else {
				pts, err = koch.Curve(cmd.Context(), order, geom.Point2D{}, geom.Point2D{X: 1}, opts...)
			}
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "koch order=%d snowflake=%t points=%d length=%.6f\n",
				order, snowflake, pts.Len(), pts.Length())
			return err
		},
	}
	cmd.Flags().IntVar(&order, "order", 3, "Recursion depth")
	cmd.Flags().BoolVar(&snowflake, "snowflake", false, "Close three curves around the unit triangle")
	return cmd
}
