package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfractal/limits"
)

// app carries what the root command resolves for every subcommand.
type app struct {
	configPath string
	logLevel   string

	limits limits.Limits
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "lvfractal",
		Short: "lvfractal generates fractal geometry",
		Long: `lvfractal builds Menger sponges, Sierpinski tetrahedra, L-system curves,
Koch curves and Mandelbrot escape-time rasters, and prints a short summary of each.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML file with resource ceilings")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(
		newMengerCmd(a),
		newTetraCmd(a),
		newLSystemCmd(a),
		newKochCmd(a),
		newMandelbrotCmd(a),
	)
	return rootCmd
}

// setup loads the ceilings and builds the stderr logger.
func (a *app) setup(stderr io.Writer) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", a.logLevel, err)
	}
	a.logger = newLogger(stderr, level)

	a.limits = limits.Default()
	if a.configPath != "" {
		l, err := limits.Load(a.configPath)
		if err != nil {
			return err
		}
		a.limits = l
		a.logger.Debug("limits loaded", "path", a.configPath)
	}
	return nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}
