// SPDX-License-Identifier: MIT

// Package cli holds the cobra command tree of the matdemo program.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linalg/internal/logging"
	"github.com/katalvlaran/linalg/render"
)

// Config is the resolved command-line configuration.
type Config struct {
	Format   string
	Scale    int32
	LogLevel string
	LogJSON  bool
	NoColor  bool
}

// DefaultScale is the factor the product is multiplied by.
const DefaultScale = 2

// NewRootCommand returns the matdemo command with its flags bound to a fresh Config.
func NewRootCommand() *cobra.Command {
	cfg := Config{}

	cmd := &cobra.Command{
		Use:   "matdemo",
		Short: "Multiply, scale and transpose a small integer matrix",
		Long: `matdemo builds the 2x3 matrix [[1,2,1],[4,1,3]] and a 3x4 all-ones matrix,
then prints the ones matrix, their product, the product scaled by --scale and
the transposed product.

Example:
  matdemo --format table --scale 3`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logging.New(logging.Options{
				Name:    cmd.Name(),
				Level:   cfg.LogLevel,
				Output:  cmd.ErrOrStderr(),
				NoColor: cfg.NoColor,
				JSON:    cfg.LogJSON,
			})
			if err != nil {
				err = fmt.Errorf("failed to configure logging: %w", err)
				fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)

				return err
			}

			format, err := render.ParseFormat(cfg.Format)
			if err != nil {
				log.Error("invalid flag", "flag", "format", "error", err)

				return err
			}

			if err = runDemo(cmd.OutOrStdout(), log, format, cfg.Scale); err != nil {
				log.Error("demo failed", "error", err)

				return err
			}
			log.Debug("done")

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&cfg.Format, "format", "f", render.DefaultFormat.String(), "Output format: debug or table")
	flags.Int32VarP(&cfg.Scale, "scale", "s", DefaultScale, "Scalar the product is multiplied by")
	flags.StringVar(&cfg.LogLevel, "log-level", logging.DefaultLevel, "Log level: trace, debug, info, warn, error or off")
	flags.BoolVar(&cfg.LogJSON, "log-json", false, "Emit logs as JSON")
	flags.BoolVar(&cfg.NoColor, "no-color", false, "Disable coloured log output")

	return cmd
}

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
