// Package cli provides the morph command-line workbench: commands to
// eyeball mutator distributions and to watch the shrinker minimize a
// failing input.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/morph/internal/config"
)

var configFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "morph",
		Short: "Structure-aware value mutation workbench",
		Long: `Morph mutates values for property-based testing and fuzzing.

The workbench commands let you inspect how its mutators behave:

  dist    sample a mutator and print the distribution of results
  shrink  run a failing property and watch its input get minimized`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "",
		"config file (default "+config.DefaultPath+")")

	return cmd
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves the file and environment configuration for a
// subcommand run.
func loadConfig() (*config.Config, error) {
	return config.Load(configFlag)
}
