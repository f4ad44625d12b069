// Package cli defines the logchain demo command.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/logchain/logchain/internal/config"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "logchain",
		Short: "Chain-of-responsibility log dispatch demo",
		Long: `Drives three classified log messages through a fixed handler chain
(Warning -> Error -> FatalError -> UnknownMessage). Warnings land on the
console, errors are appended to a file, and failures are printed without
aborting the run.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			return runScenario(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./logchain.yaml)")
}
