// Command pinchdeck replays scripted gesture sessions headlessly and prints
// the effective configuration.
package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string
	logFile    string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pinchdeck",
	Short: "Gesture-driven card picker tools",
	Long: `pinchdeck drives the gesture-to-action pipeline without a window.

Use "replay" to run a JSON input script through a session and report the
picks, and "config" to print the configuration after file and environment
overrides.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(verbose, logFile)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging (per-frame stats)")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (PINCHDECK_* env vars override it)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write JSON logs to this file, rotated by size")

	rootCmd.AddCommand(replayCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
