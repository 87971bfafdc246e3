// Package cmd is the playermove command line.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"playermove/internal/logger"
)

const flagLogLevel = "log-level"

// NewRootCmd creates the playermove root command with its subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "playermove",
		Short:         "Simulate camera-bounded 2D player movement",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String(flagLogLevel, "", "log level (debug, info, warn, error); overrides PLAYERMOVE_LOG_LEVEL")

	root.AddCommand(newRunCmd(), newPlayCmd())
	return root
}

// Execute runs the root command until it finishes or the process is
// interrupted.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

// newLogger builds the command logger from the environment, the log-level
// flag and, when given, explicit output paths.
func newLogger(cmd *cobra.Command, component string, outputPaths ...string) (logger.Logger, error) {
	cfg := logger.ConfigFromEnv()
	if level, _ := cmd.Flags().GetString(flagLogLevel); level != "" {
		cfg.Level = level
	}
	for _, path := range outputPaths {
		if path != "" {
			cfg.OutputPaths = append(cfg.OutputPaths, path)
		}
	}
	return logger.NewComponentLogger(cfg, component)
}
