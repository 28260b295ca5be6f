// Augur is a terminal dashboard for tracking predictions.
//
// Usage:
//
//	augur [flags]
//	augur version
//
// Flags:
//
//	--log-file    Write JSON logs to this file (default: none)
//	--log-level   DEBUG, INFO, WARN or ERROR (default: INFO)
//
// Press q to quit.
package main

import (
	"fmt"
	"os"

	"github.com/Mr-Dark-debug/augur/internal/database"
	"github.com/Mr-Dark-debug/augur/internal/logging"
	"github.com/Mr-Dark-debug/augur/internal/prediction"
	"github.com/Mr-Dark-debug/augur/internal/terminal"
	"github.com/Mr-Dark-debug/augur/internal/tui"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type options struct {
	logFile  string
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "augur",
		Short:         "Terminal dashboard for tracking predictions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !logging.ValidLevel(opts.logLevel) {
				return fmt.Errorf("invalid log level %q", opts.logLevel)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	root.Flags().StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file")
	root.Flags().StringVar(&opts.logLevel, "log-level", logging.LevelInfo, "log level (DEBUG, INFO, WARN, ERROR)")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Augur v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
		},
	})
	return root
}

func run(cmd *cobra.Command, opts *options) error {
	logger, err := logging.New(opts.logFile, opts.logLevel)
	if err != nil {
		return err
	}
	defer logger.Close()

	store, err := database.NewDBService(database.MemoryPath)
	if err != nil {
		return fmt.Errorf("opening prediction store: %w", err)
	}
	defer store.Close()

	predictions, err := loadSeed(store, prediction.SystemClock{})
	if err != nil {
		return err
	}
	logger.Info("predictions loaded", "count", len(predictions))

	focus := predictions[0].ID()
	app, err := tui.NewApp(tui.DefaultConfig(), predictions, &focus, logger.Logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		return err
	}

	if _, err := terminal.Acquire(app, terminal.WithContext(cmd.Context())).Run(); err != nil {
		logger.Error("session ended with error", "error", err)
		return err
	}
	logger.Info("session ended")
	return nil
}
