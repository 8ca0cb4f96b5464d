package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/evostat/entrokit/xcmd"
	"github.com/evostat/entrokit/xlogger"
)

var (
	logLevel  string
	logFormat string
	logSource bool
	logger    *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "entrokit",
	Short: "Platform-competition dynamics and ecosystem entropy toolkit",
	Long: `entrokit generates the datasets behind the entropy-dominance analysis:
replicator-dynamics phase portraits, separatrix sweeps, KMR stationary
distributions, entropy-estimator bias curves, and event-study regressions,
plus collectors that measure real ecosystem entropy from GitHub, npm, and
Stack Overflow.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = xlogger.New(xlogger.Config{
			Level:      logLevel,
			Format:     logFormat,
			AddSource:  logSource,
			SourcePath: "entrokit/",
		})
		slog.SetDefault(logger)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&logSource, "log-source", false, "annotate log records with the call site")

	rootCmd.AddCommand(figuresCmd)
	rootCmd.AddCommand(collectCmd)
	rootCmd.AddCommand(rditCmd)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		// First interrupt cancels in-flight collectors; a second one
		// kills the process the usual way.
		_ = xcmd.WaitInterrupted(ctx)
		cancel()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
