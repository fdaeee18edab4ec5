// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const version = "0.1.0"

var (
	verbose bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "reqtrace-mcp",
	Short: "Requirement extraction and test coverage traceability",
	Long: `reqtrace-mcp extracts candidate requirement statements from documents and
cross-references generated test cases back against them, producing a
traceability matrix with a coverage verdict per requirement.

The same pipeline is available as MCP tools (serve) and as batch commands
(batch, coverage).`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Logs go to stderr so the stdio MCP transport keeps stdout clean.
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(coverageCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
