// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/reqtraceproj/reqtrace-mcp/internal/tool"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the extraction and coverage tools over MCP stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		server := mcp.NewServer(&mcp.Implementation{
			Name:    "reqtrace-mcp",
			Version: version,
		}, nil)

		mcp.AddTool(server, tool.MetadataExtractRequirements, tool.ExtractRequirements)
		mcp.AddTool(server, tool.MetadataAnalyzeCoverage, tool.AnalyzeCoverage)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		logger.Info("serving MCP over stdio",
			zap.String("server", "reqtrace-mcp"),
			zap.String("version", version))

		if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
			return fmt.Errorf("MCP server stopped: %w", err)
		}
		return nil
	},
}
