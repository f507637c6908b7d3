package cli

import (
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/fixhook/fixhook/internal/adapters/inbound/mcp"
)

func newMCPCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the fixhook MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(g))
	return cmd
}

func newMCPServeCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start fixhook MCP server (stdio)",
		Long:  "Start the fixhook MCP server using stdio transport. Coding agents can preview fixes for a file or line range and apply them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(g.path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			s := mcpadapter.NewFixhookMCPServer(absPath, version)
			return server.ServeStdio(s)
		},
	}
}
