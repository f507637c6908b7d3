package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewFixhookMCPServer creates an MCP server exposing the fix flow to coding
// agents. Relative file arguments and .fixhook.yaml are resolved against
// projectPath.
func NewFixhookMCPServer(projectPath, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"fixhook",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, version)
	registerResources(s, projectPath)

	return s
}
