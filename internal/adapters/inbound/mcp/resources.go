package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fixhook/fixhook/internal/adapters/outbound/config"
	"github.com/fixhook/fixhook/internal/domain"
)

// registerResources registers all fixhook MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	s.AddResource(
		mcplib.NewResource(
			"fixhook://config",
			"Configuration",
			mcplib.WithResourceDescription("Resolved configuration snapshot used by fixhook_fix"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(projectPath),
	)

	s.AddResource(
		mcplib.NewResource(
			"fixhook://languages",
			"Supported Languages",
			mcplib.WithResourceDescription("Language identifiers the fix service accepts"),
			mcplib.WithMIMEType("application/json"),
		),
		handleLanguagesResource(),
	)
}

func handleConfigResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(projectPath, domain.ConfigOverrides{})
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		return jsonResource("fixhook://config", cfg)
	}
}

func handleLanguagesResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonResource("fixhook://languages", domain.SupportedLanguages)
	}
}

func jsonResource(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
