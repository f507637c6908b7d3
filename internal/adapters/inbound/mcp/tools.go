package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fixhook/fixhook/internal/adapters/outbound/config"
	"github.com/fixhook/fixhook/internal/adapters/outbound/gitinfo"
	"github.com/fixhook/fixhook/internal/adapters/outbound/logging"
	"github.com/fixhook/fixhook/internal/adapters/outbound/textdiff"
	"github.com/fixhook/fixhook/internal/adapters/outbound/webhook"
	"github.com/fixhook/fixhook/internal/adapters/outbound/workspace"
	"github.com/fixhook/fixhook/internal/application"
	"github.com/fixhook/fixhook/internal/domain"
)

// registerTools registers all fixhook MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath, version string) {
	s.AddTool(
		mcplib.NewTool("fixhook_fix",
			mcplib.WithDescription("Send a file or a line range to the configured fix webhook. Returns the fixed code, the explanation and a unified diff. The file is only changed when apply is true."),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path of the file to fix, relative to the project root"),
			),
			mcplib.WithNumber("start_line", mcplib.Description("First line of the selection (1-based). Omit to fix the whole file")),
			mcplib.WithNumber("end_line", mcplib.Description("Last line of the selection, inclusive (defaults to start_line)")),
			mcplib.WithString("language", mcplib.Description("Language identifier, overriding detection from the extension")),
			mcplib.WithBoolean("apply", mcplib.Description("Write the fix to disk instead of only previewing it")),
		),
		handleFix(projectPath, version),
	)
}

type fixResult struct {
	State       domain.FlowState `json:"state"`
	Applied     bool             `json:"applied"`
	File        string           `json:"file"`
	Range       domain.Range     `json:"range"`
	Explanation string           `json:"explanation,omitempty"`
	Confidence  *float64         `json:"confidence,omitempty"`
	FixedCode   string           `json:"fixed_code"`
	Diff        string           `json:"diff"`
	Messages    []string         `json:"messages,omitempty"`
}

func handleFix(projectPath, version string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if !filepath.IsAbs(file) {
			file = filepath.Join(projectPath, file)
		}

		args := request.GetArguments()
		apply, _ := args["apply"].(bool)
		language, _ := args["language"].(string)

		scope := domain.ScopeFile
		var sel *domain.Selection
		if _, ok := args["start_line"]; ok {
			start := intArg(args, "start_line")
			if start < 1 {
				return errorResult("start_line must be a positive line number"), nil
			}
			end := start
			if _, ok := args["end_line"]; ok {
				end = intArg(args, "end_line")
				if end < 1 {
					return errorResult("end_line must be a positive line number"), nil
				}
			}
			scope = domain.ScopeSelection
			sel = &domain.Selection{StartLine: start, EndLine: end}
		}

		choice := domain.ChoiceCancel
		if apply {
			choice = domain.ChoiceApply
		}
		presenter := &collectingPresenter{}
		svc := application.NewFixService(
			config.New(),
			workspace.New(),
			webhook.New(version),
			fixedPrompter{choice: choice},
			presenter,
			application.WithVersionControl(gitinfo.New()),
			application.WithLogger(logging.New(os.Stderr)),
		)

		// The decision always goes through the prompter so that a preview
		// never writes, whatever diff_preview is configured to.
		preview := true
		outcome, err := svc.Run(ctx, application.FixInvocation{
			ProjectPath: projectPath,
			File:        file,
			Scope:       scope,
			Selection:   sel,
			Language:    language,
			Flags:       domain.ConfigOverrides{DiffPreview: &preview},
		})
		if err != nil {
			return errorResult("Code fix failed: " + err.Error()), nil
		}

		result := fixResult{
			State:    outcome.State,
			Applied:  outcome.State == domain.StateApplied,
			File:     outcome.File,
			Range:    outcome.Range,
			Messages: presenter.Messages(),
		}
		if resp := outcome.Response; resp != nil {
			result.Explanation = resp.Explanation
			result.Confidence = resp.Confidence
			result.FixedCode = resp.FixedCode
			result.Diff = textdiff.Unified(filepath.Base(outcome.File), outcome.Original, resp.FixedCode)
		}
		return jsonResult(result)
	}
}

// intArg reads a numeric argument. JSON numbers arrive as float64.
func intArg(args map[string]any, key string) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case json.Number:
		n, _ := v.Int64()
		return int(n)
	}
	return 0
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
