package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/fixhook/fixhook/internal/adapters/outbound/config"
	"github.com/fixhook/fixhook/internal/adapters/outbound/diagnostics"
	"github.com/fixhook/fixhook/internal/adapters/outbound/gitinfo"
	"github.com/fixhook/fixhook/internal/adapters/outbound/logging"
	"github.com/fixhook/fixhook/internal/adapters/outbound/tui"
	"github.com/fixhook/fixhook/internal/adapters/outbound/webhook"
	"github.com/fixhook/fixhook/internal/adapters/outbound/workspace"
	"github.com/fixhook/fixhook/internal/application"
	"github.com/fixhook/fixhook/internal/domain"
)

// fixFlags are shared by the file and selection commands.
type fixFlags struct {
	diagnostics string
	language    string
	jsonOutput  bool
}

func (f *fixFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.diagnostics, "diagnostics", "", "LSP diagnostics JSON for the file (- reads stdin)")
	cmd.Flags().StringVar(&f.language, "language", "", "Language identifier, overriding detection from the extension")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Print the outcome as JSON")
}

func newFileCmd(g *globalFlags) *cobra.Command {
	f := &fixFlags{}
	cmd := &cobra.Command{
		Use:   "file <path>",
		Short: "Fix an entire file",
		Long:  "Send the whole file and its diagnostics to the fix webhook, then preview and apply the result.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, g, f, args[0], domain.ScopeFile, nil)
		},
	}
	f.register(cmd)
	return cmd
}

func newSelectionCmd(g *globalFlags) *cobra.Command {
	var (
		f         = &fixFlags{}
		lines     string
		charRange string
	)
	cmd := &cobra.Command{
		Use:   "selection <path>",
		Short: "Fix a selection within a file",
		Long:  "Send a line range (--lines 3-7) or a character range (--range 3:1-7:12) to the fix webhook and replace only that selection.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := parseSelection(lines, charRange)
			if err != nil {
				tui.NewPresenter(cmd.OutOrStdout(), cmd.ErrOrStderr(), 0).Error("Code fix failed: " + err.Error())
				return reportedError{err}
			}
			return runFix(cmd, g, f, args[0], domain.ScopeSelection, sel)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&lines, "lines", "", "1-based inclusive line range, e.g. 3-7")
	cmd.Flags().StringVar(&charRange, "range", "", "1-based line:column range with exclusive end, e.g. 3:1-7:12")
	cmd.MarkFlagsMutuallyExclusive("lines", "range")
	return cmd
}

func runFix(cmd *cobra.Command, g *globalFlags, f *fixFlags, file string, scope domain.Scope, sel *domain.Selection) error {
	absProject, err := filepath.Abs(g.path)
	if err != nil {
		return fmt.Errorf("resolving path: %w", err)
	}

	// With --json stdout carries only the outcome.
	out := cmd.OutOrStdout()
	if f.jsonOutput {
		out = cmd.ErrOrStderr()
	}

	opts := []application.FixServiceOption{
		application.WithVersionControl(gitinfo.New()),
		application.WithLogger(logging.New(cmd.ErrOrStderr())),
	}
	if f.diagnostics != "" {
		opts = append(opts, application.WithDiagnostics(diagnostics.NewFileSource(f.diagnostics, cmd.InOrStdin())))
	}

	svc := application.NewFixService(
		config.New(),
		workspace.New(),
		webhook.New(version),
		newPrompter(cmd.InOrStdin(), out),
		tui.NewPresenter(out, cmd.ErrOrStderr(), terminalWidth(out), tui.WithSyntaxHighlight(isTerminal(out))),
		opts...,
	)

	outcome, err := svc.Run(cmd.Context(), application.FixInvocation{
		ProjectPath: absProject,
		File:        file,
		Scope:       scope,
		Selection:   sel,
		Language:    f.language,
		Flags:       g.overrides(cmd),
	})

	if f.jsonOutput && outcome != nil {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(outcome); encErr != nil && err == nil {
			return fmt.Errorf("writing outcome: %w", encErr)
		}
	}
	if err != nil {
		return reportedError{err}
	}
	return nil
}

// newPrompter uses the interactive chooser when in is a terminal and falls
// back to line prompts for pipes and tests.
func newPrompter(in io.Reader, out io.Writer) domain.Prompter {
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		return tui.NewTeaPrompter(f, out)
	}
	return tui.NewLinePrompter(in, out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

func terminalWidth(w io.Writer) int {
	if !isTerminal(w) {
		return tui.DefaultDiffWidth
	}
	if cols, err := parseColumns(os.Getenv("COLUMNS")); err == nil {
		return cols
	}
	return tui.DefaultDiffWidth
}
