package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/fixhook/fixhook/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

// globalFlags are shared by every command. Only flags set explicitly
// become configuration overrides.
type globalFlags struct {
	path        string
	endpoint    string
	timeoutMs   int
	verbose     bool
	diffPreview bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	cmd := &cobra.Command{
		Use:           "fixhook",
		Short:         "Send code to a fix webhook and apply the result",
		Long:          "fixhook sends a file or a selection, plus its diagnostics, to a code-fix webhook and lets you preview and apply the returned fix.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.path, "path", ".", "Project path holding .fixhook.yaml")
	pf.StringVar(&g.endpoint, "endpoint", "", "Fix webhook URL")
	pf.IntVar(&g.timeoutMs, "timeout", domain.DefaultTimeoutMs, "Request timeout in milliseconds")
	pf.BoolVar(&g.verbose, "verbose", false, "Log request details to stderr")
	pf.BoolVar(&g.diffPreview, "diff-preview", true, "Ask before applying a fix")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newFileCmd(g))
	cmd.AddCommand(newSelectionCmd(g))
	cmd.AddCommand(newConfigCmd(g))
	cmd.AddCommand(newLanguagesCmd())
	cmd.AddCommand(newInitCmd(g))
	cmd.AddCommand(newMCPCmd(g))
	return cmd
}

func (g *globalFlags) overrides(cmd *cobra.Command) domain.ConfigOverrides {
	var o domain.ConfigOverrides
	flags := cmd.Flags()
	if flags.Changed("endpoint") {
		o.Endpoint = &g.endpoint
	}
	if flags.Changed("timeout") {
		o.TimeoutMs = &g.timeoutMs
	}
	if flags.Changed("verbose") {
		o.Verbose = &g.verbose
	}
	if flags.Changed("diff-preview") {
		o.DiffPreview = &g.diffPreview
	}
	return o
}

// reportedError marks an error that has already been shown to the user.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	var reported reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
