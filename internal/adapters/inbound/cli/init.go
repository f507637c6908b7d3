package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fixhook/fixhook/internal/adapters/outbound/config"
	"github.com/fixhook/fixhook/internal/domain"
)

func newInitCmd(g *globalFlags) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .fixhook.yaml configuration file",
		Long:  "Create a .fixhook.yaml with the default settings. Pass --endpoint to fill in the webhook URL.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := g.path
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			cfg := domain.DefaultConfig().Apply(g.overrides(cmd))
			if err := cfg.Validate(); err != nil {
				return err
			}

			if err := os.WriteFile(dest, []byte(generateConfig(cfg)), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .fixhook.yaml")

	return cmd
}

func generateConfig(cfg domain.Config) string {
	endpoint := "# endpoint: http://localhost:5678/webhook/code-fix"
	if cfg.Endpoint != "" {
		endpoint = "endpoint: " + cfg.Endpoint
	}

	return fmt.Sprintf(`# fixhook configuration
# Values here override the user config.toml and are overridden by
# FIXHOOK_* environment variables and command-line flags.

%s
timeout_ms: %d
diff_preview: %t
verbose: %t
`, endpoint, cfg.TimeoutMs, cfg.DiffPreview, cfg.Verbose)
}
