package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fixhook/fixhook/internal/adapters/outbound/config"
)

func newConfigCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Long:  "Resolve defaults, the user config.toml, .fixhook.yaml, FIXHOOK_* variables and flags, and print the snapshot a fix would use.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(g.path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			loader := config.New()
			cfg, err := loader.Load(absPath, g.overrides(cmd))
			if err != nil {
				return err
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "# user file:    %s\n", loader.UserFile())
			fmt.Fprintf(out, "# project file: %s\n", filepath.Join(absPath, config.FileName))
			_, err = out.Write(data)
			return err
		},
	}
}
