package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/advent/internal/paths"
)

func newInitCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and input directories",
		Long:  "Write a default config.yaml to the configuration directory if none exists, and create the input directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := paths.ResolveConfigDir(e.flags.configDir)
			if err != nil {
				return fmt.Errorf("resolve config dir: %w", err)
			}
			written, err := writeConfigIfMissing(configDir)
			if err != nil {
				return err
			}
			if written {
				e.logger.Info("wrote default config", zap.String("path", filepath.Join(configDir, configFileExt)))
			}

			inputDir, err := e.inputDir()
			if err != nil {
				return err
			}
			if err := os.MkdirAll(inputDir, 0o755); err != nil {
				return fmt.Errorf("create input directory: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration: %s\nInputs: %s\n", configDir, inputDir)
			return nil
		},
	}
}
