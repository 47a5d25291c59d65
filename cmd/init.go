package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/agent-platform/tools/worldclock/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long:  `Creates the configuration directory and default config file at ~/.worldclock/config.yaml.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfgFile
		if path == "" {
			var err error
			path, err = config.DefaultConfigPath()
			if err != nil {
				return fmt.Errorf("determine config path: %w", err)
			}
		}
		out := cmd.OutOrStdout()

		// Existing files are rewritten so new keys pick up their defaults.
		// Environment overrides must not leak into the file.
		if _, err := os.Stat(path); err == nil {
			cfg, loadErr := config.ReadFile(path)
			if loadErr != nil {
				return fmt.Errorf("load existing config: %w", loadErr)
			}
			if err := config.SaveWithComments(path, cfg); err != nil {
				return fmt.Errorf("update config: %w", err)
			}
			fmt.Fprintf(out, "Configuration updated at %s (merged new defaults)\n", path)
			return nil
		}

		cfg := config.DefaultConfig()
		if err := config.SaveWithComments(path, &cfg); err != nil {
			return fmt.Errorf("create config: %w", err)
		}

		fmt.Fprintf(out, "Configuration initialized at %s\n", path)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Next steps:")
		fmt.Fprintln(out, "  1. Pick your cities and locale in the config file:")
		fmt.Fprintf(out, "     %s\n", path)
		fmt.Fprintln(out)
		fmt.Fprintln(out, "  2. Start the clock:")
		fmt.Fprintln(out, "     worldclock")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
