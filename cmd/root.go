package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile    string
	cityFlags  []string
	localeFlag string
	logLevel   string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "worldclock [city...]",
	Short: "World clock for your terminal and browser",
	Long: `worldclock shows the current time in a fixed set of world cities,
refreshed every second, with a sun or moon marking day and night
(daytime is 06:00 to 17:59 local time).

Usage:
  worldclock              Live terminal grid (same as 'worldclock watch')
  worldclock tui          Full-screen interactive UI
  worldclock serve        Web page with live updates
  worldclock list         One-shot table of all cities
  worldclock init         Write a default config file

Cities are chosen by name or timezone, ignoring case and accents:
  worldclock londres tóquio "sao paulo"`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         runWatch,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.worldclock/config.yaml)")
	rootCmd.PersistentFlags().StringSliceVarP(&cityFlags, "city", "c", nil, "cities to show (repeatable or comma separated)")
	rootCmd.PersistentFlags().StringVar(&localeFlag, "locale", "", "display locale, pt-BR or en-US (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")
	rootCmd.Flags().BoolVar(&watchOnce, "once", false, "print one frame and exit")
}
