package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/agent-platform/tools/worldclock/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui [city...]",
	Short: "Full-screen interactive world clock",
	Long: `Opens a full-screen terminal UI with one tile per city.
Tab moves between cities; q or Esc quits.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, args, true)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return tui.New(e.builder, clockwork.NewRealClock()).Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
