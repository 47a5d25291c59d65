package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"

	"github.com/agent-platform/tools/worldclock/internal/clock"
	"github.com/agent-platform/tools/worldclock/internal/display"
)

var watchOnce bool

var watchCmd = &cobra.Command{
	Use:   "watch [city...]",
	Short: "Live terminal grid of city clocks",
	Long: `Redraws a grid of city tiles every second until Ctrl+C.
The grid uses 1, 2 or 4 columns depending on terminal width.`,
	Args: cobra.ArbitraryArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().BoolVar(&watchOnce, "once", false, "print one frame and exit")
}

func runWatch(cmd *cobra.Command, args []string) error {
	e, err := setup(cmd, args, !watchOnce)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	width := func() int { return display.TerminalWidth(os.Stdout) }
	clk := clockwork.NewRealClock()

	if watchOnce {
		s := clock.Take(clk, e.catalog.Timezones())
		display.Render(out, e.builder.Build(s), width(), s.Taken())
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	display.Run(ctx, out, display.Options{
		Builder: e.builder,
		Clock:   clk,
		Width:   width,
	})
	return nil
}
