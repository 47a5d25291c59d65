package cmd

import (
	"fmt"
	"io"

	"github.com/jonboulle/clockwork"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/agent-platform/tools/worldclock/internal/clock"
	"github.com/agent-platform/tools/worldclock/internal/tile"
	"github.com/agent-platform/tools/worldclock/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list [city...]",
	Short: "Print the current time in every city",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd, args, false)
		if err != nil {
			return err
		}

		s := clock.Take(clockwork.NewRealClock(), e.catalog.Timezones())
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.Boldf("🌍 Relógio Mundial")+ui.Dimf(" (%s UTC)", s.Taken().UTC().Format("2006-01-02 15:04:05")))
		fmt.Fprintln(out)
		writeList(out, e.builder.Build(s), func(tz string) string {
			t, ok := e.zones.In(s, tz)
			if !ok {
				return ""
			}
			_, offset := t.Zone()
			return formatOffset(offset)
		})
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// writeList prints one table row per tile. offset maps a timezone to its
// UTC offset label.
func writeList(w io.Writer, tiles []tile.Tile, offset func(tz string) string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"City", "Country", "Timezone", "Offset", "Time", "Date", ""})
	table.SetBorder(false)
	table.SetColumnSeparator("  ")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)

	for _, t := range tiles {
		table.Append([]string{
			t.Flag + " " + ui.Cyanf("%s", t.City),
			t.Country,
			ui.Dimf("%s", t.Timezone),
			offset(t.Timezone),
			ui.Phasef(t.Phase, "%s", t.Time),
			t.Date,
			t.Phase.Glyph(),
		})
	}
	table.Render()
}

// formatOffset renders an offset in seconds east of UTC as "UTC+09:00".
func formatOffset(seconds int) string {
	sign := '+'
	if seconds < 0 {
		sign = '-'
		seconds = -seconds
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, seconds/3600, (seconds%3600)/60)
}
