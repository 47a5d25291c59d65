// Package display handles terminal rendering of world clock tiles with live updates.
package display

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/agent-platform/tools/worldclock/internal/clock"
	"github.com/agent-platform/tools/worldclock/internal/tile"
	"github.com/agent-platform/tools/worldclock/internal/ui"
)

const (
	clearScreen = "\033[2J"
	cursorHome  = "\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"

	// tileWidth is the inner width of a tile box; four boxes plus gaps fit
	// in tile.WideWidth.
	tileWidth = 26
	gap       = " "

	defaultWidth = 80

	title    = "🌍 Relógio Mundial"
	subtitle = "Horários ao redor do mundo"
)

// Render writes the header, the tile grid sized for width and the footer.
func Render(w io.Writer, tiles []tile.Tile, width int, now time.Time) {
	fmt.Fprint(w, clearScreen+cursorHome)
	fmt.Fprintf(w, "%s %s\n", ui.Boldf("%s", ui.Cyanf("%s", title)), ui.Dimf("%s", now.UTC().Format("(UTC 2006-01-02 15:04:05)")))
	fmt.Fprintln(w, ui.Dimf("%s", subtitle))
	fmt.Fprintln(w)

	cols := tile.Columns(width)
	for start := 0; start < len(tiles); start += cols {
		end := min(start+cols, len(tiles))
		writeRow(w, tiles[start:end])
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, ui.Dimf("Press Ctrl+C to exit"))
}

// writeRow prints tiles side by side, one box line at a time.
func writeRow(w io.Writer, row []tile.Tile) {
	boxes := make([][]string, len(row))
	for i, t := range row {
		boxes[i] = box(t)
	}
	for line := range boxes[0] {
		parts := make([]string, len(boxes))
		for i := range boxes {
			parts[i] = boxes[i][line]
		}
		fmt.Fprintln(w, strings.Join(parts, gap))
	}
}

func box(t tile.Tile) []string {
	edge := func(left, right string) string {
		return ui.Phasef(t.Phase, "%s%s%s", left, strings.Repeat("─", tileWidth), right)
	}
	side := ui.Phasef(t.Phase, "│")

	heading := t.Flag + " " + t.City
	glyph := t.Phase.Glyph()
	titleLine := runewidth.FillRight(runewidth.Truncate(heading, tileWidth-4, "…"), tileWidth-3) + glyph

	return []string{
		edge("┌", "┐"),
		side + " " + ui.Boldf("%s", pad(titleLine)) + side,
		side + " " + ui.Dimf("%s", pad(t.Country)) + side,
		side + " " + ui.Boldf("%s", pad(t.Time)) + side,
		side + " " + ui.Dimf("%s", pad(t.Date)) + side,
		edge("└", "┘"),
	}
}

// pad fits s into the box interior, leaving one cell of right margin.
func pad(s string) string {
	inner := tileWidth - 1
	return runewidth.FillRight(runewidth.Truncate(s, inner, "…"), inner)
}

// TerminalWidth returns the width of the terminal on f, or 80 if f is not a
// terminal.
func TerminalWidth(f *os.File) int {
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

// Options configures Run.
type Options struct {
	Builder *tile.Builder
	Clock   clockwork.Clock
	// Width reports the current terminal width; nil means 80 columns.
	Width func() int
}

// Run starts a live-updating display that refreshes every second.
// It blocks until the context is cancelled.
func Run(ctx context.Context, w io.Writer, opts Options) {
	width := opts.Width
	if width == nil {
		width = func() int { return defaultWidth }
	}
	clk := opts.Clock
	if clk == nil {
		clk = clockwork.NewRealClock()
	}

	fmt.Fprint(w, hideCursor)
	defer fmt.Fprint(w, showCursor)

	loop := clock.NewLoop(clk, opts.Builder.Catalog().Timezones(), func(s clock.Snapshot) {
		Render(w, opts.Builder.Build(s), width(), s.Taken())
	})
	h := loop.Start(ctx)

	<-ctx.Done()
	h.Stop()

	fmt.Fprint(w, clearScreen+cursorHome)
	fmt.Fprintln(w, "Goodbye!")
}
