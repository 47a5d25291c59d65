// Package tui is the full-screen interactive front-end: a tview grid of tiles
// whose column count follows the terminal width.
package tui

import (
	"context"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rivo/tview"

	"github.com/agent-platform/tools/worldclock/internal/clock"
	"github.com/agent-platform/tools/worldclock/internal/daynight"
	"github.com/agent-platform/tools/worldclock/internal/tile"
)

const tileHeight = 6

var phaseColors = map[daynight.Phase]tcell.Color{
	daynight.Day:   tcell.ColorGold,
	daynight.Night: tcell.ColorMediumPurple,
}

// App is a running TUI instance. Each App owns its clock loop and snapshot.
type App struct {
	app     *tview.Application
	builder *tile.Builder
	clock   clockwork.Clock
	latest  clock.Latest
	views   []*tview.TextView
	focused int
	dirty   chan struct{}
}

// New builds the UI for the builder's catalog. clk may be nil.
func New(b *tile.Builder, clk clockwork.Clock) *App {
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	a := &App{
		app:     tview.NewApplication(),
		builder: b,
		clock:   clk,
		dirty:   make(chan struct{}, 1),
	}

	n := b.Catalog().Len()
	a.views = make([]*tview.TextView, n)
	for i := range a.views {
		v := tview.NewTextView().SetDynamicColors(true)
		v.SetBorder(true)
		a.views[i] = v
	}

	header := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText("[::b]Relógio Mundial[-:-:-]\n[gray]Horários ao redor do mundo[-]")
	footer := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter).
		SetText("[gray]Tab: next city   q/Esc: quit[-]")

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(header, 3, 0, false).
		AddItem(a.grid(), 0, 1, true).
		AddItem(footer, 1, 0, false)

	a.app.SetRoot(root, true)
	a.app.SetInputCapture(a.handleKey)
	a.refresh()
	return a
}

// layout is one responsive arrangement: columns tiles per row once the grid
// is at least minWidth cells wide.
type layout struct {
	columns  int
	minWidth int
}

var layouts = []layout{
	{columns: 1, minWidth: 0},
	{columns: 2, minWidth: tile.MediumWidth},
	{columns: 4, minWidth: tile.WideWidth},
}

// cell is where a tile goes in the 4-column grid for one layout.
type cell struct {
	row, col, colSpan, minWidth int
}

// cells returns the grid cells of n tiles for every layout, in increasing
// minWidth order. tview uses the last qualifying cell of each primitive.
func cells(n int) [][]cell {
	out := make([][]cell, n)
	for _, l := range layouts {
		span := tile.MaxColumns / l.columns
		for i, p := range tile.Place(n, l.columns) {
			out[i] = append(out[i], cell{row: p.Row, col: p.Col * span, colSpan: span, minWidth: l.minWidth})
		}
	}
	return out
}

func (a *App) grid() *tview.Grid {
	n := len(a.views)
	rows := make([]int, tile.Rows(n, 1))
	for i := range rows {
		rows[i] = tileHeight
	}

	g := tview.NewGrid().
		SetColumns(0, 0, 0, 0).
		SetRows(rows...).
		SetGap(0, 1)

	for i, placements := range cells(n) {
		for _, c := range placements {
			g.AddItem(a.views[i], c.row, c.col, 1, c.colSpan, 0, c.minWidth, i == 0)
		}
	}
	return g
}

func (a *App) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	switch {
	case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
		a.app.Stop()
		return nil
	case ev.Key() == tcell.KeyTab:
		a.focus(1)
		return nil
	case ev.Key() == tcell.KeyBacktab:
		a.focus(-1)
		return nil
	}
	return ev
}

func (a *App) focus(step int) {
	if len(a.views) == 0 {
		return
	}
	a.focused = (a.focused + step + len(a.views)) % len(a.views)
	a.app.SetFocus(a.views[a.focused])
}

// publish receives snapshots from the clock loop goroutine. It never blocks,
// so stopping the loop cannot wait on the UI.
func (a *App) publish(s clock.Snapshot) {
	a.latest.Store(s)
	select {
	case a.dirty <- struct{}{}:
	default:
	}
}

// redraw forwards snapshot notifications to the UI goroutine until ctx ends.
func (a *App) redraw(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-a.dirty:
			a.app.QueueUpdateDraw(a.refresh)
		}
	}
}

// refresh redraws every tile from the latest snapshot. It runs on the UI
// goroutine.
func (a *App) refresh() {
	for i, t := range a.builder.Build(a.latest.Load()) {
		v := a.views[i]
		v.SetTitle(fmt.Sprintf(" %s %s ", t.Flag, tview.Escape(t.City)))
		v.SetBorderColor(phaseColors[t.Phase])
		v.SetText(tileText(t))
	}
}

func tileText(t tile.Tile) string {
	return fmt.Sprintf("[gray]%s[-]  %s\n[::b]%s[-:-:-]\n[gray]%s[-]",
		tview.Escape(t.Country), t.Phase.Glyph(), t.Time, tview.Escape(t.Date))
}

// Run shows the UI until the user quits or ctx is cancelled. The clock loop
// runs only while the UI is up.
func (a *App) Run(ctx context.Context) error {
	if ctx.Err() != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Stopping before the first draw would make tview open a new screen.
	started := make(chan struct{})
	var once sync.Once
	a.app.SetAfterDrawFunc(func(tcell.Screen) {
		once.Do(func() { close(started) })
	})
	exited := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
		case <-exited:
			return
		}
		select {
		case <-started:
			a.app.Stop()
		case <-exited:
		}
	}()

	h := clock.NewLoop(a.clock, a.builder.Catalog().Timezones(), a.publish).Start(ctx)
	defer h.Stop()
	go a.redraw(ctx)

	err := a.app.Run()
	close(exited)
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
