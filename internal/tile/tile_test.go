package tile

import (
	"testing"
	"time"

	"github.com/agent-platform/tools/worldclock/internal/catalog"
	"github.com/agent-platform/tools/worldclock/internal/clock"
	"github.com/agent-platform/tools/worldclock/internal/daynight"
	"github.com/agent-platform/tools/worldclock/internal/timefmt"
)

func newBuilder(t *testing.T, cat catalog.Catalog) *Builder {
	t.Helper()
	f, err := timefmt.New("pt-BR", nil)
	if err != nil {
		t.Fatalf("timefmt.New: %v", err)
	}
	return NewBuilder(cat, f, nil)
}

func TestBuild(t *testing.T) {
	cat := catalog.New(
		catalog.Entry{City: "Londres", Country: "Reino Unido", Timezone: "Europe/London", Flag: "🇬🇧"},
		catalog.Entry{City: "Tóquio", Country: "Japão", Timezone: "Asia/Tokyo", Flag: "🇯🇵"},
	)
	b := newBuilder(t, cat)
	at := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

	tiles := b.Build(clock.NewSnapshot(at, cat.Timezones()))
	if len(tiles) != 2 {
		t.Fatalf("Build returned %d tiles, want 2", len(tiles))
	}

	want := []Tile{
		{Flag: "🇬🇧", City: "Londres", Country: "Reino Unido", Timezone: "Europe/London",
			Time: "09:30:00", Date: "seg., 15 de jan.", Phase: daynight.Day},
		{Flag: "🇯🇵", City: "Tóquio", Country: "Japão", Timezone: "Asia/Tokyo",
			Time: "18:30:00", Date: "seg., 15 de jan.", Phase: daynight.Night},
	}
	for i := range want {
		if tiles[i] != want[i] {
			t.Errorf("tile %d = %+v, want %+v", i, tiles[i], want[i])
		}
	}
}

func TestBuildBeforeFirstTick(t *testing.T) {
	b := newBuilder(t, catalog.Default())
	tiles := b.Build(clock.Snapshot{})

	if len(tiles) != catalog.Default().Len() {
		t.Fatalf("Build returned %d tiles, want %d", len(tiles), catalog.Default().Len())
	}
	for _, tl := range tiles {
		if tl.Time != timefmt.Placeholder {
			t.Errorf("%s time = %q, want placeholder", tl.City, tl.Time)
		}
		if tl.Date != "" {
			t.Errorf("%s date = %q, want empty", tl.City, tl.Date)
		}
		if tl.Phase != daynight.Day {
			t.Errorf("%s phase = %v, want day", tl.City, tl.Phase)
		}
	}
}

func TestBuildKeepsCatalogOrder(t *testing.T) {
	cat := catalog.Default()
	b := newBuilder(t, cat)
	tiles := b.Build(clock.NewSnapshot(time.Now(), cat.Timezones()))

	for i, e := range cat.Entries() {
		if tiles[i].City != e.City {
			t.Errorf("tile %d city = %q, want %q", i, tiles[i].City, e.City)
		}
	}
}

func TestColumns(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{0, 1},
		{59, 1},
		{60, 2},
		{119, 2},
		{120, 4},
		{300, 4},
	}
	for _, tt := range tests {
		if got := Columns(tt.width); got != tt.want {
			t.Errorf("Columns(%d) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestPlace(t *testing.T) {
	pos := Place(8, 4)
	if len(pos) != 8 {
		t.Fatalf("Place returned %d positions, want 8", len(pos))
	}
	if pos[3] != (Position{Row: 0, Col: 3}) {
		t.Errorf("pos[3] = %+v, want row 0 col 3", pos[3])
	}
	if pos[4] != (Position{Row: 1, Col: 0}) {
		t.Errorf("pos[4] = %+v, want row 1 col 0", pos[4])
	}

	for i, p := range Place(3, 0) {
		if p.Col != 0 || p.Row != i {
			t.Errorf("Place(3, 0)[%d] = %+v, want single column", i, p)
		}
	}
}

func TestRows(t *testing.T) {
	tests := []struct {
		n, columns, want int
	}{
		{8, 4, 2},
		{8, 2, 4},
		{8, 1, 8},
		{7, 4, 2},
		{0, 4, 0},
	}
	for _, tt := range tests {
		if got := Rows(tt.n, tt.columns); got != tt.want {
			t.Errorf("Rows(%d, %d) = %d, want %d", tt.n, tt.columns, got, tt.want)
		}
	}
}
