// Package tile turns a catalog and a clock snapshot into the per-city tiles
// shown by every front-end, and lays them out on a responsive grid.
package tile

import (
	"github.com/agent-platform/tools/worldclock/internal/catalog"
	"github.com/agent-platform/tools/worldclock/internal/clock"
	"github.com/agent-platform/tools/worldclock/internal/daynight"
	"github.com/agent-platform/tools/worldclock/internal/timefmt"
)

// Tile is the rendered state of one catalog entry.
type Tile struct {
	Flag     string
	City     string
	Country  string
	Timezone string
	Time     string
	Date     string
	Phase    daynight.Phase
}

// Builder builds tiles for a fixed catalog.
type Builder struct {
	catalog   catalog.Catalog
	formatter *timefmt.Formatter
	zones     *clock.Zones
}

// NewBuilder returns a Builder. zones may be nil.
func NewBuilder(cat catalog.Catalog, f *timefmt.Formatter, zones *clock.Zones) *Builder {
	if zones == nil {
		zones = clock.NewZones()
	}
	return &Builder{catalog: cat, formatter: f, zones: zones}
}

// Catalog returns the catalog tiles are built from.
func (b *Builder) Catalog() catalog.Catalog {
	return b.catalog
}

// Build returns one tile per catalog entry, in catalog order.
func (b *Builder) Build(s clock.Snapshot) []Tile {
	entries := b.catalog.Entries()
	tiles := make([]Tile, len(entries))
	for i, e := range entries {
		tiles[i] = Tile{
			Flag:     e.Flag,
			City:     e.City,
			Country:  e.Country,
			Timezone: e.Timezone,
			Time:     b.formatter.Time(s, e.Timezone),
			Date:     b.formatter.Date(s, e.Timezone),
			Phase:    daynight.FromSnapshot(s, e.Timezone, b.zones),
		}
	}
	return tiles
}
