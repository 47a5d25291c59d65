// Package catalog holds the ordered list of cities shown by worldclock.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Entry is a city with its display labels and IANA timezone identifier.
type Entry struct {
	City     string
	Country  string
	Timezone string
	Flag     string
}

// Catalog is an immutable, ordered sequence of entries. Rendering order is
// declaration order. Duplicate timezones are allowed.
type Catalog struct {
	entries []Entry
}

// New returns a catalog holding a copy of entries.
func New(entries ...Entry) Catalog {
	return Catalog{entries: append([]Entry(nil), entries...)}
}

// Default returns the compiled-in catalog.
func Default() Catalog {
	return New(
		Entry{City: "São Paulo", Country: "Brasil", Timezone: "America/Sao_Paulo", Flag: "🇧🇷"},
		Entry{City: "Nova York", Country: "EUA", Timezone: "America/New_York", Flag: "🇺🇸"},
		Entry{City: "Londres", Country: "Reino Unido", Timezone: "Europe/London", Flag: "🇬🇧"},
		Entry{City: "Paris", Country: "França", Timezone: "Europe/Paris", Flag: "🇫🇷"},
		Entry{City: "Tóquio", Country: "Japão", Timezone: "Asia/Tokyo", Flag: "🇯🇵"},
		Entry{City: "Sydney", Country: "Austrália", Timezone: "Australia/Sydney", Flag: "🇦🇺"},
		Entry{City: "Dubai", Country: "Emirados", Timezone: "Asia/Dubai", Flag: "🇦🇪"},
		Entry{City: "Moscou", Country: "Rússia", Timezone: "Europe/Moscow", Flag: "🇷🇺"},
	)
}

// Entries returns a copy of the entries in declaration order.
func (c Catalog) Entries() []Entry {
	return append([]Entry(nil), c.entries...)
}

// Len returns the number of entries.
func (c Catalog) Len() int {
	return len(c.entries)
}

// Timezones returns the timezone of every entry, in order, duplicates included.
func (c Catalog) Timezones() []string {
	zones := make([]string, len(c.entries))
	for i, e := range c.entries {
		zones[i] = e.Timezone
	}
	return zones
}

// Validate checks that every timezone resolves. The returned error names
// each identifier that failed.
func (c Catalog) Validate() error {
	var errs []error
	for _, e := range c.entries {
		if _, err := time.LoadLocation(e.Timezone); err != nil {
			errs = append(errs, fmt.Errorf("%s: invalid timezone %q: %w", e.City, e.Timezone, err))
		}
	}
	return errors.Join(errs...)
}

// Select returns the entries matching names, in argument order. A name
// matches an entry's city, its timezone, or the timezone's last segment
// ("tokyo", "new york"), ignoring case and accents.
func (c Catalog) Select(names []string) (Catalog, error) {
	var selected []Entry
	var unknown []string

	for _, name := range names {
		key := fold(name)
		if key == "" {
			continue
		}
		e, ok := c.find(key)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		selected = append(selected, e)
	}

	if len(unknown) > 0 {
		return Catalog{}, fmt.Errorf("unknown city/cities: %s\nUse one of: %s",
			strings.Join(unknown, ", "), c.available())
	}
	if len(selected) == 0 {
		return Catalog{}, errors.New("no valid cities specified")
	}
	return Catalog{entries: selected}, nil
}

func (c Catalog) find(key string) (Entry, bool) {
	for _, e := range c.entries {
		if fold(e.City) == key || strings.ToLower(e.Timezone) == key || zoneCity(e.Timezone) == key {
			return e, true
		}
	}
	return Entry{}, false
}

func (c Catalog) available() string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.City
	}
	return strings.Join(names, ", ")
}

// zoneCity returns the folded last segment of an IANA name, so
// "America/New_York" yields "new york".
func zoneCity(tz string) string {
	if i := strings.LastIndex(tz, "/"); i >= 0 {
		tz = tz[i+1:]
	}
	return fold(strings.ReplaceAll(tz, "_", " "))
}

// fold lowercases s, strips diacritics and collapses whitespace.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.Join(strings.Fields(out), " "))
}
