// Package daynight classifies the local hour in a timezone as day or night.
package daynight

import (
	"time"

	"github.com/agent-platform/tools/worldclock/internal/clock"
)

// Daytime is the half-open local hour range [DayStart, NightStart).
const (
	DayStart   = 6
	NightStart = 18
)

// Phase is the day/night classification of a local hour.
type Phase int

const (
	Day Phase = iota
	Night
)

func (p Phase) String() string {
	if p == Night {
		return "night"
	}
	return "day"
}

// Glyph returns the sun or moon symbol for p.
func (p Phase) Glyph() string {
	if p == Night {
		return "🌙"
	}
	return "☀️"
}

// IsDaytime reports whether a 0-23 hour falls in [DayStart, NightStart).
func IsDaytime(hour int) bool {
	return hour >= DayStart && hour < NightStart
}

// Of returns the phase for a 0-23 hour.
func Of(hour int) Phase {
	if IsDaytime(hour) {
		return Day
	}
	return Night
}

// Classify returns the phase of t's local hour in loc.
func Classify(t time.Time, loc *time.Location) Phase {
	return Of(t.In(loc).Hour())
}

// FromSnapshot classifies the instant recorded in s for tz. It returns Day
// when s has no value for tz.
func FromSnapshot(s clock.Snapshot, tz string, zones *clock.Zones) Phase {
	t, ok := zones.In(s, tz)
	if !ok {
		return Day
	}
	return Of(t.Hour())
}
