// Package clock produces snapshots of the current instant for a set of
// timezones and republishes them on a fixed cadence.
package clock

import (
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
)

// Snapshot maps timezone identifiers to the instant read on one tick. Every
// timezone in a snapshot holds the same instant. The zero value is the empty
// snapshot that exists before the first tick.
type Snapshot struct {
	taken time.Time
	zones map[string]time.Time
}

// NewSnapshot records now for every timezone.
func NewSnapshot(now time.Time, timezones []string) Snapshot {
	zones := make(map[string]time.Time, len(timezones))
	for _, tz := range timezones {
		zones[tz] = now
	}
	return Snapshot{taken: now, zones: zones}
}

// Take reads clk once and builds a snapshot for timezones.
func Take(clk clockwork.Clock, timezones []string) Snapshot {
	return NewSnapshot(clk.Now(), timezones)
}

// Lookup returns the instant recorded for tz.
func (s Snapshot) Lookup(tz string) (time.Time, bool) {
	t, ok := s.zones[tz]
	return t, ok
}

// Taken returns the instant the snapshot was built from, or the zero time
// for the empty snapshot.
func (s Snapshot) Taken() time.Time {
	return s.taken
}

// Empty reports whether the snapshot holds no values.
func (s Snapshot) Empty() bool {
	return len(s.zones) == 0
}

// Len returns the number of distinct timezones in the snapshot.
func (s Snapshot) Len() int {
	return len(s.zones)
}

// Latest holds the most recently published snapshot for readers on other
// goroutines.
type Latest struct {
	p atomic.Pointer[Snapshot]
}

// Store replaces the held snapshot.
func (l *Latest) Store(s Snapshot) {
	l.p.Store(&s)
}

// Load returns the held snapshot, or the empty snapshot if none was stored.
func (l *Latest) Load() Snapshot {
	if s := l.p.Load(); s != nil {
		return *s
	}
	return Snapshot{}
}
