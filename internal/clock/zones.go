package clock

import (
	"fmt"
	"sync"
	"time"
)

// Zones caches resolved timezone locations. It is safe for concurrent use.
type Zones struct {
	m sync.Map // string -> *time.Location
}

// NewZones returns an empty cache.
func NewZones() *Zones {
	return &Zones{}
}

// Resolve returns the location for an IANA timezone identifier.
func (z *Zones) Resolve(tz string) (*time.Location, error) {
	if loc, ok := z.m.Load(tz); ok {
		return loc.(*time.Location), nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", tz, err)
	}
	actual, _ := z.m.LoadOrStore(tz, loc)
	return actual.(*time.Location), nil
}

// In returns the instant recorded in s for tz, expressed in tz's location.
// ok is false if s has no value for tz or tz does not resolve.
func (z *Zones) In(s Snapshot, tz string) (t time.Time, ok bool) {
	at, found := s.Lookup(tz)
	if !found {
		return time.Time{}, false
	}
	loc, err := z.Resolve(tz)
	if err != nil {
		return time.Time{}, false
	}
	return at.In(loc), true
}
