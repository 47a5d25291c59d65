// Package timefmt renders snapshot instants as localized wall-clock time and
// short date strings for a target timezone.
package timefmt

import (
	"time"

	"github.com/agent-platform/tools/worldclock/internal/clock"
)

// Placeholder is shown instead of a time when no value is available yet.
const Placeholder = "--:--:--"

const timeLayout = "15:04:05"

// Formatter formats instants in a fixed display locale.
type Formatter struct {
	locale locale
	zones  *clock.Zones
}

// New returns a Formatter for the display locale closest to the BCP 47 tag
// loc. An empty loc selects DefaultLocale. zones may be nil.
func New(loc string, zones *clock.Zones) (*Formatter, error) {
	l, err := matchLocale(loc)
	if err != nil {
		return nil, err
	}
	if zones == nil {
		zones = clock.NewZones()
	}
	return &Formatter{locale: l, zones: zones}, nil
}

// Locale returns the tag of the display locale in use.
func (f *Formatter) Locale() string {
	return f.locale.tag.String()
}

// Time returns the 24-hour wall-clock time in tz for the instant recorded in
// s, or Placeholder if s has no value for tz.
func (f *Formatter) Time(s clock.Snapshot, tz string) string {
	t, ok := f.zones.In(s, tz)
	if !ok {
		return Placeholder
	}
	return t.Format(timeLayout)
}

// Date returns the short date in tz for the instant recorded in s, or an
// empty string if s has no value for tz.
func (f *Formatter) Date(s clock.Snapshot, tz string) string {
	t, ok := f.zones.In(s, tz)
	if !ok {
		return ""
	}
	return f.locale.formatDate(t)
}

// FormatTime formats t as wall-clock time in loc.
func (f *Formatter) FormatTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(timeLayout)
}

// FormatDate formats t as a short date in loc.
func (f *Formatter) FormatDate(t time.Time, loc *time.Location) string {
	return f.locale.formatDate(t.In(loc))
}
