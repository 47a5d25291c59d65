package daynight

import (
	"testing"
	"time"

	"github.com/agent-platform/tools/worldclock/internal/clock"
)

func TestIsDaytime(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		want := hour >= 6 && hour <= 17
		if got := IsDaytime(hour); got != want {
			t.Errorf("IsDaytime(%d) = %v, want %v", hour, got, want)
		}
	}
}

func TestBoundaries(t *testing.T) {
	tests := []struct {
		hour int
		want Phase
	}{
		{5, Night},
		{6, Day},
		{17, Day},
		{18, Night},
		{0, Night},
		{23, Night},
	}
	for _, tt := range tests {
		if got := Of(tt.hour); got != tt.want {
			t.Errorf("Of(%d) = %v, want %v", tt.hour, got, tt.want)
		}
	}
}

func TestClassifyInAnyZone(t *testing.T) {
	// Every hour of a UTC day in a few zones: the phase depends only on the
	// local hour.
	for _, tz := range []string{"UTC", "Asia/Kolkata", "America/Sao_Paulo", "Pacific/Auckland"} {
		loc, err := time.LoadLocation(tz)
		if err != nil {
			t.Fatalf("LoadLocation(%s): %v", tz, err)
		}
		start := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 24; i++ {
			at := start.Add(time.Duration(i) * time.Hour)
			want := Of(at.In(loc).Hour())
			if got := Classify(at, loc); got != want {
				t.Errorf("Classify(%v, %s) = %v, want %v", at, tz, got, want)
			}
		}
	}
}

func TestFromSnapshot(t *testing.T) {
	zones := clock.NewZones()
	at := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)
	s := clock.NewSnapshot(at, []string{"Europe/London", "Asia/Tokyo"})

	if got := FromSnapshot(s, "Europe/London", zones); got != Day {
		t.Errorf("London at 09:30 = %v, want day", got)
	}
	// Tokyo is 18:30 local: 18 is outside the daytime range.
	if got := FromSnapshot(s, "Asia/Tokyo", zones); got != Night {
		t.Errorf("Tokyo at 18:30 = %v, want night", got)
	}
}

func TestFromSnapshotDefaultsToDay(t *testing.T) {
	zones := clock.NewZones()
	if got := FromSnapshot(clock.Snapshot{}, "Asia/Tokyo", zones); got != Day {
		t.Errorf("empty snapshot = %v, want day", got)
	}

	// 03:00 UTC is night in London but the zone is absent from the snapshot.
	s := clock.NewSnapshot(time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC), []string{"Asia/Dubai"})
	if got := FromSnapshot(s, "Europe/London", zones); got != Day {
		t.Errorf("absent zone = %v, want day", got)
	}
}

func TestPhaseGlyph(t *testing.T) {
	if Day.Glyph() == Night.Glyph() {
		t.Error("day and night share a glyph")
	}
	if Day.String() != "day" || Night.String() != "night" {
		t.Errorf("String() = %q/%q, want day/night", Day, Night)
	}
}
