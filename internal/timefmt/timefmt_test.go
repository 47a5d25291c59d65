package timefmt

import (
	"testing"
	"time"

	"github.com/agent-platform/tools/worldclock/internal/clock"
)

var instant = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

func newFormatter(t *testing.T, loc string) *Formatter {
	t.Helper()
	f, err := New(loc, nil)
	if err != nil {
		t.Fatalf("New(%q) unexpected error: %v", loc, err)
	}
	return f
}

func TestTime(t *testing.T) {
	zones := []string{"Europe/London", "Asia/Tokyo", "America/New_York", "America/Sao_Paulo", "Australia/Sydney"}
	s := clock.NewSnapshot(instant, zones)
	f := newFormatter(t, "pt-BR")

	tests := []struct {
		tz   string
		want string
	}{
		{"Europe/London", "09:30:00"},
		{"Asia/Tokyo", "18:30:00"},
		{"America/New_York", "04:30:00"},
		{"America/Sao_Paulo", "06:30:00"},
		{"Australia/Sydney", "20:30:00"},
	}

	for _, tt := range tests {
		t.Run(tt.tz, func(t *testing.T) {
			if got := f.Time(s, tt.tz); got != tt.want {
				t.Errorf("Time(%s) = %q, want %q", tt.tz, got, tt.want)
			}
		})
	}
}

func TestTimeIgnoresViewerZone(t *testing.T) {
	viewer := time.FixedZone("viewer", -7*3600)
	s := clock.NewSnapshot(instant.In(viewer), []string{"Asia/Tokyo"})
	f := newFormatter(t, "")

	if got := f.Time(s, "Asia/Tokyo"); got != "18:30:00" {
		t.Errorf("Time(Asia/Tokyo) = %q, want %q", got, "18:30:00")
	}
}

func TestDate(t *testing.T) {
	late := time.Date(2024, 1, 15, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		locale string
		at     time.Time
		tz     string
		want   string
	}{
		{"pt-BR", instant, "Europe/London", "seg., 15 de jan."},
		{"en-US", instant, "Europe/London", "Mon, Jan 15"},
		// UTC+9: already the next day.
		{"pt-BR", late, "Asia/Tokyo", "ter., 16 de jan."},
		{"en-US", late, "Asia/Tokyo", "Tue, Jan 16"},
		// UTC-5: still the same day.
		{"pt-BR", late, "America/New_York", "seg., 15 de jan."},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.tz, func(t *testing.T) {
			f := newFormatter(t, tt.locale)
			s := clock.NewSnapshot(tt.at, []string{tt.tz})
			if got := f.Date(s, tt.tz); got != tt.want {
				t.Errorf("Date(%s) = %q, want %q", tt.tz, got, tt.want)
			}
		})
	}
}

func TestMissingValue(t *testing.T) {
	f := newFormatter(t, "pt-BR")

	var empty clock.Snapshot
	if got := f.Time(empty, "Europe/London"); got != Placeholder {
		t.Errorf("Time before first tick = %q, want %q", got, Placeholder)
	}
	if got := f.Date(empty, "Europe/London"); got != "" {
		t.Errorf("Date before first tick = %q, want empty", got)
	}

	s := clock.NewSnapshot(instant, []string{"Asia/Tokyo"})
	if got := f.Time(s, "Europe/London"); got != Placeholder {
		t.Errorf("Time for absent zone = %q, want %q", got, Placeholder)
	}
	if got := f.Date(s, "Europe/London"); got != "" {
		t.Errorf("Date for absent zone = %q, want empty", got)
	}
}

func TestFormatInstant(t *testing.T) {
	f := newFormatter(t, "pt-BR")
	loc, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	summer := time.Date(2024, 5, 4, 22, 15, 5, 0, time.UTC)

	if got := f.FormatTime(summer, loc); got != "00:15:05" {
		t.Errorf("FormatTime = %q, want %q", got, "00:15:05")
	}
	if got := f.FormatDate(summer, loc); got != "dom., 5 de mai." {
		t.Errorf("FormatDate = %q, want %q", got, "dom., 5 de mai.")
	}
}

func TestNewLocale(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "pt-BR", false},
		{"pt-BR", "pt-BR", false},
		{"en-US", "en-US", false},
		{"en", "en-US", false},
		{"not a tag!", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f, err := New(tt.in, nil)
			if tt.wantErr {
				if err == nil {
					t.Errorf("New(%q) expected error, got nil", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%q) unexpected error: %v", tt.in, err)
			}
			if got := f.Locale(); got != tt.want {
				t.Errorf("New(%q).Locale() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
