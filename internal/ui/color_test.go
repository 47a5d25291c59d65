package ui

import (
	"strings"
	"testing"

	"github.com/agent-platform/tools/worldclock/internal/daynight"
)

func TestColorizeEnabled(t *testing.T) {
	SetColor(true)
	defer SetColor(true)

	got := colorize(Cyan, "hello")
	if !strings.HasPrefix(got, Cyan) {
		t.Errorf("colorize() missing color prefix")
	}
	if !strings.HasSuffix(got, Reset) {
		t.Errorf("colorize() missing reset suffix")
	}
}

func TestColorizeDisabled(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	if got := colorize(Cyan, "hello"); got != "hello" {
		t.Errorf("colorize() with color disabled = %q, want %q", got, "hello")
	}
}

func TestColorFunctions(t *testing.T) {
	SetColor(false)
	defer SetColor(true)

	tests := []struct {
		name string
		fn   func(string, ...any) string
	}{
		{name: "Boldf", fn: Boldf},
		{name: "Cyanf", fn: Cyanf},
		{name: "Dimf", fn: Dimf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn("hello %s", "world"); got != "hello world" {
				t.Errorf("%s() = %q, want %q", tt.name, got, "hello world")
			}
		})
	}
}

func TestPhasef(t *testing.T) {
	SetColor(true)
	defer SetColor(true)

	if got := Phasef(daynight.Day, "%02d", 9); got != Yellow+"09"+Reset {
		t.Errorf("Phasef(Day) = %q", got)
	}
	if got := Phasef(daynight.Night, "%02d", 21); got != Magenta+"21"+Reset {
		t.Errorf("Phasef(Night) = %q", got)
	}

	SetColor(false)
	if got := Phasef(daynight.Night, "moon"); got != "moon" {
		t.Errorf("Phasef with color disabled = %q, want %q", got, "moon")
	}
}
