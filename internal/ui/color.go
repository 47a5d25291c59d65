// Package ui holds ANSI styling helpers for terminal output.
package ui

import (
	"fmt"
	"os"

	"github.com/agent-platform/tools/worldclock/internal/daynight"
)

// ANSI color codes
const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Dim     = "\033[2m"
	Yellow  = "\033[33m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
)

var colorEnabled = true

func init() {
	if os.Getenv("NO_COLOR") != "" {
		colorEnabled = false
	}
}

// SetColor enables or disables color output.
func SetColor(enabled bool) {
	colorEnabled = enabled
}

func colorize(color, s string) string {
	if !colorEnabled {
		return s
	}
	return color + s + Reset
}

func Boldf(format string, a ...any) string {
	return colorize(Bold, fmt.Sprintf(format, a...))
}

func Cyanf(format string, a ...any) string {
	return colorize(Cyan, fmt.Sprintf(format, a...))
}

func Dimf(format string, a ...any) string {
	return colorize(Dim, fmt.Sprintf(format, a...))
}

// PhaseColor returns the accent color for a day/night phase: yellow for day,
// magenta for night.
func PhaseColor(p daynight.Phase) string {
	if p == daynight.Night {
		return Magenta
	}
	return Yellow
}

// Phasef formats a string in the accent color of p.
func Phasef(p daynight.Phase, format string, a ...any) string {
	return colorize(PhaseColor(p), fmt.Sprintf(format, a...))
}
