// Package theme centralizes terminal styling for occ output.
package theme

import (
	"os"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Theme holds the lipgloss styles used for CLI output.
type Theme struct {
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Dim     lipgloss.Style
	Bold    lipgloss.Style
}

var forceNoColor atomic.Bool

// SetNoColor forces plain output regardless of terminal detection.
// Wired to the --no-color flag.
func SetNoColor(v bool) { forceNoColor.Store(v) }

// NoColorEnabled reports whether styling should be suppressed.
func NoColorEnabled() bool {
	if forceNoColor.Load() {
		return true
	}
	if os.Getenv("OCC_NO_COLOR") != "" || os.Getenv("NO_COLOR") != "" {
		return true
	}
	if termenv.EnvColorProfile() == termenv.Ascii {
		return true
	}
	return !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Current returns the active theme. With color disabled every style is a
// no-op so output stays grep-friendly.
func Current() Theme {
	if NoColorEnabled() {
		plain := lipgloss.NewStyle()
		return Theme{
			Success: plain,
			Warning: plain,
			Error:   plain,
			Dim:     plain,
			Bold:    plain,
		}
	}
	return Theme{
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Dim:     lipgloss.NewStyle().Faint(true),
		Bold:    lipgloss.NewStyle().Bold(true),
	}
}
