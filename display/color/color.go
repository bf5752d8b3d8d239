// Package color decides whether rendered grids may carry ANSI styling.
//
// It follows the NO_COLOR convention (https://no-color.org/) and turns
// styling off when output is piped or redirected. When styling is off,
// lipgloss is switched to the Ascii profile so styled header cells render
// as plain text and the grid keeps its widths.
package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Disabled reports whether styling must be left out of output written to f.
func Disabled(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return true
	}
	if f == nil {
		return true
	}
	return !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())
}

// Apply configures the global lipgloss renderer for output to f and
// returns whether colour is enabled.
func Apply(f *os.File) bool {
	if Disabled(f) {
		ForceDisable()
		return false
	}
	return true
}

// ForceDisable switches lipgloss to plain text output.
func ForceDisable() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Strip removes every escape sequence from s.
func Strip(s string) string {
	return ansi.Strip(s)
}
