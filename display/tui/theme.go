package tui

import "github.com/charmbracelet/lipgloss"

// Color palette for the viewer.
const (
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#06B6D4") // Cyan
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorSelected  = lipgloss.Color("#1E1B2E") // Dark purple bg
)

// Styles used throughout the viewer.
var (
	styleHeader   lipgloss.Style
	styleTitle    lipgloss.Style
	styleFooter   lipgloss.Style
	styleButton   lipgloss.Style
	styleSelected lipgloss.Style
)

func init() {
	styleTitle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSecondary)

	styleHeader = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(colorMuted)

	styleFooter = lipgloss.NewStyle().
		Foreground(colorMuted)

	styleButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(colorPrimary).
		Padding(0, 1)

	styleSelected = lipgloss.NewStyle().
		Background(colorSelected).
		Foreground(colorSecondary)
}
