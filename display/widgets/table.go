package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/papergrid/config"
	"gitlab.com/tinyland/lab/papergrid/grid"
	"gitlab.com/tinyland/lab/papergrid/internal/format"
)

// Column defines a single table column.
type Column struct {
	// Title is the header text.
	Title string
	// MaxWidth truncates longer lines with an ellipsis. If 0, no limit.
	MaxWidth int
	// Align controls text alignment within the column.
	Align grid.AlignmentHorizontal
}

// TableConfig holds the configuration for rendering a table.
type TableConfig struct {
	// Columns defines the table structure.
	Columns []Column
	// Rows is the table data. Short rows are padded with empty cells.
	Rows [][]string
	// ShowHeader controls whether the column titles form the first row.
	ShowHeader bool
	// HeaderStyle styles the header text. Nil leaves it plain.
	HeaderStyle *lipgloss.Style
	// Style is a border style name (see config.BorderStyles).
	Style string
	// Padding is the number of spaces left and right of every cell.
	Padding int
	// Title replaces the top border line.
	Title string
	// Margin is the space around the table.
	Margin grid.Margin
}

// DefaultTableConfig returns a TableConfig with sensible defaults.
func DefaultTableConfig() TableConfig {
	return TableConfig{
		ShowHeader: true,
		Style:      config.StyleASCII,
		Padding:    1,
	}
}

// NewTable builds the grid for cfg without rendering it.
func NewTable(cfg TableConfig) (*grid.Grid, error) {
	cols := len(cfg.Columns)
	rows := len(cfg.Rows)
	offset := 0
	if cfg.ShowHeader {
		offset = 1
	}

	g := grid.New(rows+offset, cols)
	if cols == 0 || rows+offset == 0 {
		return g, nil
	}

	pad := grid.Spaced(cfg.Padding)
	if err := g.Set(grid.Global(), grid.NewSettings().Padding(pad, pad, grid.Spaced(0), grid.Spaced(0))); err != nil {
		return nil, err
	}

	for c, col := range cfg.Columns {
		if err := g.Set(grid.Column(c), grid.NewSettings().Alignment(col.Align)); err != nil {
			return nil, err
		}
		if cfg.ShowHeader {
			title := truncateLines(col.Title, col.MaxWidth)
			if cfg.HeaderStyle != nil {
				title = cfg.HeaderStyle.Render(title)
			}
			if err := g.Set(grid.Cell(0, c), grid.NewSettings().Text(title)); err != nil {
				return nil, err
			}
		}
	}

	for r, row := range cfg.Rows {
		for c, text := range row {
			if c >= cols {
				break
			}
			text = truncateLines(text, cfg.Columns[c].MaxWidth)
			if err := g.Set(grid.Cell(r+offset, c), grid.NewSettings().Text(text)); err != nil {
				return nil, err
			}
		}
	}

	if err := ApplyStyle(g, cfg.Style, cfg.ShowHeader); err != nil {
		return nil, err
	}
	if cfg.Title != "" {
		if err := g.OverrideSplitLine(0, cfg.Title); err != nil {
			return nil, err
		}
	}
	g.SetMargin(cfg.Margin)
	return g, nil
}

// RenderTable renders a formatted text table from the given configuration.
func RenderTable(cfg TableConfig) (string, error) {
	g, err := NewTable(cfg)
	if err != nil {
		return "", err
	}
	return g.String(), nil
}

// truncateLines shortens every line of s to maxWidth columns.
func truncateLines(s string, maxWidth int) string {
	if maxWidth <= 0 || format.Width(s) <= maxWidth {
		return s
	}
	lines := format.Lines(s)
	for i, line := range lines {
		lines[i] = format.TruncateWithEllipsis(line, maxWidth)
	}
	return strings.Join(lines, "\n")
}
