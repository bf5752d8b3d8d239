package widgets

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"gitlab.com/tinyland/lab/papergrid/config"
	"gitlab.com/tinyland/lab/papergrid/grid"
)

// FromDocument builds the grid a document describes. Settings the
// document leaves unset come from defaults. headerStyle, when not nil,
// styles the header row.
func FromDocument(doc *config.Document, defaults config.RenderConfig, headerStyle *lipgloss.Style) (*grid.Grid, error) {
	rows, cols := doc.Size()
	g := grid.New(rows, cols)

	maxWidth := make([]int, cols)
	for _, c := range doc.Columns {
		maxWidth[c.Index] = c.MaxWidth
	}

	if err := g.Set(grid.Global(), documentSettings(doc, defaults)); err != nil {
		return nil, fmt.Errorf("widgets: document defaults: %w", err)
	}

	offset := 0
	if len(doc.Header) > 0 {
		offset = 1
		for c, title := range doc.Header {
			title = truncateLines(title, maxWidth[c])
			if headerStyle != nil {
				title = headerStyle.Render(title)
			}
			if err := g.Set(grid.Cell(0, c), grid.NewSettings().Text(title)); err != nil {
				return nil, err
			}
		}
	}
	for r, row := range doc.Rows {
		for c, text := range row {
			if err := g.Set(grid.Cell(r+offset, c), grid.NewSettings().Text(truncateLines(text, maxWidth[c]))); err != nil {
				return nil, err
			}
		}
	}

	for _, c := range doc.Columns {
		if c.Align == "" {
			continue
		}
		if err := g.Set(grid.Column(c.Index), grid.NewSettings().Alignment(parseAlign(c.Align))); err != nil {
			return nil, fmt.Errorf("widgets: column %d: %w", c.Index, err)
		}
	}

	for _, c := range doc.Cells {
		s := grid.NewSettings()
		if c.Text != nil {
			s = s.Text(truncateLines(*c.Text, maxWidth[c.Col]))
		}
		if c.Align != "" {
			s = s.Alignment(parseAlign(c.Align))
		}
		if c.VAlign != "" {
			s = s.VerticalAlignment(parseVAlign(c.VAlign))
		}
		if c.Span != nil {
			s = s.Span(*c.Span)
		}
		if err := g.Set(grid.Cell(c.Row, c.Col), s); err != nil {
			return nil, fmt.Errorf("widgets: cell (%d,%d): %w", c.Row, c.Col, err)
		}
	}

	style := doc.Style
	if style == "" {
		style = defaults.Style
	}
	if err := ApplyStyle(g, style, len(doc.Header) > 0); err != nil {
		return nil, err
	}
	if doc.Title != "" {
		if err := g.OverrideSplitLine(0, doc.Title); err != nil {
			return nil, err
		}
	}
	if m := doc.Margin; m != nil {
		fill := ' '
		if m.Fill != "" {
			fill = []rune(m.Fill)[0]
		}
		g.SetMargin(grid.Margin{
			Top:    grid.NewIndent(m.Top, fill),
			Bottom: grid.NewIndent(m.Bottom, fill),
			Left:   grid.NewIndent(m.Left, fill),
			Right:  grid.NewIndent(m.Right, fill),
		})
	}
	return g, nil
}

func documentSettings(doc *config.Document, defaults config.RenderConfig) grid.Settings {
	padding := defaults.Padding
	if doc.Padding != nil {
		padding = *doc.Padding
	}
	tabWidth := defaults.TabWidth
	if doc.TabWidth != nil {
		tabWidth = *doc.TabWidth
	}

	pad := grid.Spaced(padding)
	return grid.NewSettings().
		Padding(pad, pad, grid.Spaced(0), grid.Spaced(0)).
		Alignment(parseAlign(doc.Align)).
		VerticalAlignment(parseVAlign(doc.VAlign)).
		Formatting(grid.Formatting{
			HorizontalTrim:      doc.Trim.Horizontal,
			VerticalTrim:        doc.Trim.Vertical,
			AllowLinesAlignment: doc.LinesAlignment,
			TabWidth:            tabWidth,
		})
}

func parseAlign(s string) grid.AlignmentHorizontal {
	switch s {
	case "center":
		return grid.AlignCenter
	case "right":
		return grid.AlignRight
	default:
		return grid.AlignLeft
	}
}

func parseVAlign(s string) grid.AlignmentVertical {
	switch s {
	case "middle":
		return grid.AlignMiddle
	case "bottom":
		return grid.AlignBottom
	default:
		return grid.AlignTop
	}
}
