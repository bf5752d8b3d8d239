package grid

import (
	"log/slog"
	"strings"

	"gitlab.com/tinyland/lab/papergrid/internal/format"
)

// cellLayout is a cell as the renderer sees it: prepared lines and the
// resolved style with a normalized span.
type cellLayout struct {
	lines      []string
	blockWidth int
	style      Style
}

// layout is an immutable snapshot of a grid taken for one render.
type layout struct {
	rows, cols int
	cells      [][]cellLayout
	widths     [][]int
	heights    []int
	columns    []int
	borders    *Borders
	logger     *slog.Logger
}

func (g *Grid) layout() *layout {
	l := &layout{
		rows:    g.rows,
		cols:    g.cols,
		cells:   make([][]cellLayout, g.rows),
		borders: g.borders,
		logger:  g.logger,
	}
	for row := 0; row < g.rows; row++ {
		cells := make([]cellLayout, g.cols)
		for col := 0; col < g.cols; col++ {
			st := g.styles.resolve(Cell(row, col))
			cells[col] = prepareCell(g.cells[row][col], st)
		}
		normalizeSpans(row, cells, g.logger)
		l.cells[row] = cells
	}
	l.resolveWidths()
	l.resolveHeights()
	l.resolveColumns()
	return l
}

func prepareCell(text string, st Style) cellLayout {
	f := st.Formatting
	lines := format.Lines(format.ExpandTabs(text, f.TabWidth))
	if f.VerticalTrim {
		lines = format.TrimBlankLines(lines)
	}
	if f.HorizontalTrim {
		for i, line := range lines {
			lines[i] = strings.TrimSpace(line)
		}
	}
	block := 0
	for _, line := range lines {
		if w := format.Width(line); w > block {
			block = w
		}
	}
	return cellLayout{lines: lines, blockWidth: block, style: st}
}

func (c *cellLayout) visible() bool { return c.style.Span > 0 }

func (c *cellLayout) span() int { return c.style.Span }

// contentWidth is the width the cell needs: its widest line plus the left
// and right padding.
func (c *cellLayout) contentWidth() int {
	return c.blockWidth + c.style.Padding.Left.size() + c.style.Padding.Right.size()
}

// contentHeight is the number of lines plus the top and bottom padding.
func (c *cellLayout) contentHeight() int {
	return len(c.lines) + c.style.Padding.Top.size() + c.style.Padding.Bottom.size()
}

// splitsWithin counts the vertical splits strictly inside [start, end).
func (l *layout) splitsWithin(start, end int) int {
	n := 0
	for col := start + 1; col < end; col++ {
		if l.borders.HasVertical(col) {
			n++
		}
	}
	return n
}

func (l *layout) resolveHeights() {
	l.heights = make([]int, l.rows)
	for row := range l.cells {
		h := 0
		for col := range l.cells[row] {
			c := &l.cells[row][col]
			if !c.visible() {
				continue
			}
			if ch := c.contentHeight(); ch > h {
				h = ch
			}
		}
		if h < 1 {
			h = 1
		}
		l.heights[row] = h
	}
}

// resolveColumns derives one width per column from the per-cell widths.
// Each column takes the width of the cell with the smallest span starting
// there, minus the splits inside that span, and hands any surplus to the
// columns it covers in turn.
func (l *layout) resolveColumns() {
	l.columns = make([]int, l.cols)
	for col := 0; col < l.cols; {
		row, span := -1, 0
		for r := 0; r < l.rows; r++ {
			s := l.cells[r][col].span()
			if s > 0 && (row == -1 || s < span) {
				row, span = r, s
			}
		}
		if row == -1 {
			col++
			continue
		}
		width := l.widths[row][col] - l.splitsWithin(col, col+span)
		if width < 0 {
			width = 0
		}
		base, rest := width/span, width%span
		for i := 0; i < span; i++ {
			l.columns[col+i] = base
			if i < rest {
				l.columns[col+i]++
			}
		}
		col += span
	}
}
