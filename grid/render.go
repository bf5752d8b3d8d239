package grid

import (
	"io"
	"strings"

	"gitlab.com/tinyland/lab/papergrid/internal/format"
)

// LineKind tells what a rendered line is made of.
type LineKind uint8

const (
	LineMargin LineKind = iota
	LineBorder
	LineContent
)

func (k LineKind) String() string {
	switch k {
	case LineBorder:
		return "border"
	case LineContent:
		return "content"
	default:
		return "margin"
	}
}

// Line is one rendered line of a grid.
type Line struct {
	Text string
	Kind LineKind
	// Row is the grid row of a content line, the row boundary of a border
	// line and -1 for margin lines.
	Row int
}

// String renders the grid. Every line, the last included, ends with a
// newline. A grid with no rows or no columns renders as "".
func (g *Grid) String() string {
	lines := g.Lines()
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line.Text)
		b.WriteByte('\n')
	}
	return b.String()
}

// Render writes the rendered grid to w.
func (g *Grid) Render(w io.Writer) error {
	_, err := io.WriteString(w, g.String())
	return err
}

// Lines renders the grid line by line.
func (g *Grid) Lines() []Line {
	if g.rows == 0 || g.cols == 0 {
		return nil
	}
	r := &renderer{layout: g.layout(), margin: g.margin, overrides: g.overrides}
	return r.render()
}

type renderer struct {
	*layout
	margin    Margin
	overrides map[int]string
	lines     []Line
}

func (r *renderer) render() []Line {
	width := r.totalWidth()
	for i := 0; i < r.margin.Top.size(); i++ {
		r.emit(strings.Repeat(string(r.margin.Top.fill()), width), LineMargin, -1)
	}
	r.borderLine(0)
	for row := 0; row < r.rows; row++ {
		for i := 0; i < r.heights[row]; i++ {
			r.contentLine(row, i)
		}
		r.borderLine(row + 1)
	}
	for i := 0; i < r.margin.Bottom.size(); i++ {
		r.emit(strings.Repeat(string(r.margin.Bottom.fill()), width), LineMargin, -1)
	}
	return r.lines
}

// totalWidth is the printed width of the border lines plus the left and
// right margins. Content lines of rows whose spans collide may be shorter.
func (r *renderer) totalWidth() int {
	w := r.margin.Left.size() + r.margin.Right.size()
	for _, cw := range r.columns {
		w += cw
	}
	for col := 0; col <= r.cols; col++ {
		if r.borders.HasVertical(col) {
			w++
		}
	}
	return w
}

func (r *renderer) emit(text string, kind LineKind, row int) {
	if kind != LineMargin {
		var b strings.Builder
		format.Repeat(&b, r.margin.Left.fill(), r.margin.Left.size())
		b.WriteString(text)
		format.Repeat(&b, r.margin.Right.fill(), r.margin.Right.size())
		text = b.String()
	}
	r.lines = append(r.lines, Line{Text: text, Kind: kind, Row: row})
}

// borderLine prints the split at row boundary. Override text replaces
// the printed symbols one by one.
func (r *renderer) borderLine(boundary int) {
	line, ok := r.borders.horizontal[boundary]
	if !ok {
		return
	}
	override := []rune(r.overrides[boundary])
	next := func(c rune) rune {
		if len(override) > 0 {
			c, override = override[0], override[1:]
		}
		return c
	}

	var b strings.Builder
	for col := 0; col < r.cols; col++ {
		if c := r.borders.intersection(boundary, col); c != 0 {
			b.WriteRune(next(c))
		}
		if main := line[col]; main != 0 {
			for i := 0; i < r.columns[col]; i++ {
				b.WriteRune(next(main))
			}
		}
	}
	if c := r.borders.intersection(boundary, r.cols); c != 0 {
		b.WriteRune(next(c))
	}
	r.emit(b.String(), LineBorder, boundary)
}

func (r *renderer) contentLine(row, index int) {
	var b strings.Builder
	for col := 0; col < r.cols; col++ {
		c := &r.cells[row][col]
		if !c.visible() {
			continue
		}
		if v := r.borders.verticalSymbol(row, col); v != 0 {
			b.WriteRune(v)
		}
		r.writeCell(&b, c, index, r.widths[row][col], r.heights[row])
	}
	if v := r.borders.verticalSymbol(row, r.cols); v != 0 {
		b.WriteRune(v)
	}
	r.emit(b.String(), LineContent, row)
}

// writeCell prints line index of a cell that is width characters wide and
// height lines tall.
func (r *renderer) writeCell(b *strings.Builder, c *cellLayout, index, width, height int) {
	pad := c.style.Padding
	top := topIndent(c, height)
	if index < top {
		format.Repeat(b, pad.Top.fill(), width)
		return
	}
	index -= top
	if index >= len(c.lines) {
		format.Repeat(b, pad.Bottom.fill(), width)
		return
	}

	available := width - pad.Left.size() - pad.Right.size()
	if available < 0 {
		available = 0
	}
	text := c.lines[index]
	if !c.style.Formatting.AllowLinesAlignment {
		if diff := c.blockWidth - format.Width(text); diff > 0 {
			text += strings.Repeat(" ", diff)
		}
	}

	format.Repeat(b, pad.Left.fill(), pad.Left.size())
	align(b, text, available, c.style.AlignH)
	format.Repeat(b, pad.Right.fill(), pad.Right.size())
}

// topIndent is the number of lines printed above the cell text. Bottom
// padding is not reserved: it only fills what the text leaves over.
func topIndent(c *cellLayout, height int) int {
	pad := c.style.Padding
	free := height - pad.Top.size() - len(c.lines)
	if free < 0 {
		free = 0
	}
	switch c.style.AlignV {
	case AlignBottom:
		return pad.Top.size() + free
	case AlignMiddle:
		return pad.Top.size() + free/2
	default:
		return pad.Top.size()
	}
}

func align(b *strings.Builder, text string, width int, a AlignmentHorizontal) {
	diff := width - format.Width(text)
	if diff < 0 {
		diff = 0
	}
	switch a {
	case AlignRight:
		format.Repeat(b, ' ', diff)
		b.WriteString(text)
	case AlignCenter:
		left := diff / 2
		format.Repeat(b, ' ', left)
		b.WriteString(text)
		format.Repeat(b, ' ', diff-left)
	default:
		b.WriteString(text)
		format.Repeat(b, ' ', diff)
	}
}
