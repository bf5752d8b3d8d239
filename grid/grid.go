package grid

import (
	"fmt"
	"io"
	"log/slog"
)

// Grid is a rows x columns text grid. The zero value is not usable; call New.
//
// A Grid is not safe for concurrent mutation, but rendering only reads it.
type Grid struct {
	rows, cols int
	cells      [][]string
	styles     *styleStore
	borders    *Borders
	margin     Margin
	overrides  map[int]string
	logger     *slog.Logger
}

// New returns an empty grid with no split lines and default styles.
func New(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	cells := make([][]string, rows)
	for i := range cells {
		cells[i] = make([]string, cols)
	}
	return &Grid{
		rows:      rows,
		cols:      cols,
		cells:     cells,
		styles:    newStyleStore(rows, cols),
		borders:   NewBorders(rows, cols),
		margin:    Margin{Top: Spaced(0), Bottom: Spaced(0), Left: Spaced(0), Right: Spaced(0)},
		overrides: make(map[int]string),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger sets the logger used to report layout repairs. A nil logger
// discards everything.
func (g *Grid) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	g.logger = logger
}

// CountRows returns the number of rows.
func (g *Grid) CountRows() int { return g.rows }

// CountColumns returns the number of columns.
func (g *Grid) CountColumns() int { return g.cols }

// Set applies settings to entity. Changes are applied in order: text,
// padding, alignments, span, formatting and border. The first failing
// change stops the update and earlier changes stay applied.
func (g *Grid) Set(entity Entity, settings Settings) error {
	if err := entity.validate(g.rows, g.cols); err != nil {
		return err
	}

	if settings.text != nil {
		g.setText(entity, *settings.text)
	}

	if settings.span != nil {
		if err := g.checkSpan(entity, *settings.span); err != nil {
			head := settings
			head.span, head.hTrim, head.vTrim, head.linesAlign, head.tabWidth = nil, nil, nil, nil, nil
			if head.hasStyle() {
				g.styles.mutate(entity, head.apply)
			}
			return err
		}
	}

	if settings.hasStyle() {
		g.styles.mutate(entity, settings.apply)
	}

	if settings.border != nil {
		f := entity.frame(g.rows, g.cols)
		if settings.createSplits {
			if err := g.addSplitsForBorder(f, *settings.border); err != nil {
				return err
			}
		}
		if err := g.setBorder(f, *settings.border); err != nil {
			return err
		}
	}
	return nil
}

func (g *Grid) setText(e Entity, text string) {
	f := e.frame(g.rows, g.cols)
	for r := f.top; r < f.bottom; r++ {
		for c := f.left; c < f.right; c++ {
			g.cells[r][c] = text
		}
	}
}

// checkSpan rejects spans that would reach past the last column.
// Row and global spans are clamped per cell at layout time instead.
func (g *Grid) checkSpan(e Entity, span int) error {
	if span < 0 {
		return fmt.Errorf("grid: %s: span %d: %w", e, span, ErrSpanOutOfRange)
	}
	switch e.Kind {
	case KindCell, KindColumn:
		if e.Col+span > g.cols {
			return fmt.Errorf("grid: %s: span %d over %d columns: %w", e, span, g.cols, ErrSpanOutOfRange)
		}
	}
	return nil
}

func (g *Grid) addSplitsForBorder(f frame, b Border) error {
	if b.Left != 0 || b.TopLeft != 0 || b.BottomLeft != 0 {
		if err := g.borders.AddVertical(f.left); err != nil {
			return err
		}
	}
	if b.Right != 0 || b.TopRight != 0 || b.BottomRight != 0 {
		if err := g.borders.AddVertical(f.right); err != nil {
			return err
		}
	}
	if b.Top != 0 || b.TopLeft != 0 || b.TopRight != 0 {
		if err := g.borders.AddHorizontal(f.top); err != nil {
			return err
		}
	}
	if b.Bottom != 0 || b.BottomLeft != 0 || b.BottomRight != 0 {
		if err := g.borders.AddHorizontal(f.bottom); err != nil {
			return err
		}
	}
	return nil
}

// setBorder writes b onto the outline of f. Every split the border needs
// is checked before anything is written.
func (g *Grid) setBorder(f frame, b Border) error {
	need := func(ok bool, what string, idx int, sentinel error) error {
		if ok {
			return nil
		}
		return fmt.Errorf("grid: border: %s %d is not split: %w", what, idx, sentinel)
	}
	checks := []error{}
	if b.Top != 0 {
		checks = append(checks, need(g.borders.HasHorizontal(f.top), "row boundary", f.top, ErrWrongRowIndex))
	}
	if b.Bottom != 0 {
		checks = append(checks, need(g.borders.HasHorizontal(f.bottom), "row boundary", f.bottom, ErrWrongRowIndex))
	}
	if b.Left != 0 {
		checks = append(checks, need(g.borders.HasVertical(f.left), "column boundary", f.left, ErrWrongColumnIndex))
	}
	if b.Right != 0 {
		checks = append(checks, need(g.borders.HasVertical(f.right), "column boundary", f.right, ErrWrongColumnIndex))
	}
	corners := []struct {
		c        rune
		row, col int
	}{
		{b.TopLeft, f.top, f.left},
		{b.TopRight, f.top, f.right},
		{b.BottomLeft, f.bottom, f.left},
		{b.BottomRight, f.bottom, f.right},
	}
	for _, corner := range corners {
		if corner.c == 0 {
			continue
		}
		checks = append(checks,
			need(g.borders.HasHorizontal(corner.row), "row boundary", corner.row, ErrWrongRowIndex),
			need(g.borders.HasVertical(corner.col), "column boundary", corner.col, ErrWrongColumnIndex))
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}

	// A frame wider or taller than one cell continues its line through
	// the inner intersections.
	if b.Top != 0 {
		g.setRowLine(f.top, f, b.Top)
	}
	if b.Bottom != 0 {
		g.setRowLine(f.bottom, f, b.Bottom)
	}
	if b.Left != 0 {
		g.setColumnLine(f.left, f, b.Left)
	}
	if b.Right != 0 {
		g.setColumnLine(f.right, f, b.Right)
	}
	for _, corner := range corners {
		if corner.c != 0 {
			_ = g.borders.SetIntersection(corner.row, corner.col, corner.c)
		}
	}
	return nil
}

func (g *Grid) setRowLine(row int, f frame, c rune) {
	for col := f.left; col < f.right; col++ {
		_ = g.borders.SetRowSymbol(row, col, c)
		if f.right-f.left > 1 && g.borders.hasIntersection(row, col) {
			g.borders.intersections[position{row, col}] = c
		}
	}
}

func (g *Grid) setColumnLine(col int, f frame, c rune) {
	for row := f.top; row < f.bottom; row++ {
		_ = g.borders.SetColumnSymbol(row, col, c)
		if f.bottom-f.top > 1 && g.borders.hasIntersection(row, col) {
			g.borders.intersections[position{row, col}] = c
		}
	}
}

// SetMargin sets the space printed around the grid.
func (g *Grid) SetMargin(m Margin) { g.margin = m }

// Margin returns the current margin.
func (g *Grid) Margin() Margin { return g.margin }

// AddHorizontalSplit splits row boundary row (0..rows) with spaces unless
// it is already split.
func (g *Grid) AddHorizontalSplit(row int) error { return g.borders.AddHorizontal(row) }

// AddVerticalSplit splits column boundary col (0..cols) with spaces unless
// it is already split.
func (g *Grid) AddVerticalSplit(col int) error { return g.borders.AddVertical(col) }

// InsertHorizontalSplit replaces the split at row boundary row.
// See Borders.InsertHorizontal for the expected symbol counts.
func (g *Grid) InsertHorizontalSplit(row int, line, intersections []rune) error {
	return g.borders.InsertHorizontal(row, line, intersections)
}

// InsertVerticalSplit replaces the split at column boundary col.
func (g *Grid) InsertVerticalSplit(col int, line, intersections []rune) error {
	return g.borders.InsertVertical(col, line, intersections)
}

// AddGridSplit splits every row and column boundary.
func (g *Grid) AddGridSplit() {
	for row := 0; row <= g.rows; row++ {
		_ = g.borders.AddHorizontal(row)
	}
	for col := 0; col <= g.cols; col++ {
		_ = g.borders.AddVertical(col)
	}
}

// ClearSplitGrid removes every split line.
func (g *Grid) ClearSplitGrid() { g.borders.Clear() }

// SetCellBorders splits every boundary and draws b around each cell.
func (g *Grid) SetCellBorders(b Border) {
	g.AddGridSplit()
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			_ = g.setBorder(Cell(row, col).frame(g.rows, g.cols), b)
		}
	}
}

// Border returns the symbols currently stored around a cell.
func (g *Grid) Border(row, col int) (Border, error) { return g.borders.Border(row, col) }

// Style returns the style entity resolves to.
func (g *Grid) Style(entity Entity) (Style, error) {
	if err := entity.validate(g.rows, g.cols); err != nil {
		return Style{}, err
	}
	return g.styles.resolve(entity), nil
}

// CellContent returns the raw text of a cell.
func (g *Grid) CellContent(row, col int) (string, error) {
	if err := Cell(row, col).validate(g.rows, g.cols); err != nil {
		return "", err
	}
	return g.cells[row][col], nil
}

// CellSettings returns settings that reproduce the cell at row, col: its
// text, resolved style and surrounding border.
func (g *Grid) CellSettings(row, col int) (Settings, error) {
	if err := Cell(row, col).validate(g.rows, g.cols); err != nil {
		return Settings{}, err
	}
	st := g.styles.resolve(Cell(row, col))
	border, err := g.borders.Border(row, col)
	if err != nil {
		return Settings{}, err
	}
	return NewSettings().
		Text(g.cells[row][col]).
		Padding(st.Padding.Left, st.Padding.Right, st.Padding.Top, st.Padding.Bottom).
		Alignment(st.AlignH).
		VerticalAlignment(st.AlignV).
		Span(st.Span).
		Formatting(st.Formatting).
		Border(border), nil
}

// OverrideSplitLine replaces the symbols of the split at row boundary row
// with the characters of text, one per printed position. When text runs
// out the regular symbols are used.
func (g *Grid) OverrideSplitLine(row int, text string) error {
	if row < 0 || row > g.rows {
		return fmt.Errorf("grid: override split line %d: %w", row, ErrWrongRowIndex)
	}
	g.overrides[row] = text
	return nil
}

// ClearOverrideSplitLines drops every split line override.
func (g *Grid) ClearOverrideSplitLines() { clear(g.overrides) }

// Extract copies rows [rowStart, rowEnd) and columns [colStart, colEnd)
// into a new grid. Split lines, intersections and the margin inside the
// region are copied, and every cell receives its resolved settings with
// spans clipped to the region.
func (g *Grid) Extract(rowStart, rowEnd, colStart, colEnd int) (*Grid, error) {
	if rowStart < 0 || rowEnd > g.rows || rowStart > rowEnd {
		return nil, fmt.Errorf("grid: extract rows [%d,%d): %w", rowStart, rowEnd, ErrWrongRowIndex)
	}
	if colStart < 0 || colEnd > g.cols || colStart > colEnd {
		return nil, fmt.Errorf("grid: extract columns [%d,%d): %w", colStart, colEnd, ErrWrongColumnIndex)
	}

	out := New(rowEnd-rowStart, colEnd-colStart)
	out.margin = g.margin
	out.logger = g.logger
	out.borders.copyRegion(g.borders, rowStart, rowEnd, colStart, colEnd)
	if colStart == 0 && colEnd == g.cols {
		for row, text := range g.overrides {
			if row >= rowStart && row <= rowEnd {
				out.overrides[row-rowStart] = text
			}
		}
	}

	for row := rowStart; row < rowEnd; row++ {
		for col := colStart; col < colEnd; col++ {
			s, err := g.CellSettings(row, col)
			if err != nil {
				return nil, err
			}
			if *s.span > colEnd-col {
				s = s.Span(colEnd - col)
			}
			if err := out.Set(Cell(row-rowStart, col-colStart), s.BorderRestriction(true)); err != nil {
				return nil, fmt.Errorf("grid: extract cell (%d,%d): %w", row, col, err)
			}
		}
	}
	return out, nil
}
