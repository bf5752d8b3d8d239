package grid

import (
	"fmt"
	"sort"
)

// Border holds the symbols around one cell or frame. A zero rune means
// the side is not set.
type Border struct {
	Top, Bottom, Left, Right                   rune
	TopLeft, TopRight, BottomLeft, BottomRight rune
}

// DefaultCellBorder is the classic ASCII box.
var DefaultCellBorder = Border{
	Top:         '-',
	Bottom:      '-',
	Left:        '|',
	Right:       '|',
	TopLeft:     '+',
	TopRight:    '+',
	BottomLeft:  '+',
	BottomRight: '+',
}

// FilledBorder uses c for every side and corner.
func FilledBorder(c rune) Border {
	return Border{
		Top: c, Bottom: c, Left: c, Right: c,
		TopLeft: c, TopRight: c, BottomLeft: c, BottomRight: c,
	}
}

// IsEmpty reports whether no symbol is set.
func (b Border) IsEmpty() bool { return b == Border{} }

// lineSpaced is the symbol used for a split line added without explicit symbols.
const lineSpaced = ' '

type position struct {
	row, col int
}

// Borders stores the split lines of a grid. A horizontal split sits on a
// row boundary (0..rows) and carries one symbol per column; a vertical
// split sits on a column boundary (0..cols) and carries one symbol per
// row. Where a horizontal and a vertical split cross there is an
// intersection symbol.
type Borders struct {
	rows, cols    int
	horizontal    map[int][]rune
	vertical      map[int][]rune
	intersections map[position]rune
}

// NewBorders returns an empty border store for a rows x cols grid.
func NewBorders(rows, cols int) *Borders {
	return &Borders{
		rows:          rows,
		cols:          cols,
		horizontal:    make(map[int][]rune),
		vertical:      make(map[int][]rune),
		intersections: make(map[position]rune),
	}
}

// HasHorizontal reports whether row boundary row is split.
func (b *Borders) HasHorizontal(row int) bool {
	_, ok := b.horizontal[row]
	return ok
}

// HasVertical reports whether column boundary col is split.
func (b *Borders) HasVertical(col int) bool {
	_, ok := b.vertical[col]
	return ok
}

// NeedHorizontalIntersections is the number of intersection symbols
// InsertHorizontal expects.
func (b *Borders) NeedHorizontalIntersections() int { return len(b.vertical) + 1 }

// NeedVerticalIntersections is the number of intersection symbols
// InsertVertical expects.
func (b *Borders) NeedVerticalIntersections() int { return len(b.horizontal) + 1 }

// InsertHorizontal sets the split at row boundary row, replacing any
// existing one. line holds one symbol per column. intersections holds one
// symbol per existing vertical split in ascending boundary order, plus one
// spare that is not used.
func (b *Borders) InsertHorizontal(row int, line, intersections []rune) error {
	if row < 0 || row > b.rows {
		return fmt.Errorf("grid: horizontal split %d: %w", row, ErrWrongRowIndex)
	}
	if len(line) != b.cols {
		return fmt.Errorf("grid: horizontal split %d: got %d symbols for %d columns: %w",
			row, len(line), b.cols, ErrWrongLineSymbols)
	}
	if len(intersections) != b.NeedHorizontalIntersections() {
		return fmt.Errorf("grid: horizontal split %d: got %d intersections, need %d: %w",
			row, len(intersections), b.NeedHorizontalIntersections(), ErrWrongIntersectionSymbols)
	}
	for i, col := range b.verticalBoundaries() {
		b.intersections[position{row, col}] = intersections[i]
	}
	b.horizontal[row] = append([]rune(nil), line...)
	return nil
}

// InsertVertical sets the split at column boundary col, replacing any
// existing one. It mirrors InsertHorizontal.
func (b *Borders) InsertVertical(col int, line, intersections []rune) error {
	if col < 0 || col > b.cols {
		return fmt.Errorf("grid: vertical split %d: %w", col, ErrWrongColumnIndex)
	}
	if len(line) != b.rows {
		return fmt.Errorf("grid: vertical split %d: got %d symbols for %d rows: %w",
			col, len(line), b.rows, ErrWrongLineSymbols)
	}
	if len(intersections) != b.NeedVerticalIntersections() {
		return fmt.Errorf("grid: vertical split %d: got %d intersections, need %d: %w",
			col, len(intersections), b.NeedVerticalIntersections(), ErrWrongIntersectionSymbols)
	}
	for i, row := range b.horizontalBoundaries() {
		b.intersections[position{row, col}] = intersections[i]
	}
	b.vertical[col] = append([]rune(nil), line...)
	return nil
}

// AddHorizontal splits row boundary row with spaces if it is not split yet.
func (b *Borders) AddHorizontal(row int) error {
	if row < 0 || row > b.rows {
		return fmt.Errorf("grid: horizontal split %d: %w", row, ErrWrongRowIndex)
	}
	if b.HasHorizontal(row) {
		return nil
	}
	return b.InsertHorizontal(row, spaced(b.cols), spaced(b.NeedHorizontalIntersections()))
}

// AddVertical splits column boundary col with spaces if it is not split yet.
func (b *Borders) AddVertical(col int) error {
	if col < 0 || col > b.cols {
		return fmt.Errorf("grid: vertical split %d: %w", col, ErrWrongColumnIndex)
	}
	if b.HasVertical(col) {
		return nil
	}
	return b.InsertVertical(col, spaced(b.rows), spaced(b.NeedVerticalIntersections()))
}

// SetRowSymbol sets the symbol of horizontal split row above column col.
func (b *Borders) SetRowSymbol(row, col int, c rune) error {
	line, ok := b.horizontal[row]
	if !ok {
		return fmt.Errorf("grid: row symbol (%d,%d): %w", row, col, ErrWrongRowIndex)
	}
	if col < 0 || col >= len(line) {
		return fmt.Errorf("grid: row symbol (%d,%d): %w", row, col, ErrWrongColumnIndex)
	}
	line[col] = c
	return nil
}

// SetColumnSymbol sets the symbol of vertical split col beside row row.
func (b *Borders) SetColumnSymbol(row, col int, c rune) error {
	line, ok := b.vertical[col]
	if !ok {
		return fmt.Errorf("grid: column symbol (%d,%d): %w", row, col, ErrWrongColumnIndex)
	}
	if row < 0 || row >= len(line) {
		return fmt.Errorf("grid: column symbol (%d,%d): %w", row, col, ErrWrongRowIndex)
	}
	line[row] = c
	return nil
}

// SetIntersection sets the symbol where row boundary row meets column
// boundary col. Both boundaries must be split.
func (b *Borders) SetIntersection(row, col int, c rune) error {
	if row < 0 || row > b.rows || col < 0 || col > b.cols {
		return fmt.Errorf("grid: intersection (%d,%d): %w", row, col, ErrWrongIntersectionIndex)
	}
	if !b.HasHorizontal(row) {
		return fmt.Errorf("grid: intersection (%d,%d): %w", row, col, ErrWrongRowIndex)
	}
	if !b.HasVertical(col) {
		return fmt.Errorf("grid: intersection (%d,%d): %w", row, col, ErrWrongColumnIndex)
	}
	b.intersections[position{row, col}] = c
	return nil
}

// Border returns the symbols around the cell at row, col as currently
// stored. Sides without a split are left zero.
func (b *Borders) Border(row, col int) (Border, error) {
	if row < 0 || row >= b.rows {
		return Border{}, fmt.Errorf("grid: border (%d,%d): %w", row, col, ErrWrongRowIndex)
	}
	if col < 0 || col >= b.cols {
		return Border{}, fmt.Errorf("grid: border (%d,%d): %w", row, col, ErrWrongColumnIndex)
	}
	return Border{
		Top:         b.horizontalSymbol(row, col),
		Bottom:      b.horizontalSymbol(row+1, col),
		Left:        b.verticalSymbol(row, col),
		Right:       b.verticalSymbol(row, col+1),
		TopLeft:     b.intersection(row, col),
		TopRight:    b.intersection(row, col+1),
		BottomLeft:  b.intersection(row+1, col),
		BottomRight: b.intersection(row+1, col+1),
	}, nil
}

// Clear removes every split line and intersection.
func (b *Borders) Clear() {
	clear(b.horizontal)
	clear(b.vertical)
	clear(b.intersections)
}

func (b *Borders) horizontalSymbol(row, col int) rune {
	if line, ok := b.horizontal[row]; ok && col < len(line) {
		return line[col]
	}
	return 0
}

func (b *Borders) verticalSymbol(row, col int) rune {
	if line, ok := b.vertical[col]; ok && row < len(line) {
		return line[row]
	}
	return 0
}

func (b *Borders) intersection(row, col int) rune {
	return b.intersections[position{row, col}]
}

func (b *Borders) hasIntersection(row, col int) bool {
	_, ok := b.intersections[position{row, col}]
	return ok
}

func (b *Borders) horizontalBoundaries() []int { return sortedKeys(b.horizontal) }

func (b *Borders) verticalBoundaries() []int { return sortedKeys(b.vertical) }

// copyRegion fills b with the splits of src that fall on the boundaries
// of rows [r0, r1) and columns [c0, c1), renumbered from zero.
func (b *Borders) copyRegion(src *Borders, r0, r1, c0, c1 int) {
	for row, line := range src.horizontal {
		if row < r0 || row > r1 {
			continue
		}
		b.horizontal[row-r0] = append([]rune(nil), line[c0:c1]...)
	}
	for col, line := range src.vertical {
		if col < c0 || col > c1 {
			continue
		}
		b.vertical[col-c0] = append([]rune(nil), line[r0:r1]...)
	}
	for p, c := range src.intersections {
		if p.row < r0 || p.row > r1 || p.col < c0 || p.col > c1 {
			continue
		}
		b.intersections[position{p.row - r0, p.col - c0}] = c
	}
}

func sortedKeys(m map[int][]rune) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

func spaced(n int) []rune {
	line := make([]rune, n)
	for i := range line {
		line[i] = lineSpaced
	}
	return line
}
