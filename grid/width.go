package grid

import (
	"log/slog"
	"sort"
)

// colRange is a half-open range of columns [start, end).
type colRange struct {
	start, end int
}

// resolveWidths computes the width of every printed cell so that, for
// each range of columns, all rows that lay cells exactly over that range
// print the same number of characters.
//
// Ranges are visited by increasing span length. Once every span length is
// done, each range is checked again and adjusted a second time if a later
// adjustment broke it. This converges for the layouts seen in practice but
// is not a general fixpoint.
func (l *layout) resolveWidths() {
	l.widths = make([][]int, l.rows)
	for row := range l.cells {
		l.widths[row] = make([]int, l.cols)
		for col := range l.cells[row] {
			c := &l.cells[row][col]
			if !c.visible() {
				continue
			}
			w := c.contentWidth()
			if splits := l.splitsWithin(col, col+c.span()); splits > w {
				w = splits
			}
			l.widths[row][col] = w
		}
	}
	if l.rows == 0 || l.cols == 0 {
		return
	}

	var ranges []colRange
	for _, span := range l.distinctSpans() {
		for start := 0; start+span <= l.cols; start++ {
			r := colRange{start, start + span}
			l.adjustRange(r)
			ranges = append(ranges, r)
		}
	}
	for _, r := range ranges {
		if !l.rangeComplete(r) {
			l.logger.Debug("grid: readjusting column range",
				slog.Int("start", r.start), slog.Int("end", r.end))
			l.adjustRange(r)
		}
	}
}

func (l *layout) distinctSpans() []int {
	seen := make(map[int]bool)
	var spans []int
	for row := range l.cells {
		for col := range l.cells[row] {
			if s := l.cells[row][col].span(); s > 0 && !seen[s] {
				seen[s] = true
				spans = append(spans, s)
			}
		}
	}
	sort.Ints(spans)
	return spans
}

// inScope reports whether a row lays its cells exactly over r: the cell
// at r.start is printed and no printed cell inside r reaches past r.end.
func (l *layout) inScope(row int, r colRange) bool {
	if !l.cells[row][r.start].visible() {
		return false
	}
	for col := r.start; col < r.end; col++ {
		c := &l.cells[row][col]
		if c.visible() && col+c.span() > r.end {
			return false
		}
	}
	return true
}

// rowWidth is the printed width of the cells of row that lie inside r,
// counting the splits that separate them.
func (l *layout) rowWidth(row int, r colRange) int {
	w := 0
	for col := r.start; col < r.end; col++ {
		c := &l.cells[row][col]
		if !c.visible() || col+c.span() > r.end {
			continue
		}
		if col != r.start && l.borders.HasVertical(col) {
			w++
		}
		w += l.widths[row][col]
	}
	return w
}

func (l *layout) rangeComplete(r colRange) bool {
	width := -1
	for row := 0; row < l.rows; row++ {
		if !l.inScope(row, r) {
			continue
		}
		w := l.rowWidth(row, r)
		if width == -1 {
			width = w
		} else if w != width {
			return false
		}
	}
	return true
}

// adjustRange widens the rows over r to match the widest one. Rows that
// only partly cover r copy cell widths from an in-scope row with the same
// spans.
func (l *layout) adjustRange(r colRange) {
	widest, target := -1, 0
	for row := 0; row < l.rows; row++ {
		if w := l.rowWidth(row, r); widest == -1 || w >= target {
			widest, target = row, w
		}
	}
	if target == 0 {
		return
	}

	for row := 0; row < l.rows; row++ {
		if row == widest {
			continue
		}
		if !l.inScope(row, r) {
			l.copyWidths(row, widest, r)
			continue
		}
		diff := target - l.rowWidth(row, r)
		l.spread(row, r, diff)
	}
}

// spread hands out diff characters one at a time to the printed cells of
// row within r, left to right and round again.
func (l *layout) spread(row int, r colRange, diff int) {
	var cols []int
	for col := r.start; col < r.end; col++ {
		if l.cells[row][col].visible() {
			cols = append(cols, col)
		}
	}
	if len(cols) == 0 {
		return
	}
	for i := 0; diff > 0; i++ {
		l.widths[row][cols[i%len(cols)]]++
		diff--
	}
}

// copyWidths fixes a row that does not lay its cells exactly over r. Each
// printed cell of the row inside r takes the width of the cell at the same
// column in another in-scope row with the same span there, as long as that
// row does not start with a span wider than r.
func (l *layout) copyWidths(row, widest int, r colRange) {
	span := r.end - r.start
	for col := r.start; col < r.end; col++ {
		c := &l.cells[row][col]
		if !c.visible() {
			continue
		}
		for other := 0; other < l.rows; other++ {
			if other == widest || other == row {
				continue
			}
			if l.cells[other][0].span() > span {
				continue
			}
			if !l.inScope(other, r) {
				continue
			}
			if l.cells[other][col].span() != c.span() {
				continue
			}
			l.widths[row][col] = l.widths[other][col]
			break
		}
	}
}
