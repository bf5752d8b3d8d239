package grid

import "log/slog"

// visibility reports which cells of a row are printed given their spans.
// A cell is hidden when its span is zero or when an earlier printed cell
// spans over it.
func visibility(spans []int) []bool {
	vis := make([]bool, len(spans))
	coveredUntil := 0
	for col, span := range spans {
		if col < coveredUntil || span <= 0 {
			continue
		}
		vis[col] = true
		coveredUntil = col + span
	}
	return vis
}

// IsVisible reports whether the cell at row, col is printed. It looks at
// the spans as configured, before the layout repairs rows that start with
// hidden cells.
func (g *Grid) IsVisible(row, col int) bool {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return false
	}
	spans := make([]int, g.cols)
	for c := range spans {
		spans[c] = g.styles.resolve(Cell(row, c)).Span
	}
	return visibility(spans)[col]
}

// normalizeSpans rewrites a row so that every column is owned by exactly
// one printed cell:
//
//   - spans reaching past the last column are clipped;
//   - a hidden first cell is swapped with the first printed one, which
//     grows to start at column zero;
//   - a hidden cell not covered by anything is absorbed by the nearest
//     printed cell on its left;
//   - a row with no printed cell gets a blank cell spanning the whole row;
//   - cells covered by a span get span zero.
func normalizeSpans(row int, cells []cellLayout, logger *slog.Logger) {
	cols := len(cells)
	if cols == 0 {
		return
	}

	for c := range cells {
		if cells[c].style.Span < 0 {
			cells[c].style.Span = 0
		}
		if cells[c].style.Span > cols-c {
			cells[c].style.Span = cols - c
		}
	}

	if cells[0].style.Span == 0 {
		for c := 1; c < cols; c++ {
			if cells[c].style.Span == 0 {
				continue
			}
			cells[0], cells[c] = cells[c], cells[0]
			cells[0].style.Span += c
			logger.Debug("grid: hidden first cell replaced",
				slog.Int("row", row), slog.Int("from_column", c))
			break
		}
	}

	if cells[0].style.Span == 0 {
		cells[0] = cellLayout{style: cells[0].style}
		cells[0].style.Span = cols
		logger.Debug("grid: row has no visible cells", slog.Int("row", row))
	}

	owner, coveredUntil := -1, 0
	for c := 0; c < cols; c++ {
		if c < coveredUntil {
			cells[c].style.Span = 0
			continue
		}
		if cells[c].style.Span == 0 {
			cells[owner].style.Span = c - owner + 1
			coveredUntil = c + 1
			logger.Debug("grid: hidden cell absorbed",
				slog.Int("row", row), slog.Int("column", c), slog.Int("owner", owner))
			continue
		}
		owner = c
		coveredUntil = c + cells[c].style.Span
	}
}
