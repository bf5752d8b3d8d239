package grid

import "fmt"

// EntityKind tells which part of a grid an Entity addresses.
type EntityKind uint8

const (
	KindGlobal EntityKind = iota
	KindRow
	KindColumn
	KindCell
)

// Entity addresses a style target: the whole grid, one row, one column or
// one cell.
type Entity struct {
	Kind EntityKind
	Row  int
	Col  int
}

// Global addresses every cell of the grid.
func Global() Entity { return Entity{Kind: KindGlobal} }

// Row addresses every cell of row r.
func Row(r int) Entity { return Entity{Kind: KindRow, Row: r} }

// Column addresses every cell of column c.
func Column(c int) Entity { return Entity{Kind: KindColumn, Col: c} }

// Cell addresses the cell at row r, column c.
func Cell(r, c int) Entity { return Entity{Kind: KindCell, Row: r, Col: c} }

func (e Entity) String() string {
	switch e.Kind {
	case KindRow:
		return fmt.Sprintf("row(%d)", e.Row)
	case KindColumn:
		return fmt.Sprintf("column(%d)", e.Col)
	case KindCell:
		return fmt.Sprintf("cell(%d,%d)", e.Row, e.Col)
	default:
		return "global"
	}
}

// validate checks the entity's indices against a rows x cols grid.
func (e Entity) validate(rows, cols int) error {
	switch e.Kind {
	case KindRow:
		if e.Row < 0 || e.Row >= rows {
			return fmt.Errorf("grid: %s: %w", e, ErrWrongRowIndex)
		}
	case KindColumn:
		if e.Col < 0 || e.Col >= cols {
			return fmt.Errorf("grid: %s: %w", e, ErrWrongColumnIndex)
		}
	case KindCell:
		if e.Row < 0 || e.Row >= rows {
			return fmt.Errorf("grid: %s: %w", e, ErrWrongRowIndex)
		}
		if e.Col < 0 || e.Col >= cols {
			return fmt.Errorf("grid: %s: %w", e, ErrWrongColumnIndex)
		}
	}
	return nil
}

// frame is the rectangle of cells an entity covers: columns [left, right)
// and rows [top, bottom).
type frame struct {
	left, right int
	top, bottom int
}

func (e Entity) frame(rows, cols int) frame {
	switch e.Kind {
	case KindRow:
		return frame{left: 0, right: cols, top: e.Row, bottom: e.Row + 1}
	case KindColumn:
		return frame{left: e.Col, right: e.Col + 1, top: 0, bottom: rows}
	case KindCell:
		return frame{left: e.Col, right: e.Col + 1, top: e.Row, bottom: e.Row + 1}
	default:
		return frame{left: 0, right: cols, top: 0, bottom: rows}
	}
}
