package grid

import "errors"

var (
	// ErrWrongRowIndex is returned when a row or row boundary index is out of range.
	ErrWrongRowIndex = errors.New("wrong row index")
	// ErrWrongColumnIndex is returned when a column or column boundary index is out of range.
	ErrWrongColumnIndex = errors.New("wrong column index")
	// ErrWrongIntersectionIndex is returned when an intersection is addressed
	// on a boundary that has no split line.
	ErrWrongIntersectionIndex = errors.New("wrong intersection index")
	// ErrWrongLineSymbols is returned when a split line does not carry one
	// symbol per row or column.
	ErrWrongLineSymbols = errors.New("wrong number of line symbols")
	// ErrWrongIntersectionSymbols is returned when a split line carries the
	// wrong number of intersection symbols.
	ErrWrongIntersectionSymbols = errors.New("wrong number of intersection symbols")
	// ErrSpanOutOfRange is returned when a span reaches past the last column.
	ErrSpanOutOfRange = errors.New("span out of range")
)
