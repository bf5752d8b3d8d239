// Package grid lays out and renders text grids.
//
// A Grid is a fixed number of rows and columns holding one string per
// cell. Styles (padding, alignment, column spans and text formatting) are
// attached to the whole grid, a row, a column or a single cell, and the
// most specific one wins when a cell is rendered. Border lines are only
// drawn where a split line was added, so the same grid can be printed as a
// boxed table or as plain aligned text.
//
// Rendering never mutates the grid: every call to String or Lines works
// on a private layout snapshot.
//
//	g := grid.New(2, 2)
//	g.SetCellBorders(grid.DefaultCellBorder)
//	g.Set(grid.Cell(0, 0), grid.NewSettings().Text("0-0"))
//	fmt.Print(g)
package grid
