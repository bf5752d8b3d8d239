package widgets

import (
	"fmt"
	"strings"

	"gitlab.com/tinyland/lab/papergrid/config"
	"gitlab.com/tinyland/lab/papergrid/grid"
)

// ApplyStyle draws one of the named border styles onto g. When header is
// true the first row is set apart from the rest by the styles that have a
// header rule.
//
//	ascii      +------+------+    psql       name | port
//	           | name | port |              ------+------
//	           +------+------+               api  | 8080
//
//	markdown   | name | port |    blank      name   port
//	           |------|------|               api    8080
func ApplyStyle(g *grid.Grid, style string, header bool) error {
	rows, cols := g.CountRows(), g.CountColumns()

	switch style {
	case config.StyleASCII, "":
		g.SetCellBorders(grid.DefaultCellBorder)
		return nil
	case config.StyleNone:
		return nil
	case config.StyleBlank:
		for col := 1; col < cols; col++ {
			if err := g.AddVerticalSplit(col); err != nil {
				return err
			}
		}
		return nil
	case config.StylePSQL:
		for col := 1; col < cols; col++ {
			if err := g.InsertVerticalSplit(col, fill('|', rows), fill(' ', 1)); err != nil {
				return err
			}
		}
		if header && rows > 1 {
			return g.InsertHorizontalSplit(1, fill('-', cols), withSpare('+', cols-1))
		}
		return nil
	case config.StyleMarkdown:
		for col := 0; col <= cols; col++ {
			if err := g.InsertVerticalSplit(col, fill('|', rows), fill(' ', 1)); err != nil {
				return err
			}
		}
		if header && rows > 1 {
			return g.InsertHorizontalSplit(1, fill('-', cols), withSpare('|', cols+1))
		}
		return nil
	default:
		return fmt.Errorf("widgets: unknown border style %q (want %s)", style, strings.Join(config.BorderStyles, ", "))
	}
}

func fill(c rune, n int) []rune {
	out := make([]rune, max(n, 0))
	for i := range out {
		out[i] = c
	}
	return out
}

// withSpare returns n copies of c followed by the unused trailing
// intersection slot a split insert expects.
func withSpare(c rune, n int) []rune {
	return append(fill(c, n), ' ')
}
