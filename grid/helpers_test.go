package grid

import (
	"fmt"
	"strings"
	"testing"
)

// newBoxedGrid returns a rows x cols grid with ASCII cell borders where
// every cell holds "row-col".
func newBoxedGrid(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g := New(rows, cols)
	g.SetCellBorders(DefaultCellBorder)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			mustSet(t, g, Cell(r, c), NewSettings().Text(fmt.Sprintf("%d-%d", r, c)))
		}
	}
	return g
}

func mustSet(t *testing.T, g *Grid, e Entity, s Settings) {
	t.Helper()
	if err := g.Set(e, s); err != nil {
		t.Fatalf("Set(%s) error: %v", e, err)
	}
}

func assertRender(t *testing.T, g *Grid, want ...string) {
	t.Helper()
	expected := ""
	if len(want) > 0 {
		expected = strings.Join(want, "\n") + "\n"
	}
	if got := g.String(); got != expected {
		t.Errorf("rendered grid mismatch\ngot:\n%s\nwant:\n%s", got, expected)
	}
}
