package grid

import (
	"errors"
	"testing"
)

func TestSetValidatesEntity(t *testing.T) {
	g := New(2, 3)
	tests := []struct {
		entity Entity
		want   error
	}{
		{Cell(2, 0), ErrWrongRowIndex},
		{Cell(0, 3), ErrWrongColumnIndex},
		{Row(-1), ErrWrongRowIndex},
		{Column(3), ErrWrongColumnIndex},
	}

	for _, tt := range tests {
		t.Run(tt.entity.String(), func(t *testing.T) {
			err := g.Set(tt.entity, NewSettings().Text("x"))
			if !errors.Is(err, tt.want) {
				t.Errorf("Set(%s) error = %v, want %v", tt.entity, err, tt.want)
			}
		})
	}
}

func TestSetSpanOutOfRange(t *testing.T) {
	g := New(2, 3)
	err := g.Set(Cell(0, 1), NewSettings().Text("kept").Alignment(AlignRight).Span(3))
	if !errors.Is(err, ErrSpanOutOfRange) {
		t.Fatalf("Set error = %v, want ErrSpanOutOfRange", err)
	}

	text, _ := g.CellContent(0, 1)
	if text != "kept" {
		t.Errorf("text applied before the failing span = %q, want %q", text, "kept")
	}
	st, _ := g.Style(Cell(0, 1))
	if st.AlignH != AlignRight {
		t.Errorf("alignment applied before the failing span = %s, want right", st.AlignH)
	}
	if st.Span != 1 {
		t.Errorf("span = %d, want unchanged 1", st.Span)
	}

	if err := g.Set(Column(2), NewSettings().Span(2)); !errors.Is(err, ErrSpanOutOfRange) {
		t.Errorf("column span error = %v, want ErrSpanOutOfRange", err)
	}
	if err := g.Set(Cell(0, 0), NewSettings().Span(-1)); !errors.Is(err, ErrSpanOutOfRange) {
		t.Errorf("negative span error = %v, want ErrSpanOutOfRange", err)
	}
	if err := g.Set(Row(0), NewSettings().Span(5)); err != nil {
		t.Errorf("row span is clipped at layout, got error %v", err)
	}
}

func TestStylePriority(t *testing.T) {
	g := New(2, 2)
	mustSet(t, g, Global(), NewSettings().Alignment(AlignRight))
	mustSet(t, g, Row(0), NewSettings().Alignment(AlignCenter))
	mustSet(t, g, Column(1), NewSettings().Alignment(AlignLeft))

	tests := []struct {
		entity Entity
		want   AlignmentHorizontal
	}{
		{Cell(0, 0), AlignCenter},
		{Cell(0, 1), AlignLeft},
		{Cell(1, 0), AlignRight},
		{Cell(1, 1), AlignLeft},
		{Row(1), AlignRight},
		{Column(0), AlignRight},
	}

	for _, tt := range tests {
		st, err := g.Style(tt.entity)
		if err != nil {
			t.Fatalf("Style(%s): %v", tt.entity, err)
		}
		if st.AlignH != tt.want {
			t.Errorf("Style(%s).AlignH = %s, want %s", tt.entity, st.AlignH, tt.want)
		}
	}
}

func TestStyleOverrideKeepsOwnFields(t *testing.T) {
	g := New(2, 2)
	mustSet(t, g, Global(), NewSettings().Padding(Spaced(1), Spaced(1), Spaced(0), Spaced(0)))
	mustSet(t, g, Cell(0, 0), NewSettings().Span(2))
	mustSet(t, g, Global(), NewSettings().Alignment(AlignRight))

	st, _ := g.Style(Cell(0, 0))
	if st.Span != 2 {
		t.Errorf("span = %d, want 2", st.Span)
	}
	if st.Padding.Left.Size != 1 {
		t.Errorf("padding copied at override time = %d, want 1", st.Padding.Left.Size)
	}
	if st.AlignH != AlignLeft {
		t.Errorf("later global change leaked into cell override: %s", st.AlignH)
	}

	other, _ := g.Style(Cell(1, 1))
	if other.AlignH != AlignRight {
		t.Errorf("cell without override = %s, want right", other.AlignH)
	}
}

func TestDefaultStyle(t *testing.T) {
	st, err := New(1, 1).Style(Cell(0, 0))
	if err != nil {
		t.Fatalf("Style: %v", err)
	}
	if st != DefaultStyle() {
		t.Errorf("fresh cell style = %+v, want %+v", st, DefaultStyle())
	}
	if st.Span != 1 || st.Formatting.TabWidth != DefaultTabWidth {
		t.Errorf("unexpected defaults: span %d, tab width %d", st.Span, st.Formatting.TabWidth)
	}
}

func TestSetTextByEntity(t *testing.T) {
	g := New(2, 2)
	mustSet(t, g, Column(1), NewSettings().Text("c"))
	mustSet(t, g, Cell(1, 1), NewSettings().Text("x"))

	want := [][]string{{"", "c"}, {"", "x"}}
	for r := range want {
		for c := range want[r] {
			got, err := g.CellContent(r, c)
			if err != nil {
				t.Fatalf("CellContent(%d,%d): %v", r, c, err)
			}
			if got != want[r][c] {
				t.Errorf("CellContent(%d,%d) = %q, want %q", r, c, got, want[r][c])
			}
		}
	}
	if _, err := g.CellContent(2, 0); !errors.Is(err, ErrWrongRowIndex) {
		t.Errorf("CellContent out of range error = %v", err)
	}
}

func TestSetBorderStrict(t *testing.T) {
	g := New(1, 1)
	err := g.Set(Global(), NewSettings().Text("a").Border(DefaultCellBorder))
	if !errors.Is(err, ErrWrongRowIndex) {
		t.Fatalf("strict border without splits error = %v, want ErrWrongRowIndex", err)
	}
	if g.borders.HasHorizontal(0) || g.borders.HasVertical(0) {
		t.Error("strict border created split lines")
	}
	assertRender(t, g, "a")
}

func TestSetBorderCreatesSplits(t *testing.T) {
	g := New(1, 1)
	mustSet(t, g, Global(), NewSettings().
		Text("a").
		Border(DefaultCellBorder).
		BorderRestriction(false))
	assertRender(t, g, "+-+", "|a|", "+-+")
}

func TestSetBorderContinuesLine(t *testing.T) {
	g := newBoxedGrid(t, 2, 2)
	mustSet(t, g, Row(0), NewSettings().Border(Border{Top: '='}))
	assertRender(t, g,
		"========+",
		"|0-0|0-1|",
		"+---+---+",
		"|1-0|1-1|",
		"+---+---+",
	)

	mustSet(t, g, Column(1), NewSettings().Border(Border{Right: '#', BottomRight: '*'}))
	assertRender(t, g,
		"========#",
		"|0-0|0-1#",
		"+---+---#",
		"|1-0|1-1#",
		"+---+---*",
	)
}

func TestSetCellBorders(t *testing.T) {
	g := New(2, 2)
	g.SetCellBorders(DefaultCellBorder)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			b, err := g.Border(r, c)
			if err != nil {
				t.Fatalf("Border(%d,%d): %v", r, c, err)
			}
			if b != DefaultCellBorder {
				t.Errorf("Border(%d,%d) = %+v, want %+v", r, c, b, DefaultCellBorder)
			}
		}
	}

	g.SetCellBorders(FilledBorder('*'))
	mustSet(t, g, Global(), NewSettings().Text("x"))
	assertRender(t, g, "*****", "*x*x*", "*****", "*x*x*", "*****")
}

func TestCellSettingsRoundTrip(t *testing.T) {
	g := newBoxedGrid(t, 2, 2)
	mustSet(t, g, Cell(0, 0), NewSettings().
		Text("multi\nline").
		Alignment(AlignCenter).
		VerticalAlignment(AlignBottom).
		Padding(Spaced(1), Spaced(2), Spaced(0), Spaced(1)).
		TabWidth(2))

	s, err := g.CellSettings(0, 0)
	if err != nil {
		t.Fatalf("CellSettings: %v", err)
	}

	copied := newBoxedGrid(t, 2, 2)
	mustSet(t, copied, Cell(0, 0), s)
	if g.String() != copied.String() {
		t.Errorf("grid rebuilt from cell settings differs:\n%s\nvs\n%s", copied, g)
	}

	if _, err := g.CellSettings(0, 2); !errors.Is(err, ErrWrongColumnIndex) {
		t.Errorf("CellSettings out of range error = %v", err)
	}
}

func TestIsVisible(t *testing.T) {
	g := New(1, 4)
	mustSet(t, g, Cell(0, 0), NewSettings().Span(2))
	mustSet(t, g, Cell(0, 3), NewSettings().Span(0))

	want := []bool{true, false, true, false}
	for c, v := range want {
		if got := g.IsVisible(0, c); got != v {
			t.Errorf("IsVisible(0,%d) = %v, want %v", c, got, v)
		}
	}
	if g.IsVisible(1, 0) {
		t.Error("IsVisible outside the grid should be false")
	}
}

func TestVisibility(t *testing.T) {
	tests := []struct {
		spans []int
		want  []bool
	}{
		{[]int{1, 1, 1}, []bool{true, true, true}},
		{[]int{3, 1, 1}, []bool{true, false, false}},
		{[]int{0, 2, 1}, []bool{false, true, false}},
		{[]int{1, 0, 1}, []bool{true, false, true}},
		{[]int{2, 2, 1, 1}, []bool{true, false, true, true}},
	}

	for _, tt := range tests {
		got := visibility(tt.spans)
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("visibility(%v) = %v, want %v", tt.spans, got, tt.want)
				break
			}
		}
	}
}

func TestExtractWholeGrid(t *testing.T) {
	g := newBoxedGrid(t, 3, 3)
	mustSet(t, g, Cell(0, 0), NewSettings().Text("wide header").Span(2).Alignment(AlignCenter))
	mustSet(t, g, Row(2), NewSettings().Padding(Spaced(1), Spaced(1), Spaced(0), Spaced(0)))
	g.SetMargin(Margin{Left: NewIndent(1, '>'), Top: NewIndent(1, 'v')})
	if err := g.OverrideSplitLine(0, "Top"); err != nil {
		t.Fatalf("OverrideSplitLine: %v", err)
	}

	out, err := g.Extract(0, 3, 0, 3)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if out.String() != g.String() {
		t.Errorf("full extract differs:\n%s\nvs\n%s", out, g)
	}
}

func TestExtractRegion(t *testing.T) {
	g := newBoxedGrid(t, 3, 3)
	out, err := g.Extract(1, 3, 1, 3)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if out.CountRows() != 2 || out.CountColumns() != 2 {
		t.Fatalf("extracted grid is %dx%d, want 2x2", out.CountRows(), out.CountColumns())
	}
	assertRender(t, out,
		"+---+---+",
		"|1-1|1-2|",
		"+---+---+",
		"|2-1|2-2|",
		"+---+---+",
	)
}

func TestExtractClipsSpans(t *testing.T) {
	g := newBoxedGrid(t, 2, 3)
	mustSet(t, g, Cell(0, 0), NewSettings().Span(3))

	out, err := g.Extract(0, 2, 0, 2)
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	st, _ := out.Style(Cell(0, 0))
	if st.Span != 2 {
		t.Errorf("clipped span = %d, want 2", st.Span)
	}
	assertRender(t, out,
		"+---+---+",
		"|0-0    |",
		"+---+---+",
		"|1-0|1-1|",
		"+---+---+",
	)
}

func TestExtractInvalidRange(t *testing.T) {
	g := newBoxedGrid(t, 2, 2)
	if _, err := g.Extract(0, 3, 0, 1); !errors.Is(err, ErrWrongRowIndex) {
		t.Errorf("row range error = %v, want ErrWrongRowIndex", err)
	}
	if _, err := g.Extract(0, 1, 2, 1); !errors.Is(err, ErrWrongColumnIndex) {
		t.Errorf("column range error = %v, want ErrWrongColumnIndex", err)
	}
	out, err := g.Extract(1, 1, 0, 2)
	if err != nil {
		t.Fatalf("empty extract: %v", err)
	}
	if out.String() != "" {
		t.Errorf("empty extract rendered %q", out.String())
	}
}
