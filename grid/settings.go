package grid

// Settings is a sparse set of changes applied to an Entity by Grid.Set.
// Only the fields touched through its builder methods are applied; all
// others keep their current values.
//
//	s := grid.NewSettings().Text("total").Alignment(grid.AlignRight).Span(2)
type Settings struct {
	text       *string
	padding    *Padding
	alignH     *AlignmentHorizontal
	alignV     *AlignmentVertical
	span       *int
	hTrim      *bool
	vTrim      *bool
	linesAlign *bool
	tabWidth   *int
	border     *Border

	// createSplits makes Set add any missing split line a border needs
	// instead of failing.
	createSplits bool
}

// NewSettings returns an empty change set.
func NewSettings() Settings { return Settings{} }

// Text sets the cell text.
func (s Settings) Text(text string) Settings {
	s.text = &text
	return s
}

// Padding sets all four padding sides.
func (s Settings) Padding(left, right, top, bottom Indent) Settings {
	s.padding = &Padding{Left: left, Right: right, Top: top, Bottom: bottom}
	return s
}

// Alignment sets the horizontal alignment.
func (s Settings) Alignment(a AlignmentHorizontal) Settings {
	s.alignH = &a
	return s
}

// VerticalAlignment sets the vertical alignment.
func (s Settings) VerticalAlignment(a AlignmentVertical) Settings {
	s.alignV = &a
	return s
}

// Span sets how many columns a cell covers. Zero hides the cell.
func (s Settings) Span(n int) Settings {
	s.span = &n
	return s
}

// HorizontalTrim toggles stripping whitespace around every line.
func (s Settings) HorizontalTrim(on bool) Settings {
	s.hTrim = &on
	return s
}

// VerticalTrim toggles dropping leading and trailing blank lines.
func (s Settings) VerticalTrim(on bool) Settings {
	s.vTrim = &on
	return s
}

// AllowLinesAlignment toggles aligning each line on its own.
func (s Settings) AllowLinesAlignment(on bool) Settings {
	s.linesAlign = &on
	return s
}

// TabWidth sets how many spaces a tab expands to.
func (s Settings) TabWidth(n int) Settings {
	s.tabWidth = &n
	return s
}

// Formatting sets every formatting flag at once.
func (s Settings) Formatting(f Formatting) Settings {
	return s.HorizontalTrim(f.HorizontalTrim).
		VerticalTrim(f.VerticalTrim).
		AllowLinesAlignment(f.AllowLinesAlignment).
		TabWidth(f.TabWidth)
}

// Border sets the border drawn around the entity's frame. Zero runes in b
// leave the matching symbols untouched.
func (s Settings) Border(b Border) Settings {
	s.border = &b
	return s
}

// BorderRestriction controls what happens when a border needs a split
// line that does not exist. When strict, Set fails with
// ErrWrongRowIndex or ErrWrongColumnIndex; otherwise the split is created.
func (s Settings) BorderRestriction(strict bool) Settings {
	s.createSplits = !strict
	return s
}

// apply copies the style-related fields into st.
func (s Settings) apply(st *Style) {
	if s.padding != nil {
		st.Padding = *s.padding
	}
	if s.alignH != nil {
		st.AlignH = *s.alignH
	}
	if s.alignV != nil {
		st.AlignV = *s.alignV
	}
	if s.span != nil {
		st.Span = *s.span
	}
	if s.hTrim != nil {
		st.Formatting.HorizontalTrim = *s.hTrim
	}
	if s.vTrim != nil {
		st.Formatting.VerticalTrim = *s.vTrim
	}
	if s.linesAlign != nil {
		st.Formatting.AllowLinesAlignment = *s.linesAlign
	}
	if s.tabWidth != nil {
		st.Formatting.TabWidth = *s.tabWidth
	}
}

func (s Settings) hasStyle() bool {
	return s.padding != nil || s.alignH != nil || s.alignV != nil || s.span != nil ||
		s.hTrim != nil || s.vTrim != nil || s.linesAlign != nil || s.tabWidth != nil
}
