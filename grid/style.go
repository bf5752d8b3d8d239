package grid

// DefaultTabWidth is the number of spaces a tab expands to unless a
// style says otherwise.
const DefaultTabWidth = 4

// Indent is one side of a cell's padding. A zero Fill means a space.
type Indent struct {
	Fill rune
	Size int
}

// Spaced returns an indent of n spaces.
func Spaced(n int) Indent { return Indent{Fill: ' ', Size: n} }

// NewIndent returns an indent of n fill characters.
func NewIndent(n int, fill rune) Indent { return Indent{Fill: fill, Size: n} }

func (i Indent) fill() rune {
	if i.Fill == 0 {
		return ' '
	}
	return i.Fill
}

func (i Indent) size() int {
	if i.Size < 0 {
		return 0
	}
	return i.Size
}

// Padding is the space between a cell's border and its text.
type Padding struct {
	Top, Bottom, Left, Right Indent
}

// AlignmentHorizontal positions text inside the width of a cell.
type AlignmentHorizontal uint8

const (
	AlignLeft AlignmentHorizontal = iota
	AlignCenter
	AlignRight
)

func (a AlignmentHorizontal) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// AlignmentVertical positions text inside the height of a row.
type AlignmentVertical uint8

const (
	AlignTop AlignmentVertical = iota
	AlignMiddle
	AlignBottom
)

func (a AlignmentVertical) String() string {
	switch a {
	case AlignMiddle:
		return "middle"
	case AlignBottom:
		return "bottom"
	default:
		return "top"
	}
}

// Formatting controls how cell text is cleaned up before layout.
type Formatting struct {
	// HorizontalTrim strips leading and trailing whitespace from every line.
	HorizontalTrim bool
	// VerticalTrim drops blank lines at the start and end of the text.
	VerticalTrim bool
	// AllowLinesAlignment aligns each line on its own instead of aligning
	// the text block as a whole.
	AllowLinesAlignment bool
	// TabWidth is the number of spaces a tab expands to; 0 removes tabs.
	TabWidth int
}

// Style is the resolved presentation of a cell.
type Style struct {
	Padding    Padding
	AlignH     AlignmentHorizontal
	AlignV     AlignmentVertical
	Span       int
	Formatting Formatting
}

// DefaultStyle returns the style every cell starts with: no padding,
// top-left alignment and a span of one column.
func DefaultStyle() Style {
	return Style{
		Padding: Padding{
			Top:    Spaced(0),
			Bottom: Spaced(0),
			Left:   Spaced(0),
			Right:  Spaced(0),
		},
		AlignH:     AlignLeft,
		AlignV:     AlignTop,
		Span:       1,
		Formatting: Formatting{TabWidth: DefaultTabWidth},
	}
}

// styleStore keeps one optional style per row, column and cell on top of
// the global one. Lookups resolve cell, then column, then row, then global.
type styleStore struct {
	global  Style
	rows    []*Style
	columns []*Style
	cells   []*Style
	cols    int
}

func newStyleStore(rows, cols int) *styleStore {
	return &styleStore{
		global:  DefaultStyle(),
		rows:    make([]*Style, rows),
		columns: make([]*Style, cols),
		cells:   make([]*Style, rows*cols),
		cols:    cols,
	}
}

func (s *styleStore) resolve(e Entity) Style {
	switch e.Kind {
	case KindCell:
		if st := s.cells[e.Row*s.cols+e.Col]; st != nil {
			return *st
		}
		if st := s.columns[e.Col]; st != nil {
			return *st
		}
		if st := s.rows[e.Row]; st != nil {
			return *st
		}
	case KindColumn:
		if st := s.columns[e.Col]; st != nil {
			return *st
		}
	case KindRow:
		if st := s.rows[e.Row]; st != nil {
			return *st
		}
	}
	return s.global
}

// mutate applies fn to the style stored for e. A row, column or cell
// without its own style first receives a copy of what it currently
// resolves to, so fields fn leaves alone keep their effective values.
func (s *styleStore) mutate(e Entity, fn func(*Style)) {
	var slot **Style
	switch e.Kind {
	case KindCell:
		slot = &s.cells[e.Row*s.cols+e.Col]
	case KindColumn:
		slot = &s.columns[e.Col]
	case KindRow:
		slot = &s.rows[e.Row]
	default:
		fn(&s.global)
		return
	}
	if *slot == nil {
		st := s.resolve(e)
		*slot = &st
	}
	fn(*slot)
}
