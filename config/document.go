package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Document describes a grid to render. Rows are the data; when Header is
// set it becomes row 0 and data rows start at row 1. Cell and column
// coordinates always refer to grid rows and columns, header included.
//
//	title: Services
//	header: [name, port]
//	rows:
//	  - [api, "8080"]
//	  - [db, "5432"]
//	columns:
//	  - {index: 1, align: right}
type Document struct {
	// Title replaces the top border line, one character per position.
	Title string `yaml:"title"`
	// Header is the optional header row.
	Header []string `yaml:"header"`
	// Rows is the table data.
	Rows [][]string `yaml:"rows"`
	// Style is a border style name; empty uses the configured default.
	Style string `yaml:"style"`
	// Padding is the left and right padding of every cell.
	Padding *int `yaml:"padding"`
	// Align is the default horizontal alignment: left, center or right.
	Align string `yaml:"align"`
	// VAlign is the default vertical alignment: top, middle or bottom.
	VAlign string `yaml:"valign"`
	// TabWidth is the number of spaces a tab expands to.
	TabWidth *int `yaml:"tab_width"`
	// Trim strips whitespace around cell text.
	Trim TrimConfig `yaml:"trim"`
	// LinesAlignment aligns every line of a cell on its own.
	LinesAlignment bool `yaml:"lines_alignment"`
	// Margin is the space around the whole grid.
	Margin *MarginConfig `yaml:"margin"`
	// Columns holds per-column settings.
	Columns []ColumnConfig `yaml:"columns"`
	// Cells holds per-cell settings.
	Cells []CellConfig `yaml:"cells"`
}

// TrimConfig selects which whitespace is stripped from cell text.
type TrimConfig struct {
	Horizontal bool `yaml:"horizontal"`
	Vertical   bool `yaml:"vertical"`
}

// MarginConfig is the space printed around the grid.
type MarginConfig struct {
	Top    int `yaml:"top"`
	Bottom int `yaml:"bottom"`
	Left   int `yaml:"left"`
	Right  int `yaml:"right"`
	// Fill is the single character used for every side; empty means a space.
	Fill string `yaml:"fill"`
}

// ColumnConfig holds the settings of one column.
type ColumnConfig struct {
	Index int `yaml:"index"`
	// Align overrides the horizontal alignment of the column.
	Align string `yaml:"align"`
	// MaxWidth truncates longer lines with an ellipsis. Zero means no limit.
	MaxWidth int `yaml:"max_width"`
}

// CellConfig holds the settings of one cell.
type CellConfig struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
	// Text replaces the cell text.
	Text *string `yaml:"text"`
	// Span is the number of columns the cell covers; 0 hides it.
	Span *int `yaml:"span"`
	// Align and VAlign override the cell alignment.
	Align  string `yaml:"align"`
	VAlign string `yaml:"valign"`
}

var (
	validAlign  = []string{"", "left", "center", "right"}
	validVAlign = []string{"", "top", "middle", "bottom"}
)

// ParseDocument decodes a YAML grid document and validates it.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("config: parse document: %w", err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadDocument reads and parses the document at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read document %s: %w", path, err)
	}
	return ParseDocument(data)
}

// Size returns the number of grid rows and columns the document needs.
func (d *Document) Size() (rows, cols int) {
	rows = len(d.Rows)
	cols = len(d.Header)
	if len(d.Header) > 0 {
		rows++
	}
	for _, row := range d.Rows {
		cols = max(cols, len(row))
	}
	return rows, cols
}

// Validate checks alignments, style names and that every column and cell
// refers to a position inside the grid.
func (d *Document) Validate() error {
	rows, cols := d.Size()
	if rows == 0 || cols == 0 {
		return fmt.Errorf("config: document has no cells")
	}
	if d.Style != "" && !slices.Contains(BorderStyles, d.Style) {
		return fmt.Errorf("config: document style must be one of %v, got %q", BorderStyles, d.Style)
	}
	if !slices.Contains(validAlign, d.Align) {
		return fmt.Errorf("config: document align %q is not left, center or right", d.Align)
	}
	if !slices.Contains(validVAlign, d.VAlign) {
		return fmt.Errorf("config: document valign %q is not top, middle or bottom", d.VAlign)
	}
	if d.Padding != nil && *d.Padding < 0 {
		return fmt.Errorf("config: document padding must be non-negative, got %d", *d.Padding)
	}
	if d.TabWidth != nil && *d.TabWidth < 0 {
		return fmt.Errorf("config: document tab_width must be non-negative, got %d", *d.TabWidth)
	}
	if m := d.Margin; m != nil {
		if m.Top < 0 || m.Bottom < 0 || m.Left < 0 || m.Right < 0 {
			return fmt.Errorf("config: document margin must be non-negative")
		}
		if len([]rune(m.Fill)) > 1 {
			return fmt.Errorf("config: document margin fill must be a single character, got %q", m.Fill)
		}
	}

	for i, c := range d.Columns {
		if c.Index < 0 || c.Index >= cols {
			return fmt.Errorf("config: columns[%d].index %d outside %d columns", i, c.Index, cols)
		}
		if !slices.Contains(validAlign, c.Align) {
			return fmt.Errorf("config: columns[%d].align %q is not left, center or right", i, c.Align)
		}
		if c.MaxWidth < 0 {
			return fmt.Errorf("config: columns[%d].max_width must be non-negative", i)
		}
	}

	for i, c := range d.Cells {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return fmt.Errorf("config: cells[%d] (%d,%d) outside %dx%d grid", i, c.Row, c.Col, rows, cols)
		}
		if c.Span != nil && (*c.Span < 0 || c.Col+*c.Span > cols) {
			return fmt.Errorf("config: cells[%d].span %d does not fit %d columns", i, *c.Span, cols)
		}
		if !slices.Contains(validAlign, c.Align) {
			return fmt.Errorf("config: cells[%d].align %q is not left, center or right", i, c.Align)
		}
		if !slices.Contains(validVAlign, c.VAlign) {
			return fmt.Errorf("config: cells[%d].valign %q is not top, middle or bottom", i, c.VAlign)
		}
	}
	return nil
}
