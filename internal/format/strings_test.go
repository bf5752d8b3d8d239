package format

import (
	"reflect"
	"strings"
	"testing"
)

func TestWidth(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"hello", 5},
		{"🎩", 2},
		{"Rust 💕", 7},
		{"Go 👍\nC 😎", 5},
		{"\x1b[31mred\x1b[0m", 3},
		{"short\nmuch longer line\nmid", 16},
		{"한국어", 6},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Width(tt.input); got != tt.want {
				t.Errorf("Width(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestLines(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"a", []string{"a"}},
		{"a\n", []string{"a"}},
		{"a\nb", []string{"a", "b"}},
		{"a\r\nb\r\n", []string{"a", "b"}},
		{"\n", []string{""}},
		{"a\n\n", []string{"a", ""}},
	}

	for _, tt := range tests {
		got := Lines(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Lines(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTrimBlankLines(t *testing.T) {
	got := TrimBlankLines([]string{"", "  ", "a", " ", "b", "\t", ""})
	want := []string{"a", " ", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TrimBlankLines = %q, want %q", got, want)
	}

	if got := TrimBlankLines([]string{" ", ""}); len(got) != 0 {
		t.Errorf("TrimBlankLines of blank input = %q, want empty", got)
	}
}

func TestExpandTabs(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  string
	}{
		{"a\tb", 4, "a    b"},
		{"a\tb", 1, "a b"},
		{"a\tb", 0, "ab"},
		{"\t\t", 2, "    "},
		{"no tabs", 8, "no tabs"},
	}

	for _, tt := range tests {
		if got := ExpandTabs(tt.input, tt.n); got != tt.want {
			t.Errorf("ExpandTabs(%q, %d) = %q, want %q", tt.input, tt.n, got, tt.want)
		}
	}
}

func TestRepeat(t *testing.T) {
	var b strings.Builder
	Repeat(&b, '-', 3)
	Repeat(&b, '*', 0)
	Repeat(&b, 'é', 2)
	if got := b.String(); got != "---éé" {
		t.Errorf("Repeat produced %q, want %q", got, "---éé")
	}
}

func TestTruncateWithEllipsis(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"hello", 10, "hello"},
		{"hello", 5, "hello"},
		{"hello world", 6, "hello…"},
		{"hello", 1, "h"},
		{"hello", 0, ""},
	}

	for _, tt := range tests {
		if got := TruncateWithEllipsis(tt.input, tt.width); got != tt.want {
			t.Errorf("TruncateWithEllipsis(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}
