// Package format holds the string measurement helpers shared by the grid
// renderer and the widgets built on top of it.
package format

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Width returns the display width of the widest line in s.
// ANSI escape sequences take no space; wide characters and emoji take two
// columns.
func Width(s string) int {
	w := 0
	for _, line := range strings.Split(s, "\n") {
		if lw := ansi.StringWidth(line); lw > w {
			w = lw
		}
	}
	return w
}

// Lines splits s into lines. A trailing newline does not start a new line
// and the empty string has no lines at all. "\r\n" endings are accepted.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// TrimBlankLines drops leading and trailing lines that hold only whitespace.
func TrimBlankLines(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}

// ExpandTabs replaces every tab in s with n spaces. A non-positive n
// removes tabs.
func ExpandTabs(s string, n int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	if n < 0 {
		n = 0
	}
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", n))
}

// Repeat writes r into b n times.
func Repeat(b *strings.Builder, r rune, n int) {
	for i := 0; i < n; i++ {
		b.WriteRune(r)
	}
}

// TruncateWithEllipsis cuts s down to maxWidth display columns, ending it
// with "…" when something was removed. Escape sequences are preserved.
func TruncateWithEllipsis(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return ansi.Truncate(s, 1, "")
	}
	return ansi.Truncate(s, maxWidth, "…")
}
