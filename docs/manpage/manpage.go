// Package manpage generates a roff-formatted man page for papergrid.
//
// The viewer key bindings and version come from the running binary, so the
// page never drifts from the code.
//
// Usage:
//
//	papergrid -man | man -l -
//	papergrid -man > ~/.local/share/man/man1/papergrid.1
package manpage

import (
	"fmt"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/papergrid/config"
	"gitlab.com/tinyland/lab/papergrid/display/tui"
)

// Generate produces a complete roff-formatted man(1) page. The version,
// commit, and date parameters come from the build-time linker variables.
func Generate(version, commit, date string) string {
	var b strings.Builder

	fmt.Fprintf(&b, ".TH PAPERGRID 1 \"%s\" \"papergrid %s\" \"User Commands\"\n",
		time.Now().Format("January 2006"), version)
	writeName(&b)
	writeDescription(&b)
	writeOptions(&b)
	writeDocument(&b)
	writeKeybindings(&b)
	writeFiles(&b)
	writeExamples(&b)
	fmt.Fprintf(&b, ".SH VERSION\n%s (%s) built %s\n", version, commit, date)

	return b.String()
}

// roffEscape escapes special roff characters in a string.
func roffEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `-`, `\-`)
	s = strings.ReplaceAll(s, `.`, `\&.`)
	return s
}

func writeName(b *strings.Builder) {
	b.WriteString(`.SH NAME
papergrid \- render text grids from YAML documents
.SH SYNOPSIS
.B papergrid
[\fIOPTIONS\fR] [\fIDOCUMENT\fR]
`)
}

func writeDescription(b *strings.Builder) {
	b.WriteString(`.SH DESCRIPTION
.B papergrid
lays out a grid of text cells and prints it as a fixed-width character
block. Cells may hold several lines, carry their own padding and
alignment, and span several columns. Border lines are only drawn where the
chosen style asks for them.
.PP
The document is read from \fIDOCUMENT\fR, or from standard input when it
is omitted or \fB\-\fR. Rendered output is cached; an unchanged document
is printed straight from the cache.
`)
}

func writeOptions(b *strings.Builder) {
	b.WriteString(".SH OPTIONS\n")

	flags := []struct {
		flag string
		arg  string
		desc string
	}{
		{"config", "PATH", "Path to the YAML configuration file. Default: ~/.config/papergrid/config.yaml."},
		{"extract", "R0:R1,C0:C1", "Render only rows R0 up to R1 and columns C0 up to C1 (end exclusive). Borders and cell settings inside the region are kept."},
		{"view", "", "Open the grid in the interactive viewer. The picked row is printed as tab separated cells on exit."},
		{"no\\-cache", "", "Render without reading or writing the cache."},
		{"clear\\-cache", "", "Remove every cached render and exit."},
		{"verbose", "", "Enable debug logging, including layout repairs."},
		{"version", "", "Print the version, commit hash, and build date, then exit."},
		{"man", "", "Print this man page in roff format."},
	}

	for _, f := range flags {
		b.WriteString(".TP\n")
		if f.arg != "" {
			fmt.Fprintf(b, ".BR \\-%s \" \\fI%s\\fR\"\n", f.flag, f.arg)
		} else {
			fmt.Fprintf(b, ".B \\-%s\n", f.flag)
		}
		b.WriteString(f.desc + "\n")
	}
}

func writeDocument(b *strings.Builder) {
	b.WriteString(`.SH DOCUMENT FORMAT
A document is a YAML mapping. Only \fBrows\fR is required.
.TP
.B header
List of column titles, rendered as row 0.
.TP
.B rows
List of rows, each a list of cell strings.
.TP
.B style
Border style:
`)
	b.WriteString(roffEscape(strings.Join(config.BorderStyles, ", ")) + ".\n")
	b.WriteString(`.TP
.B padding, tab_width, align, valign
Defaults for every cell.
.TP
.B trim, lines_alignment
Whitespace trimming and per-line alignment.
.TP
.B margin
Space around the grid, with an optional fill character.
.TP
.B columns
Per-column alignment and max_width truncation.
.TP
.B cells
Per-cell text, span, align and valign. A span of 0 hides the cell.
`)
}

func writeKeybindings(b *strings.Builder) {
	b.WriteString(".SH KEYBINDINGS\nActive in the interactive viewer (\\fB\\-view\\fR).\n")
	for _, k := range tui.Bindings() {
		fmt.Fprintf(b, ".TP\n.B %s\n%s\n", roffEscape(strings.Join(k.Keys(), ", ")), k.Help().Desc)
	}
}

func writeFiles(b *strings.Builder) {
	b.WriteString(`.SH FILES
.TP
.I ~/.config/papergrid/config.yaml
Configuration file (YAML).
.TP
.I ~/.cache/papergrid/
Render cache, one JSON file per document digest.
`)
}

func writeExamples(b *strings.Builder) {
	b.WriteString(`.SH EXAMPLES
Render a document:
.PP
.nf
papergrid services.yaml
.fi
.PP
Render the first two data rows of a piped document:
.PP
.nf
cat services.yaml | papergrid \-extract 1:3,0:2
.fi
.PP
Pick a row interactively:
.PP
.nf
papergrid \-view services.yaml
.fi
`)
}
