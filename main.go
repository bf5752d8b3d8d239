// papergrid renders text grids described in YAML documents.
//
// Usage:
//
//	papergrid [flags] [document.yaml]
//
// The document is read from stdin when no path (or "-") is given.
//
// Flags:
//
//	-config string    Path to configuration file (default: ~/.config/papergrid/config.yaml)
//	-extract string   Render only a region, as "rows:rows,cols:cols" (e.g. 0:2,1:3)
//	-view             Open the rendered grid in the interactive viewer
//	-no-cache         Skip the render cache
//	-clear-cache      Remove every cached render and exit
//	-verbose          Enable debug logging
//	-version          Print version and exit
//	-man              Print man page to stdout in roff format
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"gitlab.com/tinyland/lab/papergrid/cache"
	"gitlab.com/tinyland/lab/papergrid/config"
	"gitlab.com/tinyland/lab/papergrid/display/color"
	"gitlab.com/tinyland/lab/papergrid/display/tui"
	"gitlab.com/tinyland/lab/papergrid/display/widgets"
	"gitlab.com/tinyland/lab/papergrid/docs/manpage"
	"gitlab.com/tinyland/lab/papergrid/grid"
	"gitlab.com/tinyland/lab/papergrid/internal/format"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// region is a half-open rectangle of grid rows and columns.
type region struct {
	rowStart, rowEnd int
	colStart, colEnd int
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("papergrid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "Path to configuration file (default: ~/.config/papergrid/config.yaml)")
		extract    = fs.String("extract", "", "Render only a region, as \"rows:rows,cols:cols\" (e.g. 0:2,1:3)")
		view       = fs.Bool("view", false, "Open the rendered grid in the interactive viewer")
		noCache    = fs.Bool("no-cache", false, "Skip the render cache")
		clearCache = fs.Bool("clear-cache", false, "Remove every cached render and exit")
		verbose    = fs.Bool("verbose", false, "Enable debug logging")
		showVer    = fs.Bool("version", false, "Print version and exit")
		showMan    = fs.Bool("man", false, "Print man page to stdout in roff format")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVer {
		fmt.Fprintf(stdout, "papergrid %s (%s) built %s\n", version, commit, date)
		return 0
	}
	if *showMan {
		fmt.Fprint(stdout, manpage.Generate(version, commit, date))
		return 0
	}

	path := *configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		fmt.Fprintf(stderr, "papergrid: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "papergrid: %v\n", err)
		return 1
	}

	logger, closeLog, err := newLogger(cfg.Log, *verbose, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "papergrid: %v\n", err)
		return 1
	}
	defer closeLog()

	var store *cache.Store
	if (cfg.Cache.Enabled && !*noCache) || *clearCache {
		store, err = cache.NewStore(cfg.Cache.Dir, logger)
		if err != nil {
			logger.Warn("cache unavailable", slog.String("error", err.Error()))
		}
	}
	if *clearCache {
		if store == nil {
			return 1
		}
		if err := store.Clear(); err != nil {
			fmt.Fprintf(stderr, "papergrid: %v\n", err)
			return 1
		}
		logger.Info("cache cleared", slog.String("dir", cfg.Cache.Dir))
		return 0
	}

	var reg *region
	if *extract != "" {
		r, err := parseExtract(*extract)
		if err != nil {
			fmt.Fprintf(stderr, "papergrid: %v\n", err)
			return 2
		}
		reg = &r
	}

	if fs.NArg() > 1 {
		fmt.Fprintf(stderr, "papergrid: expected at most one document, got %d\n", fs.NArg())
		return 2
	}
	data, err := readDocument(fs.Arg(0), stdin)
	if err != nil {
		fmt.Fprintf(stderr, "papergrid: %v\n", err)
		return 1
	}

	out, _ := stdout.(*os.File)
	colored := color.Apply(out)

	key := cache.Key(data,
		fmt.Appendf(nil, "%+v", cfg.Render),
		[]byte(*extract),
		[]byte(strconv.FormatBool(colored)),
	)

	if store != nil && !*view {
		ttl, err := cfg.CacheTTL()
		if err != nil {
			fmt.Fprintf(stderr, "papergrid: %v\n", err)
			return 1
		}
		if entry, fresh, err := store.Lookup(key, ttl); err != nil {
			logger.Warn("cache lookup failed", slog.String("error", err.Error()))
		} else if fresh {
			logger.Debug("cache hit", slog.String("key", key), slog.Duration("age", store.Age(key)))
			fmt.Fprint(stdout, entry.Output)
			return 0
		}
	}

	g, err := buildGrid(data, cfg.Render, colored, reg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "papergrid: %v\n", err)
		return 1
	}

	if *view {
		return runViewer(g, cfg.Viewer, stdout, stderr)
	}

	output := g.String()
	warnIfTooWide(out, output, logger)
	if _, err := io.WriteString(stdout, output); err != nil {
		fmt.Fprintf(stderr, "papergrid: %v\n", err)
		return 1
	}

	if store != nil {
		entry := &cache.Entry{
			Output:     output,
			Rows:       g.CountRows(),
			Columns:    g.CountColumns(),
			RenderedAt: time.Now(),
		}
		if err := store.Save(key, entry); err != nil {
			logger.Warn("cache save failed", slog.String("error", err.Error()))
		}
	}
	return 0
}

// buildGrid parses the document and turns it into a grid, cut down to reg
// when it is set.
func buildGrid(data []byte, defaults config.RenderConfig, colored bool, reg *region, logger *slog.Logger) (*grid.Grid, error) {
	doc, err := config.ParseDocument(data)
	if err != nil {
		return nil, err
	}

	var headerStyle *lipgloss.Style
	if colored && defaults.HeaderColor != "" {
		s := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(defaults.HeaderColor))
		headerStyle = &s
	}

	g, err := widgets.FromDocument(doc, defaults, headerStyle)
	if err != nil {
		return nil, err
	}
	g.SetLogger(logger)

	if reg != nil {
		g, err = g.Extract(reg.rowStart, reg.rowEnd, reg.colStart, reg.colEnd)
		if err != nil {
			return nil, err
		}
	}

	logger.Debug("grid built",
		slog.Int("rows", g.CountRows()),
		slog.Int("columns", g.CountColumns()),
	)
	return g, nil
}

func runViewer(g *grid.Grid, opts config.ViewerConfig, stdout, stderr io.Writer) int {
	row, err := tui.Run(g.Lines(), tui.Options{
		Title:     "papergrid",
		Mouse:     opts.Mouse,
		AltScreen: opts.AltScreen,
	})
	if err != nil {
		fmt.Fprintf(stderr, "papergrid: %v\n", err)
		return 1
	}
	if row < 0 {
		return 0
	}

	// Print the picked row as tab separated cells.
	cells := make([]string, 0, g.CountColumns())
	for col := 0; col < g.CountColumns(); col++ {
		if !g.IsVisible(row, col) {
			continue
		}
		text, _ := g.CellContent(row, col)
		cells = append(cells, color.Strip(text))
	}
	fmt.Fprintln(stdout, strings.Join(cells, "\t"))
	return 0
}

// parseExtract parses "r0:r1,c0:c1" into a half-open region.
func parseExtract(s string) (region, error) {
	rows, cols, ok := strings.Cut(s, ",")
	if !ok {
		return region{}, fmt.Errorf("extract %q: want rows:rows,cols:cols", s)
	}
	r0, r1, err := parseRange(rows)
	if err != nil {
		return region{}, fmt.Errorf("extract %q: rows: %w", s, err)
	}
	c0, c1, err := parseRange(cols)
	if err != nil {
		return region{}, fmt.Errorf("extract %q: columns: %w", s, err)
	}
	return region{rowStart: r0, rowEnd: r1, colStart: c0, colEnd: c1}, nil
}

func parseRange(s string) (int, int, error) {
	a, b, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, 0, fmt.Errorf("%q is not start:end", s)
	}
	start, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, fmt.Errorf("start: %w", err)
	}
	end, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, fmt.Errorf("end: %w", err)
	}
	if start < 0 || end < start {
		return 0, 0, fmt.Errorf("%d:%d is not a valid range", start, end)
	}
	return start, end, nil
}

func readDocument(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(stdin); err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return buf.Bytes(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return data, nil
}

// newLogger builds the CLI logger. The returned func closes the log file,
// if one was opened.
func newLogger(cfg config.LogConfig, verbose bool, stderr io.Writer) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	if verbose {
		level = slog.LevelDebug
	}

	w, closer := stderr, func() {}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, func() { _ = f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closer, nil
}

// warnIfTooWide logs when output is a terminal narrower than the grid.
func warnIfTooWide(out *os.File, output string, logger *slog.Logger) {
	if out == nil || !term.IsTerminal(out.Fd()) {
		return
	}
	width, _, err := term.GetSize(out.Fd())
	if err != nil || width <= 0 {
		return
	}
	if w := format.Width(output); w > width {
		logger.Warn("grid is wider than the terminal",
			slog.Int("grid_width", w),
			slog.Int("terminal_width", width),
		)
	}
}
