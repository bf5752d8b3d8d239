// Package tui implements the interactive grid viewer: a scrollable
// viewport over rendered grid lines where rows can be picked with the
// keyboard or the mouse.
package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/papergrid/grid"
)

const (
	zoneHelp = "help"
	zoneQuit = "quit"
)

// Options configure the viewer.
type Options struct {
	// Title is shown above the grid.
	Title string
	// Mouse enables row picking by clicking.
	Mouse bool
	// AltScreen runs the viewer in the alternate screen buffer.
	AltScreen bool
}

// Model is the Bubbletea model of the grid viewer.
type Model struct {
	lines    []grid.Line
	rows     []int // grid rows that have content lines, ascending
	title    string
	selected int // selected grid row, -1 for none
	width    int
	height   int
	ready    bool

	viewport viewport.Model
	help     help.Model
	zones    *zone.Manager
}

// NewModel returns a viewer for lines with nothing selected.
func NewModel(lines []grid.Line, opts Options) Model {
	var rows []int
	for _, l := range lines {
		if l.Kind == grid.LineContent && !slices.Contains(rows, l.Row) {
			rows = append(rows, l.Row)
		}
	}
	slices.Sort(rows)

	return Model{
		lines:    lines,
		rows:     rows,
		title:    opts.Title,
		selected: -1,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		zones:    zone.New(),
	}
}

// Selected returns the selected grid row, or -1.
func (m Model) Selected() int {
	return m.selected
}

// Init implements tea.Model. No initial commands are needed.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.resize()
			return m, nil
		case key.Matches(msg, keys.Top):
			m.viewport.GotoTop()
			return m, nil
		case key.Matches(msg, keys.Bottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, keys.NextRow):
			m.step(1)
			return m, nil
		case key.Matches(msg, keys.PrevRow):
			m.step(-1)
			return m, nil
		case key.Matches(msg, keys.Clear):
			m.selected = -1
			m.refresh()
			return m, nil
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
			return m.click(msg)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) click(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.inZone(zoneQuit, msg):
		return m, tea.Quit
	case m.inZone(zoneHelp, msg):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}
	for i, l := range m.lines {
		if l.Kind == grid.LineContent && m.inZone(lineZone(i), msg) {
			m.Select(l.Row)
			break
		}
	}
	return m, nil
}

func (m Model) inZone(id string, msg tea.MouseMsg) bool {
	z := m.zones.Get(id)
	return z != nil && z.InBounds(msg)
}

// Select marks grid row as selected and scrolls it into view. Rows without
// content lines are ignored.
func (m *Model) Select(row int) {
	if !slices.Contains(m.rows, row) {
		return
	}
	m.selected = row
	m.refresh()

	first := slices.IndexFunc(m.lines, func(l grid.Line) bool {
		return l.Kind == grid.LineContent && l.Row == row
	})
	if first < m.viewport.YOffset || first >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(first)
	}
}

// step moves the selection by delta rows, wrapping around.
func (m *Model) step(delta int) {
	if len(m.rows) == 0 {
		return
	}
	i := slices.Index(m.rows, m.selected)
	switch {
	case i < 0 && delta > 0:
		i = 0
	case i < 0:
		i = len(m.rows) - 1
	default:
		i = (i + delta + len(m.rows)) % len(m.rows)
	}
	m.Select(m.rows[i])
}

func (m *Model) resize() {
	if !m.ready {
		return
	}
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-lipgloss.Height(m.renderHeader())-lipgloss.Height(m.renderFooter()), 1)
	m.refresh()
}

// refresh rebuilds the viewport content from the grid lines.
func (m *Model) refresh() {
	var b strings.Builder
	for i, l := range m.lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		text := l.Text
		if l.Kind == grid.LineContent && l.Row == m.selected {
			text = styleSelected.Render(text)
		}
		b.WriteString(m.zones.Mark(lineZone(i), text))
	}
	m.viewport.SetContent(b.String())
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.viewport.View(),
		m.renderFooter(),
	))
}

func (m Model) renderHeader() string {
	title := m.title
	if title == "" {
		title = "papergrid"
	}
	status := fmt.Sprintf("%d rows", len(m.rows))
	if m.selected >= 0 {
		status = fmt.Sprintf("row %d of %d", m.selected+1, len(m.rows))
	}
	return styleHeader.Width(m.width).Render(styleTitle.Render(title) + "  " + status)
}

func (m Model) renderFooter() string {
	buttons := m.zones.Mark(zoneHelp, styleButton.Render("?")) + " " +
		m.zones.Mark(zoneQuit, styleButton.Render("q"))
	return styleFooter.Render(buttons + "  " + m.help.View(keys))
}

func lineZone(i int) string {
	return fmt.Sprintf("line-%d", i)
}

// Run shows the viewer until the user quits and returns the selected row,
// or -1.
func Run(lines []grid.Line, opts Options) (int, error) {
	var progOpts []tea.ProgramOption
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	m := NewModel(lines, opts)
	defer m.zones.Close()

	final, err := tea.NewProgram(m, progOpts...).Run()
	if err != nil {
		return -1, fmt.Errorf("tui: %w", err)
	}
	return final.(Model).Selected(), nil
}
