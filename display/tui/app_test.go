package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/papergrid/grid"
)

// isQuitCmd executes a tea.Cmd and returns true if it produces a tea.QuitMsg.
func isQuitCmd(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	msg := cmd()
	_, ok := msg.(tea.QuitMsg)
	return ok
}

func testLines() []grid.Line {
	g := grid.New(3, 1)
	g.SetCellBorders(grid.DefaultCellBorder)
	for row, text := range []string{"alpha", "beta", "gamma"} {
		_ = g.Set(grid.Cell(row, 0), grid.NewSettings().Text(text))
	}
	return g.Lines()
}

func readyModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(testLines(), Options{Title: "test"})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	return updated.(Model)
}

func press(m Model, msg tea.KeyMsg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	m := NewModel(testLines(), Options{})

	if m.Selected() != -1 {
		t.Errorf("expected no selection, got %d", m.Selected())
	}
	if m.ready {
		t.Error("expected ready to be false")
	}
	if len(m.rows) != 3 {
		t.Errorf("expected 3 content rows, got %v", m.rows)
	}
	if m.Init() != nil {
		t.Error("expected Init() to return nil Cmd")
	}
	if got := m.View(); got != "Initializing..." {
		t.Errorf("expected placeholder view before sizing, got %q", got)
	}
}

func TestModel_Update_Quit(t *testing.T) {
	m := readyModel(t)

	_, cmd := m.Update(runes("q"))
	if !isQuitCmd(cmd) {
		t.Error("expected 'q' key to produce tea.Quit command")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuitCmd(cmd) {
		t.Error("expected ctrl+c to produce tea.Quit command")
	}
}

func TestModel_Update_Help(t *testing.T) {
	m := readyModel(t)
	if m.help.ShowAll {
		t.Fatal("expected short help by default")
	}

	m = press(m, runes("?"))
	if !m.help.ShowAll {
		t.Error("expected '?' to expand help")
	}
	m = press(m, runes("?"))
	if m.help.ShowAll {
		t.Error("expected second '?' to collapse help")
	}
}

func TestModel_RowSelection(t *testing.T) {
	m := readyModel(t)

	m = press(m, runes("n"))
	if m.Selected() != 0 {
		t.Fatalf("expected row 0 after first next, got %d", m.Selected())
	}
	m = press(m, runes("n"))
	m = press(m, runes("n"))
	if m.Selected() != 2 {
		t.Fatalf("expected row 2, got %d", m.Selected())
	}
	m = press(m, runes("n"))
	if m.Selected() != 0 {
		t.Errorf("expected selection to wrap to row 0, got %d", m.Selected())
	}
	m = press(m, runes("p"))
	if m.Selected() != 2 {
		t.Errorf("expected prev to wrap to row 2, got %d", m.Selected())
	}

	m = press(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Selected() != -1 {
		t.Errorf("expected esc to clear selection, got %d", m.Selected())
	}

	m = press(m, runes("p"))
	if m.Selected() != 2 {
		t.Errorf("expected prev from nothing to pick the last row, got %d", m.Selected())
	}
}

func TestModel_SelectIgnoresUnknownRows(t *testing.T) {
	m := readyModel(t)
	m.Select(1)
	m.Select(7)
	if m.Selected() != 1 {
		t.Errorf("expected selection to stay at 1, got %d", m.Selected())
	}
}

func TestModel_View(t *testing.T) {
	m := readyModel(t)
	m.Select(1)

	view := m.View()
	for _, want := range []string{"test", "row 2 of 3", "|alpha|", "beta", "|gamma|", "+-----+"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q:\n%s", want, view)
		}
	}
}

func TestModel_ClickOutsideZones(t *testing.T) {
	m := readyModel(t)
	_ = m.View()

	updated, cmd := m.Update(tea.MouseMsg{
		X: 200, Y: 200,
		Action: tea.MouseActionRelease,
		Button: tea.MouseButtonLeft,
	})
	if isQuitCmd(cmd) {
		t.Error("click outside the quit button should not quit")
	}
	if got := updated.(Model).Selected(); got != -1 {
		t.Errorf("expected no selection, got %d", got)
	}
}
