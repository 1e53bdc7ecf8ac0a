package cli

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/drawrows/pkg/core/rows"
	"github.com/matzehuels/drawrows/pkg/interval"
)

func assignmentModel(t *testing.T, pairs ...[2]int64) AssignmentModel {
	t.Helper()
	ivs, err := interval.FromPairs(pairs...)
	if err != nil {
		t.Fatal(err)
	}
	res, err := rows.Assign(ivs)
	if err != nil {
		t.Fatal(err)
	}
	return NewAssignmentModel(res, "test")
}

func press(m AssignmentModel, keys ...string) AssignmentModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(AssignmentModel)
	}
	return m
}

func TestAssignmentModelNavigation(t *testing.T) {
	m := assignmentModel(t, [2]int64{1, 5}, [2]int64{2, 3}, [2]int64{6, 8})

	m = press(m, "down", "down", "down")
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2 (clamped)", m.Cursor)
	}
	m = press(m, "up", "g")
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0 after g", m.Cursor)
	}
	m = press(m, "G")
	if m.Cursor != 2 {
		t.Errorf("Cursor = %d, want 2 after G", m.Cursor)
	}
}

func TestAssignmentModelScrolls(t *testing.T) {
	pairs := make([][2]int64, 20)
	for i := range pairs {
		pairs[i] = [2]int64{int64(i), int64(i)}
	}
	m := assignmentModel(t, pairs...)
	m.Height = 5

	for range 7 {
		m = press(m, "down")
	}
	if m.Cursor != 7 || m.Offset != 3 {
		t.Errorf("Cursor/Offset = %d/%d, want 7/3", m.Cursor, m.Offset)
	}
}

func TestAssignmentModelSortByRow(t *testing.T) {
	m := assignmentModel(t, [2]int64{1, 5}, [2]int64{2, 3}, [2]int64{6, 8})

	m = press(m, "s")
	if !m.ByRow {
		t.Fatal("s should toggle ByRow")
	}
	// Row 1 holds intervals 0 and 2, row 2 holds interval 1.
	want := []int{0, 2, 1}
	for i, idx := range m.order {
		if idx != want[i] {
			t.Fatalf("order = %v, want %v", m.order, want)
		}
	}

	m = press(m, "s")
	if m.ByRow || m.order[1] != 1 {
		t.Errorf("second s should restore input order, got %v", m.order)
	}
}

func TestAssignmentModelSegments(t *testing.T) {
	m := assignmentModel(t, [2]int64{1, 5}, [2]int64{2, 3}, [2]int64{6, 8})

	m = press(m, "down", "tab")
	if m.Mode != modeSegments || m.Cursor != 0 {
		t.Fatalf("tab: mode=%d cursor=%d", m.Mode, m.Cursor)
	}
	m = press(m, "G")
	if m.Cursor != 3 {
		t.Errorf("Cursor = %d, want 3 (four segments)", m.Cursor)
	}

	view := m.View()
	if !strings.Contains(view, "Depth") {
		t.Errorf("segment view missing header:\n%s", view)
	}
}

func TestAssignmentModelView(t *testing.T) {
	m := assignmentModel(t, [2]int64{10, 20}, [2]int64{15, 30})
	view := m.View()
	for _, want := range []string{"test", "2 intervals", "2 rows", "Begin", "30"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestAssignmentModelEmpty(t *testing.T) {
	m := assignmentModel(t)
	m = press(m, "down", "tab", "G")
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d on empty model", m.Cursor)
	}
	if !strings.Contains(m.View(), "nothing to show") {
		t.Error("empty view should say so")
	}
}

func TestAssignmentModelQuit(t *testing.T) {
	m := assignmentModel(t, [2]int64{1, 2})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestBar(t *testing.T) {
	m := assignmentModel(t, [2]int64{0, 99}, [2]int64{50, 50})

	full := m.bar(0, 99)
	if strings.Count(full, "━") != barWidth {
		t.Errorf("full bar = %q", full)
	}
	point := m.bar(50, 50)
	if strings.Count(point, "━") != 1 {
		t.Errorf("point bar = %q, want a single cell", point)
	}
	if n := len([]rune(point)); n != barWidth {
		t.Errorf("bar width = %d, want %d", n, barWidth)
	}
}

func TestAssignmentModelWideSpan(t *testing.T) {
	m := assignmentModel(t, [2]int64{-9e18, 9e18}, [2]int64{0, 0})

	view := m.View()
	if !strings.Contains(view, "9000000000000000000") {
		t.Errorf("view missing the wide interval:\n%s", view)
	}
	for _, b := range []string{m.bar(-9e18, 9e18), m.bar(0, 0)} {
		if n := len([]rune(b)); n != barWidth {
			t.Errorf("bar width = %d, want %d", n, barWidth)
		}
	}
	if got := strings.Count(m.bar(-9e18, 9e18), "━"); got != barWidth {
		t.Errorf("full-range bar covers %d cells, want %d", got, barWidth)
	}

	m = press(m, "tab")
	if !strings.Contains(m.View(), "Depth") {
		t.Error("segment view should render for wide spans")
	}
}

func TestLoadAssignment(t *testing.T) {
	c, _, _ := testCLI(t)
	input := writeInput(t, "1 5\n3 8\n")

	m, err := c.loadAssignment(context.Background(), input)
	if err != nil {
		t.Fatal(err)
	}
	if m.Title != "regions.txt" || m.Result.RowCount != 2 {
		t.Errorf("model = %q, %d rows", m.Title, m.Result.RowCount)
	}
}
