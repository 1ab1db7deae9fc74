package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lgoulart/jumpmap/pkg/store"
)

func testSummaries() []store.Summary {
	return []store.Summary{
		{ID: "aaaa1111-0000-0000-0000-000000000000", Label: "base platform", CreatedAt: time.Now(), Records: 96},
		{ID: "bbbb2222-0000-0000-0000-000000000000", CreatedAt: time.Now().Add(-2 * time.Hour), Records: 8},
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestRunListModelNavigation(t *testing.T) {
	m := NewRunListModel(testSummaries())

	updated, _ := m.Update(keyMsg("down"))
	m = updated.(RunListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d after down, want 1", m.Cursor)
	}

	// Cursor clamps at the last entry
	updated, _ = m.Update(keyMsg("down"))
	m = updated.(RunListModel)
	if m.Cursor != 1 {
		t.Errorf("cursor = %d after down at end, want 1", m.Cursor)
	}

	updated, _ = m.Update(keyMsg("up"))
	m = updated.(RunListModel)
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after up, want 0", m.Cursor)
	}
}

func TestRunListModelSelection(t *testing.T) {
	m := NewRunListModel(testSummaries())

	updated, _ := m.Update(keyMsg("down"))
	m = updated.(RunListModel)
	updated, _ = m.Update(keyMsg("enter"))
	m = updated.(RunListModel)

	if m.Selected == nil {
		t.Fatal("enter should select the run under the cursor")
	}
	if m.Selected.ID != "bbbb2222-0000-0000-0000-000000000000" {
		t.Errorf("selected ID = %q", m.Selected.ID)
	}
}

func TestRunListModelQuitWithoutSelection(t *testing.T) {
	m := NewRunListModel(testSummaries())

	updated, cmd := m.Update(keyMsg("q"))
	m = updated.(RunListModel)

	if m.Selected != nil {
		t.Error("q should not select a run")
	}
	if cmd == nil {
		t.Error("q should quit the program")
	}
}

func TestRunListModelView(t *testing.T) {
	view := NewRunListModel(testSummaries()).View()

	if !strings.Contains(view, "Select Run") {
		t.Error("view should contain the title")
	}
	if !strings.Contains(view, "aaaa1111") {
		t.Error("view should contain the short run ID")
	}
	if !strings.Contains(view, "base platform") {
		t.Error("view should contain the run label")
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("aaaa1111-0000-0000"); got != "aaaa1111" {
		t.Errorf("shortID() = %q, want aaaa1111", got)
	}
	if got := shortID("noseparator"); got != "noseparator" {
		t.Errorf("shortID() = %q, want unchanged", got)
	}
}

func TestFormatRelativeTime(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"minutes", time.Now().Add(-30 * time.Minute), "30m ago"},
		{"hours", time.Now().Add(-3 * time.Hour), "3h ago"},
		{"days", time.Now().Add(-48 * time.Hour), "2d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatRelativeTime(tt.t); got != tt.want {
				t.Errorf("formatRelativeTime() = %q, want %q", got, tt.want)
			}
		})
	}
}
