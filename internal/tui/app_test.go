package tui

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/candlewick-labs/tasklight/internal/config"
	"github.com/candlewick-labs/tasklight/internal/theme"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg, err := config.Init(filepath.Join(t.TempDir(), "tasklight"), "test")
	if err != nil {
		t.Fatalf("config.Init: %v", err)
	}

	a := New(cfg, nil)
	a.SetNow(func() time.Time {
		return time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	})
	return a
}

func press(t *testing.T, a *App, keys ...string) {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case " ":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		// Commands are not executed; state changes are synchronous.
		a.Update(msg)
	}
}

func typeText(t *testing.T, a *App, text string) {
	t.Helper()
	for _, r := range text {
		press(t, a, string(r))
	}
}

func addTask(t *testing.T, a *App, text string) {
	t.Helper()
	press(t, a, "a")
	typeText(t, a, text)
	press(t, a, "enter")
}

func TestAddTask(t *testing.T) {
	a := newTestApp(t)

	addTask(t, a, "buy milk")

	if a.mgr.Len() != 1 {
		t.Fatalf("list has %d tasks, want 1", a.mgr.Len())
	}
	got := a.mgr.Tasks()[0]
	if got.ID != 1 || got.Text != "buy milk" {
		t.Errorf("task = #%d %q", got.ID, got.Text)
	}
	if got.Completed {
		t.Error("new task should start pending")
	}

	// The task was persisted to disk.
	if _, err := os.Stat(filepath.Join(a.cfg.TasksPath(), "001-buy-milk.md")); err != nil {
		t.Errorf("task file not written: %v", err)
	}

	// next_id advanced and was saved.
	loaded, err := config.Load(a.cfg.Dir())
	if err != nil {
		t.Fatalf("reloading config: %v", err)
	}
	if loaded.NextID != 2 {
		t.Errorf("saved next_id = %d, want 2", loaded.NextID)
	}
}

func TestAddEmptyTextKeepsFormOpen(t *testing.T) {
	a := newTestApp(t)

	press(t, a, "a", "enter")

	if a.mgr.Len() != 0 {
		t.Errorf("empty submit created a task")
	}
	if a.mode != modeInput {
		t.Errorf("mode = %d, want input form still open", a.mode)
	}
	if a.err != nil {
		t.Errorf("empty submit should be silent, got %v", a.err)
	}

	// Typing real text afterwards still works.
	typeText(t, a, "now with text")
	press(t, a, "enter")
	if a.mgr.Len() != 1 {
		t.Error("submit after typing should create the task")
	}
	if a.mode != modeList {
		t.Error("successful submit should close the form")
	}
}

func TestFormPriorityCategoryCycling(t *testing.T) {
	a := newTestApp(t)

	press(t, a, "a")
	typeText(t, a, "cycled")
	press(t, a, "tab", "shift+tab", "enter") // advance one priority and one category

	got := a.mgr.Tasks()[0]
	wantPrio := a.cfg.Priorities[(indexOf(a.cfg.Priorities, a.cfg.Defaults.Priority)+1)%len(a.cfg.Priorities)]
	wantCat := a.cfg.Categories[(indexOf(a.cfg.Categories, a.cfg.Defaults.Category)+1)%len(a.cfg.Categories)]
	if got.Priority != wantPrio {
		t.Errorf("priority = %q, want %q", got.Priority, wantPrio)
	}
	if got.Category != wantCat {
		t.Errorf("category = %q, want %q", got.Category, wantCat)
	}
}

func TestToggleSelected(t *testing.T) {
	a := newTestApp(t)
	addTask(t, a, "toggle me")

	press(t, a, " ")
	if !a.mgr.Tasks()[0].Completed {
		t.Error("space should complete the task")
	}

	press(t, a, "x")
	if a.mgr.Tasks()[0].Completed {
		t.Error("x should reopen the task")
	}
}

func TestEditPreservesIdentity(t *testing.T) {
	a := newTestApp(t)
	addTask(t, a, "first")
	addTask(t, a, "second")

	// Complete the first task, then edit it.
	a.cursor = 0
	press(t, a, " ", "e")
	if a.mode != modeInput {
		t.Fatalf("mode = %d, want input", a.mode)
	}
	if a.input.Value() != "first" {
		t.Errorf("form prefill = %q, want %q", a.input.Value(), "first")
	}

	typeText(t, a, " revised")
	press(t, a, "enter")

	got := a.mgr.Tasks()[0]
	if got.ID != 1 {
		t.Errorf("edit changed ID: %d", got.ID)
	}
	if got.Text != "first revised" {
		t.Errorf("text = %q", got.Text)
	}
	if !got.Completed {
		t.Error("edit must preserve completion")
	}
	if a.mgr.Len() != 2 {
		t.Errorf("edit changed list length: %d", a.mgr.Len())
	}

	// The file was renamed for the new slug.
	if _, err := os.Stat(filepath.Join(a.cfg.TasksPath(), "001-first-revised.md")); err != nil {
		t.Errorf("renamed file missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(a.cfg.TasksPath(), "001-first.md")); !os.IsNotExist(err) {
		t.Error("old file should be removed after rename")
	}
}

func TestEditCancel(t *testing.T) {
	a := newTestApp(t)
	addTask(t, a, "keep me")

	press(t, a, "e")
	typeText(t, a, " changed")
	press(t, a, "esc")

	if a.mgr.Tasks()[0].Text != "keep me" {
		t.Errorf("esc should discard the edit, got %q", a.mgr.Tasks()[0].Text)
	}
	if _, editing := a.mgr.Editing(); editing {
		t.Error("esc should clear editing state")
	}
}

func TestDeleteFlow(t *testing.T) {
	a := newTestApp(t)
	addTask(t, a, "doomed")
	addTask(t, a, "survivor")

	a.cursor = 0
	press(t, a, "d")
	if a.mode != modeConfirmDelete {
		t.Fatalf("mode = %d, want confirm", a.mode)
	}

	// n cancels.
	press(t, a, "n")
	if a.mgr.Len() != 2 {
		t.Fatal("n should cancel the delete")
	}

	press(t, a, "d", "y")
	if a.mgr.Len() != 1 {
		t.Fatalf("list has %d tasks after delete, want 1", a.mgr.Len())
	}
	if a.mgr.Tasks()[0].Text != "survivor" {
		t.Errorf("wrong task deleted, remaining %q", a.mgr.Tasks()[0].Text)
	}
	if _, err := os.Stat(filepath.Join(a.cfg.TasksPath(), "001-doomed.md")); !os.IsNotExist(err) {
		t.Error("deleted task file still on disk")
	}
}

func TestDeleteEditedTaskResetsForm(t *testing.T) {
	a := newTestApp(t)
	addTask(t, a, "editing this")

	press(t, a, "e", "esc") // open and close the form to exercise state
	press(t, a, "e")
	if a.mode != modeInput {
		t.Fatal("expected input mode")
	}

	// Simulate the task vanishing on disk mid-edit (external delete).
	if err := os.Remove(filepath.Join(a.cfg.TasksPath(), "001-editing-this.md")); err != nil {
		t.Fatal(err)
	}
	a.Update(ReloadMsg{})

	if _, editing := a.mgr.Editing(); editing {
		t.Error("reload after external delete should clear editing state")
	}

	// Submitting now creates a new task rather than resurrecting the old one.
	typeText(t, a, "fresh start")
	press(t, a, "enter")
	if a.mgr.Len() != 1 {
		t.Fatalf("list has %d tasks, want 1", a.mgr.Len())
	}
	if a.mgr.Tasks()[0].ID == 1 {
		t.Error("new task must not reuse the deleted ID")
	}
}

func TestThemeTogglePersists(t *testing.T) {
	a := newTestApp(t)
	before := a.th.Name

	press(t, a, "t")

	want := theme.NameLight
	if before == theme.NameLight {
		want = theme.NameDark
	}
	if a.th.Name != want {
		t.Errorf("theme = %q, want %q", a.th.Name, want)
	}

	loaded, err := config.Load(a.cfg.Dir())
	if err != nil {
		t.Fatalf("reloading config: %v", err)
	}
	if loaded.Theme != want {
		t.Errorf("saved theme = %q, want %q", loaded.Theme, want)
	}
}

func TestCursorBounds(t *testing.T) {
	a := newTestApp(t)
	addTask(t, a, "one")
	addTask(t, a, "two")

	press(t, a, "k", "k", "k")
	if a.cursor != 0 {
		t.Errorf("cursor = %d, want 0", a.cursor)
	}

	press(t, a, "j", "j", "j")
	if a.cursor != 1 {
		t.Errorf("cursor = %d, want 1 (clamped to last task)", a.cursor)
	}
}

func TestRemindPermissionDenied(t *testing.T) {
	a := newTestApp(t)
	addTask(t, a, "remind me")
	a.permDenied = true

	press(t, a, "r")
	if a.mode != modeList {
		t.Error("denied permission should not open the remind prompt")
	}
	if a.err == nil {
		t.Error("denied permission should surface an error")
	}
}

func TestRemindInvalidDelay(t *testing.T) {
	a := newTestApp(t)
	addTask(t, a, "remind me")

	press(t, a, "r")
	if a.mode != modeRemind {
		t.Fatalf("mode = %d, want remind prompt", a.mode)
	}
	typeText(t, a, "soonish")
	press(t, a, "enter")

	if a.mode != modeList {
		t.Error("invalid delay should return to the list")
	}
	if a.err == nil {
		t.Error("invalid delay should surface an error")
	}
}
