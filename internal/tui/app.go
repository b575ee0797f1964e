// Package tui implements the single-screen to-do list UI.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/candlewick-labs/tasklight/internal/config"
	"github.com/candlewick-labs/tasklight/internal/list"
	"github.com/candlewick-labs/tasklight/internal/notify"
	"github.com/candlewick-labs/tasklight/internal/task"
	"github.com/candlewick-labs/tasklight/internal/theme"
)

// mode represents the current screen state.
type mode int

const (
	modeList mode = iota
	modeInput
	modeRemind
	modeConfirmDelete
)

const (
	keyEsc = "esc"

	maxTextLength = 200
	noticeTimeout = 4 * time.Second
)

// App is the top-level bubbletea model: the task list, the input form,
// and the reminder/delete prompts.
type App struct {
	cfg *config.Config
	mgr *list.Manager
	th  theme.Theme

	mode   mode
	cursor int
	width  int
	height int

	input    textinput.Model
	prioIdx  int
	catIdx   int
	remind   textinput.Model
	remindID int

	deleteID   int
	deleteText string

	scheduler  *notify.Scheduler
	permDenied bool

	err    error
	notice string

	logger *log.Logger
	now    func() time.Time
}

// New creates the App model from a config. logger may be nil.
func New(cfg *config.Config, logger *log.Logger) *App {
	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.CharLimit = maxTextLength

	remind := textinput.New()
	remind.Placeholder = cfg.Notifications.DefaultDelay
	remind.CharLimit = 10

	a := &App{
		cfg:       cfg,
		th:        theme.ByName(cfg.Theme),
		input:     input,
		remind:    remind,
		scheduler: notify.NewScheduler(notify.Desktop(), logger),
		logger:    logger,
		now:       time.Now,
	}
	a.loadTasks()
	return a
}

// SetNow overrides the clock (for testing).
func (a *App) SetNow(fn func() time.Time) {
	a.now = fn
}

// Manager exposes the underlying list state (for testing).
func (a *App) Manager() *list.Manager {
	return a.mgr
}

// WatchPaths returns the paths that should be watched for file changes.
func (a *App) WatchPaths() []string {
	paths := []string{a.cfg.TasksPath()}
	if a.cfg.Dir() != a.cfg.TasksPath() {
		paths = append(paths, a.cfg.Dir())
	}
	return paths
}

// loadTasks reads all tasks from disk into a fresh manager, preserving
// the editing state when the edited task still exists.
func (a *App) loadTasks() {
	tasks, _, err := task.ReadAllLenient(a.cfg.TasksPath())
	if err != nil {
		a.err = err
		return
	}
	a.err = nil

	editID, editing := 0, false
	if a.mgr != nil {
		editID, editing = a.mgr.Editing()
	}

	a.mgr = list.New(tasks, a.cfg.NextID)
	a.mgr.SetNow(func() time.Time { return a.now() })
	if editing {
		if _, err := a.mgr.BeginEdit(editID); err != nil {
			// Edited task vanished on disk: drop back to create mode.
			a.resetForm()
		}
	}
	a.clampCursor()
}

// --- Messages ---

// ReloadMsg is sent by the file watcher to trigger a list refresh.
type ReloadMsg struct{}

// permissionMsg carries the result of the startup permission check.
type permissionMsg struct{ err error }

// reminderMsg reports a scheduled (or failed) reminder.
type reminderMsg struct {
	id  int
	err error
}

// clearNoticeMsg expires the transient notice line.
type clearNoticeMsg struct{}

type errMsg struct{ err error }

// Init implements tea.Model. The permission check runs asynchronously
// so startup never blocks on the notification service.
func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.checkPermissionCmd())
}

func (a *App) checkPermissionCmd() tea.Cmd {
	enabled := a.cfg.NotificationsEnabled()
	return func() tea.Msg {
		return permissionMsg{err: notify.CheckPermission(enabled)}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKey(msg)
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.Width = msg.Width - 4 //nolint:mnd // form border width
		return a, nil
	case ReloadMsg:
		a.loadTasks()
		return a, nil
	case permissionMsg:
		if msg.err != nil {
			a.permDenied = true
		}
		return a, nil
	case reminderMsg:
		if msg.err != nil {
			a.err = msg.err
		}
		return a, nil
	case clearNoticeMsg:
		a.notice = ""
		return a, nil
	case errMsg:
		a.err = msg.err
		return a, nil
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeInput:
		return a.handleInputKey(msg)
	case modeRemind:
		return a.handleRemindKey(msg)
	case modeConfirmDelete:
		return a.handleDeleteKey(msg)
	default:
		return a.handleListKey(msg)
	}
}

func (a *App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", keyEsc:
		return a, tea.Quit
	case "j", "down":
		if a.cursor < a.mgr.Len()-1 {
			a.cursor++
		}
	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
		}
	case "a", "n":
		a.resetForm()
		a.mode = modeInput
		a.input.Focus()
	case "e", "enter":
		a.startEdit()
	case " ", "x":
		a.toggleSelected()
	case "d":
		a.startDelete()
	case "r":
		a.startRemind()
	case "t":
		a.toggleTheme()
	}
	return a, nil
}

func (a *App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEsc:
		a.mgr.CancelEdit()
		a.resetForm()
		a.mode = modeList
		return a, nil
	case "tab":
		a.prioIdx = (a.prioIdx + 1) % len(a.cfg.Priorities)
		return a, nil
	case "shift+tab":
		a.catIdx = (a.catIdx + 1) % len(a.cfg.Categories)
		return a, nil
	case "enter":
		return a.submitForm()
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleRemindKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyEsc:
		a.mode = modeList
		return a, nil
	case "enter":
		return a.submitRemind()
	}

	var cmd tea.Cmd
	a.remind, cmd = a.remind.Update(msg)
	return a, cmd
}

func (a *App) handleDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		a.executeDelete()
		a.mode = modeList
	case "n", "N", keyEsc, "q":
		a.mode = modeList
	}
	return a, nil
}

// --- Operations ---

// submitForm applies the input form: create when no edit is in
// progress, update otherwise. Empty text is a silent no-op and keeps
// the form open.
func (a *App) submitForm() (tea.Model, tea.Cmd) {
	_, editing := a.mgr.Editing()

	t, err := a.mgr.Upsert(a.input.Value(), a.cfg.Priorities[a.prioIdx], a.cfg.Categories[a.catIdx])
	if err != nil {
		if err == list.ErrEmptyText {
			return a, nil
		}
		a.err = err
		a.resetForm()
		a.mode = modeList
		return a, nil
	}

	if err := a.persistTask(t); err != nil {
		a.err = err
	} else if editing {
		list.LogMutation(a.cfg.Dir(), "edit", t.ID, t.Text)
	} else {
		a.cfg.NextID = a.mgr.NextID()
		if err := a.cfg.Save(); err != nil {
			a.err = fmt.Errorf("saving config: %w", err)
		}
		list.LogMutation(a.cfg.Dir(), "add", t.ID, t.Text)
		a.cursor = a.mgr.Len() - 1
	}

	a.resetForm()
	a.mode = modeList
	return a, nil
}

func (a *App) startEdit() {
	t := a.selectedTask()
	if t == nil {
		return
	}
	if _, err := a.mgr.BeginEdit(t.ID); err != nil {
		a.err = err
		return
	}
	a.input.SetValue(t.Text)
	a.input.CursorEnd()
	a.prioIdx = indexOf(a.cfg.Priorities, t.Priority)
	a.catIdx = indexOf(a.cfg.Categories, t.Category)
	a.mode = modeInput
	a.input.Focus()
}

func (a *App) toggleSelected() {
	t := a.selectedTask()
	if t == nil {
		return
	}
	toggled, err := a.mgr.Toggle(t.ID)
	if err != nil {
		a.err = err
		return
	}
	if err := task.Write(toggled.File, toggled); err != nil {
		a.err = fmt.Errorf("writing task: %w", err)
		return
	}
	list.LogMutation(a.cfg.Dir(), "toggle", toggled.ID, toggled.Text)
}

func (a *App) startDelete() {
	if t := a.selectedTask(); t != nil {
		a.deleteID = t.ID
		a.deleteText = t.Text
		a.mode = modeConfirmDelete
	}
}

func (a *App) executeDelete() {
	t, err := a.mgr.Delete(a.deleteID)
	if err != nil {
		a.err = err
		return
	}
	if t.File != "" {
		if err := os.Remove(t.File); err != nil {
			a.err = fmt.Errorf("removing task file: %w", err)
		}
	}
	list.LogMutation(a.cfg.Dir(), "delete", t.ID, t.Text)
	a.clampCursor()
}

func (a *App) startRemind() {
	t := a.selectedTask()
	if t == nil {
		return
	}
	if a.permDenied {
		a.err = notify.ErrPermissionDenied
		return
	}
	a.remindID = t.ID
	a.remind.SetValue("")
	a.mode = modeRemind
	a.remind.Focus()
}

// submitRemind schedules a one-shot reminder for the selected task.
// The scheduler runs in its own goroutine: fire-and-forget, tied to
// the program lifetime.
func (a *App) submitRemind() (tea.Model, tea.Cmd) {
	t := a.mgr.Get(a.remindID)
	if t == nil {
		a.mode = modeList
		return a, nil
	}

	delay := a.cfg.ReminderDelay()
	if v := a.remind.Value(); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			a.err = fmt.Errorf("invalid delay %q (try 10m or 1h30m)", v)
			a.mode = modeList
			return a, nil
		}
		delay = d
	}

	a.mode = modeList
	a.notice = fmt.Sprintf("Reminder for #%d in %s", t.ID, delay)
	list.LogMutation(a.cfg.Dir(), "remind", t.ID, delay.String())

	id, text, body := t.ID, t.Text, t.Body
	schedule := func() tea.Msg {
		err := a.scheduler.Schedule(context.Background(), text, reminderBody(body), delay)
		return reminderMsg{id: id, err: err}
	}
	expire := tea.Tick(noticeTimeout, func(time.Time) tea.Msg { return clearNoticeMsg{} })
	return a, tea.Batch(schedule, expire)
}

func (a *App) toggleTheme() {
	a.th = a.th.Toggle()
	a.cfg.Theme = a.th.Name
	if err := a.cfg.Save(); err != nil {
		a.err = fmt.Errorf("saving config: %w", err)
	}
}

// persistTask writes the task file, renaming it when changed text
// produced a new slug.
func (a *App) persistTask(t *task.Task) error {
	slug := task.GenerateSlug(t.Text)
	path := filepath.Join(a.cfg.TasksPath(), task.GenerateFilename(t.ID, slug))

	oldPath := t.File
	t.File = path
	if err := task.Write(path, t); err != nil {
		return fmt.Errorf("writing task: %w", err)
	}
	if oldPath != "" && oldPath != path {
		if err := os.Remove(oldPath); err != nil {
			return fmt.Errorf("removing old file: %w", err)
		}
	}
	return nil
}

// --- Helpers ---

func (a *App) selectedTask() *task.Task {
	tasks := a.mgr.Tasks()
	if a.cursor >= 0 && a.cursor < len(tasks) {
		return tasks[a.cursor]
	}
	return nil
}

func (a *App) clampCursor() {
	if a.mgr == nil {
		a.cursor = 0
		return
	}
	if a.cursor >= a.mgr.Len() {
		a.cursor = a.mgr.Len() - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) resetForm() {
	a.input.SetValue("")
	a.input.Blur()
	a.prioIdx = indexOf(a.cfg.Priorities, a.cfg.Defaults.Priority)
	a.catIdx = indexOf(a.cfg.Categories, a.cfg.Defaults.Category)
}

func indexOf(items []string, s string) int {
	for i, item := range items {
		if item == s {
			return i
		}
	}
	return 0
}

// reminderBody returns the notification body: the task note when
// present, a generic nudge otherwise.
func reminderBody(body string) string {
	if body != "" {
		return body
	}
	return "This task is still waiting on you."
}
