// Package list implements the in-memory task list state machine:
// an ordered collection of tasks plus the transient editing state
// used by the input form.
package list

import (
	"strings"
	"time"

	"github.com/candlewick-labs/tasklight/internal/clierr"
	"github.com/candlewick-labs/tasklight/internal/task"
)

// ErrEmptyText is returned by Upsert when the submitted text is blank.
// Callers that mirror form behavior treat it as a silent no-op.
var ErrEmptyText = clierr.New(clierr.EmptyText, "task text is empty")

// Manager holds an ordered task collection and the editing state.
// Tasks keep insertion order; IDs are unique and never reused.
type Manager struct {
	tasks  []*task.Task
	nextID int

	// editID is the ID of the task currently loaded into the form,
	// or 0 when the form is in create mode. Edits reference tasks by
	// ID rather than index so a concurrent delete cannot retarget them.
	editID int

	now func() time.Time
}

// New creates a Manager seeded with existing tasks. nextID must be
// greater than every seeded task ID.
func New(tasks []*task.Task, nextID int) *Manager {
	m := &Manager{nextID: nextID, now: time.Now}
	for _, t := range tasks {
		m.tasks = append(m.tasks, t)
		if t.ID >= m.nextID {
			m.nextID = t.ID + 1
		}
	}
	if m.nextID < 1 {
		m.nextID = 1
	}
	return m
}

// SetNow overrides the clock used for timestamps (for testing).
func (m *Manager) SetNow(fn func() time.Time) {
	m.now = fn
}

// Tasks returns the tasks in insertion order. The slice is shared;
// callers must not reorder it.
func (m *Manager) Tasks() []*task.Task {
	return m.tasks
}

// Len returns the number of tasks.
func (m *Manager) Len() int {
	return len(m.tasks)
}

// NextID returns the ID the next created task will receive.
func (m *Manager) NextID() int {
	return m.nextID
}

// Get returns the task with the given ID, or nil.
func (m *Manager) Get(id int) *task.Task {
	for _, t := range m.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// Editing returns the ID of the task being edited and whether an edit
// is in progress.
func (m *Manager) Editing() (int, bool) {
	return m.editID, m.editID != 0
}

// BeginEdit loads the task with the given ID as the editing target and
// returns it so the form can be pre-filled.
func (m *Manager) BeginEdit(id int) (*task.Task, error) {
	t := m.Get(id)
	if t == nil {
		return nil, clierr.Newf(clierr.TaskNotFound, "task not found: #%d", id).
			WithDetails(map[string]any{"id": id})
	}
	m.editID = id
	return t, nil
}

// CancelEdit clears the editing state without applying changes.
func (m *Manager) CancelEdit() {
	m.editID = 0
}

// Upsert applies a form submission. In create mode it appends a new
// task with a fresh ID and completed=false. In edit mode it overwrites
// text, priority, and category of the edited task, preserving its ID,
// completed flag, and position. Blank or whitespace-only text returns
// ErrEmptyText and leaves the list and editing state unchanged.
// On success the editing state is cleared.
func (m *Manager) Upsert(text, priority, category string) (*task.Task, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}

	now := m.now()

	if m.editID != 0 {
		id := m.editID
		t := m.Get(id)
		if t == nil {
			// The edited task was deleted out from under the form.
			m.editID = 0
			return nil, clierr.Newf(clierr.TaskNotFound, "task not found: #%d", id)
		}
		t.Text = text
		t.Priority = priority
		t.Category = category
		t.Updated = now
		m.editID = 0
		return t, nil
	}

	t := &task.Task{
		ID:       m.nextID,
		Text:     text,
		Priority: priority,
		Category: category,
		Created:  now,
		Updated:  now,
	}
	m.nextID++
	m.tasks = append(m.tasks, t)
	return t, nil
}

// Delete removes the task with the given ID, preserving the order of
// the remaining tasks. If that task was being edited, the editing
// state is cleared so the form reverts to create mode.
func (m *Manager) Delete(id int) (*task.Task, error) {
	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			if m.editID == id {
				m.editID = 0
			}
			return t, nil
		}
	}
	return nil, clierr.Newf(clierr.TaskNotFound, "task not found: #%d", id).
		WithDetails(map[string]any{"id": id})
}

// Toggle flips the completed flag of the task with the given ID.
func (m *Manager) Toggle(id int) (*task.Task, error) {
	t := m.Get(id)
	if t == nil {
		return nil, clierr.Newf(clierr.TaskNotFound, "task not found: #%d", id).
			WithDetails(map[string]any{"id": id})
	}
	t.Completed = !t.Completed
	t.Updated = m.now()
	return t, nil
}

// PriorityCount holds a count for a priority level.
type PriorityCount struct {
	Priority string `json:"priority"`
	Count    int    `json:"count"`
}

// CategoryCount holds a count for a category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Overview is the aggregate list summary.
type Overview struct {
	ListName   string          `json:"list_name"`
	TotalTasks int             `json:"total_tasks"`
	Completed  int             `json:"completed"`
	Pending    int             `json:"pending"`
	Priorities []PriorityCount `json:"priorities"`
	Categories []CategoryCount `json:"categories"`
}

// Summary computes counts by completion, priority, and category.
// priorities and categories give the display order; values outside
// them are ignored.
func Summary(name string, tasks []*task.Task, priorities, categories []string) Overview {
	o := Overview{ListName: name, TotalTasks: len(tasks)}

	prioMap := make(map[string]int, len(priorities))
	catMap := make(map[string]int, len(categories))
	for _, t := range tasks {
		if t.Completed {
			o.Completed++
		} else {
			o.Pending++
		}
		prioMap[t.Priority]++
		catMap[t.Category]++
	}

	for _, p := range priorities {
		o.Priorities = append(o.Priorities, PriorityCount{Priority: p, Count: prioMap[p]})
	}
	for _, c := range categories {
		o.Categories = append(o.Categories, CategoryCount{Category: c, Count: catMap[c]})
	}

	return o
}
