package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/candlewick-labs/tasklight/internal/list"
	"github.com/candlewick-labs/tasklight/internal/task"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true)

	// Priority colors matching the TUI palette.
	priorityStyles = map[string]lipgloss.Style{
		"high":   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		"medium": lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		"low":    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
	}

	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	doneMark      = lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Render("✓")
)

// DisableColor strips all styling from table output.
func DisableColor() {
	headerStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
	doneStyle = lipgloss.NewStyle()
	priorityStyles = map[string]lipgloss.Style{}
	categoryStyle = lipgloss.NewStyle()
	doneMark = "x"
}

// TaskTable renders a list of tasks as a formatted table.
func TaskTable(w io.Writer, tasks []*task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, "No tasks found.")
		return
	}

	const pad = 2
	idW, prioW, catW := 4, 10, 10
	for _, t := range tasks {
		idW = max(idW, len(strconv.Itoa(t.ID))+pad)
		prioW = max(prioW, len(t.Priority)+pad)
		catW = max(catW, len(t.Category)+pad)
	}

	header := fmt.Sprintf("%-*s %-3s %-*s %-*s %s",
		idW, "ID", "", prioW, "PRIORITY", catW, "CATEGORY", "TEXT")
	fmt.Fprintln(w, headerStyle.Render(strings.TrimRight(header, " ")))

	for _, t := range tasks {
		mark := dimStyle.Render("·")
		text := t.Text
		if t.Completed {
			mark = doneMark
			text = doneStyle.Render(text)
		}
		row := fmt.Sprintf("%-*d %s %s %s %s",
			idW, t.ID,
			padRight(mark, 3),
			padRight(styledValue(t.Priority, priorityStyles), prioW),
			padRight(categoryStyle.Render(t.Category), catW),
			text)
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

// TaskDetail renders a single task with full detail. The note body is
// appended separately by the caller so it can be markdown-rendered.
func TaskDetail(w io.Writer, t *task.Task) {
	titleLine := fmt.Sprintf("Task #%d: %s", t.ID, t.Text)
	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render(titleLine))
	fmt.Fprintln(w, strings.Repeat("─", len(titleLine)))

	state := "pending"
	if t.Completed {
		state = "completed"
	}
	printField(w, "State", state)
	printField(w, "Priority", styledValue(t.Priority, priorityStyles))
	printField(w, "Category", categoryStyle.Render(t.Category))
	printField(w, "Created", t.Created.Format("2006-01-02 15:04"))
	printField(w, "Updated", t.Updated.Format("2006-01-02 15:04"))
}

// OverviewTable renders a list summary as a formatted dashboard.
func OverviewTable(w io.Writer, o list.Overview) {
	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render(o.ListName))
	fmt.Fprintf(w, "Total: %d tasks (%d pending, %d completed)\n\n",
		o.TotalTasks, o.Pending, o.Completed)

	header := fmt.Sprintf("%-16s %6s", "PRIORITY", "COUNT")
	fmt.Fprintln(w, headerStyle.Render(header))
	for _, pc := range o.Priorities {
		const prioColW = 16
		fmt.Fprintf(w, "%s %6d\n",
			padRight(styledValue(pc.Priority, priorityStyles), prioColW), pc.Count)
	}

	fmt.Fprintln(w)
	catHeader := fmt.Sprintf("%-16s %6s", "CATEGORY", "COUNT")
	fmt.Fprintln(w, headerStyle.Render(catHeader))
	for _, cc := range o.Categories {
		const catColW = 16
		fmt.Fprintf(w, "%s %6d\n",
			padRight(categoryStyle.Render(cc.Category), catColW), cc.Count)
	}
}

// Messagef prints a simple formatted message line.
func Messagef(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format+"\n", args...)
}

func printField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %-12s %s\n", label+":", value)
}

// padRight pads s with spaces to the given visible width, accounting for ANSI
// escape codes that are invisible but consume bytes.
func padRight(s string, width int) string {
	visible := lipgloss.Width(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// styledValue renders s using a matching style from the map, or returns s unchanged.
func styledValue(s string, styles map[string]lipgloss.Style) string {
	if st, ok := styles[s]; ok {
		return st.Render(s)
	}
	return s
}
