package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	switch a.mode {
	case modeConfirmDelete:
		return a.viewDeleteConfirm()
	default:
		return a.viewList()
	}
}

func (a *App) viewList() string {
	var b strings.Builder

	b.WriteString(a.th.Title.Render(a.cfg.List.Name))
	b.WriteString("\n\n")

	tasks := a.mgr.Tasks()
	if len(tasks) == 0 {
		b.WriteString(a.th.Dim.Render("  No tasks yet. Press 'a' to add one."))
		b.WriteString("\n")
	}

	visible := a.visibleRows()
	start := 0
	if a.cursor >= visible {
		start = a.cursor - visible + 1
	}
	end := start + visible
	if end > len(tasks) {
		end = len(tasks)
	}

	if start > 0 {
		b.WriteString(a.th.Dim.Render(fmt.Sprintf("  ↑ %d more", start)))
		b.WriteString("\n")
	}

	for i := start; i < end; i++ {
		b.WriteString(a.renderRow(i))
		b.WriteString("\n")
	}

	if end < len(tasks) {
		b.WriteString(a.th.Dim.Render(fmt.Sprintf("  ↓ %d more", len(tasks)-end)))
		b.WriteString("\n")
	}

	switch a.mode {
	case modeInput:
		b.WriteString("\n")
		b.WriteString(a.renderForm())
	case modeRemind:
		b.WriteString("\n")
		b.WriteString(a.renderRemind())
	}

	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())

	return b.String()
}

func (a *App) renderRow(i int) string {
	t := a.mgr.Tasks()[i]

	mark := "·"
	textStyle := a.th.Pending
	if t.Completed {
		mark = "✓"
		textStyle = a.th.Done
	}

	prio := a.th.Priority(t.Priority).Render(t.Priority)
	cat := a.th.Category.Render(t.Category)
	line := fmt.Sprintf(" %s %s %s %s  %s",
		mark, a.th.Dim.Render(fmt.Sprintf("#%-3d", t.ID)), prio, cat,
		textStyle.Render(truncate(t.Text, a.width-24))) //nolint:mnd // room for mark, id, labels

	if i == a.cursor && a.mode == modeList {
		return a.th.Selected.Width(a.width).Render(line)
	}
	return line
}

func (a *App) renderForm() string {
	_, editing := a.mgr.Editing()
	label := "New task"
	if editing {
		id, _ := a.mgr.Editing()
		label = fmt.Sprintf("Edit task #%d", id)
	}

	selectors := fmt.Sprintf("%s %s   %s %s",
		a.th.FormLabel.Render("priority:"),
		a.th.Priority(a.cfg.Priorities[a.prioIdx]).Render(a.cfg.Priorities[a.prioIdx]),
		a.th.FormLabel.Render("category:"),
		a.th.Category.Render(a.cfg.Categories[a.catIdx]))

	content := a.th.FormLabel.Render(label) + "\n" +
		a.input.View() + "\n" +
		selectors + "\n" +
		a.th.Dim.Render("enter:save  tab:priority  shift+tab:category  esc:cancel")

	return a.th.FormBorder.Width(a.width - 2).Render(content) //nolint:mnd // border width
}

func (a *App) renderRemind() string {
	content := a.th.FormLabel.Render(fmt.Sprintf("Remind about #%d after", a.remindID)) + "\n" +
		a.remind.View() + "\n" +
		a.th.Dim.Render("duration like 10m or 1h30m; empty = default  enter:set  esc:cancel")

	return a.th.FormBorder.Width(a.width - 2).Render(content) //nolint:mnd // border width
}

func (a *App) viewDeleteConfirm() string {
	content := a.th.Error.Render("Delete task?") + "\n\n" +
		fmt.Sprintf("  #%d: %s", a.deleteID, truncate(a.deleteText, a.width-10)) + "\n\n" +
		a.th.Dim.Render("y:yes  n:no")

	return a.th.FormBorder.Render(content)
}

func (a *App) renderStatusBar() string {
	done := 0
	for _, t := range a.mgr.Tasks() {
		if t.Completed {
			done++
		}
	}

	status := fmt.Sprintf(" %d tasks, %d done | a:add e:edit space:toggle d:del r:remind t:theme q:quit",
		a.mgr.Len(), done)
	status = truncate(status, a.width)

	lines := []string{}
	if a.permDenied {
		lines = append(lines, a.th.Error.Render(truncate(
			"Notifications unavailable: permission denied", a.width)))
	}
	if a.err != nil {
		lines = append(lines, a.th.Error.Render(truncate("Error: "+a.err.Error(), a.width)))
	}
	if a.notice != "" {
		lines = append(lines, a.th.Dim.Render(truncate(a.notice, a.width)))
	}
	lines = append(lines, a.th.StatusBar.Render(status))

	return strings.Join(lines, "\n")
}

// visibleRows returns how many task rows fit above the form and status bar.
func (a *App) visibleRows() int {
	chrome := 5 // title block + blank line + status bar + slack
	if a.mode == modeInput || a.mode == modeRemind {
		chrome += 6 //nolint:mnd // bordered form height
	}
	rows := a.height - chrome
	if rows < 1 {
		return 1
	}
	return rows
}

func truncate(s string, maxLen int) string {
	if maxLen < 4 { //nolint:mnd // minimum length for truncation
		maxLen = 4
	}
	if lipgloss.Width(s) <= maxLen {
		return s
	}
	// Slice by runes to avoid breaking multi-byte UTF-8 characters.
	runes := []rune(s)
	target := maxLen - 3 //nolint:mnd // room for "..."
	if target > len(runes) {
		target = len(runes)
	}
	for target > 0 && lipgloss.Width(string(runes[:target])) > maxLen-3 {
		target--
	}
	return string(runes[:target]) + "..."
}
