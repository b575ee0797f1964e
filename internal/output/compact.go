package output

import (
	"fmt"
	"io"
	"os"

	"github.com/candlewick-labs/tasklight/internal/task"
)

// TaskCompact renders a list of tasks in one-line-per-record compact format.
func TaskCompact(w io.Writer, tasks []*task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, "No tasks found.")
		return
	}

	for _, t := range tasks {
		fmt.Fprintln(w, formatTaskLine(t))
	}
}

// TaskDetailCompact renders a single task in compact format.
func TaskDetailCompact(w io.Writer, t *task.Task) {
	fmt.Fprintln(w, formatTaskLine(t))
	if t.Body != "" {
		fmt.Fprintln(w, t.Body)
	}
}

// formatTaskLine renders one task as "#ID [x] priority/category text".
func formatTaskLine(t *task.Task) string {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	return fmt.Sprintf("#%d [%s] %s/%s %s", t.ID, mark, t.Priority, t.Category, t.Text)
}
