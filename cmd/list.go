package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/candlewick-labs/tasklight/internal/config"
	"github.com/candlewick-labs/tasklight/internal/output"
	"github.com/candlewick-labs/tasklight/internal/task"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `Lists tasks in insertion order. Filters can be combined; a task must
match all of them to be shown.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().Bool("completed", false, "show only completed tasks")
	listCmd.Flags().Bool("pending", false, "show only pending tasks")
	listCmd.Flags().StringP("priority", "p", "", "filter by priority")
	listCmd.Flags().StringP("category", "c", "", "filter by category")
	listCmd.Flags().StringP("search", "s", "", "filter by substring of task text (case-insensitive)")
	listCmd.Flags().IntP("limit", "n", 0, "limit output to the first N matching tasks")
	rootCmd.AddCommand(listCmd)
}

type listFilter struct {
	completed *bool
	priority  string
	category  string
	search    string
	limit     int
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	filter, err := parseListFilter(cmd, cfg)
	if err != nil {
		return err
	}

	tasks, warnings, err := task.ReadAllLenient(cfg.TasksPath())
	if err != nil {
		return err
	}
	printWarnings(warnings)

	tasks = filter.apply(tasks)

	switch outputFormat() {
	case output.FormatJSON:
		if tasks == nil {
			tasks = []*task.Task{}
		}
		return output.JSON(os.Stdout, tasks)
	case output.FormatCompact:
		output.TaskCompact(os.Stdout, tasks)
	default:
		output.TaskTable(os.Stdout, tasks)
	}
	return nil
}

func parseListFilter(cmd *cobra.Command, cfg *config.Config) (*listFilter, error) {
	f := &listFilter{}

	completed, _ := cmd.Flags().GetBool("completed")
	pending, _ := cmd.Flags().GetBool("pending")
	switch {
	case completed && pending:
		// Both flags cancel out.
	case completed:
		v := true
		f.completed = &v
	case pending:
		v := false
		f.completed = &v
	}

	if v, _ := cmd.Flags().GetString("priority"); v != "" {
		if err := task.ValidatePriority(v, cfg.Priorities); err != nil {
			return nil, err
		}
		f.priority = v
	}
	if v, _ := cmd.Flags().GetString("category"); v != "" {
		if err := task.ValidateCategory(v, cfg.Categories); err != nil {
			return nil, err
		}
		f.category = v
	}

	f.search, _ = cmd.Flags().GetString("search")
	f.limit, _ = cmd.Flags().GetInt("limit")

	return f, nil
}

// apply returns the tasks matching all filter conditions, preserving order.
func (f *listFilter) apply(tasks []*task.Task) []*task.Task {
	var matched []*task.Task
	needle := strings.ToLower(f.search)

	for _, t := range tasks {
		if f.completed != nil && t.Completed != *f.completed {
			continue
		}
		if f.priority != "" && t.Priority != f.priority {
			continue
		}
		if f.category != "" && t.Category != f.category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(t.Text), needle) {
			continue
		}
		matched = append(matched, t)
		if f.limit > 0 && len(matched) >= f.limit {
			break
		}
	}
	return matched
}
