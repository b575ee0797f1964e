package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/candlewick-labs/tasklight/internal/config"
	"github.com/candlewick-labs/tasklight/internal/output"
	"github.com/candlewick-labs/tasklight/internal/task"
)

var toggleCmd = &cobra.Command{
	Use:     "toggle ID[,ID,...]",
	Aliases: []string{"done"},
	Short:   "Toggle task completion",
	Long: `Flips the completed flag of a task in place. Toggling a completed
task reopens it. Multiple IDs can be provided as a comma-separated list.`,
	Args: cobra.ExactArgs(1),
	RunE: runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(_ *cobra.Command, args []string) error {
	ids, err := parseIDs(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if len(ids) == 1 {
		return toggleSingleTask(cfg, ids[0])
	}

	return runBatch(ids, func(id int) error {
		_, err := executeToggle(cfg, id)
		return err
	})
}

func toggleSingleTask(cfg *config.Config, id int) error {
	t, err := executeToggle(cfg, id)
	if err != nil {
		return err
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, t)
	}

	state := "pending"
	if t.Completed {
		state = "completed"
	}
	output.Messagef(os.Stdout, "Task #%d is now %s: %s", t.ID, state, t.Text)
	return nil
}

func executeToggle(cfg *config.Config, id int) (*task.Task, error) {
	path, err := task.FindByID(cfg.TasksPath(), id)
	if err != nil {
		return nil, err
	}

	t, err := task.Read(path)
	if err != nil {
		return nil, err
	}

	t.Completed = !t.Completed
	t.Updated = time.Now()

	if err := task.Write(path, t); err != nil {
		return nil, fmt.Errorf("writing task: %w", err)
	}

	logActivity(cfg, "toggle", t.ID, t.Text)
	return t, nil
}
