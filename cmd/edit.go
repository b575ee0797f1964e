package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/candlewick-labs/tasklight/internal/clierr"
	"github.com/candlewick-labs/tasklight/internal/config"
	"github.com/candlewick-labs/tasklight/internal/output"
	"github.com/candlewick-labs/tasklight/internal/task"
)

var editCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Edit a task",
	Long: `Modifies fields of an existing task. Only specified fields are changed.
The task ID and completion state are always preserved.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().String("text", "", "new task text")
	editCmd.Flags().String("priority", "", "new priority")
	editCmd.Flags().String("category", "", "new category")
	editCmd.Flags().String("note", "", "new note text (replaces entire note)")
	editCmd.Flags().Bool("clear-note", false, "remove the note")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Single ID: full output.
	if len(ids) == 1 {
		return editSingleTask(cfg, ids[0], cmd)
	}

	return runBatch(ids, func(id int) error {
		_, _, err := executeEdit(cfg, id, cmd)
		return err
	})
}

func editSingleTask(cfg *config.Config, id int, cmd *cobra.Command) error {
	t, newPath, err := executeEdit(cfg, id, cmd)
	if err != nil {
		return err
	}

	if outputFormat() == output.FormatJSON {
		t.File = newPath
		return output.JSON(os.Stdout, t)
	}

	output.Messagef(os.Stdout, "Updated task #%d: %s", t.ID, t.Text)
	return nil
}

// executeEdit performs the core edit: find, read, apply, validate, write, log.
// Returns the modified task and its new file path.
func executeEdit(cfg *config.Config, id int, cmd *cobra.Command) (*task.Task, string, error) {
	path, err := task.FindByID(cfg.TasksPath(), id)
	if err != nil {
		return nil, "", err
	}

	t, err := task.Read(path)
	if err != nil {
		return nil, "", err
	}

	oldText := t.Text
	changed, err := applyEditFlags(cmd, t, cfg)
	if err != nil {
		return nil, "", err
	}

	if !changed {
		return nil, "", clierr.New(clierr.NoChanges, "no changes specified")
	}

	t.Updated = time.Now()

	newPath, err := writeAndRename(path, t, oldText)
	if err != nil {
		return nil, "", err
	}

	logActivity(cfg, "edit", t.ID, t.Text)
	return t, newPath, nil
}

// writeAndRename writes the task and renames the file if the text changed.
func writeAndRename(path string, t *task.Task, oldText string) (string, error) {
	newPath := path
	if t.Text != oldText {
		slug := task.GenerateSlug(t.Text)
		filename := task.GenerateFilename(t.ID, slug)
		newPath = filepath.Join(filepath.Dir(path), filename)
	}

	if err := task.Write(newPath, t); err != nil {
		return "", fmt.Errorf("writing task: %w", err)
	}

	if newPath != path {
		if err := os.Remove(path); err != nil {
			return "", fmt.Errorf("removing old file: %w", err)
		}
	}
	return newPath, nil
}

func applyEditFlags(cmd *cobra.Command, t *task.Task, cfg *config.Config) (bool, error) {
	changed := false

	if v, _ := cmd.Flags().GetString("text"); v != "" {
		if err := task.ValidateText(v); err != nil {
			return false, err
		}
		t.Text = v
		changed = true
	}
	if v, _ := cmd.Flags().GetString("priority"); v != "" {
		if err := task.ValidatePriority(v, cfg.Priorities); err != nil {
			return false, err
		}
		t.Priority = v
		changed = true
	}
	if v, _ := cmd.Flags().GetString("category"); v != "" {
		if err := task.ValidateCategory(v, cfg.Categories); err != nil {
			return false, err
		}
		t.Category = v
		changed = true
	}

	noteSet := cmd.Flags().Changed("note")
	clearNote, _ := cmd.Flags().GetBool("clear-note")
	if noteSet && clearNote {
		return false, clierr.New(clierr.InvalidInput, "cannot use --note and --clear-note together")
	}
	if noteSet {
		v, _ := cmd.Flags().GetString("note")
		t.Body = v
		changed = true
	}
	if clearNote {
		t.Body = ""
		changed = true
	}

	return changed, nil
}
