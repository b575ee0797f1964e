package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/candlewick-labs/tasklight/internal/clierr"
	"github.com/candlewick-labs/tasklight/internal/config"
	"github.com/candlewick-labs/tasklight/internal/filelock"
	"github.com/candlewick-labs/tasklight/internal/output"
	"github.com/candlewick-labs/tasklight/internal/task"
)

var addCmd = &cobra.Command{
	Use:     "add [TEXT]",
	Aliases: []string{"create"},
	Short:   "Add a new task",
	Long: `Adds a new task with the given text and optional fields.

Text can be provided as a positional argument or via --text flag.
A longer markdown note can be attached via --note.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().String("text", "", "task text (alternative to positional argument)")
	addCmd.Flags().String("priority", "", "task priority (default from config)")
	addCmd.Flags().String("category", "", "task category (default from config)")
	addCmd.Flags().String("note", "", "task note (markdown)")
	addCmd.Flags().SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		switch name {
		case "prio":
			name = "priority"
		case "cat":
			name = "category"
		case "body", "description":
			name = "note"
		}
		return pflag.NormalizedName(name)
	})
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	// Acquire an exclusive lock to prevent concurrent adds from
	// reading the same next_id and generating duplicate task IDs.
	dir, err := resolveDir()
	if err != nil {
		return err
	}
	unlock, err := filelock.Lock(filepath.Join(dir, ".lock"))
	if err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	defer unlock() //nolint:errcheck // best-effort unlock on exit

	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	text, err := resolveAddText(cmd, args)
	if err != nil {
		return err
	}
	if err := task.ValidateText(text); err != nil {
		return err
	}
	now := time.Now()

	t := &task.Task{
		ID:       cfg.NextID,
		Text:     text,
		Priority: cfg.Defaults.Priority,
		Category: cfg.Defaults.Category,
		Created:  now,
		Updated:  now,
	}

	if err := applyAddFlags(cmd, t, cfg); err != nil {
		return err
	}

	// Generate filename and write.
	slug := task.GenerateSlug(text)
	filename := task.GenerateFilename(t.ID, slug)
	path := filepath.Join(cfg.TasksPath(), filename)
	t.File = path

	if err := task.Write(path, t); err != nil {
		return fmt.Errorf("writing task: %w", err)
	}

	// Increment next_id and save config.
	cfg.NextID++
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	logActivity(cfg, "add", t.ID, t.Text)

	return outputAddResult(t, path)
}

func outputAddResult(t *task.Task, path string) error {
	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, t)
	}

	output.Messagef(os.Stdout, "Added task #%d: %s", t.ID, t.Text)
	output.Messagef(os.Stdout, "  File: %s", path)
	output.Messagef(os.Stdout, "  Priority: %s | Category: %s", t.Priority, t.Category)
	return nil
}

// resolveAddText returns the task text from either the positional arg or --text flag.
func resolveAddText(cmd *cobra.Command, args []string) (string, error) {
	flagText, _ := cmd.Flags().GetString("text")
	hasPositional := len(args) > 0
	hasFlag := flagText != ""

	switch {
	case hasPositional && hasFlag:
		return "", clierr.New(clierr.InvalidInput,
			"text provided both as argument and --text flag; use one or the other")
	case hasPositional:
		return args[0], nil
	case hasFlag:
		return flagText, nil
	default:
		return "", errors.New("task text is required: provide it as an argument or with --text")
	}
}

func applyAddFlags(cmd *cobra.Command, t *task.Task, cfg *config.Config) error {
	if v, _ := cmd.Flags().GetString("priority"); v != "" {
		if err := task.ValidatePriority(v, cfg.Priorities); err != nil {
			return err
		}
		t.Priority = v
	}
	if v, _ := cmd.Flags().GetString("category"); v != "" {
		if err := task.ValidateCategory(v, cfg.Categories); err != nil {
			return err
		}
		t.Category = v
	}
	if v, _ := cmd.Flags().GetString("note"); v != "" {
		t.Body = v
	}
	return nil
}
