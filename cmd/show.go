package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/candlewick-labs/tasklight/internal/output"
	"github.com/candlewick-labs/tasklight/internal/task"
)

var showCmd = &cobra.Command{
	Use:     "show ID",
	Aliases: []string{"view"},
	Short:   "Show task details",
	Long:    `Shows all fields of a task, including its markdown note if present.`,
	Args:    cobra.ExactArgs(1),
	RunE:    runShow,
}

func init() {
	showCmd.Flags().Bool("raw", false, "print the note as raw markdown")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path, err := task.FindByID(cfg.TasksPath(), ids[0])
	if err != nil {
		return err
	}

	t, err := task.Read(path)
	if err != nil {
		return err
	}
	t.File = path

	switch outputFormat() {
	case output.FormatJSON:
		return output.JSON(os.Stdout, t)
	case output.FormatCompact:
		output.TaskDetailCompact(os.Stdout, t)
		return nil
	default:
		output.TaskDetail(os.Stdout, t)
		if t.Body == "" {
			return nil
		}
		raw, _ := cmd.Flags().GetBool("raw")
		fmt.Fprintln(os.Stdout)
		return printNote(t.Body, raw)
	}
}

// printNote renders the note body with glamour, falling back to raw
// markdown when rendering fails or is disabled.
func printNote(body string, raw bool) error {
	if raw || flagNoColor || os.Getenv("NO_COLOR") != "" {
		fmt.Fprintln(os.Stdout, body)
		return nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80), //nolint:mnd // readable terminal width
	)
	if err != nil {
		fmt.Fprintln(os.Stdout, body)
		return nil //nolint:nilerr // fall back to raw output
	}

	rendered, err := r.Render(body)
	if err != nil {
		fmt.Fprintln(os.Stdout, body)
		return nil //nolint:nilerr // fall back to raw output
	}

	fmt.Fprint(os.Stdout, rendered)
	return nil
}
