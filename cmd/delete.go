package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/candlewick-labs/tasklight/internal/clierr"
	"github.com/candlewick-labs/tasklight/internal/config"
	"github.com/candlewick-labs/tasklight/internal/output"
	"github.com/candlewick-labs/tasklight/internal/task"
)

var deleteCmd = &cobra.Command{
	Use:     "delete ID[,ID,...]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long: `Removes a task permanently. Prompts for confirmation in interactive mode.
Multiple IDs can be provided as a comma-separated list (requires --yes).`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func init() {
	deleteCmd.Flags().BoolP("yes", "y", false, "skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	yes, _ := cmd.Flags().GetBool("yes")

	// Batch mode requires --yes.
	if len(ids) > 1 && !yes {
		return clierr.New(clierr.ConfirmationReq,
			"batch delete requires --yes")
	}

	if len(ids) == 1 {
		return deleteSingleTask(cfg, ids[0], yes)
	}

	return runBatch(ids, func(id int) error {
		return executeDelete(cfg, id)
	})
}

// deleteSingleTask handles a single task delete with confirmation and output.
func deleteSingleTask(cfg *config.Config, id int, yes bool) error {
	path, err := task.FindByID(cfg.TasksPath(), id)
	if err != nil {
		return err
	}

	t, err := task.Read(path)
	if err != nil {
		return err
	}

	// Require confirmation in TTY mode unless --yes.
	if !yes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return clierr.New(clierr.ConfirmationReq,
				"cannot prompt for confirmation (not a terminal); use --yes")
		}
		fmt.Fprintf(os.Stderr, "Delete task #%d %q? [y/N] ", t.ID, t.Text)
		reader := bufio.NewReader(os.Stdin)
		answer, _ := reader.ReadString('\n')
		answer = strings.TrimSpace(strings.ToLower(answer))
		if answer != "y" && answer != "yes" {
			fmt.Fprintln(os.Stderr, "Canceled.")
			return nil
		}
	}

	if err := removeAndLog(cfg, path, t); err != nil {
		return err
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]interface{}{
			"status": "deleted",
			"id":     t.ID,
			"text":   t.Text,
		})
	}

	output.Messagef(os.Stdout, "Deleted task #%d: %s", t.ID, t.Text)
	return nil
}

func executeDelete(cfg *config.Config, id int) error {
	path, err := task.FindByID(cfg.TasksPath(), id)
	if err != nil {
		return err
	}

	t, err := task.Read(path)
	if err != nil {
		return err
	}

	return removeAndLog(cfg, path, t)
}

func removeAndLog(cfg *config.Config, path string, t *task.Task) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("removing task file: %w", err)
	}
	logActivity(cfg, "delete", t.ID, t.Text)
	return nil
}
