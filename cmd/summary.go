package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/candlewick-labs/tasklight/internal/list"
	"github.com/candlewick-labs/tasklight/internal/output"
	"github.com/candlewick-labs/tasklight/internal/task"
)

var summaryCmd = &cobra.Command{
	Use:     "summary",
	Aliases: []string{"stats"},
	Short:   "Show list statistics",
	Long:    `Shows totals and per-priority/per-category counts for the list.`,
	Args:    cobra.NoArgs,
	RunE:    runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	tasks, warnings, err := task.ReadAllLenient(cfg.TasksPath())
	if err != nil {
		return err
	}
	printWarnings(warnings)

	overview := list.Summary(cfg.List.Name, tasks, cfg.Priorities, cfg.Categories)

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, overview)
	}

	output.OverviewTable(os.Stdout, overview)
	return nil
}
