package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/candlewick-labs/tasklight/internal/clierr"
	"github.com/candlewick-labs/tasklight/internal/config"
	"github.com/candlewick-labs/tasklight/internal/output"
)

var initCmd = &cobra.Command{
	Use:   "init [NAME]",
	Short: "Create a new task list",
	Long: `Creates a tasklight directory with a config file and an empty tasks
directory. With --dir the list is created at that path; otherwise a
"tasklight" directory is created under the current directory.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, args []string) error {
	dir := flagDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		dir = filepath.Join(cwd, config.DefaultDir)
	}

	if _, err := os.Stat(filepath.Join(dir, config.ConfigFileName)); err == nil {
		return clierr.Newf(clierr.ListAlreadyExists,
			"a task list already exists at %s", dir)
	}

	name := "tasklight"
	if len(args) > 0 && args[0] != "" {
		name = args[0]
	}

	cfg, err := config.Init(dir, name)
	if err != nil {
		return err
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]interface{}{
			"status": "created",
			"name":   cfg.List.Name,
			"dir":    cfg.Dir(),
		})
	}

	output.Messagef(os.Stdout, "Created task list %q at %s", cfg.List.Name, cfg.Dir())
	output.Messagef(os.Stdout, "Add your first task with: tasklight add \"buy milk\"")
	return nil
}
