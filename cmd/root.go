// Package cmd implements the tasklight CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/candlewick-labs/tasklight/internal/clierr"
	"github.com/candlewick-labs/tasklight/internal/config"
	"github.com/candlewick-labs/tasklight/internal/list"
	"github.com/candlewick-labs/tasklight/internal/output"
	"github.com/candlewick-labs/tasklight/internal/task"
)

// version is set at build time via ldflags.
var version = "dev"

// Global flags.
var (
	flagJSON    bool
	flagTable   bool
	flagCompact bool
	flagDir     string
	flagNoColor bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "tasklight",
	Short: "A single-screen to-do list for your terminal",
	Long: `tasklight keeps one ordered to-do list: add, edit, complete, and delete
tasks, and set reminder notifications. Run tasklight without arguments
to open the interactive list.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runTUI,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagNoColor || os.Getenv("NO_COLOR") != "" {
			output.DisableColor()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagTable, "table", false, "output as table")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "compact", false, "compact one-line-per-record output")
	rootCmd.PersistentFlags().BoolVar(&flagCompact, "oneline", false, "alias for --compact")
	rootCmd.PersistentFlags().StringVar(&flagDir, "dir", "", "path to the list directory")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() {
	_, err := rootCmd.ExecuteC()
	if err == nil {
		return
	}

	// Handle SilentError — exit with code, no output.
	var silent *clierr.SilentError
	if errors.As(err, &silent) {
		os.Exit(silent.Code)
	}

	// Determine if JSON mode is active.
	jsonMode := flagJSON
	if !jsonMode {
		jsonMode = os.Getenv(output.EnvVar) == "json"
	}

	if jsonMode {
		var cliErr *clierr.Error
		if errors.As(err, &cliErr) {
			output.JSONError(os.Stdout, cliErr.Code, cliErr.Message, cliErr.Details)
			os.Exit(cliErr.ExitCode())
		}
		// Unknown error — wrap as INTERNAL_ERROR.
		output.JSONError(os.Stdout, clierr.InternalError, err.Error(), nil)
		os.Exit(2) //nolint:mnd // exit code 2 for internal errors
	}

	// Non-JSON mode: print to stderr.
	fmt.Fprintln(os.Stderr, err)
	var cliErr *clierr.Error
	if errors.As(err, &cliErr) {
		os.Exit(cliErr.ExitCode())
	}
	os.Exit(1)
}

// newLogger builds the stderr logger used by watcher and notify.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
	return logger
}

// defaultHomeDir returns the path to ~/.config/tasklight.
func defaultHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".config/tasklight"), nil
}

// resolveDir returns the absolute path to the list directory.
// Falls back to ~/.config/tasklight if no list is found in the current
// directory tree.
func resolveDir() (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	dir, err := config.FindDir(cwd)
	if err == nil {
		return dir, nil
	}

	return defaultHomeDir()
}

// loadConfig finds and loads the list config. If the resolved directory
// is ~/.config/tasklight and it doesn't exist yet, it is auto-created
// with defaults.
func loadConfig() (*config.Config, error) {
	dir, err := resolveDir()
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(dir)
	if err == nil {
		return cfg, nil
	}

	// Auto-create ~/.config/tasklight if it's the home default and doesn't exist.
	if !errors.Is(err, config.ErrNotFound) {
		return nil, err
	}
	homeDir, homeErr := defaultHomeDir()
	if homeErr != nil || dir != homeDir {
		return nil, err
	}

	return config.Init(homeDir, "tasklight")
}

// outputFormat returns the detected output format from flags/env.
func outputFormat() output.Format {
	return output.Detect(flagJSON, flagTable, flagCompact)
}

// printWarnings writes task read warnings to stderr.
func printWarnings(warnings []task.ReadWarning) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "Warning: skipping malformed file %s: %v\n", w.File, w.Err)
	}
}

// logActivity appends an entry to the activity log. Errors are silently
// discarded because logging should never fail a command.
func logActivity(cfg *config.Config, action string, taskID int, detail string) {
	list.LogMutation(cfg.Dir(), action, taskID, detail)
}

// parseIDs splits a comma-separated ID string into deduplicated int IDs.
func parseIDs(arg string) ([]int, error) {
	parts := strings.Split(arg, ",")
	seen := make(map[int]bool, len(parts))
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.Atoi(p)
		if err != nil {
			return nil, task.ValidateTaskID(p)
		}
		if !seen[id] {
			ids = append(ids, id)
			seen[id] = true
		}
	}
	if len(ids) == 0 {
		return nil, clierr.New(clierr.InvalidTaskID, "no valid task IDs provided")
	}
	return ids, nil
}

// runBatch executes fn for each ID and collects results. Returns a SilentError
// with exit code 1 if any operation failed (after outputting results).
func runBatch(ids []int, fn func(int) error) error {
	results := make([]output.BatchResult, 0, len(ids))
	anyFailed := false

	for _, id := range ids {
		err := fn(id)
		if err != nil {
			anyFailed = true
			var cliErr *clierr.Error
			if errors.As(err, &cliErr) {
				results = append(results, output.BatchResult{ID: id, OK: false, Error: cliErr.Message, Code: cliErr.Code})
			} else {
				results = append(results, output.BatchResult{ID: id, OK: false, Error: err.Error()})
			}
		} else {
			results = append(results, output.BatchResult{ID: id, OK: true})
		}
	}

	if outputFormat() == output.FormatJSON {
		if err := output.JSON(os.Stdout, results); err != nil {
			return err
		}
	} else {
		var succeeded int
		for _, r := range results {
			if r.OK {
				succeeded++
			} else {
				fmt.Fprintf(os.Stderr, "Error: task #%d: %s\n", r.ID, r.Error)
			}
		}
		output.Messagef(os.Stdout, "Completed %d/%d operations", succeeded, len(ids))
	}

	if anyFailed {
		return &clierr.SilentError{Code: 1}
	}
	return nil
}
