package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/candlewick-labs/tasklight/internal/clierr"
	"github.com/candlewick-labs/tasklight/internal/notify"
	"github.com/candlewick-labs/tasklight/internal/output"
	"github.com/candlewick-labs/tasklight/internal/task"
)

var remindCmd = &cobra.Command{
	Use:   "remind ID",
	Short: "Schedule a reminder notification for a task",
	Long: `Schedules a one-shot desktop notification for the given task. The
command blocks until the reminder fires, so it is typically run in the
background:

  tasklight remind 3 --in 15m &

Notifications can be disabled via config (notifications.enabled) or the
TASKLIGHT_NO_NOTIFY environment variable; scheduling then fails with
PERMISSION_DENIED.`,
	Args: cobra.ExactArgs(1),
	RunE: runRemind,
}

func init() {
	remindCmd.Flags().String("in", "", "delay before the reminder fires, e.g. 30s, 15m, 2h (default from config)")
	rootCmd.AddCommand(remindCmd)
}

func runRemind(cmd *cobra.Command, args []string) error {
	ids, err := parseIDs(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Permission check happens before any scheduling work.
	if err := notify.CheckPermission(cfg.NotificationsEnabled()); err != nil {
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

	delay := cfg.ReminderDelay()
	if in, _ := cmd.Flags().GetString("in"); in != "" {
		delay, err = time.ParseDuration(in)
		if err != nil {
			return clierr.Newf(clierr.InvalidDelay, "invalid delay %q: use a duration like 30s, 15m, or 2h", in)
		}
	}
	if delay < 0 {
		return clierr.Newf(clierr.InvalidDelay, "reminder delay must not be negative: %s", delay)
	}

	if outputFormat() == output.FormatJSON {
		if err := output.JSON(os.Stdout, map[string]interface{}{
			"status":   "scheduled",
			"id":       t.ID,
			"text":     t.Text,
			"delay":    delay.String(),
			"fires_at": time.Now().Add(delay).Format(time.RFC3339),
		}); err != nil {
			return err
		}
	} else {
		output.Messagef(os.Stdout, "Reminder for task #%d in %s: %s", t.ID, delay, t.Text)
	}

	// Block until the reminder fires; Ctrl-C cancels it.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := notify.NewScheduler(notify.Desktop(), newLogger())
	if err := scheduler.Schedule(ctx, "Task reminder", t.Text, delay); err != nil {
		if ctx.Err() != nil {
			return &clierr.SilentError{Code: 1}
		}
		return err
	}

	logActivity(cfg, "remind", t.ID, t.Text)
	return nil
}
