// Package notify schedules one-shot reminder notifications via the
// OS notification service.
package notify

import (
	"context"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gen2brain/beeep"

	"github.com/candlewick-labs/tasklight/internal/clierr"
)

// DisableEnv disables all notifications when set, regardless of config.
const DisableEnv = "TASKLIGHT_NO_NOTIFY"

// ErrPermissionDenied is returned when notifications are not permitted.
var ErrPermissionDenied = clierr.New(clierr.PermissionDenied,
	"notification permission denied (notifications are disabled)")

// Notifier delivers a single notification immediately.
type Notifier interface {
	Notify(title, body string) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(title, body string) error

// Notify implements Notifier.
func (f NotifierFunc) Notify(title, body string) error { return f(title, body) }

// Desktop returns a Notifier backed by the OS notification service.
func Desktop() Notifier {
	return NotifierFunc(func(title, body string) error {
		return beeep.Notify(title, body, "")
	})
}

// CheckPermission performs the upfront permission check. Permission is
// denied when notifications are disabled in config or via DisableEnv.
func CheckPermission(enabledInConfig bool) error {
	if !enabledInConfig {
		return ErrPermissionDenied
	}
	if os.Getenv(DisableEnv) != "" {
		return ErrPermissionDenied
	}
	return nil
}

// Scheduler fires one-shot notifications after a delay. Scheduling is
// fire-and-forget: there is no retry and no ordering guarantee between
// pending reminders.
type Scheduler struct {
	notifier Notifier
	logger   *log.Logger
}

// NewScheduler creates a Scheduler delivering through the given
// notifier. logger may be nil.
func NewScheduler(n Notifier, logger *log.Logger) *Scheduler {
	return &Scheduler{notifier: n, logger: logger}
}

// Schedule blocks until the delay elapses, then delivers the
// notification once. A canceled context prevents delivery and returns
// the context error. Callers wanting fire-and-forget semantics run
// Schedule in its own goroutine.
func (s *Scheduler) Schedule(ctx context.Context, title, body string, delay time.Duration) error {
	if delay < 0 {
		return clierr.Newf(clierr.InvalidDelay, "reminder delay must not be negative: %s", delay)
	}

	if s.logger != nil {
		s.logger.Debug("reminder scheduled", "title", title, "delay", delay)
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	if err := s.notifier.Notify(title, body); err != nil {
		if s.logger != nil {
			s.logger.Warn("notification failed", "err", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.Debug("reminder delivered", "title", title)
	}
	return nil
}
