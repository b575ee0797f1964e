package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/candlewick-labs/tasklight/internal/tui"
	"github.com/candlewick-labs/tasklight/internal/watcher"
)

// runTUI launches the interactive list. It is the root command's RunE,
// so running tasklight with no arguments lands here.
func runTUI(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger := newLogger()
	app := tui.New(cfg, logger)

	p := tea.NewProgram(app, tea.WithAltScreen())

	// Watch the list directory so external edits (another terminal, a
	// sync tool) show up without restarting.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w, err := watcher.New(app.WatchPaths(), logger, func() {
		p.Send(tui.ReloadMsg{})
	})
	if err != nil {
		logger.Warn("file watching disabled", "err", err)
	} else {
		defer w.Close() //nolint:errcheck // best-effort close on exit
		go w.Run(ctx)
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}
