package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func TestWatcherDebounces(t *testing.T) {
	dir := t.TempDir()

	var fired atomic.Int32
	w, err := New([]string{dir}, nil, func() {
		fired.Add(1)
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// A burst of writes should coalesce into a single callback.
	for i := 0; i < 5; i++ {
		path := filepath.Join(dir, "001-task.md")
		if err := os.WriteFile(path, []byte("---\nid: 1\n---\n"), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	deadline := time.After(2 * time.Second)
	for fired.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("callback never fired")
		case <-time.After(10 * time.Millisecond):
		}
	}

	// Allow any stray debounce timers to expire, then check coalescing.
	time.Sleep(3 * debounceDelay)
	if got := fired.Load(); got > 2 {
		t.Errorf("callback fired %d times for one burst, want coalesced", got)
	}
}

func TestWatcherMissingPath(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "missing")}, nil, func() {})
	if err == nil {
		t.Error("New should fail for a missing path")
	}
}
