package list

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestAppendAndReadLog(t *testing.T) {
	dir := t.TempDir()

	for i := 1; i <= 3; i++ {
		err := AppendLog(dir, LogEntry{
			Timestamp: time.Now(),
			Action:    "add",
			TaskID:    i,
			Detail:    "task",
		})
		if err != nil {
			t.Fatalf("AppendLog: %v", err)
		}
	}

	entries, err := ReadLog(dir, 0)
	if err != nil {
		t.Fatalf("ReadLog: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	for i, e := range entries {
		if e.TaskID != i+1 || e.Action != "add" {
			t.Errorf("entries[%d] = %+v", i, e)
		}
	}

	// Limit returns the most recent entries.
	tail, err := ReadLog(dir, 2)
	if err != nil {
		t.Fatalf("ReadLog: %v", err)
	}
	if len(tail) != 2 || tail[0].TaskID != 2 || tail[1].TaskID != 3 {
		t.Errorf("tail = %+v", tail)
	}
}

func TestReadLogMissing(t *testing.T) {
	entries, err := ReadLog(t.TempDir(), 0)
	if err != nil {
		t.Fatalf("ReadLog on missing file: %v", err)
	}
	if entries != nil {
		t.Errorf("got %d entries, want none", len(entries))
	}
}

func TestReadLogSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()

	if err := AppendLog(dir, LogEntry{Action: "add", TaskID: 1}); err != nil {
		t.Fatalf("AppendLog: %v", err)
	}

	path := filepath.Join(dir, logFileName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, logFileMode)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("{truncated garbage\n"); err != nil {
		t.Fatal(err)
	}
	_ = f.Close()

	if err := AppendLog(dir, LogEntry{Action: "delete", TaskID: 2}); err != nil {
		t.Fatalf("AppendLog: %v", err)
	}

	entries, err := ReadLog(dir, 0)
	if err != nil {
		t.Fatalf("ReadLog: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("got %d entries, want 2 (garbage skipped)", len(entries))
	}
}

func TestLogMutationNeverFails(t *testing.T) {
	// Nonexistent directory: the write fails, but LogMutation swallows it.
	LogMutation(filepath.Join(t.TempDir(), "missing", "deeper"), "add", 1, "x")
}
