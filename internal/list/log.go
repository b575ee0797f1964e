package list

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	logFileName   = "activity.jsonl"
	logFileMode   = 0o600
	maxLogEntries = 5000 // truncate oldest entries when log exceeds this size
)

// LogEntry represents a single activity log entry.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	TaskID    int       `json:"task_id"`
	Detail    string    `json:"detail"`
}

// LogMutation appends an activity entry for a mutating operation.
// Errors are discarded; logging must never fail an operation.
func LogMutation(listDir, action string, taskID int, detail string) {
	_ = AppendLog(listDir, LogEntry{
		Timestamp: time.Now(),
		Action:    action,
		TaskID:    taskID,
		Detail:    detail,
	})
}

// AppendLog appends a log entry to the activity log file.
// If the log exceeds maxLogEntries, the oldest entries are truncated.
func AppendLog(listDir string, entry LogEntry) error {
	path := filepath.Join(listDir, logFileName)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFileMode) //nolint:gosec // log path from trusted list dir
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling log entry: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing log entry: %w", err)
	}

	// Truncation is best-effort; errors are non-fatal.
	_ = truncateLogIfNeeded(path)

	return nil
}

// ReadLog returns up to limit most recent log entries, newest last.
// A limit of 0 returns all entries. Malformed lines are skipped.
func ReadLog(listDir string, limit int) ([]LogEntry, error) {
	path := filepath.Join(listDir, logFileName)

	f, err := os.Open(path) //nolint:gosec // trusted path
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	defer f.Close()

	var entries []LogEntry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var e LogEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading log file: %w", err)
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

// truncateLogIfNeeded rewrites the log keeping only the most recent
// entries once it grows past maxLogEntries.
func truncateLogIfNeeded(path string) error {
	f, err := os.Open(path) //nolint:gosec // trusted path
	if err != nil {
		return err
	}

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	_ = f.Close()

	if err := scanner.Err(); err != nil {
		return err
	}

	if len(lines) <= maxLogEntries {
		return nil
	}

	lines = lines[len(lines)-maxLogEntries:]

	var buf strings.Builder
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(buf.String()), logFileMode)
}
