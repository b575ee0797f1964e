package task

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/candlewick-labs/tasklight/internal/clierr"
)

// idPrefixRe matches the numeric ID prefix of a task filename.
var idPrefixRe = regexp.MustCompile(`^(\d+)-`)

// FindByID scans the tasks directory for a file matching the given ID.
// Returns the full path to the task file.
func FindByID(tasksDir string, id int) (string, error) {
	entries, err := os.ReadDir(tasksDir)
	if err != nil {
		return "", fmt.Errorf("reading tasks directory: %w", err)
	}

	idStr := strconv.Itoa(id)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		dash := strings.IndexByte(name, '-')
		if dash < 1 {
			continue
		}
		// Strip leading zeros before comparing the numeric prefix.
		prefix := strings.TrimLeft(name[:dash], "0")
		if prefix == idStr {
			return filepath.Join(tasksDir, name), nil
		}
	}

	return "", clierr.Newf(clierr.TaskNotFound, "task not found: #%d", id).
		WithDetails(map[string]any{"id": id})
}

// ReadAll reads all task files from the given directory, ordered by ID
// ascending. Because IDs are assigned monotonically this is insertion order.
func ReadAll(tasksDir string) ([]*Task, error) {
	entries, err := os.ReadDir(tasksDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading tasks directory: %w", err)
	}

	var tasks []*Task
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}

		path := filepath.Join(tasksDir, entry.Name())
		t, err := Read(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}
		tasks = append(tasks, t)
	}

	sortByID(tasks)
	return tasks, nil
}

// ReadWarning describes a file that could not be parsed during lenient reading.
type ReadWarning struct {
	File string // base filename
	Err  error
}

// ReadAllLenient reads all task files, skipping malformed files instead of
// aborting. Parsed tasks are returned in ID order along with warnings for
// files that failed.
func ReadAllLenient(tasksDir string) ([]*Task, []ReadWarning, error) {
	entries, err := os.ReadDir(tasksDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("reading tasks directory: %w", err)
	}

	var tasks []*Task
	var warnings []ReadWarning
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".md" {
			continue
		}

		path := filepath.Join(tasksDir, entry.Name())
		t, readErr := Read(path)
		if readErr != nil {
			warnings = append(warnings, ReadWarning{File: entry.Name(), Err: readErr})
			continue
		}
		tasks = append(tasks, t)
	}

	sortByID(tasks)
	return tasks, warnings, nil
}

func sortByID(tasks []*Task) {
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
}

// ExtractIDFromFilename extracts the numeric ID from a task filename.
func ExtractIDFromFilename(filename string) (int, error) {
	matches := idPrefixRe.FindStringSubmatch(filename)
	if len(matches) < 2 { //nolint:mnd // regex capture group
		return 0, fmt.Errorf("cannot extract ID from filename %q", filename)
	}
	return strconv.Atoi(matches[1])
}
