package task

import (
	"strings"

	"github.com/candlewick-labs/tasklight/internal/clierr"
)

// ValidateText checks that task text is non-empty after trimming whitespace.
func ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return clierr.New(clierr.EmptyText, "task text is empty")
	}
	return nil
}

// ValidatePriority checks that a priority is in the allowed list.
func ValidatePriority(priority string, allowed []string) error {
	for _, p := range allowed {
		if p == priority {
			return nil
		}
	}
	return clierr.Newf(clierr.InvalidPriority, "invalid priority %q", priority).
		WithDetails(map[string]any{
			"priority": priority,
			"allowed":  allowed,
		})
}

// ValidateCategory checks that a category is in the allowed list.
func ValidateCategory(category string, allowed []string) error {
	for _, c := range allowed {
		if c == category {
			return nil
		}
	}
	return clierr.Newf(clierr.InvalidCategory, "invalid category %q", category).
		WithDetails(map[string]any{
			"category": category,
			"allowed":  allowed,
		})
}

// ValidateTaskID returns a CLIError for invalid task ID input.
func ValidateTaskID(input string) *clierr.Error {
	return clierr.Newf(clierr.InvalidTaskID, "invalid task ID %q", input).
		WithDetails(map[string]any{"input": input})
}
