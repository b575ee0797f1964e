package task

import (
	"errors"
	"testing"

	"github.com/candlewick-labs/tasklight/internal/clierr"
)

func errCode(err error) string {
	var cliErr *clierr.Error
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return ""
}

func TestValidateText(t *testing.T) {
	if err := ValidateText("buy milk"); err != nil {
		t.Errorf("ValidateText: %v", err)
	}

	for _, text := range []string{"", "  ", "\t"} {
		if got := errCode(ValidateText(text)); got != clierr.EmptyText {
			t.Errorf("ValidateText(%q) code = %q, want EMPTY_TEXT", text, got)
		}
	}
}

func TestValidatePriority(t *testing.T) {
	allowed := []string{"high", "medium", "low"}

	if err := ValidatePriority("medium", allowed); err != nil {
		t.Errorf("ValidatePriority: %v", err)
	}
	if got := errCode(ValidatePriority("urgent", allowed)); got != clierr.InvalidPriority {
		t.Errorf("code = %q, want INVALID_PRIORITY", got)
	}
}

func TestValidateCategory(t *testing.T) {
	allowed := []string{"work", "personal", "shopping", "other"}

	if err := ValidateCategory("shopping", allowed); err != nil {
		t.Errorf("ValidateCategory: %v", err)
	}
	if got := errCode(ValidateCategory("hobbies", allowed)); got != clierr.InvalidCategory {
		t.Errorf("code = %q, want INVALID_CATEGORY", got)
	}
}
