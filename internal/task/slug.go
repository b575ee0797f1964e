package task

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const maxSlugLength = 40

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug converts task text to a filesystem-friendly slug.
func GenerateSlug(text string) string {
	slug := strings.ToLower(text)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	if len(slug) > maxSlugLength {
		truncated := slug[:maxSlugLength]
		// Only trim back to the last hyphen when the cut landed mid-word.
		if slug[maxSlugLength] != '-' {
			if idx := strings.LastIndex(truncated, "-"); idx > 0 {
				truncated = truncated[:idx]
			}
		}
		slug = strings.TrimRight(truncated, "-")
	}

	if slug == "" {
		slug = "task"
	}
	return slug
}

// GenerateFilename creates a task filename from an ID and slug.
func GenerateFilename(id int, slug string) string {
	padWidth := 3
	idStr := strconv.Itoa(id)
	if len(idStr) > padWidth {
		padWidth = len(idStr)
	}
	return fmt.Sprintf("%0*d-%s.md", padWidth, id, slug)
}
