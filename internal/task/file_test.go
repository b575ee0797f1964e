package task

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestWriteReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "001-buy-milk.md")

	created := time.Date(2026, 2, 1, 8, 30, 0, 0, time.UTC)
	original := &Task{
		ID:        1,
		Text:      "buy milk",
		Priority:  "high",
		Category:  "shopping",
		Completed: true,
		Created:   created,
		Updated:   created.Add(time.Hour),
		Body:      "Whole milk, not the oat stuff.\n\n- 2 liters\n",
	}

	if err := Write(path, original); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}

	if got.ID != original.ID || got.Text != original.Text {
		t.Errorf("got #%d %q, want #%d %q", got.ID, got.Text, original.ID, original.Text)
	}
	if got.Priority != "high" || got.Category != "shopping" || !got.Completed {
		t.Errorf("fields not preserved: %+v", got)
	}
	if !got.Created.Equal(original.Created) || !got.Updated.Equal(original.Updated) {
		t.Errorf("timestamps not preserved: created=%v updated=%v", got.Created, got.Updated)
	}
	if !strings.Contains(got.Body, "oat stuff") {
		t.Errorf("body not preserved: %q", got.Body)
	}
	if got.File != path {
		t.Errorf("File = %q, want %q", got.File, path)
	}
}

func TestWriteNoBody(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "002-no-note.md")

	if err := Write(path, &Task{ID: 2, Text: "no note"}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.Body != "" {
		t.Errorf("Body = %q, want empty", got.Body)
	}
}

func TestReadMalformed(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"no frontmatter", "just some text\n"},
		{"unclosed frontmatter", "---\nid: 1\ntext: oops\n"},
		{"bad yaml", "---\nid: [not an int\n---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "-")+".md")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := Read(path); err == nil {
				t.Error("Read should fail on malformed file")
			}
		})
	}
}

func TestReadFrontmatterAtEOF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "eof.md")

	// Closing delimiter without a trailing newline.
	content := "---\nid: 5\ntext: trailing\npriority: low\ncategory: other\n---"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got.ID != 5 || got.Text != "trailing" {
		t.Errorf("got #%d %q", got.ID, got.Text)
	}
}
