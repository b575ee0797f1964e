package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInitAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tasklight")

	created, err := Init(dir, "errands")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if created.List.Name != "errands" {
		t.Errorf("name = %q, want errands", created.List.Name)
	}
	if created.NextID != 1 {
		t.Errorf("NextID = %d, want 1", created.NextID)
	}

	if _, err := os.Stat(created.TasksPath()); err != nil {
		t.Errorf("tasks dir not created: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.List.Name != "errands" || loaded.Theme != DefaultTheme {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.Defaults.Priority != DefaultPriority || loaded.Defaults.Category != DefaultCategory {
		t.Errorf("defaults = %+v", loaded.Defaults)
	}
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(t.TempDir())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "tasklight")
	cfg, err := Init(dir, "roundtrip")
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	enabled := false
	cfg.Theme = ThemeLight
	cfg.NextID = 17
	cfg.Notifications.Enabled = &enabled
	cfg.Notifications.DefaultDelay = "25m"
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Theme != ThemeLight || loaded.NextID != 17 {
		t.Errorf("loaded = %+v", loaded)
	}
	if loaded.NotificationsEnabled() {
		t.Error("notifications.enabled = true, want false")
	}
	if loaded.ReminderDelay() != 25*time.Minute {
		t.Errorf("ReminderDelay = %v, want 25m", loaded.ReminderDelay())
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config { return NewDefault("valid") }

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad version", func(c *Config) { c.Version = 99 }},
		{"empty name", func(c *Config) { c.List.Name = "" }},
		{"empty tasks dir", func(c *Config) { c.TasksDir = "" }},
		{"no priorities", func(c *Config) { c.Priorities = nil }},
		{"duplicate priorities", func(c *Config) { c.Priorities = []string{"high", "high"} }},
		{"no categories", func(c *Config) { c.Categories = nil }},
		{"default priority not listed", func(c *Config) { c.Defaults.Priority = "urgent" }},
		{"default category not listed", func(c *Config) { c.Defaults.Category = "hobbies" }},
		{"bad theme", func(c *Config) { c.Theme = "solarized" }},
		{"bad delay", func(c *Config) { c.Notifications.DefaultDelay = "soonish" }},
		{"zero next_id", func(c *Config) { c.NextID = 0 }},
	}

	if err := valid().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestNotificationsEnabledDefault(t *testing.T) {
	cfg := NewDefault("x")
	if !cfg.NotificationsEnabled() {
		t.Error("nil enabled should mean enabled")
	}
}

func TestReminderDelayFallback(t *testing.T) {
	cfg := NewDefault("x")
	cfg.Notifications.DefaultDelay = ""

	want, _ := time.ParseDuration(DefaultReminderDelay)
	if got := cfg.ReminderDelay(); got != want {
		t.Errorf("ReminderDelay = %v, want %v", got, want)
	}
}

func TestFindDir(t *testing.T) {
	root := t.TempDir()
	listDir := filepath.Join(root, DefaultDir)
	if _, err := Init(listDir, "findme"); err != nil {
		t.Fatalf("Init: %v", err)
	}

	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o750); err != nil {
		t.Fatal(err)
	}

	got, err := FindDir(nested)
	if err != nil {
		t.Fatalf("FindDir: %v", err)
	}
	if got != listDir {
		t.Errorf("FindDir = %q, want %q", got, listDir)
	}

	// Starting inside the list directory itself also works.
	got, err = FindDir(listDir)
	if err != nil {
		t.Fatalf("FindDir from list dir: %v", err)
	}
	if got != listDir {
		t.Errorf("FindDir = %q, want %q", got, listDir)
	}
}

func TestFindDirNotFound(t *testing.T) {
	if _, err := FindDir(t.TempDir()); err == nil {
		t.Error("FindDir should fail when no list exists")
	}
}
