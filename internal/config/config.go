package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/candlewick-labs/tasklight/internal/clierr"
)

const fileMode = 0o600

// Sentinel errors.
var (
	ErrNotFound = errors.New("no task list found (run 'tasklight init' to create one)")
	ErrInvalid  = errors.New("invalid config")
)

// Config represents the task list configuration.
type Config struct {
	Version       int                 `yaml:"version"`
	List          ListConfig          `yaml:"list"`
	TasksDir      string              `yaml:"tasks_dir"`
	Priorities    []string            `yaml:"priorities"`
	Categories    []string            `yaml:"categories"`
	Defaults      DefaultsConfig      `yaml:"defaults"`
	Theme         string              `yaml:"theme"`
	Notifications NotificationConfig  `yaml:"notifications,omitempty"`
	NextID        int                 `yaml:"next_id"`

	// dir is the absolute path to the list directory (not serialized).
	dir string `yaml:"-"`
}

// ListConfig holds list metadata.
type ListConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// DefaultsConfig holds default values for new tasks.
type DefaultsConfig struct {
	Priority string `yaml:"priority"`
	Category string `yaml:"category"`
}

// NotificationConfig controls reminder notifications.
type NotificationConfig struct {
	// Enabled gates all notification scheduling. Nil means enabled.
	Enabled *bool `yaml:"enabled,omitempty"`
	// DefaultDelay is the reminder delay used when none is given, e.g. "10m".
	DefaultDelay string `yaml:"default_delay,omitempty"`
}

// Dir returns the absolute path to the list directory.
func (c *Config) Dir() string {
	return c.dir
}

// TasksPath returns the absolute path to the tasks directory.
func (c *Config) TasksPath() string {
	return filepath.Join(c.dir, c.TasksDir)
}

// ConfigPath returns the absolute path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.dir, ConfigFileName)
}

// SetDir sets the list directory path on the config.
func (c *Config) SetDir(dir string) {
	c.dir = dir
}

// NewDefault creates a Config with default values.
func NewDefault(name string) *Config {
	return &Config{
		Version:    CurrentVersion,
		List:       ListConfig{Name: name},
		TasksDir:   DefaultTasksDir,
		Priorities: append([]string{}, DefaultPriorities...),
		Categories: append([]string{}, DefaultCategories...),
		Theme:      DefaultTheme,
		Notifications: NotificationConfig{
			DefaultDelay: DefaultReminderDelay,
		},
		Defaults: DefaultsConfig{
			Priority: DefaultPriority,
			Category: DefaultCategory,
		},
		NextID: 1,
	}
}

// NotificationsEnabled reports whether reminder notifications are allowed.
func (c *Config) NotificationsEnabled() bool {
	if c.Notifications.Enabled == nil {
		return true
	}
	return *c.Notifications.Enabled
}

// ReminderDelay parses the configured default reminder delay.
// Falls back to DefaultReminderDelay when unset or unparseable.
func (c *Config) ReminderDelay() time.Duration {
	if c.Notifications.DefaultDelay != "" {
		if d, err := time.ParseDuration(c.Notifications.DefaultDelay); err == nil {
			return d
		}
	}
	d, _ := time.ParseDuration(DefaultReminderDelay)
	return d
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalid, c.Version, CurrentVersion)
	}
	if c.List.Name == "" {
		return fmt.Errorf("%w: list.name is required", ErrInvalid)
	}
	if c.TasksDir == "" {
		return fmt.Errorf("%w: tasks_dir is required", ErrInvalid)
	}
	if len(c.Priorities) < 1 {
		return fmt.Errorf("%w: at least 1 priority is required", ErrInvalid)
	}
	if hasDuplicates(c.Priorities) {
		return fmt.Errorf("%w: priorities contain duplicates", ErrInvalid)
	}
	if len(c.Categories) < 1 {
		return fmt.Errorf("%w: at least 1 category is required", ErrInvalid)
	}
	if hasDuplicates(c.Categories) {
		return fmt.Errorf("%w: categories contain duplicates", ErrInvalid)
	}
	if !contains(c.Priorities, c.Defaults.Priority) {
		return fmt.Errorf("%w: default priority %q not in priorities list", ErrInvalid, c.Defaults.Priority)
	}
	if !contains(c.Categories, c.Defaults.Category) {
		return fmt.Errorf("%w: default category %q not in categories list", ErrInvalid, c.Defaults.Category)
	}
	if c.Theme != ThemeLight && c.Theme != ThemeDark {
		return fmt.Errorf("%w: theme must be %q or %q", ErrInvalid, ThemeLight, ThemeDark)
	}
	if c.Notifications.DefaultDelay != "" {
		if _, err := time.ParseDuration(c.Notifications.DefaultDelay); err != nil {
			return fmt.Errorf("%w: invalid notifications.default_delay %q: %w",
				ErrInvalid, c.Notifications.DefaultDelay, err)
		}
	}
	if c.NextID < 1 {
		return fmt.Errorf("%w: next_id must be >= 1", ErrInvalid)
	}
	return nil
}

// Save writes the config to its directory.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(c.ConfigPath(), data, fileMode)
}

// Load reads and validates a config from the given list directory.
func Load(dir string) (*Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	path := filepath.Join(absDir, ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted source
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.dir = absDir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Init creates a new task list in the given directory with default settings.
// It creates the list directory, tasks subdirectory, and config file.
func Init(dir, name string) (*Config, error) {
	const dirMode = 0o750

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg := NewDefault(name)
	cfg.SetDir(absDir)

	if err := os.MkdirAll(cfg.TasksPath(), dirMode); err != nil {
		return nil, fmt.Errorf("creating tasks directory: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return nil, fmt.Errorf("writing config: %w", err)
	}

	return cfg, nil
}

// FindDir walks up from startDir looking for a tasklight directory.
func FindDir(startDir string) (string, error) {
	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	dir := absStart
	for {
		candidate := filepath.Join(dir, DefaultDir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return filepath.Join(dir, DefaultDir), nil
		}

		// Also check if we're inside the list directory itself.
		candidate = filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", clierr.New(clierr.ListNotFound,
				"no task list found (run 'tasklight init' to create one)")
		}
		dir = parent
	}
}

func hasDuplicates(items []string) bool {
	seen := make(map[string]bool, len(items))
	for _, s := range items {
		if seen[s] {
			return true
		}
		seen[s] = true
	}
	return false
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
