// Package config handles to-do list configuration.
package config

const (
	// DefaultDir is the default list directory name.
	DefaultDir = "tasklight"
	// DefaultTasksDir is the default tasks subdirectory name.
	DefaultTasksDir = "tasks"
	// DefaultPriority is the default priority for new tasks.
	DefaultPriority = "medium"
	// DefaultCategory is the default category for new tasks.
	DefaultCategory = "other"
	// DefaultTheme is the default TUI color theme.
	DefaultTheme = "dark"
	// DefaultReminderDelay is the default reminder delay as a duration string.
	DefaultReminderDelay = "10m"

	// ConfigFileName is the name of the config file within the list directory.
	ConfigFileName = "config.yml"

	// CurrentVersion is the current config schema version.
	CurrentVersion = 1

	// ThemeLight and ThemeDark are the recognized theme names.
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Default slice values for a new list (slices cannot be const).
var (
	// DefaultPriorities is ordered from most to least urgent.
	DefaultPriorities = []string{
		"high",
		"medium",
		"low",
	}

	DefaultCategories = []string{
		"work",
		"personal",
		"shopping",
		"other",
	}
)
