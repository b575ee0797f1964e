package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/candlewick-labs/tasklight/internal/clierr"
	"github.com/candlewick-labs/tasklight/internal/config"
	"github.com/candlewick-labs/tasklight/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and modify list configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the full configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Print a single configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Long: `Sets a writable configuration key and saves the config file.

Writable keys:
  theme                        light or dark
  list.name                    display name of the list
  defaults.priority            default priority for new tasks
  defaults.category            default category for new tasks
  notifications.enabled        true or false
  notifications.default_delay  duration, e.g. 10m`,
	Args: cobra.ExactArgs(2), //nolint:mnd // KEY VALUE
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

// configAccessor reads and optionally writes one config key.
type configAccessor struct {
	get func(*config.Config) string
	set func(*config.Config, string) error // nil for read-only keys
}

func configAccessors() map[string]configAccessor {
	return map[string]configAccessor{
		"version": {
			get: func(c *config.Config) string { return strconv.Itoa(c.Version) },
		},
		"list.name": {
			get: func(c *config.Config) string { return c.List.Name },
			set: func(c *config.Config, v string) error {
				if v == "" {
					return clierr.New(clierr.InvalidInput, "list.name must not be empty")
				}
				c.List.Name = v
				return nil
			},
		},
		"tasks_dir": {
			get: func(c *config.Config) string { return c.TasksDir },
		},
		"theme": {
			get: func(c *config.Config) string { return c.Theme },
			set: func(c *config.Config, v string) error {
				if v != config.ThemeLight && v != config.ThemeDark {
					return clierr.Newf(clierr.InvalidTheme,
						"invalid theme %q: must be %q or %q", v, config.ThemeLight, config.ThemeDark)
				}
				c.Theme = v
				return nil
			},
		},
		"defaults.priority": {
			get: func(c *config.Config) string { return c.Defaults.Priority },
			set: func(c *config.Config, v string) error {
				if !sliceContains(c.Priorities, v) {
					return clierr.Newf(clierr.InvalidPriority,
						"invalid priority %q: must be one of %v", v, c.Priorities)
				}
				c.Defaults.Priority = v
				return nil
			},
		},
		"defaults.category": {
			get: func(c *config.Config) string { return c.Defaults.Category },
			set: func(c *config.Config, v string) error {
				if !sliceContains(c.Categories, v) {
					return clierr.Newf(clierr.InvalidCategory,
						"invalid category %q: must be one of %v", v, c.Categories)
				}
				c.Defaults.Category = v
				return nil
			},
		},
		"notifications.enabled": {
			get: func(c *config.Config) string {
				return strconv.FormatBool(c.NotificationsEnabled())
			},
			set: func(c *config.Config, v string) error {
				b, err := strconv.ParseBool(v)
				if err != nil {
					return clierr.Newf(clierr.InvalidInput,
						"notifications.enabled must be true or false, got %q", v)
				}
				c.Notifications.Enabled = &b
				return nil
			},
		},
		"notifications.default_delay": {
			get: func(c *config.Config) string { return c.ReminderDelay().String() },
			set: func(c *config.Config, v string) error {
				if _, err := time.ParseDuration(v); err != nil {
					return clierr.Newf(clierr.InvalidDelay,
						"invalid delay %q: use a duration like 30s, 15m, or 2h", v)
				}
				c.Notifications.DefaultDelay = v
				return nil
			},
		},
		"next_id": {
			get: func(c *config.Config) string { return strconv.Itoa(c.NextID) },
		},
	}
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	accessors := configAccessors()

	if outputFormat() == output.FormatJSON {
		values := make(map[string]string, len(accessors))
		for key, acc := range accessors {
			values[key] = acc.get(cfg)
		}
		return output.JSON(os.Stdout, values)
	}

	keys := make([]string, 0, len(accessors))
	for key := range accessors {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(os.Stdout, "%-28s %s\n", key, accessors[key].get(cfg))
	}
	return nil
}

func runConfigGet(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	acc, ok := configAccessors()[args[0]]
	if !ok {
		return clierr.Newf(clierr.InvalidInput, "unknown config key %q", args[0])
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]string{args[0]: acc.get(cfg)})
	}

	fmt.Fprintln(os.Stdout, acc.get(cfg))
	return nil
}

func runConfigSet(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	acc, ok := configAccessors()[key]
	if !ok {
		return clierr.Newf(clierr.InvalidInput, "unknown config key %q", key)
	}
	if acc.set == nil {
		return clierr.Newf(clierr.InvalidInput, "config key %q is read-only", key)
	}

	if err := acc.set(cfg, value); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	if outputFormat() == output.FormatJSON {
		return output.JSON(os.Stdout, map[string]string{key: acc.get(cfg)})
	}

	output.Messagef(os.Stdout, "Set %s = %s", key, acc.get(cfg))
	return nil
}

func sliceContains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}
