// Package theme defines the light and dark color palettes for the TUI.
package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Name identifiers for the built-in themes.
const (
	NameLight = "light"
	NameDark  = "dark"
)

// Theme holds the styles used by the single-screen TUI.
type Theme struct {
	Name string

	Title     lipgloss.Style
	StatusBar lipgloss.Style
	Dim       lipgloss.Style
	Error     lipgloss.Style

	Pending  lipgloss.Style
	Done     lipgloss.Style
	Selected lipgloss.Style

	PriorityHigh   lipgloss.Style
	PriorityMedium lipgloss.Style
	PriorityLow    lipgloss.Style
	Category       lipgloss.Style

	FormLabel  lipgloss.Style
	FormBorder lipgloss.Style
}

// Dark returns the dark palette.
func Dark() Theme {
	return Theme{
		Name: NameDark,

		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")).Padding(0, 1),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("238")),

		PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
		PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Category:       lipgloss.NewStyle().Foreground(lipgloss.Color("110")),

		FormLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		FormBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(0, 1),
	}
}

// Light returns the light palette.
func Light() Theme {
	return Theme{
		Name: NameLight,

		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("25")).Padding(0, 1),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),

		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Strikethrough(true),
		Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("253")),

		PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
		PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Category:       lipgloss.NewStyle().Foreground(lipgloss.Color("25")),

		FormLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		FormBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("25")).Padding(0, 1),
	}
}

// ByName returns the theme with the given name, falling back to the
// terminal-background default for unknown names.
func ByName(name string) Theme {
	switch name {
	case NameLight:
		return Light()
	case NameDark:
		return Dark()
	default:
		return Default()
	}
}

// Default picks a theme from the terminal background color.
func Default() Theme {
	if termenv.HasDarkBackground() {
		return Dark()
	}
	return Light()
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t.Name == NameDark {
		return Light()
	}
	return Dark()
}

// Priority returns the style for a priority name.
func (t Theme) Priority(p string) lipgloss.Style {
	switch p {
	case "high":
		return t.PriorityHigh
	case "low":
		return t.PriorityLow
	default:
		return t.PriorityMedium
	}
}
