// Package theme provides the color palettes used by sam's terminal output.
package theme

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme is a resolved color palette.
type Theme struct {
	Primary  lipgloss.Color // headers, accents
	Text     lipgloss.Color // main content
	Subtext  lipgloss.Color // labels, secondary content
	Surface  lipgloss.Color // borders, dividers
	Success  lipgloss.Color
	Error    lipgloss.Color
	Warning  lipgloss.Color
	Info     lipgloss.Color
	Disabled lipgloss.Color // disabled subagents
}

// Catppuccin Mocha (dark terminals).
var mocha = Theme{
	Primary:  lipgloss.Color("#cba6f7"),
	Text:     lipgloss.Color("#cdd6f4"),
	Subtext:  lipgloss.Color("#a6adc8"),
	Surface:  lipgloss.Color("#585b70"),
	Success:  lipgloss.Color("#a6e3a1"),
	Error:    lipgloss.Color("#f38ba8"),
	Warning:  lipgloss.Color("#f9e2af"),
	Info:     lipgloss.Color("#89b4fa"),
	Disabled: lipgloss.Color("#6c7086"),
}

// Catppuccin Latte (light terminals).
var latte = Theme{
	Primary:  lipgloss.Color("#8839ef"),
	Text:     lipgloss.Color("#4c4f69"),
	Subtext:  lipgloss.Color("#6c6f85"),
	Surface:  lipgloss.Color("#acb0be"),
	Success:  lipgloss.Color("#40a02b"),
	Error:    lipgloss.Color("#d20f39"),
	Warning:  lipgloss.Color("#df8e1d"),
	Info:     lipgloss.Color("#1e66f5"),
	Disabled: lipgloss.Color("#9ca0b0"),
}

var (
	mu       sync.RWMutex
	selected = "auto"
)

// Set selects the theme by name: mocha, latte, or auto. Unknown names fall
// back to auto.
func Set(name string) {
	mu.Lock()
	selected = name
	mu.Unlock()
}

// Current returns the active theme. "auto" probes the terminal background
// via termenv and picks mocha for dark, latte for light.
func Current() Theme {
	mu.RLock()
	name := selected
	mu.RUnlock()

	switch name {
	case "mocha":
		return mocha
	case "latte":
		return latte
	default:
		if termenv.HasDarkBackground() {
			return mocha
		}
		return latte
	}
}

// NoColorEnabled reports whether color output is disabled by environment,
// honoring the NO_COLOR standard plus sam's own switch.
func NoColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	return os.Getenv("SAM_NO_COLOR") == "1"
}
