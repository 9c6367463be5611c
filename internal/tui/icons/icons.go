// Package icons provides glyphs for terminal output, with Nerd Font
// variants when the terminal is known to support them.
package icons

import "os"

// IconSet holds the glyphs used across sam's output.
type IconSet struct {
	Agent    string // a subagent
	Enabled  string
	Disabled string
	Info     string
	Prompt   string // system prompt section
	Tool     string
	Trigger  string
	Watch    string
}

var nerd = IconSet{
	Agent:    "", // robot
	Enabled:  "",
	Disabled: "",
	Info:     "",
	Prompt:   "",
	Tool:     "",
	Trigger:  "",
	Watch:    "",
}

var plain = IconSet{
	Agent:    "●",
	Enabled:  "✓",
	Disabled: "✗",
	Info:     "ℹ",
	Prompt:   ">",
	Tool:     "⚒",
	Trigger:  "⚡",
	Watch:    "◉",
}

// Current returns the icon set for this terminal.
func Current() IconSet {
	if HasNerdFonts() {
		return nerd
	}
	return plain
}

// HasNerdFonts reports whether the terminal likely renders Nerd Font
// glyphs. SAM_USE_ICONS and NERD_FONTS force the answer either way;
// otherwise known terminal programs opt in.
func HasNerdFonts() bool {
	switch os.Getenv("SAM_USE_ICONS") {
	case "1":
		return true
	case "0":
		return false
	}
	switch os.Getenv("NERD_FONTS") {
	case "1":
		return true
	case "0":
		return false
	}

	switch os.Getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "Alacritty", "kitty", "Hyper", "ghostty":
		return true
	}
	if os.Getenv("KITTY_WINDOW_ID") != "" || os.Getenv("WEZTERM_PANE") != "" {
		return true
	}
	return false
}
