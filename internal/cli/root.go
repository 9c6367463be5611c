// Package cli implements the sam command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/sam/internal/config"
	"github.com/Dicklesworthstone/sam/internal/output"
	"github.com/Dicklesworthstone/sam/internal/subagent"
	"github.com/Dicklesworthstone/sam/internal/tui/theme"
)

var (
	cfgFile string

	// Global JSON output flag - inherited by all subcommands
	jsonOutput bool

	// Global color control flag - inherited by all subcommands
	noColor bool

	// Root-scope textual overrides, given before the subcommand. Kept
	// separate from run-scope ones because they occupy a lower layer in
	// the merged override sequence.
	rootOverrides []string

	// Per-invocation subagent toggles, in flag order per kind.
	enableNames  []string
	disableNames []string

	// Build information - set via ldflags
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "sam",
	Short: "Subagent manager for codex-compatible executors",
	Long: `Sam manages subagent definitions and hands fully assembled invocations
to an external non-interactive executor.

Quick Start:
  sam list                               # List configured subagents
  sam show reviewer                      # Inspect one subagent
  sam run reviewer "review this diff"    # Run a subagent with a prompt
  sam --enable tester run reviewer       # Toggle others on for one run

Configuration lives in ~/.config/sam/config.toml. Any config value can be
overridden per invocation with -c key=value.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			os.Setenv("SAM_NO_COLOR", "1")
		}
		if theme.NoColorEnabled() || !isatty.IsTerminal(os.Stdout.Fd()) {
			lipgloss.SetColorProfile(termenv.Ascii)
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ~/.config/sam/config.toml)")
	pf.BoolVar(&jsonOutput, "json", false, "output machine-readable JSON")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")
	pf.StringArrayVarP(&rootOverrides, "override", "c", nil, "override a config value as key=value (repeatable)")
	pf.StringArrayVar(&enableNames, "enable", nil, "enable a subagent for this invocation (repeatable)")
	pf.StringArrayVar(&disableNames, "disable", nil, "disable a subagent for this invocation (repeatable)")

	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newRunCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// toggles collects the --enable/--disable flags into a ToggleSet.
func toggles() subagent.ToggleSet {
	return subagent.ToggleSet{Enable: enableNames, Disable: disableNames}
}

// loadConfig resolves the config path, parses the root-scope overrides plus
// any extra run-scope ones, and loads the merged configuration. The theme is
// applied as a side effect so everything rendered afterwards uses it.
func loadConfig(extraOverrides []string) (*config.Config, error) {
	raw := make([]string, 0, len(rootOverrides)+len(extraOverrides))
	raw = append(raw, rootOverrides...)
	raw = append(raw, extraOverrides...)

	overrides, err := config.ParseOverrides(raw)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(config.ResolvePath(cfgFile), overrides, toggles().EnabledMap())
	if err != nil {
		return nil, err
	}

	theme.Set(cfg.Theme)
	return cfg, nil
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		// SilenceErrors is set so JSON consumers never see prose on
		// stdout; print the error ourselves.
		if !jsonOutput {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		return err
	}
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				return output.PrintJSON(map[string]string{
					"version": Version,
					"commit":  Commit,
					"date":    Date,
				})
			}
			fmt.Printf("sam %s (commit %s, built %s)\n", Version, Commit, Date)
			return nil
		},
	}
}
