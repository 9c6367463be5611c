package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Dicklesworthstone/sam/internal/config"
	"github.com/Dicklesworthstone/sam/internal/output"
	"github.com/Dicklesworthstone/sam/internal/subagent"
	"github.com/Dicklesworthstone/sam/internal/tui/listview"
	"github.com/Dicklesworthstone/sam/internal/watcher"
)

func newListCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured subagents",
		Long: `List every configured subagent with its resolved enabled state.

The enabled column reflects every override layer: the config file, textual
-c overrides and the --enable/--disable toggles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch {
				if jsonOutput {
					return errors.New("--watch cannot be combined with --json")
				}
				return runListWatch()
			}
			return runList()
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "keep the list open and refresh when the config file changes")
	return cmd
}

func runList() error {
	cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}
	store := subagent.NewStore(cfg)
	defs := store.List()

	if jsonOutput {
		return output.PrintJSON(defs)
	}

	if len(defs) == 0 {
		fmt.Println("No subagents are configured.")
		fmt.Println(SubtleText("Add a [subagents.<name>] table to " + config.ResolvePath(cfgFile)))
		return nil
	}

	table := NewStyledTable("NAME", "ENABLED", "DISPLAY NAME")
	for _, d := range defs {
		enabled := "yes"
		if !d.Enabled {
			enabled = "no"
		}
		display := ""
		if d.DisplayName != nil {
			display = Truncate(*d.DisplayName, 40)
		}
		table.AddRow(d.Name, enabled, display)
	}
	table.WithFooter(fmt.Sprintf("%d subagent(s)", len(defs)))

	fmt.Print(table.Render())
	return nil
}

// runListWatch shows the list in a live view that reloads whenever the
// config file changes on disk. The loader re-runs the full resolution so
// edits to overridden values still show their merged result.
func runListWatch() error {
	path := config.ResolvePath(cfgFile)

	loader := func() ([]subagent.Definition, error) {
		cfg, err := loadConfig(nil)
		if err != nil {
			return nil, err
		}
		return subagent.NewStore(cfg).List(), nil
	}

	p := tea.NewProgram(listview.New(path, loader), tea.WithAltScreen())

	w, err := watcher.New(path, func() {
		p.Send(listview.ReloadMsg{})
	})
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	defer w.Close()

	_, err = p.Run()
	return err
}
