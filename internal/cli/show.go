package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Dicklesworthstone/sam/internal/output"
	"github.com/Dicklesworthstone/sam/internal/subagent"
	"github.com/Dicklesworthstone/sam/internal/tui/icons"
)

func newShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show the resolved definition of one subagent",
		Long: `Show every field of one subagent after all override layers are applied.

Optional fields that were never set are shown as absent rather than empty,
so the output distinguishes "no prompt configured" from "empty prompt".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				format = "json"
			}
			return runShow(args[0], format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "human", "output format: human, json, or yaml")
	return cmd
}

func runShow(name, format string) error {
	cfg, err := loadConfig(nil)
	if err != nil {
		return err
	}

	def, err := subagent.NewStore(cfg).Get(name)
	if err != nil {
		return err
	}

	switch format {
	case "json":
		return output.PrintJSON(def)
	case "yaml":
		return output.PrintYAML(def)
	case "human":
		printHuman(def)
		return nil
	}
	return fmt.Errorf("invalid format %q (human, json, yaml)", format)
}

func printHuman(def subagent.Definition) {
	ic := icons.Current()

	title := def.Name
	if def.DisplayName != nil {
		title = fmt.Sprintf("%s (%s)", *def.DisplayName, def.Name)
	}
	fmt.Println(SectionHeader(ic.Agent + " " + title))

	const keyWidth = 10

	enabled := "yes"
	if !def.Enabled {
		enabled = "no"
	}
	fmt.Println(KeyValue("Enabled", enabled, keyWidth))

	if def.Description != nil {
		fmt.Println(KeyValue("About", *def.Description, keyWidth))
	}

	fmt.Println(KeyValue("Tools", orInherit(def.AllowedTools, "(inherit default)"), keyWidth))
	fmt.Println(KeyValue("Context", orInherit(def.ContextSources, "(none)"), keyWidth))
	fmt.Println(KeyValue("Triggers", orInherit(def.Triggers, "(manual)"), keyWidth))

	if def.SystemPrompt != nil {
		fmt.Println()
		fmt.Println(SectionHeader(ic.Prompt + " System prompt"))
		fmt.Println(wordwrap.String(*def.SystemPrompt, terminalWidth()))
	}
}

// orInherit joins a list, or substitutes the marker when it is empty. Empty
// lists carry a meaning here (inherit, manual-only), so the marker names it.
func orInherit(items []string, marker string) string {
	if len(items) == 0 {
		return SubtleText(marker)
	}
	return strings.Join(items, ", ")
}

func terminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	if w > 100 {
		return 100
	}
	return w
}
