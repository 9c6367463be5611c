package subagent

import (
	"fmt"

	"github.com/Dicklesworthstone/sam/internal/config"
)

// MergeOverrides builds the final override sequence handed to the executor
// for one run, in ascending precedence:
//
//  1. root-scope textual overrides (given before the subcommand)
//  2. run-scope textual overrides
//  3. the toggle flags, rendered as overrides in flag order
//  4. a forced `subagents.<name>.enabled=true` for the run target, so a
//     run always enables its own subagent even if an earlier layer
//     disabled it
//  5. `base_instructions=<prompt>` when the definition has a system
//     prompt, encoded as a TOML string so the prompt text cannot break
//     out of the value position
//
// Precedence is purely positional: whichever entry for a path comes last
// wins. Callers must not reorder or deduplicate the result.
func MergeOverrides(rootOverrides, runOverrides []string, toggles ToggleSet, def Definition) []string {
	out := make([]string, 0, len(rootOverrides)+len(runOverrides)+len(toggles.Enable)+len(toggles.Disable)+2)
	out = append(out, rootOverrides...)
	out = append(out, runOverrides...)
	out = append(out, toggles.OverrideStrings()...)
	out = append(out, fmt.Sprintf("subagents.%s.enabled=true", def.Name))
	if def.SystemPrompt != nil {
		out = append(out, "base_instructions="+config.EncodeString(*def.SystemPrompt))
	}
	return out
}
