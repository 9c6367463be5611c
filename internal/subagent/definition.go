// Package subagent implements the subagent layer: resolved definitions,
// per-invocation enable/disable toggles, override merging and invocation
// assembly for the external executor.
package subagent

import (
	"github.com/Dicklesworthstone/sam/internal/config"
)

// Definition is one fully resolved subagent. Enabled is the final merged
// value after every override layer; it is never the raw file value.
type Definition struct {
	Name         string   `json:"name" yaml:"name"`
	DisplayName  *string  `json:"display_name" yaml:"display_name"`
	Description  *string  `json:"description" yaml:"description"`
	Enabled      bool     `json:"enabled" yaml:"enabled"`
	SystemPrompt *string  `json:"system_prompt" yaml:"system_prompt"`
	// AllowedTools empty means the subagent inherits the executor's
	// default tool set, not "no tools".
	AllowedTools   []string `json:"allowed_tools" yaml:"allowed_tools"`
	ContextSources []string `json:"context_sources" yaml:"context_sources"`
	// Triggers empty means the subagent is invoked manually only.
	Triggers []string `json:"triggers" yaml:"triggers"`
}

// resolve builds a Definition from its raw config table. Sequence fields
// come back non-nil so both structured output formats serialize them as
// empty arrays rather than null.
func resolve(name string, t config.SubagentTable) Definition {
	enabled := true
	if t.Enabled != nil {
		enabled = *t.Enabled
	}
	return Definition{
		Name:           name,
		DisplayName:    t.DisplayName,
		Description:    t.Description,
		Enabled:        enabled,
		SystemPrompt:   t.SystemPrompt,
		AllowedTools:   emptyIfNil(t.Tools),
		ContextSources: emptyIfNil(t.Context),
		Triggers:       emptyIfNil(t.Triggers),
	}
}

func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
