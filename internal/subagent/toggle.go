package subagent

import "fmt"

// ToggleSet holds the per-invocation --enable/--disable flags, in flag
// order per kind. It is built once at process start and never mutated.
//
// Its two views feed different merge pipelines and intentionally disagree
// when a name appears in both lists: EnabledMap lets disable win (the
// structured path used when listing or showing), while OverrideStrings
// keeps every occurrence in order (the textual path used when running,
// where positional last-wins applies). Do not unify them.
type ToggleSet struct {
	Enable  []string
	Disable []string
}

// EnabledMap collapses the toggles into name -> enabled. Enables are
// applied first, then disables, so a name present in both comes out
// disabled.
func (t ToggleSet) EnabledMap() map[string]bool {
	m := make(map[string]bool, len(t.Enable)+len(t.Disable))
	for _, name := range t.Enable {
		m[name] = true
	}
	for _, name := range t.Disable {
		m[name] = false
	}
	return m
}

// OverrideStrings renders the toggles as textual overrides, one entry per
// flag occurrence, enables first then disables, duplicates preserved.
func (t ToggleSet) OverrideStrings() []string {
	out := make([]string, 0, len(t.Enable)+len(t.Disable))
	for _, name := range t.Enable {
		out = append(out, fmt.Sprintf("subagents.%s.enabled=true", name))
	}
	for _, name := range t.Disable {
		out = append(out, fmt.Sprintf("subagents.%s.enabled=false", name))
	}
	return out
}

// IsEmpty reports whether no toggles were given.
func (t ToggleSet) IsEmpty() bool {
	return len(t.Enable) == 0 && len(t.Disable) == 0
}
