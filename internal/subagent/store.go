package subagent

import (
	"fmt"
	"sort"

	"github.com/Dicklesworthstone/sam/internal/config"
)

// NotFoundError reports a subagent name with no definition in the store.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown subagent `%s`", e.Name)
}

// Store holds the resolved definitions for one invocation. It is built
// from an already merged config and is read-only afterwards.
type Store struct {
	defs map[string]Definition
}

// NewStore resolves every subagent table in cfg into a Store.
func NewStore(cfg *config.Config) *Store {
	defs := make(map[string]Definition, len(cfg.Subagents))
	for name, t := range cfg.Subagents {
		defs[name] = resolve(name, t)
	}
	return &Store{defs: defs}
}

// List returns all definitions sorted by name.
func (s *Store) List() []Definition {
	out := make([]Definition, 0, len(s.defs))
	for _, d := range s.defs {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get returns the definition for name.
func (s *Store) Get(name string) (Definition, error) {
	d, ok := s.defs[name]
	if !ok {
		return Definition{}, &NotFoundError{Name: name}
	}
	return d, nil
}

// Len returns the number of definitions.
func (s *Store) Len() int {
	return len(s.defs)
}
