// Package config loads the sam configuration: a TOML file describing
// subagents and the external executor, layered with defaults, environment
// variables and textual `path=value` overrides.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config is the fully merged configuration for one invocation. It is a
// plain value returned from Load; nothing in this package holds global
// state.
type Config struct {
	Theme     string                   `toml:"theme"`    // mocha, latte, or auto
	Executor  ExecutorConfig           `toml:"executor"` // external non-interactive executor
	Subagents map[string]SubagentTable `toml:"subagents"`
}

// ExecutorConfig describes how to launch the external executor.
type ExecutorConfig struct {
	// Command is the executor command line, split on whitespace. The
	// assembled invocation tokens and override flags are appended to it.
	Command string `toml:"command"`
}

// SubagentTable is the raw on-disk form of one subagent definition.
// Optional text fields are pointers so that "absent" survives the trip to
// JSON output as an explicit null.
type SubagentTable struct {
	DisplayName  *string  `toml:"display_name"`
	Description  *string  `toml:"description"`
	SystemPrompt *string  `toml:"system_prompt"`
	Enabled      *bool    `toml:"enabled"` // nil means enabled
	Tools        []string `toml:"tools"`
	Context      []string `toml:"context"`
	Triggers     []string `toml:"triggers"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Theme: "auto",
		Executor: ExecutorConfig{
			Command: "codex-exec",
		},
		Subagents: map[string]SubagentTable{},
	}
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "sam", "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "sam", "config.toml")
}

// ExpandHome expands a leading ~ in a path.
func ExpandHome(path string) string {
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// ResolvePath picks the config file path: explicit flag, then SAM_CONFIG,
// then the default location.
func ResolvePath(flagPath string) string {
	if flagPath != "" {
		return ExpandHome(flagPath)
	}
	if env := os.Getenv("SAM_CONFIG"); env != "" {
		return ExpandHome(env)
	}
	return DefaultPath()
}

// Load reads the config file at path (a missing file is not an error), folds
// the textual overrides into it in sequence order, then applies the
// structured toggles. The returned Config is the final merged value: the
// `enabled` state of each subagent already reflects every layer.
//
// Layering, lowest to highest precedence:
//
//	defaults < file < env < textual overrides < toggles
func Load(path string, overrides []Override, toggles map[string]bool) (*Config, error) {
	doc := make(map[string]interface{})

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// Defaults plus overrides only.
	default:
		return nil, err
	}

	// The environment sits between the file and the textual overrides, so
	// its values are seeded into the document before the overrides fold in.
	if env := os.Getenv("SAM_EXECUTOR"); env != "" {
		Override{Path: []string{"executor", "command"}, Value: env}.Apply(doc)
	}
	if env := os.Getenv("SAM_THEME"); env != "" {
		Override{Path: []string{"theme"}, Value: env}.Apply(doc)
	}

	// Textual overrides operate on the document, not the typed struct, so
	// that any path addressable in the file is addressable here too.
	ApplyAll(doc, overrides)

	var merged bytes.Buffer
	if err := toml.NewEncoder(&merged).Encode(doc); err != nil {
		return nil, fmt.Errorf("merging overrides: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(merged.Bytes(), cfg); err != nil {
		return nil, fmt.Errorf("applying overrides: %w", err)
	}

	// Structured toggles are the last layer: they win over the file and
	// the textual overrides for the resolved enabled state. Names without
	// a definition are ignored; callers validate the names they care about.
	for name, enabled := range toggles {
		if t, ok := cfg.Subagents[name]; ok {
			v := enabled
			t.Enabled = &v
			cfg.Subagents[name] = t
		}
	}

	if cfg.Subagents == nil {
		cfg.Subagents = map[string]SubagentTable{}
	}

	return cfg, nil
}
