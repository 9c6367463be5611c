// Package output provides machine-readable serialization helpers for CLI
// results.
package output

import (
	"encoding/json"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// PrintJSON writes v to stdout as indented JSON.
func PrintJSON(v interface{}) error {
	return FprintJSON(os.Stdout, v)
}

// FprintJSON writes v to w as indented JSON.
func FprintJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintYAML writes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	return FprintYAML(os.Stdout, v)
}

// FprintYAML writes v to w as YAML. Close flushes the encoder, so its
// error is reported when Encode itself succeeded.
func FprintYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}
