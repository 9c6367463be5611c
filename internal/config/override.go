package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// Override is a single parsed `path.to.key=value` configuration override.
// The value is a scalar decoded with the TOML literal grammar, so quoted
// strings, booleans, integers and floats all parse the way they would in
// the config file itself. Bare values that are not valid TOML parse as
// plain strings.
type Override struct {
	Path  []string
	Value interface{}
}

// String serializes the override back to the textual `path=value` grammar.
func (o Override) String() string {
	return strings.Join(o.Path, ".") + "=" + EncodeValue(o.Value)
}

// ParseOverride parses a raw `path.to.key=value` string.
func ParseOverride(raw string) (Override, error) {
	key, val, found := strings.Cut(raw, "=")
	if !found {
		return Override{}, fmt.Errorf("invalid override (expected key=value): %s", raw)
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return Override{}, fmt.Errorf("invalid override (empty key): %s", raw)
	}

	path := strings.Split(key, ".")
	for _, seg := range path {
		if seg == "" {
			return Override{}, fmt.Errorf("invalid override key %q: empty path segment", key)
		}
	}

	return Override{Path: path, Value: parseScalar(val)}, nil
}

// ParseOverrides parses a slice of raw override strings, preserving order.
func ParseOverrides(raw []string) ([]Override, error) {
	overrides := make([]Override, 0, len(raw))
	for _, r := range raw {
		o, err := ParseOverride(r)
		if err != nil {
			return nil, err
		}
		overrides = append(overrides, o)
	}
	return overrides, nil
}

// parseScalar decodes a value using the TOML grammar. Values that fail to
// parse as TOML (bare words, paths with slashes, etc.) are kept verbatim
// as strings.
func parseScalar(val string) interface{} {
	trimmed := strings.TrimSpace(val)

	var doc map[string]interface{}
	if err := toml.Unmarshal([]byte("v = "+trimmed+"\n"), &doc); err == nil {
		if v, ok := doc["v"]; ok {
			return v
		}
	}
	return val
}

// Apply folds the override into a nested document, creating intermediate
// tables as needed. A later Apply for the same path replaces the earlier
// value, which is what gives override sequences their positional last-wins
// precedence.
func (o Override) Apply(doc map[string]interface{}) {
	cur := doc
	for _, seg := range o.Path[:len(o.Path)-1] {
		next, ok := cur[seg].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			cur[seg] = next
		}
		cur = next
	}
	cur[o.Path[len(o.Path)-1]] = o.Value
}

// ApplyAll folds overrides into doc in sequence order.
func ApplyAll(doc map[string]interface{}, overrides []Override) {
	for _, o := range overrides {
		o.Apply(doc)
	}
}

// EncodeValue renders a scalar in the textual override grammar. Strings are
// quoted with EncodeString; everything else uses its TOML literal form.
func EncodeValue(v interface{}) string {
	switch t := v.(type) {
	case string:
		return EncodeString(t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// EncodeString quotes s as a TOML basic string. Embedded quotes, backslashes,
// newlines and other control characters are escaped so that the result is a
// single well-formed value token: decoding it with the TOML grammar yields s
// exactly. This is what keeps injected system prompts from corrupting the
// override sequence they are appended to.
func EncodeString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
