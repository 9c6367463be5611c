package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestFprintJSON(t *testing.T) {
	var buf bytes.Buffer
	v := struct {
		Name    string  `json:"name"`
		Prompt  *string `json:"prompt"`
		Enabled bool    `json:"enabled"`
	}{Name: "reviewer", Enabled: true}

	if err := FprintJSON(&buf, v); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, `"name": "reviewer"`) {
		t.Errorf("output = %s", out)
	}
	if !strings.Contains(out, `"prompt": null`) {
		t.Errorf("nil pointer should serialize as explicit null, got %s", out)
	}
}

func TestFprintYAML(t *testing.T) {
	var buf bytes.Buffer
	v := struct {
		Name  string   `yaml:"name"`
		Tools []string `yaml:"tools"`
	}{Name: "tester", Tools: []string{}}

	if err := FprintYAML(&buf, v); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "name: tester") {
		t.Errorf("output = %s", out)
	}
	if !strings.Contains(out, "tools: []") {
		t.Errorf("empty slice should serialize as [], got %s", out)
	}
}

func TestFprintYAMLReportsWriteFailure(t *testing.T) {
	// Small documents are flushed on Close, so a broken sink only shows
	// up there.
	err := FprintYAML(failWriter{}, map[string]string{"name": "tester"})
	if err == nil {
		t.Fatal("write failure must surface as an error")
	}
}
