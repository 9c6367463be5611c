package listview

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Dicklesworthstone/sam/internal/subagent"
)

func strptr(s string) *string { return &s }

func load(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelLoadPopulatesRows(t *testing.T) {
	defs := []subagent.Definition{
		{Name: "reviewer", Enabled: false, DisplayName: strptr("Reviewer")},
		{Name: "tester", Enabled: true},
	}
	m := New("/tmp/config.toml", func() ([]subagent.Definition, error) {
		return defs, nil
	})

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init should trigger a load")
	}
	m = load(t, m, cmd())

	view := m.View()
	for _, want := range []string{"reviewer", "no", "Reviewer", "tester", "yes"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestModelReloadUsesLoader(t *testing.T) {
	calls := 0
	m := New("/tmp/config.toml", func() ([]subagent.Definition, error) {
		calls++
		return nil, nil
	})

	m = load(t, m, m.Init()())
	_, cmd := m.Update(ReloadMsg{})
	if cmd == nil {
		t.Fatal("ReloadMsg should trigger a load")
	}
	cmd()
	if calls != 2 {
		t.Errorf("loader calls = %d, want 2", calls)
	}
}

func TestModelShowsConfigError(t *testing.T) {
	m := New("/tmp/config.toml", func() ([]subagent.Definition, error) {
		return nil, errors.New("parsing /tmp/config.toml: boom")
	})
	m = load(t, m, m.Init()())

	if !strings.Contains(m.View(), "config error") {
		t.Errorf("view should surface the load error:\n%s", m.View())
	}
}

func TestModelQuitKey(t *testing.T) {
	m := New("/tmp/config.toml", func() ([]subagent.Definition, error) { return nil, nil })
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("cmd() = %#v, want tea.Quit", msg)
	}
}
