// Package listview renders the subagent list as a live bubbletea view,
// refreshed when the config file changes on disk.
package listview

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Dicklesworthstone/sam/internal/subagent"
	"github.com/Dicklesworthstone/sam/internal/tui/icons"
	"github.com/Dicklesworthstone/sam/internal/tui/theme"
)

// Loader re-resolves the definition list from disk.
type Loader func() ([]subagent.Definition, error)

// ReloadMsg asks the model to re-run its loader. The config watcher sends
// it from outside via Program.Send.
type ReloadMsg struct{}

type loadedMsg struct {
	defs []subagent.Definition
	err  error
}

// KeyMap defines the watch view keybindings.
type KeyMap struct {
	Reload key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the watch view model.
type Model struct {
	path    string
	loader  Loader
	keys    KeyMap
	table   table.Model
	err     error
	updated time.Time
	width   int
}

// New builds the model for the config at path.
func New(path string, loader Loader) Model {
	th := theme.Current()

	columns := []table.Column{
		{Title: "NAME", Width: 24},
		{Title: "ENABLED", Width: 8},
		{Title: "DISPLAY NAME", Width: 32},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(th.Surface).
		BorderBottom(true).
		Foreground(th.Primary).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(th.Text).
		Background(th.Surface).
		Bold(false)
	t.SetStyles(styles)

	return Model{
		path:   path,
		loader: loader,
		keys:   DefaultKeyMap(),
		table:  t,
	}
}

// Init triggers the initial load.
func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) load() tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		defs, err := loader()
		return loadedMsg{defs: defs, err: err}
	}
}

// Update handles reloads, resizes and keys.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ReloadMsg:
		return m, m.load()

	case loadedMsg:
		m.err = msg.err
		m.updated = time.Now()
		if msg.err == nil {
			rows := make([]table.Row, 0, len(msg.defs))
			for _, d := range msg.defs {
				enabled := "yes"
				if !d.Enabled {
					enabled = "no"
				}
				display := ""
				if d.DisplayName != nil {
					display = *d.DisplayName
				}
				rows = append(rows, table.Row{d.Name, enabled, display})
			}
			m.table.SetRows(rows)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.table.SetHeight(msg.Height - 5)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reload):
			return m, m.load()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table with a title and a status footer.
func (m Model) View() string {
	th := theme.Current()
	ic := icons.Current()

	title := lipgloss.NewStyle().Foreground(th.Primary).Bold(true).
		Render(ic.Watch + " Subagents (watching " + m.path + ")")

	footer := lipgloss.NewStyle().Foreground(th.Subtext).
		Render(fmt.Sprintf("r reload · q quit · updated %s", m.updated.Format("15:04:05")))
	if m.err != nil {
		footer = lipgloss.NewStyle().Foreground(th.Error).
			Render("config error: " + m.err.Error())
	}

	return title + "\n" + m.table.View() + "\n" + footer + "\n"
}
