package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Dicklesworthstone/sam/internal/tui/theme"
)

// StyledTable renders terminal tables with rounded box-drawing borders.
type StyledTable struct {
	headers []string
	rows    [][]string
	widths  []int
	title   string
	footer  string
}

// NewStyledTable creates a new styled table with headers.
func NewStyledTable(headers ...string) *StyledTable {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = cellWidth(h)
	}
	return &StyledTable{
		headers: headers,
		rows:    [][]string{},
		widths:  widths,
	}
}

// WithTitle adds a title line above the table.
func (t *StyledTable) WithTitle(title string) *StyledTable {
	t.title = title
	return t
}

// WithFooter adds a footer line below the table.
func (t *StyledTable) WithFooter(footer string) *StyledTable {
	t.footer = footer
	return t
}

// AddRow adds a row to the table.
func (t *StyledTable) AddRow(cols ...string) {
	for i, c := range cols {
		if i < len(t.widths) {
			if w := cellWidth(c); w > t.widths[i] {
				t.widths[i] = w
			}
		}
	}
	t.rows = append(t.rows, cols)
}

// RowCount returns the number of rows.
func (t *StyledTable) RowCount() int {
	return len(t.rows)
}

// Render returns the table as a styled string.
func (t *StyledTable) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	th := theme.Current()
	borderColor := lipgloss.NewStyle().Foreground(th.Surface)
	headerColor := lipgloss.NewStyle().Foreground(th.Primary).Bold(true)
	textColor := lipgloss.NewStyle().Foreground(th.Text)
	subtextColor := lipgloss.NewStyle().Foreground(th.Subtext)

	var sb strings.Builder

	buildHLine := func(left, mid, right string) string {
		var line strings.Builder
		line.WriteString(left)
		for i, w := range t.widths {
			line.WriteString(strings.Repeat("─", w+2))
			if i < len(t.widths)-1 {
				line.WriteString(mid)
			}
		}
		line.WriteString(right)
		return borderColor.Render(line.String())
	}

	if t.title != "" {
		sb.WriteString(headerColor.Render(t.title))
		sb.WriteString("\n")
	}

	sb.WriteString(buildHLine("╭", "┬", "╮"))
	sb.WriteString("\n")

	sb.WriteString(borderColor.Render("│"))
	for i, h := range t.headers {
		sb.WriteString(" ")
		sb.WriteString(headerColor.Render(padRight(h, t.widths[i])))
		sb.WriteString(" ")
		sb.WriteString(borderColor.Render("│"))
	}
	sb.WriteString("\n")

	sb.WriteString(buildHLine("├", "┼", "┤"))
	sb.WriteString("\n")

	for _, row := range t.rows {
		sb.WriteString(borderColor.Render("│"))
		for i := range t.headers {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			sb.WriteString(" ")
			sb.WriteString(textColor.Render(padRight(cell, t.widths[i])))
			sb.WriteString(" ")
			sb.WriteString(borderColor.Render("│"))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(buildHLine("╰", "┴", "╯"))
	sb.WriteString("\n")

	if t.footer != "" {
		sb.WriteString(subtextColor.Render(t.footer))
		sb.WriteString("\n")
	}

	return sb.String()
}

// String implements fmt.Stringer.
func (t *StyledTable) String() string {
	return t.Render()
}

// cellWidth returns the display width of a string, accounting for wide
// characters and ignoring ANSI escape codes.
func cellWidth(s string) int {
	return runewidth.StringWidth(stripANSI(s))
}

// padRight pads a string to the specified display width.
func padRight(s string, width int) string {
	current := cellWidth(s)
	if current >= width {
		return s
	}
	return s + strings.Repeat(" ", width-current)
}

// Truncate shortens a string to at most width display cells, appending an
// ellipsis when anything was cut.
func Truncate(s string, width int) string {
	if cellWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// stripANSI removes ANSI escape codes from a string.
func stripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}

// SectionHeader renders a styled section header.
func SectionHeader(title string) string {
	th := theme.Current()
	style := lipgloss.NewStyle().Foreground(th.Primary).Bold(true)
	return style.Render("┌─ " + title + " ─")
}

// KeyValue renders a key-value pair with consistent styling.
func KeyValue(key, value string, keyWidth int) string {
	th := theme.Current()
	keyStyle := lipgloss.NewStyle().Foreground(th.Subtext)
	valueStyle := lipgloss.NewStyle().Foreground(th.Text)

	paddedKey := fmt.Sprintf("%-*s", keyWidth, key+":")
	return keyStyle.Render(paddedKey) + " " + valueStyle.Render(value)
}

// SubtleText renders subtle/muted text.
func SubtleText(text string) string {
	th := theme.Current()
	return lipgloss.NewStyle().Foreground(th.Subtext).Render(text)
}
