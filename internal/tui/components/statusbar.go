package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/moneymirror/internal/tui/theme"
)

// Status is the content of the bottom status bar.
type Status struct {
	Name    string // display name, shown as a greeting
	Flash   string // last action result
	IsError bool
	DataAge string // time since the last reload
	Weekly  bool
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, s Status) string {
	t := theme.Active

	base := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	flashStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	if s.IsError {
		flashStyle = flashStyle.Foreground(t.Expense)
	}

	left := base.Render(" [?]help  [q]uit")
	if s.Flash != "" {
		left += base.Render("  ") + flashStyle.Render(s.Flash)
	}

	var rightParts []string
	if s.Weekly {
		rightParts = append(rightParts, "weekly")
	}
	if s.Name != "" {
		rightParts = append(rightParts, "Hi, "+s.Name)
	}
	if s.DataAge != "" {
		rightParts = append(rightParts, "Data: "+s.DataAge)
	}
	right := base.Render(strings.Join(rightParts, " · ") + " ")

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return left + base.Render(strings.Repeat(" ", padding)) + right
}
