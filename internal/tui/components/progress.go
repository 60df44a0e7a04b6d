package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/theirongolddev/moneymirror/internal/tui/theme"
)

// ColorForGoal returns the bar color for a goal at pct (0..1) funded.
func ColorForGoal(pct float64) string {
	t := theme.Active
	switch {
	case pct >= 1:
		return string(t.GoalReached)
	case pct >= 0.5:
		return string(t.Income)
	case pct >= 0.2:
		return string(t.Accent)
	default:
		return string(t.Warn)
	}
}

func clamp01(pct float64) float64 {
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}

// GoalBar renders a labeled goal progress bar with its whole percent and a
// trailing detail such as "₹1,500 / ₹5,000".
func GoalBar(label string, pct float64, percent int, detail string, labelW, barWidth int) string {
	t := theme.Active
	pct = clamp01(pct)
	color := ColorForGoal(pct)

	bar := progress.New(
		progress.WithSolidFill(color),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Background(t.Surface).Bold(true)
	detailStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(padRight(truncate(label, labelW), labelW)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(pct) +
		spaceStyle.Render(" ") +
		pctStyle.Render(fmt.Sprintf("%3d%%", percent)) +
		spaceStyle.Render("  ") +
		detailStyle.Render(detail)
}

// ShareBar renders one category row of a breakdown: icon and name, a bar in
// the category color sized by share (0..1), and the formatted amount.
func ShareBar(label, color string, share float64, amount string, labelW, barWidth int) string {
	t := theme.Active

	bar := progress.New(
		progress.WithSolidFill(color),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.SurfaceHover)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	amountStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	return labelStyle.Render(padRight(truncate(label, labelW), labelW)) +
		spaceStyle.Render(" ") +
		bar.ViewAs(clamp01(share)) +
		spaceStyle.Render(" ") +
		amountStyle.Render(amount)
}

// padRight pads s with spaces to w display columns.
func padRight(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	return ansi.Truncate(s, limit, "…")
}
