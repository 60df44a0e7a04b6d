package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/moneymirror/internal/catalog"
	"github.com/theirongolddev/moneymirror/internal/cli"
	"github.com/theirongolddev/moneymirror/internal/model"
	"github.com/theirongolddev/moneymirror/internal/tui/components"
	"github.com/theirongolddev/moneymirror/internal/tui/theme"
)

const (
	tabDashboard = iota
	tabPlan
	tabStats
)

// dashboardState tracks the recent-activity selection.
type dashboardState struct {
	cursor int
}

func (s *dashboardState) clamp(n int) {
	if s.cursor >= n {
		s.cursor = n - 1
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

func (a App) selectedTransaction() (model.Transaction, bool) {
	if len(a.fig.txs) == 0 {
		return model.Transaction{}, false
	}
	return a.fig.txs[a.dash.cursor], true
}

func (a App) updateDashboardKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "j", "down":
		if a.dash.cursor < len(a.fig.txs)-1 {
			a.dash.cursor++
		}
	case "k", "up":
		if a.dash.cursor > 0 {
			a.dash.cursor--
		}
	case "home":
		a.dash.cursor = 0
	case "end":
		a.dash.cursor = max(len(a.fig.txs)-1, 0)
	case "a":
		return a.openDialog(newEntryDialog(nil))
	case "w":
		if a.window == nil {
			a.setFlash("Weekly mode is off (enable it in setup)", true)
			return a, nil
		}
		return a.openDialog(newWeekExpenseDialog())
	case "e", "enter":
		tx, ok := a.selectedTransaction()
		if !ok {
			return a, nil
		}
		if _, err := a.ledger.BeginEdit(tx.ID); err != nil {
			a.report("", err)
			return a, nil
		}
		a.recompute()
		return a.openDialog(newEntryDialog(&tx))
	case "x", "delete":
		tx, ok := a.selectedTransaction()
		if !ok {
			return a, nil
		}
		err := a.ledger.DeleteTransaction(tx.ID)
		a.report("Deleted "+tx.Note, err)
		a.recompute()
	}
	return a, nil
}

func (a App) renderDashboardTab(cw, contentH int) string {
	t := theme.Active
	s := a.fig.summary

	balanceColor := t.Income
	if s.Balance.IsNegative() {
		balanceColor = t.Expense
	}

	weekLabel := "This week"
	if a.window != nil {
		weekLabel = "Week log"
	}

	metrics := []components.Metric{
		{Label: "Balance", Value: cli.FormatCurrency(s.Balance), Color: balanceColor,
			Delta: fmt.Sprintf("%d entries", s.Transactions)},
		{Label: "Income", Value: cli.FormatCurrency(s.Income), Color: t.Income},
		{Label: "Expense", Value: cli.FormatCurrency(s.Expense), Color: t.Expense},
		{Label: weekLabel, Value: cli.FormatCurrency(s.WeekExpense),
			Delta: "today " + cli.FormatCurrency(s.TodayExpense)},
	}
	cards := components.MetricCardRow(metrics, cw)

	listH := max(contentH-lipgloss.Height(cards)-3, 3)

	var body string
	if a.isCompactLayout() {
		body = lipgloss.JoinVertical(lipgloss.Left,
			components.ContentCard("Recent activity", a.renderActivity(components.CardInnerWidth(cw), listH-4), cw, true),
			components.ContentCard("Today", a.renderInsight(), cw),
		)
	} else {
		widths := components.LayoutRow(cw, 3)
		leftW := widths[0] + widths[1]
		rightW := widths[2]
		right := components.ContentCard("Today", a.renderInsight(), rightW)
		if a.window != nil {
			right = lipgloss.JoinVertical(lipgloss.Left, right,
				components.ContentCard("Week log", a.renderWeekLog(components.CardInnerWidth(rightW)), rightW))
		}
		body = components.CardRow([]string{
			components.ContentCard("Recent activity", a.renderActivity(components.CardInnerWidth(leftW), listH), leftW, true),
			right,
		})
	}

	return cards + "\n" + body
}

// renderActivity lists transactions newest first, scrolled so the cursor
// stays on the last visible row once it passes the fold.
func (a App) renderActivity(innerW, rows int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(a.fig.txs) == 0 {
		return muted.Render("No transactions yet. Press a to add one.")
	}

	rows = max(rows, 1)
	offset := max(a.dash.cursor-rows+1, 0)
	end := min(offset+rows, len(a.fig.txs))

	amountW := 14
	metaW := 18
	noteW := max(innerW-amountW-metaW-6, 8)

	var lines []string
	for i := offset; i < end; i++ {
		tx := a.fig.txs[i]
		selected := i == a.dash.cursor

		bg := t.Surface
		if selected {
			bg = t.SurfaceHover
		}
		base := lipgloss.NewStyle().Background(bg)
		noteStyle := base.Foreground(t.TextPrimary)
		metaStyle := base.Foreground(t.TextMuted)
		amountColor := t.Expense
		if tx.Kind == model.Income {
			amountColor = t.Income
		}
		amountStyle := base.Foreground(amountColor).Bold(true)

		marker := " "
		if tx.ID == a.fig.editing {
			marker = "✎"
		}

		icon := lipgloss.NewStyle().Foreground(lipgloss.Color(catalog.ColorOf(tx.Category))).
			Background(bg).Render(catalog.IconOf(tx.Category))
		meta := fmt.Sprintf("%s · %s", tx.Category, cli.FormatDay(tx.OccurredOn))

		line := base.Render(marker+" ") + icon + base.Render(" ") +
			noteStyle.Render(fmt.Sprintf("%-*s", noteW, truncStr(tx.Note, noteW))) +
			metaStyle.Render(fmt.Sprintf(" %-*s", metaW, truncStr(meta, metaW))) +
			amountStyle.Render(fmt.Sprintf("%*s", amountW, cli.FormatSignedCurrency(tx.Amount, tx.Kind)))
		lines = append(lines, lipgloss.PlaceHorizontal(innerW, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg)))
	}

	hint := muted.Render(fmt.Sprintf("%d of %d · a add · e edit · x delete", a.dash.cursor+1, len(a.fig.txs)))
	return strings.Join(lines, "\n") + "\n" + hint
}

func (a App) renderInsight() string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	strong := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)

	var b strings.Builder
	b.WriteString(muted.Render("Spent today  "))
	b.WriteString(strong.Render(cli.FormatCurrency(a.fig.summary.TodayExpense)))
	b.WriteString("\n\n")

	if !a.fig.hasInsight {
		b.WriteString(muted.Render("Nothing spent today."))
		return b.String()
	}

	in := a.fig.insight
	color := lipgloss.NewStyle().Foreground(lipgloss.Color(catalog.ColorOf(in.Category))).
		Background(t.Surface).Bold(true)
	b.WriteString(muted.Render("Most went to "))
	b.WriteString(color.Render(catalog.IconOf(in.Category) + " " + in.Category))
	b.WriteString("\n")
	b.WriteString(strong.Render(cli.FormatPercent(in.Percent)))
	b.WriteString(muted.Render(" of today's spend, " + cli.FormatCurrency(in.Total)))
	return b.String()
}

func (a App) renderWeekLog(innerW int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	if len(a.fig.weekLog) == 0 {
		return muted.Render("Empty. Press w to log spend.")
	}

	value := lipgloss.NewStyle().Foreground(t.Expense).Background(t.Surface)
	limit := min(len(a.fig.weekLog), 6)
	lines := make([]string, 0, limit)
	for _, r := range a.fig.weekLog[:limit] {
		left := fmt.Sprintf("%s %s %s", catalog.IconOf(r.Category), r.Category, cli.FormatDay(r.Date))
		amt := cli.FormatCurrency(r.Amount)
		pad := max(innerW-lipgloss.Width(left)-lipgloss.Width(amt), 1)
		lines = append(lines, muted.Render(left+strings.Repeat(" ", pad))+value.Render(amt))
	}
	return strings.Join(lines, "\n")
}
