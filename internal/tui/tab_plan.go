package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/moneymirror/internal/cli"
	"github.com/theirongolddev/moneymirror/internal/tui/components"
	"github.com/theirongolddev/moneymirror/internal/tui/theme"
)

const (
	planGoals = iota
	planSubscriptions
)

// planState tracks which Plan list has focus and its selection.
type planState struct {
	section int
	goalIdx int
	subIdx  int
}

func (s *planState) clamp(goals, subs int) {
	s.goalIdx = max(min(s.goalIdx, goals-1), 0)
	s.subIdx = max(min(s.subIdx, subs-1), 0)
}

func (a App) updatePlanKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "tab", "shift+tab":
		a.plan.section = 1 - a.plan.section
	case "j", "down":
		if a.plan.section == planGoals && a.plan.goalIdx < len(a.fig.goals)-1 {
			a.plan.goalIdx++
		}
		if a.plan.section == planSubscriptions && a.plan.subIdx < len(a.fig.subs)-1 {
			a.plan.subIdx++
		}
	case "k", "up":
		if a.plan.section == planGoals && a.plan.goalIdx > 0 {
			a.plan.goalIdx--
		}
		if a.plan.section == planSubscriptions && a.plan.subIdx > 0 {
			a.plan.subIdx--
		}
	case "g":
		return a.openDialog(newGoalDialog())
	case "n":
		return a.openDialog(newSubscriptionDialog())
	case "+", "enter":
		if a.plan.section == planGoals && len(a.fig.goals) > 0 {
			return a.openDialog(newDepositDialog(a.fig.goals[a.plan.goalIdx].Goal))
		}
	case "x", "delete":
		switch {
		case a.plan.section == planGoals && len(a.fig.goals) > 0:
			g := a.fig.goals[a.plan.goalIdx].Goal
			a.report("Deleted goal "+g.Name, a.ledger.DeleteGoal(g.ID))
		case a.plan.section == planSubscriptions && len(a.fig.subs) > 0:
			s := a.fig.subs[a.plan.subIdx]
			a.report("Stopped tracking "+s.Name, a.ledger.DeleteSubscription(s.ID))
		}
		a.recompute()
	}
	return a, nil
}

func (a App) renderPlanTab(cw int) string {
	if a.isCompactLayout() {
		return lipgloss.JoinVertical(lipgloss.Left,
			a.renderGoalsCard(cw),
			a.renderSubscriptionsCard(cw),
		)
	}
	widths := components.LayoutRow(cw, 5)
	leftW := widths[0] + widths[1] + widths[2]
	rightW := widths[3] + widths[4]
	return components.CardRow([]string{
		a.renderGoalsCard(leftW),
		a.renderSubscriptionsCard(rightW),
	})
}

func (a App) renderGoalsCard(w int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(w)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	focused := a.plan.section == planGoals

	if len(a.fig.goals) == 0 {
		return components.ContentCard("Savings goals",
			muted.Render("No goals yet. Press g to create one."), w, focused)
	}

	labelW := 14
	detailW := 24
	barW := max(innerW-labelW-detailW-8, 10)

	var lines []string
	for i, gs := range a.fig.goals {
		detail := fmt.Sprintf("%s / %s", cli.FormatCurrency(gs.Goal.Saved), cli.FormatCurrency(gs.Goal.Target))
		row := components.GoalBar(gs.Goal.Name, gs.Progress/100, gs.Percent, detail, labelW, barW)
		prefix := "  "
		if focused && i == a.plan.goalIdx {
			prefix = "▸ "
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Render(prefix)+row)
	}
	lines = append(lines, "", muted.Render("g new · + deposit · x delete"))

	return components.ContentCard("Savings goals", strings.Join(lines, "\n"), w, focused)
}

func (a App) renderSubscriptionsCard(w int) string {
	t := theme.Active
	innerW := components.CardInnerWidth(w)
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	name := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	amount := lipgloss.NewStyle().Foreground(t.Expense).Background(t.Surface)
	strong := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface).Bold(true)
	focused := a.plan.section == planSubscriptions

	if len(a.fig.subs) == 0 {
		return components.ContentCard("Subscriptions",
			muted.Render("Nothing recurring. Press n to add one."), w, focused)
	}

	var lines []string
	for i, s := range a.fig.subs {
		prefix := "  "
		if focused && i == a.plan.subIdx {
			prefix = "▸ "
		}
		amt := cli.FormatCurrency(s.Amount) + "/mo"
		label := prefix + truncStr(s.Name, innerW-lipgloss.Width(amt)-4)
		pad := max(innerW-lipgloss.Width(label)-lipgloss.Width(amt), 1)
		lines = append(lines, name.Render(label+strings.Repeat(" ", pad))+amount.Render(amt))
	}

	total := cli.FormatCurrency(a.fig.summary.SubscriptionTotal)
	lines = append(lines,
		"",
		muted.Render("Monthly total  ")+strong.Render(total),
		muted.Render("n new · x delete · tab switch"),
	)
	return components.ContentCard("Subscriptions", strings.Join(lines, "\n"), w, focused)
}
