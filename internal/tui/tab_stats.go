package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/moneymirror/internal/catalog"
	"github.com/theirongolddev/moneymirror/internal/cli"
	"github.com/theirongolddev/moneymirror/internal/model"
	"github.com/theirongolddev/moneymirror/internal/pipeline"
	"github.com/theirongolddev/moneymirror/internal/tui/components"
	"github.com/theirongolddev/moneymirror/internal/tui/theme"
)

func (a App) renderStatsTab(cw int) string {
	t := theme.Active

	spendW, weekW := cw, cw
	if !a.isCompactLayout() {
		widths := components.LayoutRow(cw, 2)
		spendW, weekW = widths[0], widths[1]
	}

	spend := components.ContentCard("Where the money went", renderBreakdown(a.fig.expense, a.fig.slices, components.CardInnerWidth(spendW)), spendW)

	weekTitle := "This week"
	if a.window != nil {
		weekTitle = "Week log"
	}
	labels := make([]string, len(a.fig.weekdays))
	for i := range labels {
		labels[i] = cli.FormatDayOfWeek(i)
	}
	chart := components.BarChart(a.fig.weekdays, labels, t.Expense, components.CardInnerWidth(weekW), 8)
	week := components.ContentCard(weekTitle, chart, weekW)

	incomeSlices := pipeline.ChartSlices(a.fig.income)
	income := components.ContentCard("Income sources", renderBreakdown(a.fig.income, incomeSlices, components.CardInnerWidth(weekW)), weekW)

	if a.isCompactLayout() {
		return lipgloss.JoinVertical(lipgloss.Left, spend, week, income)
	}
	return components.CardRow([]string{spend, lipgloss.JoinVertical(lipgloss.Left, week, income)})
}

// renderBreakdown draws the donut band, its legend, and one bar per category.
func renderBreakdown(breakdown []model.CategoryTotal, slices []model.Slice, innerW int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var b strings.Builder
	b.WriteString(components.DonutBar(slices, innerW))
	b.WriteString("\n")
	if len(slices) == 0 {
		b.WriteString(muted.Render("No data yet."))
		return b.String()
	}
	b.WriteString(components.Legend(slices, innerW))
	b.WriteString("\n\n")

	labelW := 14
	amountW := 14
	barW := max(innerW-labelW-amountW-2, 8)
	for i, ct := range breakdown {
		if i >= len(slices) {
			break
		}
		label := catalog.IconOf(ct.Category) + " " + ct.Category
		share := slices[i].Share() / 100
		b.WriteString(components.ShareBar(label, catalog.ColorOf(ct.Category), share,
			cli.FormatCurrency(ct.Total), labelW, barW))
		b.WriteString("\n")
	}

	total := cli.FormatCurrency(pipeline.BreakdownTotal(breakdown))
	b.WriteString(muted.Render("Total ") + lipgloss.NewStyle().Foreground(t.TextPrimary).
		Background(t.Surface).Bold(true).Render(total))
	return b.String()
}
