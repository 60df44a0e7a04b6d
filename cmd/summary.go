package cmd

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/moneymirror/internal/catalog"
	"github.com/theirongolddev/moneymirror/internal/cli"
	"github.com/theirongolddev/moneymirror/internal/model"
	"github.com/theirongolddev/moneymirror/internal/period"
	"github.com/theirongolddev/moneymirror/internal/pipeline"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Balance, totals and today's top category",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	l, w, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	now := time.Now()
	snap := l.Snapshot()
	s := pipeline.Summarize(snap, now)

	dayTxs := snap.Transactions
	weekLabel := "This week"
	if w != nil {
		s.TodayExpense = w.TodayTotal(now)
		s.WeekExpense = w.WeekTotal()
		dayTxs = pipeline.WeekExpensesAsTransactions(w.Records())
		weekLabel = "Week log"
	}

	title := "MONEYMIRROR"
	if name := l.DisplayName(); name != "" {
		title += "  " + name
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	if s.Transactions == 0 && s.Goals == 0 && s.Subscriptions == 0 && w == nil {
		fmt.Println("  Nothing recorded yet.")
		fmt.Println("  Add your first entry with `moneymirror add 250 --category Food`.")
		fmt.Println()
		return nil
	}

	rows := [][]string{
		{"Balance", cli.FormatCurrency(s.Balance)},
		{"Income", cli.FormatCurrency(s.Income)},
		{"Expense", cli.FormatCurrency(s.Expense)},
		{"---"},
		{"Spent today", cli.FormatCurrency(s.TodayExpense)},
		{weekLabel, cli.FormatCurrency(s.WeekExpense)},
		{"---"},
		{"Subscriptions", cli.FormatCurrency(s.SubscriptionTotal) + "/mo"},
		{"Goals", cli.FormatNumber(int64(s.Goals))},
		{"Transactions", cli.FormatNumber(int64(s.Transactions))},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	today := pipeline.FilterByDay(dayTxs, period.DayKey(now))
	if in, ok := pipeline.TopCategoryInsight(pipeline.CategoryBreakdown(today, model.Expense)); ok {
		fmt.Printf("\n  Most of today's spend went to %s %s: %s (%s)\n",
			catalog.IconOf(in.Category), in.Category,
			cli.FormatPercent(in.Percent), cli.FormatCurrency(in.Total))
	}

	goals := pipeline.GoalStats(snap.Goals)
	if len(goals) > 0 {
		fmt.Println()
		nameW := 0
		for _, gs := range goals {
			nameW = max(nameW, lipgloss.Width(gs.Goal.Name))
		}
		for _, gs := range goals {
			fmt.Printf("  %s  %s\n",
				padRight(gs.Goal.Name, nameW),
				cli.RenderProgressBar(gs.Progress, 20))
		}
	}

	fmt.Println()
	return nil
}
