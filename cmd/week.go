package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/moneymirror/internal/catalog"
	"github.com/theirongolddev/moneymirror/internal/cli"
	"github.com/theirongolddev/moneymirror/internal/model"
	"github.com/theirongolddev/moneymirror/internal/period"
	"github.com/theirongolddev/moneymirror/internal/pipeline"
)

var flagWeekCategory string

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Week-scoped spending log (weekly mode)",
	RunE:  runWeekShow,
}

var weekAddCmd = &cobra.Command{
	Use:   "add AMOUNT",
	Short: "Log an expense for this week",
	Args:  cobra.ExactArgs(1),
	RunE:  runWeekAdd,
}

var weekShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show this week's log and daily totals",
	RunE:  runWeekShow,
}

func init() {
	weekAddCmd.Flags().StringVarP(&flagWeekCategory, "category", "c", "", "Category (default Other)")
	weekCmd.AddCommand(weekAddCmd, weekShowCmd)
	rootCmd.AddCommand(weekCmd)
}

func runWeekAdd(_ *cobra.Command, args []string) error {
	_, w, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()
	if err := requireWindow(w); err != nil {
		return err
	}

	rec, err := w.Add(args[0], flagWeekCategory, time.Now())
	if err != nil {
		return err
	}
	warnUncatalogued(model.Expense, rec.Category)
	fmt.Printf("  %s %s  %s  %s\n",
		catalog.IconOf(rec.Category), rec.Category,
		cli.RenderMoney(rec.Amount, model.Expense),
		cli.RenderMuted("week total "+cli.FormatCurrency(w.WeekTotal())))
	return nil
}

func runWeekShow(_ *cobra.Command, _ []string) error {
	_, w, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()
	if err := requireWindow(w); err != nil {
		return err
	}

	now := time.Now()
	records := w.Records()

	fmt.Println()
	fmt.Println(cli.RenderTitle("WEEK OF " + cli.FormatDay(w.Key())))
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("  Nothing logged this week.")
		fmt.Println()
		return nil
	}

	rows := make([][]string, 0, len(records)+3)
	for _, r := range records {
		rows = append(rows, []string{
			cli.FormatDay(r.Date),
			catalog.IconOf(r.Category) + " " + r.Category,
			cli.FormatCurrency(r.Amount),
		})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Today", "", cli.FormatCurrency(w.TodayTotal(now))},
		[]string{"Week", "", cli.FormatCurrency(w.WeekTotal())},
	)
	fmt.Print(cli.RenderTable(cli.Table{
		Headers:  []string{"Day", "Category", "Amount"},
		LeftCols: 2,
		Rows:     rows,
	}))

	daily := pipeline.WeekdayExpenses(pipeline.WeekExpensesAsTransactions(records), now)
	values := make([]float64, len(daily))
	for i, d := range daily {
		values[i] = d.InexactFloat64()
	}
	fmt.Println()
	fmt.Printf("  %s  %s\n", cli.RenderSparkline(values), cli.RenderMuted("Sun..Sat"))

	today := pipeline.FilterByDay(pipeline.WeekExpensesAsTransactions(records), period.DayKey(now))
	if in, ok := pipeline.TopCategoryInsight(pipeline.CategoryBreakdown(today, model.Expense)); ok {
		fmt.Printf("  Most of today's spend went to %s %s: %s\n",
			catalog.IconOf(in.Category), in.Category, cli.FormatPercent(in.Percent))
	}
	fmt.Println()
	return nil
}
