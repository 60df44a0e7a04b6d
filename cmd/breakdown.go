package cmd

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/moneymirror/internal/catalog"
	"github.com/theirongolddev/moneymirror/internal/cli"
	"github.com/theirongolddev/moneymirror/internal/model"
	"github.com/theirongolddev/moneymirror/internal/period"
	"github.com/theirongolddev/moneymirror/internal/pipeline"
)

var (
	flagBreakdownIncome bool
	flagBreakdownToday  bool
	flagBreakdownWeek   bool
	flagBreakdownCSS    bool
)

var breakdownCmd = &cobra.Command{
	Use:   "breakdown",
	Short: "Spending (or income) by category",
	RunE:  runBreakdown,
}

func init() {
	breakdownCmd.Flags().BoolVar(&flagBreakdownIncome, "income", false, "Break down income instead of expenses")
	breakdownCmd.Flags().BoolVar(&flagBreakdownToday, "today", false, "Only today's entries")
	breakdownCmd.Flags().BoolVar(&flagBreakdownWeek, "week", false, "Only this week's entries")
	breakdownCmd.Flags().BoolVar(&flagBreakdownCSS, "css", false, "Also print the chart as a CSS conic-gradient")
	rootCmd.AddCommand(breakdownCmd)
}

func runBreakdown(_ *cobra.Command, _ []string) error {
	l, w, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	now := time.Now()
	kind := kindFromFlag(flagBreakdownIncome)

	txs := l.Transactions()
	scope := "all time"
	switch {
	case flagBreakdownToday:
		txs = pipeline.FilterByDay(txs, period.DayKey(now))
		scope = "today"
	case flagBreakdownWeek && w != nil && kind == model.Expense:
		txs = pipeline.WeekExpensesAsTransactions(w.Records())
		scope = "week log"
	case flagBreakdownWeek:
		txs = pipeline.FilterByWeek(txs, now)
		scope = "this week"
	}

	breakdown := pipeline.CategoryBreakdown(txs, kind)
	slices := pipeline.ChartSlices(breakdown)

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("%s BY CATEGORY  %s", cli.FormatKind(kind), scope)))
	fmt.Println()

	if len(breakdown) == 0 {
		fmt.Println("  No data yet.")
		return nil
	}

	total := pipeline.BreakdownTotal(breakdown)
	maxTotal := breakdown[0].Total.InexactFloat64()
	for _, ct := range breakdown {
		maxTotal = math.Max(maxTotal, ct.Total.InexactFloat64())
	}

	rows := make([][]string, 0, len(breakdown)+2)
	for i, ct := range breakdown {
		share := 0.0
		if i < len(slices) {
			share = slices[i].Share()
		}
		rows = append(rows, []string{
			catalog.IconOf(ct.Category) + " " + ct.Category,
			cli.FormatCurrency(ct.Total),
			cli.FormatPercent(int(math.Round(share))),
		})
	}
	rows = append(rows, []string{"---"}, []string{"Total", cli.FormatCurrency(total), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Amount", "Share"},
		Rows:    rows,
	}))
	fmt.Println()

	for _, ct := range breakdown {
		fmt.Printf("  %-10s %s\n", ct.Category,
			cli.RenderHorizontalBar(ct.Total.InexactFloat64(), maxTotal, 40, catalog.ColorOf(ct.Category)))
	}
	fmt.Println()
	fmt.Printf("  %s\n", cli.RenderDonutBar(slices, 50))

	if flagBreakdownCSS {
		fmt.Println()
		fmt.Printf("  background: %s;\n", cli.ConicGradient(slices))
	}
	fmt.Println()
	return nil
}
