package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/moneymirror/internal/cli"
	"github.com/theirongolddev/moneymirror/internal/model"
	"github.com/theirongolddev/moneymirror/internal/period"
	"github.com/theirongolddev/moneymirror/internal/pipeline"
)

var (
	flagListLimit    int
	flagListKind     string
	flagListCategory string
	flagListToday    bool
	flagListWeek     bool
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List transactions, newest first",
	RunE:    runList,
}

func init() {
	listCmd.Flags().IntVarP(&flagListLimit, "limit", "n", 20, "Max rows to show (0 for all)")
	listCmd.Flags().StringVar(&flagListKind, "kind", "", "Only income or expense")
	listCmd.Flags().StringVarP(&flagListCategory, "category", "c", "", "Only this category")
	listCmd.Flags().BoolVar(&flagListToday, "today", false, "Only today's entries")
	listCmd.Flags().BoolVar(&flagListWeek, "week", false, "Only this week's entries")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	l, _, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	kind := model.Kind(flagListKind)
	if kind != "" && !kind.Valid() {
		return fmt.Errorf("unknown kind %q (want income or expense)", flagListKind)
	}

	now := time.Now()
	txs := l.Transactions()
	if len(txs) == 0 {
		fmt.Println("\n  No transactions yet.")
		return nil
	}

	switch {
	case flagListToday:
		txs = pipeline.FilterByDay(txs, period.DayKey(now))
	case flagListWeek:
		txs = pipeline.FilterByWeek(txs, now)
	}

	rows := make([][]string, 0, len(txs))
	for _, tx := range txs {
		if kind != "" && tx.Kind != kind {
			continue
		}
		if flagListCategory != "" && tx.Category != flagListCategory {
			continue
		}
		if flagListLimit > 0 && len(rows) >= flagListLimit {
			break
		}
		rows = append(rows, []string{
			shortID(tx.ID),
			tx.OccurredOn,
			tx.Category,
			tx.Note,
			cli.FormatSignedCurrency(tx.Amount, tx.Kind),
		})
	}

	if len(rows) == 0 {
		fmt.Println("\n  No matching transactions.")
		return nil
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:    fmt.Sprintf("Transactions (%d of %d)", len(rows), len(l.Transactions())),
		Headers:  []string{"ID", "Date", "Category", "Note", "Amount"},
		LeftCols: 4,
		Rows:     rows,
	}))
	return nil
}
