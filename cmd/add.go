package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/moneymirror/internal/catalog"
	"github.com/theirongolddev/moneymirror/internal/cli"
	"github.com/theirongolddev/moneymirror/internal/ledger"
	"github.com/theirongolddev/moneymirror/internal/model"
)

var (
	flagAddCategory string
	flagAddIncome   bool
)

var addCmd = &cobra.Command{
	Use:   "add AMOUNT [NOTE...]",
	Short: "Record an expense (or income with --income)",
	Example: `  moneymirror add 250 -c Food lunch
  moneymirror add 1000 --income -c Salary`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Category (default Other)")
	addCmd.Flags().BoolVar(&flagAddIncome, "income", false, "Record as income")
	rootCmd.AddCommand(addCmd)
}

func kindFromFlag(income bool) model.Kind {
	if income {
		return model.Income
	}
	return model.Expense
}

func runAdd(_ *cobra.Command, args []string) error {
	l, _, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	kind := kindFromFlag(flagAddIncome)
	tx, err := l.AddTransaction(ledger.Draft{
		Amount:   args[0],
		Kind:     kind,
		Category: flagAddCategory,
		Note:     strings.Join(args[1:], " "),
	})
	if err != nil {
		return err
	}

	warnUncatalogued(kind, tx.Category)
	fmt.Printf("  %s %s  %s  %s\n",
		catalog.IconOf(tx.Category), tx.Note,
		cli.RenderMoney(tx.Amount, tx.Kind),
		cli.RenderMuted(shortID(tx.ID)))
	return nil
}

// warnUncatalogued notes categories outside the catalog; they are still stored.
func warnUncatalogued(kind model.Kind, category string) {
	if flagQuiet || catalog.Contains(kind, category) {
		return
	}
	fmt.Printf("  %s\n", cli.RenderMuted(fmt.Sprintf(
		"%q is not a %s category (%s)", category, kind, strings.Join(catalog.Names(kind), ", "))))
}
