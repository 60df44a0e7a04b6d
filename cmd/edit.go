package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/moneymirror/internal/cli"
	"github.com/theirongolddev/moneymirror/internal/ledger"
)

var (
	flagEditAmount   string
	flagEditCategory string
	flagEditNote     string
	flagEditIncome   bool
	flagEditExpense  bool
)

var editCmd = &cobra.Command{
	Use:   "edit ID",
	Short: "Change a transaction's amount, type, category or note",
	Long:  "Change a transaction in place. Its id and date are kept; unset flags keep their current values.",
	Args:  cobra.ExactArgs(1),
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&flagEditAmount, "amount", "a", "", "New amount")
	editCmd.Flags().StringVarP(&flagEditCategory, "category", "c", "", "New category")
	editCmd.Flags().StringVar(&flagEditNote, "note", "", "New note")
	editCmd.Flags().BoolVar(&flagEditIncome, "income", false, "Mark as income")
	editCmd.Flags().BoolVar(&flagEditExpense, "expense", false, "Mark as expense")
	editCmd.MarkFlagsMutuallyExclusive("income", "expense")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	l, _, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	id, err := resolveID(args[0], transactionIDs(l))
	if err != nil {
		return err
	}

	tx, err := l.BeginEdit(id)
	if err != nil {
		return err
	}

	d := ledger.Draft{
		Amount:   tx.Amount.String(),
		Kind:     tx.Kind,
		Category: tx.Category,
		Note:     tx.Note,
	}
	changed := false
	if cmd.Flags().Changed("amount") {
		d.Amount, changed = flagEditAmount, true
	}
	if cmd.Flags().Changed("category") {
		d.Category, changed = flagEditCategory, true
	}
	if cmd.Flags().Changed("note") {
		d.Note, changed = flagEditNote, true
	}
	if flagEditIncome || flagEditExpense {
		d.Kind, changed = kindFromFlag(flagEditIncome), true
	}
	if !changed {
		l.CancelEdit()
		return errors.New("nothing to change (use --amount, --category, --note, --income or --expense)")
	}

	updated, err := l.SaveEdit(d)
	if err != nil {
		l.CancelEdit()
		return err
	}

	warnUncatalogued(updated.Kind, updated.Category)
	fmt.Printf("  Updated %s  %s  %s\n",
		cli.RenderMuted(shortID(updated.ID)), updated.Note,
		cli.RenderMoney(updated.Amount, updated.Kind))
	return nil
}
