package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/moneymirror/internal/cli"
)

var rmCmd = &cobra.Command{
	Use:   "rm ID...",
	Short: "Delete transactions",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(_ *cobra.Command, args []string) error {
	l, _, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	for _, ref := range args {
		id, err := resolveID(ref, transactionIDs(l))
		if err != nil {
			return err
		}
		tx, _ := l.Transaction(id)
		if err := l.DeleteTransaction(id); err != nil {
			return err
		}
		fmt.Printf("  Deleted %s  %s  %s\n",
			cli.RenderMuted(shortID(id)), tx.Note, cli.RenderMoney(tx.Amount, tx.Kind))
	}
	return nil
}
