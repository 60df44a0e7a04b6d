// Package export writes ledger data to files: transactions as CSV, the
// category breakdown as a markdown table and a PNG pie chart.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/theirongolddev/moneymirror/internal/model"
)

// CSVHeader is the first row written by WriteCSV.
var CSVHeader = []string{"Date", "Category", "Type", "Note", "Amount"}

// WriteCSV writes one row per transaction, in the order given.
func WriteCSV(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, tx := range txs {
		row := []string{tx.OccurredOn, tx.Category, string(tx.Kind), tx.Note, tx.Amount.String()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row %s: %w", tx.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
