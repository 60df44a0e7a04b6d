package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/moneymirror/internal/config"
	"github.com/theirongolddev/moneymirror/internal/export"
	"github.com/theirongolddev/moneymirror/internal/period"
	"github.com/theirongolddev/moneymirror/internal/pipeline"
)

var (
	flagExportFormat string
	flagExportOut    string
	flagExportIncome bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export transactions as CSV, or the breakdown as markdown or PNG",
	Example: `  moneymirror export > ledger.csv
  moneymirror export --format md
  moneymirror export --format png -o spend.png`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "csv", "Output format: csv, md, png")
	exportCmd.Flags().StringVarP(&flagExportOut, "output", "o", "", "Output file (default stdout; png defaults to the data dir)")
	exportCmd.Flags().BoolVar(&flagExportIncome, "income", false, "Chart income instead of expenses (md, png)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, _ []string) error {
	l, _, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	txs := l.Transactions()
	breakdown := pipeline.CategoryBreakdown(txs, kindFromFlag(flagExportIncome))
	slices := pipeline.ChartSlices(breakdown)

	var buf bytes.Buffer
	out := flagExportOut
	switch flagExportFormat {
	case "csv":
		if err := export.WriteCSV(&buf, txs); err != nil {
			return err
		}
	case "md", "markdown":
		export.WriteBreakdownMarkdown(&buf, breakdown, slices)
	case "png":
		if err := export.WriteChartPNG(&buf, slices); err != nil {
			return err
		}
		if out == "" {
			out = filepath.Join(config.DataDir(), "moneymirror-"+period.DayKey(time.Now())+".png")
		}
	default:
		return fmt.Errorf("unknown format %q (want csv, md or png)", flagExportFormat)
	}

	if out == "" || out == "-" {
		_, err := io.Copy(os.Stdout, &buf)
		return err
	}
	if err := writeFile(out, buf.Bytes()); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Wrote %s\n", out)
	}
	return nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
