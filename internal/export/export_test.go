package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/moneymirror/internal/cli"
	"github.com/theirongolddev/moneymirror/internal/model"
	"github.com/theirongolddev/moneymirror/internal/pipeline"
)

func sampleTxs() []model.Transaction {
	return []model.Transaction{
		{ID: "2", Amount: decimal.RequireFromString("250.5"), Kind: model.Expense, Category: "Food", Note: "dinner, late", OccurredOn: "2026-03-18"},
		{ID: "1", Amount: decimal.NewFromInt(1000), Kind: model.Income, Category: "Salary", Note: "Salary", OccurredOn: "2026-03-01"},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleTxs()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	want := "Date,Category,Type,Note,Amount\n" +
		"2026-03-18,Food,expense,\"dinner, late\",250.5\n" +
		"2026-03-01,Salary,income,Salary,1000\n"
	if got := buf.String(); got != want {
		t.Errorf("WriteCSV() =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	if got := buf.String(); got != "Date,Category,Type,Note,Amount\n" {
		t.Errorf("WriteCSV(nil) = %q, want header only", got)
	}
}

func TestWriteBreakdownMarkdown(t *testing.T) {
	cli.SetCurrency("INR", 0)
	t.Cleanup(func() { cli.SetCurrency("INR", 2) })

	txs := []model.Transaction{
		{Amount: decimal.NewFromInt(75), Kind: model.Expense, Category: "Food", OccurredOn: "2026-03-18"},
		{Amount: decimal.NewFromInt(25), Kind: model.Expense, Category: "Travel", OccurredOn: "2026-03-18"},
	}
	b := pipeline.CategoryBreakdown(txs, model.Expense)

	var buf bytes.Buffer
	WriteBreakdownMarkdown(&buf, b, pipeline.ChartSlices(b))
	out := buf.String()

	for _, want := range []string{"Category", "Food", "₹75", "75%", "Travel", "25%", "|"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "+--") {
		t.Errorf("markdown should not contain ASCII box borders:\n%s", out)
	}
}

func TestWriteChartPNG(t *testing.T) {
	b := pipeline.CategoryBreakdown(sampleTxs(), model.Expense)
	var buf bytes.Buffer
	if err := WriteChartPNG(&buf, pipeline.ChartSlices(b)); err != nil {
		t.Fatalf("WriteChartPNG() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is not a PNG")
	}
}

func TestWriteChartPNG_NoData(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteChartPNG(&buf, nil); !errors.Is(err, ErrNoData) {
		t.Errorf("WriteChartPNG(nil) error = %v, want ErrNoData", err)
	}
}
