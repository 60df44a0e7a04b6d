package cmd

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/moneymirror/internal/cli"
	"github.com/theirongolddev/moneymirror/internal/watch"
)

func TestFormatEvent(t *testing.T) {
	cli.SetCurrency("USD", 2)
	t.Cleanup(func() { cli.SetCurrency(cli.DefaultCurrency, 2) })

	at := time.Date(2026, 3, 18, 9, 30, 0, 0, time.Local)

	reset := formatEvent(watch.Event{
		Type:      watch.EventWeekReset,
		Timestamp: at,
		Snapshot:  watch.Snapshot{WeekKey: "2026-03-15"},
	})
	if !strings.Contains(reset, "09:30:00") || !strings.Contains(reset, "new week 2026-03-15") {
		t.Errorf("week reset line = %q", reset)
	}

	delta := formatEvent(watch.Event{
		Type:      watch.EventLedgerDelta,
		Timestamp: at,
		Snapshot:  watch.Snapshot{Balance: decimal.NewFromInt(750)},
		Delta:     watch.Delta{Balance: decimal.NewFromInt(-250), Transactions: 1},
	})
	for _, want := range []string{"$750.00", "-$250.00", "entries +1", "goals +0"} {
		if !strings.Contains(delta, want) {
			t.Errorf("delta line = %q, missing %q", delta, want)
		}
	}
}

func TestSignedDelta(t *testing.T) {
	cli.SetCurrency("USD", 2)
	t.Cleanup(func() { cli.SetCurrency(cli.DefaultCurrency, 2) })

	if got := signedDelta(decimal.NewFromInt(40)); got != "+$40.00" {
		t.Errorf("signedDelta(40) = %q, want %q", got, "+$40.00")
	}
	if got := signedDelta(decimal.NewFromInt(-40)); got != "-$40.00" {
		t.Errorf("signedDelta(-40) = %q, want %q", got, "-$40.00")
	}
}
