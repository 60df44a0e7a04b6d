package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/moneymirror/internal/cli"
	"github.com/theirongolddev/moneymirror/internal/model"
	"github.com/theirongolddev/moneymirror/internal/watch"
)

var (
	flagWatchInterval     time.Duration
	flagWatchEventsBuffer int
	flagWatchJSON         bool
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow ledger changes made by other sessions",
	Long:  "Poll the ledger database and print an event whenever the totals change or a new week starts.",
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&flagWatchInterval, "interval", 0, "Polling interval (default from config)")
	watchCmd.Flags().IntVar(&flagWatchEventsBuffer, "events-buffer", 200, "Max in-memory events kept")
	watchCmd.Flags().BoolVar(&flagWatchJSON, "json", false, "Print events as JSON lines")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(_ *cobra.Command, _ []string) error {
	kv, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = kv.Close() }()

	interval := flagWatchInterval
	if interval <= 0 {
		interval = time.Duration(appCfg.Watch.IntervalSec) * time.Second
	}

	svc := watch.New(watch.Config{
		Interval:     interval,
		EventsBuffer: flagWatchEventsBuffer,
		WeeklyMode:   appCfg.General.WeeklyMode,
	}, kv, appLog.Named("watch"))

	events, unsubscribe := svc.Subscribe(16)
	defer unsubscribe()

	if !flagQuiet && !flagWatchJSON {
		fmt.Fprintf(os.Stderr, "  Watching %s every %s\n", dbPath(), interval)
		fmt.Fprintf(os.Stderr, "  Stop with Ctrl+C\n")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- svc.Run(ctx) }()

	enc := json.NewEncoder(os.Stdout)
	for ev := range events {
		if flagWatchJSON {
			if err := enc.Encode(ev); err != nil {
				appLog.Warn("encoding event", zap.Error(err))
			}
			continue
		}
		fmt.Println(formatEvent(ev))
	}

	if err := <-done; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if !flagQuiet && !flagWatchJSON {
		st := svc.Status()
		fmt.Fprintf(os.Stderr, "\n  %d polls, %d events\n", st.PollCount, st.EventCount)
	}
	return nil
}

func formatEvent(ev watch.Event) string {
	ts := ev.Timestamp.Format("15:04:05")
	s := ev.Snapshot
	switch ev.Type {
	case watch.EventWeekReset:
		return fmt.Sprintf("  %s  new week %s", ts, s.WeekKey)
	case watch.EventLedgerDelta:
		d := ev.Delta
		return fmt.Sprintf("  %s  balance %s (%s)  entries %+d  goals %+d  subs %+d",
			ts, cli.FormatCurrency(s.Balance), signedDelta(d.Balance),
			d.Transactions, d.Goals, d.Subscriptions)
	default:
		return fmt.Sprintf("  %s  balance %s  income %s  expense %s  %d entries",
			ts, cli.FormatCurrency(s.Balance), cli.FormatCurrency(s.Income),
			cli.FormatCurrency(s.Expense), s.Transactions)
	}
}

func signedDelta(d decimal.Decimal) string {
	if d.IsNegative() {
		return cli.FormatSignedCurrency(d.Abs(), model.Expense)
	}
	return cli.FormatSignedCurrency(d, model.Income)
}
