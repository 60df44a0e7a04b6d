package watch

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/moneymirror/internal/ledger"
	"github.com/theirongolddev/moneymirror/internal/model"
	"github.com/theirongolddev/moneymirror/internal/period"
	"github.com/theirongolddev/moneymirror/internal/store"
)

func TestDiffSnapshots(t *testing.T) {
	prev := Snapshot{
		Income:       decimal.NewFromInt(1000),
		Expense:      decimal.NewFromInt(250),
		Balance:      decimal.NewFromInt(750),
		Transactions: 2,
	}
	curr := Snapshot{
		Income:       decimal.NewFromInt(1000),
		Expense:      decimal.NewFromInt(400),
		Balance:      decimal.NewFromInt(600),
		Transactions: 3,
		Goals:        1,
	}

	delta := diffSnapshots(prev, curr)
	if !delta.Expense.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("Expense delta = %s, want 150", delta.Expense)
	}
	if !delta.Balance.Equal(decimal.NewFromInt(-150)) {
		t.Fatalf("Balance delta = %s, want -150", delta.Balance)
	}
	if delta.Transactions != 1 || delta.Goals != 1 {
		t.Fatalf("count deltas = %d/%d, want 1/1", delta.Transactions, delta.Goals)
	}
	if delta.isZero() {
		t.Fatal("delta unexpectedly reported as zero")
	}
	if !diffSnapshots(curr, curr).isZero() {
		t.Fatal("identical snapshots produced a non-zero delta")
	}
}

func TestPublishEventRingBuffer(t *testing.T) {
	s := New(Config{Interval: 10 * time.Second, EventsBuffer: 2}, store.NewMemory(), nil)

	s.publishEvent(Event{ID: 1})
	s.publishEvent(Event{ID: 2})
	s.publishEvent(Event{ID: 3})

	events := s.Events()
	if len(events) != 2 {
		t.Fatalf("events len = %d, want 2", len(events))
	}
	if events[0].ID != 2 || events[1].ID != 3 {
		t.Fatalf("events ring contains IDs [%d, %d], want [2, 3]", events[0].ID, events[1].ID)
	}
}

func TestPollEmitsSnapshotThenDelta(t *testing.T) {
	kv := store.NewMemory()
	now := time.Date(2026, 3, 18, 9, 0, 0, 0, time.Local)
	s := New(Config{Now: func() time.Time { return now }}, kv, nil)

	ch, cancel := s.Subscribe(4)
	defer cancel()

	s.pollOnce()
	ev := <-ch
	if ev.Type != EventSnapshot {
		t.Fatalf("first event = %q, want %q", ev.Type, EventSnapshot)
	}

	// No change: no event.
	s.pollOnce()
	select {
	case ev := <-ch:
		t.Fatalf("unexpected event %q on unchanged ledger", ev.Type)
	default:
	}

	l, _ := ledger.Open(kv, ledger.WithClock(func() time.Time { return now }))
	_, _ = l.AddTransaction(ledger.Draft{Amount: "250", Kind: model.Expense, Category: "Food"})

	s.pollOnce()
	ev = <-ch
	if ev.Type != EventLedgerDelta {
		t.Fatalf("event = %q, want %q", ev.Type, EventLedgerDelta)
	}
	if !ev.Delta.Expense.Equal(decimal.NewFromInt(250)) {
		t.Errorf("Expense delta = %s, want 250", ev.Delta.Expense)
	}
	if !ev.Snapshot.TodayExpense.Equal(decimal.NewFromInt(250)) {
		t.Errorf("TodayExpense = %s, want 250", ev.Snapshot.TodayExpense)
	}

	st := s.Status()
	if st.PollCount != 3 || st.LastError != "" {
		t.Errorf("Status = %+v", st)
	}
}

func TestPollWeeklyRollover(t *testing.T) {
	kv := store.NewMemory()
	now := time.Date(2026, 3, 18, 9, 0, 0, 0, time.Local)
	s := New(Config{WeeklyMode: true, Now: func() time.Time { return now }}, kv, nil)

	s.pollOnce()

	w := period.NewWindow(kv, nil)
	_, _, _ = w.Load(now)
	_, _ = w.Add("90", "Food", now)

	now = now.AddDate(0, 0, 7)
	ch, cancel := s.Subscribe(4)
	defer cancel()
	s.pollOnce()

	ev := <-ch
	if ev.Type != EventWeekReset {
		t.Fatalf("event = %q, want %q", ev.Type, EventWeekReset)
	}
	if ev.Snapshot.WeekKey != "2026-03-22" {
		t.Errorf("WeekKey = %q, want 2026-03-22", ev.Snapshot.WeekKey)
	}
	if !ev.Snapshot.WeekExpense.IsZero() {
		t.Errorf("WeekExpense = %s, want 0 after reset", ev.Snapshot.WeekExpense)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s := New(Config{Interval: time.Hour}, store.NewMemory(), nil)
	ch, _ := s.Subscribe(4)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	if ev := <-ch; ev.Type != EventSnapshot {
		t.Fatalf("first event = %q, want snapshot", ev.Type)
	}
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	if _, ok := <-ch; ok {
		t.Error("subscriber channel not closed after Run returned")
	}
}

// countingKV counts reads per key.
type countingKV struct {
	*store.Memory
	gets map[string]int
}

func (c *countingKV) Get(key string) (string, bool, error) {
	c.gets[key]++
	return c.Memory.Get(key)
}

func TestPollReadsLedgerOnce(t *testing.T) {
	kv := &countingKV{Memory: store.NewMemory(), gets: map[string]int{}}
	now := time.Date(2026, 3, 18, 9, 0, 0, 0, time.Local)
	l, _ := ledger.Open(kv, ledger.WithClock(func() time.Time { return now }))
	_, _ = l.AddTransaction(ledger.Draft{Amount: "40", Kind: model.Expense, Category: "Food"})

	s := New(Config{WeeklyMode: true, Now: func() time.Time { return now }}, kv, nil)
	for poll := 1; poll <= 2; poll++ {
		clear(kv.gets)
		s.pollOnce()
		for _, key := range []string{ledger.KeyTransactions, ledger.KeyGoals, ledger.KeySubscriptions, ledger.KeyName} {
			if n := kv.gets[key]; n != 1 {
				t.Errorf("poll %d: Get(%q) called %d times, want 1", poll, key, n)
			}
		}
	}
	if got := s.Status(); !got.Summary.Expense.Equal(decimal.NewFromInt(40)) {
		t.Errorf("Summary.Expense = %s, want 40", got.Summary.Expense)
	}
}
