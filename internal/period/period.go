// Package period derives day and week keys and keeps the week-scoped
// expense window that resets when a new week starts.
package period

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/theirongolddev/moneymirror/internal/ledger"
	"github.com/theirongolddev/moneymirror/internal/model"
	"github.com/theirongolddev/moneymirror/internal/store"
)

// Storage keys for the weekly window.
const (
	KeyWeek         = "moneymirror-week"
	KeyWeekExpenses = "moneymirror-week-expenses"
)

// DayKey returns t's local calendar date as YYYY-MM-DD.
func DayKey(t time.Time) string {
	return t.Local().Format(model.DayLayout)
}

// WeekStart returns local midnight of the Sunday that begins t's week.
func WeekStart(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day()-int(t.Weekday()), 0, 0, 0, 0, time.Local)
}

// WeekKey returns the DayKey of the Sunday beginning t's week.
func WeekKey(t time.Time) string {
	return DayKey(WeekStart(t))
}

// State reports whether the stored window matched the current week.
type State int

const (
	Fresh State = iota
	Stale
)

func (s State) String() string {
	if s == Stale {
		return "stale"
	}
	return "fresh"
}

// Window is the week-scoped list of expenses. Records belong to the week
// named by Key; a key mismatch discards them.
type Window struct {
	kv  store.KV
	log *zap.Logger

	key     string
	records []model.WeekExpense
}

// NewWindow returns an unloaded window over kv.
func NewWindow(kv store.KV, log *zap.Logger) *Window {
	if log == nil {
		log = zap.NewNop()
	}
	return &Window{kv: kv, log: log}
}

// Load reads the stored week. When the stored key is not now's week the
// records are cleared and the new key is persisted at once.
func (w *Window) Load(now time.Time) (State, []model.WeekExpense, error) {
	w.key = w.readKey()
	w.records = nil

	current := WeekKey(now)
	if w.key != current {
		w.log.Info("week rolled over", zap.String("stored", w.key), zap.String("current", current))
		if err := w.reset(current); err != nil {
			return Stale, nil, err
		}
		return Stale, w.Records(), nil
	}

	if raw, ok, err := w.kv.Get(KeyWeekExpenses); err != nil {
		w.log.Warn("reading week expenses", zap.Error(err))
	} else if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &w.records); err != nil {
			w.log.Warn("discarding malformed week expenses", zap.Error(err))
			w.records = nil
		}
	}
	return Fresh, w.Records(), nil
}

func (w *Window) readKey() string {
	raw, ok, err := w.kv.Get(KeyWeek)
	if err != nil {
		w.log.Warn("reading week key", zap.Error(err))
		return ""
	}
	if !ok {
		return ""
	}
	var key string
	if err := json.Unmarshal([]byte(raw), &key); err != nil {
		return strings.TrimSpace(raw)
	}
	return key
}

func (w *Window) reset(key string) error {
	keyJSON, _ := json.Marshal(key)
	err := w.kv.SetMany(map[string]string{
		KeyWeek:         string(keyJSON),
		KeyWeekExpenses: "[]",
	})
	if err != nil {
		return fmt.Errorf("resetting week: %w", err)
	}
	w.key = key
	w.records = nil
	return nil
}

// Key returns the week key the records belong to.
func (w *Window) Key() string { return w.key }

// Records returns a copy of the current week's expenses, newest first.
func (w *Window) Records() []model.WeekExpense {
	return append([]model.WeekExpense(nil), w.records...)
}

// Add records an expense dated now. If now falls in a later week than the
// window, the window rolls over first.
func (w *Window) Add(amount, category string, now time.Time) (model.WeekExpense, error) {
	d, err := ledger.ParseAmount(amount)
	if err != nil {
		return model.WeekExpense{}, err
	}
	category = strings.TrimSpace(category)
	if category == "" {
		category = "Other"
	}

	if WeekKey(now) != w.key {
		if err := w.reset(WeekKey(now)); err != nil {
			return model.WeekExpense{}, err
		}
	}

	rec := model.WeekExpense{Amount: d, Category: category, Date: DayKey(now)}
	prev := w.records
	next := make([]model.WeekExpense, 0, len(prev)+1)
	next = append(next, rec)
	next = append(next, prev...)

	data, err := json.Marshal(next)
	if err != nil {
		return model.WeekExpense{}, fmt.Errorf("encoding week expenses: %w", err)
	}
	if err := w.kv.Set(KeyWeekExpenses, string(data)); err != nil {
		return model.WeekExpense{}, fmt.Errorf("persisting week expenses: %w", err)
	}
	w.records = next
	return rec, nil
}

// TodayTotal sums the records dated on now's day.
func (w *Window) TodayTotal(now time.Time) decimal.Decimal {
	day := DayKey(now)
	total := decimal.Zero
	for _, r := range w.records {
		if r.Date == day {
			total = total.Add(r.Amount)
		}
	}
	return total
}

// WeekTotal sums every record in the window.
func (w *Window) WeekTotal() decimal.Decimal {
	total := decimal.Zero
	for _, r := range w.records {
		total = total.Add(r.Amount)
	}
	return total
}
