package tui

import (
	"time"

	"github.com/theirongolddev/moneymirror/internal/ledger"
	"github.com/theirongolddev/moneymirror/internal/model"
	"github.com/theirongolddev/moneymirror/internal/period"
	"github.com/theirongolddev/moneymirror/internal/pipeline"
)

// figures is everything the tabs render, recomputed from the ledger after
// each mutation or reload.
type figures struct {
	summary model.Summary
	txs     []model.Transaction
	goals   []model.GoalStats
	subs    []model.Subscription

	expense []model.CategoryTotal
	income  []model.CategoryTotal
	slices  []model.Slice

	insight    model.Insight
	hasInsight bool

	weekdays []float64 // expense per day of the current week, Sun..Sat
	weekLog  []model.WeekExpense
	editing  string
}

func computeFigures(l *ledger.Ledger, w *period.Window, now time.Time) figures {
	snap := l.Snapshot()

	f := figures{
		summary: pipeline.Summarize(snap, now),
		txs:     snap.Transactions,
		goals:   pipeline.GoalStats(snap.Goals),
		subs:    snap.Subscriptions,
		expense: pipeline.CategoryBreakdown(snap.Transactions, model.Expense),
		income:  pipeline.CategoryBreakdown(snap.Transactions, model.Income),
	}
	f.slices = pipeline.ChartSlices(f.expense)
	f.editing, _ = l.EditingID()

	// The weekly log, when on, replaces the ledger as the source of the
	// day and week figures.
	dayTxs := snap.Transactions
	if w != nil {
		f.weekLog = w.Records()
		f.summary.TodayExpense = w.TodayTotal(now)
		f.summary.WeekExpense = w.WeekTotal()
		dayTxs = pipeline.WeekExpensesAsTransactions(f.weekLog)
	}

	today := pipeline.FilterByDay(dayTxs, period.DayKey(now))
	f.insight, f.hasInsight = pipeline.TopCategoryInsight(pipeline.CategoryBreakdown(today, model.Expense))

	for _, d := range pipeline.WeekdayExpenses(dayTxs, now) {
		f.weekdays = append(f.weekdays, d.InexactFloat64())
	}
	return f
}
