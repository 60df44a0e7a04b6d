// Package pipeline derives balances, category breakdowns and chart data
// from ledger snapshots. Every function is pure and recomputes from scratch.
package pipeline

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/moneymirror/internal/catalog"
	"github.com/theirongolddev/moneymirror/internal/model"
	"github.com/theirongolddev/moneymirror/internal/period"
)

var hundred = decimal.NewFromInt(100)

// TotalByKind sums the amounts of all transactions of the given kind.
func TotalByKind(txs []model.Transaction, kind model.Kind) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.Kind == kind {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// Balance is total income minus total expense.
func Balance(txs []model.Transaction) decimal.Decimal {
	return TotalByKind(txs, model.Income).Sub(TotalByKind(txs, model.Expense))
}

// SubscriptionMonthlyTotal sums all subscription amounts.
func SubscriptionMonthlyTotal(subs []model.Subscription) decimal.Decimal {
	total := decimal.Zero
	for _, s := range subs {
		total = total.Add(s.Amount)
	}
	return total
}

// CategoryBreakdown totals transactions of kind per category. Catalog
// categories come first in catalog order; categories missing from the
// catalog follow in first-seen order, so the entries always sum to
// TotalByKind. Zero totals are omitted.
func CategoryBreakdown(txs []model.Transaction, kind model.Kind) []model.CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	var extra []string
	for _, tx := range txs {
		if tx.Kind != kind {
			continue
		}
		if _, seen := sums[tx.Category]; !seen && !catalog.Contains(kind, tx.Category) {
			extra = append(extra, tx.Category)
		}
		sums[tx.Category] = sums[tx.Category].Add(tx.Amount)
	}

	order := append(catalog.Names(kind), extra...)
	result := make([]model.CategoryTotal, 0, len(sums))
	for _, name := range order {
		total, ok := sums[name]
		if !ok || total.IsZero() {
			continue
		}
		result = append(result, model.CategoryTotal{Category: name, Total: total})
	}
	return result
}

// ChartSlices converts a breakdown into cumulative percentage ranges in
// breakdown order. A zero total yields no slices.
func ChartSlices(breakdown []model.CategoryTotal) []model.Slice {
	total := BreakdownTotal(breakdown)
	if !total.IsPositive() {
		return nil
	}

	slices := make([]model.Slice, 0, len(breakdown))
	cum := decimal.Zero
	for _, ct := range breakdown {
		start := cum.Mul(hundred).Div(total).InexactFloat64()
		cum = cum.Add(ct.Total)
		end := cum.Mul(hundred).Div(total).InexactFloat64()
		slices = append(slices, model.Slice{
			Category: ct.Category,
			Value:    ct.Total,
			StartPct: start,
			EndPct:   end,
			Color:    catalog.ColorOf(ct.Category),
		})
	}
	return slices
}

// GoalProgress returns saved/target as a percentage clamped to [0, 100].
func GoalProgress(g model.Goal) float64 {
	if !g.Target.IsPositive() {
		return 0
	}
	p := g.Saved.Mul(hundred).Div(g.Target).InexactFloat64()
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return p
}

// GoalProgressPercent is GoalProgress rounded half away from zero.
func GoalProgressPercent(g model.Goal) int {
	return int(decimal.NewFromFloat(GoalProgress(g)).Round(0).IntPart())
}

// GoalStats pairs each goal with its progress, preserving goal order.
func GoalStats(goals []model.Goal) []model.GoalStats {
	stats := make([]model.GoalStats, len(goals))
	for i, g := range goals {
		stats[i] = model.GoalStats{
			Goal:     g,
			Progress: GoalProgress(g),
			Percent:  GoalProgressPercent(g),
		}
	}
	return stats
}

// TopCategoryInsight picks the largest entry of a breakdown. Ties go to the
// entry that appears first. ok is false when the breakdown sums to zero.
func TopCategoryInsight(breakdown []model.CategoryTotal) (model.Insight, bool) {
	total := BreakdownTotal(breakdown)
	if !total.IsPositive() {
		return model.Insight{}, false
	}

	best := breakdown[0]
	for _, ct := range breakdown[1:] {
		if ct.Total.GreaterThan(best.Total) {
			best = ct
		}
	}

	pct := best.Total.Mul(hundred).Div(total).Round(0).IntPart()
	return model.Insight{Category: best.Category, Total: best.Total, Percent: int(pct)}, true
}

// BreakdownTotal sums a breakdown.
func BreakdownTotal(breakdown []model.CategoryTotal) decimal.Decimal {
	total := decimal.Zero
	for _, ct := range breakdown {
		total = total.Add(ct.Total)
	}
	return total
}

// FilterByDay returns transactions dated on dayKey (YYYY-MM-DD).
func FilterByDay(txs []model.Transaction, dayKey string) []model.Transaction {
	var result []model.Transaction
	for _, tx := range txs {
		if tx.OccurredOn == dayKey {
			result = append(result, tx)
		}
	}
	return result
}

// FilterByTime returns transactions whose day falls within [since, until).
func FilterByTime(txs []model.Transaction, since, until time.Time) []model.Transaction {
	if since.IsZero() && until.IsZero() {
		return txs
	}

	var result []model.Transaction
	for _, tx := range txs {
		d := tx.Day()
		if d.IsZero() {
			continue
		}
		if !since.IsZero() && d.Before(since) {
			continue
		}
		if !until.IsZero() && !d.Before(until) {
			continue
		}
		result = append(result, tx)
	}
	return result
}

// FilterByWeek returns transactions in the Sunday-start week containing t.
func FilterByWeek(txs []model.Transaction, t time.Time) []model.Transaction {
	start := period.WeekStart(t)
	return FilterByTime(txs, start, start.AddDate(0, 0, 7))
}

// WeekdayExpenses returns expense totals per day of the week containing now,
// indexed Sunday (0) through Saturday (6).
func WeekdayExpenses(txs []model.Transaction, now time.Time) []decimal.Decimal {
	totals := make([]decimal.Decimal, 7)
	for i := range totals {
		totals[i] = decimal.Zero
	}
	for _, tx := range FilterByWeek(txs, now) {
		if tx.Kind != model.Expense {
			continue
		}
		wd := int(tx.Day().Weekday())
		totals[wd] = totals[wd].Add(tx.Amount)
	}
	return totals
}

// WeekExpenseTotals sums week-window records dated today and all records.
func WeekExpenseTotals(records []model.WeekExpense, now time.Time) (today, week decimal.Decimal) {
	day := period.DayKey(now)
	today, week = decimal.Zero, decimal.Zero
	for _, r := range records {
		week = week.Add(r.Amount)
		if r.Date == day {
			today = today.Add(r.Amount)
		}
	}
	return today, week
}

// WeekExpensesAsTransactions lifts week-window records into expense
// transactions so the breakdown and chart functions apply to them.
func WeekExpensesAsTransactions(records []model.WeekExpense) []model.Transaction {
	txs := make([]model.Transaction, len(records))
	for i, r := range records {
		txs[i] = model.Transaction{
			Amount:     r.Amount,
			Kind:       model.Expense,
			Category:   r.Category,
			Note:       r.Category,
			OccurredOn: r.Date,
		}
	}
	return txs
}

// Summarize computes the headline figures for a snapshot as of now.
func Summarize(snap model.Snapshot, now time.Time) model.Summary {
	txs := snap.Transactions
	s := model.Summary{
		Income:            TotalByKind(txs, model.Income),
		Expense:           TotalByKind(txs, model.Expense),
		SubscriptionTotal: SubscriptionMonthlyTotal(snap.Subscriptions),
		TodayExpense:      TotalByKind(FilterByDay(txs, period.DayKey(now)), model.Expense),
		WeekExpense:       TotalByKind(FilterByWeek(txs, now), model.Expense),
		Transactions:      len(txs),
		Goals:             len(snap.Goals),
		Subscriptions:     len(snap.Subscriptions),
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s
}
