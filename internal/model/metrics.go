package model

import "github.com/shopspring/decimal"

// Summary holds the top-level aggregate across the ledger.
type Summary struct {
	Income            decimal.Decimal
	Expense           decimal.Decimal
	Balance           decimal.Decimal
	SubscriptionTotal decimal.Decimal

	TodayExpense decimal.Decimal
	WeekExpense  decimal.Decimal

	Transactions  int
	Goals         int
	Subscriptions int
}

// CategoryTotal is one breakdown entry: the summed amount for a category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// Slice is a breakdown entry expressed as a cumulative percentage range
// for radial chart rendering. StartPct and EndPct are in [0, 100].
type Slice struct {
	Category string
	Value    decimal.Decimal
	StartPct float64
	EndPct   float64
	Color    string
}

// Share returns the slice width in percent.
func (s Slice) Share() float64 {
	return s.EndPct - s.StartPct
}

// Insight describes the category with the largest share of a period's spend.
type Insight struct {
	Category string
	Total    decimal.Decimal
	Percent  int // rounded share of the period total
}

// GoalStats pairs a goal with its display progress.
type GoalStats struct {
	Goal     Goal
	Progress float64 // clamped to [0, 100]
	Percent  int     // Progress rounded to a whole percent
}
