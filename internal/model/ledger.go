// Package model defines the record and aggregate types shared across moneymirror.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayLayout is the canonical day-key format used for OccurredOn and week keys.
const DayLayout = "2006-01-02"

// Kind is the income/expense polarity of a transaction.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	return k == Income || k == Expense
}

// Transaction is one recorded income or expense entry.
type Transaction struct {
	ID         string          `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	Kind       Kind            `json:"type"`
	Category   string          `json:"category"`
	Note       string          `json:"note"`
	OccurredOn string          `json:"date"` // day key, DayLayout
}

// Day parses OccurredOn in the local time zone. Unparseable keys yield the zero time.
func (t Transaction) Day() time.Time {
	d, err := time.ParseInLocation(DayLayout, t.OccurredOn, time.Local)
	if err != nil {
		return time.Time{}
	}
	return d
}

// Goal is a savings target funded by deposits.
type Goal struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Target decimal.Decimal `json:"target"`
	Saved  decimal.Decimal `json:"saved"`
}

// Subscription is a recurring monthly cost.
type Subscription struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// WeekExpense is the simplified record kept by the week-scoped variant.
type WeekExpense struct {
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date"` // day key, DayLayout
}

// Snapshot is a by-value copy of the ledger collections handed to aggregators.
type Snapshot struct {
	Transactions  []Transaction
	Goals         []Goal
	Subscriptions []Subscription
}
