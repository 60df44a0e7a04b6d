package pipeline

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/moneymirror/internal/catalog"
	"github.com/theirongolddev/moneymirror/internal/model"
)

// syntheticSnapshot builds n transactions spread over the last 90 days.
func syntheticSnapshot(n int, now time.Time) model.Snapshot {
	expense := catalog.Names(model.Expense)
	income := catalog.Names(model.Income)

	txs := make([]model.Transaction, n)
	for i := range txs {
		kind, cats := model.Expense, expense
		if i%5 == 0 {
			kind, cats = model.Income, income
		}
		txs[i] = model.Transaction{
			ID:         fmt.Sprintf("tx-%d", i),
			Amount:     decimal.NewFromInt(int64(10 + i%500)),
			Kind:       kind,
			Category:   cats[i%len(cats)],
			OccurredOn: now.AddDate(0, 0, -(i % 90)).Format(model.DayLayout),
		}
	}
	return model.Snapshot{
		Transactions:  txs,
		Subscriptions: []model.Subscription{{Name: "Netflix", Amount: decimal.NewFromInt(649)}},
	}
}

func BenchmarkSummarize(b *testing.B) {
	now := time.Now()
	snap := syntheticSnapshot(10000, now)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Summarize(snap, now)
	}
}

func BenchmarkCategoryBreakdown(b *testing.B) {
	snap := syntheticSnapshot(10000, time.Now())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ChartSlices(CategoryBreakdown(snap.Transactions, model.Expense))
	}
}
