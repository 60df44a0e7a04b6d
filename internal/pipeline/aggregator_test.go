package pipeline

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/moneymirror/internal/model"
)

var refNow = time.Date(2026, 3, 18, 12, 0, 0, 0, time.Local) // Wednesday

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func tx(amount string, kind model.Kind, category, day string) model.Transaction {
	return model.Transaction{Amount: d(amount), Kind: kind, Category: category, Note: category, OccurredOn: day}
}

func sumTotals(b []model.CategoryTotal) decimal.Decimal {
	s := decimal.Zero
	for _, ct := range b {
		s = s.Add(ct.Total)
	}
	return s
}

func TestSalaryAndFoodScenario(t *testing.T) {
	txs := []model.Transaction{
		tx("250", model.Expense, "Food", "2026-03-18"),
		tx("1000", model.Income, "Salary", "2026-03-18"),
	}

	if got := Balance(txs); !got.Equal(d("750")) {
		t.Errorf("Balance = %s, want 750", got)
	}

	b := CategoryBreakdown(txs, model.Expense)
	if len(b) != 1 || b[0].Category != "Food" || !b[0].Total.Equal(d("250")) {
		t.Fatalf("CategoryBreakdown = %+v, want [{Food 250}]", b)
	}

	s := ChartSlices(b)
	if len(s) != 1 {
		t.Fatalf("len(ChartSlices) = %d, want 1", len(s))
	}
	if s[0].StartPct != 0 || s[0].EndPct != 100 {
		t.Errorf("Food slice = %.1f-%.1f, want 0-100", s[0].StartPct, s[0].EndPct)
	}
	if s[0].Color != "#f43f5e" {
		t.Errorf("Food slice color = %q, want #f43f5e", s[0].Color)
	}
}

func TestCategoryBreakdown_OrderAndUncatalogued(t *testing.T) {
	txs := []model.Transaction{
		tx("30", model.Expense, "Health", "2026-03-18"),
		tx("10", model.Expense, "Crypto", "2026-03-18"),
		tx("20", model.Expense, "Food", "2026-03-18"),
		tx("5", model.Expense, "Pets", "2026-03-18"),
		tx("0", model.Expense, "Travel", "2026-03-18"),
		tx("15", model.Expense, "Crypto", "2026-03-18"),
		tx("99", model.Income, "Salary", "2026-03-18"),
	}

	b := CategoryBreakdown(txs, model.Expense)
	want := []struct {
		cat   string
		total string
	}{
		{"Food", "20"}, {"Health", "30"}, {"Crypto", "25"}, {"Pets", "5"},
	}
	if len(b) != len(want) {
		t.Fatalf("CategoryBreakdown = %+v, want %d entries", b, len(want))
	}
	for i, w := range want {
		if b[i].Category != w.cat || !b[i].Total.Equal(d(w.total)) {
			t.Errorf("entry %d = %s %s, want %s %s", i, b[i].Category, b[i].Total, w.cat, w.total)
		}
	}

	if got, want := sumTotals(b), TotalByKind(txs, model.Expense); !got.Equal(want) {
		t.Errorf("sum(breakdown) = %s, want TotalByKind = %s", got, want)
	}
}

func TestEmptyLedger(t *testing.T) {
	b := CategoryBreakdown(nil, model.Expense)
	if len(b) != 0 {
		t.Errorf("CategoryBreakdown(nil) = %+v, want empty", b)
	}
	if s := ChartSlices(b); len(s) != 0 {
		t.Errorf("ChartSlices(empty) = %+v, want none", s)
	}
	if got := TotalByKind(nil, model.Expense); !got.IsZero() {
		t.Errorf("TotalByKind(nil) = %s, want 0", got)
	}
	if _, ok := TopCategoryInsight(b); ok {
		t.Error("TopCategoryInsight(empty) ok = true, want false")
	}
}

func TestChartSlices_Cumulative(t *testing.T) {
	b := []model.CategoryTotal{
		{Category: "Food", Total: d("50")},
		{Category: "Travel", Total: d("30")},
		{Category: "Bills", Total: d("20")},
	}
	s := ChartSlices(b)
	wantBounds := [][2]float64{{0, 50}, {50, 80}, {80, 100}}
	for i, w := range wantBounds {
		if math.Abs(s[i].StartPct-w[0]) > 1e-9 || math.Abs(s[i].EndPct-w[1]) > 1e-9 {
			t.Errorf("slice %d = %.2f-%.2f, want %.0f-%.0f", i, s[i].StartPct, s[i].EndPct, w[0], w[1])
		}
		if i > 0 && s[i].StartPct != s[i-1].EndPct {
			t.Errorf("slice %d start %.2f != previous end %.2f", i, s[i].StartPct, s[i-1].EndPct)
		}
	}
	if got := s[1].Share(); math.Abs(got-30) > 1e-9 {
		t.Errorf("Travel share = %.2f, want 30", got)
	}
}

func TestGoalProgress(t *testing.T) {
	tests := []struct {
		target, saved string
		want          int
	}{
		{"5000", "0", 0},
		{"5000", "1500", 30},
		{"5000", "5500", 100},
		{"3", "1", 33},
		{"8", "1", 13}, // 12.5 rounds away from zero
		{"0", "10", 0},
	}
	for _, tt := range tests {
		g := model.Goal{Name: "Trip", Target: d(tt.target), Saved: d(tt.saved)}
		p := GoalProgress(g)
		if p < 0 || p > 100 {
			t.Errorf("GoalProgress(%s/%s) = %.2f, out of [0,100]", tt.saved, tt.target, p)
		}
		if got := GoalProgressPercent(g); got != tt.want {
			t.Errorf("GoalProgressPercent(%s/%s) = %d, want %d", tt.saved, tt.target, got, tt.want)
		}
	}
}

func TestGoalStatsPreservesOrder(t *testing.T) {
	goals := []model.Goal{
		{Name: "A", Target: d("10"), Saved: d("5")},
		{Name: "B", Target: d("10"), Saved: d("10")},
	}
	stats := GoalStats(goals)
	if len(stats) != 2 || stats[0].Goal.Name != "A" || stats[1].Percent != 100 {
		t.Errorf("GoalStats = %+v", stats)
	}
}

func TestTopCategoryInsight(t *testing.T) {
	b := []model.CategoryTotal{
		{Category: "Food", Total: d("30")},
		{Category: "Travel", Total: d("60")},
		{Category: "Bills", Total: d("10")},
	}
	in, ok := TopCategoryInsight(b)
	if !ok {
		t.Fatal("ok = false")
	}
	if in.Category != "Travel" || in.Percent != 60 {
		t.Errorf("insight = %s %d%%, want Travel 60%%", in.Category, in.Percent)
	}
}

func TestTopCategoryInsight_TieGoesToCatalogOrder(t *testing.T) {
	txs := []model.Transaction{
		tx("40", model.Expense, "Bills", "2026-03-18"),
		tx("40", model.Expense, "Travel", "2026-03-18"),
		tx("20", model.Expense, "Health", "2026-03-18"),
	}
	in, ok := TopCategoryInsight(CategoryBreakdown(txs, model.Expense))
	if !ok {
		t.Fatal("ok = false")
	}
	if in.Category != "Travel" {
		t.Errorf("tie winner = %s, want Travel (earlier in catalog)", in.Category)
	}
	if in.Percent != 40 {
		t.Errorf("Percent = %d, want 40", in.Percent)
	}
}

func TestFilters(t *testing.T) {
	txs := []model.Transaction{
		tx("10", model.Expense, "Food", "2026-03-18"),
		tx("20", model.Expense, "Food", "2026-03-15"), // Sunday, same week
		tx("40", model.Expense, "Food", "2026-03-14"), // Saturday, previous week
		tx("80", model.Expense, "Food", "2026-03-22"), // next Sunday
	}

	if got := FilterByDay(txs, "2026-03-18"); len(got) != 1 {
		t.Errorf("len(FilterByDay) = %d, want 1", len(got))
	}
	week := FilterByWeek(txs, refNow)
	if len(week) != 2 {
		t.Fatalf("len(FilterByWeek) = %d, want 2", len(week))
	}
	if got := TotalByKind(week, model.Expense); !got.Equal(d("30")) {
		t.Errorf("week total = %s, want 30", got)
	}
}

func TestWeekExpenseTotals(t *testing.T) {
	recs := []model.WeekExpense{
		{Amount: d("12.5"), Category: "Food", Date: "2026-03-18"},
		{Amount: d("7.5"), Category: "Travel", Date: "2026-03-18"},
		{Amount: d("30"), Category: "Bills", Date: "2026-03-16"},
	}
	today, week := WeekExpenseTotals(recs, refNow)
	if !today.Equal(d("20")) || !week.Equal(d("50")) {
		t.Errorf("WeekExpenseTotals = %s, %s; want 20, 50", today, week)
	}

	b := CategoryBreakdown(WeekExpensesAsTransactions(recs), model.Expense)
	if len(b) != 3 || b[0].Category != "Food" {
		t.Errorf("breakdown of week records = %+v", b)
	}
}

func TestSummarize(t *testing.T) {
	snap := model.Snapshot{
		Transactions: []model.Transaction{
			tx("1000", model.Income, "Salary", "2026-03-01"),
			tx("250", model.Expense, "Food", "2026-03-18"),
			tx("100", model.Expense, "Bills", "2026-03-16"),
			tx("50", model.Expense, "Travel", "2026-03-10"),
		},
		Goals:         []model.Goal{{Name: "Trip", Target: d("5000")}},
		Subscriptions: []model.Subscription{{Name: "Netflix", Amount: d("649")}, {Name: "Gym", Amount: d("1000")}},
	}

	s := Summarize(snap, refNow)
	checks := []struct {
		name      string
		got, want decimal.Decimal
	}{
		{"Income", s.Income, d("1000")},
		{"Expense", s.Expense, d("400")},
		{"Balance", s.Balance, d("600")},
		{"SubscriptionTotal", s.SubscriptionTotal, d("1649")},
		{"TodayExpense", s.TodayExpense, d("250")},
		{"WeekExpense", s.WeekExpense, d("350")},
	}
	for _, c := range checks {
		if !c.got.Equal(c.want) {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}
	if s.Transactions != 4 || s.Goals != 1 || s.Subscriptions != 2 {
		t.Errorf("counts = %d/%d/%d, want 4/1/2", s.Transactions, s.Goals, s.Subscriptions)
	}
}

func TestWeekdayExpenses(t *testing.T) {
	txs := []model.Transaction{
		tx("100", model.Expense, "Food", "2026-03-15"),  // Sunday
		tx("40", model.Expense, "Travel", "2026-03-18"), // Wednesday
		tx("60", model.Expense, "Food", "2026-03-18"),
		tx("900", model.Income, "Salary", "2026-03-18"),
		tx("75", model.Expense, "Bills", "2026-03-14"), // previous Saturday
	}

	got := WeekdayExpenses(txs, refNow)
	if len(got) != 7 {
		t.Fatalf("len = %d, want 7", len(got))
	}
	want := []string{"100", "0", "0", "100", "0", "0", "0"}
	for i, w := range want {
		if !got[i].Equal(d(w)) {
			t.Errorf("day %d = %s, want %s", i, got[i], w)
		}
	}
}
