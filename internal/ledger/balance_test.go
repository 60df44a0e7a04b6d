package ledger_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/moneymirror/internal/ledger"
	"github.com/theirongolddev/moneymirror/internal/model"
	"github.com/theirongolddev/moneymirror/internal/pipeline"
	"github.com/theirongolddev/moneymirror/internal/store"
)

// directBalance sums income minus expense straight over the records.
func directBalance(txs []model.Transaction) decimal.Decimal {
	income, expense := decimal.Zero, decimal.Zero
	for _, tx := range txs {
		switch tx.Kind {
		case model.Income:
			income = income.Add(tx.Amount)
		case model.Expense:
			expense = expense.Add(tx.Amount)
		}
	}
	return income.Sub(expense)
}

func TestBalanceTracksMutations(t *testing.T) {
	l, err := ledger.Open(store.NewMemory())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	var salary, rent, coffee model.Transaction
	steps := []struct {
		name string
		do   func() error
		want string
	}{
		{"add salary", func() (err error) {
			salary, err = l.AddTransaction(ledger.Draft{Amount: "5000", Kind: model.Income, Category: "Salary"})
			return err
		}, "5000"},
		{"add rent", func() (err error) {
			rent, err = l.AddTransaction(ledger.Draft{Amount: "1200.50", Kind: model.Expense, Category: "Bills"})
			return err
		}, "3799.5"},
		{"add coffee", func() (err error) {
			coffee, err = l.AddTransaction(ledger.Draft{Amount: "3,25", Kind: model.Expense, Category: "Food"})
			return err
		}, "3796.25"},
		{"raise rent", func() error {
			_, err := l.UpdateTransaction(rent.ID, ledger.Draft{Amount: "1300", Kind: model.Expense, Category: "Bills"})
			return err
		}, "3696.75"},
		{"flip coffee to income", func() error {
			_, err := l.UpdateTransaction(coffee.ID, ledger.Draft{Amount: "3.25", Kind: model.Income, Category: "Other"})
			return err
		}, "3703.25"},
		{"flip salary to expense", func() error {
			_, err := l.UpdateTransaction(salary.ID, ledger.Draft{Amount: "5000", Kind: model.Expense, Category: "Salary"})
			return err
		}, "-6296.75"},
		{"delete rent", func() error { return l.DeleteTransaction(rent.ID) }, "-4996.75"},
		{"edit session flips salary back", func() error {
			if _, err := l.BeginEdit(salary.ID); err != nil {
				return err
			}
			_, err := l.SaveEdit(ledger.Draft{Amount: "5000", Kind: model.Income, Category: "Salary"})
			return err
		}, "5003.25"},
		{"delete coffee", func() error { return l.DeleteTransaction(coffee.ID) }, "5000"},
		{"delete salary", func() error { return l.DeleteTransaction(salary.ID) }, "0"},
	}

	for _, step := range steps {
		if err := step.do(); err != nil {
			t.Fatalf("%s: error = %v", step.name, err)
		}
		txs := l.Transactions()
		got := pipeline.Balance(txs)
		if want := directBalance(txs); !got.Equal(want) {
			t.Errorf("%s: Balance = %s, direct sum = %s", step.name, got, want)
		}
		if !got.Equal(decimal.RequireFromString(step.want)) {
			t.Errorf("%s: Balance = %s, want %s", step.name, got, step.want)
		}
		if inc, exp := pipeline.TotalByKind(txs, model.Income), pipeline.TotalByKind(txs, model.Expense); !inc.Sub(exp).Equal(got) {
			t.Errorf("%s: income %s - expense %s != Balance %s", step.name, inc, exp, got)
		}

		l.Load()
		if reloaded := pipeline.Balance(l.Transactions()); !reloaded.Equal(got) {
			t.Errorf("%s: Balance after reload = %s, want %s", step.name, reloaded, got)
		}
	}
}
