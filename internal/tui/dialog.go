package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/moneymirror/internal/catalog"
	"github.com/theirongolddev/moneymirror/internal/cli"
	"github.com/theirongolddev/moneymirror/internal/ledger"
	"github.com/theirongolddev/moneymirror/internal/model"
)

type dialogKind int

const (
	dialogEntry dialogKind = iota
	dialogEdit
	dialogGoal
	dialogDeposit
	dialogSubscription
	dialogWeekExpense
)

// dialogValues is the binding target of every dialog form. It lives on the
// heap so the form keeps writing to it as the App value is copied around.
type dialogValues struct {
	kind     model.Kind
	category string
	amount   string
	note     string
	name     string
	targetID string
}

func (v *dialogValues) draft() ledger.Draft {
	return ledger.Draft{Amount: v.amount, Kind: v.kind, Category: v.category, Note: v.note}
}

// dialog is a modal huh form plus what to do with its values.
type dialog struct {
	kind   dialogKind
	title  string
	form   *huh.Form
	values *dialogValues
}

func dialogKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel"))
	return km
}

func newDialog(kind dialogKind, title string, v *dialogValues, groups ...*huh.Group) dialog {
	form := huh.NewForm(groups...).
		WithKeyMap(dialogKeyMap()).
		WithShowHelp(true).
		WithTheme(huh.ThemeCharm())
	return dialog{kind: kind, title: title, form: form, values: v}
}

func validateAmount(s string) error {
	if _, err := ledger.ParseAmount(s); err != nil {
		return fmt.Errorf("enter an amount like 250 or 99.50")
	}
	return nil
}

func validatePositive(s string) error {
	if _, err := ledger.ParsePositiveAmount(s); err != nil {
		return fmt.Errorf("enter an amount greater than zero")
	}
	return nil
}

func validateName(s string) error {
	if len([]rune(s)) == 0 {
		return ledger.ErrEmptyName
	}
	return nil
}

// categoryOptions lists every catalog entry for kind. A current value that
// is not in the catalog is kept as a trailing option so editing never
// silently changes it.
func categoryOptions(kind model.Kind, current string) []huh.Option[string] {
	cats := catalog.For(kind)
	opts := make([]huh.Option[string], 0, len(cats)+1)
	found := false
	for _, c := range cats {
		opts = append(opts, huh.NewOption(c.Icon+" "+c.Name, c.Name))
		if c.Name == current {
			found = true
		}
	}
	if current != "" && !found {
		opts = append(opts, huh.NewOption(catalog.IconOf(current)+" "+current, current))
	}
	return opts
}

// newEntryDialog builds the add form, or the edit form when tx is non-nil.
func newEntryDialog(tx *model.Transaction) dialog {
	v := &dialogValues{kind: model.Expense}
	kind, title := dialogEntry, "New entry"
	original := ""
	if tx != nil {
		kind, title = dialogEdit, "Edit entry"
		v.kind = tx.Kind
		v.category = tx.Category
		v.amount = tx.Amount.String()
		v.note = tx.Note
		original = tx.Category
	}

	return newDialog(kind, title, v, huh.NewGroup(
		huh.NewSelect[model.Kind]().
			Title("Type").
			Options(
				huh.NewOption(cli.FormatKind(model.Expense), model.Expense),
				huh.NewOption(cli.FormatKind(model.Income), model.Income),
			).
			Value(&v.kind),
		huh.NewSelect[string]().
			Title("Category").
			OptionsFunc(func() []huh.Option[string] {
				return categoryOptions(v.kind, original)
			}, &v.kind).
			Value(&v.category),
		huh.NewInput().
			Title("Amount").
			Placeholder("0.00").
			Validate(validateAmount).
			Value(&v.amount),
		huh.NewInput().
			Title("Note").
			Placeholder("defaults to the category").
			CharLimit(80).
			Value(&v.note),
	))
}

func newGoalDialog() dialog {
	v := &dialogValues{}
	return newDialog(dialogGoal, "New savings goal", v, huh.NewGroup(
		huh.NewInput().Title("Name").Placeholder("Trip").Validate(validateName).Value(&v.name),
		huh.NewInput().Title("Target").Placeholder("5000").Validate(validatePositive).Value(&v.amount),
	))
}

func newDepositDialog(g model.Goal) dialog {
	v := &dialogValues{targetID: g.ID}
	return newDialog(dialogDeposit, "Deposit to "+g.Name, v, huh.NewGroup(
		huh.NewInput().
			Title("Amount").
			Description(fmt.Sprintf("%s of %s saved", cli.FormatCurrency(g.Saved), cli.FormatCurrency(g.Target))).
			Validate(validatePositive).
			Value(&v.amount),
	))
}

func newSubscriptionDialog() dialog {
	v := &dialogValues{}
	return newDialog(dialogSubscription, "New subscription", v, huh.NewGroup(
		huh.NewInput().Title("Name").Placeholder("Netflix").Validate(validateName).Value(&v.name),
		huh.NewInput().Title("Monthly amount").Placeholder("499").Validate(validatePositive).Value(&v.amount),
	))
}

func newWeekExpenseDialog() dialog {
	v := &dialogValues{kind: model.Expense, category: catalog.Expense()[0].Name}
	return newDialog(dialogWeekExpense, "Log spend for this week", v, huh.NewGroup(
		huh.NewSelect[string]().
			Title("Category").
			Options(categoryOptions(model.Expense, "")...).
			Value(&v.category),
		huh.NewInput().Title("Amount").Validate(validateAmount).Value(&v.amount),
	))
}

// submit applies a completed dialog and returns the flash message to show.
func (a *App) submit(d dialog) (string, error) {
	v := d.values
	switch d.kind {
	case dialogEntry:
		tx, err := a.ledger.AddTransaction(v.draft())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Added %s %s", tx.Note, cli.FormatSignedCurrency(tx.Amount, tx.Kind)), nil
	case dialogEdit:
		tx, err := a.ledger.SaveEdit(v.draft())
		if err != nil {
			a.ledger.CancelEdit()
			return "", err
		}
		return "Updated " + tx.Note, nil
	case dialogGoal:
		g, err := a.ledger.AddGoal(v.name, v.amount)
		if err != nil {
			return "", err
		}
		return "Created goal " + g.Name, nil
	case dialogDeposit:
		g, err := a.ledger.DepositToGoal(v.targetID, v.amount)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s: %s saved", g.Name, cli.FormatCurrency(g.Saved)), nil
	case dialogSubscription:
		s, err := a.ledger.AddSubscription(v.name, v.amount)
		if err != nil {
			return "", err
		}
		return "Tracking " + s.Name, nil
	case dialogWeekExpense:
		if a.window == nil {
			return "", fmt.Errorf("weekly mode is off")
		}
		r, err := a.window.Add(v.amount, v.category, a.now())
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Logged %s %s", r.Category, cli.FormatCurrency(r.Amount)), nil
	}
	return "", nil
}
