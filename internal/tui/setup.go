package tui

import (
	"strings"

	"github.com/charmbracelet/huh"
	"go.uber.org/zap"

	"github.com/theirongolddev/moneymirror/internal/cli"
	"github.com/theirongolddev/moneymirror/internal/config"
	"github.com/theirongolddev/moneymirror/internal/period"
	"github.com/theirongolddev/moneymirror/internal/tui/theme"
)

// setupValues holds first-run form bindings.
type setupValues struct {
	name     string
	theme    string
	currency string
	weekly   bool
}

var currencyChoices = []string{"INR", "USD", "EUR", "GBP", "JPY"}

func newSetupForm(cfg config.Config, vals *setupValues) *huh.Form {
	vals.theme = cfg.Appearance.Theme
	vals.currency = cfg.Display.Currency
	vals.weekly = cfg.General.WeeklyMode

	themeOpts := make([]huh.Option[string], 0, len(theme.All))
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	currencyOpts := make([]huh.Option[string], 0, len(currencyChoices)+1)
	seen := false
	for _, c := range currencyChoices {
		currencyOpts = append(currencyOpts, huh.NewOption(c, c))
		seen = seen || c == vals.currency
	}
	if !seen && vals.currency != "" {
		currencyOpts = append(currencyOpts, huh.NewOption(vals.currency, vals.currency))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to moneymirror").
				Description("Track income, spending, goals and subscriptions.\nEverything stays on this machine."),
			huh.NewInput().
				Title("What should we call you?").
				Validate(validateName).
				Value(&vals.name),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(themeOpts...).
				Value(&vals.theme),
			huh.NewSelect[string]().
				Title("Currency").
				Options(currencyOpts...).
				Value(&vals.currency),
			huh.NewConfirm().
				Title("Reset spending every week?").
				Description("Keeps a separate weekly log that clears each Sunday.").
				Affirmative("Yes").
				Negative("No").
				Value(&vals.weekly),
		),
	).WithKeyMap(dialogKeyMap()).WithShowHelp(true).WithTheme(huh.ThemeCharm())
}

// saveSetup persists the name to the ledger and the preferences to the
// config file, and applies them to the running app.
func (a *App) saveSetup() error {
	vals := a.setupVals

	if err := a.ledger.SetDisplayName(strings.TrimSpace(vals.name)); err != nil {
		return err
	}

	theme.SetActive(vals.theme)

	cfg := loadConfigOrDefault()
	cfg.Appearance.Theme = vals.theme
	cfg.Display.Currency = vals.currency
	cfg.General.WeeklyMode = vals.weekly
	cli.SetCurrency(cfg.Display.Currency, cfg.Display.Decimals)

	switch {
	case vals.weekly && a.window == nil:
		a.window = period.NewWindow(a.ledger.Store(), a.log)
		if _, _, err := a.window.Load(a.now()); err != nil {
			a.log.Warn("week window load failed", zap.Error(err))
		}
	case !vals.weekly:
		a.window = nil
	}

	return config.Save(cfg)
}
