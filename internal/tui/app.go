// Package tui provides the interactive Bubble Tea dashboard for moneymirror.
package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/theirongolddev/moneymirror/internal/config"
	"github.com/theirongolddev/moneymirror/internal/export"
	"github.com/theirongolddev/moneymirror/internal/ledger"
	"github.com/theirongolddev/moneymirror/internal/period"
	"github.com/theirongolddev/moneymirror/internal/tui/components"
	"github.com/theirongolddev/moneymirror/internal/tui/theme"
	"github.com/theirongolddev/moneymirror/internal/watch"
)

// App is the root Bubble Tea model. It owns the ledger for the lifetime of
// the program: every read and mutation happens on the update loop.
type App struct {
	ledger *ledger.Ledger
	window *period.Window // nil unless weekly mode is on
	log    *zap.Logger
	now    func() time.Time

	fig figures

	refreshInterval time.Duration
	lastRefresh     time.Time

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	dash dashboardState
	plan planState

	// Modal form for add/edit/deposit
	dialog *dialog

	// First-run setup (huh form)
	setupForm *huh.Form
	setupVals *setupValues
	needSetup bool

	flash    string
	flashErr bool
}

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 160
	minContentHeight = 5

	tickInterval = time.Second
)

// loadConfigOrDefault loads config, returning defaults on error.
// This ensures the TUI can always start even if config is corrupted.
func loadConfigOrDefault() config.Config {
	cfg, err := config.Load()
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}

// NewApp creates a new TUI app over l. w is the weekly window, or nil.
func NewApp(l *ledger.Ledger, w *period.Window, log *zap.Logger) App {
	if log == nil {
		log = zap.NewNop()
	}

	cfg := loadConfigOrDefault()
	refreshInterval := time.Duration(cfg.Watch.IntervalSec) * time.Second
	if refreshInterval < 5*time.Second {
		refreshInterval = 15 * time.Second
	}

	a := App{
		ledger:          l,
		window:          w,
		log:             log,
		now:             time.Now,
		refreshInterval: refreshInterval,
		needSetup:       l.DisplayName() == "",
		setupVals:       &setupValues{},
	}
	if a.needSetup {
		a.setupForm = newSetupForm(cfg, a.setupVals)
	}
	a.lastRefresh = a.now()
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnableMouseCellMotion, tickCmd()}
	if a.needSetup && a.setupForm != nil {
		cmds = append(cmds, a.setupForm.Init())
	}
	return tea.Batch(cmds...)
}

func (a *App) recompute() {
	a.fig = computeFigures(a.ledger, a.window, a.now())
	a.dash.clamp(len(a.fig.txs))
	a.plan.clamp(len(a.fig.goals), len(a.fig.subs))
}

// reload re-reads persisted state, picking up writes from other processes
// and applying the weekly rollover.
func (a *App) reload() {
	state, err := watch.Reload(a.ledger, a.window, a.now())
	a.lastRefresh = a.now()
	if err != nil {
		a.log.Warn("reload failed", zap.Error(err))
		a.setFlash("reload failed: "+err.Error(), true)
	} else if state == period.Stale {
		a.setFlash("New week started, weekly log cleared", false)
	}
	a.recompute()
}

func (a *App) setFlash(msg string, isErr bool) {
	a.flash = msg
	a.flashErr = isErr
}

func (a *App) report(msg string, err error) {
	if err != nil {
		a.setFlash(err.Error(), true)
		return
	}
	a.setFlash(msg, false)
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.setupForm != nil {
			a.setupForm = a.setupForm.WithWidth(min(a.width, 72)).WithHeight(a.height)
		}
		if a.dialog != nil {
			a.dialog.form = a.dialog.form.WithWidth(dialogWidth(a.width))
		}
		return a, nil

	case tickMsg:
		if a.dialog == nil && !a.needSetup && time.Since(a.lastRefresh) >= a.refreshInterval {
			a.reload()
		}
		return a, tickCmd()

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.needSetup && a.setupForm != nil {
			return a.updateSetupForm(msg)
		}
		if a.dialog != nil {
			return a.updateDialog(msg)
		}
		return a.updateKey(msg)

	case tea.MouseMsg:
		if a.needSetup || a.dialog != nil {
			break
		}
		return a.updateMouse(msg)
	}

	// Forward unhandled messages to the active form (cursor blinks, etc.)
	if a.needSetup && a.setupForm != nil {
		return a.updateSetupForm(msg)
	}
	if a.dialog != nil {
		return a.updateDialog(msg)
	}
	return a, nil
}

func (a App) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "?" {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch key {
	case "q":
		return a, tea.Quit
	case "r":
		a.reload()
		a.setFlash("Refreshed", false)
		return a, nil
	case "E":
		path, err := a.exportCSV()
		a.report("Exported to "+path, err)
		return a, nil
	case "left":
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	case "right":
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
			return a, nil
		}
	}

	switch a.activeTab {
	case tabDashboard:
		return a.updateDashboardKey(key)
	case tabPlan:
		return a.updatePlanKey(key)
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && msg.Y == 0:
		if idx := a.tabAtX(msg.X); idx >= 0 {
			a.activeTab = idx
		}
	case msg.Button == tea.MouseButtonWheelUp:
		return a.updateKey(tea.KeyMsg{Type: tea.KeyUp})
	case msg.Button == tea.MouseButtonWheelDown:
		return a.updateKey(tea.KeyMsg{Type: tea.KeyDown})
	}
	return a, nil
}

// openDialog shows d and starts its form.
func (a App) openDialog(d dialog) (tea.Model, tea.Cmd) {
	d.form = d.form.WithWidth(dialogWidth(a.width))
	a.dialog = &d
	return a, d.form.Init()
}

func (a App) updateDialog(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.dialog.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.dialog.form = f
	}

	switch a.dialog.form.State {
	case huh.StateCompleted:
		d := *a.dialog
		a.dialog = nil
		a.report(a.submit(d))
		a.recompute()
		return a, nil
	case huh.StateAborted:
		if a.dialog.kind == dialogEdit {
			a.ledger.CancelEdit()
		}
		a.dialog = nil
		a.setFlash("Cancelled", false)
		return a, nil
	}
	return a, cmd
}

func (a App) updateSetupForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := a.setupForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.setupForm = f
	}

	switch a.setupForm.State {
	case huh.StateCompleted:
		if err := a.saveSetup(); err != nil {
			a.log.Warn("saving setup failed", zap.Error(err))
			a.setFlash("Could not save settings: "+err.Error(), true)
		} else {
			a.setFlash("Welcome, "+a.ledger.DisplayName(), false)
		}
		a.needSetup = false
		a.setupForm = nil
		a.recompute()
		return a, nil
	case huh.StateAborted:
		a.needSetup = false
		a.setupForm = nil
		return a, nil
	}
	return a, cmd
}

// exportCSV writes every transaction to a dated CSV file in the data dir.
func (a App) exportCSV() (string, error) {
	dir := config.DataDir()
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("creating data dir: %w", err)
	}
	path := filepath.Join(dir, "moneymirror-"+period.DayKey(a.now())+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating export: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := export.WriteCSV(f, a.ledger.Transactions()); err != nil {
		return "", err
	}
	return path, f.Close()
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

func dialogWidth(termWidth int) int {
	return max(40, min(termWidth-8, 64))
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.needSetup && a.setupForm != nil {
		return a.viewCentered(a.setupForm.View())
	}
	if a.dialog != nil {
		return a.viewDialog()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  moneymirror needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewCentered(body string) string {
	t := theme.Active
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewDialog() string {
	t := theme.Active
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Bold(true)
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Padding(1, 2)

	body := titleStyle.Render(a.dialog.title) + "\n\n" + a.dialog.form.View()
	return a.viewCentered(cardStyle.Render(body))
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)

	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Income).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	sections := []struct {
		title    string
		bindings []struct{ key, desc string }
	}{
		{"Navigation", []struct{ key, desc string }{
			{"d p s", "Jump to tab"},
			{"← →", "Previous / Next tab"},
			{"j k", "Move selection"},
			{"tab", "Switch goals / subscriptions"},
		}},
		{"Dashboard", []struct{ key, desc string }{
			{"a", "Add income or expense"},
			{"e Enter", "Edit selected entry"},
			{"x", "Delete selected entry"},
			{"w", "Log weekly spend"},
		}},
		{"Plan", []struct{ key, desc string }{
			{"g", "New goal"},
			{"+ Enter", "Deposit to goal"},
			{"n", "New subscription"},
			{"x", "Delete selected"},
		}},
		{"General", []struct{ key, desc string }{
			{"E", "Export CSV"},
			{"r", "Reload"},
			{"?", "Toggle help"},
			{"q", "Quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render(sec.title))
		b.WriteString("\n")
		for _, bind := range sec.bindings {
			fmt.Fprintf(&b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-10s", bind.key)),
				descStyle.Render(bind.desc))
		}
	}
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Press any key to close"))

	return a.viewCentered(cardStyle.Render(b.String()))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w)

	statusBar := components.RenderStatusBar(w, components.Status{
		Name:    a.ledger.DisplayName(),
		Flash:   a.flash,
		IsError: a.flashErr,
		DataAge: time.Since(a.lastRefresh).Truncate(time.Second).String(),
		Weekly:  a.window != nil,
	})

	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	switch a.activeTab {
	case tabDashboard:
		content = a.renderDashboardTab(cw, contentH)
	case tabPlan:
		content = a.renderPlanTab(cw)
	case tabStats:
		content = a.renderStatsTab(cw)
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with background color.
// This ensures gaps between cards and empty lines have proper background fill.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")

	var result strings.Builder
	for i, line := range lines {
		placed := lipgloss.PlaceHorizontal(w, lipgloss.Left, line,
			lipgloss.WithWhitespaceBackground(bg))
		result.WriteString(placed)
		if i < len(lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes are derived from the same width rules used by RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW
		if i < len(components.Tabs)-1 {
			pos++ // separator
		}
	}
	return -1
}
