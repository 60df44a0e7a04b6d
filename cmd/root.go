package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/moneymirror/internal/cli"
	"github.com/theirongolddev/moneymirror/internal/config"
	"github.com/theirongolddev/moneymirror/internal/ledger"
	"github.com/theirongolddev/moneymirror/internal/logging"
	"github.com/theirongolddev/moneymirror/internal/period"
	"github.com/theirongolddev/moneymirror/internal/store"
	"github.com/theirongolddev/moneymirror/internal/tui/theme"
)

var (
	flagDB        string
	flagEphemeral bool
	flagQuiet     bool
	flagLogLevel  string
)

// Resolved once per invocation by the root pre-run hook.
var (
	appCfg = config.DefaultConfig()
	appLog = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:               "moneymirror",
	Short:             "Personal finance ledger for the terminal",
	Long:              "Track income, spending, savings goals and subscriptions in a local ledger.",
	SilenceUsage:      true,
	PersistentPreRunE: prepare,
	RunE:              runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	defer func() { _ = appLog.Sync() }()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDB, "db", "", "Ledger database path (default from config)")
	rootCmd.PersistentFlags().BoolVar(&flagEphemeral, "ephemeral", false, "Use an in-memory ledger that is discarded on exit")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// prepare loads .env and config, then applies currency, theme and logging.
func prepare(_ *cobra.Command, _ []string) error {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Config unreadable, using defaults: %v\n", err)
		cfg = config.DefaultConfig()
	}
	appCfg = cfg

	level := flagLogLevel
	if level == "" {
		level = config.GetLogLevel(cfg)
	}
	appLog = logging.NewLogger(level)

	cli.SetCurrency(config.GetCurrency(cfg), cfg.Display.Decimals)
	theme.SetActive(cfg.Appearance.Theme)
	return nil
}

func dbPath() string {
	if flagDB != "" {
		return flagDB
	}
	return config.GetDBPath(appCfg)
}

func openStore() (store.KV, error) {
	if flagEphemeral {
		return store.NewMemory(), nil
	}
	return store.Open(dbPath(), appLog.Named("store"))
}

// openLedger is the shared data loading path used by all commands. The
// window is nil unless weekly mode is on. Callers must invoke closeFn.
func openLedger() (l *ledger.Ledger, w *period.Window, closeFn func(), err error) {
	kv, err := openStore()
	if err != nil {
		return nil, nil, nil, err
	}
	closeFn = func() {
		if cerr := kv.Close(); cerr != nil {
			appLog.Warn("closing store", zap.Error(cerr))
		}
	}

	l, err = ledger.Open(kv, ledger.WithLogger(appLog.Named("ledger")))
	if err != nil {
		closeFn()
		return nil, nil, nil, err
	}

	if appCfg.General.WeeklyMode {
		w = period.NewWindow(kv, appLog.Named("week"))
		state, _, err := w.Load(time.Now())
		if err != nil {
			closeFn()
			return nil, nil, nil, fmt.Errorf("loading week: %w", err)
		}
		if state == period.Stale && !flagQuiet {
			fmt.Fprintf(os.Stderr, "  New week started (%s)\n", w.Key())
		}
	}

	return l, w, closeFn, nil
}

// requireWindow returns w or an error explaining how to enable weekly mode.
func requireWindow(w *period.Window) error {
	if w == nil {
		return fmt.Errorf("weekly mode is off; run `moneymirror setup` or set general.weekly_mode in %s", config.ConfigPath())
	}
	return nil
}
