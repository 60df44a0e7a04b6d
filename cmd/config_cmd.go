// Package cmd implements the moneymirror CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/moneymirror/internal/cli"
	"github.com/theirongolddev/moneymirror/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var sampleAmount = decimal.RequireFromString("123456.789")

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Weekly mode: %v\n", cfg.General.WeeklyMode)
	fmt.Printf("    Database:    %s%s\n", config.GetDBPath(cfg), envNote(config.EnvDB))
	fmt.Printf("    Log level:   %s%s\n", config.GetLogLevel(cfg), envNote(config.EnvLogLevel))
	fmt.Println()

	fmt.Println("  [Display]")
	fmt.Printf("    Currency: %s%s\n", config.GetCurrency(cfg), envNote(config.EnvCurrency))
	fmt.Printf("    Decimals: %d\n", cfg.Display.Decimals)
	fmt.Printf("    Sample:   %s\n", cli.FormatCurrency(sampleAmount))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Watch]")
	fmt.Printf("    Interval: %ds\n", cfg.Watch.IntervalSec)
	fmt.Println()

	fmt.Println("  Run `moneymirror setup` to reconfigure.")
	return nil
}

func envNote(name string) string {
	if os.Getenv(name) != "" {
		return "  (from " + name + ")"
	}
	return ""
}
