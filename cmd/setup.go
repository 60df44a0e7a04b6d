package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/moneymirror/internal/cli"
	"github.com/theirongolddev/moneymirror/internal/config"
	"github.com/theirongolddev/moneymirror/internal/tui/theme"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	l, _, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	cfg := appCfg

	fmt.Println()
	fmt.Println("  Welcome to moneymirror!")
	fmt.Println()
	if n := len(l.Transactions()); n > 0 {
		fmt.Printf("  Found %s transactions in %s\n\n", formatNumber(int64(n)), dbPath())
	}

	// 1. Display name
	fmt.Println("  1. What should we call you?")
	if current := l.DisplayName(); current != "" {
		fmt.Printf("     Current: %s\n", current)
	}
	name := readLine(reader)
	if name == "" {
		name = l.DisplayName()
	}
	if err := l.SetDisplayName(name); err != nil {
		return fmt.Errorf("saving name: %w", err)
	}
	fmt.Println()

	// 2. Theme
	fmt.Println("  2. Color theme")
	names := theme.Names()
	for i, n := range names {
		marker := ""
		if n == cfg.Appearance.Theme {
			marker = " [current]"
		}
		fmt.Printf("     (%d) %s%s\n", i+1, n, marker)
	}
	if idx, err := strconv.Atoi(readLine(reader)); err == nil && idx >= 1 && idx <= len(names) {
		cfg.Appearance.Theme = names[idx-1]
	}
	fmt.Println()

	// 3. Currency
	fmt.Println("  3. Currency (ISO code, e.g. INR, USD, EUR)")
	fmt.Printf("     Current: %s\n", cfg.Display.Currency)
	if code := strings.ToUpper(readLine(reader)); code != "" {
		cfg.Display.Currency = code
	}
	fmt.Println()

	// 4. Weekly mode
	fmt.Println("  4. Keep a weekly spending log that resets every Sunday? (y/N)")
	switch strings.ToLower(readLine(reader)) {
	case "y", "yes":
		cfg.General.WeeklyMode = true
	case "n", "no":
		cfg.General.WeeklyMode = false
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Hi %s! Saved to %s\n", l.DisplayName(), config.ConfigPath())
	fmt.Println("  Run `moneymirror setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}

func readLine(reader *bufio.Reader) string {
	fmt.Print("     > ")
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func formatNumber(n int64) string {
	return cli.FormatNumber(n)
}
