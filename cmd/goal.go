package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/moneymirror/internal/cli"
	"github.com/theirongolddev/moneymirror/internal/pipeline"
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage savings goals",
	RunE:  runGoalList,
}

var goalAddCmd = &cobra.Command{
	Use:     "add NAME TARGET",
	Short:   "Create a savings goal",
	Example: `  moneymirror goal add "Trip to Goa" 5000`,
	Args:    cobra.ExactArgs(2),
	RunE:    runGoalAdd,
}

var goalDepositCmd = &cobra.Command{
	Use:     "deposit ID AMOUNT",
	Aliases: []string{"dep"},
	Short:   "Add savings to a goal",
	Args:    cobra.ExactArgs(2),
	RunE:    runGoalDeposit,
}

var goalRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGoalRm,
}

var goalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show goals with progress",
	RunE:    runGoalList,
}

func init() {
	goalCmd.AddCommand(goalAddCmd, goalDepositCmd, goalRmCmd, goalListCmd)
	rootCmd.AddCommand(goalCmd)
}

func runGoalAdd(_ *cobra.Command, args []string) error {
	l, _, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	g, err := l.AddGoal(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("  Created goal %s: %s  %s\n", g.Name, cli.FormatCurrency(g.Target), cli.RenderMuted(shortID(g.ID)))
	return nil
}

func runGoalDeposit(_ *cobra.Command, args []string) error {
	l, _, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	id, err := resolveID(args[0], goalIDs(l))
	if err != nil {
		return err
	}
	g, err := l.DepositToGoal(id, args[1])
	if err != nil {
		return err
	}
	fmt.Printf("  %s  %s / %s  %s\n", g.Name,
		cli.FormatCurrency(g.Saved), cli.FormatCurrency(g.Target),
		cli.RenderProgressBar(pipeline.GoalProgress(g), 20))
	return nil
}

func runGoalRm(_ *cobra.Command, args []string) error {
	l, _, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	id, err := resolveID(args[0], goalIDs(l))
	if err != nil {
		return err
	}
	if err := l.DeleteGoal(id); err != nil {
		return err
	}
	fmt.Printf("  Deleted goal %s\n", cli.RenderMuted(shortID(id)))
	return nil
}

func runGoalList(_ *cobra.Command, _ []string) error {
	l, _, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	stats := pipeline.GoalStats(l.Goals())
	if len(stats) == 0 {
		fmt.Println("\n  No goals yet. Create one with `moneymirror goal add NAME TARGET`.")
		return nil
	}

	nameW := 0
	for _, gs := range stats {
		nameW = max(nameW, lipgloss.Width(gs.Goal.Name))
	}

	fmt.Println()
	for _, gs := range stats {
		fmt.Printf("  %s  %s  %s  %s / %s\n",
			cli.RenderMuted(shortID(gs.Goal.ID)),
			padRight(gs.Goal.Name, nameW),
			cli.RenderProgressBar(gs.Progress, 24),
			cli.FormatCurrency(gs.Goal.Saved), cli.FormatCurrency(gs.Goal.Target))
	}
	fmt.Println()
	return nil
}

func padRight(s string, w int) string {
	if gap := w - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
