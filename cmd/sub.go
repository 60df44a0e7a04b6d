package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/moneymirror/internal/cli"
	"github.com/theirongolddev/moneymirror/internal/pipeline"
)

var subCmd = &cobra.Command{
	Use:     "sub",
	Aliases: []string{"subs"},
	Short:   "Manage monthly subscriptions",
	RunE:    runSubList,
}

var subAddCmd = &cobra.Command{
	Use:     "add NAME AMOUNT",
	Short:   "Track a monthly subscription",
	Example: `  moneymirror sub add Netflix 649`,
	Args:    cobra.ExactArgs(2),
	RunE:    runSubAdd,
}

var subRmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Stop tracking a subscription",
	Args:  cobra.ExactArgs(1),
	RunE:  runSubRm,
}

var subListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List subscriptions and the monthly total",
	RunE:    runSubList,
}

func init() {
	subCmd.AddCommand(subAddCmd, subRmCmd, subListCmd)
	rootCmd.AddCommand(subCmd)
}

func runSubAdd(_ *cobra.Command, args []string) error {
	l, _, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	s, err := l.AddSubscription(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Printf("  Tracking %s at %s/mo  %s\n", s.Name, cli.FormatCurrency(s.Amount), cli.RenderMuted(shortID(s.ID)))
	return nil
}

func runSubRm(_ *cobra.Command, args []string) error {
	l, _, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	id, err := resolveID(args[0], subscriptionIDs(l))
	if err != nil {
		return err
	}
	if err := l.DeleteSubscription(id); err != nil {
		return err
	}
	fmt.Printf("  Stopped tracking %s\n", cli.RenderMuted(shortID(id)))
	return nil
}

func runSubList(_ *cobra.Command, _ []string) error {
	l, _, closeFn, err := openLedger()
	if err != nil {
		return err
	}
	defer closeFn()

	subs := l.Subscriptions()
	if len(subs) == 0 {
		fmt.Println("\n  No subscriptions tracked.")
		return nil
	}

	rows := make([][]string, 0, len(subs)+2)
	for _, s := range subs {
		rows = append(rows, []string{shortID(s.ID), s.Name, cli.FormatCurrency(s.Amount)})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"", "Monthly total", cli.FormatCurrency(pipeline.SubscriptionMonthlyTotal(subs))},
	)

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:    "Subscriptions",
		Headers:  []string{"ID", "Name", "Per month"},
		LeftCols: 2,
		Rows:     rows,
	}))
	return nil
}
