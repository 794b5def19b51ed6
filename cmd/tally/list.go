package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/analytics"
	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/export"
	"github.com/tallyhq/tally/internal/model"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions",
		RunE:  runList,
	}

	cmd.Flags().StringP("wallet", "w", "", "wallet name (default: selected wallet)")
	cmd.Flags().StringP("month", "m", "", "restrict to one month YYYY-MM")
	cmd.Flags().StringP("tag", "t", "", "restrict to notes carrying this #tag")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	walletName, _ := cmd.Flags().GetString("wallet")
	rawMonth, _ := cmd.Flags().GetString("month")
	tag, _ := cmd.Flags().GetString("tag")

	svc, err := openService()
	if err != nil {
		return err
	}

	doc := svc.Data()
	wallet, err := resolveWallet(doc, walletName)
	if err != nil {
		return err
	}

	txns := doc.WalletTransactions(wallet.ID)
	if rawMonth != "" {
		year, month, err := parseMonth(rawMonth)
		if err != nil {
			return err
		}
		period := analytics.Month(year, month)
		filtered := txns[:0:0]
		for _, t := range txns {
			if period.Contains(t.Date) {
				filtered = append(filtered, t)
			}
		}
		txns = filtered
	}
	txns = export.FilterByTag(txns, tag)

	if len(txns) == 0 {
		fmt.Println(cli.FormatInfo("No transactions found"))
		return nil
	}

	// Newest first.
	sort.Slice(txns, func(i, j int) bool { return txns[i].ID > txns[j].ID })

	money := moneyFormatter(doc)
	var sb strings.Builder
	for i, t := range txns {
		if i > 0 {
			sb.WriteByte('\n')
		}
		amount := money.Format(t.Amount)
		if t.Type == model.TypeExpense {
			amount = cli.ErrorStyle.Render("-" + amount)
		} else {
			amount = cli.SuccessStyle.Render("+" + amount)
		}
		fmt.Fprintf(&sb, "%s  %-14d %-12s %10s  %s",
			t.DateKey(), t.ID, t.Category, amount, cli.SubtleStyle.Render(t.Note))
	}

	fmt.Println(cli.RenderBox(cli.WalletIcon+" "+wallet.Name, sb.String()))
	return nil
}
