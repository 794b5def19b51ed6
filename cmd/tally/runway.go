package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/analytics"
	"github.com/tallyhq/tally/internal/cli"
)

func runwayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runway",
		Short: "Estimate how long current funds last",
		Long: `Project days of funds remaining at the current spending pace.

The estimate blends the last 7 and last 30 days of expenses, weighted
toward recent behavior, and divides the wallet balance by that daily
burn rate.`,
		RunE: runRunway,
	}

	cmd.Flags().StringP("wallet", "w", "", "wallet name (default: selected wallet)")

	return cmd
}

func runRunway(cmd *cobra.Command, _ []string) error {
	walletName, _ := cmd.Flags().GetString("wallet")

	svc, err := openService()
	if err != nil {
		return err
	}

	doc := svc.Data()
	wallet, err := resolveWallet(doc, walletName)
	if err != nil {
		return err
	}

	balance := doc.WalletBalance(wallet.ID)
	runway := analytics.EstimateRunway(balance, doc.WalletTransactions(wallet.ID), time.Now())

	money := moneyFormatter(doc)
	body := fmt.Sprintf("Balance: %s\nRunway:  %s", money.Format(balance), runway.Display())
	if runway.Reason == analytics.RunwayEstimated && !runway.Infinite {
		body += "\n" + cli.SubtleStyle.Render(fmt.Sprintf("(%d days at the current pace)", runway.Days))
	}

	fmt.Println(cli.RenderBox(cli.CoinIcon+" "+wallet.Name, body))
	return nil
}
