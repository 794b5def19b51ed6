package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
)

func transferCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move money between wallets",
		Long: `Move an amount from one wallet to another.

A transfer is stored as two linked entries: an expense leg in the source
wallet and an income leg in the destination, both under the Transfer
category. Wallet balances change; income and expense category reports
show the legs in their own wallets.`,
		RunE: runTransfer,
	}

	cmd.Flags().StringP("from", "f", "", "source wallet name (default: selected wallet)")
	cmd.Flags().StringP("to", "t", "", "destination wallet name (required)")
	cmd.Flags().StringP("amount", "a", "", "amount (required)")
	cmd.Flags().StringP("date", "d", "", "calendar date YYYY-MM-DD (default: today)")
	cmd.Flags().StringP("note", "n", "", "free-form note")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runTransfer(cmd *cobra.Command, _ []string) error {
	fromName, _ := cmd.Flags().GetString("from")
	toName, _ := cmd.Flags().GetString("to")
	rawAmount, _ := cmd.Flags().GetString("amount")
	rawDate, _ := cmd.Flags().GetString("date")
	note, _ := cmd.Flags().GetString("note")

	amount, err := parseAmount(rawAmount)
	if err != nil {
		return err
	}
	day, err := parseDay(rawDate)
	if err != nil {
		return err
	}

	svc, err := openService()
	if err != nil {
		return err
	}

	doc := svc.Data()
	from, err := resolveWallet(doc, fromName)
	if err != nil {
		return err
	}
	to, err := resolveWallet(doc, toName)
	if err != nil {
		return err
	}

	if _, _, err := svc.Transfer(from.ID, to.ID, amount, day, note); err != nil {
		return err
	}

	money := moneyFormatter(doc)
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Transferred %s from %s to %s",
		money.Format(amount), from.Name, to.Name)))
	return nil
}
