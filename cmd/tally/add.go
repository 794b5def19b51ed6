package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/ledger"
	"github.com/tallyhq/tally/internal/model"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an income or expense",
		Long: `Record one transaction in a wallet.

Tags are written inline in the note as #hashtags:

  tally add --type expense --category Food --amount 12.50 --note "lunch #work"`,
		RunE: runAdd,
	}

	cmd.Flags().StringP("type", "t", "expense", "transaction type (income, expense)")
	cmd.Flags().StringP("category", "c", "", "category name (required)")
	cmd.Flags().StringP("amount", "a", "", "amount (required)")
	cmd.Flags().StringP("note", "n", "", "free-form note, #tags allowed")
	cmd.Flags().StringP("date", "d", "", "calendar date YYYY-MM-DD (default: today)")
	cmd.Flags().StringP("wallet", "w", "", "wallet name (default: selected wallet)")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
	ttype, _ := cmd.Flags().GetString("type")
	category, _ := cmd.Flags().GetString("category")
	rawAmount, _ := cmd.Flags().GetString("amount")
	note, _ := cmd.Flags().GetString("note")
	rawDate, _ := cmd.Flags().GetString("date")
	walletName, _ := cmd.Flags().GetString("wallet")

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

	wallet, err := resolveWallet(svc.Data(), walletName)
	if err != nil {
		return err
	}

	txn, err := svc.AddTransaction(ledger.AddTransactionInput{
		Day:      day,
		Type:     model.TransactionType(ttype),
		Category: category,
		Note:     note,
		Amount:   amount,
		WalletID: wallet.ID,
	})
	if err != nil {
		return err
	}

	money := moneyFormatter(svc.Data())
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s %s in %s (%s)",
		txn.Type, money.Format(txn.Amount), txn.Category, wallet.Name)))
	return nil
}
