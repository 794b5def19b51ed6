package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/model"
)

func walletsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallets",
		Short: "Manage wallets",
		RunE:  runWalletsList,
	}

	cmd.AddCommand(walletsAddCmd())
	cmd.AddCommand(walletsDeleteCmd())
	cmd.AddCommand(walletsSelectCmd())

	return cmd
}

func runWalletsList(_ *cobra.Command, _ []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}

	doc := svc.Data()
	money := moneyFormatter(doc)

	var sb strings.Builder
	for i, w := range doc.Wallets {
		if i > 0 {
			sb.WriteByte('\n')
		}
		marker := "  "
		if w.ID == doc.CurrentWalletID {
			marker = cli.SuccessStyle.Render("▸ ")
		}
		balance := doc.WalletBalance(w.ID)
		fmt.Fprintf(&sb, "%s%-16s %12s", marker, w.Name, money.Format(balance))
		if w.Type == model.WalletGoal && w.TargetAmount != nil {
			fmt.Fprintf(&sb, "  %s", cli.InfoStyle.Render(
				fmt.Sprintf("goal %s (%.0f%%)", money.Format(*w.TargetAmount), w.GoalProgress(balance))))
		}
	}

	fmt.Println(cli.RenderBox(cli.WalletIcon+" Wallets", sb.String()))
	return nil
}

func walletsAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a wallet",
		Args:  cobra.ExactArgs(1),
		RunE:  runWalletsAdd,
	}

	cmd.Flags().StringP("type", "t", "standard", "wallet type (standard, goal)")
	cmd.Flags().String("target", "", "savings target amount (goal wallets)")

	return cmd
}

func runWalletsAdd(cmd *cobra.Command, args []string) error {
	wtype, _ := cmd.Flags().GetString("type")
	rawTarget, _ := cmd.Flags().GetString("target")

	target, err := parseOptionalAmount(rawTarget)
	if err != nil {
		return err
	}

	svc, err := openService()
	if err != nil {
		return err
	}

	wallet, err := svc.CreateWallet(args[0], model.WalletType(wtype), target)
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Created %s wallet %q", wallet.Type, wallet.Name)))
	return nil
}

func walletsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an empty wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			wallet, err := resolveWallet(svc.Data(), args[0])
			if err != nil {
				return err
			}
			if err := svc.DeleteWallet(wallet.ID); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted wallet %q", wallet.Name)))
			return nil
		},
	}
}

func walletsSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <name>",
		Short: "Switch the active wallet",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			svc, err := openService()
			if err != nil {
				return err
			}
			wallet, err := resolveWallet(svc.Data(), args[0])
			if err != nil {
				return err
			}
			if err := svc.SelectWallet(wallet.ID); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Now using wallet %q", wallet.Name)))
			return nil
		},
	}
}
