package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/export"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export data to files",
	}

	cmd.AddCommand(exportCSVCmd())
	cmd.AddCommand(exportBackupCmd())

	return cmd
}

func exportCSVCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Export transactions as CSV",
		Long: `Write the selected wallet's transactions as CSV.

The default format does not quote fields, matching every export this
app has ever produced; a note containing a comma will shift columns.
Pass --rfc for standard quoting if your spreadsheet chokes.`,
		RunE: runExportCSV,
	}

	cmd.Flags().StringP("out", "o", "", "output file (default: tally-export-<date>.csv)")
	cmd.Flags().StringP("wallet", "w", "", "wallet name (default: selected wallet)")
	cmd.Flags().StringP("tag", "t", "", "restrict to notes carrying this #tag")
	cmd.Flags().Bool("rfc", false, "quote fields per RFC 4180")

	return cmd
}

func runExportCSV(cmd *cobra.Command, _ []string) error {
	out, _ := cmd.Flags().GetString("out")
	walletName, _ := cmd.Flags().GetString("wallet")
	tag, _ := cmd.Flags().GetString("tag")
	rfc, _ := cmd.Flags().GetBool("rfc")

	svc, err := openService()
	if err != nil {
		return err
	}

	doc := svc.Data()
	wallet, err := resolveWallet(doc, walletName)
	if err != nil {
		return err
	}

	txns := export.FilterByTag(doc.WalletTransactions(wallet.ID), tag)

	if out == "" {
		out = export.Filename("tally-export", time.Now().Format("2006-01-02"), "csv")
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer func() { _ = f.Close() }()

	if err := export.WriteCSV(f, txns, rfc); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to %s", len(txns), out)))
	return nil
}

func exportBackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export the full document as JSON",
		RunE:  runExportBackup,
	}

	cmd.Flags().StringP("out", "o", "", "output file (default: tally-backup-<date>.json)")

	return cmd
}

func runExportBackup(cmd *cobra.Command, _ []string) error {
	out, _ := cmd.Flags().GetString("out")

	svc, err := openService()
	if err != nil {
		return err
	}

	if out == "" {
		out = export.Filename("tally-backup", time.Now().Format("2006-01-02"), "json")
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer func() { _ = f.Close() }()

	if err := export.WriteBackup(f, svc.Data()); err != nil {
		return fmt.Errorf("failed to write backup: %w", err)
	}

	fmt.Println(cli.FormatSuccess("Wrote backup to " + out))
	return nil
}
