package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import data from files",
	}

	cmd.AddCommand(importBackupCmd())

	return cmd
}

func importBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup <file>",
		Short: "Restore the document from a JSON backup",
		Long: `Replace the current document with a backup written by
'tally export backup'.

Missing sections fall back to defaults; the current document is left
untouched if the file is malformed. This overwrites everything, so
export a fresh backup first if in doubt.`,
		Args: cobra.ExactArgs(1),
		RunE: runImportBackup,
	}
}

func runImportBackup(_ *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	// Parse up front for entry counts and category sanity before the
	// document is replaced.
	var preview model.AppData
	if err := json.Unmarshal(raw, &preview); err != nil {
		return fmt.Errorf("%s is not a valid backup: %w", args[0], err)
	}

	known := make(map[string]bool, len(preview.Categories))
	for _, c := range preview.Categories {
		known[c.Name] = true
	}

	bar := progressbar.NewOptions(len(preview.Transactions),
		progressbar.OptionSetDescription("Checking entries"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)
	orphaned := 0
	for _, t := range preview.Transactions {
		if !known[t.Category] {
			orphaned++
			common.LogDebug("backup entry references unknown category",
				common.Fields{"id": t.ID, "category": t.Category})
		}
		_ = bar.Add(1)
	}
	if orphaned > 0 {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("%d entries reference categories missing from the backup", orphaned)))
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	if err := store.Restore(raw); err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Restored %d transactions, %d wallets, %d debts from %s",
		len(preview.Transactions), len(preview.Wallets), len(preview.Debts), args[0])))
	return nil
}
