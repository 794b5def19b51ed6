package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/ledger"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/receipt"
)

func scanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <image>",
		Short: "Draft a transaction from a receipt photo",
		Long: `Extract amount, date, category, and merchant from a receipt image.

Extraction is best effort: only the fields the model could read come
back, and nothing is saved unless --save is passed. Requires an
Anthropic API key in TALLY_ANTHROPIC_API_KEY or anthropic.api_key in
the config file.`,
		Args: cobra.ExactArgs(1),
		RunE: runScan,
	}

	cmd.Flags().Bool("save", false, "record the drafted expense in the selected wallet")

	return cmd
}

func runScan(cmd *cobra.Command, args []string) error {
	save, _ := cmd.Flags().GetBool("save")

	image, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	mediaType, err := imageMediaType(args[0])
	if err != nil {
		return err
	}

	apiKey := viper.GetString("anthropic.api_key")
	if apiKey == "" {
		apiKey = os.Getenv("TALLY_ANTHROPIC_API_KEY")
	}

	parser, err := receipt.NewAnthropicParser(receipt.Config{
		APIKey: apiKey,
		Model:  viper.GetString("anthropic.model"),
	})
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var partial receipt.Partial
	err = common.WithRetry(ctx, func() error {
		var parseErr error
		partial, parseErr = parser.Parse(ctx, image, mediaType)
		return parseErr
	}, common.RetryOptions{MaxAttempts: 3, InitialDelay: time.Second})
	if err != nil {
		return fmt.Errorf("receipt scan failed: %w", err)
	}

	if partial.Empty() {
		fmt.Println(cli.FormatWarning("Could not read anything from the receipt"))
		return nil
	}

	var sb strings.Builder
	if partial.Amount != nil {
		fmt.Fprintf(&sb, "Amount:   %s\n", partial.Amount.StringFixed(2))
	}
	if partial.Date != nil {
		fmt.Fprintf(&sb, "Date:     %s\n", partial.Date.Format("2006-01-02"))
	}
	if partial.Category != nil {
		fmt.Fprintf(&sb, "Category: %s\n", *partial.Category)
	}
	if partial.Note != nil {
		fmt.Fprintf(&sb, "Note:     %s\n", *partial.Note)
	}
	fmt.Println(cli.RenderBox("Receipt draft", strings.TrimRight(sb.String(), "\n")))

	if !save {
		fmt.Println(cli.SubtleStyle.Render("Re-run with --save to record it, or use 'tally add' to adjust first"))
		return nil
	}

	if partial.Amount == nil || partial.Category == nil {
		return common.NewUserError(
			"cannot save a draft without an amount and a category; use 'tally add'",
			common.ErrReceiptParse)
	}

	day := time.Now()
	if partial.Date != nil {
		day = *partial.Date
	}
	note := ""
	if partial.Note != nil {
		note = *partial.Note
	}

	svc, err := openService()
	if err != nil {
		return err
	}
	wallet, err := resolveWallet(svc.Data(), "")
	if err != nil {
		return err
	}

	txn, err := svc.AddTransaction(ledger.AddTransactionInput{
		Day:      day,
		Type:     model.TypeExpense,
		Category: *partial.Category,
		Note:     note,
		Amount:   *partial.Amount,
		WalletID: wallet.ID,
	})
	if err != nil {
		return err
	}

	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded expense %s in %s", txn.Amount.StringFixed(2), txn.Category)))
	return nil
}

func imageMediaType(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg", nil
	case ".png":
		return "image/png", nil
	case ".webp":
		return "image/webp", nil
	case ".gif":
		return "image/gif", nil
	}
	return "", common.NewUserError(
		fmt.Sprintf("unsupported image type %q", filepath.Ext(path)), common.ErrInvalidConfig)
}
