package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/analytics"
	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/flowchart"
)

func flowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flow",
		Short: "Income-to-expense flow diagram",
		Long: `Show where money came from and where it went for one month.

Income categories stack on the left, expense categories on the right,
with proportional bands between them. A deficit block appears on the
left when spending exceeded income; a savings block appears on the
right when income exceeded spending. Use --svg to write the full
diagram to a file.`,
		RunE: runFlow,
	}

	cmd.Flags().StringP("month", "m", "", "month YYYY-MM (default: current month)")
	cmd.Flags().StringP("wallet", "w", "", "wallet name (default: selected wallet)")
	cmd.Flags().String("svg", "", "write the diagram as SVG to this file")
	cmd.Flags().Float64("width", 800, "SVG canvas width")
	cmd.Flags().Float64("height", 500, "SVG canvas height")

	return cmd
}

func runFlow(cmd *cobra.Command, _ []string) error {
	rawMonth, _ := cmd.Flags().GetString("month")
	walletName, _ := cmd.Flags().GetString("wallet")
	svgPath, _ := cmd.Flags().GetString("svg")
	width, _ := cmd.Flags().GetFloat64("width")
	height, _ := cmd.Flags().GetFloat64("height")

	year, month, err := parseMonth(rawMonth)
	if err != nil {
		return err
	}

	svc, err := openService()
	if err != nil {
		return err
	}

	doc := svc.Data()
	wallet, err := resolveWallet(doc, walletName)
	if err != nil {
		return err
	}

	summary := analytics.Summarize(doc.WalletTransactions(wallet.ID), analytics.Month(year, month))
	layout := flowchart.New(summary, doc.CategoryColors(), width, height)

	if svgPath != "" {
		f, err := os.Create(svgPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", svgPath, err)
		}
		defer func() { _ = f.Close() }()

		if err := flowchart.WriteSVG(f, layout); err != nil {
			return fmt.Errorf("failed to write SVG: %w", err)
		}
		fmt.Println(cli.FormatSuccess("Wrote " + svgPath))
		return nil
	}

	money := moneyFormatter(doc)
	diagram := cli.FlowDiagramText(layout, func(v float64) string {
		if money.Privacy {
			return ""
		}
		return fmt.Sprintf("%.2f", v)
	})

	title := fmt.Sprintf("%s Flow · %s %d · %s", cli.ChartIcon, month, year, wallet.Name)
	fmt.Println(cli.RenderBox(title, diagram))
	return nil
}
