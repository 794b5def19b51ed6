package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/analytics"
	"github.com/tallyhq/tally/internal/cli"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage monthly budget limits",
		RunE:  runBudgetList,
	}

	cmd.AddCommand(budgetSetCmd())

	return cmd
}

func budgetSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <category> <limit>",
		Short: "Set a category's monthly limit (0 clears it)",
		Args:  cobra.ExactArgs(2),
		RunE:  runBudgetSet,
	}
}

func runBudgetSet(_ *cobra.Command, args []string) error {
	limit, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	svc, err := openService()
	if err != nil {
		return err
	}
	if err := svc.SetBudgetLimit(args[0], limit); err != nil {
		return err
	}

	if limit.IsZero() {
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Cleared budget limit for %q", args[0])))
	} else {
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Budget for %q set to %s/month", args[0], limit.StringFixed(2))))
	}
	return nil
}

func runBudgetList(_ *cobra.Command, _ []string) error {
	svc, err := openService()
	if err != nil {
		return err
	}

	doc := svc.Data()
	if len(doc.Settings.BudgetLimits) == 0 {
		fmt.Println(cli.FormatInfo("No budget limits configured. Set one with 'tally budget set <category> <limit>'"))
		return nil
	}

	wallet, err := resolveWallet(doc, "")
	if err != nil {
		return err
	}

	now := time.Now()
	summary := analytics.Summarize(doc.WalletTransactions(wallet.ID), analytics.Month(now.Year(), now.Month()))
	alerts := analytics.BudgetAlerts(summary.ExpenseByCategory, doc.Settings.BudgetLimits)

	alerted := make(map[string]analytics.BudgetAlert, len(alerts))
	for _, a := range alerts {
		alerted[a.Category] = a
	}

	categories := make([]string, 0, len(doc.Settings.BudgetLimits))
	for c := range doc.Settings.BudgetLimits {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	money := moneyFormatter(doc)
	var sb strings.Builder
	for i, category := range categories {
		if i > 0 {
			sb.WriteByte('\n')
		}
		limit := doc.Settings.BudgetLimits[category]
		spent := summary.ExpenseByCategory[category]
		line := fmt.Sprintf("%-16s %s of %s", category, money.Format(spent), money.Format(limit))
		if a, ok := alerted[category]; ok {
			line += fmt.Sprintf(" (%.0f%%)", a.Ratio*100)
			if a.OverLimit() {
				line = cli.ErrorStyle.Render(line + " " + cli.ErrorIcon)
			} else {
				line = cli.WarningStyle.Render(line)
			}
		}
		sb.WriteString(line)
	}

	title := fmt.Sprintf("Budgets · %s %d", now.Month(), now.Year())
	fmt.Println(cli.RenderBox(title, sb.String()))
	return nil
}
