package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tallyhq/tally/internal/analytics"
	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/model"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Monthly summary with category breakdown and calendar",
		RunE:  runReport,
	}

	cmd.Flags().StringP("month", "m", "", "month YYYY-MM (default: current month)")
	cmd.Flags().StringP("wallet", "w", "", "wallet name (default: selected wallet)")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	rawMonth, _ := cmd.Flags().GetString("month")
	walletName, _ := cmd.Flags().GetString("wallet")

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

	txns := doc.WalletTransactions(wallet.ID)
	period := analytics.Month(year, month)
	summary := analytics.Summarize(txns, period)
	money := moneyFormatter(doc)

	var sb strings.Builder
	fmt.Fprintf(&sb, "Income:  %s\n", cli.SuccessStyle.Render(money.Format(summary.TotalIncome)))
	fmt.Fprintf(&sb, "Expense: %s\n", cli.ErrorStyle.Render(money.Format(summary.TotalExpense)))
	fmt.Fprintf(&sb, "Net:     %s\n", money.Format(summary.Net()))

	if rows := categoryBars(summary.ExpenseByCategory, doc.CategoryColors(), money); len(rows) > 0 {
		sb.WriteString("\n" + cli.TitleStyle.UnsetMargins().Render("Spending by category") + "\n")
		sb.WriteString(cli.BarChart(rows, 24))
		sb.WriteByte('\n')
	}

	if !summary.TotalExpense.IsZero() {
		daily := analytics.DailyExpenses(txns, period.Start, period.End)
		peakDay, peak := "", decimal.Zero
		for day, spent := range daily {
			if spent.GreaterThan(peak) || (spent.Equal(peak) && day < peakDay) {
				peakDay, peak = day, spent
			}
		}
		days := dailyAverageDays(period, len(daily), time.Now())
		avg := summary.TotalExpense.Div(decimal.NewFromInt(int64(days)))
		fmt.Fprintf(&sb, "\nDaily average %s · busiest day %s (%s)\n",
			money.Format(avg), peakDay, money.Format(peak))
	}

	flags := analytics.DayFlags(filterPeriod(txns, period))
	sb.WriteString("\n" + cli.TitleStyle.UnsetMargins().Render("Activity") + "\n")
	sb.WriteString(cli.CalendarHeatmap(year, month, flags))

	title := fmt.Sprintf("%s %s %d · %s", cli.ChartIcon, month, year, wallet.Name)
	fmt.Println(cli.RenderBox(title, sb.String()))
	return nil
}

// categoryBars orders spending largest first, name breaking ties.
func categoryBars(byCategory map[string]decimal.Decimal, colors map[string]string, money cli.MoneyFormatter) []cli.BarRow {
	rows := make([]cli.BarRow, 0, len(byCategory))
	for category, amount := range byCategory {
		color := colors[category]
		if color == "" {
			color = "#999999"
		}
		value, _ := amount.Float64()
		rows = append(rows, cli.BarRow{
			Label: category,
			Note:  money.Format(amount),
			Value: value,
			Color: color,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Value != rows[j].Value {
			return rows[i].Value > rows[j].Value
		}
		return rows[i].Label < rows[j].Label
	})

	return rows
}

// dailyAverageDays caps the averaging window at today when the report
// covers the current month, so days yet to come do not dilute the figure.
func dailyAverageDays(period analytics.Period, totalDays int, now time.Time) int {
	if period.Contains(now) && now.Day() < totalDays {
		return now.Day()
	}
	return totalDays
}

func filterPeriod(txns []model.Transaction, period analytics.Period) []model.Transaction {
	var out []model.Transaction
	for _, t := range txns {
		if period.Contains(t.Date) {
			out = append(out, t)
		}
	}
	return out
}
