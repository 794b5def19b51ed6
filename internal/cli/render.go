package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/analytics"
	"github.com/tallyhq/tally/internal/flowchart"
)

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
}

// maskedAmount replaces monetary figures when privacy mode is on.
const maskedAmount = "•••••"

// MoneyFormatter renders decimal amounts for one settings profile.
type MoneyFormatter struct {
	Currency string
	Privacy  bool
}

// Format renders an amount, honoring privacy mode.
func (f MoneyFormatter) Format(amount decimal.Decimal) string {
	if f.Privacy {
		return maskedAmount
	}
	if sym, ok := currencySymbols[f.Currency]; ok {
		return sym + amount.StringFixed(2)
	}
	return f.Currency + " " + amount.StringFixed(2)
}

// BarRow is one labeled bar in a horizontal bar chart.
type BarRow struct {
	Label string
	Note  string
	Value float64
	Color string
}

// BarChart renders labeled horizontal bars scaled to the largest value.
func BarChart(rows []BarRow, width int) string {
	if len(rows) == 0 {
		return SubtleStyle.Render("no data")
	}

	maxValue := 0.0
	labelWidth := 0
	for _, r := range rows {
		if r.Value > maxValue {
			maxValue = r.Value
		}
		if len(r.Label) > labelWidth {
			labelWidth = len(r.Label)
		}
	}
	if maxValue <= 0 {
		return SubtleStyle.Render("no data")
	}

	var sb strings.Builder
	for i, r := range rows {
		if i > 0 {
			sb.WriteByte('\n')
		}
		n := int(r.Value / maxValue * float64(width))
		if n < 1 && r.Value > 0 {
			n = 1
		}
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(r.Color)).Render(strings.Repeat("█", n))
		fmt.Fprintf(&sb, "%-*s %s %s", labelWidth, r.Label, bar, SubtleStyle.Render(r.Note))
	}
	return sb.String()
}

// CalendarHeatmap renders one month as a week grid with activity dots:
// red for expense days, green for income days, yellow for both.
func CalendarHeatmap(year int, month time.Month, flags map[string]analytics.DayActivity) string {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var sb strings.Builder
	sb.WriteString(SubtleStyle.Render("Mo Tu We Th Fr Sa Su"))
	sb.WriteByte('\n')

	// Monday-first column offset.
	offset := (int(first.Weekday()) + 6) % 7
	sb.WriteString(strings.Repeat("   ", offset))

	col := offset
	for day := 1; day <= daysInMonth; day++ {
		key := time.Date(year, month, day, 0, 0, 0, 0, time.Local).Format("2006-01-02")
		cell := fmt.Sprintf("%2d", day)
		switch f := flags[key]; {
		case f.HasIncome && f.HasExpense:
			cell = WarningStyle.Render(cell)
		case f.HasExpense:
			cell = ErrorStyle.Render(cell)
		case f.HasIncome:
			cell = SuccessStyle.Render(cell)
		default:
			cell = SubtleStyle.Render(cell)
		}
		sb.WriteString(cell)

		col++
		if col == 7 && day != daysInMonth {
			sb.WriteByte('\n')
			col = 0
		} else if day != daysInMonth {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// FlowDiagramText renders the flow layout as two proportional bar
// columns, income on the left and expense/savings on the right. The SVG
// export carries the full bezier geometry; this is the terminal
// approximation of the same layout.
func FlowDiagramText(l flowchart.Layout, money func(float64) string) string {
	if l.Empty {
		return SubtleStyle.Render("No data for this period")
	}

	left := columnText("Income", l.Left, l.Height, money)
	right := columnText("Expenses", l.Right, l.Height, money)
	link := SubtleStyle.Render("  ══▶  ")

	return lipgloss.JoinHorizontal(lipgloss.Top, left, link, right)
}

func columnText(title string, blocks []flowchart.Block, height float64, money func(float64) string) string {
	const rows = 12.0

	var sb strings.Builder
	sb.WriteString(TitleStyle.UnsetMargins().Render(title))
	for _, b := range blocks {
		n := int(b.Height / height * rows)
		if n < 1 {
			n = 1
		}
		bar := lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color)).Render(strings.Repeat("▆", n))
		fmt.Fprintf(&sb, "\n%s %s %s", bar, b.Label, SubtleStyle.Render(money(b.Amount)))
	}
	return sb.String()
}
