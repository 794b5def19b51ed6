package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tallyhq/tally/internal/cli"
)

var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(cli.PrimaryColor).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(cli.SubtleColor).
				Padding(0, 2)
)

// View implements tea.Model.
func (m Model) View() string {
	var body string
	switch m.tab {
	case TabOverview:
		body = m.overviewView()
	case TabCalendar:
		body = m.calendarView()
	case TabFlow:
		body = m.flowView()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.tabBar(),
		body,
		cli.SubtleStyle.Render("tab: switch view · q: quit"),
	)
}

func (m Model) tabBar() string {
	tabs := make([]string, 0, int(tabCount))
	for t := TabOverview; t < tabCount; t++ {
		style := inactiveTabStyle
		if t == m.tab {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(t.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) overviewView() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Balance: %s\n", m.money.Format(m.balance))
	fmt.Fprintf(&sb, "This month: %s in · %s out\n",
		cli.SuccessStyle.Render(m.money.Format(m.summary.TotalIncome)),
		cli.ErrorStyle.Render(m.money.Format(m.summary.TotalExpense)))
	fmt.Fprintf(&sb, "Runway: %s\n", m.runway.Display())

	if len(m.alerts) > 0 {
		sb.WriteString("\n" + cli.WarningStyle.Render("Budget alerts") + "\n")
		for _, a := range m.alerts {
			line := fmt.Sprintf("%s: %s of %s (%.0f%%)",
				a.Category, m.money.Format(a.Spent), m.money.Format(a.Limit), a.Ratio*100)
			if a.OverLimit() {
				line = cli.ErrorStyle.Render(line)
			}
			sb.WriteString(line + "\n")
		}
	}

	return cli.RenderBox(cli.WalletIcon+" "+m.wallet.Name, strings.TrimRight(sb.String(), "\n"))
}

func (m Model) calendarView() string {
	heatmap := cli.CalendarHeatmap(m.now.Year(), m.now.Month(), m.flags)
	title := fmt.Sprintf("%s %d", m.now.Month(), m.now.Year())
	return cli.RenderBox(title, heatmap)
}

func (m Model) flowView() string {
	diagram := cli.FlowDiagramText(m.layout, func(v float64) string {
		if m.money.Privacy {
			return ""
		}
		return fmt.Sprintf("%.2f", v)
	})
	return cli.RenderBox(cli.ChartIcon+" Income → Expenses", diagram)
}
