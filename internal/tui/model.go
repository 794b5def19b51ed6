// Package tui implements the read-only dashboard views over the ledger.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/analytics"
	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/flowchart"
	"github.com/tallyhq/tally/internal/model"
)

// Tab identifies one dashboard view.
type Tab int

// Dashboard tabs, in cycle order.
const (
	TabOverview Tab = iota
	TabCalendar
	TabFlow
	tabCount
)

func (t Tab) String() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabCalendar:
		return "Calendar"
	case TabFlow:
		return "Flow"
	}
	return "?"
}

// Model is the bubbletea model for the dashboard. It is a pure view:
// every derived figure is computed once from the document snapshot taken
// at startup.
type Model struct {
	now     time.Time
	money   cli.MoneyFormatter
	wallet  model.Wallet
	balance decimal.Decimal
	summary analytics.Summary
	runway  analytics.Runway
	alerts  []analytics.BudgetAlert
	flags   map[string]analytics.DayActivity
	layout  flowchart.Layout
	keys    KeyMap
	tab     Tab
	width   int
	height  int
}

// NewModel builds the dashboard from one document snapshot, scoped to the
// currently selected wallet and the current month.
func NewModel(doc model.AppData, now time.Time) Model {
	wallet := doc.WalletByID(doc.CurrentWalletID)
	if wallet == nil && len(doc.Wallets) > 0 {
		wallet = &doc.Wallets[0]
	}
	var w model.Wallet
	if wallet != nil {
		w = *wallet
	}

	txns := doc.WalletTransactions(w.ID)
	balance := doc.WalletBalance(w.ID)
	summary := analytics.Summarize(txns, analytics.Month(now.Year(), now.Month()))

	return Model{
		now:     now,
		money:   cli.MoneyFormatter{Currency: doc.Settings.Currency, Privacy: doc.Settings.PrivacyMode},
		wallet:  w,
		balance: balance,
		summary: summary,
		runway:  analytics.EstimateRunway(balance, txns, now),
		alerts:  analytics.BudgetAlerts(summary.ExpenseByCategory, doc.Settings.BudgetLimits),
		flags:   analytics.DayFlags(txns),
		layout:  flowchart.New(summary, doc.CategoryColors(), 600, 400),
		keys:    DefaultKeyMap(),
		width:   80,
		height:  24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % tabCount
		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + tabCount - 1) % tabCount
		}
	}
	return m, nil
}
