package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/model"
)

func testDoc() model.AppData {
	walletID := uuid.New()
	return model.AppData{
		Wallets:         []model.Wallet{{ID: walletID, Name: "Cash", Type: model.WalletStandard}},
		CurrentWalletID: walletID,
		Transactions: []model.Transaction{
			{
				ID: 1, WalletID: walletID, Type: model.TypeIncome,
				Category: "Salary", Amount: decimal.NewFromInt(1000),
				Date: time.Date(2026, 8, 3, 9, 0, 0, 0, time.Local),
			},
			{
				ID: 2, WalletID: walletID, Type: model.TypeExpense,
				Category: "Food", Amount: decimal.NewFromInt(200),
				Date: time.Date(2026, 8, 10, 12, 0, 0, 0, time.Local),
			},
		},
		Categories: []model.CategoryItem{
			{ID: uuid.New(), Name: "Salary", Type: model.TypeIncome, Color: "#4ECDC4"},
			{ID: uuid.New(), Name: "Food", Type: model.TypeExpense, Color: "#FF6B6B"},
		},
		Settings: model.Settings{
			Currency:     "USD",
			BudgetLimits: map[string]decimal.Decimal{"Food": decimal.NewFromInt(220)},
		},
	}
}

var tuiNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.Local)

func TestNewModelDerivesFigures(t *testing.T) {
	m := NewModel(testDoc(), tuiNow)

	assert.True(t, m.balance.Equal(decimal.NewFromInt(800)))
	assert.True(t, m.summary.TotalIncome.Equal(decimal.NewFromInt(1000)))
	require.Len(t, m.alerts, 1, "200 of 220 is over the 80% threshold")
	assert.Equal(t, "Food", m.alerts[0].Category)
	assert.False(t, m.layout.Empty)
}

func TestTabCycling(t *testing.T) {
	m := NewModel(testDoc(), tuiNow)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, TabCalendar, m.tab)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, TabFlow, m.tab)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	assert.Equal(t, TabOverview, m.tab, "tabs wrap around")

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(Model)
	assert.Equal(t, TabFlow, m.tab)
}

func TestQuitKey(t *testing.T) {
	m := NewModel(testDoc(), tuiNow)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestViewsRender(t *testing.T) {
	m := NewModel(testDoc(), tuiNow)

	overview := m.View()
	assert.Contains(t, overview, "Cash")
	assert.Contains(t, overview, "Runway")

	m.tab = TabCalendar
	assert.Contains(t, m.View(), "August 2026")

	m.tab = TabFlow
	assert.Contains(t, m.View(), "Salary")
}

func TestPrivacyModeMasksOverview(t *testing.T) {
	doc := testDoc()
	doc.Settings.PrivacyMode = true

	m := NewModel(doc, tuiNow)
	assert.NotContains(t, m.View(), "800.00")
}
