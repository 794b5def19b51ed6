package storage

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/model"
)

type seedCategory struct {
	name     string
	color    string
	ctype    model.TransactionType
	isSystem bool
}

var seedCategories = []seedCategory{
	{"Salary", "#4ECDC4", model.TypeIncome, false},
	{"Freelance", "#95E1D3", model.TypeIncome, false},
	{"Gifts", "#F38181", model.TypeIncome, false},
	{"Food", "#FF6B6B", model.TypeExpense, false},
	{"Transport", "#FFE66D", model.TypeExpense, false},
	{"Housing", "#A8D8EA", model.TypeExpense, false},
	{"Shopping", "#AA96DA", model.TypeExpense, false},
	{"Entertainment", "#FCBAD3", model.TypeExpense, false},
	{"Health", "#B5EAD7", model.TypeExpense, false},
	{"Utilities", "#C7CEEA", model.TypeExpense, false},
	{model.TransferCategory, "#999999", model.TypeExpense, true},
	{model.LoanPaymentCategory, "#777777", model.TypeExpense, true},
	{model.LoanReceiptCategory, "#777777", model.TypeIncome, true},
}

// DefaultDocument builds the seed state for a fresh install: one standard
// wallet and the stock category set. It is also the merge base for
// documents written by older versions, so new settings fields pick up
// their defaults here.
func DefaultDocument() model.AppData {
	wallet := model.Wallet{
		ID:   uuid.New(),
		Name: "Cash",
		Type: model.WalletStandard,
	}

	categories := make([]model.CategoryItem, 0, len(seedCategories))
	for _, c := range seedCategories {
		categories = append(categories, model.CategoryItem{
			ID:       uuid.New(),
			Name:     c.name,
			Color:    c.color,
			Type:     c.ctype,
			IsSystem: c.isSystem,
		})
	}

	return model.AppData{
		Wallets:         []model.Wallet{wallet},
		Transactions:    []model.Transaction{},
		Debts:           []model.Debt{},
		Categories:      categories,
		CurrentWalletID: wallet.ID,
		Settings: model.Settings{
			Currency:     "USD",
			BudgetLimits: map[string]decimal.Decimal{},
			MonthlyGoal:  decimal.Zero,
			DailyGoal:    decimal.Zero,
		},
	}
}
