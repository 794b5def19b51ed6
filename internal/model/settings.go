package model

import "github.com/shopspring/decimal"

// Settings holds process-wide user configuration. BudgetLimits maps a
// category name to its monthly spending ceiling.
type Settings struct {
	BudgetLimits map[string]decimal.Decimal `json:"budgetLimits"`
	Currency     string                     `json:"currency"`
	MonthlyGoal  decimal.Decimal            `json:"monthlyGoal"`
	DailyGoal    decimal.Decimal            `json:"dailyGoal"`
	DarkMode     bool                       `json:"darkMode"`
	PrivacyMode  bool                       `json:"privacyMode"`
}

// Profile holds display-only identity information.
type Profile struct {
	Name string `json:"name"`
}
