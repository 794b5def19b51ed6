package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletType separates everyday wallets from savings goals.
type WalletType string

const (
	// WalletStandard is an ordinary balance bucket.
	WalletStandard WalletType = "standard"
	// WalletGoal is a savings target; progress is tracked against TargetAmount.
	WalletGoal WalletType = "goal"
)

// IsValid reports whether the wallet type is a known value.
func (w WalletType) IsValid() bool {
	return w == WalletStandard || w == WalletGoal
}

// Wallet is an isolated balance bucket. Every transaction belongs to
// exactly one wallet; a wallet's balance is the signed sum of its
// transactions.
type Wallet struct {
	Name         string           `json:"name"`
	Type         WalletType       `json:"type"`
	TargetAmount *decimal.Decimal `json:"targetAmount,omitempty"`
	ID           uuid.UUID        `json:"id"`
}

// GoalProgress returns the percentage of the savings target covered by
// balance, clamped to [0, 100]. Non-goal wallets and wallets without a
// positive target report zero.
func (w Wallet) GoalProgress(balance decimal.Decimal) float64 {
	if w.Type != WalletGoal || w.TargetAmount == nil || !w.TargetAmount.IsPositive() {
		return 0
	}
	pct, _ := balance.Div(*w.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
