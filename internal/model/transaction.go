// Package model defines the core domain types shared across the application.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	// TypeIncome represents money entering a wallet.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money leaving a wallet.
	TypeExpense TransactionType = "expense"
	// TypeTransfer is accepted from user input but never stored directly;
	// a transfer is persisted as an expense leg plus an income leg.
	TypeTransfer TransactionType = "transfer"
)

// IsValid reports whether the type is one of the known values.
func (t TransactionType) IsValid() bool {
	switch t {
	case TypeIncome, TypeExpense, TypeTransfer:
		return true
	}
	return false
}

// Transaction is a single immutable ledger entry. Records are only ever
// appended or deleted, never edited in place.
type Transaction struct {
	Date     time.Time       `json:"date"`
	Category string          `json:"category"`
	Note     string          `json:"note,omitempty"`
	Type     TransactionType `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	WalletID uuid.UUID       `json:"walletId"`
	ID       int64           `json:"id"`
}

// DateKey returns the calendar-day form used for day bucketing and
// calendar dot matching.
func (t Transaction) DateKey() string {
	return t.Date.Format("2006-01-02")
}

// OnDay reports whether the transaction falls on the given YYYY-MM-DD day.
// Matching is a prefix comparison against the stored date form, so callers
// must pass the same lexical shape used by DateKey.
func (t Transaction) OnDay(day string) bool {
	return strings.HasPrefix(t.DateKey(), day)
}

// Signed returns the amount with the sign implied by the transaction type:
// income positive, expense negative.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
