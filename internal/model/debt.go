package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtType records which direction an informal IOU points.
type DebtType string

const (
	// DebtIOwe means the user owes the named person.
	DebtIOwe DebtType = "i_owe"
	// DebtOwesMe means the named person owes the user.
	DebtOwesMe DebtType = "owes_me"
)

// IsValid reports whether the debt type is a known value.
func (d DebtType) IsValid() bool {
	return d == DebtIOwe || d == DebtOwesMe
}

// Debt is a person-level IOU. It toggles between active and settled any
// number of times before deletion.
type Debt struct {
	Person    string          `json:"person"`
	Note      string          `json:"note,omitempty"`
	Type      DebtType        `json:"type"`
	DueDate   *time.Time      `json:"dueDate,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	ID        uuid.UUID       `json:"id"`
	IsSettled bool            `json:"isSettled"`
}

// DebtSummary aggregates the unsettled side of the ledger.
type DebtSummary struct {
	TotalIOwe   decimal.Decimal
	TotalOwesMe decimal.Decimal
}

// Net returns what the world owes the user minus what the user owes the
// world.
func (s DebtSummary) Net() decimal.Decimal {
	return s.TotalOwesMe.Sub(s.TotalIOwe)
}

// SummarizeDebts totals unsettled debts by direction.
func SummarizeDebts(debts []Debt) DebtSummary {
	var s DebtSummary
	for _, d := range debts {
		if d.IsSettled {
			continue
		}
		switch d.Type {
		case DebtIOwe:
			s.TotalIOwe = s.TotalIOwe.Add(d.Amount)
		case DebtOwesMe:
			s.TotalOwesMe = s.TotalOwesMe.Add(d.Amount)
		}
	}
	return s
}
