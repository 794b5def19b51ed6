package model

import "github.com/google/uuid"

// CategoryItem is a user-configurable transaction category. Transactions
// reference categories by Name rather than by ID, so renames do not
// cascade to history; this matches the persisted document format.
type CategoryItem struct {
	Name     string          `json:"name"`
	Color    string          `json:"color"`
	Type     TransactionType `json:"type"`
	ID       uuid.UUID       `json:"id"`
	IsSystem bool            `json:"isSystem"`
}

// TransferCategory is the reserved system category attached to both legs
// of a transfer.
const TransferCategory = "Transfer"

// Reserved system category names for debt settlement transactions.
const (
	LoanPaymentCategory = "Loan Payment"
	LoanReceiptCategory = "Loan Receipt"
)
