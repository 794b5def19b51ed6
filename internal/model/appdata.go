package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppData is the root aggregate owning all persisted state. The whole
// document is serialized on every mutation; there is no partial
// persistence.
type AppData struct {
	Settings        Settings       `json:"settings"`
	Profile         Profile        `json:"profile"`
	Wallets         []Wallet       `json:"wallets"`
	Transactions    []Transaction  `json:"transactions"`
	Debts           []Debt         `json:"debts"`
	Categories      []CategoryItem `json:"categories"`
	CurrentWalletID uuid.UUID      `json:"currentWalletId"`
}

// WalletByID returns the wallet with the given id, or nil.
func (d *AppData) WalletByID(id uuid.UUID) *Wallet {
	for i := range d.Wallets {
		if d.Wallets[i].ID == id {
			return &d.Wallets[i]
		}
	}
	return nil
}

// CategoryByName returns the category with the given name, or nil. The
// name is the foreign key used by transactions.
func (d *AppData) CategoryByName(name string) *CategoryItem {
	for i := range d.Categories {
		if d.Categories[i].Name == name {
			return &d.Categories[i]
		}
	}
	return nil
}

// WalletTransactions returns the transactions belonging to one wallet, in
// stored order.
func (d *AppData) WalletTransactions(walletID uuid.UUID) []Transaction {
	var out []Transaction
	for _, t := range d.Transactions {
		if t.WalletID == walletID {
			out = append(out, t)
		}
	}
	return out
}

// WalletBalance is the signed sum of a wallet's transactions.
func (d *AppData) WalletBalance(walletID uuid.UUID) decimal.Decimal {
	var balance decimal.Decimal
	for _, t := range d.Transactions {
		if t.WalletID == walletID {
			balance = balance.Add(t.Signed())
		}
	}
	return balance
}

// CategoryColors builds the name → color lookup used by chart renderers.
func (d *AppData) CategoryColors() map[string]string {
	colors := make(map[string]string, len(d.Categories))
	for _, c := range d.Categories {
		colors[c.Name] = c.Color
	}
	return colors
}
