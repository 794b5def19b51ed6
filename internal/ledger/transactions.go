package ledger

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

// AddTransactionInput carries one new ledger entry. Day supplies only the
// calendar date; the stored timestamp picks up the current time of day.
type AddTransactionInput struct {
	Day      time.Time
	Type     model.TransactionType
	Category string
	Note     string
	Amount   decimal.Decimal
	WalletID uuid.UUID
}

// AddTransaction validates and appends one transaction. Direct entry of
// transfer-typed records is rejected; transfers go through Transfer so
// both legs are minted together.
func (s *Service) AddTransaction(in AddTransactionInput) (model.Transaction, error) {
	if in.Type == model.TypeTransfer {
		return model.Transaction{}, common.NewUserError("use the transfer operation to move money between wallets", common.ErrInvalidConfig)
	}
	if !in.Type.IsValid() {
		return model.Transaction{}, common.NewUserError(fmt.Sprintf("unknown transaction type %q", in.Type), common.ErrInvalidConfig)
	}
	if err := validateAmount(in.Amount); err != nil {
		return model.Transaction{}, err
	}

	var created model.Transaction
	err := s.store.Update(func(doc *model.AppData) error {
		if _, err := requireWallet(doc, in.WalletID); err != nil {
			return err
		}

		cat := doc.CategoryByName(in.Category)
		if cat == nil {
			return common.NewUserError(fmt.Sprintf("category %q does not exist", in.Category), common.ErrUnknownCategory)
		}
		if cat.Type != in.Type {
			return common.NewUserError(
				fmt.Sprintf("category %q is an %s category", in.Category, cat.Type),
				common.ErrCategoryTypeClash)
		}

		ts := s.entryTimestamp(in.Day)
		created = model.Transaction{
			ID:       nextTransactionID(doc, ts),
			Date:     ts,
			Type:     in.Type,
			Category: in.Category,
			Note:     in.Note,
			Amount:   in.Amount,
			WalletID: in.WalletID,
		}
		doc.Transactions = append(doc.Transactions, created)
		return nil
	})
	if err != nil {
		return model.Transaction{}, err
	}

	slog.Debug("transaction recorded", "id", created.ID, "type", created.Type, "category", created.Category)
	return created, nil
}

// DeleteTransaction removes one record. Records are immutable; deletion
// is the only way to undo an entry.
func (s *Service) DeleteTransaction(id int64) error {
	return s.store.Update(func(doc *model.AppData) error {
		for i, t := range doc.Transactions {
			if t.ID == id {
				doc.Transactions = append(doc.Transactions[:i], doc.Transactions[i+1:]...)
				return nil
			}
		}
		return common.NewUserError(fmt.Sprintf("transaction %d does not exist", id), common.ErrNotFound)
	})
}

// Transfer moves amount between two wallets by minting two linked
// transactions: an expense leg in the source and an income leg in the
// destination. Both legs share one timestamp and consecutive ids so they
// sort together, and both are appended in a single document save. Invalid
// targets are rejected before any mutation.
func (s *Service) Transfer(from, to uuid.UUID, amount decimal.Decimal, day time.Time, note string) (out, in model.Transaction, err error) {
	if err = validateAmount(amount); err != nil {
		return out, in, err
	}
	if to == uuid.Nil {
		return out, in, common.NewUserError("no destination wallet selected", common.ErrInvalidWallet)
	}
	if from == to {
		return out, in, common.NewUserError("cannot transfer a wallet into itself", common.ErrSameWallet)
	}

	err = s.store.Update(func(doc *model.AppData) error {
		if _, err := requireWallet(doc, from); err != nil {
			return err
		}
		if _, err := requireWallet(doc, to); err != nil {
			return err
		}

		ts := s.entryTimestamp(day)
		id := nextTransactionID(doc, ts)

		out = model.Transaction{
			ID:       id,
			Date:     ts,
			Type:     model.TypeExpense,
			Category: model.TransferCategory,
			Note:     note,
			Amount:   amount,
			WalletID: from,
		}
		in = model.Transaction{
			ID:       id + 1,
			Date:     ts,
			Type:     model.TypeIncome,
			Category: model.TransferCategory,
			Note:     note,
			Amount:   amount,
			WalletID: to,
		}
		doc.Transactions = append(doc.Transactions, out, in)
		return nil
	})
	if err != nil {
		return model.Transaction{}, model.Transaction{}, err
	}

	slog.Debug("transfer recorded", "from", from, "to", to, "amount", amount)
	return out, in, nil
}
