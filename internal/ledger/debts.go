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

// AddDebtInput carries a new IOU record.
type AddDebtInput struct {
	Person  string
	Note    string
	Type    model.DebtType
	DueDate *time.Time
	Amount  decimal.Decimal
}

// AddDebt records a new active debt.
func (s *Service) AddDebt(in AddDebtInput) (model.Debt, error) {
	if in.Person == "" {
		return model.Debt{}, common.NewUserError("debt needs a person", common.ErrInvalidConfig)
	}
	if !in.Type.IsValid() {
		return model.Debt{}, common.NewUserError(fmt.Sprintf("unknown debt type %q", in.Type), common.ErrInvalidConfig)
	}
	if err := validateAmount(in.Amount); err != nil {
		return model.Debt{}, err
	}

	debt := model.Debt{
		ID:      uuid.New(),
		Person:  in.Person,
		Note:    in.Note,
		Type:    in.Type,
		DueDate: in.DueDate,
		Amount:  in.Amount,
	}

	err := s.store.Update(func(doc *model.AppData) error {
		doc.Debts = append(doc.Debts, debt)
		return nil
	})
	if err != nil {
		return model.Debt{}, err
	}
	return debt, nil
}

// ToggleSettled flips a debt between active and settled. Settling with
// recordTransaction emits an offsetting transaction in the currently
// selected wallet: an expense when the user owed, income when they were
// owed. Un-settling never retracts a previously emitted transaction;
// the books stay double-counted if the user toggles back and forth, so
// the asymmetry is logged loudly instead of silently reversed.
func (s *Service) ToggleSettled(id uuid.UUID, recordTransaction bool) (model.Debt, error) {
	var toggled model.Debt
	err := s.store.Update(func(doc *model.AppData) error {
		var debt *model.Debt
		for i := range doc.Debts {
			if doc.Debts[i].ID == id {
				debt = &doc.Debts[i]
				break
			}
		}
		if debt == nil {
			return common.NewUserError(fmt.Sprintf("debt %s does not exist", id), common.ErrNotFound)
		}

		debt.IsSettled = !debt.IsSettled
		toggled = *debt

		if !debt.IsSettled {
			slog.Warn("debt un-settled; any settlement transaction it created remains on the books",
				"debt", debt.ID, "person", debt.Person)
			return nil
		}
		if !recordTransaction {
			return nil
		}

		ttype := model.TypeExpense
		category := model.LoanPaymentCategory
		if debt.Type == model.DebtOwesMe {
			ttype = model.TypeIncome
			category = model.LoanReceiptCategory
		}

		ts := s.now()
		doc.Transactions = append(doc.Transactions, model.Transaction{
			ID:       nextTransactionID(doc, ts),
			Date:     ts,
			Type:     ttype,
			Category: category,
			Note:     fmt.Sprintf("Settled with %s", debt.Person),
			Amount:   debt.Amount,
			WalletID: doc.CurrentWalletID,
		})
		return nil
	})
	if err != nil {
		return model.Debt{}, err
	}
	return toggled, nil
}

// DeleteDebt removes a record permanently. Callers confirm first; there
// is no undo.
func (s *Service) DeleteDebt(id uuid.UUID) error {
	return s.store.Update(func(doc *model.AppData) error {
		for i, d := range doc.Debts {
			if d.ID == id {
				doc.Debts = append(doc.Debts[:i], doc.Debts[i+1:]...)
				return nil
			}
		}
		return common.NewUserError(fmt.Sprintf("debt %s does not exist", id), common.ErrNotFound)
	})
}
