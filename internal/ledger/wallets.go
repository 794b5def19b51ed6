package ledger

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

// CreateWallet adds a new balance bucket. Goal wallets carry the savings
// target their progress is measured against.
func (s *Service) CreateWallet(name string, wtype model.WalletType, target *decimal.Decimal) (model.Wallet, error) {
	if name == "" {
		return model.Wallet{}, common.NewUserError("wallet name cannot be empty", common.ErrInvalidWallet)
	}
	if !wtype.IsValid() {
		return model.Wallet{}, common.NewUserError(fmt.Sprintf("unknown wallet type %q", wtype), common.ErrInvalidWallet)
	}
	if wtype == model.WalletGoal && (target == nil || !target.IsPositive()) {
		return model.Wallet{}, common.NewUserError("goal wallets need a positive target amount", common.ErrInvalidWallet)
	}
	if wtype == model.WalletStandard {
		target = nil
	}

	wallet := model.Wallet{
		ID:           uuid.New(),
		Name:         name,
		Type:         wtype,
		TargetAmount: target,
	}

	err := s.store.Update(func(doc *model.AppData) error {
		doc.Wallets = append(doc.Wallets, wallet)
		return nil
	})
	if err != nil {
		return model.Wallet{}, err
	}
	return wallet, nil
}

// DeleteWallet removes an empty wallet. Wallets with transactions must be
// cleared first so no record is ever orphaned.
func (s *Service) DeleteWallet(id uuid.UUID) error {
	return s.store.Update(func(doc *model.AppData) error {
		if _, err := requireWallet(doc, id); err != nil {
			return err
		}
		if len(doc.WalletTransactions(id)) > 0 {
			return common.NewUserError("wallet still has transactions; delete them first", common.ErrWalletNotEmpty)
		}

		for i := range doc.Wallets {
			if doc.Wallets[i].ID == id {
				doc.Wallets = append(doc.Wallets[:i], doc.Wallets[i+1:]...)
				break
			}
		}
		if doc.CurrentWalletID == id && len(doc.Wallets) > 0 {
			doc.CurrentWalletID = doc.Wallets[0].ID
		}
		return nil
	})
}

// SelectWallet switches the active wallet new entries default into.
func (s *Service) SelectWallet(id uuid.UUID) error {
	return s.store.Update(func(doc *model.AppData) error {
		if _, err := requireWallet(doc, id); err != nil {
			return err
		}
		doc.CurrentWalletID = id
		return nil
	})
}
