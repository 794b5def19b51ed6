package ledger

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
)

// AddCategory registers a new user category. Names are the foreign key
// transactions point at, so they must be unique.
func (s *Service) AddCategory(name, color string, ctype model.TransactionType) (model.CategoryItem, error) {
	if name == "" {
		return model.CategoryItem{}, common.NewUserError("category name cannot be empty", common.ErrInvalidConfig)
	}
	if ctype != model.TypeIncome && ctype != model.TypeExpense {
		return model.CategoryItem{}, common.NewUserError("categories are either income or expense", common.ErrInvalidConfig)
	}

	cat := model.CategoryItem{
		ID:    uuid.New(),
		Name:  name,
		Color: color,
		Type:  ctype,
	}

	err := s.store.Update(func(doc *model.AppData) error {
		if doc.CategoryByName(name) != nil {
			return common.NewUserError(fmt.Sprintf("category %q already exists", name), common.ErrInvalidConfig)
		}
		doc.Categories = append(doc.Categories, cat)
		return nil
	})
	if err != nil {
		return model.CategoryItem{}, err
	}
	return cat, nil
}

// DeleteCategory removes a category. System categories are protected,
// and so is any category still referenced by a transaction. The check is
// a name match against the live transaction list, since transactions
// reference categories by name.
func (s *Service) DeleteCategory(name string) error {
	return s.store.Update(func(doc *model.AppData) error {
		cat := doc.CategoryByName(name)
		if cat == nil {
			return common.NewUserError(fmt.Sprintf("category %q does not exist", name), common.ErrNotFound)
		}
		if cat.IsSystem {
			return common.NewUserError(fmt.Sprintf("%q is a system category and cannot be deleted", name), common.ErrSystemCategory)
		}
		for _, t := range doc.Transactions {
			if t.Category == name {
				return common.NewUserError(
					fmt.Sprintf("category %q is used by existing transactions", name),
					common.ErrCategoryInUse)
			}
		}

		for i := range doc.Categories {
			if doc.Categories[i].Name == name {
				doc.Categories = append(doc.Categories[:i], doc.Categories[i+1:]...)
				break
			}
		}
		return nil
	})
}

// SetBudgetLimit configures the monthly ceiling for a category; a zero
// limit clears it.
func (s *Service) SetBudgetLimit(category string, limit decimal.Decimal) error {
	if limit.IsNegative() {
		return common.NewUserError("budget limit cannot be negative", common.ErrInvalidAmount)
	}
	return s.store.Update(func(doc *model.AppData) error {
		if doc.CategoryByName(category) == nil {
			return common.NewUserError(fmt.Sprintf("category %q does not exist", category), common.ErrUnknownCategory)
		}
		if limit.IsZero() {
			delete(doc.Settings.BudgetLimits, category)
			return nil
		}
		doc.Settings.BudgetLimits[category] = limit
		return nil
	})
}
