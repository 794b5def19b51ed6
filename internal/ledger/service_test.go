package ledger

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/common"
	"github.com/tallyhq/tally/internal/model"
	"github.com/tallyhq/tally/internal/storage"
)

var testClock = time.Date(2026, 8, 30, 14, 35, 20, 0, time.Local)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	return NewService(store, WithClock(func() time.Time { return testClock }))
}

func addExpense(t *testing.T, s *Service, category string, amount float64) model.Transaction {
	t.Helper()
	tx, err := s.AddTransaction(AddTransactionInput{
		Day:      testClock,
		Type:     model.TypeExpense,
		Category: category,
		Amount:   decimal.NewFromFloat(amount),
		WalletID: s.Data().CurrentWalletID,
	})
	require.NoError(t, err)
	return tx
}

func TestAddTransactionCombinesDateAndWallClock(t *testing.T) {
	s := newTestService(t)

	backdated := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	tx, err := s.AddTransaction(AddTransactionInput{
		Day:      backdated,
		Type:     model.TypeExpense,
		Category: "Food",
		Amount:   decimal.NewFromInt(10),
		WalletID: s.Data().CurrentWalletID,
	})
	require.NoError(t, err)

	// Calendar day from the user, time of day from the clock.
	assert.Equal(t, "2026-08-01", tx.DateKey())
	assert.Equal(t, 14, tx.Date.Hour())
	assert.Equal(t, 35, tx.Date.Minute())
}

func TestAddTransactionValidation(t *testing.T) {
	s := newTestService(t)
	wallet := s.Data().CurrentWalletID

	tests := []struct {
		name    string
		in      AddTransactionInput
		wantErr error
	}{
		{
			name: "zero amount",
			in: AddTransactionInput{
				Day: testClock, Type: model.TypeExpense, Category: "Food",
				Amount: decimal.Zero, WalletID: wallet,
			},
			wantErr: common.ErrInvalidAmount,
		},
		{
			name: "unknown category",
			in: AddTransactionInput{
				Day: testClock, Type: model.TypeExpense, Category: "Yachts",
				Amount: decimal.NewFromInt(5), WalletID: wallet,
			},
			wantErr: common.ErrUnknownCategory,
		},
		{
			name: "category type clash",
			in: AddTransactionInput{
				Day: testClock, Type: model.TypeIncome, Category: "Food",
				Amount: decimal.NewFromInt(5), WalletID: wallet,
			},
			wantErr: common.ErrCategoryTypeClash,
		},
		{
			name: "missing wallet",
			in: AddTransactionInput{
				Day: testClock, Type: model.TypeExpense, Category: "Food",
				Amount: decimal.NewFromInt(5), WalletID: uuid.New(),
			},
			wantErr: common.ErrInvalidWallet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.AddTransaction(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, s.Data().Transactions, "failed adds must not mutate state")
		})
	}
}

func TestAddTransactionRejectsDirectTransferType(t *testing.T) {
	s := newTestService(t)
	_, err := s.AddTransaction(AddTransactionInput{
		Day: testClock, Type: model.TypeTransfer, Category: model.TransferCategory,
		Amount: decimal.NewFromInt(5), WalletID: s.Data().CurrentWalletID,
	})
	assert.Error(t, err)
}

func TestSameInstantEntriesGetDistinctIDs(t *testing.T) {
	s := newTestService(t)

	first := addExpense(t, s, "Food", 1)
	second := addExpense(t, s, "Food", 2)

	// The frozen clock forces an id collision; creation order must win.
	assert.Greater(t, second.ID, first.ID)
}

func TestTransferConservesMoney(t *testing.T) {
	s := newTestService(t)
	source := s.Data().CurrentWalletID
	dest, err := s.CreateWallet("Savings", model.WalletStandard, nil)
	require.NoError(t, err)

	amount := decimal.NewFromInt(250)
	out, in, err := s.Transfer(source, dest.ID, amount, testClock, "stash")
	require.NoError(t, err)

	doc := s.Data()
	require.Len(t, doc.Transactions, 2)

	assert.Equal(t, model.TypeExpense, out.Type)
	assert.Equal(t, source, out.WalletID)
	assert.Equal(t, model.TypeIncome, in.Type)
	assert.Equal(t, dest.ID, in.WalletID)
	assert.Equal(t, model.TransferCategory, out.Category)
	assert.Equal(t, model.TransferCategory, in.Category)

	// Legs share one timestamp and take consecutive ids.
	assert.True(t, out.Date.Equal(in.Date))
	assert.Equal(t, out.ID+1, in.ID)

	// Source drops by X, destination rises by X, total unchanged.
	assert.True(t, doc.WalletBalance(source).Equal(amount.Neg()))
	assert.True(t, doc.WalletBalance(dest.ID).Equal(amount))
	total := doc.WalletBalance(source).Add(doc.WalletBalance(dest.ID))
	assert.True(t, total.IsZero())
}

func TestTransferRejectsInvalidTargets(t *testing.T) {
	s := newTestService(t)
	source := s.Data().CurrentWalletID

	_, _, err := s.Transfer(source, uuid.Nil, decimal.NewFromInt(10), testClock, "")
	assert.ErrorIs(t, err, common.ErrInvalidWallet)

	_, _, err = s.Transfer(source, source, decimal.NewFromInt(10), testClock, "")
	assert.ErrorIs(t, err, common.ErrSameWallet)

	assert.Empty(t, s.Data().Transactions, "rejected transfers must not mutate state")
}

func TestDeleteTransaction(t *testing.T) {
	s := newTestService(t)
	tx := addExpense(t, s, "Food", 10)

	require.NoError(t, s.DeleteTransaction(tx.ID))
	assert.Empty(t, s.Data().Transactions)

	assert.ErrorIs(t, s.DeleteTransaction(tx.ID), common.ErrNotFound)
}

func TestDeleteCategoryGuards(t *testing.T) {
	s := newTestService(t)

	// Unreferenced user category deletes cleanly.
	_, err := s.AddCategory("Hobbies", "#ABCDEF", model.TypeExpense)
	require.NoError(t, err)
	require.NoError(t, s.DeleteCategory("Hobbies"))
	assert.Nil(t, findCategory(s, "Hobbies"))

	// A referenced category is rejected and the list is unchanged.
	addExpense(t, s, "Food", 12)
	before := len(s.Data().Categories)
	err = s.DeleteCategory("Food")
	assert.ErrorIs(t, err, common.ErrCategoryInUse)
	assert.Len(t, s.Data().Categories, before)

	// System categories never delete.
	err = s.DeleteCategory(model.TransferCategory)
	assert.ErrorIs(t, err, common.ErrSystemCategory)
}

func findCategory(s *Service, name string) *model.CategoryItem {
	doc := s.Data()
	return doc.CategoryByName(name)
}

func TestSettleDebtEmitsTransaction(t *testing.T) {
	s := newTestService(t)

	debt, err := s.AddDebt(AddDebtInput{
		Person: "Sam",
		Type:   model.DebtIOwe,
		Amount: decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	settled, err := s.ToggleSettled(debt.ID, true)
	require.NoError(t, err)
	assert.True(t, settled.IsSettled)

	doc := s.Data()
	require.Len(t, doc.Transactions, 1)
	tx := doc.Transactions[0]
	assert.Equal(t, model.TypeExpense, tx.Type)
	assert.Equal(t, model.LoanPaymentCategory, tx.Category)
	assert.Equal(t, doc.CurrentWalletID, tx.WalletID)
	assert.True(t, tx.Amount.Equal(decimal.NewFromInt(40)))
}

func TestSettleOwesMeEmitsIncome(t *testing.T) {
	s := newTestService(t)

	debt, err := s.AddDebt(AddDebtInput{
		Person: "Alex",
		Type:   model.DebtOwesMe,
		Amount: decimal.NewFromInt(25),
	})
	require.NoError(t, err)

	_, err = s.ToggleSettled(debt.ID, true)
	require.NoError(t, err)

	doc := s.Data()
	require.Len(t, doc.Transactions, 1)
	assert.Equal(t, model.TypeIncome, doc.Transactions[0].Type)
	assert.Equal(t, model.LoanReceiptCategory, doc.Transactions[0].Category)
}

func TestUnsettleDoesNotRetractTransaction(t *testing.T) {
	s := newTestService(t)

	debt, err := s.AddDebt(AddDebtInput{
		Person: "Sam",
		Type:   model.DebtIOwe,
		Amount: decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	_, err = s.ToggleSettled(debt.ID, true)
	require.NoError(t, err)
	unsettled, err := s.ToggleSettled(debt.ID, true)
	require.NoError(t, err)

	assert.False(t, unsettled.IsSettled)
	assert.Len(t, s.Data().Transactions, 1, "un-settling leaves the settlement transaction on the books")
}

func TestSettleWithoutRecordingSkipsTransaction(t *testing.T) {
	s := newTestService(t)

	debt, err := s.AddDebt(AddDebtInput{
		Person: "Sam",
		Type:   model.DebtIOwe,
		Amount: decimal.NewFromInt(40),
	})
	require.NoError(t, err)

	_, err = s.ToggleSettled(debt.ID, false)
	require.NoError(t, err)
	assert.Empty(t, s.Data().Transactions)
}

func TestDebtSummary(t *testing.T) {
	s := newTestService(t)

	_, err := s.AddDebt(AddDebtInput{Person: "A", Type: model.DebtIOwe, Amount: decimal.NewFromInt(30)})
	require.NoError(t, err)
	_, err = s.AddDebt(AddDebtInput{Person: "B", Type: model.DebtOwesMe, Amount: decimal.NewFromInt(100)})
	require.NoError(t, err)
	settledDebt, err := s.AddDebt(AddDebtInput{Person: "C", Type: model.DebtOwesMe, Amount: decimal.NewFromInt(999)})
	require.NoError(t, err)
	_, err = s.ToggleSettled(settledDebt.ID, false)
	require.NoError(t, err)

	sum := model.SummarizeDebts(s.Data().Debts)
	assert.True(t, sum.TotalIOwe.Equal(decimal.NewFromInt(30)))
	assert.True(t, sum.TotalOwesMe.Equal(decimal.NewFromInt(100)), "settled debts stay out of the totals")
	assert.True(t, sum.Net().Equal(decimal.NewFromInt(70)))
}

func TestDeleteWalletGuard(t *testing.T) {
	s := newTestService(t)

	w, err := s.CreateWallet("Side", model.WalletStandard, nil)
	require.NoError(t, err)

	_, _, err = s.Transfer(s.Data().CurrentWalletID, w.ID, decimal.NewFromInt(5), testClock, "")
	require.NoError(t, err)

	assert.ErrorIs(t, s.DeleteWallet(w.ID), common.ErrWalletNotEmpty)
}

func TestCreateGoalWalletRequiresTarget(t *testing.T) {
	s := newTestService(t)

	_, err := s.CreateWallet("Trip", model.WalletGoal, nil)
	assert.Error(t, err)

	target := decimal.NewFromInt(2000)
	w, err := s.CreateWallet("Trip", model.WalletGoal, &target)
	require.NoError(t, err)
	require.NotNil(t, w.TargetAmount)

	assert.InDelta(t, 25.0, w.GoalProgress(decimal.NewFromInt(500)), 0.001)
	assert.InDelta(t, 100.0, w.GoalProgress(decimal.NewFromInt(99999)), 0.001)
	assert.InDelta(t, 0.0, w.GoalProgress(decimal.NewFromInt(-10)), 0.001)
}

func TestSetBudgetLimit(t *testing.T) {
	s := newTestService(t)

	require.NoError(t, s.SetBudgetLimit("Food", decimal.NewFromInt(400)))
	limits := s.Data().Settings.BudgetLimits
	assert.True(t, limits["Food"].Equal(decimal.NewFromInt(400)))

	assert.ErrorIs(t, s.SetBudgetLimit("Yachts", decimal.NewFromInt(1)), common.ErrUnknownCategory)

	require.NoError(t, s.SetBudgetLimit("Food", decimal.Zero))
	_, ok := s.Data().Settings.BudgetLimits["Food"]
	assert.False(t, ok)
}

func TestSettings(t *testing.T) {
	s := newTestService(t)

	require.NoError(t, s.SetCurrency("eur"))
	assert.Equal(t, "EUR", s.Data().Settings.Currency, "codes are normalized to upper case")

	assert.Error(t, s.SetCurrency("euros"))
	assert.Equal(t, "EUR", s.Data().Settings.Currency)

	require.NoError(t, s.SetPrivacyMode(true))
	assert.True(t, s.Data().Settings.PrivacyMode)

	require.NoError(t, s.SetProfileName("Alex"))
	assert.Equal(t, "Alex", s.Data().Profile.Name)
}
