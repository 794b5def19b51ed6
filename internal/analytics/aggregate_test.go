package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/model"
)

func tx(ttype model.TransactionType, category string, amount float64, date time.Time) model.Transaction {
	return model.Transaction{
		Type:     ttype,
		Category: category,
		Amount:   decimal.NewFromFloat(amount),
		Date:     date,
	}
}

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		tx(model.TypeIncome, "Salary", 1000, now),
		tx(model.TypeIncome, "Freelance", 250, now),
		tx(model.TypeExpense, "Food", 120.50, now),
		tx(model.TypeExpense, "Food", 79.50, now),
		tx(model.TypeExpense, "Transport", 40, now),
	}

	s := Summarize(txns, Period{})

	assert.True(t, s.TotalIncome.Equal(decimal.NewFromInt(1250)))
	assert.True(t, s.TotalExpense.Equal(decimal.NewFromInt(240)))
	assert.True(t, s.ExpenseByCategory["Food"].Equal(decimal.NewFromInt(200)))
	assert.True(t, s.ExpenseByCategory["Transport"].Equal(decimal.NewFromInt(40)))
	assert.True(t, s.IncomeByCategory["Salary"].Equal(decimal.NewFromInt(1000)))
	assert.True(t, s.Net().Equal(decimal.NewFromInt(1010)))
}

func TestSummarizeTransferLegsCountAsOrdinaryFlow(t *testing.T) {
	now := time.Now()
	// The expense leg of a transfer in this wallet's view.
	txns := []model.Transaction{
		tx(model.TypeExpense, model.TransferCategory, 300, now),
	}

	s := Summarize(txns, Period{})
	assert.True(t, s.TotalExpense.Equal(decimal.NewFromInt(300)))
	assert.True(t, s.ExpenseByCategory[model.TransferCategory].Equal(decimal.NewFromInt(300)))
}

func TestSummarizePeriodBounds(t *testing.T) {
	p := Month(2026, time.July)
	inside := time.Date(2026, 7, 31, 23, 0, 0, 0, time.Local)
	outside := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)

	s := Summarize([]model.Transaction{
		tx(model.TypeExpense, "Food", 10, inside),
		tx(model.TypeExpense, "Food", 99, outside),
	}, p)

	assert.True(t, s.TotalExpense.Equal(decimal.NewFromInt(10)))
}

func TestIncomeMinusExpenseEqualsSignedBalance(t *testing.T) {
	now := time.Now()
	txns := []model.Transaction{
		tx(model.TypeIncome, "Salary", 500, now),
		tx(model.TypeExpense, "Food", 123.45, now),
		tx(model.TypeExpense, "Transport", 6.55, now),
	}

	s := Summarize(txns, Period{})

	var balance decimal.Decimal
	for _, t2 := range txns {
		balance = balance.Add(t2.Signed())
	}
	assert.True(t, s.Net().Equal(balance))
}

func TestDailyExpenses(t *testing.T) {
	day1 := time.Date(2026, 8, 10, 9, 30, 0, 0, time.Local)
	day2 := time.Date(2026, 8, 11, 18, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		tx(model.TypeExpense, "Food", 10, day1),
		tx(model.TypeExpense, "Food", 5, day1),
		tx(model.TypeExpense, "Transport", 7, day2),
		tx(model.TypeIncome, "Salary", 100, day1),                                   // ignored
		tx(model.TypeExpense, "Food", 99, time.Date(2026, 8, 20, 0, 0, 0, 0, time.Local)), // out of range
	}

	buckets := DailyExpenses(txns, day1, time.Date(2026, 8, 12, 0, 0, 0, 0, time.Local))

	require.Len(t, buckets, 3)
	assert.True(t, buckets["2026-08-10"].Equal(decimal.NewFromInt(15)))
	assert.True(t, buckets["2026-08-11"].Equal(decimal.NewFromInt(7)))
	assert.True(t, buckets["2026-08-12"].IsZero())
}

func TestDayFlags(t *testing.T) {
	day := time.Date(2026, 8, 10, 14, 45, 0, 0, time.Local)
	flags := DayFlags([]model.Transaction{
		tx(model.TypeExpense, "Food", 10, day),
		tx(model.TypeIncome, "Salary", 100, day),
		tx(model.TypeExpense, "Food", 3, day.AddDate(0, 0, 1)),
	})

	assert.Equal(t, DayActivity{HasIncome: true, HasExpense: true}, flags["2026-08-10"])
	assert.Equal(t, DayActivity{HasExpense: true}, flags["2026-08-11"])
	_, ok := flags["2026-08-12"]
	assert.False(t, ok)
}
