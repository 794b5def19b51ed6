package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/tallyhq/tally/internal/model"
)

var runwayNow = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func expenseDaysAgo(amount float64, days int) model.Transaction {
	return model.Transaction{
		Type:   model.TypeExpense,
		Amount: decimal.NewFromFloat(amount),
		Date:   runwayNow.AddDate(0, 0, -days),
	}
}

func TestEstimateRunway(t *testing.T) {
	tests := []struct {
		name        string
		balance     float64
		txns        []model.Transaction
		wantReason  RunwayReason
		wantDays    int
		wantDisplay string
	}{
		{
			name:        "zero balance",
			balance:     0,
			txns:        []model.Transaction{expenseDaysAgo(10, 1)},
			wantReason:  RunwayNoFunds,
			wantDays:    0,
			wantDisplay: "No funds available",
		},
		{
			name:        "negative balance",
			balance:     -50,
			txns:        []model.Transaction{expenseDaysAgo(10, 1)},
			wantReason:  RunwayNoFunds,
			wantDays:    0,
			wantDisplay: "No funds available",
		},
		{
			name:        "no transactions at all",
			balance:     100,
			txns:        nil,
			wantReason:  RunwayNoExpenses,
			wantDays:    InfiniteRunwayDays,
			wantDisplay: "No expenses yet",
		},
		{
			name:    "income only",
			balance: 100,
			txns: []model.Transaction{{
				Type:   model.TypeIncome,
				Amount: decimal.NewFromInt(100),
				Date:   runwayNow,
			}},
			wantReason:  RunwayNoExpenses,
			wantDays:    InfiniteRunwayDays,
			wantDisplay: "No expenses yet",
		},
		{
			name:    "single expense today uses one-day denominator",
			balance: 50,
			txns:    []model.Transaction{expenseDaysAgo(100, 0)},
			// avg7 = avg30 = 100/1; burn = 100; floor(50/100) = 0.
			wantReason:  RunwayEstimated,
			wantDays:    0,
			wantDisplay: "0 Days",
		},
		{
			name:    "worked example from the docs",
			balance: 400,
			txns:    []model.Transaction{expenseDaysAgo(100, 10)},
			// avg7 = 0/7, avg30 = 100/10 = 10; burn = 4; floor(400/4) = 100.
			wantReason:  RunwayEstimated,
			wantDays:    100,
			wantDisplay: "3 Months",
		},
		{
			name:    "expense exactly 7 days old leaves the short window",
			balance: 700,
			txns:    []model.Transaction{expenseDaysAgo(70, 7)},
			// avg7 = 0/7, avg30 = 70/7 = 10; burn = 4; floor(700/4) = 175.
			wantReason: RunwayEstimated,
			wantDays:   175,
		},
		{
			name:    "expense exactly 30 days old leaves both windows",
			balance: 500,
			txns:    []model.Transaction{expenseDaysAgo(300, 30)},
			// Both window sums are zero, burn = 0.
			wantReason:  RunwayLowSpending,
			wantDays:    InfiniteRunwayDays,
			wantDisplay: "Low spending",
		},
		{
			name:    "steady spending",
			balance: 75,
			txns: []model.Transaction{
				expenseDaysAgo(10, 0),
				expenseDaysAgo(10, 1),
				expenseDaysAgo(10, 2),
				expenseDaysAgo(10, 3),
				expenseDaysAgo(10, 4),
				expenseDaysAgo(10, 5),
				expenseDaysAgo(10, 6),
			},
			// Denominator is the 6 elapsed days, not the 7-day window.
			// avg7 = avg30 = 70/6; burn = 70/6; floor(75/(70/6)) = 6.
			wantReason: RunwayEstimated,
			wantDays:   6,
		},
		{
			name:        "large balance renders as over a year",
			balance:     5001,
			txns:        []model.Transaction{expenseDaysAgo(10, 10)},
			wantReason:  RunwayEstimated,
			wantDisplay: "> 1 Year",
			// avg7 = 0, avg30 = 1; burn = 0.4; floor(5001/0.4) = 12502.
			wantDays: 12502,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateRunway(decimal.NewFromFloat(tt.balance), tt.txns, runwayNow)
			assert.Equal(t, tt.wantReason, got.Reason)
			assert.Equal(t, tt.wantDays, got.Days)
			if tt.wantDisplay != "" {
				assert.Equal(t, tt.wantDisplay, got.Display())
			}
		})
	}
}

func TestRunwayDisplayBoundaries(t *testing.T) {
	assert.Equal(t, "30 Days", Runway{Reason: RunwayEstimated, Days: 30}.Display())
	assert.Equal(t, "1 Months", Runway{Reason: RunwayEstimated, Days: 31}.Display())
	assert.Equal(t, "12 Months", Runway{Reason: RunwayEstimated, Days: 365}.Display())
	assert.Equal(t, "> 1 Year", Runway{Reason: RunwayEstimated, Days: 366}.Display())
}
