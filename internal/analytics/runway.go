package analytics

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/model"
)

// InfiniteRunwayDays is the sentinel reported when spending is too low to
// ever exhaust the balance.
const InfiniteRunwayDays = 999

// RunwayReason explains which branch produced the estimate.
type RunwayReason string

const (
	// RunwayNoFunds: balance is zero or negative.
	RunwayNoFunds RunwayReason = "no_funds"
	// RunwayNoExpenses: no expense transaction exists at all.
	RunwayNoExpenses RunwayReason = "no_expenses"
	// RunwayLowSpending: the weighted burn rate rounded down to nothing.
	RunwayLowSpending RunwayReason = "low_spending"
	// RunwayEstimated: a real estimate was computed.
	RunwayEstimated RunwayReason = "estimated"
)

// Runway is the days-of-funds-remaining projection.
type Runway struct {
	Reason   RunwayReason
	Days     int
	Infinite bool
}

// Display renders the estimate the way the dashboard shows it.
func (r Runway) Display() string {
	switch r.Reason {
	case RunwayNoFunds:
		return "No funds available"
	case RunwayNoExpenses:
		return "No expenses yet"
	case RunwayLowSpending:
		return "Low spending"
	}
	switch {
	case r.Days > 365:
		return "> 1 Year"
	case r.Days > 30:
		return fmt.Sprintf("%d Months", r.Days/30)
	default:
		return fmt.Sprintf("%d Days", r.Days)
	}
}

// EstimateRunway projects how many days of funds remain at the current
// weighted spending pace.
//
// Two trailing windows anchored at now feed the estimate: expenses from
// the last 7 and last 30 days, each averaged over the days the user has
// actually been spending (capped at the window size), so a three-day-old
// ledger divides by 3 rather than 7. The daily burn rate weights the
// short window 60/40 over the long one to favor recent behavior while
// smoothing noise. Every division is guarded; degenerate inputs map to
// sentinel results.
func EstimateRunway(balance decimal.Decimal, txns []model.Transaction, now time.Time) Runway {
	if !balance.IsPositive() {
		return Runway{Reason: RunwayNoFunds, Days: 0}
	}

	oldest := -1
	var sum7, sum30 decimal.Decimal
	for _, t := range txns {
		if t.Type != model.TypeExpense {
			continue
		}
		elapsed := daysBetween(t.Date, now)
		if elapsed > oldest {
			oldest = elapsed
		}
		if elapsed < 7 {
			sum7 = sum7.Add(t.Amount)
		}
		if elapsed < 30 {
			sum30 = sum30.Add(t.Amount)
		}
	}

	if oldest < 0 {
		return Runway{Reason: RunwayNoExpenses, Days: InfiniteRunwayDays, Infinite: true}
	}

	avg7 := windowAverage(sum7, oldest, 7)
	avg30 := windowAverage(sum30, oldest, 30)
	burn := 0.6*avg7 + 0.4*avg30

	if burn <= 0 {
		return Runway{Reason: RunwayLowSpending, Days: InfiniteRunwayDays, Infinite: true}
	}

	bal, _ := balance.Float64()
	days := int(math.Floor(bal / burn))

	return Runway{Reason: RunwayEstimated, Days: days}
}

// windowAverage divides a window's expense sum by the days the user has
// actually been active, capped at the window size and floored at one day
// so a first-day ledger never divides by zero.
func windowAverage(sum decimal.Decimal, oldestElapsed, window int) float64 {
	denom := oldestElapsed
	if denom > window {
		denom = window
	}
	if denom < 1 {
		denom = 1
	}
	f, _ := sum.Float64()
	return f / float64(denom)
}

// daysBetween floors the elapsed whole days from ts to now.
func daysBetween(ts, now time.Time) int {
	return int(math.Floor(now.Sub(ts).Hours() / 24))
}
