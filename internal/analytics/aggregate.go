// Package analytics computes derived views over the transaction log.
//
// Every function here is pure: callers pass the transactions they care
// about (already filtered to one wallet) and get value results back.
// Volumes are personal-finance scale, so everything recomputes from
// scratch on demand rather than caching.
package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tallyhq/tally/internal/model"
)

// Summary holds period totals and per-category breakdowns.
type Summary struct {
	IncomeByCategory  map[string]decimal.Decimal
	ExpenseByCategory map[string]decimal.Decimal
	TotalIncome       decimal.Decimal
	TotalExpense      decimal.Decimal
}

// Net returns income minus expense for the summarized period.
func (s Summary) Net() decimal.Decimal {
	return s.TotalIncome.Sub(s.TotalExpense)
}

// Period is an inclusive time window. A zero Period means "all time".
type Period struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether ts falls inside the period. The end bound is
// inclusive through end-of-day semantics supplied by the caller.
func (p Period) Contains(ts time.Time) bool {
	if p.Start.IsZero() && p.End.IsZero() {
		return true
	}
	return !ts.Before(p.Start) && !ts.After(p.End)
}

// Month builds the inclusive period covering one calendar month.
func Month(year int, month time.Month) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return Period{Start: start, End: start.AddDate(0, 1, 0).Add(-time.Nanosecond)}
}

// Summarize reduces a transaction list to totals and per-category sums
// for one period. Transfer legs count as ordinary income or expense in
// their wallet; no transaction is counted on both sides.
func Summarize(txns []model.Transaction, period Period) Summary {
	s := Summary{
		IncomeByCategory:  make(map[string]decimal.Decimal),
		ExpenseByCategory: make(map[string]decimal.Decimal),
	}

	for _, t := range txns {
		if !period.Contains(t.Date) {
			continue
		}
		switch t.Type {
		case model.TypeIncome:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
			s.IncomeByCategory[t.Category] = s.IncomeByCategory[t.Category].Add(t.Amount)
		case model.TypeExpense:
			s.TotalExpense = s.TotalExpense.Add(t.Amount)
			s.ExpenseByCategory[t.Category] = s.ExpenseByCategory[t.Category].Add(t.Amount)
		}
	}

	return s
}

// DailyExpenses sums expenses per calendar day over an explicit inclusive
// date range. Keys and bucketing use the stored YYYY-MM-DD form, so the
// result lines up with calendar rendering.
func DailyExpenses(txns []model.Transaction, start, end time.Time) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for day := startOfDay(start); !day.After(end); day = day.AddDate(0, 0, 1) {
		out[day.Format("2006-01-02")] = decimal.Zero
	}

	for _, t := range txns {
		if t.Type != model.TypeExpense {
			continue
		}
		key := t.DateKey()
		if _, ok := out[key]; ok {
			out[key] = out[key].Add(t.Amount)
		}
	}

	return out
}

// DayActivity flags which calendar days carry income or expense activity.
type DayActivity struct {
	HasIncome  bool
	HasExpense bool
}

// DayFlags builds the calendar dot indicators: one entry per day that has
// at least one transaction, keyed by YYYY-MM-DD. Matching is the same
// date-prefix comparison used for storage, so callers must pass stored
// lexical dates when looking days up.
func DayFlags(txns []model.Transaction) map[string]DayActivity {
	out := make(map[string]DayActivity)
	for _, t := range txns {
		key := t.DateKey()
		flags := out[key]
		switch t.Type {
		case model.TypeIncome:
			flags.HasIncome = true
		case model.TypeExpense:
			flags.HasExpense = true
		}
		out[key] = flags
	}
	return out
}

func startOfDay(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}
