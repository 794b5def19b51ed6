package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// alertThreshold is the fraction of a limit that marks a category at
// risk. Spending must strictly exceed limit * threshold to trigger.
var alertThreshold = decimal.NewFromFloat(0.8)

// BudgetAlert flags a category approaching or over its monthly ceiling.
type BudgetAlert struct {
	Category string
	Spent    decimal.Decimal
	Limit    decimal.Decimal
	Ratio    float64
}

// OverLimit reports whether spending has passed the ceiling itself.
func (a BudgetAlert) OverLimit() bool {
	return a.Spent.GreaterThan(a.Limit)
}

// BudgetAlerts compares per-category spending against configured monthly
// limits. A category is at risk when spent > limit*0.8 (strict). The
// result is ordered most-over-budget first by spent/limit ratio, which
// is the order alerts surface to the user.
func BudgetAlerts(expenseByCategory map[string]decimal.Decimal, limits map[string]decimal.Decimal) []BudgetAlert {
	var alerts []BudgetAlert
	for category, limit := range limits {
		if !limit.IsPositive() {
			continue
		}
		spent := expenseByCategory[category]
		if !spent.GreaterThan(limit.Mul(alertThreshold)) {
			continue
		}
		ratio, _ := spent.Div(limit).Float64()
		alerts = append(alerts, BudgetAlert{
			Category: category,
			Spent:    spent,
			Limit:    limit,
			Ratio:    ratio,
		})
	}

	sort.Slice(alerts, func(i, j int) bool {
		if alerts[i].Ratio != alerts[j].Ratio {
			return alerts[i].Ratio > alerts[j].Ratio
		}
		return alerts[i].Category < alerts[j].Category
	})

	return alerts
}
