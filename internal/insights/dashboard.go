package insights

import (
	"time" // Calendar days

	"budget_bloom/internal/domain" // Expense model
)

// DailyTotal is the amount spent on one calendar day.
type DailyTotal struct {
	Date   string  `json:"date"` // YYYY-MM-DD in the reference location
	Amount float64 `json:"amount"` // Summed amount, 0 for idle days
}

// DailyTotals buckets expenses by calendar day in loc, returning one entry per
// day of [from, to) in ascending order. Days without expenses have amount 0.
func DailyTotals(expenses []domain.Expense, from, to time.Time, loc *time.Location) []DailyTotal {
	sums := make(map[string]float64)
	for _, e := range expenses {
		sums[e.Date.In(loc).Format(time.DateOnly)] += e.Amount
	}
	days := make([]DailyTotal, 0)
	for d := midnight(from.In(loc)); d.Before(to); d = d.AddDate(0, 0, 1) {
		key := d.Format(time.DateOnly)
		days = append(days, DailyTotal{Date: key, Amount: sums[key]})
	}
	return days
}

// CategoryTotals flattens per-category sums into domain.Categories order, skipping empty ones.
func CategoryTotals(sums map[domain.Category]float64) []domain.CategoryTotal {
	totals := make([]domain.CategoryTotal, 0, len(sums))
	for _, c := range domain.Categories {
		if v, ok := sums[c]; ok && v > 0 {
			totals = append(totals, domain.CategoryTotal{Category: c, Total: v})
		}
	}
	return totals
}
