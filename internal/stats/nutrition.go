// Package stats derives summaries from already fetched log entries.
// Every function here is pure and safe to call with empty input.
package stats

import (
	"math"

	"alcyxob/fittrack/internal/domain"
)

// ComputeDailyTotals sums the four macro fields over entries.
// A missing or NaN value counts as 0. Negative values are summed as-is.
// The caller is responsible for passing entries of one owner and date.
func ComputeDailyTotals(entries []domain.MealLogEntry) domain.DailySummary {
	var totals domain.DailySummary
	for i := range entries {
		addEntry(&totals, &entries[i])
	}
	return totals
}

// TotalsByMealType groups entries by meal category and sums each group.
// Every known category is present in the result, empty ones with zero totals.
func TotalsByMealType(entries []domain.MealLogEntry) map[domain.MealType]domain.DailySummary {
	out := make(map[domain.MealType]domain.DailySummary, len(domain.MealTypes))
	for _, t := range domain.MealTypes {
		out[t] = domain.DailySummary{}
	}
	for i := range entries {
		totals := out[entries[i].MealType]
		addEntry(&totals, &entries[i])
		out[entries[i].MealType] = totals
	}
	return out
}

func addEntry(totals *domain.DailySummary, e *domain.MealLogEntry) {
	totals.Calories += valueOrZero(e.Calories)
	totals.Protein += valueOrZero(e.Protein)
	totals.Fat += valueOrZero(e.Fat)
	totals.Carbs += valueOrZero(e.Carbs)
}

func valueOrZero(v *float64) float64 {
	if v == nil || math.IsNaN(*v) {
		return 0
	}
	return *v
}
