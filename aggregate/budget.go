package aggregate

import (
	"math"
	"sort"
)

// CategoryBudget is one category's share of the budget ceiling.
type CategoryBudget struct {
	Name       string  `json:"name"`
	Budget     float64 `json:"budget"`
	Percentage float64 `json:"percentage"`
}

// Budget compares executed asset value against the fixed program ceiling.
// Total is configuration, never derived from the data.
type Budget struct {
	Total         float64          `json:"total"`
	Executed      float64          `json:"executed"`
	Remaining     float64          `json:"remaining"`
	ExecutionRate float64          `json:"executionRate"`
	ByCategory    []CategoryBudget `json:"byCategory"`
}

// CalculateBudget derives the budget view from already-computed statistics.
// Categories are emitted in sorted key order so repeated runs over the same
// snapshot produce byte-identical documents.
func CalculateBudget(stats Statistics, totalBudget float64) Budget {
	executed := stats.TotalValue
	b := Budget{
		Total:         totalBudget,
		Executed:      executed,
		Remaining:     totalBudget - executed,
		ExecutionRate: rate(executed, totalBudget),
		ByCategory:    []CategoryBudget{},
	}

	names := make([]string, 0, len(stats.ByCategory))
	for name := range stats.ByCategory {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		b.ByCategory = append(b.ByCategory, CategoryBudget{
			Name:       name,
			Budget:     stats.ByCategory[name].Value,
			Percentage: rate(stats.ByCategory[name].Value, totalBudget),
		})
	}
	return b
}

// rate is a percentage rounded to one decimal place.
func rate(part, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(part/total*1000) / 10
}
