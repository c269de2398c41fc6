package shared

import "github.com/shopspring/decimal"

// Generic query helpers shared by every planner module. Filtering and
// aggregation over loaded collections is display-only and never mutates
// or persists the underlying records.

// FilterBy returns the records matching the predicate, preserving order
func FilterBy[T any](records []T, pred func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// CountBy returns the number of records matching the predicate
func CountBy[T any](records []T, pred func(T) bool) int {
	n := 0
	for _, r := range records {
		if pred(r) {
			n++
		}
	}
	return n
}

// SumBy adds up the amounts extracted from each record
func SumBy[T any](records []T, amount func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(amount(r))
	}
	return total
}

// GroupSum aggregates amounts per key, e.g. expense totals per category
func GroupSum[T any](records []T, key func(T) string, amount func(T) decimal.Decimal) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal)
	for _, r := range records {
		k := key(r)
		out[k] = out[k].Add(amount(r))
	}
	return out
}
