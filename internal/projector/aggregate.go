package projector

import (
	"github.com/shopspring/decimal"
)

// Point is one bar or slice of a chart
type Point struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// Sum adds value over all items
func Sum[T any](items []T, value func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(value(item))
	}
	return total
}

// GroupSum sums value per group. Groups listed in order come first, even
// when empty, followed by any other group in first seen order.
func GroupSum[T any](items []T, group func(T) string, value func(T) decimal.Decimal, order ...string) []Point {
	totals := make(map[string]decimal.Decimal)
	seen := make([]string, 0)
	for _, item := range items {
		g := group(item)
		if _, ok := totals[g]; !ok {
			seen = append(seen, g)
			totals[g] = decimal.Zero
		}
		totals[g] = totals[g].Add(value(item))
	}
	return points(totals, seen, order)
}

// GroupCount counts items per group with the same ordering as GroupSum
func GroupCount[T any](items []T, group func(T) string, order ...string) []Point {
	return GroupSum(items, group, func(T) decimal.Decimal { return decimal.NewFromInt(1) }, order...)
}

func points(totals map[string]decimal.Decimal, seen, order []string) []Point {
	result := make([]Point, 0, len(order)+len(seen))
	declared := make(map[string]bool, len(order))
	for _, name := range order {
		if declared[name] {
			continue
		}
		declared[name] = true
		v, ok := totals[name]
		if !ok {
			v = decimal.Zero
		}
		result = append(result, Point{Name: name, Value: v})
	}
	for _, name := range seen {
		if declared[name] {
			continue
		}
		result = append(result, Point{Name: name, Value: totals[name]})
	}
	return result
}
