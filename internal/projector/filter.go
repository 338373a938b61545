// Package projector derives views from entity snapshots: conjunctive
// filtering, single key sorting and group-by aggregates. Nothing is cached;
// every call recomputes from the items it is given.
package projector

import (
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Predicate reports whether an item passes one filter. A nil predicate is
// inactive and matches everything.
type Predicate[T any] func(T) bool

// Contains matches when any of the fields contains query, ignoring case.
// An empty query is inactive.
func Contains[T any](query string, fields ...func(T) string) Predicate[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" || len(fields) == 0 {
		return nil
	}
	return func(item T) bool {
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(item)), q) {
				return true
			}
		}
		return false
	}
}

// Equals matches on exact equality. The zero value of want ("all") is inactive.
func Equals[T any, V comparable](want V, get func(T) V) Predicate[T] {
	var zero V
	if want == zero {
		return nil
	}
	return func(item T) bool {
		return get(item) == want
	}
}

// Range matches min <= value <= max, either bound optional
func Range[T any](minV, maxV *decimal.Decimal, get func(T) decimal.Decimal) Predicate[T] {
	if minV == nil && maxV == nil {
		return nil
	}
	return func(item T) bool {
		v := get(item)
		if minV != nil && v.LessThan(*minV) {
			return false
		}
		if maxV != nil && v.GreaterThan(*maxV) {
			return false
		}
		return true
	}
}

// AtLeast matches value >= threshold
func AtLeast[T any](threshold *decimal.Decimal, get func(T) decimal.Decimal) Predicate[T] {
	if threshold == nil {
		return nil
	}
	return func(item T) bool {
		return get(item).GreaterThanOrEqual(*threshold)
	}
}

// Match reports whether item satisfies every active predicate
func Match[T any](item T, preds ...Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(item) {
			return false
		}
	}
	return true
}

// Filter keeps the items that satisfy every active predicate, preserving order
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	return lo.Filter(items, func(item T, _ int) bool {
		return Match(item, preds...)
	})
}
