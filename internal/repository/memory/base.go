// Package memory implements the domain repositories on top of the indexed
// in-memory store, with filtering and sorting done by the projector.
package memory

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/projector"
	"github.com/vidinfra/erpdesk/internal/store"
	"github.com/vidinfra/erpdesk/internal/types"
)

// query is the filtered, sorted and paginated view of a collection
type query[T store.Entity[T]] struct {
	filter *types.QueryFilter
	preds  []projector.Predicate[T]
	keys   map[string]projector.KeyFunc[T]
}

func (q query[T]) list(ctx context.Context, s *store.Memory[T]) []T {
	items := projector.Filter(s.List(ctx, nil), q.preds...)
	items = projector.Sort(items, projector.SortStateFor(q.filter), q.keys)
	return types.Paginate(items, q.filter.GetOffset(), q.filter.GetLimit())
}

func (q query[T]) count(ctx context.Context, s *store.Memory[T]) int {
	return s.Count(ctx, func(item T) bool {
		return projector.Match(item, q.preds...)
	})
}

func str(s string) projector.Value { return projector.String(s) }

func num(d decimal.Decimal) projector.Value { return projector.Number(d) }

func floatPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	v := decimal.NewFromFloat(*f)
	return &v
}

// optTime sorts on an optional date; nil dates are undefined
func optTime[T any](get func(T) *time.Time) projector.KeyFunc[T] {
	return func(item T) (projector.Value, bool) {
		t := get(item)
		if t == nil || t.IsZero() {
			return projector.Value{}, false
		}
		return projector.Time(*t), true
	}
}
