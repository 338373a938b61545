package projector

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/types"
)

// SortState is the single active sort column
type SortState struct {
	Key       string `json:"key"`
	Direction string `json:"direction"`
}

// NewSortState builds a state from list query parameters
func NewSortState(key, order string) SortState {
	if key == "" {
		return SortState{}
	}
	if order != types.OrderDesc {
		order = types.OrderAsc
	}
	return SortState{Key: key, Direction: order}
}

// Toggle selects key. The active key flips between ascending and descending,
// any other key starts ascending.
func (s SortState) Toggle(key string) SortState {
	if s.Key == key && s.Direction == types.OrderAsc {
		return SortState{Key: key, Direction: types.OrderDesc}
	}
	return SortState{Key: key, Direction: types.OrderAsc}
}

// SortStateFor resolves the sort a list query asks for, applying its
// toggle key to the current sort and order.
func SortStateFor(f *types.QueryFilter) SortState {
	state := NewSortState(f.GetSort(), f.GetOrder())
	if key := f.GetToggle(); key != "" {
		state = state.Toggle(key)
	}
	return state
}

func (s SortState) IsActive() bool {
	return s.Key != ""
}

type valueKind int

const (
	kindString valueKind = iota
	kindNumber
)

// Value is a sortable field value with its natural ordering
type Value struct {
	kind valueKind
	str  string
	num  decimal.Decimal
}

func String(s string) Value { return Value{kind: kindString, str: s} }

func Number(d decimal.Decimal) Value { return Value{kind: kindNumber, num: d} }

func Int(i int) Value { return Number(decimal.NewFromInt(int64(i))) }

func Time(t time.Time) Value { return Number(decimal.NewFromInt(t.UnixNano())) }

func compareValues(a, b Value) int {
	if a.kind != b.kind {
		if a.kind < b.kind {
			return -1
		}
		return 1
	}
	if a.kind == kindNumber {
		return a.num.Cmp(b.num)
	}
	return strings.Compare(a.str, b.str)
}

// KeyFunc extracts the sort value of an item. ok is false when the field is
// undefined for that item.
type KeyFunc[T any] func(T) (v Value, ok bool)

// Defined wraps a getter whose field is always present
func Defined[T any](get func(T) Value) KeyFunc[T] {
	return func(item T) (Value, bool) {
		return get(item), true
	}
}

// Sort orders items by the active key. Items whose value is undefined keep
// their index; defined items are stably sorted into the remaining slots.
// Unknown or inactive keys return the items unchanged.
func Sort[T any](items []T, state SortState, keys map[string]KeyFunc[T]) []T {
	out := make([]T, len(items))
	copy(out, items)

	keyFn, ok := keys[state.Key]
	if !state.IsActive() || !ok {
		return out
	}

	type entry struct {
		item  T
		value Value
	}

	slots := make([]int, 0, len(items))
	defined := make([]entry, 0, len(items))
	for i, item := range items {
		if v, ok := keyFn(item); ok {
			slots = append(slots, i)
			defined = append(defined, entry{item: item, value: v})
		}
	}

	desc := state.Direction == types.OrderDesc
	sort.SliceStable(defined, func(i, j int) bool {
		c := compareValues(defined[i].value, defined[j].value)
		if desc {
			return c > 0
		}
		return c < 0
	})

	for i, slot := range slots {
		out[slot] = defined[i].item
	}
	return out
}
