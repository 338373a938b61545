package projector

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidinfra/erpdesk/internal/types"
)

type row struct {
	name     string
	company  string
	owner    string
	stage    string
	value    decimal.Decimal
	prob     int
	priority *int
}

func names(rows []row) []string {
	return lo.Map(rows, func(r row, _ int) string { return r.name })
}

var rowKeys = map[string]KeyFunc[row]{
	"name":  Defined(func(r row) Value { return String(r.name) }),
	"value": Defined(func(r row) Value { return Number(r.value) }),
	"priority": func(r row) (Value, bool) {
		if r.priority == nil {
			return Value{}, false
		}
		return Int(*r.priority), true
	},
}

func TestSortState_Toggle(t *testing.T) {
	var s SortState
	s = s.Toggle("name")
	assert.Equal(t, SortState{Key: "name", Direction: types.OrderAsc}, s)
	s = s.Toggle("name")
	assert.Equal(t, SortState{Key: "name", Direction: types.OrderDesc}, s)
	s = s.Toggle("name")
	assert.Equal(t, SortState{Key: "name", Direction: types.OrderAsc}, s)
	s = s.Toggle("name").Toggle("value")
	assert.Equal(t, SortState{Key: "value", Direction: types.OrderAsc}, s)
}

func TestSortStateFor(t *testing.T) {
	tests := []struct {
		name   string
		filter *types.QueryFilter
		want   SortState
	}{
		{"nil filter", nil, SortState{}},
		{"sort only", &types.QueryFilter{Sort: lo.ToPtr("name"), Order: lo.ToPtr(types.OrderDesc)}, SortState{Key: "name", Direction: types.OrderDesc}},
		{"toggle from unsorted", &types.QueryFilter{Toggle: lo.ToPtr("name")}, SortState{Key: "name", Direction: types.OrderAsc}},
		{"toggle active ascending", &types.QueryFilter{Sort: lo.ToPtr("name"), Order: lo.ToPtr(types.OrderAsc), Toggle: lo.ToPtr("name")}, SortState{Key: "name", Direction: types.OrderDesc}},
		{"toggle active descending", &types.QueryFilter{Sort: lo.ToPtr("name"), Order: lo.ToPtr(types.OrderDesc), Toggle: lo.ToPtr("name")}, SortState{Key: "name", Direction: types.OrderAsc}},
		{"toggle other column", &types.QueryFilter{Sort: lo.ToPtr("name"), Order: lo.ToPtr(types.OrderDesc), Toggle: lo.ToPtr("value")}, SortState{Key: "value", Direction: types.OrderAsc}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SortStateFor(tt.filter))
		})
	}
}

func TestSort_AscendingThenDescending(t *testing.T) {
	rows := []row{
		{name: "b", value: decimal.NewFromInt(20)},
		{name: "c", value: decimal.NewFromInt(5)},
		{name: "a", value: decimal.NewFromInt(100)},
	}

	state := SortState{}.Toggle("value")
	assert.Equal(t, []string{"c", "b", "a"}, names(Sort(rows, state, rowKeys)))

	state = state.Toggle("value")
	assert.Equal(t, []string{"a", "b", "c"}, names(Sort(rows, state, rowKeys)))

	state = state.Toggle("name")
	assert.Equal(t, []string{"a", "b", "c"}, names(Sort(rows, state, rowKeys)))

	// input untouched
	assert.Equal(t, []string{"b", "c", "a"}, names(rows))
}

func TestSort_UndefinedKeepPosition(t *testing.T) {
	p := func(i int) *int { return &i }
	rows := []row{
		{name: "r0", priority: p(3)},
		{name: "r1"},
		{name: "r2", priority: p(1)},
		{name: "r3"},
		{name: "r4", priority: p(2)},
	}

	asc := Sort(rows, SortState{Key: "priority", Direction: types.OrderAsc}, rowKeys)
	assert.Equal(t, []string{"r2", "r1", "r4", "r3", "r0"}, names(asc))

	desc := Sort(rows, SortState{Key: "priority", Direction: types.OrderDesc}, rowKeys)
	assert.Equal(t, []string{"r0", "r1", "r4", "r3", "r2"}, names(desc))
}

func TestSort_EqualValuesAreStable(t *testing.T) {
	rows := []row{
		{name: "x1", value: decimal.NewFromInt(1)},
		{name: "x2", value: decimal.NewFromInt(1)},
		{name: "x3", value: decimal.NewFromInt(0)},
	}
	out := Sort(rows, SortState{Key: "value", Direction: types.OrderDesc}, rowKeys)
	assert.Equal(t, []string{"x1", "x2", "x3"}, names(out))
}

func TestSort_UnknownKeyIsNoop(t *testing.T) {
	rows := []row{{name: "b"}, {name: "a"}}
	assert.Equal(t, []string{"b", "a"}, names(Sort(rows, SortState{Key: "nope"}, rowKeys)))
	assert.Equal(t, []string{"b", "a"}, names(Sort(rows, SortState{}, rowKeys)))
}

func TestPredicates_InactiveWhenEmpty(t *testing.T) {
	assert.Nil(t, Contains[row]("  "))
	assert.Nil(t, Equals("", func(r row) string { return r.stage }))
	assert.Nil(t, Range[row](nil, nil, func(r row) decimal.Decimal { return r.value }))
	assert.Nil(t, AtLeast[row](nil, func(r row) decimal.Decimal { return r.value }))
}

func TestContains_CaseInsensitiveAcrossFields(t *testing.T) {
	rows := []row{
		{name: "Server Upgrade", company: "Acme"},
		{name: "Website", company: "GLOBEX corp"},
		{name: "Audit", company: "Initech"},
	}
	p := Contains("globex", func(r row) string { return r.name }, func(r row) string { return r.company })
	assert.Equal(t, []string{"Website"}, names(Filter(rows, p)))

	p = Contains("UPGRADE", func(r row) string { return r.name })
	assert.Equal(t, []string{"Server Upgrade"}, names(Filter(rows, p)))
}

// Every generated record must appear in the output iff it satisfies every
// active predicate.
func TestFilter_Conjunction(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	stages := []string{"lead", "won", "lost"}
	owners := []string{"ana", "ben", ""}
	words := []string{"alpha", "Beta", "gamma"}

	rows := make([]row, 0, 200)
	for i := 0; i < 200; i++ {
		rows = append(rows, row{
			name:  fmt.Sprintf("%s-%d", words[rng.Intn(len(words))], i),
			owner: owners[rng.Intn(len(owners))],
			stage: stages[rng.Intn(len(stages))],
			value: decimal.NewFromInt(int64(rng.Intn(1000))),
			prob:  rng.Intn(101),
		})
	}

	for trial := 0; trial < 100; trial++ {
		q := lo.Sample([]string{"", "alp", "BETA", "mm"})
		stage := lo.Sample(append([]string{""}, stages...))
		owner := lo.Sample(owners)

		var minV, maxV, threshold *decimal.Decimal
		if rng.Intn(2) == 0 {
			minV = lo.ToPtr(decimal.NewFromInt(int64(rng.Intn(500))))
		}
		if rng.Intn(2) == 0 {
			maxV = lo.ToPtr(decimal.NewFromInt(int64(500 + rng.Intn(500))))
		}
		if rng.Intn(2) == 0 {
			threshold = lo.ToPtr(decimal.NewFromInt(int64(rng.Intn(101))))
		}

		preds := []Predicate[row]{
			Contains(q, func(r row) string { return r.name }),
			Equals(stage, func(r row) string { return r.stage }),
			Equals(owner, func(r row) string { return r.owner }),
			Range(minV, maxV, func(r row) decimal.Decimal { return r.value }),
			AtLeast(threshold, func(r row) decimal.Decimal { return decimal.NewFromInt(int64(r.prob)) }),
		}
		got := Filter(rows, preds...)

		want := lo.Filter(rows, func(r row, _ int) bool {
			if q != "" && !containsFold(r.name, q) {
				return false
			}
			if stage != "" && r.stage != stage {
				return false
			}
			if owner != "" && r.owner != owner {
				return false
			}
			if minV != nil && r.value.LessThan(*minV) {
				return false
			}
			if maxV != nil && r.value.GreaterThan(*maxV) {
				return false
			}
			if threshold != nil && decimal.NewFromInt(int64(r.prob)).LessThan(*threshold) {
				return false
			}
			return true
		})

		require.Equal(t, names(want), names(got), "trial %d", trial)
	}
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func TestGroupSumAndCount(t *testing.T) {
	rows := []row{
		{stage: "won", value: decimal.NewFromInt(10)},
		{stage: "lead", value: decimal.NewFromInt(5)},
		{stage: "won", value: decimal.NewFromFloat(2.5)},
		{stage: "other", value: decimal.NewFromInt(1)},
	}
	group := func(r row) string { return r.stage }
	value := func(r row) decimal.Decimal { return r.value }

	sums := GroupSum(rows, group, value, "lead", "qualified", "won")
	require.Len(t, sums, 4)
	assert.Equal(t, "lead", sums[0].Name)
	assert.True(t, sums[0].Value.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, "qualified", sums[1].Name)
	assert.True(t, sums[1].Value.IsZero())
	assert.Equal(t, "won", sums[2].Name)
	assert.True(t, sums[2].Value.Equal(decimal.NewFromFloat(12.5)))
	assert.Equal(t, "other", sums[3].Name)

	counts := GroupCount(rows, group)
	assert.Equal(t, []string{"won", "lead", "other"}, lo.Map(counts, func(p Point, _ int) string { return p.Name }))
	assert.True(t, counts[0].Value.Equal(decimal.NewFromInt(2)))

	assert.True(t, Sum(rows, value).Equal(decimal.NewFromFloat(18.5)))
	assert.True(t, Sum([]row{}, value).IsZero())
}
