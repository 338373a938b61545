package project

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

func TestHealthScore(t *testing.T) {
	tests := []struct {
		name string
		kpis KPIs
		want decimal.Decimal
	}{
		{
			name: "default kpis stay healthy",
			kpis: DefaultKPIs(),
			want: d(100),
		},
		{
			name: "budget overrun",
			kpis: KPIs{BudgetAdherence: d(110), ClientSatisfaction: d(8)},
			want: d(85),
		},
		{
			name: "behind schedule",
			kpis: KPIs{BudgetAdherence: d(90), ScheduleVariance: -5, ClientSatisfaction: d(7)},
			want: d(90),
		},
		{
			name: "ahead of schedule is not rewarded",
			kpis: KPIs{ScheduleVariance: 12, ClientSatisfaction: d(9)},
			want: d(100),
		},
		{
			name: "low satisfaction",
			kpis: KPIs{ClientSatisfaction: d(5.5)},
			want: d(92.5),
		},
		{
			name: "all penalties combined",
			kpis: KPIs{BudgetAdherence: d(120), ScheduleVariance: -10, ClientSatisfaction: d(4)},
			want: d(35),
		},
		{
			name: "floor at zero",
			kpis: KPIs{BudgetAdherence: d(300), ScheduleVariance: -100, ClientSatisfaction: d(0)},
			want: d(0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HealthScore(tt.kpis)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestHealthScore_AlwaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		k := KPIs{
			TaskCompletionRate: d(rng.Float64() * 100),
			BudgetAdherence:    d(rng.Float64() * 400),
			ScheduleVariance:   rng.Intn(400) - 200,
			ClientSatisfaction: d(rng.Float64()*20 - 5),
		}
		score := HealthScore(k)
		require.True(t, score.GreaterThanOrEqual(decimal.Zero), "score %s for %+v", score, k)
		require.True(t, score.LessThanOrEqual(d(100)), "score %s for %+v", score, k)
	}
}

func TestScheduleVariance(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 100)

	tests := []struct {
		name     string
		now      time.Time
		progress int
		want     int
	}{
		{"on track halfway", start.AddDate(0, 0, 50), 50, 0},
		{"behind halfway", start.AddDate(0, 0, 50), 30, -20},
		{"ahead early", start.AddDate(0, 0, 10), 25, 15},
		{"before start counts nothing elapsed", start.AddDate(0, 0, -30), 0, 0},
		{"after end clamps expected to one", end.AddDate(0, 0, 40), 80, -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScheduleVariance(start, end, tt.now, tt.progress))
		})
	}

	assert.Equal(t, 0, ScheduleVariance(end, start, start, 10), "inverted schedule")
}

func TestRecalculateHealth(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	p := &Project{
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 100),
		Budget:      d(10000),
		Spent:       d(11000),
		Progress:    40,
		KPIs:        DefaultKPIs(),
		HealthScore: d(100),
	}

	p.RecalculateHealth(TaskStats{Total: 8, Done: 2}, start.AddDate(0, 0, 50))

	assert.True(t, d(25).Equal(p.KPIs.TaskCompletionRate))
	assert.True(t, d(110).Equal(p.KPIs.BudgetAdherence))
	assert.Equal(t, -10, p.KPIs.ScheduleVariance)
	assert.True(t, DefaultSatisfaction.Equal(p.KPIs.ClientSatisfaction))
	// 100 - 15 - 20
	assert.True(t, d(65).Equal(p.HealthScore), "got %s", p.HealthScore)
}

func TestCalculateKPIs_EmptyProject(t *testing.T) {
	p := &Project{KPIs: DefaultKPIs()}
	k := p.CalculateKPIs(TaskStats{}, time.Now())
	assert.True(t, k.TaskCompletionRate.IsZero())
	assert.True(t, k.BudgetAdherence.IsZero())
	assert.Equal(t, 0, k.ScheduleVariance)
}
