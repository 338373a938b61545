package project

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// KPIs are only refreshed by an explicit recalculation or a manual edit.
type KPIs struct {
	// TaskCompletionRate is done tasks over all tasks, in percent
	TaskCompletionRate decimal.Decimal `json:"task_completion_rate"`
	// BudgetAdherence is spent over budget, in percent
	BudgetAdherence decimal.Decimal `json:"budget_adherence"`
	// ScheduleVariance in days, negative when behind schedule
	ScheduleVariance int `json:"schedule_variance"`
	// ClientSatisfaction on a 0 to 10 scale
	ClientSatisfaction decimal.Decimal `json:"client_satisfaction"`
}

const satisfactionTarget = 7

var (
	hundred             = decimal.NewFromInt(100)
	budgetOverrunCost   = decimal.NewFromFloat(1.5)
	dayBehindCost       = decimal.NewFromInt(2)
	satisfactionCost    = decimal.NewFromInt(5)
	DefaultSatisfaction = decimal.NewFromInt(10)
)

// DefaultKPIs is the state of a freshly created project
func DefaultKPIs() KPIs {
	return KPIs{
		TaskCompletionRate: decimal.Zero,
		BudgetAdherence:    decimal.Zero,
		ScheduleVariance:   0,
		ClientSatisfaction: DefaultSatisfaction,
	}
}

// TaskStats counts a project's tasks
type TaskStats struct {
	Total int
	Done  int
}

// CalculateKPIs derives the automatic KPIs at now. Client satisfaction is a
// manual input and is carried over unchanged.
func (p *Project) CalculateKPIs(stats TaskStats, now time.Time) KPIs {
	kpis := p.KPIs

	kpis.TaskCompletionRate = decimal.Zero
	if stats.Total > 0 {
		kpis.TaskCompletionRate = decimal.NewFromInt(int64(stats.Done)).
			Div(decimal.NewFromInt(int64(stats.Total))).
			Mul(hundred).
			Round(2)
	}

	kpis.BudgetAdherence = decimal.Zero
	if p.Budget.IsPositive() {
		kpis.BudgetAdherence = p.Spent.Div(p.Budget).Mul(hundred).Round(2)
	}

	kpis.ScheduleVariance = ScheduleVariance(p.StartDate, p.EndDate, now, p.Progress)
	return kpis
}

// ScheduleVariance is round((actual - expected) * totalDays) where expected
// is the elapsed share of the schedule clamped to [0, 1].
func ScheduleVariance(start, end, now time.Time, progress int) int {
	totalDays := end.Sub(start).Hours() / 24
	if totalDays <= 0 {
		return 0
	}
	elapsedDays := now.Sub(start).Hours() / 24

	expected := math.Min(math.Max(elapsedDays/totalDays, 0), 1)
	actual := float64(progress) / 100

	return int(math.Round((actual - expected) * totalDays))
}

// HealthScore starts at 100 and is penalised 1.5 per point of budget
// overrun past 100%, 2 per day behind schedule and 5 per point of client
// satisfaction below 7. The result is clamped to [0, 100].
func HealthScore(k KPIs) decimal.Decimal {
	score := hundred

	if k.BudgetAdherence.GreaterThan(hundred) {
		score = score.Sub(k.BudgetAdherence.Sub(hundred).Mul(budgetOverrunCost))
	}
	if k.ScheduleVariance < 0 {
		score = score.Sub(decimal.NewFromInt(int64(-k.ScheduleVariance)).Mul(dayBehindCost))
	}
	target := decimal.NewFromInt(satisfactionTarget)
	if k.ClientSatisfaction.LessThan(target) {
		score = score.Sub(target.Sub(k.ClientSatisfaction).Mul(satisfactionCost))
	}

	if score.IsNegative() {
		return decimal.Zero
	}
	if score.GreaterThan(hundred) {
		return hundred
	}
	return score.Round(2)
}

// RecalculateHealth refreshes KPIs and the health score in one explicit step
func (p *Project) RecalculateHealth(stats TaskStats, now time.Time) {
	p.KPIs = p.CalculateKPIs(stats, now)
	p.HealthScore = HealthScore(p.KPIs)
}
