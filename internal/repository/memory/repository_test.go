package memory

import (
	"context"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vidinfra/erpdesk/internal/domain/deal"
	"github.com/vidinfra/erpdesk/internal/domain/expense"
	"github.com/vidinfra/erpdesk/internal/domain/task"
	"github.com/vidinfra/erpdesk/internal/domain/ticket"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/types"
)

func ids[T interface{ GetID() string }](items []T) []string {
	return lo.Map(items, func(item T, _ int) string { return item.GetID() })
}

func TestExpenseRepository_FilterAndSort(t *testing.T) {
	ctx := context.Background()
	repo := NewExpenseRepository(logger.NewNopLogger())

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	for i, e := range []*expense.Expense{
		{ID: "EXP-1", Vendor: "Office Depot", Category: "supplies", Amount: decimal.NewFromInt(120), Status: types.ExpenseStatusPending},
		{ID: "EXP-2", Vendor: "AWS", Category: "software", Amount: decimal.NewFromInt(900), Status: types.ExpenseStatusApproved},
		{ID: "EXP-3", Vendor: "office cafe", Category: "meals", Amount: decimal.NewFromInt(45), Status: types.ExpenseStatusApproved},
		{ID: "EXP-4", Vendor: "Delta", Category: "travel", Amount: decimal.NewFromInt(640), Status: types.ExpenseStatusPending},
	} {
		e.Date = day.AddDate(0, 0, i)
		require.NoError(t, repo.Create(ctx, e))
	}

	t.Run("search is case insensitive", func(t *testing.T) {
		f := types.NewExpenseFilter()
		f.Query = lo.ToPtr("OFFICE")
		got, err := repo.List(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, []string{"EXP-1", "EXP-3"}, ids(got))
	})

	t.Run("filters are conjunctive", func(t *testing.T) {
		f := types.NewExpenseFilter()
		f.Status = types.ExpenseStatusApproved
		f.MinAmount = lo.ToPtr(100.0)
		got, err := repo.List(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, []string{"EXP-2"}, ids(got))

		count, err := repo.Count(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("sort by amount descending", func(t *testing.T) {
		f := types.NewExpenseFilter()
		f.Sort = lo.ToPtr("amount")
		f.Order = lo.ToPtr(types.OrderDesc)
		got, err := repo.List(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, []string{"EXP-2", "EXP-4", "EXP-1", "EXP-3"}, ids(got))
	})

	t.Run("pagination applies after filtering", func(t *testing.T) {
		f := types.NewExpenseFilter()
		f.Limit = lo.ToPtr(2)
		f.Offset = lo.ToPtr(1)
		got, err := repo.List(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, []string{"EXP-2", "EXP-3"}, ids(got))

		count, err := repo.Count(ctx, f)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("nil filter lists everything", func(t *testing.T) {
		got, err := repo.List(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, got, 4)
	})
}

func TestDealRepository_ProbabilityThresholdAndUndefinedDates(t *testing.T) {
	ctx := context.Background()
	repo := NewDealRepository(logger.NewNopLogger())

	close1 := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)
	close2 := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	for _, d := range []*deal.Deal{
		{ID: "d1", Title: "A", Probability: 20, ExpectedClose: &close1},
		{ID: "d2", Title: "B", Probability: 80},
		{ID: "d3", Title: "C", Probability: 60, ExpectedClose: &close2},
	} {
		require.NoError(t, repo.Create(ctx, d))
	}

	f := types.NewDealFilter()
	f.MinProbability = lo.ToPtr(60.0)
	got, err := repo.List(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, []string{"d2", "d3"}, ids(got))

	f = types.NewDealFilter()
	f.Sort = lo.ToPtr("expected_close")
	got, err = repo.List(ctx, f)
	require.NoError(t, err)
	// d2 has no close date and keeps its slot
	assert.Equal(t, []string{"d3", "d2", "d1"}, ids(got))
}

func TestTicketRepository_PrioritySortsBySeverity(t *testing.T) {
	ctx := context.Background()
	repo := NewTicketRepository(logger.NewNopLogger())

	for _, tk := range []*ticket.Ticket{
		{ID: "t1", Priority: types.TicketPriorityMedium},
		{ID: "t2", Priority: types.TicketPriorityCritical},
		{ID: "t3", Priority: types.TicketPriorityLow},
		{ID: "t4", Priority: types.TicketPriorityHigh},
	} {
		require.NoError(t, repo.Create(ctx, tk))
	}

	f := types.NewTicketFilter()
	f.Sort = lo.ToPtr("priority")
	got, err := repo.List(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, []string{"t3", "t1", "t4", "t2"}, ids(got))
}

func TestTaskRepository_ByProject(t *testing.T) {
	ctx := context.Background()
	repo := NewTaskRepository(logger.NewNopLogger())

	require.NoError(t, repo.Create(ctx, &task.ProjectTask{ID: "k1", ProjectID: "p1", Status: types.TaskStatusDone}))
	require.NoError(t, repo.Create(ctx, &task.ProjectTask{ID: "k2", ProjectID: "p2", Status: types.TaskStatusTodo}))
	require.NoError(t, repo.Create(ctx, &task.ProjectTask{ID: "k3", ProjectID: "p1", Status: types.TaskStatusTodo}))

	f := types.NewNoLimitTaskFilter()
	f.ProjectID = "p1"
	got, err := repo.List(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, []string{"k1", "k3"}, ids(got))

	// deleting leaves the other records in order
	require.NoError(t, repo.Delete(ctx, "k1"))
	got, err = repo.List(ctx, f)
	require.NoError(t, err)
	assert.Equal(t, []string{"k3"}, ids(got))
}
