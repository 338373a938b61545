package memory

import (
	"context"
	"time"

	"github.com/vidinfra/erpdesk/internal/domain/task"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/projector"
	"github.com/vidinfra/erpdesk/internal/store"
	"github.com/vidinfra/erpdesk/internal/types"
)

type taskRepository struct {
	*store.Memory[*task.ProjectTask]
	logger *logger.Logger
}

func NewTaskRepository(log *logger.Logger) task.Repository {
	return &taskRepository{
		Memory: store.NewMemory[*task.ProjectTask](types.EntityTypeTask, store.OrderInsertion),
		logger: log,
	}
}

var taskSortKeys = map[string]projector.KeyFunc[*task.ProjectTask]{
	"title":    projector.Defined(func(t *task.ProjectTask) projector.Value { return str(t.Title) }),
	"assignee": projector.Defined(func(t *task.ProjectTask) projector.Value { return str(t.Assignee) }),
	"status":   projector.Defined(func(t *task.ProjectTask) projector.Value { return str(string(t.Status)) }),
	"priority": projector.Defined(func(t *task.ProjectTask) projector.Value { return projector.Int(t.Priority.Rank()) }),
	"due_date": optTime(func(t *task.ProjectTask) *time.Time { return t.DueDate }),
}

func (r *taskRepository) query(filter *types.TaskFilter) query[*task.ProjectTask] {
	if filter == nil {
		filter = types.NewNoLimitTaskFilter()
	}
	return query[*task.ProjectTask]{
		filter: filter.QueryFilter,
		preds: []projector.Predicate[*task.ProjectTask]{
			projector.Contains(filter.GetQuery(),
				func(t *task.ProjectTask) string { return t.Title },
				func(t *task.ProjectTask) string { return t.Description },
			),
			projector.Equals(filter.ProjectID, func(t *task.ProjectTask) string { return t.ProjectID }),
			projector.Equals(filter.Status, func(t *task.ProjectTask) types.TaskStatus { return t.Status }),
			projector.Equals(filter.Assignee, func(t *task.ProjectTask) string { return t.Assignee }),
			projector.Equals(filter.Priority, func(t *task.ProjectTask) types.TicketPriority { return t.Priority }),
		},
		keys: taskSortKeys,
	}
}

func (r *taskRepository) List(ctx context.Context, filter *types.TaskFilter) ([]*task.ProjectTask, error) {
	return r.query(filter).list(ctx, r.Memory), nil
}

func (r *taskRepository) Count(ctx context.Context, filter *types.TaskFilter) (int, error) {
	return r.query(filter).count(ctx, r.Memory), nil
}
