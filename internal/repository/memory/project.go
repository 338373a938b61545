package memory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/domain/project"
	"github.com/vidinfra/erpdesk/internal/logger"
	"github.com/vidinfra/erpdesk/internal/projector"
	"github.com/vidinfra/erpdesk/internal/store"
	"github.com/vidinfra/erpdesk/internal/types"
)

type projectRepository struct {
	*store.Memory[*project.Project]
	logger *logger.Logger
}

func NewProjectRepository(log *logger.Logger) project.Repository {
	return &projectRepository{
		Memory: store.NewMemory[*project.Project](types.EntityTypeProject, store.OrderInsertion),
		logger: log,
	}
}

var projectSortKeys = map[string]projector.KeyFunc[*project.Project]{
	"name":         projector.Defined(func(p *project.Project) projector.Value { return str(p.Name) }),
	"client":       projector.Defined(func(p *project.Project) projector.Value { return str(p.Client) }),
	"manager":      projector.Defined(func(p *project.Project) projector.Value { return str(p.Manager) }),
	"status":       projector.Defined(func(p *project.Project) projector.Value { return str(string(p.Status)) }),
	"start_date":   projector.Defined(func(p *project.Project) projector.Value { return projector.Time(p.StartDate) }),
	"end_date":     projector.Defined(func(p *project.Project) projector.Value { return projector.Time(p.EndDate) }),
	"budget":       projector.Defined(func(p *project.Project) projector.Value { return num(p.Budget) }),
	"spent":        projector.Defined(func(p *project.Project) projector.Value { return num(p.Spent) }),
	"health_score": projector.Defined(func(p *project.Project) projector.Value { return num(p.HealthScore) }),
}

func (r *projectRepository) query(filter *types.ProjectFilter) query[*project.Project] {
	if filter == nil {
		filter = types.NewNoLimitProjectFilter()
	}
	minBudget, maxBudget := filter.BudgetRange().Bounds()
	return query[*project.Project]{
		filter: filter.QueryFilter,
		preds: []projector.Predicate[*project.Project]{
			projector.Contains(filter.GetQuery(),
				func(p *project.Project) string { return p.Name },
				func(p *project.Project) string { return p.Client },
				func(p *project.Project) string { return p.Description },
			),
			projector.Equals(filter.Status, func(p *project.Project) types.ProjectStatus { return p.Status }),
			projector.Equals(filter.Manager, func(p *project.Project) string { return p.Manager }),
			projector.Range(minBudget, maxBudget, func(p *project.Project) decimal.Decimal { return p.Budget }),
			projector.AtLeast(floatPtr(filter.MinHealth), func(p *project.Project) decimal.Decimal { return p.HealthScore }),
		},
		keys: projectSortKeys,
	}
}

func (r *projectRepository) List(ctx context.Context, filter *types.ProjectFilter) ([]*project.Project, error) {
	return r.query(filter).list(ctx, r.Memory), nil
}

func (r *projectRepository) Count(ctx context.Context, filter *types.ProjectFilter) (int, error) {
	return r.query(filter).count(ctx, r.Memory), nil
}
