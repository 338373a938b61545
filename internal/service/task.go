package service

import (
	"context"

	"github.com/vidinfra/erpdesk/internal/api/dto"
	"github.com/vidinfra/erpdesk/internal/domain/task"
	ierr "github.com/vidinfra/erpdesk/internal/errors"
	"github.com/vidinfra/erpdesk/internal/types"
)

type TaskService interface {
	CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetTask(ctx context.Context, id string) (*dto.TaskResponse, error)
	GetTasks(ctx context.Context, filter *types.TaskFilter) (*dto.ListTasksResponse, error)
	UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	DeleteTask(ctx context.Context, id string) error
}

type taskService struct {
	ServiceParams
}

func NewTaskService(params ServiceParams) TaskService {
	return &taskService{
		ServiceParams: params,
	}
}

func (s *taskService) CreateTask(ctx context.Context, req dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t := req.ToTask(ctx)
	if err := s.TaskRepo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.Logger.Infow("created task",
		"task_id", t.ID,
		"project_id", t.ProjectID,
	)
	s.publishEvent(ctx, types.EventName(types.EntityTypeTask, types.ActionCreated), types.EntityTypeTask, t.ID, t)

	return &dto.TaskResponse{ProjectTask: t}, nil
}

func (s *taskService) GetTask(ctx context.Context, id string) (*dto.TaskResponse, error) {
	if err := requireID("task", id); err != nil {
		return nil, err
	}

	t, err := s.TaskRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &dto.TaskResponse{ProjectTask: t}, nil
}

func (s *taskService) GetTasks(ctx context.Context, filter *types.TaskFilter) (*dto.ListTasksResponse, error) {
	if filter == nil {
		filter = types.NewTaskFilter()
	}

	if err := filter.Validate(); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation)
	}

	tasks, err := s.TaskRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.TaskRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, &dto.TaskResponse{ProjectTask: t})
	}

	return &dto.ListTasksResponse{
		Items:      items,
		Pagination: types.NewPaginationResponse(total, filter.GetLimit(), filter.GetOffset()),
	}, nil
}

func (s *taskService) UpdateTask(ctx context.Context, id string, req dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.TaskRepo.Mutate(ctx, id, func(t *task.ProjectTask) error {
		req.Apply(t)
		t.Touch(ctx)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, types.EventName(types.EntityTypeTask, types.ActionUpdated), types.EntityTypeTask, t.ID, t)
	return &dto.TaskResponse{ProjectTask: t}, nil
}

// DeleteTask leaves the project KPIs untouched until health is recalculated
func (s *taskService) DeleteTask(ctx context.Context, id string) error {
	if err := requireID("task", id); err != nil {
		return err
	}

	if err := s.TaskRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publishEvent(ctx, types.EventName(types.EntityTypeTask, types.ActionDeleted), types.EntityTypeTask, id, nil)
	return nil
}
