package dto

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/domain/task"
	"github.com/vidinfra/erpdesk/internal/types"
	"github.com/vidinfra/erpdesk/internal/validator"
)

type CreateTaskRequest struct {
	ProjectID      string               `json:"project_id" validate:"required"`
	Title          string               `json:"title" validate:"required"`
	Description    string               `json:"description,omitempty"`
	Assignee       string               `json:"assignee,omitempty"`
	Status         types.TaskStatus     `json:"status,omitempty"`
	Priority       types.TicketPriority `json:"priority,omitempty"`
	DueDate        *time.Time           `json:"due_date,omitempty"`
	EstimatedHours decimal.Decimal      `json:"estimated_hours"`
}

func (r *CreateTaskRequest) Validate() error {
	if err := r.Status.Validate(); err != nil {
		return err
	}
	if err := r.Priority.Validate(); err != nil {
		return err
	}
	return validator.ValidateRequest(r)
}

func (r *CreateTaskRequest) ToTask(ctx context.Context) *task.ProjectTask {
	return &task.ProjectTask{
		ID:             types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TASK),
		ProjectID:      r.ProjectID,
		Title:          r.Title,
		Description:    r.Description,
		Assignee:       r.Assignee,
		Status:         lo.Ternary(r.Status == "", types.TaskStatusTodo, r.Status),
		Priority:       lo.Ternary(r.Priority == "", types.TicketPriorityMedium, r.Priority),
		DueDate:        r.DueDate,
		EstimatedHours: r.EstimatedHours,
		BaseModel:      types.GetDefaultBaseModel(ctx),
	}
}

type UpdateTaskRequest struct {
	ProjectID      *string               `json:"project_id,omitempty"`
	Title          *string               `json:"title,omitempty"`
	Description    *string               `json:"description,omitempty"`
	Assignee       *string               `json:"assignee,omitempty"`
	Status         *types.TaskStatus     `json:"status,omitempty"`
	Priority       *types.TicketPriority `json:"priority,omitempty"`
	DueDate        *time.Time            `json:"due_date,omitempty"`
	EstimatedHours *decimal.Decimal      `json:"estimated_hours,omitempty"`
}

func (r *UpdateTaskRequest) Validate() error {
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	if r.Priority != nil {
		if err := r.Priority.Validate(); err != nil {
			return err
		}
	}
	return validatePatch(
		blankString("project_id", r.ProjectID),
		blankString("title", r.Title),
	)
}

func (r *UpdateTaskRequest) Apply(t *task.ProjectTask) {
	set(&t.ProjectID, r.ProjectID)
	set(&t.Title, r.Title)
	set(&t.Description, r.Description)
	set(&t.Assignee, r.Assignee)
	set(&t.Status, r.Status)
	set(&t.Priority, r.Priority)
	set(&t.EstimatedHours, r.EstimatedHours)
	if r.DueDate != nil {
		t.DueDate = lo.ToPtr(*r.DueDate)
	}
}

type TaskResponse struct {
	*task.ProjectTask
}

type ListTasksResponse = types.ListResponse[*TaskResponse]
