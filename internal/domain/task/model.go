package task

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/types"
)

// ProjectTask points at its project by id; no integrity check is made.
type ProjectTask struct {
	ID             string               `json:"id"`
	ProjectID      string               `json:"project_id"`
	Title          string               `json:"title"`
	Description    string               `json:"description,omitempty"`
	Assignee       string               `json:"assignee,omitempty"`
	Status         types.TaskStatus     `json:"status"`
	Priority       types.TicketPriority `json:"priority"`
	DueDate        *time.Time           `json:"due_date,omitempty"`
	EstimatedHours decimal.Decimal      `json:"estimated_hours"`
	types.BaseModel
}

func (t *ProjectTask) GetID() string { return t.ID }

func (t *ProjectTask) Clone() *ProjectTask {
	c := *t
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	return &c
}
