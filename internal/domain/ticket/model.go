package ticket

import (
	"time"

	"github.com/vidinfra/erpdesk/internal/types"
)

type Ticket struct {
	ID          string               `json:"id"`
	Number      string               `json:"number"`
	Subject     string               `json:"subject"`
	Description string               `json:"description"`
	Requester   string               `json:"requester"`
	Assignee    string               `json:"assignee,omitempty"`
	Category    string               `json:"category,omitempty"`
	Priority    types.TicketPriority `json:"priority"`
	Status      types.TicketStatus   `json:"status"`
	Comments    []Comment            `json:"comments"`
	types.BaseModel
}

type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func (t *Ticket) GetID() string { return t.ID }

func (t *Ticket) Clone() *Ticket {
	c := *t
	c.Comments = append([]Comment{}, t.Comments...)
	return &c
}
