package dto

import (
	"context"

	"github.com/samber/lo"
	"github.com/vidinfra/erpdesk/internal/domain/ticket"
	"github.com/vidinfra/erpdesk/internal/types"
	"github.com/vidinfra/erpdesk/internal/validator"
)

type CreateTicketRequest struct {
	Subject     string               `json:"subject" validate:"required"`
	Description string               `json:"description" validate:"required"`
	Requester   string               `json:"requester" validate:"required"`
	Assignee    string               `json:"assignee,omitempty"`
	Category    string               `json:"category,omitempty"`
	Priority    types.TicketPriority `json:"priority,omitempty"`
	Status      types.TicketStatus   `json:"status,omitempty"`
}

func (r *CreateTicketRequest) Validate() error {
	if err := r.Priority.Validate(); err != nil {
		return err
	}
	if err := r.Status.Validate(); err != nil {
		return err
	}
	return validator.ValidateRequest(r)
}

func (r *CreateTicketRequest) ToTicket(ctx context.Context) *ticket.Ticket {
	return &ticket.Ticket{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_TICKET),
		Number:      types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_TICKET),
		Subject:     r.Subject,
		Description: r.Description,
		Requester:   r.Requester,
		Assignee:    r.Assignee,
		Category:    r.Category,
		Priority:    lo.Ternary(r.Priority == "", types.TicketPriorityMedium, r.Priority),
		Status:      lo.Ternary(r.Status == "", types.TicketStatusOpen, r.Status),
		Comments:    []ticket.Comment{},
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

type UpdateTicketRequest struct {
	Subject     *string               `json:"subject,omitempty"`
	Description *string               `json:"description,omitempty"`
	Requester   *string               `json:"requester,omitempty"`
	Assignee    *string               `json:"assignee,omitempty"`
	Category    *string               `json:"category,omitempty"`
	Priority    *types.TicketPriority `json:"priority,omitempty"`
	Status      *types.TicketStatus   `json:"status,omitempty"`
}

func (r *UpdateTicketRequest) Validate() error {
	if r.Priority != nil {
		if err := r.Priority.Validate(); err != nil {
			return err
		}
	}
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	return validatePatch(
		blankString("subject", r.Subject),
		blankString("description", r.Description),
		blankString("requester", r.Requester),
	)
}

func (r *UpdateTicketRequest) Apply(t *ticket.Ticket) {
	set(&t.Subject, r.Subject)
	set(&t.Description, r.Description)
	set(&t.Requester, r.Requester)
	set(&t.Assignee, r.Assignee)
	set(&t.Category, r.Category)
	set(&t.Priority, r.Priority)
	set(&t.Status, r.Status)
}

type AddCommentRequest struct {
	Author string `json:"author,omitempty"`
	Body   string `json:"body" validate:"required"`
}

func (r *AddCommentRequest) Validate() error {
	return validator.ValidateRequest(r)
}

func (r *AddCommentRequest) ToComment(ctx context.Context) ticket.Comment {
	return ticket.Comment{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_COMMENT),
		Author:    lo.Ternary(r.Author == "", types.GetUserID(ctx), r.Author),
		Body:      r.Body,
		CreatedAt: types.Now(ctx),
	}
}

type TicketResponse struct {
	*ticket.Ticket
}

type ListTicketsResponse = types.ListResponse[*TicketResponse]
