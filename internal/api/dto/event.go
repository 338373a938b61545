package dto

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/vidinfra/erpdesk/internal/domain/event"
	"github.com/vidinfra/erpdesk/internal/types"
	"github.com/vidinfra/erpdesk/internal/validator"
)

type CreateCompanyEventRequest struct {
	Title       string                   `json:"title" validate:"required"`
	Description string                   `json:"description,omitempty"`
	Type        types.CompanyEventType   `json:"type,omitempty"`
	StartDate   time.Time                `json:"start_date" validate:"required"`
	EndDate     *time.Time               `json:"end_date,omitempty"`
	Location    string                   `json:"location,omitempty"`
	Organizer   string                   `json:"organizer,omitempty"`
	Attendees   []string                 `json:"attendees,omitempty"`
	Status      types.CompanyEventStatus `json:"status,omitempty"`
}

func (r *CreateCompanyEventRequest) Validate() error {
	if err := r.Type.Validate(); err != nil {
		return err
	}
	if err := r.Status.Validate(); err != nil {
		return err
	}
	return validator.ValidateRequest(r)
}

func (r *CreateCompanyEventRequest) ToCompanyEvent(ctx context.Context) *event.CompanyEvent {
	return &event.CompanyEvent{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_EVENT),
		Title:       r.Title,
		Description: r.Description,
		Type:        lo.Ternary(r.Type == "", types.CompanyEventTypeOther, r.Type),
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Location:    r.Location,
		Organizer:   lo.Ternary(r.Organizer == "", types.GetUserID(ctx), r.Organizer),
		Attendees:   lo.Ternary(r.Attendees == nil, []string{}, r.Attendees),
		Status:      lo.Ternary(r.Status == "", types.CompanyEventStatusScheduled, r.Status),
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

type UpdateCompanyEventRequest struct {
	Title       *string                   `json:"title,omitempty"`
	Description *string                   `json:"description,omitempty"`
	Type        *types.CompanyEventType   `json:"type,omitempty"`
	StartDate   *time.Time                `json:"start_date,omitempty"`
	EndDate     *time.Time                `json:"end_date,omitempty"`
	Location    *string                   `json:"location,omitempty"`
	Organizer   *string                   `json:"organizer,omitempty"`
	Attendees   []string                  `json:"attendees,omitempty"`
	Status      *types.CompanyEventStatus `json:"status,omitempty"`
}

func (r *UpdateCompanyEventRequest) Validate() error {
	if r.Type != nil {
		if err := r.Type.Validate(); err != nil {
			return err
		}
	}
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	return validatePatch(
		blankString("title", r.Title),
		blankTime("start_date", r.StartDate),
	)
}

func (r *UpdateCompanyEventRequest) Apply(e *event.CompanyEvent) {
	set(&e.Title, r.Title)
	set(&e.Description, r.Description)
	set(&e.Type, r.Type)
	set(&e.StartDate, r.StartDate)
	set(&e.Location, r.Location)
	set(&e.Organizer, r.Organizer)
	set(&e.Status, r.Status)
	if r.EndDate != nil {
		e.EndDate = lo.ToPtr(*r.EndDate)
	}
	if r.Attendees != nil {
		e.Attendees = append([]string{}, r.Attendees...)
	}
}

type CompanyEventResponse struct {
	*event.CompanyEvent
}

type ListCompanyEventsResponse = types.ListResponse[*CompanyEventResponse]
