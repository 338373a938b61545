package event

import (
	"time"

	"github.com/vidinfra/erpdesk/internal/types"
)

// CompanyEvent is an entry in the shared company calendar
type CompanyEvent struct {
	ID          string                   `json:"id"`
	Title       string                   `json:"title"`
	Description string                   `json:"description,omitempty"`
	Type        types.CompanyEventType   `json:"type"`
	StartDate   time.Time                `json:"start_date"`
	EndDate     *time.Time               `json:"end_date,omitempty"`
	Location    string                   `json:"location,omitempty"`
	Organizer   string                   `json:"organizer,omitempty"`
	Attendees   []string                 `json:"attendees"`
	Status      types.CompanyEventStatus `json:"status"`
	types.BaseModel
}

func (e *CompanyEvent) GetID() string { return e.ID }

func (e *CompanyEvent) Clone() *CompanyEvent {
	c := *e
	c.Attendees = append([]string{}, e.Attendees...)
	if e.EndDate != nil {
		t := *e.EndDate
		c.EndDate = &t
	}
	return &c
}

// IsUpcoming reports whether a scheduled event starts after now
func (e *CompanyEvent) IsUpcoming(now time.Time) bool {
	return e.Status == types.CompanyEventStatusScheduled && e.StartDate.After(now)
}
