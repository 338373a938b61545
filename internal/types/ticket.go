package types

type TicketPriority string

const (
	TicketPriorityLow      TicketPriority = "low"
	TicketPriorityMedium   TicketPriority = "medium"
	TicketPriorityHigh     TicketPriority = "high"
	TicketPriorityCritical TicketPriority = "critical"
)

var TicketPriorities = []TicketPriority{
	TicketPriorityLow,
	TicketPriorityMedium,
	TicketPriorityHigh,
	TicketPriorityCritical,
}

func (p TicketPriority) Validate() error {
	return validateEnum(p, "ticket_priority", TicketPriorities...)
}

// Rank orders priorities from low to critical for sorting
func (p TicketPriority) Rank() int {
	switch p {
	case TicketPriorityLow:
		return 1
	case TicketPriorityMedium:
		return 2
	case TicketPriorityHigh:
		return 3
	case TicketPriorityCritical:
		return 4
	}
	return 0
}

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

var TicketStatuses = []TicketStatus{
	TicketStatusOpen,
	TicketStatusInProgress,
	TicketStatusResolved,
	TicketStatusClosed,
}

func (s TicketStatus) Validate() error {
	return validateEnum(s, "ticket_status", TicketStatuses...)
}

// IsOpen reports whether someone still has to act on the ticket
func (s TicketStatus) IsOpen() bool {
	return s == TicketStatusOpen || s == TicketStatusInProgress
}

var TicketSortKeys = []string{"number", "subject", "priority", "status", "assignee", "created_at"}

type TicketFilter struct {
	*QueryFilter

	Status   TicketStatus   `form:"status" json:"status,omitempty"`
	Priority TicketPriority `form:"priority" json:"priority,omitempty"`
	Assignee string         `form:"assignee" json:"assignee,omitempty"`
}

func NewTicketFilter() *TicketFilter {
	return &TicketFilter{QueryFilter: NewDefaultQueryFilter()}
}

func NewNoLimitTicketFilter() *TicketFilter {
	return &TicketFilter{QueryFilter: NewNoLimitQueryFilter()}
}

func (f *TicketFilter) Validate() error {
	if f == nil {
		return nil
	}
	if err := f.Status.Validate(); err != nil {
		return err
	}
	if err := f.Priority.Validate(); err != nil {
		return err
	}
	return validateFilter(f.QueryFilter, TicketSortKeys, nil)
}
