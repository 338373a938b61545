package types

// CompanyEventType categorises entries in the company calendar
type CompanyEventType string

const (
	CompanyEventTypeMeeting  CompanyEventType = "meeting"
	CompanyEventTypeTraining CompanyEventType = "training"
	CompanyEventTypeHoliday  CompanyEventType = "holiday"
	CompanyEventTypeSocial   CompanyEventType = "social"
	CompanyEventTypeOther    CompanyEventType = "other"
)

var CompanyEventTypes = []CompanyEventType{
	CompanyEventTypeMeeting,
	CompanyEventTypeTraining,
	CompanyEventTypeHoliday,
	CompanyEventTypeSocial,
	CompanyEventTypeOther,
}

func (t CompanyEventType) Validate() error {
	return validateEnum(t, "event_type", CompanyEventTypes...)
}

type CompanyEventStatus string

const (
	CompanyEventStatusScheduled CompanyEventStatus = "scheduled"
	CompanyEventStatusCompleted CompanyEventStatus = "completed"
	CompanyEventStatusCancelled CompanyEventStatus = "cancelled"
)

var CompanyEventStatuses = []CompanyEventStatus{
	CompanyEventStatusScheduled,
	CompanyEventStatusCompleted,
	CompanyEventStatusCancelled,
}

func (s CompanyEventStatus) Validate() error {
	return validateEnum(s, "event_status", CompanyEventStatuses...)
}

var CompanyEventSortKeys = []string{"title", "type", "start_date", "end_date", "location", "status"}

type CompanyEventFilter struct {
	*QueryFilter

	Type   CompanyEventType   `form:"type" json:"type,omitempty"`
	Status CompanyEventStatus `form:"status" json:"status,omitempty"`
}

func NewCompanyEventFilter() *CompanyEventFilter {
	return &CompanyEventFilter{QueryFilter: NewDefaultQueryFilter()}
}

func NewNoLimitCompanyEventFilter() *CompanyEventFilter {
	return &CompanyEventFilter{QueryFilter: NewNoLimitQueryFilter()}
}

func (f *CompanyEventFilter) Validate() error {
	if f == nil {
		return nil
	}
	if err := f.Type.Validate(); err != nil {
		return err
	}
	if err := f.Status.Validate(); err != nil {
		return err
	}
	return validateFilter(f.QueryFilter, CompanyEventSortKeys, nil)
}
