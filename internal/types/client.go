package types

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
	ClientStatusProspect ClientStatus = "prospect"
)

var ClientStatuses = []ClientStatus{
	ClientStatusActive,
	ClientStatusInactive,
	ClientStatusProspect,
}

func (s ClientStatus) Validate() error {
	return validateEnum(s, "client_status", ClientStatuses...)
}

var ClientSortKeys = []string{"name", "company", "industry", "status", "total_revenue", "created_at"}

type ClientFilter struct {
	*QueryFilter

	Status   ClientStatus `form:"status" json:"status,omitempty"`
	Industry string       `form:"industry" json:"industry,omitempty"`
}

func NewClientFilter() *ClientFilter {
	return &ClientFilter{QueryFilter: NewDefaultQueryFilter()}
}

func NewNoLimitClientFilter() *ClientFilter {
	return &ClientFilter{QueryFilter: NewNoLimitQueryFilter()}
}

func (f *ClientFilter) Validate() error {
	if f == nil {
		return nil
	}
	if err := f.Status.Validate(); err != nil {
		return err
	}
	return validateFilter(f.QueryFilter, ClientSortKeys, nil)
}
