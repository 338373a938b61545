package types

type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

var ProjectStatuses = []ProjectStatus{
	ProjectStatusPlanning,
	ProjectStatusActive,
	ProjectStatusOnHold,
	ProjectStatusCompleted,
	ProjectStatusCancelled,
}

func (s ProjectStatus) Validate() error {
	return validateEnum(s, "project_status", ProjectStatuses...)
}

// FileResolution picks how an upload colliding with an existing file name is applied
type FileResolution string

const (
	FileResolutionNone       FileResolution = ""
	FileResolutionNewVersion FileResolution = "new_version"
	FileResolutionOverwrite  FileResolution = "overwrite"
	FileResolutionRename     FileResolution = "rename"
)

func (r FileResolution) Validate() error {
	return validateEnum(r, "resolution",
		FileResolutionNewVersion,
		FileResolutionOverwrite,
		FileResolutionRename,
	)
}

var ProjectSortKeys = []string{"name", "client", "manager", "status", "start_date", "end_date", "budget", "spent", "health_score"}

type ProjectFilter struct {
	*QueryFilter

	Status    ProjectStatus `form:"status" json:"status,omitempty"`
	Manager   string        `form:"manager" json:"manager,omitempty"`
	MinBudget *float64      `form:"min_budget" json:"min_budget,omitempty"`
	MaxBudget *float64      `form:"max_budget" json:"max_budget,omitempty"`
	MinHealth *float64      `form:"min_health" json:"min_health,omitempty"`
}

func NewProjectFilter() *ProjectFilter {
	return &ProjectFilter{QueryFilter: NewDefaultQueryFilter()}
}

func NewNoLimitProjectFilter() *ProjectFilter {
	return &ProjectFilter{QueryFilter: NewNoLimitQueryFilter()}
}

func (f *ProjectFilter) BudgetRange() AmountRange {
	return AmountRange{Min: f.MinBudget, Max: f.MaxBudget}
}

func (f *ProjectFilter) Validate() error {
	if f == nil {
		return nil
	}
	if err := f.Status.Validate(); err != nil {
		return err
	}
	return validateFilter(f.QueryFilter, ProjectSortKeys, map[string]AmountRange{"budget": f.BudgetRange()})
}
