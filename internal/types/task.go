package types

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusReview     TaskStatus = "review"
	TaskStatusDone       TaskStatus = "done"
)

var TaskStatuses = []TaskStatus{
	TaskStatusTodo,
	TaskStatusInProgress,
	TaskStatusReview,
	TaskStatusDone,
}

func (s TaskStatus) Validate() error {
	return validateEnum(s, "task_status", TaskStatuses...)
}

var TaskSortKeys = []string{"title", "assignee", "status", "priority", "due_date"}

type TaskFilter struct {
	*QueryFilter

	ProjectID string         `form:"project_id" json:"project_id,omitempty"`
	Status    TaskStatus     `form:"status" json:"status,omitempty"`
	Assignee  string         `form:"assignee" json:"assignee,omitempty"`
	Priority  TicketPriority `form:"priority" json:"priority,omitempty"`
}

func NewTaskFilter() *TaskFilter {
	return &TaskFilter{QueryFilter: NewDefaultQueryFilter()}
}

func NewNoLimitTaskFilter() *TaskFilter {
	return &TaskFilter{QueryFilter: NewNoLimitQueryFilter()}
}

func (f *TaskFilter) Validate() error {
	if f == nil {
		return nil
	}
	if err := f.Status.Validate(); err != nil {
		return err
	}
	if err := f.Priority.Validate(); err != nil {
		return err
	}
	return validateFilter(f.QueryFilter, TaskSortKeys, nil)
}
