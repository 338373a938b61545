package types

type ExpenseStatus string

const (
	ExpenseStatusPending    ExpenseStatus = "pending"
	ExpenseStatusApproved   ExpenseStatus = "approved"
	ExpenseStatusRejected   ExpenseStatus = "rejected"
	ExpenseStatusReimbursed ExpenseStatus = "reimbursed"
)

var ExpenseStatuses = []ExpenseStatus{
	ExpenseStatusPending,
	ExpenseStatusApproved,
	ExpenseStatusRejected,
	ExpenseStatusReimbursed,
}

func (s ExpenseStatus) String() string {
	return string(s)
}

func (s ExpenseStatus) Validate() error {
	return validateEnum(s, "expense_status", ExpenseStatuses...)
}

var ExpenseSortKeys = []string{"id", "date", "vendor", "category", "amount", "vat_amount", "status"}

type ExpenseFilter struct {
	*QueryFilter

	Status    ExpenseStatus `form:"status" json:"status,omitempty"`
	Category  string        `form:"category" json:"category,omitempty"`
	Vendor    string        `form:"vendor" json:"vendor,omitempty"`
	MinAmount *float64      `form:"min_amount" json:"min_amount,omitempty"`
	MaxAmount *float64      `form:"max_amount" json:"max_amount,omitempty"`
}

func NewExpenseFilter() *ExpenseFilter {
	return &ExpenseFilter{QueryFilter: NewDefaultQueryFilter()}
}

func NewNoLimitExpenseFilter() *ExpenseFilter {
	return &ExpenseFilter{QueryFilter: NewNoLimitQueryFilter()}
}

func (f *ExpenseFilter) AmountRange() AmountRange {
	return AmountRange{Min: f.MinAmount, Max: f.MaxAmount}
}

func (f *ExpenseFilter) Validate() error {
	if f == nil {
		return nil
	}
	if err := f.Status.Validate(); err != nil {
		return err
	}
	return validateFilter(f.QueryFilter, ExpenseSortKeys, map[string]AmountRange{"amount": f.AmountRange()})
}
