package dto

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/domain/expense"
	"github.com/vidinfra/erpdesk/internal/types"
	"github.com/vidinfra/erpdesk/internal/validator"
)

type CreateExpenseRequest struct {
	Date          time.Time           `json:"date" validate:"required"`
	Vendor        string              `json:"vendor" validate:"required"`
	Category      string              `json:"category" validate:"required"`
	Description   string              `json:"description,omitempty"`
	Amount        decimal.Decimal     `json:"amount" validate:"required"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	SubmittedBy   string              `json:"submitted_by,omitempty"`
	Status        types.ExpenseStatus `json:"status,omitempty"`
}

func (r *CreateExpenseRequest) Validate() error {
	if err := r.Status.Validate(); err != nil {
		return err
	}
	return validator.ValidateRequest(r)
}

func (r *CreateExpenseRequest) ToExpense(ctx context.Context, vatRate decimal.Decimal) *expense.Expense {
	return &expense.Expense{
		ID:            types.GenerateTimestampToken(types.TIMESTAMP_PREFIX_EXPENSE, types.Now(ctx)),
		Date:          r.Date,
		Vendor:        r.Vendor,
		Category:      r.Category,
		Description:   r.Description,
		Amount:        r.Amount,
		VATAmount:     expense.ComputeVAT(r.Amount, vatRate),
		PaymentMethod: r.PaymentMethod,
		SubmittedBy:   lo.Ternary(r.SubmittedBy == "", types.GetUserID(ctx), r.SubmittedBy),
		Status:        lo.Ternary(r.Status == "", types.ExpenseStatusPending, r.Status),
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

// UpdateExpenseRequest is a patch. The VAT amount recorded at creation is kept
// even when the amount changes.
type UpdateExpenseRequest struct {
	Date          *time.Time           `json:"date,omitempty"`
	Vendor        *string              `json:"vendor,omitempty"`
	Category      *string              `json:"category,omitempty"`
	Description   *string              `json:"description,omitempty"`
	Amount        *decimal.Decimal     `json:"amount,omitempty"`
	PaymentMethod *string              `json:"payment_method,omitempty"`
	SubmittedBy   *string              `json:"submitted_by,omitempty"`
	Status        *types.ExpenseStatus `json:"status,omitempty"`
}

func (r *UpdateExpenseRequest) Validate() error {
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	return validatePatch(
		blankTime("date", r.Date),
		blankString("vendor", r.Vendor),
		blankString("category", r.Category),
		blankDecimal("amount", r.Amount),
	)
}

func (r *UpdateExpenseRequest) Apply(e *expense.Expense) {
	set(&e.Date, r.Date)
	set(&e.Vendor, r.Vendor)
	set(&e.Category, r.Category)
	set(&e.Description, r.Description)
	set(&e.Amount, r.Amount)
	set(&e.PaymentMethod, r.PaymentMethod)
	set(&e.SubmittedBy, r.SubmittedBy)
	set(&e.Status, r.Status)
}

type ExpenseResponse struct {
	*expense.Expense
}

type ListExpensesResponse = types.ListResponse[*ExpenseResponse]
