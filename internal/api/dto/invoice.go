package dto

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/domain/invoice"
	"github.com/vidinfra/erpdesk/internal/types"
	"github.com/vidinfra/erpdesk/internal/validator"
)

type LineItemRequest struct {
	Description string          `json:"description" validate:"required"`
	Quantity    decimal.Decimal `json:"quantity" validate:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price" validate:"required"`
}

func toLineItems(items []LineItemRequest) []invoice.LineItem {
	return lo.Map(items, func(item LineItemRequest, _ int) invoice.LineItem {
		return invoice.LineItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	})
}

type CreateInvoiceRequest struct {
	// Number is a previously reserved invoice number. A new one is allocated when empty.
	Number      string              `json:"number,omitempty"`
	ClientName  string              `json:"client_name" validate:"required"`
	ClientEmail string              `json:"client_email,omitempty"`
	IssueDate   time.Time           `json:"issue_date" validate:"required"`
	DueDate     time.Time           `json:"due_date" validate:"required"`
	Items       []LineItemRequest   `json:"items" validate:"required,min=1,dive"`
	Status      types.InvoiceStatus `json:"status,omitempty"`
	Notes       string              `json:"notes,omitempty"`
}

func (r *CreateInvoiceRequest) Validate() error {
	if err := r.Status.Validate(); err != nil {
		return err
	}
	return validator.ValidateRequest(r)
}

func (r *CreateInvoiceRequest) ToInvoice(ctx context.Context, id string, vatRate decimal.Decimal) *invoice.Invoice {
	inv := &invoice.Invoice{
		ID:          id,
		ClientName:  r.ClientName,
		ClientEmail: r.ClientEmail,
		IssueDate:   r.IssueDate,
		DueDate:     r.DueDate,
		Items:       toLineItems(r.Items),
		Status:      lo.Ternary(r.Status == "", types.InvoiceStatusDraft, r.Status),
		Notes:       r.Notes,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
	inv.Recalculate(vatRate)
	return inv
}

// UpdateInvoiceRequest is a patch; nil fields are left unchanged. Replacing
// the items recalculates the totals.
type UpdateInvoiceRequest struct {
	ClientName  *string              `json:"client_name,omitempty"`
	ClientEmail *string              `json:"client_email,omitempty"`
	IssueDate   *time.Time           `json:"issue_date,omitempty"`
	DueDate     *time.Time           `json:"due_date,omitempty"`
	Items       []LineItemRequest    `json:"items,omitempty" validate:"omitempty,dive"`
	Status      *types.InvoiceStatus `json:"status,omitempty"`
	Notes       *string              `json:"notes,omitempty"`
}

func (r *UpdateInvoiceRequest) Validate() error {
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	if err := validatePatch(
		blankString("client_name", r.ClientName),
		blankTime("issue_date", r.IssueDate),
		blankTime("due_date", r.DueDate),
	); err != nil {
		return err
	}
	return validator.ValidateRequest(r)
}

func (r *UpdateInvoiceRequest) Apply(inv *invoice.Invoice, vatRate decimal.Decimal) {
	set(&inv.ClientName, r.ClientName)
	set(&inv.ClientEmail, r.ClientEmail)
	set(&inv.IssueDate, r.IssueDate)
	set(&inv.DueDate, r.DueDate)
	set(&inv.Status, r.Status)
	set(&inv.Notes, r.Notes)
	if len(r.Items) > 0 {
		inv.Items = toLineItems(r.Items)
		inv.Recalculate(vatRate)
	}
}

type InvoiceResponse struct {
	*invoice.Invoice
}

type ListInvoicesResponse = types.ListResponse[*InvoiceResponse]

// InvoiceNumberResponse describes a peeked or reserved invoice number
type InvoiceNumberResponse struct {
	Number   string `json:"number"`
	Year     int    `json:"year"`
	Sequence int    `json:"sequence"`
}

type ReleaseInvoiceNumberResponse struct {
	Number   string `json:"number"`
	Released bool   `json:"released"`
}
