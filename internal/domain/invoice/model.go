package invoice

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/types"
)

// Invoice is identified by its allocated number, e.g. INV-2024-0001
type Invoice struct {
	ID          string              `json:"id"`
	ClientName  string              `json:"client_name"`
	ClientEmail string              `json:"client_email,omitempty"`
	IssueDate   time.Time           `json:"issue_date"`
	DueDate     time.Time           `json:"due_date"`
	Items       []LineItem          `json:"items"`
	Subtotal    decimal.Decimal     `json:"subtotal"`
	VATRate     decimal.Decimal     `json:"vat_rate"`
	VATAmount   decimal.Decimal     `json:"vat_amount"`
	Total       decimal.Decimal     `json:"total"`
	Status      types.InvoiceStatus `json:"status"`
	Notes       string              `json:"notes,omitempty"`
	types.BaseModel
}

// LineItem is a single billed line. Amount is quantity times unit price.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Amount      decimal.Decimal `json:"amount"`
}

func (i *Invoice) GetID() string { return i.ID }

func (i *Invoice) Clone() *Invoice {
	c := *i
	c.Items = lo.Map(i.Items, func(li LineItem, _ int) LineItem { return li })
	return &c
}

// Recalculate derives line amounts, subtotal, VAT and total from the items
func (i *Invoice) Recalculate(vatRate decimal.Decimal) {
	subtotal := decimal.Zero
	for idx := range i.Items {
		item := &i.Items[idx]
		item.Amount = item.Quantity.Mul(item.UnitPrice).Round(2)
		subtotal = subtotal.Add(item.Amount)
	}
	i.Subtotal = subtotal
	i.VATRate = vatRate
	i.VATAmount = subtotal.Mul(vatRate).Round(2)
	i.Total = i.Subtotal.Add(i.VATAmount)
}

// IsOverdue reports whether a sent invoice is past its due date at now
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.Status == types.InvoiceStatusSent && !i.DueDate.IsZero() && now.After(i.DueDate)
}
