package expense

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/types"
)

type Expense struct {
	ID            string              `json:"id"`
	Date          time.Time           `json:"date"`
	Vendor        string              `json:"vendor"`
	Category      string              `json:"category"`
	Description   string              `json:"description,omitempty"`
	Amount        decimal.Decimal     `json:"amount"`
	VATAmount     decimal.Decimal     `json:"vat_amount"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	SubmittedBy   string              `json:"submitted_by,omitempty"`
	Status        types.ExpenseStatus `json:"status"`
	types.BaseModel
}

func (e *Expense) GetID() string { return e.ID }

func (e *Expense) Clone() *Expense {
	c := *e
	return &c
}

// ComputeVAT is the flat rate VAT on amount rounded to cents. It is applied
// once when the expense is recorded.
func ComputeVAT(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(rate).Round(2)
}
