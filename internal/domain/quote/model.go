package quote

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/types"
)

// Quote references its deal by id only; the deal may be deleted later.
type Quote struct {
	ID          string            `json:"id"`
	Number      string            `json:"number"`
	DealID      string            `json:"deal_id"`
	ClientName  string            `json:"client_name"`
	Description string            `json:"description,omitempty"`
	Amount      decimal.Decimal   `json:"amount"`
	Status      types.QuoteStatus `json:"status"`
	ValidUntil  *time.Time        `json:"valid_until,omitempty"`
	types.BaseModel
}

func (q *Quote) GetID() string { return q.ID }

func (q *Quote) Clone() *Quote {
	c := *q
	if q.ValidUntil != nil {
		t := *q.ValidUntil
		c.ValidUntil = &t
	}
	return &c
}
