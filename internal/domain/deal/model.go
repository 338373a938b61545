package deal

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/types"
)

type Deal struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Company       string          `json:"company"`
	ContactName   string          `json:"contact_name,omitempty"`
	ContactEmail  string          `json:"contact_email,omitempty"`
	Value         decimal.Decimal `json:"value"`
	Probability   int             `json:"probability"`
	Stage         types.DealStage `json:"stage"`
	Owner         string          `json:"owner"`
	ExpectedClose *time.Time      `json:"expected_close,omitempty"`
	Notes         string          `json:"notes,omitempty"`
	types.BaseModel
}

func (d *Deal) GetID() string { return d.ID }

func (d *Deal) Clone() *Deal {
	c := *d
	if d.ExpectedClose != nil {
		t := *d.ExpectedClose
		c.ExpectedClose = &t
	}
	return &c
}

// WeightedValue is the value scaled by the win probability
func (d *Deal) WeightedValue() decimal.Decimal {
	return d.Value.Mul(decimal.NewFromInt(int64(d.Probability))).Div(decimal.NewFromInt(100)).Round(2)
}
