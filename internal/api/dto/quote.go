package dto

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/domain/quote"
	"github.com/vidinfra/erpdesk/internal/types"
	"github.com/vidinfra/erpdesk/internal/validator"
)

type CreateQuoteRequest struct {
	DealID      string            `json:"deal_id" validate:"required"`
	ClientName  string            `json:"client_name" validate:"required"`
	Description string            `json:"description,omitempty"`
	Amount      decimal.Decimal   `json:"amount" validate:"required"`
	Status      types.QuoteStatus `json:"status,omitempty"`
	ValidUntil  *time.Time        `json:"valid_until,omitempty"`
}

func (r *CreateQuoteRequest) Validate() error {
	if err := r.Status.Validate(); err != nil {
		return err
	}
	return validator.ValidateRequest(r)
}

func (r *CreateQuoteRequest) ToQuote(ctx context.Context) *quote.Quote {
	return &quote.Quote{
		ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_QUOTE),
		Number:      types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_QUOTE),
		DealID:      r.DealID,
		ClientName:  r.ClientName,
		Description: r.Description,
		Amount:      r.Amount,
		Status:      lo.Ternary(r.Status == "", types.QuoteStatusDraft, r.Status),
		ValidUntil:  r.ValidUntil,
		BaseModel:   types.GetDefaultBaseModel(ctx),
	}
}

type UpdateQuoteRequest struct {
	DealID      *string            `json:"deal_id,omitempty"`
	ClientName  *string            `json:"client_name,omitempty"`
	Description *string            `json:"description,omitempty"`
	Amount      *decimal.Decimal   `json:"amount,omitempty"`
	Status      *types.QuoteStatus `json:"status,omitempty"`
	ValidUntil  *time.Time         `json:"valid_until,omitempty"`
}

func (r *UpdateQuoteRequest) Validate() error {
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	return validatePatch(
		blankString("deal_id", r.DealID),
		blankString("client_name", r.ClientName),
		blankDecimal("amount", r.Amount),
	)
}

func (r *UpdateQuoteRequest) Apply(q *quote.Quote) {
	set(&q.DealID, r.DealID)
	set(&q.ClientName, r.ClientName)
	set(&q.Description, r.Description)
	set(&q.Amount, r.Amount)
	set(&q.Status, r.Status)
	if r.ValidUntil != nil {
		q.ValidUntil = lo.ToPtr(*r.ValidUntil)
	}
}

type QuoteResponse struct {
	*quote.Quote
}

type ListQuotesResponse = types.ListResponse[*QuoteResponse]
