package dto

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/domain/deal"
	"github.com/vidinfra/erpdesk/internal/types"
	"github.com/vidinfra/erpdesk/internal/validator"
)

type CreateDealRequest struct {
	Title         string          `json:"title" validate:"required"`
	Company       string          `json:"company" validate:"required"`
	ContactName   string          `json:"contact_name,omitempty"`
	ContactEmail  string          `json:"contact_email,omitempty"`
	Value         decimal.Decimal `json:"value" validate:"required"`
	Probability   int             `json:"probability"`
	Stage         types.DealStage `json:"stage,omitempty"`
	Owner         string          `json:"owner" validate:"required"`
	ExpectedClose *time.Time      `json:"expected_close,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

func (r *CreateDealRequest) Validate() error {
	if err := r.Stage.Validate(); err != nil {
		return err
	}
	return validator.ValidateRequest(r)
}

func (r *CreateDealRequest) ToDeal(ctx context.Context) *deal.Deal {
	return &deal.Deal{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DEAL),
		Title:         r.Title,
		Company:       r.Company,
		ContactName:   r.ContactName,
		ContactEmail:  r.ContactEmail,
		Value:         r.Value,
		Probability:   r.Probability,
		Stage:         lo.Ternary(r.Stage == "", types.DealStageLead, r.Stage),
		Owner:         r.Owner,
		ExpectedClose: r.ExpectedClose,
		Notes:         r.Notes,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
}

type UpdateDealRequest struct {
	Title         *string          `json:"title,omitempty"`
	Company       *string          `json:"company,omitempty"`
	ContactName   *string          `json:"contact_name,omitempty"`
	ContactEmail  *string          `json:"contact_email,omitempty"`
	Value         *decimal.Decimal `json:"value,omitempty"`
	Probability   *int             `json:"probability,omitempty"`
	Stage         *types.DealStage `json:"stage,omitempty"`
	Owner         *string          `json:"owner,omitempty"`
	ExpectedClose *time.Time       `json:"expected_close,omitempty"`
	Notes         *string          `json:"notes,omitempty"`
}

func (r *UpdateDealRequest) Validate() error {
	if r.Stage != nil {
		if err := r.Stage.Validate(); err != nil {
			return err
		}
	}
	return validatePatch(
		blankString("title", r.Title),
		blankString("company", r.Company),
		blankDecimal("value", r.Value),
		blankString("owner", r.Owner),
	)
}

func (r *UpdateDealRequest) Apply(d *deal.Deal) {
	set(&d.Title, r.Title)
	set(&d.Company, r.Company)
	set(&d.ContactName, r.ContactName)
	set(&d.ContactEmail, r.ContactEmail)
	set(&d.Value, r.Value)
	set(&d.Probability, r.Probability)
	set(&d.Stage, r.Stage)
	set(&d.Owner, r.Owner)
	set(&d.Notes, r.Notes)
	if r.ExpectedClose != nil {
		d.ExpectedClose = lo.ToPtr(*r.ExpectedClose)
	}
}

type DealResponse struct {
	*deal.Deal
	WeightedValue decimal.Decimal `json:"weighted_value"`
}

func NewDealResponse(d *deal.Deal) *DealResponse {
	return &DealResponse{Deal: d, WeightedValue: d.WeightedValue()}
}

type ListDealsResponse = types.ListResponse[*DealResponse]
