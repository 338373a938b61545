package dto

import (
	"context"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/domain/asset"
	"github.com/vidinfra/erpdesk/internal/types"
	"github.com/vidinfra/erpdesk/internal/validator"
)

type CreateAssetRequest struct {
	Name         string            `json:"name" validate:"required"`
	Category     string            `json:"category" validate:"required"`
	SerialNumber string            `json:"serial_number,omitempty"`
	PurchaseDate time.Time         `json:"purchase_date" validate:"required"`
	PurchaseCost decimal.Decimal   `json:"purchase_cost" validate:"required"`
	Location     string            `json:"location,omitempty"`
	AssignedTo   string            `json:"assigned_to,omitempty"`
	Status       types.AssetStatus `json:"status,omitempty"`
}

func (r *CreateAssetRequest) Validate() error {
	if err := r.Status.Validate(); err != nil {
		return err
	}
	return validator.ValidateRequest(r)
}

// ToAsset registers the asset at its purchase cost
func (r *CreateAssetRequest) ToAsset(ctx context.Context) *asset.FixedAsset {
	return &asset.FixedAsset{
		ID:           types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ASSET),
		AssetTag:     types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_ASSET_TAG),
		Name:         r.Name,
		Category:     r.Category,
		SerialNumber: r.SerialNumber,
		PurchaseDate: r.PurchaseDate,
		PurchaseCost: r.PurchaseCost,
		CurrentValue: r.PurchaseCost,
		Location:     r.Location,
		AssignedTo:   r.AssignedTo,
		Status:       lo.Ternary(r.Status == "", types.AssetStatusActive, r.Status),
		BaseModel:    types.GetDefaultBaseModel(ctx),
	}
}

type UpdateAssetRequest struct {
	Name         *string            `json:"name,omitempty"`
	Category     *string            `json:"category,omitempty"`
	SerialNumber *string            `json:"serial_number,omitempty"`
	PurchaseDate *time.Time         `json:"purchase_date,omitempty"`
	PurchaseCost *decimal.Decimal   `json:"purchase_cost,omitempty"`
	CurrentValue *decimal.Decimal   `json:"current_value,omitempty"`
	Location     *string            `json:"location,omitempty"`
	AssignedTo   *string            `json:"assigned_to,omitempty"`
	Status       *types.AssetStatus `json:"status,omitempty"`
}

func (r *UpdateAssetRequest) Validate() error {
	if r.Status != nil {
		if err := r.Status.Validate(); err != nil {
			return err
		}
	}
	return validatePatch(
		blankString("name", r.Name),
		blankString("category", r.Category),
		blankTime("purchase_date", r.PurchaseDate),
		blankDecimal("purchase_cost", r.PurchaseCost),
	)
}

func (r *UpdateAssetRequest) Apply(a *asset.FixedAsset) {
	set(&a.Name, r.Name)
	set(&a.Category, r.Category)
	set(&a.SerialNumber, r.SerialNumber)
	set(&a.PurchaseDate, r.PurchaseDate)
	set(&a.PurchaseCost, r.PurchaseCost)
	set(&a.CurrentValue, r.CurrentValue)
	set(&a.Location, r.Location)
	set(&a.AssignedTo, r.AssignedTo)
	set(&a.Status, r.Status)
}

type AssetResponse struct {
	*asset.FixedAsset
}

type ListAssetsResponse = types.ListResponse[*AssetResponse]
