package asset

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vidinfra/erpdesk/internal/types"
)

// FixedAsset is registered at purchase cost; no depreciation schedule is applied.
type FixedAsset struct {
	ID           string            `json:"id"`
	AssetTag     string            `json:"asset_tag"`
	Name         string            `json:"name"`
	Category     string            `json:"category"`
	SerialNumber string            `json:"serial_number,omitempty"`
	PurchaseDate time.Time         `json:"purchase_date"`
	PurchaseCost decimal.Decimal   `json:"purchase_cost"`
	CurrentValue decimal.Decimal   `json:"current_value"`
	Location     string            `json:"location,omitempty"`
	AssignedTo   string            `json:"assigned_to,omitempty"`
	Status       types.AssetStatus `json:"status"`
	types.BaseModel
}

func (a *FixedAsset) GetID() string { return a.ID }

func (a *FixedAsset) Clone() *FixedAsset {
	c := *a
	return &c
}
