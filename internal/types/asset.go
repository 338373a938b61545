package types

type AssetStatus string

const (
	AssetStatusActive        AssetStatus = "active"
	AssetStatusInMaintenance AssetStatus = "in_maintenance"
	AssetStatusDisposed      AssetStatus = "disposed"
)

var AssetStatuses = []AssetStatus{
	AssetStatusActive,
	AssetStatusInMaintenance,
	AssetStatusDisposed,
}

func (s AssetStatus) Validate() error {
	return validateEnum(s, "asset_status", AssetStatuses...)
}

var AssetSortKeys = []string{"name", "category", "purchase_date", "purchase_cost", "current_value", "status", "location"}

type AssetFilter struct {
	*QueryFilter

	Status   AssetStatus `form:"status" json:"status,omitempty"`
	Category string      `form:"category" json:"category,omitempty"`
	MinValue *float64    `form:"min_value" json:"min_value,omitempty"`
	MaxValue *float64    `form:"max_value" json:"max_value,omitempty"`
}

func NewAssetFilter() *AssetFilter {
	return &AssetFilter{QueryFilter: NewDefaultQueryFilter()}
}

func NewNoLimitAssetFilter() *AssetFilter {
	return &AssetFilter{QueryFilter: NewNoLimitQueryFilter()}
}

// ValueRange bounds the current value of the asset
func (f *AssetFilter) ValueRange() AmountRange {
	return AmountRange{Min: f.MinValue, Max: f.MaxValue}
}

func (f *AssetFilter) Validate() error {
	if f == nil {
		return nil
	}
	if err := f.Status.Validate(); err != nil {
		return err
	}
	return validateFilter(f.QueryFilter, AssetSortKeys, map[string]AmountRange{"value": f.ValueRange()})
}
