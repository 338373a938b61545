package types

// DealStage is the position of a deal in the sales pipeline
type DealStage string

const (
	DealStageLead        DealStage = "lead"
	DealStageQualified   DealStage = "qualified"
	DealStageProposal    DealStage = "proposal"
	DealStageNegotiation DealStage = "negotiation"
	DealStageWon         DealStage = "won"
	DealStageLost        DealStage = "lost"
)

var DealStages = []DealStage{
	DealStageLead,
	DealStageQualified,
	DealStageProposal,
	DealStageNegotiation,
	DealStageWon,
	DealStageLost,
}

func (s DealStage) String() string {
	return string(s)
}

func (s DealStage) Validate() error {
	return validateEnum(s, "deal_stage", DealStages...)
}

// IsOpen reports whether the deal still counts toward the pipeline
func (s DealStage) IsOpen() bool {
	return s != DealStageWon && s != DealStageLost
}

var DealSortKeys = []string{"title", "company", "value", "probability", "stage", "owner", "expected_close"}

type DealFilter struct {
	*QueryFilter

	Stage          DealStage `form:"stage" json:"stage,omitempty"`
	Owner          string    `form:"owner" json:"owner,omitempty"`
	MinValue       *float64  `form:"min_value" json:"min_value,omitempty"`
	MaxValue       *float64  `form:"max_value" json:"max_value,omitempty"`
	MinProbability *float64  `form:"min_probability" json:"min_probability,omitempty"`
}

func NewDealFilter() *DealFilter {
	return &DealFilter{QueryFilter: NewDefaultQueryFilter()}
}

func NewNoLimitDealFilter() *DealFilter {
	return &DealFilter{QueryFilter: NewNoLimitQueryFilter()}
}

func (f *DealFilter) ValueRange() AmountRange {
	return AmountRange{Min: f.MinValue, Max: f.MaxValue}
}

func (f *DealFilter) Validate() error {
	if f == nil {
		return nil
	}
	if err := f.Stage.Validate(); err != nil {
		return err
	}
	return validateFilter(f.QueryFilter, DealSortKeys, map[string]AmountRange{"value": f.ValueRange()})
}
