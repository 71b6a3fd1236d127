package engine

import (
	"github.com/shopspring/decimal"

	"aws-recommender/core/explanation"
	"aws-recommender/core/types"
)

// CriterionScore is one criterion's share of a service score
type CriterionScore struct {
	Criterion    types.Criterion     `json:"criterion" yaml:"criterion"`
	Value        string              `json:"value" yaml:"value"`
	Score        int                 `json:"score" yaml:"score"`
	Defaulted    bool                `json:"defaulted" yaml:"defaulted"`
	Weight       decimal.Decimal     `json:"weight" yaml:"weight"`
	Contribution decimal.Decimal     `json:"contribution" yaml:"contribution"`
	Verdict      explanation.Verdict `json:"verdict" yaml:"verdict"`
}

// Breakdown explains how a service reached its score
type Breakdown struct {
	Service     string           `json:"service" yaml:"service"`
	Category    string           `json:"category" yaml:"category"`
	Criteria    []CriterionScore `json:"criteria" yaml:"criteria"`
	Raw         decimal.Decimal  `json:"raw" yaml:"raw"`
	MaxPossible decimal.Decimal  `json:"max_possible" yaml:"max_possible"`
	Score       int              `json:"score" yaml:"score"`
	Reason      string           `json:"reason" yaml:"reason"`
	Tradeoffs   string           `json:"tradeoffs" yaml:"tradeoffs"`
}

// Defaulted returns the criteria that fell back to the default score
func (b *Breakdown) Defaulted() []types.Criterion {
	var out []types.Criterion
	for _, c := range b.Criteria {
		if c.Defaulted {
			out = append(out, c.Criterion)
		}
	}
	return out
}
