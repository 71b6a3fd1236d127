package types

import "time"

// NoTradeoffs is the tradeoff text used when no criterion scored low
const NoTradeoffs = "No significant tradeoffs for your requirements."

// Recommendation is one ranked, explained catalog entry
type Recommendation struct {
	Service      string   `json:"service" yaml:"service"`
	Category     string   `json:"category" yaml:"category"`
	Description  string   `json:"description" yaml:"description"`
	Score        int      `json:"score" yaml:"score"`
	Reason       string   `json:"reason" yaml:"reason"`
	Tradeoffs    string   `json:"tradeoffs" yaml:"tradeoffs"`
	Alternatives []string `json:"alternatives" yaml:"alternatives"`
	Pros         []string `json:"pros" yaml:"pros"`
	Cons         []string `json:"cons" yaml:"cons"`
}

// RecommendationSet is the payload that gets persisted and exported
type RecommendationSet struct {
	Inputs          PreferenceVector `json:"inputs" yaml:"inputs"`
	Recommendations []Recommendation `json:"recommendations" yaml:"recommendations"`
}

// StoredRecommendation is the record kept in the lastRecommendation slot
type StoredRecommendation struct {
	Timestamp time.Time         `json:"timestamp" yaml:"timestamp"`
	Data      RecommendationSet `json:"data" yaml:"data"`
}

// Age returns how old the record is relative to now
func (s *StoredRecommendation) Age(now time.Time) time.Duration {
	return now.Sub(s.Timestamp)
}
