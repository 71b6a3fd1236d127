// Package explanation - Recommendation rationale
// Turns per-criterion scores into "why it fits" and "tradeoff" sentences.
package explanation

import (
	"fmt"
	"strings"

	"aws-recommender/core/types"
)

const (
	// PositiveThreshold - scores at or above produce a reason sentence
	PositiveThreshold = 85

	// NegativeThreshold - scores at or below produce a tradeoff sentence
	NegativeThreshold = 60

	// WorkloadNegativeThreshold replaces NegativeThreshold for the workload type
	WorkloadNegativeThreshold = 40
)

// Separator joins sentences into a single paragraph
const Separator = ". "

// Verdict classifies a single criterion score
type Verdict string

const (
	VerdictStrength Verdict = "strength"
	VerdictNeutral  Verdict = "neutral"
	VerdictTradeoff Verdict = "tradeoff"
)

var reasonFormats = map[types.Criterion]string{
	types.WorkloadType:   "Highly suitable for %s workloads",
	types.Scale:          "Works well at %s scale",
	types.Budget:         "Cost-effective for %s budgets",
	types.TrafficPattern: "Handles %s traffic patterns well",
	types.Customization:  "Supports %s customization needs",
	types.Performance:    "Meets %s performance requirements",
	types.OpsPreference:  "Matches your %s operations preference",
}

var tradeoffFormats = map[types.Criterion]string{
	types.WorkloadType:   "Not ideal for %s workloads",
	types.Scale:          "May struggle with %s scale workloads",
	types.Budget:         "Can be expensive for %s budgets",
	types.TrafficPattern: "Not optimal for %s traffic patterns",
	types.Customization:  "Limited customization for %s requirements",
	types.Performance:    "May not meet %s performance needs",
	types.OpsPreference:  "Operations model doesn't align with %s preference",
}

// TradeoffThreshold returns the upper bound for a tradeoff on a criterion
func TradeoffThreshold(c types.Criterion) int {
	if c == types.WorkloadType {
		return WorkloadNegativeThreshold
	}
	return NegativeThreshold
}

// Classify returns the verdict for a criterion score
func Classify(c types.Criterion, score int) Verdict {
	switch {
	case score >= PositiveThreshold:
		return VerdictStrength
	case score <= TradeoffThreshold(c):
		return VerdictTradeoff
	default:
		return VerdictNeutral
	}
}

// Reason returns the positive sentence for a criterion value
func Reason(c types.Criterion, value string) string {
	return fmt.Sprintf(reasonFormats[c], value)
}

// Tradeoff returns the negative sentence for a criterion value
func Tradeoff(c types.Criterion, value string) string {
	return fmt.Sprintf(tradeoffFormats[c], value)
}

// Rationale accumulates sentences while a profile is scored
type Rationale struct {
	reasons   []string
	tradeoffs []string
}

// Add classifies a criterion score and records its sentence, if any
func (r *Rationale) Add(c types.Criterion, value string, score int) Verdict {
	v := Classify(c, score)
	switch v {
	case VerdictStrength:
		r.reasons = append(r.reasons, Reason(c, value))
	case VerdictTradeoff:
		r.tradeoffs = append(r.tradeoffs, Tradeoff(c, value))
	}
	return v
}

// Reason returns the joined reason sentences, empty when none
func (r *Rationale) Reason() string {
	return strings.Join(r.reasons, Separator)
}

// Tradeoffs returns the joined tradeoff sentences or types.NoTradeoffs
func (r *Rationale) Tradeoffs() string {
	if len(r.tradeoffs) == 0 {
		return types.NoTradeoffs
	}
	return strings.Join(r.tradeoffs, Separator)
}
