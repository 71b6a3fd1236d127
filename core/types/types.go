// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

// Criterion is one of the seven questionnaire dimensions a service is scored on
type Criterion string

const (
	WorkloadType   Criterion = "workloadType"
	Scale          Criterion = "scale"
	Budget         Criterion = "budget"
	TrafficPattern Criterion = "trafficPattern"
	Customization  Criterion = "customization"
	Performance    Criterion = "performance"
	OpsPreference  Criterion = "opsPreference"
)

// Workload types
const (
	WorkloadWebApp     = "webApp"
	WorkloadAPI        = "api"
	WorkloadML         = "ml"
	WorkloadData       = "data"
	WorkloadServerless = "serverless"
	WorkloadStorage    = "storage"
	WorkloadStreaming  = "streaming"
)

// Scale values
const (
	ScaleSmall      = "small"
	ScaleMedium     = "medium"
	ScaleLarge      = "large"
	ScaleEnterprise = "enterprise"
)

// Budget values
const (
	BudgetVeryLow = "veryLow"
	BudgetLow     = "low"
	BudgetMedium  = "medium"
	BudgetHigh    = "high"
)

// Traffic patterns
const (
	TrafficPredictable = "predictable"
	TrafficVariable    = "variable"
	TrafficSpiky       = "spiky"
)

// Customization levels
const (
	CustomizationLow    = "low"
	CustomizationMedium = "medium"
	CustomizationHigh   = "high"
)

// Performance requirements
const (
	PerformanceStandard   = "standard"
	PerformanceHigh       = "high"
	PerformanceLowLatency = "lowLatency"
)

// Operations preferences
const (
	OpsFullyManaged = "fullyManaged"
	OpsPartial      = "partial"
	OpsFullControl  = "fullControl"
)

// Option is an enumerated criterion value with its display label
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

var criteria = []Criterion{
	WorkloadType,
	Scale,
	Budget,
	TrafficPattern,
	Customization,
	Performance,
	OpsPreference,
}

var criterionLabels = map[Criterion]string{
	WorkloadType:   "Workload type",
	Scale:          "Scale",
	Budget:         "Budget",
	TrafficPattern: "Traffic pattern",
	Customization:  "Customization",
	Performance:    "Performance",
	OpsPreference:  "Operations preference",
}

var criterionOptions = map[Criterion][]Option{
	WorkloadType: {
		{WorkloadWebApp, "Web application"},
		{WorkloadAPI, "API / microservices"},
		{WorkloadML, "Machine learning"},
		{WorkloadData, "Data processing"},
		{WorkloadServerless, "Serverless / event-driven"},
		{WorkloadStorage, "Storage"},
		{WorkloadStreaming, "Streaming"},
	},
	Scale: {
		{ScaleSmall, "Small"},
		{ScaleMedium, "Medium"},
		{ScaleLarge, "Large"},
		{ScaleEnterprise, "Enterprise"},
	},
	Budget: {
		{BudgetVeryLow, "Very low"},
		{BudgetLow, "Low"},
		{BudgetMedium, "Medium"},
		{BudgetHigh, "High"},
	},
	TrafficPattern: {
		{TrafficPredictable, "Predictable"},
		{TrafficVariable, "Variable"},
		{TrafficSpiky, "Spiky"},
	},
	Customization: {
		{CustomizationLow, "Low"},
		{CustomizationMedium, "Medium"},
		{CustomizationHigh, "High"},
	},
	Performance: {
		{PerformanceStandard, "Standard"},
		{PerformanceHigh, "High"},
		{PerformanceLowLatency, "Low latency"},
	},
	OpsPreference: {
		{OpsFullyManaged, "Fully managed"},
		{OpsPartial, "Partially managed"},
		{OpsFullControl, "Full control"},
	},
}

// Criteria returns all criteria in scoring order
func Criteria() []Criterion {
	out := make([]Criterion, len(criteria))
	copy(out, criteria)
	return out
}

// String returns the string representation of the criterion
func (c Criterion) String() string {
	return string(c)
}

// IsValid checks if the criterion is one of the seven known criteria
func (c Criterion) IsValid() bool {
	_, ok := criterionLabels[c]
	return ok
}

// Label returns a human readable title
func (c Criterion) Label() string {
	if l, ok := criterionLabels[c]; ok {
		return l
	}
	return string(c)
}

// Options returns the enumerated values of the criterion in display order
func (c Criterion) Options() []Option {
	opts := criterionOptions[c]
	out := make([]Option, len(opts))
	copy(out, opts)
	return out
}

// Values returns the enumerated values of the criterion
func (c Criterion) Values() []string {
	opts := criterionOptions[c]
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		out = append(out, o.Value)
	}
	return out
}

// IsKnownValue reports whether value is in the criterion's enumeration
func IsKnownValue(c Criterion, value string) bool {
	for _, o := range criterionOptions[c] {
		if o.Value == value {
			return true
		}
	}
	return false
}

// ScoreTable maps criterion -> value -> compatibility score (0-100)
type ScoreTable map[Criterion]map[string]int

// Lookup returns the score for a pair and whether it is defined
func (t ScoreTable) Lookup(c Criterion, value string) (int, bool) {
	values, ok := t[c]
	if !ok {
		return 0, false
	}
	score, ok := values[value]
	return score, ok
}
