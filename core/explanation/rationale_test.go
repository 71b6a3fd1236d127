package explanation

import (
	"testing"

	"aws-recommender/core/types"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		criterion types.Criterion
		score     int
		expected  Verdict
	}{
		{"strength at threshold", types.Scale, 85, VerdictStrength},
		{"neutral just below", types.Scale, 84, VerdictNeutral},
		{"neutral just above tradeoff", types.Scale, 61, VerdictNeutral},
		{"tradeoff at threshold", types.Scale, 60, VerdictTradeoff},
		{"default score is a tradeoff", types.Budget, 50, VerdictTradeoff},
		{"workload 60 is neutral", types.WorkloadType, 60, VerdictNeutral},
		{"workload 41 is neutral", types.WorkloadType, 41, VerdictNeutral},
		{"workload 40 is a tradeoff", types.WorkloadType, 40, VerdictTradeoff},
		{"workload strength", types.WorkloadType, 100, VerdictStrength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.criterion, tt.score); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestSentences(t *testing.T) {
	tests := []struct {
		criterion types.Criterion
		value     string
		reason    string
		tradeoff  string
	}{
		{types.WorkloadType, "serverless", "Highly suitable for serverless workloads", "Not ideal for serverless workloads"},
		{types.Scale, "small", "Works well at small scale", "May struggle with small scale workloads"},
		{types.Budget, "veryLow", "Cost-effective for veryLow budgets", "Can be expensive for veryLow budgets"},
		{types.TrafficPattern, "spiky", "Handles spiky traffic patterns well", "Not optimal for spiky traffic patterns"},
		{types.Customization, "low", "Supports low customization needs", "Limited customization for low requirements"},
		{types.Performance, "standard", "Meets standard performance requirements", "May not meet standard performance needs"},
		{types.OpsPreference, "fullyManaged", "Matches your fullyManaged operations preference", "Operations model doesn't align with fullyManaged preference"},
	}

	for _, tt := range tests {
		t.Run(string(tt.criterion), func(t *testing.T) {
			if got := Reason(tt.criterion, tt.value); got != tt.reason {
				t.Errorf("expected %q, got %q", tt.reason, got)
			}
			if got := Tradeoff(tt.criterion, tt.value); got != tt.tradeoff {
				t.Errorf("expected %q, got %q", tt.tradeoff, got)
			}
		})
	}
}

func TestRationale(t *testing.T) {
	var r Rationale
	if r.Reason() != "" {
		t.Errorf("expected empty reason, got %q", r.Reason())
	}
	if r.Tradeoffs() != types.NoTradeoffs {
		t.Errorf("expected fallback tradeoffs, got %q", r.Tradeoffs())
	}

	r.Add(types.WorkloadType, "api", 90)
	r.Add(types.Scale, "large", 70)
	r.Add(types.Budget, "low", 55)
	r.Add(types.Performance, "high", 88)

	if got := r.Reason(); got != "Highly suitable for api workloads. Meets high performance requirements" {
		t.Errorf("unexpected reason %q", got)
	}
	if got := r.Tradeoffs(); got != "Can be expensive for low budgets" {
		t.Errorf("unexpected tradeoffs %q", got)
	}
}
