package types

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMaxPossibleScore(t *testing.T) {
	if !MaxPossibleScore().Equal(decimal.NewFromInt(1230)) {
		t.Errorf("expected 1230, got %s", MaxPossibleScore())
	}
}

func TestWeights(t *testing.T) {
	tests := []struct {
		criterion Criterion
		expected  string
	}{
		{WorkloadType, "2.5"},
		{Scale, "1.5"},
		{Budget, "2"},
		{TrafficPattern, "1.5"},
		{Customization, "1"},
		{Performance, "1.8"},
		{OpsPreference, "2"},
		{Criterion("region"), "0"},
	}

	for _, tt := range tests {
		t.Run(string(tt.criterion), func(t *testing.T) {
			if got := Weight(tt.criterion).String(); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestCriteriaOrder(t *testing.T) {
	expected := []Criterion{WorkloadType, Scale, Budget, TrafficPattern, Customization, Performance, OpsPreference}
	got := Criteria()
	if len(got) != len(expected) {
		t.Fatalf("expected %d criteria, got %d", len(expected), len(got))
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("position %d: expected %s, got %s", i, expected[i], got[i])
		}
	}

	// callers get a copy
	got[0] = "mutated"
	if Criteria()[0] != WorkloadType {
		t.Error("Criteria() exposed internal slice")
	}
}

func TestValueEnumerations(t *testing.T) {
	tests := []struct {
		criterion Criterion
		count     int
	}{
		{WorkloadType, 7},
		{Scale, 4},
		{Budget, 4},
		{TrafficPattern, 3},
		{Customization, 3},
		{Performance, 3},
		{OpsPreference, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.criterion), func(t *testing.T) {
			if got := len(tt.criterion.Values()); got != tt.count {
				t.Errorf("expected %d values, got %d", tt.count, got)
			}
		})
	}
}

func TestIsKnownValue(t *testing.T) {
	if !IsKnownValue(Performance, PerformanceLowLatency) {
		t.Error("expected lowLatency to be a known performance value")
	}
	if IsKnownValue(Performance, "medium") {
		t.Error("medium is not a performance value")
	}
	if IsKnownValue(Criterion("region"), "us-east-1") {
		t.Error("unknown criterion has no values")
	}
}

func TestPreferenceVectorAccessors(t *testing.T) {
	p := PreferenceVector{
		WorkloadType:   WorkloadServerless,
		Scale:          ScaleSmall,
		Budget:         BudgetVeryLow,
		TrafficPattern: TrafficSpiky,
	}

	if p.Value(TrafficPattern) != TrafficSpiky {
		t.Errorf("expected spiky, got %q", p.Value(TrafficPattern))
	}

	missing := p.Missing()
	if len(missing) != 3 || missing[0] != Customization {
		t.Errorf("expected customization, performance, opsPreference missing, got %v", missing)
	}

	merged := p.Merge(PreferenceVector{Scale: ScaleLarge, OpsPreference: OpsPartial})
	if merged.Scale != ScaleLarge || merged.OpsPreference != OpsPartial || merged.WorkloadType != WorkloadServerless {
		t.Errorf("unexpected merge result %+v", merged)
	}
	if p.Scale != ScaleSmall {
		t.Error("Merge mutated the receiver")
	}

	if err := p.Set(Criterion("region"), "x"); err == nil {
		t.Error("expected error for unknown criterion")
	}
}

func TestScoreTableLookup(t *testing.T) {
	table := ScoreTable{Scale: {ScaleSmall: 90}}

	if s, ok := table.Lookup(Scale, ScaleSmall); !ok || s != 90 {
		t.Errorf("expected 90/true, got %d/%v", s, ok)
	}
	if _, ok := table.Lookup(Scale, ScaleLarge); ok {
		t.Error("expected undefined value")
	}
	if _, ok := table.Lookup(Budget, BudgetLow); ok {
		t.Error("expected undefined criterion")
	}
}
