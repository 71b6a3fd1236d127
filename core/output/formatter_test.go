package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"aws-recommender/core/engine"
	"aws-recommender/core/types"
)

var prefs = types.PreferenceVector{
	WorkloadType:   types.WorkloadServerless,
	Scale:          types.ScaleSmall,
	Budget:         types.BudgetVeryLow,
	TrafficPattern: types.TrafficSpiky,
	Customization:  types.CustomizationLow,
	Performance:    types.PerformanceStandard,
	OpsPreference:  types.OpsFullyManaged,
}

func sampleResult(n int) *Result {
	recs := engine.Default().Rank(prefs)
	return NewResult(prefs, recs, n, time.Date(2024, 3, 9, 12, 0, 0, 0, time.UTC))
}

func TestTop(t *testing.T) {
	recs := engine.Default().Rank(prefs)

	tests := []struct {
		n        int
		expected int
	}{
		{3, 3},
		{1, 1},
		{0, len(recs)},
		{-1, len(recs)},
		{100, len(recs)},
	}

	for _, tt := range tests {
		if got := len(Top(recs, tt.n)); got != tt.expected {
			t.Errorf("Top(%d): expected %d, got %d", tt.n, tt.expected, got)
		}
	}
}

func TestFormatScore(t *testing.T) {
	if got := FormatScore(94); got != "94%" {
		t.Errorf("expected 94%%, got %s", got)
	}
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry(true)

	for _, f := range []Format{FormatCLI, FormatJSON, FormatYAML, FormatMarkdown, FormatTable} {
		if _, ok := r.GetFormatter(f); !ok {
			t.Errorf("formatter %s not registered", f)
		}
		if !IsValidFormat(string(f)) {
			t.Errorf("%s should be valid", f)
		}
	}
	if IsValidFormat("html") {
		t.Error("html should not be valid")
	}
	if err := r.Register(NewJSONFormatter()); err == nil {
		t.Error("expected duplicate registration to fail")
	}
	if len(r.Formats()) != 5 {
		t.Errorf("expected 5 formats, got %v", r.Formats())
	}
}

func TestCLIFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCLIFormatter(true).Render(&buf, sampleResult(DefaultTop)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Lambda (Compute)  94%",
		"Run code without thinking about servers",
		"Why it fits your use case:",
		"Highly suitable for serverless workloads",
		"Tradeoffs:",
		"No significant tradeoffs for your requirements.",
		"Alternatives to consider:",
		"EC2, ECS, Elastic Beanstalk",
		"DynamoDB (Database)  90%",
		"SNS (Messaging)  90%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
	if strings.Contains(out, "SQS (Messaging)") {
		t.Error("expected only the top 3 cards")
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter().Render(&buf, sampleResult(2)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var decoded struct {
		Inputs          map[string]string `json:"inputs"`
		Recommendations []struct {
			Service string `json:"service"`
			Score   int    `json:"score"`
		} `json:"recommendations"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded.Inputs["workloadType"] != "serverless" {
		t.Errorf("unexpected inputs %v", decoded.Inputs)
	}
	if len(decoded.Recommendations) != 2 || decoded.Recommendations[0].Service != "Lambda" || decoded.Recommendations[0].Score != 94 {
		t.Errorf("unexpected recommendations %+v", decoded.Recommendations)
	}
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewYAMLFormatter().Render(&buf, sampleResult(1)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var decoded Result
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid YAML: %v", err)
	}
	if decoded.Inputs != prefs {
		t.Errorf("unexpected inputs %+v", decoded.Inputs)
	}
	if len(decoded.Recommendations) != 1 || decoded.Recommendations[0].Service != "Lambda" {
		t.Errorf("unexpected recommendations %+v", decoded.Recommendations)
	}
}

func TestMarkdownFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewMarkdownFormatter().Render(&buf, sampleResult(1)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# AWS Service Recommendations",
		"| Workload type | `serverless` |",
		"## 1. Lambda (Compute) - 94%",
		"**Alternatives to consider**: EC2, ECS, Elastic Beanstalk",
		"_Generated 2024-03-09 12:00 UTC_",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter(true).Render(&buf, sampleResult(0)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// header, separator, one row per service
	if len(lines) != 2+18 {
		t.Fatalf("expected 20 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "Lambda") || !strings.Contains(lines[2], "94%") {
		t.Errorf("unexpected first row %q", lines[2])
	}
	if !strings.Contains(lines[len(lines)-1], "EC2") {
		t.Errorf("expected EC2 last, got %q", lines[len(lines)-1])
	}
}

func TestExplanations(t *testing.T) {
	result := sampleResult(2).WithExplanations(engine.Default())
	if len(result.Explanations) != 2 {
		t.Fatalf("expected 2 explanations, got %d", len(result.Explanations))
	}
	if result.Explanations[0].Service != "Lambda" {
		t.Errorf("expected Lambda first, got %s", result.Explanations[0].Service)
	}

	var buf bytes.Buffer
	if err := NewCLIFormatter(true).Render(&buf, result); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for _, want := range []string{"Score breakdown: Lambda", "Workload type", "of 1230 = 94%"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("expected output to contain %q", want)
		}
	}

	buf.Reset()
	if err := NewMarkdownFormatter().Render(&buf, result); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(buf.String(), "### Score breakdown: DynamoDB") {
		t.Error("expected markdown breakdown section")
	}
}
