package answers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aws-recommender/core/types"
	"aws-recommender/internal/errors"
)

const complete = `
workload_type   = "serverless"
scale           = "small"
budget          = "veryLow"
traffic_pattern = "spiky"
customization   = "low"
performance     = "standard"
ops_preference  = "fullyManaged"
`

var serverless = types.PreferenceVector{
	WorkloadType:   "serverless",
	Scale:          "small",
	Budget:         "veryLow",
	TrafficPattern: "spiky",
	Customization:  "low",
	Performance:    "standard",
	OpsPreference:  "fullyManaged",
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		src      string
		expected types.PreferenceVector
	}{
		{
			name:     "top level attributes",
			filename: "answers.hcl",
			src:      complete,
			expected: serverless,
		},
		{
			name:     "answers block",
			filename: "answers.hcl",
			src:      "answers {\n" + complete + "}\n",
			expected: serverless,
		},
		{
			name:     "json syntax",
			filename: "answers.json",
			src: `{"workload_type": "serverless", "scale": "small", "budget": "veryLow",
				"traffic_pattern": "spiky", "customization": "low", "performance": "standard",
				"ops_preference": "fullyManaged"}`,
			expected: serverless,
		},
		{
			name:     "values outside the enumeration pass through",
			filename: "answers.hcl",
			src:      strings.Replace(complete, `"small"`, `"galactic"`, 1),
			expected: func() types.PreferenceVector {
				p := serverless
				p.Scale = "galactic"
				return p
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewParser().Parse([]byte(tt.src), tt.filename)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		errType  errors.Type
		contains string
	}{
		{
			name:     "missing attributes",
			src:      "workload_type = \"api\"\nscale = \"large\"\n",
			errType:  errors.TypeInput,
			contains: "missing answers: budget, traffic_pattern, customization, performance, ops_preference",
		},
		{
			name:     "syntax error carries line",
			src:      "workload_type = \"api\"\nscale = \n",
			errType:  errors.TypeParsing,
			contains: "answers.hcl:",
		},
		{
			name:     "unknown attribute",
			src:      complete + "region = \"us-east-1\"\n",
			errType:  errors.TypeParsing,
			contains: "answers.hcl:9:",
		},
		{
			name:     "non string value",
			src:      strings.Replace(complete, `"low"`, `3`, 1),
			errType:  errors.TypeInput,
			contains: "customization must be a string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser().Parse([]byte(tt.src), "answers.hcl")
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.IsType(err, tt.errType) {
				t.Errorf("expected %s, got %v", tt.errType, err)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("expected error to contain %q, got %q", tt.contains, err.Error())
			}
		})
	}
}

func TestDecodePartial(t *testing.T) {
	got, err := NewParser().Decode([]byte(`workload_type = "ml"`), "partial.hcl")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got.WorkloadType != "ml" || got.Scale != "" {
		t.Errorf("unexpected partial decode %+v", got)
	}
	if err := RequireComplete(got); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected input error, got %v", err)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.hcl")
	if err := os.WriteFile(path, []byte(complete), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := NewParser().ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if got != serverless {
		t.Errorf("expected %+v, got %+v", serverless, got)
	}

	if _, err := NewParser().ParseFile(filepath.Join(t.TempDir(), "missing.hcl")); !errors.IsType(err, errors.TypeInput) {
		t.Errorf("expected input error for missing file, got %v", err)
	}
}
