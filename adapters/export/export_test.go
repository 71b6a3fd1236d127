package export

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"aws-recommender/core/types"
	"aws-recommender/internal/errors"
)

func sampleRecord() *types.StoredRecommendation {
	return &types.StoredRecommendation{
		Timestamp: time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC),
		Data: types.RecommendationSet{
			Inputs: types.PreferenceVector{WorkloadType: types.WorkloadData},
			Recommendations: []types.Recommendation{
				{Service: "Kinesis", Category: "Streaming", Score: 88},
			},
		},
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name     string
		t        time.Time
		expected string
	}{
		{"utc", time.Date(2024, 3, 9, 14, 30, 0, 0, time.UTC), "aws-recommendation-2024-03-09.json"},
		{"converted to utc", time.Date(2024, 12, 31, 23, 30, 0, 0, time.FixedZone("UTC-2", -2*3600)), "aws-recommendation-2025-01-01.json"},
	}

	pattern := regexp.MustCompile(`^aws-recommendation-\d{4}-\d{2}-\d{2}\.json$`)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FileName(tt.t)
			if got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
			if !pattern.MatchString(got) {
				t.Errorf("%s does not match the export pattern", got)
			}
		})
	}
}

func TestMarshalIndentsTwoSpaces(t *testing.T) {
	data, err := Marshal(sampleRecord())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	if !strings.HasPrefix(string(data), "{\n  \"timestamp\": \"2024-03-09T14:30:00Z\",\n  \"data\": {\n    \"inputs\"") {
		t.Errorf("unexpected layout:\n%s", data)
	}
}

func TestMarshalNilRecord(t *testing.T) {
	if _, err := Marshal(nil); !errors.IsType(err, errors.TypeNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleRecord()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"service": "Kinesis"`) {
		t.Errorf("expected service in output, got %s", buf.String())
	}
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	now := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

	path, err := WriteFile(dir, sampleRecord(), now)
	if err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if filepath.Base(path) != "aws-recommendation-2024-03-10.json" {
		t.Errorf("unexpected file name %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if !strings.Contains(string(data), `"score": 88`) {
		t.Errorf("unexpected export content %s", data)
	}
}
