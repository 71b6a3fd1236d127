package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"aws-recommender/internal/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aws-recommender.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default configuration invalid: %v", err)
	}
}

func TestLoadLayers(t *testing.T) {
	path := writeConfig(t, `
output:
  format: markdown
  top: 5
storage:
  backend: badger
  path: /tmp/awsrec-test
server:
  rate_limit_window: 30s
`)

	t.Setenv("AWSREC_OUTPUT_TOP", "10")
	t.Setenv("AWSREC_SERVER_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("AWSREC_OUTPUT_RESTORE_WINDOW", "48h")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"file overrides default format", cfg.Output.Format, "markdown"},
		{"env overrides file top", cfg.Output.Top, 10},
		{"file backend", cfg.Storage.Backend, "badger"},
		{"file duration", cfg.Server.RateLimitWindow, 30 * time.Second},
		{"env duration", cfg.Output.RestoreWindow, 48 * time.Hour},
		{"default kept", cfg.Server.Addr, ":8080"},
		{"env slice", strings.Join(cfg.Server.CORSOrigins, "|"), "https://a.example|https://b.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := writeConfig(t, "storage:\n  backend: postgres\noutput:\n  format: html\n")

	_, err := Load(path)
	if !errors.IsType(err, errors.TypeConfig) {
		t.Fatalf("expected config error, got %v", err)
	}
	for _, want := range []string{"storage.backend", "output.format"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}
}

func TestEnvTransform(t *testing.T) {
	tests := []struct {
		key      string
		expected string
	}{
		{"AWSREC_STORAGE_BACKEND", "storage.backend"},
		{"AWSREC_SERVER_RATE_LIMIT_REQUESTS", "server.rate_limit_requests"},
		{"AWSREC_LOGGING_LEVEL", "logging.level"},
		{"AWSREC_CONFIG", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := envTransformFunc(tt.key); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Output.Format = "table"
	cfg.Storage.Backend = "memory"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.Output.Format != "table" || loaded.Storage.Backend != "memory" {
		t.Errorf("unexpected round trip %+v", loaded)
	}
	if loaded.Output.RestoreWindow != 7*24*time.Hour {
		t.Errorf("expected restore window preserved, got %v", loaded.Output.RestoreWindow)
	}
}
