// Package config provides configuration management.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"aws-recommender/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Output contains output configuration
	Output OutputConfig `koanf:"output" yaml:"output"`

	// Storage contains persistence configuration
	Storage StorageConfig `koanf:"storage" yaml:"storage"`

	// Export contains export configuration
	Export ExportConfig `koanf:"export" yaml:"export"`

	// Server contains HTTP API configuration
	Server ServerConfig `koanf:"server" yaml:"server"`

	// Logging contains logging configuration
	Logging logging.Config `koanf:"logging" yaml:"logging"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// Format is the default output format
	Format string `koanf:"format" yaml:"format"`

	// Top is how many recommendations are shown (0 = all)
	Top int `koanf:"top" yaml:"top"`

	// NoColor disables colored output
	NoColor bool `koanf:"no_color" yaml:"no_color"`

	// RestoreWindow is how long a saved recommendation is offered for restore
	RestoreWindow time.Duration `koanf:"restore_window" yaml:"restore_window"`
}

// StorageConfig contains persistence settings
type StorageConfig struct {
	// Backend is file, memory or badger
	Backend string `koanf:"backend" yaml:"backend"`

	// Path is the storage directory
	Path string `koanf:"path" yaml:"path"`
}

// ExportConfig contains export settings
type ExportConfig struct {
	// Directory receives exported files
	Directory string `koanf:"directory" yaml:"directory"`
}

// ServerConfig contains HTTP API settings
type ServerConfig struct {
	Addr              string        `koanf:"addr" yaml:"addr"`
	CORSOrigins       []string      `koanf:"cors_origins" yaml:"cors_origins"`
	RateLimitRequests int           `koanf:"rate_limit_requests" yaml:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" yaml:"rate_limit_window"`
	ReadTimeout       time.Duration `koanf:"read_timeout" yaml:"read_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".aws-recommender", "data")

	return &Config{
		Output: OutputConfig{
			Format:        "cli",
			Top:           3,
			NoColor:       false,
			RestoreWindow: 7 * 24 * time.Hour,
		},
		Storage: StorageConfig{
			Backend: "file",
			Path:    dataDir,
		},
		Export: ExportConfig{
			Directory: ".",
		},
		Server: ServerConfig{
			Addr:              ":8080",
			CORSOrigins:       []string{"*"},
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Save writes the configuration as YAML
func (c *Config) Save(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// YAML returns the configuration as a YAML document
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(data), nil
}

// Global configuration instance
var (
	globalConfig = Default()
	globalMu     sync.RWMutex
)

// Get returns the global configuration
func Get() *Config {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = config
}
