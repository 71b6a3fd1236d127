package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"aws-recommender/internal/errors"
)

// EnvPrefix prefixes every environment override, e.g. AWSREC_STORAGE_BACKEND
const EnvPrefix = "AWSREC_"

// ConfigPathEnvVar names the environment variable holding a config file path
const ConfigPathEnvVar = EnvPrefix + "CONFIG"

// DefaultConfigPaths are searched in order when no path is given
func DefaultConfigPaths() []string {
	paths := []string{"aws-recommender.yaml", "aws-recommender.yml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".aws-recommender", "config.yaml"))
	}
	return paths
}

var sliceConfigPaths = []string{
	"server.cors_origins",
}

// Load layers defaults, an optional YAML file and AWSREC_* environment variables.
// An explicit path must exist; otherwise the default locations are searched.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, errors.Config("failed to load defaults", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.Config(fmt.Sprintf("config file %s", path), err)
		}
	} else {
		path = findConfigFile()
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Config(fmt.Sprintf("failed to load config file %s", path), err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, errors.Config("failed to load environment variables", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, errors.Config("failed to process slice fields", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Config("failed to unmarshal configuration", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envTransformFunc maps AWSREC_SECTION_KEY to section.key.
// Variables without a section (AWSREC_CONFIG) are ignored.
func envTransformFunc(key string) string {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))

	section, rest, ok := strings.Cut(key, "_")
	if !ok || rest == "" {
		return ""
	}
	return section + "." + rest
}

// processSliceFields splits comma separated strings from the environment
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}
