package config

import (
	"fmt"

	"aws-recommender/internal/errors"
)

var (
	validFormats  = map[string]bool{"cli": true, "json": true, "yaml": true, "markdown": true, "table": true}
	validBackends = map[string]bool{"file": true, "memory": true, "badger": true}
)

// Validate rejects unknown formats and backends and non-positive windows
func (c *Config) Validate() error {
	var problems []string

	if !validFormats[c.Output.Format] {
		problems = append(problems, fmt.Sprintf("output.format: unknown format %q", c.Output.Format))
	}
	if c.Output.Top < 0 {
		problems = append(problems, "output.top: must not be negative")
	}
	if c.Output.RestoreWindow <= 0 {
		problems = append(problems, "output.restore_window: must be positive")
	}
	if !validBackends[c.Storage.Backend] {
		problems = append(problems, fmt.Sprintf("storage.backend: unknown backend %q", c.Storage.Backend))
	}
	if c.Storage.Backend != "memory" && c.Storage.Path == "" {
		problems = append(problems, "storage.path: required for "+c.Storage.Backend+" backend")
	}
	if c.Server.RateLimitRequests < 0 {
		problems = append(problems, "server.rate_limit_requests: must not be negative")
	}
	if c.Server.RateLimitRequests > 0 && c.Server.RateLimitWindow <= 0 {
		problems = append(problems, "server.rate_limit_window: must be positive")
	}

	if len(problems) == 0 {
		return nil
	}
	return errors.Newf(errors.TypeConfig, "invalid configuration: %v", problems).
		WithContext("problems", problems)
}
