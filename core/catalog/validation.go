// Package catalog - Catalog validation
// Ensures catalog integrity and enforces invariants.
package catalog

import (
	"fmt"

	"go.uber.org/zap"

	"aws-recommender/core/types"
	"aws-recommender/internal/logging"
)

// ValidationRule is a catalog validation rule
type ValidationRule func(*ServiceProfile) error

// DefaultValidationRules returns the standard validation rules
func DefaultValidationRules() []ValidationRule {
	return []ValidationRule{
		validateIdentity,
		validateCategory,
		validateScoreCoverage,
		validateScoreRange,
		validateAlternatives,
	}
}

// Validate checks a catalog against validation rules
func (c *Catalog) Validate(rules []ValidationRule) []error {
	var errors []error

	seen := make(map[string]bool, len(c.profiles))
	for _, p := range c.profiles {
		if seen[p.Name] {
			errors = append(errors, fmt.Errorf("%s: duplicate service name", p.Name))
		}
		seen[p.Name] = true

		for _, rule := range rules {
			if err := rule(p); err != nil {
				errors = append(errors, fmt.Errorf("%s: %w", p.Name, err))
			}
		}
	}

	return errors
}

// validateIdentity ensures a profile can be displayed
func validateIdentity(p *ServiceProfile) error {
	if p.Name == "" {
		return fmt.Errorf("name is empty")
	}
	if p.Description == "" {
		return fmt.Errorf("description is empty")
	}
	return nil
}

func validateCategory(p *ServiceProfile) error {
	if !p.Category.IsValid() {
		return fmt.Errorf("unknown category %q", p.Category)
	}
	return nil
}

// validateScoreCoverage ensures every criterion and enumerated value is scored
func validateScoreCoverage(p *ServiceProfile) error {
	for _, c := range types.Criteria() {
		for _, v := range c.Values() {
			if _, ok := p.Scores.Lookup(c, v); !ok {
				return fmt.Errorf("missing score for %s=%s", c, v)
			}
		}
	}
	return nil
}

func validateScoreRange(p *ServiceProfile) error {
	for c, values := range p.Scores {
		for v, s := range values {
			if s < 0 || s > types.MaxCriterionScore {
				return fmt.Errorf("score for %s=%s out of range: %d", c, v, s)
			}
		}
	}
	return nil
}

// validateAlternatives ensures 2-3 alternatives that never name the service itself
func validateAlternatives(p *ServiceProfile) error {
	if n := len(p.Alternatives); n < 2 || n > 3 {
		return fmt.Errorf("expected 2-3 alternatives, got %d", n)
	}
	for _, alt := range p.Alternatives {
		if alt == p.Name {
			return fmt.Errorf("lists itself as an alternative")
		}
	}
	return nil
}

// MustValidate panics if validation fails
func (c *Catalog) MustValidate() {
	errors := c.Validate(DefaultValidationRules())
	if len(errors) > 0 {
		for _, err := range errors {
			logging.Error("catalog validation error", zap.Error(err))
		}
		panic(fmt.Sprintf("Catalog has %d validation errors", len(errors)))
	}
}
