// Package catalog - Authoritative AWS service catalog
// Defines the compiled-in service profiles the scoring engine ranks.
// Profiles are immutable once the catalog is built.
package catalog

import (
	"sync"

	"aws-recommender/core/types"
)

// Category groups services in the catalog
type Category string

const (
	Compute         Category = "Compute"
	Storage         Category = "Storage"
	Database        Category = "Database"
	Networking      Category = "Networking"
	Messaging       Category = "Messaging"
	Streaming       Category = "Streaming"
	MachineLearning Category = "Machine Learning"
)

// Categories returns all known categories in display order
func Categories() []Category {
	return []Category{Compute, Storage, Database, Networking, Messaging, Streaming, MachineLearning}
}

// IsValid checks if the category is a known category
func (c Category) IsValid() bool {
	switch c {
	case Compute, Storage, Database, Networking, Messaging, Streaming, MachineLearning:
		return true
	default:
		return false
	}
}

// ServiceProfile is a catalog entry for one AWS service
type ServiceProfile struct {
	Name         string           `json:"name" yaml:"name"`
	Category     Category         `json:"category" yaml:"category"`
	Description  string           `json:"description" yaml:"description"`
	Scores       types.ScoreTable `json:"scores" yaml:"scores"`
	Pros         []string         `json:"pros" yaml:"pros"`
	Cons         []string         `json:"cons" yaml:"cons"`
	Alternatives []string         `json:"alternatives" yaml:"alternatives"`
}

// Score returns the compatibility score for a pair.
// Undefined pairs score types.DefaultScore.
func (p *ServiceProfile) Score(c types.Criterion, value string) int {
	if s, ok := p.Scores.Lookup(c, value); ok {
		return s
	}
	return types.DefaultScore
}

func (p *ServiceProfile) clone() ServiceProfile {
	out := *p
	out.Scores = make(types.ScoreTable, len(p.Scores))
	for c, values := range p.Scores {
		m := make(map[string]int, len(values))
		for v, s := range values {
			m[v] = s
		}
		out.Scores[c] = m
	}
	out.Pros = append([]string(nil), p.Pros...)
	out.Cons = append([]string(nil), p.Cons...)
	out.Alternatives = append([]string(nil), p.Alternatives...)
	return out
}

// Catalog is the ordered set of service profiles
type Catalog struct {
	profiles []*ServiceProfile
	index    map[string]*ServiceProfile
}

// NewCatalog creates a new catalog
func NewCatalog() *Catalog {
	return &Catalog{
		index: make(map[string]*ServiceProfile),
	}
}

// Register adds a profile to the catalog.
// Registration order is the catalog order.
func (c *Catalog) Register(p ServiceProfile) {
	entry := p.clone()
	c.profiles = append(c.profiles, &entry)
	if _, exists := c.index[p.Name]; !exists {
		c.index[p.Name] = &entry
	}
}

// Get returns a copy of the named profile
func (c *Catalog) Get(name string) (ServiceProfile, bool) {
	p, ok := c.index[name]
	if !ok {
		return ServiceProfile{}, false
	}
	return p.clone(), true
}

// All returns copies of every profile in catalog order
func (c *Catalog) All() []ServiceProfile {
	out := make([]ServiceProfile, 0, len(c.profiles))
	for _, p := range c.profiles {
		out = append(out, p.clone())
	}
	return out
}

// Names returns service names in catalog order
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.profiles))
	for _, p := range c.profiles {
		out = append(out, p.Name)
	}
	return out
}

// ByCategory returns the profiles of one category in catalog order
func (c *Catalog) ByCategory(category Category) []ServiceProfile {
	var out []ServiceProfile
	for _, p := range c.profiles {
		if p.Category == category {
			out = append(out, p.clone())
		}
	}
	return out
}

// Len returns the number of registered profiles
func (c *Catalog) Len() int {
	return len(c.profiles)
}

// Score returns the score of a named service for a pair.
// Unknown services and undefined pairs score types.DefaultScore.
func (c *Catalog) Score(name string, criterion types.Criterion, value string) int {
	p, ok := c.index[name]
	if !ok {
		return types.DefaultScore
	}
	return p.Score(criterion, value)
}

// Stats returns catalog statistics
func (c *Catalog) Stats() CatalogStats {
	stats := CatalogStats{
		ByCategory: make(map[Category]int),
	}

	for _, p := range c.profiles {
		stats.Total++
		stats.ByCategory[p.Category]++
	}

	return stats
}

// CatalogStats holds catalog statistics
type CatalogStats struct {
	Total      int              `json:"total" yaml:"total"`
	ByCategory map[Category]int `json:"by_category" yaml:"by_category"`
}

var (
	defaultCatalog *Catalog
	defaultOnce    sync.Once
)

// Default returns the compiled-in catalog, built and validated on first use
func Default() *Catalog {
	defaultOnce.Do(func() {
		c := NewCatalog()
		RegisterAWS(c)
		c.MustValidate()
		defaultCatalog = c
	})
	return defaultCatalog
}
