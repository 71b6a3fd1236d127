// Package engine provides the deterministic recommendation engine.
// CLI and HTTP API are thin wrappers around this engine.
package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"aws-recommender/core/catalog"
	"aws-recommender/core/explanation"
	"aws-recommender/core/types"
	"aws-recommender/internal/errors"
)

var hundred = decimal.NewFromInt(100)

// Engine ranks catalog services against a preference vector.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog     *catalog.Catalog
	maxPossible decimal.Decimal
}

// New creates an engine over a catalog
func New(cat *catalog.Catalog) *Engine {
	return &Engine{
		catalog:     cat,
		maxPossible: types.MaxPossibleScore(),
	}
}

// Default returns an engine over the compiled-in catalog
func Default() *Engine {
	return New(catalog.Default())
}

// Catalog returns the catalog the engine ranks
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Rank scores every catalog service and returns them best first.
// Equal scores keep catalog order.
func (e *Engine) Rank(prefs types.PreferenceVector) []types.Recommendation {
	profiles := e.catalog.All()
	recs := make([]types.Recommendation, 0, len(profiles))

	for i := range profiles {
		b := e.evaluate(&profiles[i], prefs)
		recs = append(recs, types.Recommendation{
			Service:      profiles[i].Name,
			Category:     string(profiles[i].Category),
			Description:  profiles[i].Description,
			Score:        b.Score,
			Reason:       b.Reason,
			Tradeoffs:    b.Tradeoffs,
			Alternatives: profiles[i].Alternatives,
			Pros:         profiles[i].Pros,
			Cons:         profiles[i].Cons,
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	return recs
}

// Explain returns the per-criterion breakdown for one service
func (e *Engine) Explain(prefs types.PreferenceVector, service string) (*Breakdown, error) {
	p, ok := e.catalog.Get(service)
	if !ok {
		return nil, errors.NotFound("service", service)
	}
	return e.evaluate(&p, prefs), nil
}

// evaluate folds the seven criteria into a weighted, normalised score
func (e *Engine) evaluate(p *catalog.ServiceProfile, prefs types.PreferenceVector) *Breakdown {
	b := &Breakdown{
		Service:     p.Name,
		Category:    string(p.Category),
		Raw:         decimal.Zero,
		MaxPossible: e.maxPossible,
	}

	var rationale explanation.Rationale
	for _, c := range types.Criteria() {
		value := prefs.Value(c)
		score, defined := p.Scores.Lookup(c, value)
		if !defined {
			score = types.DefaultScore
		}

		weight := types.Weight(c)
		contribution := weight.Mul(decimal.NewFromInt(int64(score)))
		b.Raw = b.Raw.Add(contribution)

		b.Criteria = append(b.Criteria, CriterionScore{
			Criterion:    c,
			Value:        value,
			Score:        score,
			Defaulted:    !defined,
			Weight:       weight,
			Contribution: contribution,
			Verdict:      rationale.Add(c, value, score),
		})
	}

	b.Score = normalize(b.Raw, e.maxPossible)
	b.Reason = rationale.Reason()
	b.Tradeoffs = rationale.Tradeoffs()
	return b
}

// normalize returns round(raw / max * 100), halves rounding away from zero
func normalize(raw, max decimal.Decimal) int {
	if max.IsZero() {
		return 0
	}
	return int(raw.Mul(hundred).Div(max).Round(0).IntPart())
}
