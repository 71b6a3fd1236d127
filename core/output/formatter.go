// Package output provides output formatting interfaces.
// This package produces human and machine-readable outputs.
package output

import (
	"fmt"
	"io"
	"sort"
	"time"

	"aws-recommender/core/engine"
	"aws-recommender/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable card layout
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatYAML is machine-readable YAML
	FormatYAML Format = "yaml"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"

	// FormatTable is a compact score table
	FormatTable Format = "table"
)

// DefaultTop is how many recommendations are shown by default
const DefaultTop = 3

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given result
	Render(w io.Writer, result *Result) error
}

// Result is what gets rendered for one ranking
type Result struct {
	// Inputs are the answers the ranking was computed for
	Inputs types.PreferenceVector `json:"inputs" yaml:"inputs"`

	// Recommendations are already truncated to what should be shown
	Recommendations []types.Recommendation `json:"recommendations" yaml:"recommendations"`

	// Timestamp is when the ranking was computed or saved
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`

	// Explanations are per-criterion breakdowns of the shown recommendations
	Explanations []*engine.Breakdown `json:"explanations,omitempty" yaml:"explanations,omitempty"`
}

// NewResult builds a result showing the top n recommendations
func NewResult(inputs types.PreferenceVector, recs []types.Recommendation, n int, ts time.Time) *Result {
	return &Result{
		Inputs:          inputs,
		Recommendations: Top(recs, n),
		Timestamp:       ts,
	}
}

// WithExplanations attaches the engine's breakdown for every shown recommendation
func (r *Result) WithExplanations(e *engine.Engine) *Result {
	r.Explanations = make([]*engine.Breakdown, 0, len(r.Recommendations))
	for _, rec := range r.Recommendations {
		b, err := e.Explain(r.Inputs, rec.Service)
		if err != nil {
			// saved records may name services the current catalog no longer has
			continue
		}
		r.Explanations = append(r.Explanations, b)
	}
	return r
}

// FromStored builds a result from a saved record
func FromStored(record *types.StoredRecommendation, n int) *Result {
	return NewResult(record.Data.Inputs, record.Data.Recommendations, n, record.Timestamp)
}

// Top returns the first n recommendations; n <= 0 means all
func Top(recs []types.Recommendation, n int) []types.Recommendation {
	if n <= 0 || n >= len(recs) {
		return recs
	}
	return recs[:n]
}

// FormatScore renders a score as "NN%"
func FormatScore(score int) string {
	return fmt.Sprintf("%d%%", score)
}

// Registry holds formatters by format
type Registry struct {
	formatters map[Format]Formatter
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[Format]Formatter)}
}

// DefaultRegistry returns a registry with every built-in formatter
func DefaultRegistry(noColor bool) *Registry {
	r := NewRegistry()
	_ = r.Register(NewCLIFormatter(noColor))
	_ = r.Register(NewJSONFormatter())
	_ = r.Register(NewYAMLFormatter())
	_ = r.Register(NewMarkdownFormatter())
	_ = r.Register(NewTableFormatter(noColor))
	return r
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) error {
	if _, exists := r.formatters[f.Format()]; exists {
		return fmt.Errorf("formatter already registered: %s", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// GetFormatter returns a formatter for a format type
func (r *Registry) GetFormatter(format Format) (Formatter, bool) {
	f, ok := r.formatters[format]
	return f, ok
}

// Formats returns registered formats sorted by name
func (r *Registry) Formats() []Format {
	out := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsValidFormat reports whether format names a built-in formatter
func IsValidFormat(format string) bool {
	switch Format(format) {
	case FormatCLI, FormatJSON, FormatYAML, FormatMarkdown, FormatTable:
		return true
	default:
		return false
	}
}
