package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"aws-recommender/core/types"
)

// MarkdownFormatter renders a markdown report
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a markdown formatter
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

func (f *MarkdownFormatter) Format() Format {
	return FormatMarkdown
}

func (f *MarkdownFormatter) Render(w io.Writer, result *Result) error {
	var sb strings.Builder

	sb.WriteString("# AWS Service Recommendations\n\n")

	sb.WriteString("| Criterion | Answer |\n|---|---|\n")
	for _, c := range types.Criteria() {
		sb.WriteString(fmt.Sprintf("| %s | `%s` |\n", c.Label(), result.Inputs.Value(c)))
	}
	sb.WriteString("\n")

	for i, rec := range result.Recommendations {
		sb.WriteString(fmt.Sprintf("## %d. %s (%s) - %s\n\n", i+1, rec.Service, rec.Category, FormatScore(rec.Score)))
		sb.WriteString(rec.Description + "\n\n")

		if rec.Reason != "" {
			sb.WriteString("**Why it fits your use case**: " + rec.Reason + "\n\n")
		}
		sb.WriteString("**Tradeoffs**: " + rec.Tradeoffs + "\n\n")

		if len(rec.Pros) > 0 {
			sb.WriteString("**Pros**:\n")
			for _, pro := range rec.Pros {
				sb.WriteString("- " + pro + "\n")
			}
			sb.WriteString("\n")
		}
		if len(rec.Cons) > 0 {
			sb.WriteString("**Cons**:\n")
			for _, con := range rec.Cons {
				sb.WriteString("- " + con + "\n")
			}
			sb.WriteString("\n")
		}

		sb.WriteString("**Alternatives to consider**: " + strings.Join(rec.Alternatives, ", ") + "\n\n")
	}

	for _, b := range result.Explanations {
		sb.WriteString(fmt.Sprintf("### Score breakdown: %s\n\n", b.Service))
		sb.WriteString("| Criterion | Answer | Score | Weight | Contribution |\n|---|---|---|---|---|\n")
		for _, cs := range b.Criteria {
			score := strconv.Itoa(cs.Score)
			if cs.Defaulted {
				score += " (default)"
			}
			sb.WriteString(fmt.Sprintf("| %s | `%s` | %s | %s | %s |\n",
				cs.Criterion.Label(), cs.Value, score, cs.Weight.String(), cs.Contribution.StringFixed(1)))
		}
		sb.WriteString(fmt.Sprintf("\nWeighted total %s of %s = %s\n\n",
			b.Raw.StringFixed(1), b.MaxPossible.StringFixed(0), FormatScore(b.Score)))
	}

	if !result.Timestamp.IsZero() {
		sb.WriteString("_Generated " + result.Timestamp.UTC().Format("2006-01-02 15:04 MST") + "_\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
