package output

import (
	"io"
	"strings"

	"aws-recommender/core/ui"
)

// CLIFormatter renders one card per recommendation
type CLIFormatter struct {
	noColor bool
}

// NewCLIFormatter creates a card formatter
func NewCLIFormatter(noColor bool) *CLIFormatter {
	return &CLIFormatter{noColor: noColor}
}

func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

func (f *CLIFormatter) Render(w io.Writer, result *Result) error {
	out := ui.NewWriter(w, f.noColor)

	out.Header("AWS Service Recommendations")
	if len(result.Recommendations) == 0 {
		out.Warning("No recommendations")
		return nil
	}

	for i, rec := range result.Recommendations {
		if i > 0 {
			out.Println("%s", out.Dim(strings.Repeat("─", 60)))
		}

		score := FormatScore(rec.Score)
		out.Println("%s  %s", out.Bold(rec.Service+" ("+rec.Category+")"), out.Score(rec.Score, score))
		out.Println("%s", rec.Description)
		out.Println("")

		out.SubHeader("Why it fits your use case:")
		if rec.Reason != "" {
			out.Println("  %s", rec.Reason)
		} else {
			out.Println("  %s", out.Dim("-"))
		}

		out.SubHeader("Pros:")
		for _, pro := range rec.Pros {
			out.Println("  • %s", pro)
		}

		out.SubHeader("Tradeoffs:")
		out.Println("  %s", rec.Tradeoffs)

		out.SubHeader("Cons:")
		for _, con := range rec.Cons {
			out.Println("  • %s", con)
		}

		out.SubHeader("Alternatives to consider:")
		out.Println("  %s", strings.Join(rec.Alternatives, ", "))
		out.Println("")
	}

	renderBreakdowns(out, result.Explanations)
	return nil
}
