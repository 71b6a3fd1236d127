package output

import (
	"io"
	"strconv"
	"strings"

	"aws-recommender/core/ui"
)

// TableFormatter renders a compact ranking table
type TableFormatter struct {
	noColor bool
}

// NewTableFormatter creates a table formatter
func NewTableFormatter(noColor bool) *TableFormatter {
	return &TableFormatter{noColor: noColor}
}

func (f *TableFormatter) Format() Format {
	return FormatTable
}

func (f *TableFormatter) Render(w io.Writer, result *Result) error {
	out := ui.NewWriter(w, f.noColor)

	table := out.NewTable("#", "Service", "Category", "Score", "Alternatives")
	for i, rec := range result.Recommendations {
		table.AddRow(
			strconv.Itoa(i+1),
			rec.Service,
			rec.Category,
			FormatScore(rec.Score),
			strings.Join(rec.Alternatives, ", "),
		)
	}
	table.Render()

	renderBreakdowns(out, result.Explanations)
	return nil
}
