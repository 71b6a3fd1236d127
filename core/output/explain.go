package output

import (
	"strconv"

	"aws-recommender/core/engine"
	"aws-recommender/core/explanation"
	"aws-recommender/core/ui"
)

func renderBreakdowns(out *ui.Writer, breakdowns []*engine.Breakdown) {
	for _, b := range breakdowns {
		out.Println("")
		out.SubHeader("Score breakdown: " + b.Service)

		table := out.NewTable("Criterion", "Answer", "Score", "Weight", "Contribution", "")
		for _, cs := range b.Criteria {
			score := strconv.Itoa(cs.Score)
			if cs.Defaulted {
				score += "*"
			}
			table.AddRow(
				cs.Criterion.Label(),
				cs.Value,
				score,
				cs.Weight.String(),
				cs.Contribution.StringFixed(1),
				verdictMark(cs.Verdict),
			)
		}
		table.Render()

		out.Println("Weighted total %s of %s = %s",
			b.Raw.StringFixed(1), b.MaxPossible.StringFixed(0), out.Score(b.Score, FormatScore(b.Score)))
		if len(b.Defaulted()) > 0 {
			out.Println("%s", out.Dim("* no score defined for this answer, default used"))
		}
	}
}

func verdictMark(v explanation.Verdict) string {
	switch v {
	case explanation.VerdictStrength:
		return "+"
	case explanation.VerdictTradeoff:
		return "-"
	default:
		return ""
	}
}
