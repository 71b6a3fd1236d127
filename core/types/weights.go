package types

import "github.com/shopspring/decimal"

// DefaultScore is used for any (criterion, value) pair a profile does not define
const DefaultScore = 50

// MaxCriterionScore is the upper bound of a per-criterion score
const MaxCriterionScore = 100

var weights = map[Criterion]decimal.Decimal{
	WorkloadType:   decimal.RequireFromString("2.5"),
	Scale:          decimal.RequireFromString("1.5"),
	Budget:         decimal.RequireFromString("2.0"),
	TrafficPattern: decimal.RequireFromString("1.5"),
	Customization:  decimal.RequireFromString("1.0"),
	Performance:    decimal.RequireFromString("1.8"),
	OpsPreference:  decimal.RequireFromString("2.0"),
}

// Weight returns the weight of a criterion; unknown criteria weigh zero
func Weight(c Criterion) decimal.Decimal {
	if w, ok := weights[c]; ok {
		return w
	}
	return decimal.Zero
}

// MaxPossibleScore is sum(weight * 100) over all criteria (1230)
func MaxPossibleScore() decimal.Decimal {
	total := decimal.Zero
	for _, c := range criteria {
		total = total.Add(weights[c].Mul(decimal.NewFromInt(MaxCriterionScore)))
	}
	return total
}
