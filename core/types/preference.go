package types

import "fmt"

// PreferenceVector is one answer per criterion.
// Values outside the enumerations are accepted and score as DefaultScore.
type PreferenceVector struct {
	WorkloadType   string `json:"workloadType" yaml:"workloadType" validate:"required"`
	Scale          string `json:"scale" yaml:"scale" validate:"required"`
	Budget         string `json:"budget" yaml:"budget" validate:"required"`
	TrafficPattern string `json:"trafficPattern" yaml:"trafficPattern" validate:"required"`
	Customization  string `json:"customization" yaml:"customization" validate:"required"`
	Performance    string `json:"performance" yaml:"performance" validate:"required"`
	OpsPreference  string `json:"opsPreference" yaml:"opsPreference" validate:"required"`
}

// Value returns the answer for a criterion
func (p PreferenceVector) Value(c Criterion) string {
	switch c {
	case WorkloadType:
		return p.WorkloadType
	case Scale:
		return p.Scale
	case Budget:
		return p.Budget
	case TrafficPattern:
		return p.TrafficPattern
	case Customization:
		return p.Customization
	case Performance:
		return p.Performance
	case OpsPreference:
		return p.OpsPreference
	default:
		return ""
	}
}

// Set assigns the answer for a criterion
func (p *PreferenceVector) Set(c Criterion, value string) error {
	switch c {
	case WorkloadType:
		p.WorkloadType = value
	case Scale:
		p.Scale = value
	case Budget:
		p.Budget = value
	case TrafficPattern:
		p.TrafficPattern = value
	case Customization:
		p.Customization = value
	case Performance:
		p.Performance = value
	case OpsPreference:
		p.OpsPreference = value
	default:
		return fmt.Errorf("unknown criterion %q", c)
	}
	return nil
}

// Missing returns the criteria with an empty answer, in scoring order
func (p PreferenceVector) Missing() []Criterion {
	var missing []Criterion
	for _, c := range criteria {
		if p.Value(c) == "" {
			missing = append(missing, c)
		}
	}
	return missing
}

// Merge returns p with every non-empty answer of override applied on top
func (p PreferenceVector) Merge(override PreferenceVector) PreferenceVector {
	out := p
	for _, c := range criteria {
		if v := override.Value(c); v != "" {
			_ = out.Set(c, v)
		}
	}
	return out
}
