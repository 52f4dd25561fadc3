package scoring

import "fmt"

// Weights defines the contribution of each component to the overall score.
// The defaults favor skills and experience over education; this is policy,
// not a hard requirement, but must stay deterministic.
type Weights struct {
	Skills       float64 `json:"skills"`
	Experience   float64 `json:"experience"`
	TechnicalFit float64 `json:"technical_fit"`
	Education    float64 `json:"education"`
}

// DefaultWeights returns the standard weighting:
// skills 40%, experience 30%, technical fit 20%, education 10%.
func DefaultWeights() Weights {
	return Weights{
		Skills:       0.4,
		Experience:   0.3,
		TechnicalFit: 0.2,
		Education:    0.1,
	}
}

// Validate checks that the weights sum to 1.0 within tolerance.
func (w Weights) Validate() error {
	sum := w.Skills + w.Experience + w.TechnicalFit + w.Education
	if sum < 0.99 || sum > 1.01 {
		return fmt.Errorf("scoring weights must sum to 1.0, got %.3f", sum)
	}
	return nil
}

// Normalize scales the weights to sum to 1.0, falling back to defaults when
// they sum to zero.
func (w Weights) Normalize() Weights {
	sum := w.Skills + w.Experience + w.TechnicalFit + w.Education
	if sum == 0 {
		return DefaultWeights()
	}
	return Weights{
		Skills:       w.Skills / sum,
		Experience:   w.Experience / sum,
		TechnicalFit: w.TechnicalFit / sum,
		Education:    w.Education / sum,
	}
}
