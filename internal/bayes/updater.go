// Package bayes adjusts win-probability estimates from observed claim-rate
// evidence.
package bayes

import (
	"scratch-oracle-lab/internal/domain"
	"scratch-oracle-lab/internal/risk"
)

// UpdateProbability applies Bayes' rule directly:
//
//	P(A|B) = P(B|A) * P(A) / P(B)
//
// Zero evidence probability would divide by zero; the prior is returned
// unchanged instead, staying uninformative rather than erroring.
func UpdateProbability(prior, likelihood, evidenceProbability float64) float64 {
	if evidenceProbability == 0 {
		return prior
	}
	return likelihood * prior / evidenceProbability
}

// UpdateGameProbability starts from the game's analytic win rate and scales
// it by expectedClaimRate/observedClaimRate: prizes claimed faster than
// expected lower the effective win probability, slower claiming raises it.
// The result is clamped to [0, 1]. Non-positive rates carry no usable
// evidence and leave the prior unchanged.
func UpdateGameProbability(game *domain.GameSnapshot, observedClaimRate, expectedClaimRate float64) float64 {
	base := risk.WinRate(game)
	if observedClaimRate <= 0 || expectedClaimRate <= 0 {
		return clamp01(base)
	}
	return clamp01(base * expectedClaimRate / observedClaimRate)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
