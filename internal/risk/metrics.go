// Package risk computes analytic risk metrics over a game's net-return
// distribution. All functions are pure and safe for concurrent use.
package risk

import (
	"math"

	"scratch-oracle-lab/internal/domain"
	"scratch-oracle-lab/internal/probability"
)

// WinRate returns the probability that one ticket wins any prize: the sum of
// per-tier exact win probabilities. Per-draw tier outcomes are mutually
// exclusive, so the sum is a true probability; corrupt feeds that oversell
// remaining prizes are clamped back into [0, 1].
func WinRate(game *domain.GameSnapshot) float64 {
	if game.TotalTicketsPrinted <= 0 {
		return 0
	}

	var total float64
	for _, tier := range game.PrizeTiers {
		if tier.Remaining > 0 {
			total += probability.WinProbability(game.TotalTicketsPrinted, tier.Remaining)
		}
	}

	if total > 1 {
		return 1
	}
	return total
}

// SharpeRatio returns risk-adjusted return (expectedReturn - riskFreeRate) /
// stdDev. A zero standard deviation makes the ratio undefined; it is treated
// as neutral (0) rather than infinite.
func SharpeRatio(expectedReturn, stdDev, riskFreeRate float64) float64 {
	if stdDev == 0 {
		return 0
	}
	return (expectedReturn - riskFreeRate) / stdDev
}

// CoefficientOfVariation returns |stdDev / mean|, risk per unit of return.
// A zero mean makes the ratio meaningless; +Inf is returned as an explicit
// signal and propagated intentionally rather than hidden.
func CoefficientOfVariation(mean, stdDev float64) float64 {
	if mean == 0 {
		return math.Inf(1)
	}
	return math.Abs(stdDev / mean)
}

// MaxDrawdown returns the worst-case loss on a single wager. For a one-shot
// scratch ticket that is simply its price.
func MaxDrawdown(game *domain.GameSnapshot) float64 {
	return game.Price
}
