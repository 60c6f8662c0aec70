package risk

import (
	"math"

	"scratch-oracle-lab/internal/domain"
	"scratch-oracle-lab/internal/probability"
)

// Variance returns the variance of the net return X = payout - price,
// computed as E[X^2] - (E[X])^2 over the winning tiers plus the
// complementary losing outcome. When the print run is unknown the loss is
// treated as a near-certain point mass and price^2 is returned.
func Variance(game *domain.GameSnapshot) float64 {
	if game.TotalTicketsPrinted <= 0 {
		return game.Price * game.Price
	}

	var mean, meanSquare float64
	for _, tier := range game.PrizeTiers {
		if tier.Remaining <= 0 {
			continue
		}
		p := probability.WinProbability(game.TotalTicketsPrinted, tier.Remaining)
		net := tier.Amount - game.Price
		mean += p * net
		meanSquare += p * net * net
	}

	loseProb := 1 - WinRate(game)
	mean += loseProb * -game.Price
	meanSquare += loseProb * game.Price * game.Price

	variance := meanSquare - mean*mean
	if variance < 0 {
		// floating-point cancellation on near-degenerate distributions
		return 0
	}
	return variance
}

// StdDeviation returns sqrt(Variance(game)).
func StdDeviation(game *domain.GameSnapshot) float64 {
	return math.Sqrt(Variance(game))
}

// SemiVariance returns variance computed over outcomes below threshold only,
// measuring downside risk. The guaranteed-loss branch is always included
// since -price sits below any sensible threshold.
func SemiVariance(game *domain.GameSnapshot, threshold float64) float64 {
	if game.TotalTicketsPrinted <= 0 {
		return game.Price * game.Price
	}

	var semi float64
	for _, tier := range game.PrizeTiers {
		if tier.Remaining <= 0 {
			continue
		}
		net := tier.Amount - game.Price
		if net >= threshold {
			continue
		}
		p := probability.WinProbability(game.TotalTicketsPrinted, tier.Remaining)
		diff := net - threshold
		semi += p * diff * diff
	}

	loseProb := 1 - WinRate(game)
	diff := -game.Price - threshold
	semi += loseProb * diff * diff

	return semi
}
