// Package kelly sizes wagers with the Kelly criterion, damped by a fixed
// fractional multiplier and a hard bankroll cap.
package kelly

import (
	"math"

	"scratch-oracle-lab/internal/domain"
	"scratch-oracle-lab/internal/probability"
)

// Sizing discipline: never bet the theoretical Kelly maximum.
const (
	// FractionalMultiplier damps the full Kelly fraction (25% Kelly).
	FractionalMultiplier = 0.25

	// MaxBankrollFraction caps any bet at 10% of bankroll regardless of edge.
	MaxBankrollFraction = 0.10
)

// Advisory strings bucketed by the unclamped full-Kelly fraction.
const (
	RecommendInsufficientData = "Insufficient data for Kelly calculation"
	RecommendDoNotPlay        = "Do not play - negative expected value"
	RecommendMinimalBet       = "Minimal bet advised - low edge"
	RecommendSmallBet         = "Small bet acceptable"
	RecommendFavorable        = "Favorable odds detected"
)

// OptimalBetSize returns the dollar amount to wager given a win probability
// p, net odds b (profit per dollar wagered), and a bankroll:
//
//	f* = (b*p - (1-p)) / b
//
// clamped to >= 0, damped to 25% fractional Kelly, then capped at 10% of
// bankroll. Non-positive net odds carry no edge and size to zero.
func OptimalBetSize(winProbability, netOdds, bankroll float64) float64 {
	if netOdds <= 0 {
		return 0
	}

	full := (netOdds*winProbability - (1 - winProbability)) / netOdds
	fraction := math.Min(full*FractionalMultiplier, MaxBankrollFraction)
	if fraction < 0 {
		fraction = 0
	}
	return fraction * bankroll
}

// CalculateForLottery derives the aggregate win probability and
// value-weighted average payout across all tiers, then applies the same
// fractional-Kelly and bankroll-cap discipline as OptimalBetSize. The
// advisory string is bucketed on the unclamped full-Kelly fraction.
func CalculateForLottery(game *domain.GameSnapshot, bankroll float64) *domain.KellyResult {
	if game.TotalTicketsPrinted <= 0 || game.Price <= 0 {
		return &domain.KellyResult{Recommendation: RecommendInsufficientData}
	}

	var totalWinProb, weightedPayout float64
	for _, tier := range game.PrizeTiers {
		if tier.Remaining <= 0 {
			continue
		}
		p := probability.WinProbability(game.TotalTicketsPrinted, tier.Remaining)
		totalWinProb += p
		weightedPayout += p * tier.Amount
	}

	var averagePayout float64
	if totalWinProb > 0 {
		averagePayout = weightedPayout / totalWinProb
	}
	netOdds := (averagePayout - game.Price) / game.Price

	var full float64
	if totalWinProb > 0 && netOdds > 0 {
		full = (netOdds*totalWinProb - (1 - totalWinProb)) / netOdds
	}

	safe := math.Max(0, full*FractionalMultiplier)
	fraction := math.Min(safe, MaxBankrollFraction)
	betSize := fraction * bankroll

	return &domain.KellyResult{
		OptimalBetSize:       betSize,
		KellyFraction:        fraction,
		Recommendation:       recommend(full),
		MaxTicketsAffordable: int64(betSize / game.Price),
	}
}

// recommend buckets the unclamped full-Kelly fraction by fixed thresholds.
func recommend(fullKelly float64) string {
	switch {
	case fullKelly <= 0:
		return RecommendDoNotPlay
	case fullKelly < 0.01:
		return RecommendMinimalBet
	case fullKelly < 0.05:
		return RecommendSmallBet
	default:
		return RecommendFavorable
	}
}
