// Package ev produces the expected-value, confidence, and hotness verdict
// for a scratch-off game, plus the advanced-analysis entry point composing
// every other calculator.
package ev

import (
	"math"
	"time"

	"scratch-oracle-lab/internal/domain"
	"scratch-oracle-lab/internal/probability"
)

// Confidence floor: even fully degenerate input scores 0.3, never less.
const minConfidence = 0.3

// bigPrizeThreshold is the amount at which a remaining prize counts as a
// jackpot for high-risk-tolerance players.
const bigPrizeThreshold = 100000

// concentrationBonusWeight scales the entropy bonus added to adjusted EV.
// Tunable heuristic constant.
const concentrationBonusWeight = 0.5

// defaultFactors is the fixed factor weighting reported on every result.
var defaultFactors = domain.FactorWeights{
	PrizePool:     0.45,
	RecencyBias:   0.25,
	Concentration: 0.20,
	UserRisk:      0.10,
}

// InvalidInputError reports a structurally invalid game record: missing
// game, non-positive price, or an empty prize-tier list. It always surfaces
// to the caller since it marks a data-contract violation upstream.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return "ev: invalid game input: " + e.Reason
}

// Calculator computes EV verdicts. It carries no state beyond an injectable
// clock, so a single instance is safe for concurrent use.
type Calculator struct {
	now func() time.Time
}

// NewCalculator returns a Calculator on the wall clock.
func NewCalculator() *Calculator {
	return &Calculator{now: func() time.Time { return time.Now().UTC() }}
}

// WithClock sets a custom clock function for deterministic output.
func (c *Calculator) WithClock(now func() time.Time) *Calculator {
	c.now = now
	return c
}

// Calculate validates the game and produces its EV/confidence/hotness
// verdict. Structurally invalid input fails with *InvalidInputError before
// any computation; valid-but-degenerate input degrades to conservative
// sentinel values and never fails. A nil profile means no adjustment.
func (c *Calculator) Calculate(game *domain.GameSnapshot, profile *domain.UserRiskProfile) (*domain.EVResult, error) {
	if err := validate(game); err != nil {
		return nil, err
	}

	baseEV := BaseEV(game)

	return &domain.EVResult{
		GameID:     game.ID,
		BaseEV:     baseEV,
		AdjustedEV: adjust(baseEV, game, profile),
		Confidence: c.confidence(game),
		Hotness:    c.hotness(game),
		Factors:    defaultFactors,
	}, nil
}

func validate(game *domain.GameSnapshot) error {
	switch {
	case game == nil:
		return &InvalidInputError{Reason: "game is nil"}
	case game.Price <= 0:
		return &InvalidInputError{Reason: "price must be positive"}
	case len(game.PrizeTiers) == 0:
		return &InvalidInputError{Reason: "at least one prize tier is required"}
	}
	return nil
}

// BaseEV returns the expected net value of one ticket: the sum over tiers of
// amount times exact win probability, minus the ticket price. A single
// corrupt tier (remaining < 0 or remaining > totalIssued) is skipped as
// zero-contribution rather than failing the game; partial data is the normal
// case for a live feed. An unknown print run returns -price, the maximally
// conservative estimate.
func BaseEV(game *domain.GameSnapshot) float64 {
	if game.TotalTicketsPrinted <= 0 {
		return -game.Price
	}

	var expectedWinnings float64
	for _, tier := range game.PrizeTiers {
		if !tier.Valid() {
			continue
		}
		if tier.Remaining > 0 {
			p := probability.WinProbability(game.TotalTicketsPrinted, tier.Remaining)
			expectedWinnings += tier.Amount * p
		}
	}

	return expectedWinnings - game.Price
}

// confidence scores data trustworthiness in [0.3, 1.0] via multiplicative
// penalties: missing print run, stale data, and a nearly-exhausted prize
// pool all erode it. Zero prizes issued across all tiers is fully degenerate
// input and scores the floor outright.
func (c *Calculator) confidence(game *domain.GameSnapshot) float64 {
	confidence := 1.0

	if game.TotalTicketsPrinted <= 0 {
		confidence *= 0.6
	}

	// A zero LastUpdated means the feed did not report a timestamp; no
	// staleness penalty applies in that case.
	if !game.LastUpdated.IsZero() {
		age := c.now().Sub(game.LastUpdated)
		if age > 24*time.Hour {
			confidence *= 0.8
		}
		if age > 72*time.Hour {
			confidence *= 0.6
		}
	}

	totalIssued := game.TotalPrizesIssued()
	if totalIssued == 0 {
		return minConfidence
	}

	remainingRatio := float64(game.TotalPrizesRemaining()) / float64(totalIssued)
	if remainingRatio < 0.10 {
		confidence *= 0.7
	}
	if remainingRatio < 0.05 {
		confidence *= 0.5
	}

	return math.Max(minConfidence, confidence)
}

// hotness scores how actively a game's prizes are being claimed, in [0, 1]:
// 0.4 x overall depletion + 0.3 x launch recency (fading to zero over 30
// days) + 0.3 x top-two-tier depletion.
func (c *Calculator) hotness(game *domain.GameSnapshot) float64 {
	totalIssued := game.TotalPrizesIssued()
	if totalIssued == 0 {
		return 0
	}
	depletionRate := 1 - float64(game.TotalPrizesRemaining())/float64(totalIssued)

	var recencyFactor float64
	if !game.LaunchDate.IsZero() {
		daysSinceLaunch := c.now().Sub(game.LaunchDate).Hours() / 24
		recencyFactor = math.Max(0, 1-daysSinceLaunch/30)
	}

	topTiers := game.TopPrizeTiers()
	if len(topTiers) == 0 {
		return 0
	}
	var topDepletion float64
	for _, tier := range topTiers {
		if tier.TotalIssued == 0 {
			continue
		}
		topDepletion += 1 - float64(tier.Remaining)/float64(tier.TotalIssued)
	}
	topDepletion /= float64(len(topTiers))

	hotness := 0.4*depletionRate + 0.3*recencyFactor + 0.3*topDepletion

	// Corrupt tiers can drive depletion negative; keep the score in range.
	return math.Min(1, math.Max(0, hotness))
}

// IsZombieGame reports whether none of the game's top two prize tiers (by
// declared order) have any prizes remaining. Zombie games are excluded from
// any downstream ranking.
func IsZombieGame(game *domain.GameSnapshot) bool {
	for _, tier := range game.TopPrizeTiers() {
		if tier.Remaining > 0 {
			return false
		}
	}
	return true
}

// adjust applies the user-profile and prize-concentration pass. Zombie games
// are forced to -Inf regardless of base EV.
func adjust(baseEV float64, game *domain.GameSnapshot, profile *domain.UserRiskProfile) float64 {
	if IsZombieGame(game) {
		return math.Inf(-1)
	}

	adjusted := baseEV

	if profile != nil {
		switch profile.RiskTolerance {
		case domain.RiskLow:
			// conservative players take a flat uncertainty penalty
			adjusted *= 0.9
		case domain.RiskHigh:
			// aggressive players chase jackpots still on the board
			if hasBigPrizeRemaining(game) {
				adjusted *= 1.1
			}
		}

		if game.Price > profile.Budget.Daily*0.5 {
			adjusted *= 0.8
		}
	}

	return adjusted + concentrationBonusWeight*prizeConcentration(game)
}

func hasBigPrizeRemaining(game *domain.GameSnapshot) bool {
	for _, tier := range game.PrizeTiers {
		if tier.Amount >= bigPrizeThreshold && tier.Remaining > 0 {
			return true
		}
	}
	return false
}

// prizeConcentration returns the normalized entropy of the
// value-weighted-by-remaining distribution across tiers. Games whose
// remaining value is spread across many tiers score near 1; a single
// dominating tier scores near 0. Returns 0 whenever a normalizing
// denominator is not positive.
func prizeConcentration(game *domain.GameSnapshot) float64 {
	var totalValue float64
	for _, tier := range game.PrizeTiers {
		totalValue += tier.Amount * float64(tier.Remaining)
	}
	if totalValue <= 0 {
		return 0
	}

	var entropy float64
	for _, tier := range game.PrizeTiers {
		if tier.Remaining <= 0 {
			continue
		}
		p := tier.Amount * float64(tier.Remaining) / totalValue
		if p > 0 {
			entropy -= p * math.Log2(p)
		}
	}

	maxEntropy := math.Log2(float64(len(game.PrizeTiers)))
	if maxEntropy <= 0 {
		return 0
	}
	return entropy / maxEntropy
}
