package risk

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"scratch-oracle-lab/internal/domain"
)

// testGame has exact round-number moments: win prob 0.01 at net +95,
// lose prob 0.99 at net -5, so mean = -4, E[X^2] = 115, variance = 99.
func testGame() *domain.GameSnapshot {
	return &domain.GameSnapshot{
		ID:                  "mn-0001",
		Name:                "Lucky 7s",
		Price:               5,
		TotalTicketsPrinted: 1000,
		PrizeTiers: []domain.PrizeTier{
			{TierLabel: "$100", Amount: 100, TotalIssued: 10, Remaining: 10},
		},
	}
}

func TestWinRate_SumsTierProbabilities(t *testing.T) {
	game := testGame()
	game.PrizeTiers = append(game.PrizeTiers, domain.PrizeTier{
		TierLabel: "$20", Amount: 20, TotalIssued: 50, Remaining: 30,
	})

	// 10/1000 + 30/1000
	assert.InDelta(t, 0.04, WinRate(game), 1e-12)
}

func TestWinRate_UnknownPrintRun(t *testing.T) {
	game := testGame()
	game.TotalTicketsPrinted = 0
	assert.Equal(t, 0.0, WinRate(game))
}

func TestWinRate_ExhaustedTiersIgnored(t *testing.T) {
	game := testGame()
	game.PrizeTiers[0].Remaining = 0
	assert.Equal(t, 0.0, WinRate(game))
}

func TestWinRate_ClampedToOne(t *testing.T) {
	// Corrupt feed: more remaining prizes than tickets printed.
	game := testGame()
	game.PrizeTiers = []domain.PrizeTier{
		{Amount: 10, TotalIssued: 2000, Remaining: 1500},
	}
	assert.Equal(t, 1.0, WinRate(game))
}

func TestSharpeRatio(t *testing.T) {
	assert.InDelta(t, 0.5, SharpeRatio(5, 10, 0), 1e-12)
	assert.InDelta(t, 0.4, SharpeRatio(5, 10, 1), 1e-12)
	assert.Equal(t, 0.0, SharpeRatio(5, 0, 0), "zero stddev is neutral, not infinite")
}

func TestCoefficientOfVariation(t *testing.T) {
	assert.InDelta(t, 2.5, CoefficientOfVariation(-4, 10), 1e-12)
	assert.True(t, math.IsInf(CoefficientOfVariation(0, 10), 1), "zero mean propagates +Inf intentionally")
}

func TestMaxDrawdown_IsTicketPrice(t *testing.T) {
	assert.Equal(t, 5.0, MaxDrawdown(testGame()))
}

func TestVariance_ExactMoments(t *testing.T) {
	// E[X^2] - E[X]^2 = 115 - 16 = 99
	assert.InDelta(t, 99.0, Variance(testGame()), 1e-9)
}

func TestVariance_UnknownPrintRun(t *testing.T) {
	game := testGame()
	game.TotalTicketsPrinted = 0
	assert.Equal(t, 25.0, Variance(game), "loss treated as near-certain point mass")
}

func TestStdDeviation(t *testing.T) {
	assert.InDelta(t, math.Sqrt(99), StdDeviation(testGame()), 1e-9)
}

func TestSemiVariance_IncludesLossBranch(t *testing.T) {
	// Only the losing branch sits below 0: 0.99 * 25 = 24.75
	assert.InDelta(t, 24.75, SemiVariance(testGame(), 0), 1e-9)
}

func TestSemiVariance_ThresholdCapturesSmallWins(t *testing.T) {
	// Threshold 100 pulls the winning branch (net +95) below the bar too:
	// 0.01*(95-100)^2 + 0.99*(-5-100)^2 = 0.25 + 10914.75
	assert.InDelta(t, 10915.0, SemiVariance(testGame(), 100), 1e-9)
}

func TestSemiVariance_UnknownPrintRun(t *testing.T) {
	game := testGame()
	game.TotalTicketsPrinted = 0
	assert.Equal(t, 25.0, SemiVariance(game, 0))
}

func TestVariance_NeverNegative(t *testing.T) {
	// Single-outcome degenerate pool should not go negative from fp error.
	game := &domain.GameSnapshot{
		Price:               1,
		TotalTicketsPrinted: 1,
		PrizeTiers:          []domain.PrizeTier{{Amount: 1, TotalIssued: 1, Remaining: 1}},
	}
	assert.GreaterOrEqual(t, Variance(game), 0.0)
	assert.False(t, math.IsNaN(StdDeviation(game)))
}
