package ev

import (
	"context"

	"scratch-oracle-lab/internal/domain"
	"scratch-oracle-lab/internal/kelly"
	"scratch-oracle-lab/internal/montecarlo"
	"scratch-oracle-lab/internal/risk"
)

// AnalyzeOptions configure the advanced-analysis pass.
type AnalyzeOptions struct {
	// Bankroll feeds the Kelly sizing.
	Bankroll float64

	// MonteCarlo options are passed through to the simulator.
	MonteCarlo montecarlo.Options
}

// Analyze composes every calculator into one advanced analysis: the EV
// verdict, analytic risk metrics, a Monte Carlo return distribution, and
// Kelly wager sizing. Validation fails with *InvalidInputError exactly as
// Calculate does; a cancelled context aborts the Monte Carlo pass and
// returns ctx.Err().
func (c *Calculator) Analyze(ctx context.Context, game *domain.GameSnapshot, profile *domain.UserRiskProfile, opts AnalyzeOptions) (*domain.AdvancedAnalysis, error) {
	evResult, err := c.Calculate(game, profile)
	if err != nil {
		return nil, err
	}

	stdDev := risk.StdDeviation(game)
	riskResult := &domain.RiskMetricsResult{
		Variance:               risk.Variance(game),
		StdDeviation:           stdDev,
		SemiVariance:           risk.SemiVariance(game, 0),
		SharpeRatio:            risk.SharpeRatio(evResult.BaseEV, stdDev, 0),
		CoefficientOfVariation: risk.CoefficientOfVariation(evResult.BaseEV, stdDev),
		WinRate:                risk.WinRate(game),
		ValueAtRisk95:          risk.MaxDrawdown(game),
	}

	mcResult, err := montecarlo.Simulate(ctx, game, opts.MonteCarlo)
	if err != nil {
		return nil, err
	}

	return &domain.AdvancedAnalysis{
		GameID:      game.ID,
		GameName:    game.Name,
		TicketPrice: game.Price,
		EV:          evResult,
		Risk:        riskResult,
		MonteCarlo:  mcResult,
		Kelly:       kelly.CalculateForLottery(game, opts.Bankroll),
	}, nil
}
