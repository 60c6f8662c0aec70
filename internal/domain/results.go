package domain

// FactorWeights records the fixed weighting used during the adjustment pass.
// Tunable heuristic constants, not probability law.
type FactorWeights struct {
	PrizePool     float64 `json:"prize_pool_weight"`
	RecencyBias   float64 `json:"recency_bias"`
	Concentration float64 `json:"concentration_score"`
	UserRisk      float64 `json:"user_risk_profile"`
}

// EVResult is the expected-value verdict for one game. Immutable output
// value: callers hold it, the engine never updates it.
type EVResult struct {
	GameID     string        `json:"game_id"`
	BaseEV     float64       `json:"base_ev"`
	AdjustedEV float64       `json:"adjusted_ev"` // math.Inf(-1) marks a zombie game
	Confidence float64       `json:"confidence"`  // [0.3, 1.0]
	Hotness    float64       `json:"hotness"`     // [0, 1]
	Factors    FactorWeights `json:"factors"`
}

// RiskMetricsResult bundles the analytic risk metrics for one game.
type RiskMetricsResult struct {
	Variance               float64 `json:"variance"`
	StdDeviation           float64 `json:"std_deviation"`
	SemiVariance           float64 `json:"semi_variance"`
	SharpeRatio            float64 `json:"sharpe_ratio"`
	CoefficientOfVariation float64 `json:"coefficient_of_variation"`
	WinRate                float64 `json:"win_rate"` // [0, 1]
	ValueAtRisk95          float64 `json:"value_at_risk_95"`
}

// MonteCarloResult holds empirical return-distribution statistics.
type MonteCarloResult struct {
	MeanReturn           float64    `json:"mean_return"`
	MedianReturn         float64    `json:"median_return"`
	StdDeviation         float64    `json:"std_deviation"`
	ConfidenceInterval95 [2]float64 `json:"confidence_interval_95"` // [2.5th, 97.5th] percentile
	ProbabilityOfProfit  float64    `json:"probability_of_profit"`  // [0, 1]
	ValueAtRisk95        float64    `json:"value_at_risk_95"`
	Runs                 int        `json:"runs"`
}

// KellyResult is the wager-sizing verdict for one game.
type KellyResult struct {
	OptimalBetSize       float64 `json:"optimal_bet_size"`
	KellyFraction        float64 `json:"kelly_fraction"` // [0, 0.10]
	Recommendation       string  `json:"recommendation"`
	MaxTicketsAffordable int64   `json:"max_tickets_affordable"`
}

// AdvancedAnalysis composes every calculator's output for one game.
type AdvancedAnalysis struct {
	GameID      string             `json:"game_id"`
	GameName    string             `json:"game_name"`
	TicketPrice float64            `json:"ticket_price"`
	EV          *EVResult          `json:"ev"`
	Risk        *RiskMetricsResult `json:"risk"`
	MonteCarlo  *MonteCarloResult  `json:"monte_carlo"`
	Kelly       *KellyResult       `json:"kelly"`
}
