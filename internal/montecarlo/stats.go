package montecarlo

import (
	"math"

	"scratch-oracle-lab/internal/domain"
)

// summarize computes distribution statistics over the sorted result vector.
func summarize(sorted []float64, price float64) *domain.MonteCarloResult {
	n := len(sorted)
	if n == 0 {
		// all workers cancelled before producing a run
		return &domain.MonteCarloResult{ValueAtRisk95: price}
	}

	var sum float64
	profitable := 0
	for _, r := range sorted {
		sum += r
		if r > 0 {
			profitable++
		}
	}
	mean := sum / float64(n)

	var sumSq float64
	for _, r := range sorted {
		diff := r - mean
		sumSq += diff * diff
	}
	stdDev := math.Sqrt(sumSq / float64(n))

	return &domain.MonteCarloResult{
		MeanReturn:   mean,
		MedianReturn: sorted[n/2],
		StdDeviation: stdDev,
		ConfidenceInterval95: [2]float64{
			sorted[int(float64(n)*0.025)],
			sorted[int(float64(n)*0.975)],
		},
		ProbabilityOfProfit: float64(profitable) / float64(n),
		ValueAtRisk95:       math.Abs(sorted[int(float64(n)*0.05)]),
		Runs:                n,
	}
}
