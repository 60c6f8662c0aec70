package ev

import (
	"fmt"
	"math"

	"scratch-oracle-lab/internal/domain"
)

// ExplainEV renders a deterministic, ordered list of human-readable
// explanations for a result: EV framing first, then a low-confidence warning
// below 0.7, then a hot-game notice above 0.7 hotness. Order is stable.
func ExplainEV(result *domain.EVResult) []string {
	explanations := make([]string, 0, 3)

	switch {
	case math.IsInf(result.AdjustedEV, -1):
		explanations = append(explanations, "Zombie game: No top prizes remaining")
	case result.AdjustedEV > 0:
		explanations = append(explanations, fmt.Sprintf("Positive expected value: +$%.2f", result.AdjustedEV))
	default:
		explanations = append(explanations, fmt.Sprintf("Negative expected value: $%.2f", result.AdjustedEV))
	}

	if result.Confidence < 0.7 {
		explanations = append(explanations, "Low confidence due to limited data")
	}
	if result.Hotness > 0.7 {
		explanations = append(explanations, "Hot game: Prizes being claimed quickly")
	}

	return explanations
}
