package reporting

import (
	"fmt"
	"strings"
)

// RenderCSV renders the game rows as a CSV string.
func RenderCSV(rows []GameRow) string {
	var sb strings.Builder

	sb.WriteString("game_id,name,price,base_ev,adjusted_ev,confidence,hotness,zombie,")
	sb.WriteString("win_rate,std_deviation,sharpe_ratio,")
	sb.WriteString("mc_mean_return,mc_probability_of_profit,mc_value_at_risk_95,")
	sb.WriteString("kelly_bet_size,kelly_fraction,recommendation\n")

	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%s,%s,%.2f,%.6f,%.6f,%.4f,%.4f,%t,%.6f,%.6f,%.6f,%.6f,%.6f,%.6f,%.6f,%.6f,%s\n",
			csvField(r.GameID),
			csvField(r.Name),
			r.TicketPrice,
			r.BaseEV,
			r.AdjustedEV,
			r.Confidence,
			r.Hotness,
			r.Zombie,
			r.WinRate,
			r.StdDeviation,
			r.SharpeRatio,
			r.MeanReturn,
			r.ProbabilityOfProfit,
			r.ValueAtRisk95,
			r.KellyBetSize,
			r.KellyFraction,
			csvField(r.Recommendation),
		))
	}

	return sb.String()
}

// csvField quotes a value when it contains a delimiter.
func csvField(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}
