package reporting

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// RenderMarkdown renders the report as a Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	sb.WriteString("# Scratch-Off Analysis Report\n\n")
	sb.WriteString(fmt.Sprintf("Run: %s\n\n", r.RunID))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))

	sb.WriteString("## Summary\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Games Analyzed | %d |\n", r.Summary.GamesAnalyzed))
	sb.WriteString(fmt.Sprintf("| Games Skipped | %d |\n", r.Summary.GamesSkipped))
	sb.WriteString(fmt.Sprintf("| Zombie Games | %d |\n", r.Summary.ZombieGames))
	sb.WriteString(fmt.Sprintf("| Positive EV | %d |\n", r.Summary.PositiveEV))
	sb.WriteString(fmt.Sprintf("| Hot Games | %d |\n", r.Summary.HotGames))
	sb.WriteString("\n")

	sb.WriteString("## Game Rankings\n\n")
	if len(r.Rows) > 0 {
		sb.WriteString("| Game | Price | Base EV | Adjusted EV | Confidence | Hotness | Win Rate | P(Profit) | VaR95 | Kelly Bet | Recommendation |\n")
		sb.WriteString("|------|-------|---------|-------------|------------|---------|----------|-----------|-------|-----------|----------------|\n")
		for _, row := range r.Rows {
			name := row.Name
			if name == "" {
				name = row.GameID
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %.2f | %.2f | %.4f | %.4f | %s | %s | %s |\n",
				name,
				money(row.TicketPrice),
				money(row.BaseEV),
				money(row.AdjustedEV),
				row.Confidence,
				row.Hotness,
				row.WinRate,
				row.ProbabilityOfProfit,
				money(row.ValueAtRisk95),
				money(row.KellyBetSize),
				row.Recommendation))
		}
	} else {
		sb.WriteString("No games analyzed.\n")
	}
	sb.WriteString("\n")

	sb.WriteString("## Notes\n\n")
	for _, row := range r.Rows {
		name := row.Name
		if name == "" {
			name = row.GameID
		}
		for _, note := range row.Explanations {
			sb.WriteString(fmt.Sprintf("- %s: %s\n", name, note))
		}
	}
	sb.WriteString("\n")

	if len(r.Errors) > 0 {
		sb.WriteString("## Skipped Games\n\n")
		for _, e := range r.Errors {
			sb.WriteString(fmt.Sprintf("- %s\n", e))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// money formats a dollar amount with two fixed decimals. The zombie
// sentinel renders as -Inf; decimal cannot represent it.
func money(v float64) string {
	if math.IsInf(v, -1) {
		return "-Inf"
	}
	return "$" + decimal.NewFromFloat(v).StringFixed(2)
}
