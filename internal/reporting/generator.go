package reporting

import (
	"math"
	"sort"

	"scratch-oracle-lab/internal/ev"
	"scratch-oracle-lab/internal/pipeline"
)

// Build converts a pipeline run into a renderable report. Rows are sorted
// playable-first by adjusted EV descending, zombies last, ties broken by
// game ID for reproducible output.
func Build(run *pipeline.RunResult) *Report {
	rows := make([]GameRow, 0, len(run.Analyses))
	summary := Summary{
		GamesAnalyzed: len(run.Analyses),
		GamesSkipped:  len(run.Errors),
	}

	for _, a := range run.Analyses {
		zombie := math.IsInf(a.EV.AdjustedEV, -1)
		if zombie {
			summary.ZombieGames++
		}
		if a.EV.AdjustedEV > 0 {
			summary.PositiveEV++
		}
		if a.EV.Hotness > 0.7 {
			summary.HotGames++
		}

		rows = append(rows, GameRow{
			GameID:      a.GameID,
			Name:        a.GameName,
			TicketPrice: a.TicketPrice,

			BaseEV:     a.EV.BaseEV,
			AdjustedEV: a.EV.AdjustedEV,
			Confidence: a.EV.Confidence,
			Hotness:    a.EV.Hotness,
			Zombie:     zombie,

			WinRate:      a.Risk.WinRate,
			StdDeviation: a.Risk.StdDeviation,
			SharpeRatio:  a.Risk.SharpeRatio,

			MeanReturn:          a.MonteCarlo.MeanReturn,
			ProbabilityOfProfit: a.MonteCarlo.ProbabilityOfProfit,
			ValueAtRisk95:       a.MonteCarlo.ValueAtRisk95,

			KellyBetSize:   a.Kelly.OptimalBetSize,
			KellyFraction:  a.Kelly.KellyFraction,
			Recommendation: a.Kelly.Recommendation,

			Explanations: ev.ExplainEV(a.EV),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Zombie != rows[j].Zombie {
			return !rows[i].Zombie
		}
		if rows[i].AdjustedEV != rows[j].AdjustedEV {
			return rows[i].AdjustedEV > rows[j].AdjustedEV
		}
		return rows[i].GameID < rows[j].GameID
	})

	return &Report{
		RunID:       run.RunID,
		GeneratedAt: run.GeneratedAt,
		Summary:     summary,
		Rows:        rows,
		Errors:      append([]string(nil), run.Errors...),
	}
}
