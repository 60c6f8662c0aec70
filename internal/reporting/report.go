// Package reporting renders analysis runs as Markdown and CSV reports.
package reporting

import "time"

// Report is the renderable view of one analysis run.
type Report struct {
	RunID       string
	GeneratedAt time.Time
	Summary     Summary
	Rows        []GameRow // playable games by adjusted EV desc, zombies last
	Errors      []string  // skipped-game errors, in input order
}

// Summary aggregates the run.
type Summary struct {
	GamesAnalyzed int
	GamesSkipped  int
	ZombieGames   int
	PositiveEV    int
	HotGames      int // hotness > 0.7
}

// GameRow is one game's verdict across all calculators.
type GameRow struct {
	GameID      string
	Name        string
	TicketPrice float64

	BaseEV     float64
	AdjustedEV float64 // -Inf for zombie games
	Confidence float64
	Hotness    float64
	Zombie     bool

	WinRate      float64
	StdDeviation float64
	SharpeRatio  float64

	MeanReturn          float64
	ProbabilityOfProfit float64
	ValueAtRisk95       float64

	KellyBetSize   float64
	KellyFraction  float64
	Recommendation string

	Explanations []string
}
