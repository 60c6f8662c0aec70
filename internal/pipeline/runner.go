// Package pipeline runs the full advanced analysis over a batch of game
// snapshots, the way the recommendation layer consumes the engine: dozens of
// games per refresh, one bad record must never sink the pass.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"scratch-oracle-lab/internal/domain"
	"scratch-oracle-lab/internal/ev"
	"scratch-oracle-lab/internal/montecarlo"
)

// Options configure a Runner.
type Options struct {
	Bankroll      float64
	Simulations   int
	TicketsPerRun int
	Workers       int

	// Seed makes Monte Carlo sampling deterministic across runs when
	// non-zero.
	Seed int64

	// Profile applies the risk-profile adjustment pass; nil means none.
	Profile *domain.UserRiskProfile

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Now is an injectable clock for deterministic output.
	Now func() time.Time
}

// Runner executes analysis runs.
type Runner struct {
	calc *ev.Calculator
	opts Options
	log  *slog.Logger
	now  func() time.Time
}

// NewRunner creates an analysis runner.
func NewRunner(opts Options) *Runner {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	now := opts.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}

	return &Runner{
		calc: ev.NewCalculator().WithClock(now),
		opts: opts,
		log:  log,
		now:  now,
	}
}

// RunResult contains results from one analysis run.
type RunResult struct {
	RunID       string
	GeneratedAt time.Time
	Analyses    []*domain.AdvancedAnalysis
	Errors      []string
}

// Run analyzes every game in the batch. Structurally invalid games are
// skipped with their error collected, so one corrupt record never fails a
// ranking pass over the rest. Any other error, including cancellation,
// aborts the run.
func (r *Runner) Run(ctx context.Context, games []*domain.GameSnapshot) (*RunResult, error) {
	result := &RunResult{
		RunID:       uuid.NewString(),
		GeneratedAt: r.now(),
	}

	for i, game := range games {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		id := fmt.Sprintf("games[%d]", i)
		if game != nil && game.ID != "" {
			id = game.ID
		}

		analysis, err := r.calc.Analyze(ctx, game, r.opts.Profile, ev.AnalyzeOptions{
			Bankroll:   r.opts.Bankroll,
			MonteCarlo: r.monteCarloOptions(i),
		})
		if err != nil {
			var invalid *ev.InvalidInputError
			if errors.As(err, &invalid) {
				r.log.Warn("skipping invalid game", "game", id, "reason", invalid.Reason)
				result.Errors = append(result.Errors, fmt.Sprintf("analyze %s: %v", id, err))
				continue
			}
			return nil, fmt.Errorf("analyze %s: %w", id, err)
		}

		result.Analyses = append(result.Analyses, analysis)
	}

	r.log.Info("analysis run completed",
		"run_id", result.RunID,
		"games", len(games),
		"analyzed", len(result.Analyses),
		"skipped", len(result.Errors))

	return result, nil
}

// monteCarloOptions derives per-game simulator options. With a fixed seed
// each game gets its own deterministic source stream per worker.
func (r *Runner) monteCarloOptions(gameIndex int) montecarlo.Options {
	opts := montecarlo.Options{
		NumSimulations: r.opts.Simulations,
		TicketsPerRun:  r.opts.TicketsPerRun,
		Workers:        r.opts.Workers,
	}
	if r.opts.Seed != 0 {
		seed := r.opts.Seed + int64(gameIndex)*7919
		opts.NewSource = func(worker int) montecarlo.Source {
			return rand.New(rand.NewSource(seed + int64(worker)))
		}
	}
	return opts
}

// CountZombies returns how many analyzed games carry the zombie sentinel.
func (res *RunResult) CountZombies() int {
	count := 0
	for _, a := range res.Analyses {
		if math.IsInf(a.EV.AdjustedEV, -1) {
			count++
		}
	}
	return count
}

// CountPositiveEV returns how many analyzed games have positive adjusted EV.
func (res *RunResult) CountPositiveEV() int {
	count := 0
	for _, a := range res.Analyses {
		if a.EV.AdjustedEV > 0 {
			count++
		}
	}
	return count
}
