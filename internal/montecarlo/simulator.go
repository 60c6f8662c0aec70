// Package montecarlo estimates a game's return distribution empirically by
// repeated ticket sampling.
package montecarlo

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"scratch-oracle-lab/internal/domain"
	"scratch-oracle-lab/internal/probability"
)

// Source yields uniform variates in [0, 1). *rand.Rand satisfies it, and
// tests inject seeded sources for deterministic runs.
type Source interface {
	Float64() float64
}

// Defaults applied by Simulate when Options fields are zero.
const (
	DefaultNumSimulations = 10000
	DefaultTicketsPerRun  = 1
)

// cancelCheckInterval is how many runs a worker completes between context
// checks.
const cancelCheckInterval = 256

// Options configure a simulation run.
type Options struct {
	// NumSimulations is the number of independent runs (default 10000).
	NumSimulations int

	// TicketsPerRun is how many tickets each run buys (default 1).
	TicketsPerRun int

	// Workers fans runs out across goroutines (default 1). Per-run sampling
	// is independent; result vectors are merged before order statistics.
	Workers int

	// NewSource supplies one PRNG per worker. Defaults to math/rand seeded
	// from the wall clock and the worker index.
	NewSource func(worker int) Source
}

func (o Options) withDefaults() Options {
	if o.NumSimulations <= 0 {
		o.NumSimulations = DefaultNumSimulations
	}
	if o.TicketsPerRun <= 0 {
		o.TicketsPerRun = DefaultTicketsPerRun
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if o.NewSource == nil {
		base := time.Now().UnixNano()
		o.NewSource = func(worker int) Source {
			return rand.New(rand.NewSource(base + int64(worker)))
		}
	}
	return o
}

// band is one entry of the cumulative probability table: a draw below Cum
// that missed every earlier band pays Payout.
type band struct {
	payout float64
	cum    float64
}

// Simulate estimates the net-return distribution of buying
// Options.TicketsPerRun tickets, over Options.NumSimulations independent
// runs. When the print run is unknown it short-circuits to a degenerate
// certain-loss result rather than simulating blind. Cancelling ctx stops the
// workers and returns ctx.Err() with no result.
func Simulate(ctx context.Context, game *domain.GameSnapshot, opts Options) (*domain.MonteCarloResult, error) {
	opts = opts.withDefaults()

	if game.TotalTicketsPrinted <= 0 {
		return &domain.MonteCarloResult{
			MeanReturn:           -game.Price,
			MedianReturn:         -game.Price,
			StdDeviation:         0,
			ConfidenceInterval95: [2]float64{-game.Price, -game.Price},
			ProbabilityOfProfit:  0,
			ValueAtRisk95:        game.Price,
			Runs:                 0,
		}, nil
	}

	table := buildTable(game)
	cost := game.Price * float64(opts.TicketsPerRun)

	workers := opts.Workers
	if workers > opts.NumSimulations {
		workers = opts.NumSimulations
	}

	chunks := make([][]float64, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		runs := opts.NumSimulations / workers
		if w < opts.NumSimulations%workers {
			runs++
		}

		wg.Add(1)
		go func(w, runs int) {
			defer wg.Done()
			chunks[w] = simulateRuns(ctx, table, cost, opts.TicketsPerRun, runs, opts.NewSource(w))
		}(w, runs)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Merge worker vectors before computing order statistics: percentiles
	// must be taken over the full sorted result set, not per worker.
	results := make([]float64, 0, opts.NumSimulations)
	for _, chunk := range chunks {
		results = append(results, chunk...)
	}
	sort.Float64s(results)

	return summarize(results, game.Price), nil
}

// buildTable builds the cumulative probability table over tiers with
// remaining prizes. A draw falling within no band is a losing ticket.
func buildTable(game *domain.GameSnapshot) []band {
	table := make([]band, 0, len(game.PrizeTiers))
	var cum float64
	for _, tier := range game.PrizeTiers {
		if tier.Remaining <= 0 {
			continue
		}
		cum += probability.WinProbability(game.TotalTicketsPrinted, tier.Remaining)
		table = append(table, band{payout: tier.Amount, cum: cum})
	}
	return table
}

// simulateRuns executes runs independent simulations on one worker.
// Returns nil once the context is cancelled.
func simulateRuns(ctx context.Context, table []band, cost float64, tickets, runs int, rng Source) []float64 {
	out := make([]float64, 0, runs)
	for i := 0; i < runs; i++ {
		if i%cancelCheckInterval == 0 && ctx.Err() != nil {
			return nil
		}

		var payout float64
		for t := 0; t < tickets; t++ {
			payout += drawTicket(table, rng)
		}
		out = append(out, payout-cost)
	}
	return out
}

// drawTicket samples one ticket outcome against the cumulative table.
func drawTicket(table []band, rng Source) float64 {
	u := rng.Float64()
	for _, b := range table {
		if u < b.cum {
			return b.payout
		}
	}
	return 0
}
