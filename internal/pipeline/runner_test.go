package pipeline

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scratch-oracle-lab/internal/domain"
)

var runNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func quietRunner(opts Options) *Runner {
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	opts.Now = func() time.Time { return runNow }
	return NewRunner(opts)
}

func batchGames() []*domain.GameSnapshot {
	return []*domain.GameSnapshot{
		{
			ID:                  "mn-2001",
			Name:                "Lucky 7s",
			Price:               5,
			TotalTicketsPrinted: 1000,
			PrizeTiers: []domain.PrizeTier{
				{TierLabel: "$100", Amount: 100, TotalIssued: 10, Remaining: 10},
			},
			LastUpdated: runNow.Add(-1 * time.Hour),
		},
		{
			ID:    "mn-2002",
			Name:  "Broken Feed",
			Price: 0, // invalid
			PrizeTiers: []domain.PrizeTier{
				{Amount: 50, TotalIssued: 10, Remaining: 5},
			},
		},
		{
			ID:                  "mn-2003",
			Name:                "Dead Jackpot",
			Price:               10,
			TotalTicketsPrinted: 5000,
			PrizeTiers: []domain.PrizeTier{
				{TierLabel: "$50,000", Amount: 50000, TotalIssued: 3, Remaining: 0},
				{TierLabel: "$500", Amount: 500, TotalIssued: 40, Remaining: 0},
				{TierLabel: "$20", Amount: 20, TotalIssued: 800, Remaining: 400},
			},
			LastUpdated: runNow.Add(-1 * time.Hour),
		},
	}
}

func TestRun_SkipsInvalidGamesAndKeepsGoing(t *testing.T) {
	runner := quietRunner(Options{Bankroll: 100, Simulations: 50, Seed: 1})

	res, err := runner.Run(context.Background(), batchGames())
	require.NoError(t, err)

	assert.Len(t, res.Analyses, 2, "the invalid game is skipped, not fatal")
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "mn-2002")

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, runNow, res.GeneratedAt)
}

func TestRun_NilGameReportedByIndex(t *testing.T) {
	runner := quietRunner(Options{Simulations: 10})

	res, err := runner.Run(context.Background(), []*domain.GameSnapshot{nil})
	require.NoError(t, err)

	assert.Empty(t, res.Analyses)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "games[0]")
}

func TestRun_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := quietRunner(Options{Simulations: 10}).Run(ctx, batchGames())

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, res)
}

func TestRun_DeterministicWithSeed(t *testing.T) {
	games := batchGames()

	a, err := quietRunner(Options{Bankroll: 100, Simulations: 500, Seed: 42}).Run(context.Background(), games)
	require.NoError(t, err)
	b, err := quietRunner(Options{Bankroll: 100, Simulations: 500, Seed: 42}).Run(context.Background(), games)
	require.NoError(t, err)

	require.Len(t, b.Analyses, len(a.Analyses))
	for i := range a.Analyses {
		assert.Equal(t, a.Analyses[i].MonteCarlo, b.Analyses[i].MonteCarlo)
	}
}

func TestRunResult_Counts(t *testing.T) {
	runner := quietRunner(Options{Bankroll: 100, Simulations: 50, Seed: 1})

	res, err := runner.Run(context.Background(), batchGames())
	require.NoError(t, err)

	assert.Equal(t, 1, res.CountZombies(), "mn-2003 has no top prizes left")
	assert.Equal(t, 0, res.CountPositiveEV())
}
