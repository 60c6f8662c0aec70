package domain

import "time"

// Game status values reported by the lottery data feed.
const (
	StatusActive  = "Active"
	StatusNew     = "New"
	StatusRetired = "Retired"
)

// PrizeTier is one prize level of a scratch-off game. Tiers arrive in the
// feed's declared order: the first two are the game's top prizes.
type PrizeTier struct {
	TierLabel   string  `json:"tier"`
	Amount      float64 `json:"amount"`
	TotalIssued int64   `json:"total"`
	Remaining   int64   `json:"remaining"`
	Odds        string  `json:"odds,omitempty"` // printed odds, e.g. "1 in 100,000"
}

// Valid reports whether the tier satisfies 0 <= remaining <= totalIssued.
// Tiers violating it contribute nothing to expected value.
func (p *PrizeTier) Valid() bool {
	return p.Remaining >= 0 && p.Remaining <= p.TotalIssued
}

// GameSnapshot is the state of one scratch-off game's prize pool at a point
// in time, as supplied by the external data feed. The engine treats it as a
// read-only input with a lifecycle of one calculation pass and never mutates
// it.
type GameSnapshot struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Price      float64     `json:"price"`
	Status     string      `json:"status"`
	PrizeTiers []PrizeTier `json:"prizes"`

	// TotalTicketsPrinted is zero when the feed does not publish the print
	// run. Calculators fall back to conservative estimates in that case.
	TotalTicketsPrinted int64 `json:"total_tickets,omitempty"`

	LaunchDate  time.Time `json:"launch_date"`
	LastUpdated time.Time `json:"last_updated"`
}

// TopPrizeTiers returns the game's top prize tiers by declared order,
// at most the first two.
func (g *GameSnapshot) TopPrizeTiers() []PrizeTier {
	if len(g.PrizeTiers) > 2 {
		return g.PrizeTiers[:2]
	}
	return g.PrizeTiers
}

// TotalPrizesIssued sums TotalIssued across all tiers.
func (g *GameSnapshot) TotalPrizesIssued() int64 {
	var total int64
	for _, tier := range g.PrizeTiers {
		total += tier.TotalIssued
	}
	return total
}

// TotalPrizesRemaining sums Remaining across all tiers.
func (g *GameSnapshot) TotalPrizesRemaining() int64 {
	var total int64
	for _, tier := range g.PrizeTiers {
		total += tier.Remaining
	}
	return total
}
