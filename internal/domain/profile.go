package domain

// RiskTolerance buckets a player's appetite for variance.
type RiskTolerance string

// Risk tolerance levels.
const (
	RiskLow    RiskTolerance = "low"
	RiskMedium RiskTolerance = "medium"
	RiskHigh   RiskTolerance = "high"
)

// Budget holds a player's self-imposed spending limits.
type Budget struct {
	Daily   float64 `json:"daily"`
	Weekly  float64 `json:"weekly"`
	Monthly float64 `json:"monthly"`
}

// UserRiskProfile is supplied per calculation by the profile store.
// The engine never persists it. A nil profile means "no adjustment".
type UserRiskProfile struct {
	AgeInYears     int           `json:"age"`
	Budget         Budget        `json:"budget"`
	RiskTolerance  RiskTolerance `json:"risk_tolerance"`
	MaxTicketPrice float64       `json:"max_ticket_price"`
}
