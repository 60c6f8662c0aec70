// Package config loads the analysis run configuration from YAML.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"scratch-oracle-lab/internal/domain"
)

// Config is the top-level YAML document.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Profile  *ProfileConfig `yaml:"profile"`
	Report   ReportConfig   `yaml:"report"`
}

// AnalysisConfig tunes the calculators.
type AnalysisConfig struct {
	Bankroll      float64 `yaml:"bankroll"`
	Simulations   int     `yaml:"simulations"`
	TicketsPerRun int     `yaml:"tickets_per_run"`
	Workers       int     `yaml:"workers"`
	Seed          int64   `yaml:"seed"` // 0 means non-deterministic
}

// ProfileConfig mirrors domain.UserRiskProfile in YAML form. Optional: a
// missing profile section means no risk-profile adjustment.
type ProfileConfig struct {
	Age            int     `yaml:"age"`
	DailyBudget    float64 `yaml:"daily_budget"`
	WeeklyBudget   float64 `yaml:"weekly_budget"`
	MonthlyBudget  float64 `yaml:"monthly_budget"`
	RiskTolerance  string  `yaml:"risk_tolerance"`
	MaxTicketPrice float64 `yaml:"max_ticket_price"`
}

// ReportConfig controls report output.
type ReportConfig struct {
	OutputDir string `yaml:"output_dir"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Bankroll:      100,
			Simulations:   10000,
			TicketsPerRun: 1,
			Workers:       1,
		},
		Report: ReportConfig{OutputDir: "reports"},
	}
}

// Load reads a YAML config file and fills unset fields with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	defaults := Default()
	if cfg.Analysis.Bankroll <= 0 {
		cfg.Analysis.Bankroll = defaults.Analysis.Bankroll
	}
	if cfg.Analysis.Simulations <= 0 {
		cfg.Analysis.Simulations = defaults.Analysis.Simulations
	}
	if cfg.Analysis.TicketsPerRun <= 0 {
		cfg.Analysis.TicketsPerRun = defaults.Analysis.TicketsPerRun
	}
	if cfg.Analysis.Workers <= 0 {
		cfg.Analysis.Workers = defaults.Analysis.Workers
	}
	if cfg.Report.OutputDir == "" {
		cfg.Report.OutputDir = defaults.Report.OutputDir
	}

	return &cfg, nil
}

// ToDomain converts the YAML profile into the engine's value type.
func (p *ProfileConfig) ToDomain() *domain.UserRiskProfile {
	if p == nil {
		return nil
	}
	return &domain.UserRiskProfile{
		AgeInYears: p.Age,
		Budget: domain.Budget{
			Daily:   p.DailyBudget,
			Weekly:  p.WeeklyBudget,
			Monthly: p.MonthlyBudget,
		},
		RiskTolerance:  domain.RiskTolerance(p.RiskTolerance),
		MaxTicketPrice: p.MaxTicketPrice,
	}
}
