package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scratch-oracle-lab/internal/domain"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_FullDocument(t *testing.T) {
	path := writeConfig(t, `
analysis:
  bankroll: 250
  simulations: 5000
  tickets_per_run: 2
  workers: 4
  seed: 42
profile:
  age: 30
  daily_budget: 20
  risk_tolerance: low
  max_ticket_price: 10
report:
  output_dir: out
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 250.0, cfg.Analysis.Bankroll)
	assert.Equal(t, 5000, cfg.Analysis.Simulations)
	assert.Equal(t, 2, cfg.Analysis.TicketsPerRun)
	assert.Equal(t, 4, cfg.Analysis.Workers)
	assert.Equal(t, int64(42), cfg.Analysis.Seed)
	assert.Equal(t, "out", cfg.Report.OutputDir)

	profile := cfg.Profile.ToDomain()
	require.NotNil(t, profile)
	assert.Equal(t, 30, profile.AgeInYears)
	assert.Equal(t, 20.0, profile.Budget.Daily)
	assert.Equal(t, domain.RiskLow, profile.RiskTolerance)
	assert.Equal(t, 10.0, profile.MaxTicketPrice)
}

func TestLoad_FillsDefaults(t *testing.T) {
	path := writeConfig(t, "analysis:\n  seed: 7\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	defaults := Default()
	assert.Equal(t, defaults.Analysis.Bankroll, cfg.Analysis.Bankroll)
	assert.Equal(t, defaults.Analysis.Simulations, cfg.Analysis.Simulations)
	assert.Equal(t, defaults.Analysis.TicketsPerRun, cfg.Analysis.TicketsPerRun)
	assert.Equal(t, defaults.Analysis.Workers, cfg.Analysis.Workers)
	assert.Equal(t, defaults.Report.OutputDir, cfg.Report.OutputDir)
	assert.Equal(t, int64(7), cfg.Analysis.Seed, "explicit values survive the default fill")
	assert.Nil(t, cfg.Profile, "profile stays absent unless configured")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "analysis: [not a mapping")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestProfileConfig_ToDomainNilSafe(t *testing.T) {
	var p *ProfileConfig
	assert.Nil(t, p.ToDomain())
}
