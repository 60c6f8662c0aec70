// Package main analyzes a batch of scratch-off game snapshots and writes
// Markdown/CSV reports: load games → run calculators → render.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"scratch-oracle-lab/internal/config"
	"scratch-oracle-lab/internal/domain"
	"scratch-oracle-lab/internal/logger"
	"scratch-oracle-lab/internal/pipeline"
	"scratch-oracle-lab/internal/reporting"
)

func main() {
	gamesPath := flag.String("games", "games.json", "Path to the game snapshots JSON file")
	configPath := flag.String("config", "", "Path to the YAML config (optional)")
	outputDir := flag.String("output-dir", "", "Output directory (overrides config)")
	verbose := flag.Bool("verbose", false, "Verbose output")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger.Init(&logger.Options{Level: level})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Printf("\nReceived signal %v, cancelling analysis...\n", sig)
		cancel()
	}()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *outputDir != "" {
		cfg.Report.OutputDir = *outputDir
	}

	games, err := loadGames(*gamesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading games: %v\n", err)
		os.Exit(1)
	}

	runner := pipeline.NewRunner(pipeline.Options{
		Bankroll:      cfg.Analysis.Bankroll,
		Simulations:   cfg.Analysis.Simulations,
		TicketsPerRun: cfg.Analysis.TicketsPerRun,
		Workers:       cfg.Analysis.Workers,
		Seed:          cfg.Analysis.Seed,
		Profile:       cfg.Profile.ToDomain(),
		Logger:        logger.L(),
	})

	result, err := runner.Run(ctx, games)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Analysis error: %v\n", err)
		os.Exit(1)
	}

	report := reporting.Build(result)
	if err := writeReport(cfg.Report.OutputDir, report); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Analysis completed:\n")
	fmt.Printf("  Games analyzed: %d\n", report.Summary.GamesAnalyzed)
	fmt.Printf("  Games skipped:  %d\n", report.Summary.GamesSkipped)
	fmt.Printf("  Zombie games:   %d\n", report.Summary.ZombieGames)
	fmt.Printf("  Positive EV:    %d\n", report.Summary.PositiveEV)
	fmt.Printf("  Reports written to %s\n", cfg.Report.OutputDir)
}

func loadGames(path string) ([]*domain.GameSnapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var games []*domain.GameSnapshot
	if err := json.Unmarshal(data, &games); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return games, nil
}

func writeReport(dir string, report *reporting.Report) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	md := reporting.RenderMarkdown(report)
	if err := os.WriteFile(filepath.Join(dir, "report.md"), []byte(md), 0o644); err != nil {
		return err
	}

	csv := reporting.RenderCSV(report.Rows)
	return os.WriteFile(filepath.Join(dir, "report.csv"), []byte(csv), 0o644)
}
