package sampledata

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/podiumlab/podium/pkg/logger"
)

// Run generates the synthetic tables and, when configured, verifies a
// running service's derived datasets against their invariants.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{StartTime: time.Now()}
	runID := uuid.New().String()

	logger.Get().Info(ctx, "starting sample data run",
		logger.String("runID", runID),
		logger.String("outDir", config.OutDir),
		logger.Int("athletes", config.Athletes),
		logger.Int("fromYear", config.FromYear),
		logger.Int("toYear", config.ToYear),
		logger.Int64("seed", config.Seed),
		logger.Bool("verify", config.Verify))

	// Step 1: Generate both source tables.
	gen := NewGenerator(config.Seed)
	athletes := gen.Athletes(config.Athletes, config.FromYear, config.ToYear)
	records := gen.Records(config.FromYear, config.ToYear)
	stats.AthleteRows = len(athletes)
	stats.RecordRows = len(records)
	log.Printf("🏟️  Generated %d athlete rows and %d record rows", len(athletes), len(records))

	// Step 2: Write them out.
	athletesPath := filepath.Join(config.OutDir, AthletesFile)
	if err := WriteAthletesCSV(athletesPath, athletes); err != nil {
		return fmt.Errorf("write athletes table: %w", err)
	}
	recordsPath := filepath.Join(config.OutDir, RecordsFile)
	if err := WriteRecordsCSV(recordsPath, records); err != nil {
		return fmt.Errorf("write records table: %w", err)
	}
	log.Printf("💾 Tables written to %s and %s", athletesPath, recordsPath)

	// Step 3: Optionally verify a running service.
	if config.Verify {
		if err := verifyService(ctx, config, stats); err != nil {
			return err
		}
	}

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	displayFinalStats(stats)

	logger.Get().Info(ctx, "sample data run completed", logger.String("runID", runID))
	return nil
}

// verifyService refreshes the target service and checks every dataset.
func verifyService(ctx context.Context, config *Config, stats *Stats) error {
	log.Println("🔍 Verifying datasets against a running service...")

	client := NewClient(config.BaseURL, config.Timeout)
	if err := client.Health(ctx); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}
	log.Println("✅ Service is healthy")

	// Pick up the freshly written tables if the service reads from OutDir.
	if err := client.Refresh(ctx); err != nil {
		log.Printf("⚠️  Refresh failed, verifying current snapshot instead: %v", err)
	}

	participation, err := client.Participation(ctx)
	if err != nil {
		return fmt.Errorf("fetch participation: %w", err)
	}
	medals, err := client.Medals(ctx, 10)
	if err != nil {
		return fmt.Errorf("fetch medals: %w", err)
	}
	ages, err := client.Ages(ctx)
	if err != nil {
		return fmt.Errorf("fetch ages: %w", err)
	}
	recordsPayload, err := client.Records(ctx)
	if err != nil {
		return fmt.Errorf("fetch records: %w", err)
	}

	checks := []namedCheck{
		{"participation trend", func() error { return verifyParticipation(participation) }},
		{"medal leaderboard", func() error { return verifyMedals(medals) }},
		{"age distribution", func() error { return verifyAges(ages) }},
		{"record intervals", func() error { return verifyRecords(recordsPayload) }},
	}
	if err := runChecks(checks, stats); err != nil {
		return err
	}

	if config.Verbose {
		log.Printf("🏆 Top of the leaderboard: %s (%d medals)", medals[0].Label, medals[0].Total)
		log.Printf("⏱️  Standing record: %.2fs since %s",
			recordsPayload.Spans[len(recordsPayload.Spans)-1].Seconds,
			recordsPayload.Spans[len(recordsPayload.Spans)-1].Start.Format("2006-01-02"))
	}
	return nil
}

// displayFinalStats prints the final run statistics.
func displayFinalStats(stats *Stats) {
	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("athleteRows", stats.AthleteRows),
		logger.Int("recordRows", stats.RecordRows),
		logger.Int("checksPassed", stats.ChecksPassed),
		logger.Int("checksFailed", stats.ChecksFailed),
		logger.String("duration", stats.Duration.String()))
}
