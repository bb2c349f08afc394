// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/podiumlab/podium/internal/adapters/dataset"
	"github.com/podiumlab/podium/internal/adapters/repository"
	"github.com/podiumlab/podium/internal/domain/analysis"
	"github.com/podiumlab/podium/internal/domain/model"
	"github.com/podiumlab/podium/internal/domain/ranking"
	"github.com/podiumlab/podium/internal/domain/types"
	"github.com/podiumlab/podium/pkg/logger"
	"github.com/podiumlab/podium/pkg/metrics"
)

// Loader reads the two source tables. Satisfied by dataset.Loader.
type Loader interface {
	LoadAthletes(ctx context.Context) ([]model.AthleteEvent, error)
	LoadRecords(ctx context.Context) ([]model.RecordRow, error)
}

var _ Loader = (*dataset.Loader)(nil)

// Service loads the sources, builds the derived tables and serves them to
// the HTTP layer from an in-memory snapshot.
type Service struct {
	mu sync.RWMutex

	// Core components
	loader Loader
	store  repository.Store

	// Source rows kept for per-request recomputation (age distribution
	// with a year/season override).
	athletes []model.AthleteEvent
	records  []model.RecordRow

	// Configuration
	targetYear     int
	targetSeason   model.Season
	leaderboardMax int
	ageMin         int
	ageMax         int
	ageWidth       int
	labelOverrides map[string]string
	palette        map[string]string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		targetYear:     2016,
		targetSeason:   model.SeasonSummer,
		leaderboardMax: 100,
		ageMin:         10,
		ageMax:         64,
		ageWidth:       4,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads both sources and builds the first snapshot. A failure to read
// either source is fatal; the service does not start degraded.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.loader == nil {
		s.loader = dataset.NewLoader()
	}
	if s.store == nil {
		s.store = repository.NewMemStore()
	}

	s.logger.Info(ctx, "starting dataset service...")

	if err := s.reload(ctx); err != nil {
		return fmt.Errorf("initial load: %w", err)
	}

	s.started = true
	s.logger.Info(ctx, "dataset service started",
		logger.Int("athleteRows", len(s.athletes)),
		logger.Int("recordRows", len(s.records)),
		logger.Int("targetYear", s.targetYear),
		logger.String("targetSeason", string(s.targetSeason)),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "dataset service stopped")
}

// Refresh re-reads both sources and swaps in a fresh snapshot. Readers keep
// the previous snapshot until the new one is complete.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.reload(ctx); err != nil {
		metrics.RecordRefreshFailure()
		s.logger.Error(ctx, "refresh failed", logger.Error(err))
		return err
	}

	s.logger.Info(ctx, "snapshot refreshed",
		logger.Int("athleteRows", len(s.athletes)),
		logger.Int("recordRows", len(s.records)),
	)
	return nil
}

// reload loads both sources and replaces the snapshot. Callers hold s.mu.
func (s *Service) reload(ctx context.Context) error {
	athletes, err := s.loader.LoadAthletes(ctx)
	if err != nil {
		return err
	}
	records, err := s.loader.LoadRecords(ctx)
	if err != nil {
		return err
	}

	snap := s.buildSnapshot(ctx, athletes, records)
	if err := s.store.Replace(ctx, snap); err != nil {
		return err
	}

	s.athletes = athletes
	s.records = records
	metrics.UpdateAthleteRows(len(athletes))
	metrics.UpdateRecordRows(len(records))
	return nil
}

// buildSnapshot runs all four pipelines over freshly loaded rows. The
// leaderboard is materialized to the configured maximum so reads can slice
// any smaller limit without recomputing.
func (s *Service) buildSnapshot(ctx context.Context, athletes []model.AthleteEvent, records []model.RecordRow) *repository.Snapshot {
	start := time.Now()

	labeler := ranking.NewLabeler(ranking.WithOverrides(s.labelOverrides))

	participation := analysis.ParticipationTrend(ctx, athletes,
		analysis.WithSeason(s.targetSeason),
	)
	medals := analysis.MedalLeaderboard(ctx, athletes,
		analysis.WithSeason(s.targetSeason),
		analysis.WithTopN(s.leaderboardMax),
		analysis.WithLabeler(labeler),
	)
	ages, dropped := analysis.AgeDistribution(ctx, athletes,
		analysis.WithYear(s.targetYear),
		analysis.WithSeason(s.targetSeason),
		analysis.WithAgeRange(s.ageMin, s.ageMax, s.ageWidth),
	)
	metrics.RecordAgesOutOfRange(dropped)

	spans := analysis.RecordIntervals(ctx, records)

	metrics.RecordDatasetBuild(float64(time.Since(start).Milliseconds()))

	return &repository.Snapshot{
		Participation: participation,
		Medals:        medals,
		Ages:          ages,
		Records:       spans,
	}
}

// Participation returns the yearly participation trend rows.
func (s *Service) Participation(ctx context.Context) ([]types.ParticipationPoint, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return snap.Participation, nil
}

// Medals returns the top-limit leaderboard rows from the materialized
// leaderboard.
func (s *Service) Medals(ctx context.Context, limit int) ([]types.MedalRow, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if limit > len(snap.Medals) {
		limit = len(snap.Medals)
	}
	return snap.Medals[:limit], nil
}

// AgeDistribution returns the sport-by-age-bucket shares. With no override
// it serves the snapshot table; an explicit year or season recomputes over
// the cached source rows.
func (s *Service) AgeDistribution(ctx context.Context, year int, season model.Season) ([]types.AgeShare, error) {
	if year == 0 && season == "" {
		snap, err := s.store.Snapshot(ctx)
		if err != nil {
			return nil, err
		}
		return snap.Ages, nil
	}

	s.mu.RLock()
	athletes := s.athletes
	targetYear := s.targetYear
	targetSeason := s.targetSeason
	s.mu.RUnlock()

	if athletes == nil {
		return nil, repository.ErrEmptySnapshot
	}
	if year == 0 {
		year = targetYear
	}
	if season == "" {
		season = targetSeason
	}

	shares, dropped := analysis.AgeDistribution(ctx, athletes,
		analysis.WithYear(year),
		analysis.WithSeason(season),
		analysis.WithAgeRange(s.ageMin, s.ageMax, s.ageWidth),
	)
	metrics.RecordAgesOutOfRange(dropped)
	return shares, nil
}

// RecordIntervals returns the record validity spans together with the
// current time, which closes the still-standing record for the reader. The
// reference time is evaluated per read, never stored.
func (s *Service) RecordIntervals(ctx context.Context) ([]types.RecordSpan, time.Time, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}
	return snap.Records, time.Now().UTC(), nil
}

// Palette returns a copy of the nationality color palette.
func (s *Service) Palette() map[string]string {
	out := make(map[string]string, len(s.palette))
	for k, v := range s.palette {
		out[k] = v
	}
	return out
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":       s.started,
		"target_year":   s.targetYear,
		"target_season": string(s.targetSeason),
	}

	if s.started {
		stats["athlete_rows"] = len(s.athletes)
		stats["record_rows"] = len(s.records)

		if snap, err := s.store.Snapshot(context.Background()); err == nil {
			stats["built_at"] = snap.BuiltAt
			stats["participation_rows"] = len(snap.Participation)
			stats["medal_rows"] = len(snap.Medals)
			stats["age_rows"] = len(snap.Ages)
			stats["record_spans"] = len(snap.Records)
		}
	}

	return stats
}
