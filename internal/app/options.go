package service

import (
	"github.com/podiumlab/podium/internal/adapters/repository"
	"github.com/podiumlab/podium/internal/domain/model"
	"github.com/podiumlab/podium/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithLoader sets the source table loader.
func WithLoader(l Loader) Option {
	return func(s *Service) {
		if l != nil {
			s.loader = l
		}
	}
}

// WithStore sets the snapshot store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithTargetYear sets the Games year for the age distribution.
func WithTargetYear(year int) Option {
	return func(s *Service) {
		if year > 0 {
			s.targetYear = year
		}
	}
}

// WithTargetSeason sets the season filter shared by all pipelines.
func WithTargetSeason(season model.Season) Option {
	return func(s *Service) {
		if season != "" {
			s.targetSeason = season
		}
	}
}

// WithLeaderboardMax sets how many leaderboard rows each snapshot holds.
func WithLeaderboardMax(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.leaderboardMax = n
		}
	}
}

// WithAgeBuckets sets the age bucket geometry for the distribution table.
func WithAgeBuckets(minAge, maxAge, width int) Option {
	return func(s *Service) {
		if width > 0 && minAge >= 0 && maxAge > minAge {
			s.ageMin = minAge
			s.ageMax = maxAge
			s.ageWidth = width
		}
	}
}

// WithLabelOverrides sets display-name overrides for leaderboard rows.
func WithLabelOverrides(overrides map[string]string) Option {
	return func(s *Service) {
		s.labelOverrides = overrides
	}
}

// WithNationalityColors sets the color palette for the records view.
func WithNationalityColors(palette map[string]string) Option {
	return func(s *Service) {
		s.palette = palette
	}
}
