// Package analysis implements the four aggregation pipelines that turn the
// loaded source tables into renderer-ready derived tables.
package analysis

import (
	"github.com/podiumlab/podium/internal/domain/model"
	"github.com/podiumlab/podium/internal/domain/ranking"
)

// Default pipeline parameters. Each pipeline takes these as explicit options
// rather than hardcoding a season or year.
const (
	defaultAgeMin      = 10
	defaultAgeMax      = 64
	defaultAgeWidth    = 4
	defaultLeaderboard = 10
)

// settings collects pipeline parameters shared across the aggregators.
type settings struct {
	season   model.Season
	year     int
	ageMin   int
	ageMax   int
	ageWidth int
	topN     int
	labeler  *ranking.Labeler
}

func newSettings(opts []Option) settings {
	s := settings{
		season:   model.SeasonSummer,
		ageMin:   defaultAgeMin,
		ageMax:   defaultAgeMax,
		ageWidth: defaultAgeWidth,
		topN:     defaultLeaderboard,
		labeler:  ranking.NewLabeler(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Option applies a configuration option to an aggregation pipeline.
type Option func(*settings)

// WithSeason sets the Games season filter.
func WithSeason(season model.Season) Option {
	return func(s *settings) {
		if season != "" {
			s.season = season
		}
	}
}

// WithYear sets the target Games year for the age distribution.
func WithYear(year int) Option {
	return func(s *settings) {
		if year > 0 {
			s.year = year
		}
	}
}

// WithAgeRange sets the bucket geometry: ages in [min, max) are grouped into
// width-sized buckets; ages outside the range are dropped.
func WithAgeRange(minAge, maxAge, width int) Option {
	return func(s *settings) {
		if width > 0 && minAge >= 0 && maxAge > minAge {
			s.ageMin = minAge
			s.ageMax = maxAge
			s.ageWidth = width
		}
	}
}

// WithTopN caps the leaderboard length.
func WithTopN(n int) Option {
	return func(s *settings) {
		if n > 0 {
			s.topN = n
		}
	}
}

// WithLabeler sets the display labeler for leaderboard rows.
func WithLabeler(l *ranking.Labeler) Option {
	return func(s *settings) {
		if l != nil {
			s.labeler = l
		}
	}
}
