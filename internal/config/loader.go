package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/podiumlab/podium/internal/domain/model"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if PODIUM_CONFIG is set
//  3. env (prefix PODIUM_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("PODIUM_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: PODIUM_ADDR, PODIUM_TARGET_YEAR, ...
	// Map env keys like PODIUM_TARGET_YEAR -> target_year (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("PODIUM_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "podium_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the pipelines cannot run with.
func validate(cfg *Config) error {
	switch {
	case cfg.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case cfg.AthletesPath == "":
		return fmt.Errorf("%w: athletes_path must not be empty", ErrInvalidConfig)
	case cfg.RecordsPath == "":
		return fmt.Errorf("%w: records_path must not be empty", ErrInvalidConfig)
	case cfg.RecordDateLayout == "":
		return fmt.Errorf("%w: record_date_layout must not be empty", ErrInvalidConfig)
	case cfg.LeaderboardSize < 1:
		return fmt.Errorf("%w: leaderboard_size must be at least 1", ErrInvalidConfig)
	case cfg.MaxLeaderboardLimit < cfg.LeaderboardSize:
		return fmt.Errorf("%w: max_leaderboard_limit must not be below leaderboard_size", ErrInvalidConfig)
	case cfg.AgeBucketWidth < 1:
		return fmt.Errorf("%w: age_bucket_width must be at least 1", ErrInvalidConfig)
	case cfg.AgeMin < 0 || cfg.AgeMax <= cfg.AgeMin:
		return fmt.Errorf("%w: age range [%d, %d) is not ascending", ErrInvalidConfig, cfg.AgeMin, cfg.AgeMax)
	}

	if _, ok := model.ParseSeason(cfg.TargetSeason); !ok {
		return fmt.Errorf("%w: target_season %q must be Summer or Winter", ErrInvalidConfig, cfg.TargetSeason)
	}
	return nil
}

// Season returns the validated target season.
func (c *Config) Season() model.Season {
	season, _ := model.ParseSeason(c.TargetSeason)
	return season
}
