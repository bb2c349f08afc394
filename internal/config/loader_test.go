package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/podiumlab/podium/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	Convey("Given the config loader", t, func() {
		ctx := context.Background()

		cleanup := func(keys ...string) {
			for _, k := range keys {
				_ = os.Unsetenv(k)
			}
		}

		Convey("When no file or env overrides exist", func() {
			cfg, err := config.Load(ctx)

			Convey("Then defaults come back", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":9080")
				So(cfg.TargetYear, ShouldEqual, 2016)
			})
		})

		Convey("When env vars override defaults", func() {
			_ = os.Setenv("PODIUM_ADDR", ":8080")
			_ = os.Setenv("PODIUM_TARGET_YEAR", "2012")
			_ = os.Setenv("PODIUM_LEADERBOARD_SIZE", "20")
			defer cleanup("PODIUM_ADDR", "PODIUM_TARGET_YEAR", "PODIUM_LEADERBOARD_SIZE")

			cfg, err := config.Load(ctx)

			Convey("Then the env values win", func() {
				So(err, ShouldBeNil)
				So(cfg.Addr, ShouldEqual, ":8080")
				So(cfg.TargetYear, ShouldEqual, 2012)
				So(cfg.LeaderboardSize, ShouldEqual, 20)
			})
		})

		Convey("When a YAML file is provided", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "podium.yaml")
			body := []byte("target_season: Winter\nage_max: 50\n")
			So(os.WriteFile(path, body, 0o600), ShouldBeNil)

			_ = os.Setenv("PODIUM_CONFIG", path)
			defer cleanup("PODIUM_CONFIG")

			cfg, err := config.Load(ctx)

			Convey("Then file values layer over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.TargetSeason, ShouldEqual, "Winter")
				So(cfg.AgeMax, ShouldEqual, 50)
				So(cfg.AgeMin, ShouldEqual, 10)
			})
		})

		Convey("When the config file is missing", func() {
			_ = os.Setenv("PODIUM_CONFIG", "/nonexistent/podium.yaml")
			defer cleanup("PODIUM_CONFIG")

			_, err := config.Load(ctx)

			Convey("Then loading fails with the load sentinel", func() {
				So(err, ShouldNotBeNil)
				So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
			})
		})

		Convey("When validation fails", func() {
			Convey("And the season is unknown", func() {
				_ = os.Setenv("PODIUM_TARGET_SEASON", "Spring")
				defer cleanup("PODIUM_TARGET_SEASON")

				_, err := config.Load(ctx)
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})

			Convey("And the age range is not ascending", func() {
				_ = os.Setenv("PODIUM_AGE_MIN", "64")
				_ = os.Setenv("PODIUM_AGE_MAX", "10")
				defer cleanup("PODIUM_AGE_MIN", "PODIUM_AGE_MAX")

				_, err := config.Load(ctx)
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})

			Convey("And the leaderboard size is zero", func() {
				_ = os.Setenv("PODIUM_LEADERBOARD_SIZE", "0")
				defer cleanup("PODIUM_LEADERBOARD_SIZE")

				_, err := config.Load(ctx)
				So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
			})
		})
	})
}
