// Package config defines service configuration structures and loading hooks.
//
// Conventions:
//   - Provide New() initializer to build a Config with defaults.
//   - External errors must be wrapped via this package's error helpers.
//   - Analysis parameters (season, year, bucket geometry, overrides, palette)
//     are configuration data, never module-level constants.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// AthletesPath points at the athlete participation table (.csv or .xlsx).
	AthletesPath string `koanf:"athletes_path"`

	// RecordsPath points at the 100m world-record table (.csv or .xlsx).
	RecordsPath string `koanf:"records_path"`

	// RecordDateLayout is the Go time layout of the record table's date column.
	RecordDateLayout string `koanf:"record_date_layout"`

	// TargetYear and TargetSeason select the Games edition for the age
	// distribution; the season also filters the other aggregations.
	TargetYear   int    `koanf:"target_year"`
	TargetSeason string `koanf:"target_season"`

	// LeaderboardSize is the number of leaderboard rows served by default.
	LeaderboardSize int `koanf:"leaderboard_size"`

	// MaxLeaderboardLimit caps GET /datasets/medals?limit.
	MaxLeaderboardLimit int `koanf:"max_leaderboard_limit"`

	// AgeMin, AgeMax and AgeBucketWidth describe the age bucket geometry:
	// ages in [AgeMin, AgeMax) are grouped into AgeBucketWidth-year buckets.
	AgeMin         int `koanf:"age_min"`
	AgeMax         int `koanf:"age_max"`
	AgeBucketWidth int `koanf:"age_bucket_width"`

	// LabelOverrides maps a composed "Name (NOC)" leaderboard label to the
	// display label that replaces it. Source names whose own parentheses
	// collide with the NOC suffix go here instead of into code.
	LabelOverrides map[string]string `koanf:"label_overrides"`

	// NationalityColors is the render palette keyed by nationality. Served
	// with the records dataset as configuration data; nationalities missing
	// from the map are simply unstyled.
	NationalityColors map[string]string `koanf:"nationality_colors"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:            "info",
		Addr:                ":9080",
		AthletesPath:        "data/athlete_events.csv",
		RecordsPath:         "data/100m_records.csv",
		RecordDateLayout:    "1/2/2006",
		TargetYear:          2016,
		TargetSeason:        "Summer",
		LeaderboardSize:     10,
		MaxLeaderboardLimit: 100,
		AgeMin:              10,
		AgeMax:              64,
		AgeBucketWidth:      4,
		LabelOverrides: map[string]string{
			"Michael Fred Phelps, II (USA)":             "Michael Phelps (USA)",
			"Larisa Semyonovna Latynina (Diriy-) (URS)": "Larisa Latynina (URS)",
		},
		NationalityColors: map[string]string{
			"United States": "#3c3b6e",
			"Jamaica":       "#009b3a",
			"Canada":        "#d80621",
		},
	}
}
