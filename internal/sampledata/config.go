// Package sampledata generates synthetic source tables and verifies a
// running service against the invariants of its derived datasets.
package sampledata

import "time"

// Config holds configuration for the sample data tool.
type Config struct {
	BaseURL  string        // Base URL of the service to verify
	OutDir   string        // Directory for generated CSV files
	Athletes int           // Number of distinct athletes to generate
	FromYear int           // First Games year (inclusive)
	ToYear   int           // Last Games year (inclusive)
	Seed     int64         // RNG seed; same seed, same tables
	Timeout  time.Duration // HTTP request timeout
	LogFile  string        // Log file for tool output
	Verify   bool          // Fetch datasets and verify invariants
	Verbose  bool          // Enable verbose logging
}

// Stats holds run statistics.
type Stats struct {
	AthleteRows  int
	RecordRows   int
	ChecksPassed int
	ChecksFailed int
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
}
