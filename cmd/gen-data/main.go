package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/podiumlab/podium/internal/sampledata"
)

// Default configuration constants.
const (
	defaultAthletes   = 2000
	defaultFromYear   = 1896
	defaultToYear     = 2016
	defaultSeed       = 1
	defaultTimeout    = 30 * time.Second
	defaultRunTimeout = 10 * time.Minute
)

func main() {
	var (
		outDir   = flag.String("out", "data", "Output directory for generated CSV files")
		athletes = flag.Int("athletes", defaultAthletes, "Number of distinct athletes to generate")
		fromYear = flag.Int("from", defaultFromYear, "First Games year, inclusive")
		toYear   = flag.Int("to", defaultToYear, "Last Games year, inclusive")
		seed     = flag.Int64("seed", defaultSeed, "RNG seed; the same seed reproduces the same tables")
		baseURL  = flag.String("url", "http://localhost:9080", "Base URL of the service to verify")
		verify   = flag.Bool("verify", false, "Refresh the service and verify its datasets")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		logFile  = flag.String("log", "", "Log file for tool output (default: sampledata_TIMESTAMP.log)")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		sampledata.ShowHelp()
		return
	}

	if err := sampledata.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	config := &sampledata.Config{
		BaseURL:  *baseURL,
		OutDir:   *outDir,
		Athletes: *athletes,
		FromYear: *fromYear,
		ToYear:   *toYear,
		Seed:     *seed,
		Timeout:  *timeout,
		LogFile:  *logFile,
		Verify:   *verify,
		Verbose:  *verbose,
	}

	if err := sampledata.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Run failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
