package sampledata

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/podiumlab/podium/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "sampledata_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the sample data tool.
func ShowHelp() {
	os.Stdout.WriteString(`Podium Sample Data Tool
=======================

Generates synthetic source tables and verifies a running Podium service
against the invariants of its derived datasets.

Usage:
  go run cmd/gen-data/main.go [options]

Options:
  -out string
        Output directory for generated CSV files (default "data")
  -athletes int
        Number of distinct athletes to generate (default 2000)
  -from int
        First Games year, inclusive (default 1896)
  -to int
        Last Games year, inclusive (default 2016)
  -seed int
        RNG seed; the same seed reproduces the same tables (default 1)
  -url string
        Base URL of the service to verify (default "http://localhost:9080")
  -verify
        Refresh the service and verify its datasets
  -timeout duration
        HTTP request timeout (default 30s)
  -log string
        Log file for tool output (default: sampledata_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Generate tables into ./data
  go run cmd/gen-data/main.go

  # Generate a small deterministic corpus
  go run cmd/gen-data/main.go -athletes 200 -seed 42

  # Generate, reload a running service and verify every dataset
  go run cmd/gen-data/main.go -verify -url http://localhost:9080
`)
}
