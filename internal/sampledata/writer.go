package sampledata

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/podiumlab/podium/internal/domain/model"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// Default output file names, matching what the service expects to load.
const (
	AthletesFile = "athlete_events.csv"
	RecordsFile  = "100m_records.csv"
)

// WriteAthletesCSV writes participation rows in the source table layout.
func WriteAthletesCSV(path string, rows []model.AthleteEvent) error {
	w, closeFn, err := newCSVWriter(path)
	if err != nil {
		return err
	}
	defer closeFn()

	header := []string{"ID", "Name", "Sex", "Age", "Height", "Weight", "Team", "NOC", "Year", "Season", "City", "Sport", "Event", "Medal"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range rows {
		age := "NA"
		if r.Age > 0 {
			age = strconv.Itoa(r.Age)
		}
		medal := "NA"
		if r.Medal != model.MedalNone {
			medal = string(r.Medal)
		}
		record := []string{
			r.ID, r.Name, string(r.Sex), age,
			strconv.FormatFloat(r.Height, 'f', 0, 64),
			strconv.FormatFloat(r.Weight, 'f', 0, 64),
			r.Team, r.NOC, strconv.Itoa(r.Year), string(r.Season),
			r.City, r.Sport, r.Event, medal,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// WriteRecordsCSV writes record progression rows in the source table layout.
func WriteRecordsCSV(path string, rows []model.RecordRow) error {
	w, closeFn, err := newCSVWriter(path)
	if err != nil {
		return err
	}
	defer closeFn()

	header := []string{"Time", "Wind", "Athlete", "Nationality", "Date"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range rows {
		wind := "NA"
		if r.WindMeasured {
			wind = strconv.FormatFloat(r.Wind, 'f', 1, 64)
		}
		record := []string{
			strconv.FormatFloat(r.Seconds, 'f', 2, 64),
			wind, r.Athlete, r.Nationality, r.DateLabel,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

func newCSVWriter(path string) (*csv.Writer, func(), error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return nil, nil, fmt.Errorf("create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create file: %w", err)
	}
	return csv.NewWriter(f), func() { _ = f.Close() }, nil
}
