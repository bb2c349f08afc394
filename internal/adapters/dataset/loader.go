// Package dataset loads the two tabular sources into domain rows.
//
// Columns are located by header name, not position, and malformed cells
// degrade to missing values instead of failing the load. Only a missing file
// or a missing required column is fatal.
package dataset

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/podiumlab/podium/internal/domain/model"
	"github.com/podiumlab/podium/pkg/logger"
	"github.com/podiumlab/podium/pkg/metrics"
)

// Source table names used in logs and metrics labels.
const (
	SourceAthletes = "athletes"
	SourceRecords  = "records"
)

// defaultDateLayout parses dates like "10/14/1968".
const defaultDateLayout = "1/2/2006"

// Columns required for each source; a source missing any of these cannot
// feed its pipelines and fails the load outright.
var (
	requiredAthleteColumns = []string{"id", "name", "sex", "year", "season", "sport", "event"}
	requiredRecordColumns  = []string{"time", "athlete", "nationality", "date"}
)

// Loader reads athlete participations and world-record rows from CSV or XLSX
// files, selected by extension.
type Loader struct {
	athletesPath string
	recordsPath  string
	dateLayout   string
	log          logger.Logger
}

// NewLoader creates a Loader with configuration options.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		dateLayout: defaultDateLayout,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

func (l *Loader) logger() logger.Logger {
	if l.log == nil {
		l.log = logger.Named("dataset")
	}
	return l.log
}

// LoadAthletes reads the athlete participation table.
func (l *Loader) LoadAthletes(ctx context.Context) ([]model.AthleteEvent, error) {
	tbl, err := readTable(l.athletesPath)
	if err != nil {
		return nil, fmt.Errorf("athletes table: %w", err)
	}
	cols, err := tbl.columns(requiredAthleteColumns, SourceAthletes)
	if err != nil {
		return nil, err
	}

	out := make([]model.AthleteEvent, 0, len(tbl.rows))
	for _, row := range tbl.rows {
		ev, reason := parseAthleteRow(row, cols)
		if reason != "" {
			metrics.RecordRowDropped(SourceAthletes, reason)
			continue
		}
		out = append(out, ev)
	}

	metrics.RecordRowsLoaded(SourceAthletes, len(out))
	l.logger().Info(ctx, "athlete table loaded",
		logger.String("path", l.athletesPath),
		logger.Int("rows", len(out)),
		logger.Int("dropped", len(tbl.rows)-len(out)),
	)
	return out, nil
}

// LoadRecords reads the world-record progression table.
func (l *Loader) LoadRecords(ctx context.Context) ([]model.RecordRow, error) {
	tbl, err := readTable(l.recordsPath)
	if err != nil {
		return nil, fmt.Errorf("records table: %w", err)
	}
	cols, err := tbl.columns(requiredRecordColumns, SourceRecords)
	if err != nil {
		return nil, err
	}

	out := make([]model.RecordRow, 0, len(tbl.rows))
	for _, row := range tbl.rows {
		rec, reason := parseRecordRow(row, cols, l.dateLayout)
		if reason != "" {
			metrics.RecordRowDropped(SourceRecords, reason)
			continue
		}
		out = append(out, rec)
	}

	metrics.RecordRowsLoaded(SourceRecords, len(out))
	l.logger().Info(ctx, "record table loaded",
		logger.String("path", l.recordsPath),
		logger.Int("rows", len(out)),
		logger.Int("dropped", len(tbl.rows)-len(out)),
	)
	return out, nil
}

// parseAthleteRow converts one source row. A non-empty reason means the row
// is unusable and must be dropped.
func parseAthleteRow(row []string, cols map[string]int) (model.AthleteEvent, string) {
	cell := cellReader(row, cols)

	id := cell("id")
	if id == "" {
		return model.AthleteEvent{}, "missing_id"
	}
	year, err := strconv.Atoi(cell("year"))
	if err != nil {
		return model.AthleteEvent{}, "bad_year"
	}
	season, ok := model.ParseSeason(cell("season"))
	if !ok {
		return model.AthleteEvent{}, "bad_season"
	}
	sex := model.Sex(cell("sex"))
	if sex != model.SexMale && sex != model.SexFemale {
		return model.AthleteEvent{}, "bad_sex"
	}

	return model.AthleteEvent{
		ID:     id,
		Name:   cell("name"),
		Sex:    sex,
		Age:    intCell(cell("age")),
		Height: floatCell(cell("height")),
		Weight: floatCell(cell("weight")),
		Team:   cell("team"),
		NOC:    cell("noc"),
		Year:   year,
		Season: season,
		City:   cell("city"),
		Sport:  cell("sport"),
		Event:  cell("event"),
		Medal:  medalCell(cell("medal")),
	}, ""
}

// parseRecordRow converts one record-progression row.
func parseRecordRow(row []string, cols map[string]int, layout string) (model.RecordRow, string) {
	cell := cellReader(row, cols)

	seconds, err := strconv.ParseFloat(cell("time"), 64)
	if err != nil {
		return model.RecordRow{}, "bad_time"
	}
	rawDate := cell("date")
	date, err := parseDate(layout, rawDate)
	if err != nil {
		return model.RecordRow{}, "bad_date"
	}

	rec := model.RecordRow{
		Seconds:     seconds,
		Athlete:     cell("athlete"),
		Nationality: cell("nationality"),
		Date:        date,
		DateLabel:   rawDate,
	}
	if wind := cell("wind"); !missingCell(wind) {
		if v, err := strconv.ParseFloat(wind, 64); err == nil {
			rec.Wind = v
			rec.WindMeasured = true
		}
	}
	return rec, ""
}

// cellReader returns a trimmed accessor over a row using the column map.
// Cells beyond the row's length read as empty, matching ragged CSV rows.
func cellReader(row []string, cols map[string]int) func(string) string {
	return func(name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}
}

// missingCell reports whether a cell carries the source's missing marker.
func missingCell(s string) bool {
	return s == "" || s == "NA" || s == "na" || s == "N/A"
}

// intCell coerces an optional integer cell; missing or malformed reads as 0.
func intCell(s string) int {
	if missingCell(s) {
		return 0
	}
	// Ages sometimes arrive as "23.0" from spreadsheet exports.
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return int(v)
	}
	return 0
}

// floatCell coerces an optional numeric cell; missing or malformed reads as 0.
func floatCell(s string) float64 {
	if missingCell(s) {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// medalCell coerces the medal column; anything but the three medal kinds
// reads as no medal.
func medalCell(s string) model.Medal {
	switch model.Medal(s) {
	case model.MedalGold, model.MedalSilver, model.MedalBronze:
		return model.Medal(s)
	}
	return model.MedalNone
}
