package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// table is a header row plus data rows, regardless of the file format it
// came from.
type table struct {
	header []string
	rows   [][]string
}

// readTable opens a tabular file and dispatches on its extension.
func readTable(path string) (*table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return readCSV(path)
	case ".xlsx", ".xlsm":
		return readWorkbook(path)
	default:
		return nil, fmt.Errorf("%w: unsupported extension on %q", ErrOpenSource, path)
	}
}

func readCSV(path string) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenSource, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Exports often carry ragged rows; length is validated per cell instead.
	r.FieldsPerRecord = -1
	all, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenSource, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: %q has no header row", ErrOpenSource, path)
	}
	return &table{header: all[0], rows: all[1:]}, nil
}

func readWorkbook(path string) (*table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenSource, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: %q has no sheets", ErrOpenSource, path)
	}
	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenSource, err)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w: sheet %q is empty", ErrOpenSource, sheets[0])
	}
	return &table{header: all[0], rows: all[1:]}, nil
}

// columns maps lower-cased header names to indices and verifies that every
// required column is present.
func (t *table) columns(required []string, source string) (map[string]int, error) {
	idx := make(map[string]int, len(t.header))
	for i, name := range t.header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: %s table lacks %q", ErrMissingColumn, source, name)
		}
	}
	return idx, nil
}

// parseDate parses with the configured layout, falling back to a couple of
// layouts seen in the wild so mixed exports still load.
func parseDate(layout, raw string) (time.Time, error) {
	if t, err := time.Parse(layout, raw); err == nil {
		return t, nil
	}
	for _, alt := range []string{"2006-01-02", "1/2/2006", "01/02/2006"} {
		if alt == layout {
			continue
		}
		if t, err := time.Parse(alt, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}
