package dataset

import "github.com/podiumlab/podium/pkg/logger"

// Option configures a Loader.
type Option func(*Loader)

// WithAthletesPath sets the athlete participation table path.
func WithAthletesPath(path string) Option {
	return func(l *Loader) {
		l.athletesPath = path
	}
}

// WithRecordsPath sets the world-record progression table path.
func WithRecordsPath(path string) Option {
	return func(l *Loader) {
		l.recordsPath = path
	}
}

// WithRecordDateLayout sets the layout used to parse record dates.
func WithRecordDateLayout(layout string) Option {
	return func(l *Loader) {
		if layout != "" {
			l.dateLayout = layout
		}
	}
}

// WithLogger sets the logger used by the loader.
func WithLogger(log logger.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}
