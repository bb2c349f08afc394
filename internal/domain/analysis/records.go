package analysis

import (
	"context"
	"sort"

	"github.com/podiumlab/podium/internal/domain/model"
	"github.com/podiumlab/podium/internal/domain/types"
)

// RecordIntervals derives the validity span of each world record: a record
// stands from its own date until the date of the next record in chronological
// order. The most recent record has a nil end, meaning it still stands;
// consumers evaluate the open end at render time.
//
// Input order does not matter. The sort is stable, so rows sharing a date (a
// condition the source rules out but the builder tolerates) keep input order.
func RecordIntervals(_ context.Context, rows []model.RecordRow) []types.RecordSpan {
	sorted := make([]model.RecordRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	spans := make([]types.RecordSpan, 0, len(sorted))
	for i, row := range sorted {
		span := types.RecordSpan{
			Seconds:     row.Seconds,
			Athlete:     row.Athlete,
			Nationality: row.Nationality,
			Start:       row.Date,
		}
		if row.WindMeasured {
			wind := row.Wind
			span.Wind = &wind
		}
		if i+1 < len(sorted) {
			end := sorted[i+1].Date
			span.End = &end
		}
		spans = append(spans, span)
	}
	return spans
}
