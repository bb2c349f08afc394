package analysis

import (
	"context"
	"sort"

	"github.com/podiumlab/podium/internal/domain/dedupe"
	"github.com/podiumlab/podium/internal/domain/model"
	"github.com/podiumlab/podium/internal/domain/types"
)

// ParticipationTrend counts distinct athletes per Games year and sex for the
// configured season, then reshapes to long form with one row per
// (year, category) and category in {Men, Women, Total}.
//
// An athlete entered in several events of the same year contributes exactly
// once to that year's count; de-duplication runs on (year, id, sex) keys.
// Every year present in the filtered input yields all three categories, with
// Total = Men + Women.
func ParticipationTrend(ctx context.Context, rows []model.AthleteEvent, opts ...Option) []types.ParticipationPoint {
	cfg := newSettings(opts)

	type sexCounts struct {
		men   int
		women int
	}

	tracker := dedupe.NewSetTracker(dedupe.WithInitialCapacity(len(rows)))
	counts := make(map[int]*sexCounts)

	for _, row := range rows {
		if row.Season != cfg.season {
			continue
		}
		key := dedupe.Key(itoa(row.Year), row.ID, string(row.Sex))
		if tracker.SeenAndRecord(ctx, key) {
			continue
		}

		c, ok := counts[row.Year]
		if !ok {
			c = &sexCounts{}
			counts[row.Year] = c
		}
		switch row.Sex {
		case model.SexMale:
			c.men++
		case model.SexFemale:
			c.women++
		}
	}

	years := make([]int, 0, len(counts))
	for year := range counts {
		years = append(years, year)
	}
	sort.Ints(years)

	points := make([]types.ParticipationPoint, 0, len(years)*3)
	for _, year := range years {
		c := counts[year]
		points = append(points,
			types.ParticipationPoint{Year: year, Category: types.CategoryMen, Count: c.men},
			types.ParticipationPoint{Year: year, Category: types.CategoryWomen, Count: c.women},
			types.ParticipationPoint{Year: year, Category: types.CategoryTotal, Count: c.men + c.women},
		)
	}
	return points
}
