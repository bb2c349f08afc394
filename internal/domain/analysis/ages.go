package analysis

import (
	"context"
	"fmt"
	"sort"

	"github.com/podiumlab/podium/internal/domain/model"
	"github.com/podiumlab/podium/internal/domain/types"
)

// percentScale converts a fraction to a percentage.
const percentScale = 100.0

// AgeDistribution buckets athlete ages for one (year, season) into
// fixed-width intervals and computes each bucket's share of its sport's
// total. The returned rows cover the full sport x bucket cross-product, with
// empty combinations zero-filled, so every sport reports every bucket.
//
// Rows with a missing age, or an age outside [min, max), are dropped; the
// second return value reports how many in-filter rows were lost that way so
// callers can surface the data loss instead of hiding it.
func AgeDistribution(_ context.Context, rows []model.AthleteEvent, opts ...Option) ([]types.AgeShare, int) {
	cfg := newSettings(opts)

	buckets := bucketLabels(cfg.ageMin, cfg.ageMax, cfg.ageWidth)

	perSport := make(map[string][]int) // sport -> counts per bucket index
	sportTotals := make(map[string]int)
	sports := make([]string, 0)
	dropped := 0

	for _, row := range rows {
		if row.Year != cfg.year || row.Season != cfg.season {
			continue
		}
		if row.Age == 0 {
			// Missing age: filtered before bucketing, same as the absent
			// value it stands for.
			continue
		}
		if row.Age < cfg.ageMin || row.Age >= cfg.ageMax {
			dropped++
			continue
		}

		idx := (row.Age - cfg.ageMin) / cfg.ageWidth
		counts, ok := perSport[row.Sport]
		if !ok {
			counts = make([]int, len(buckets))
			perSport[row.Sport] = counts
			sports = append(sports, row.Sport)
		}
		counts[idx]++
		sportTotals[row.Sport]++
	}

	sort.Strings(sports)

	shares := make([]types.AgeShare, 0, len(sports)*len(buckets))
	for _, sport := range sports {
		total := sportTotals[sport]
		for i, label := range buckets {
			participants := perSport[sport][i]
			pct := 0.0
			if total > 0 {
				pct = float64(participants) / float64(total) * percentScale
			}
			shares = append(shares, types.AgeShare{
				Sport:        sport,
				Bucket:       label,
				Participants: participants,
				Percentage:   pct,
			})
		}
	}
	return shares, dropped
}

// bucketLabels produces the "lo-hi" labels for every width-sized interval in
// [min, max). A trailing interval narrower than width is clipped to max.
func bucketLabels(minAge, maxAge, width int) []string {
	labels := make([]string, 0, (maxAge-minAge+width-1)/width)
	for lo := minAge; lo < maxAge; lo += width {
		hi := lo + width
		if hi > maxAge {
			hi = maxAge
		}
		labels = append(labels, fmt.Sprintf("%d-%d", lo, hi-1))
	}
	return labels
}
