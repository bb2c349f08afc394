package sampledata

import (
	"fmt"
	"log"
	"math"

	"github.com/podiumlab/podium/internal/domain/types"
)

// percentageTolerance absorbs float rounding when summing shares.
const percentageTolerance = 1e-6

// verifyParticipation checks that every year carries exactly three category
// rows and that totals add up.
func verifyParticipation(points []types.ParticipationPoint) error {
	if len(points) == 0 {
		return fmt.Errorf("empty participation dataset")
	}

	byYear := map[int]map[string]int{}
	for _, p := range points {
		if byYear[p.Year] == nil {
			byYear[p.Year] = map[string]int{}
		}
		byYear[p.Year][p.Category] = p.Count
	}

	for year, cats := range byYear {
		if len(cats) != 3 {
			return fmt.Errorf("year %d has %d category rows, want 3", year, len(cats))
		}
		if cats[types.CategoryMen]+cats[types.CategoryWomen] != cats[types.CategoryTotal] {
			return fmt.Errorf("year %d: men %d + women %d != total %d",
				year, cats[types.CategoryMen], cats[types.CategoryWomen], cats[types.CategoryTotal])
		}
	}
	return nil
}

// verifyMedals checks rank assignment and ordering of the leaderboard.
func verifyMedals(rows []types.MedalRow) error {
	if len(rows) == 0 {
		return fmt.Errorf("empty medal leaderboard")
	}

	for i, row := range rows {
		if row.Rank != i+1 {
			return fmt.Errorf("row %d carries rank %d", i, row.Rank)
		}
		if row.Total != row.Gold+row.Silver+row.Bronze {
			return fmt.Errorf("rank %d: total %d does not match medal counts", row.Rank, row.Total)
		}
		if i == 0 {
			continue
		}
		prev := rows[i-1]
		if row.Total > prev.Total {
			return fmt.Errorf("rank %d has more medals than rank %d", row.Rank, prev.Rank)
		}
		if row.Total == prev.Total && row.Gold > prev.Gold {
			return fmt.Errorf("rank %d breaks the gold tie-break against rank %d", row.Rank, prev.Rank)
		}
	}
	return nil
}

// verifyAges checks that each sport's shares sum to one hundred percent, or
// to zero for sports with no in-range participants.
func verifyAges(shares []types.AgeShare) error {
	if len(shares) == 0 {
		return fmt.Errorf("empty age distribution")
	}

	sums := map[string]float64{}
	counts := map[string]int{}
	for _, s := range shares {
		sums[s.Sport] += s.Percentage
		counts[s.Sport] += s.Participants
	}

	for sport, sum := range sums {
		if counts[sport] == 0 {
			if sum != 0 {
				return fmt.Errorf("sport %q has no participants but nonzero percentages", sport)
			}
			continue
		}
		if math.Abs(sum-100) > percentageTolerance {
			return fmt.Errorf("sport %q percentages sum to %.9f", sport, sum)
		}
	}
	return nil
}

// verifyRecords checks chronological order, interval contiguity and the
// open-ended last span.
func verifyRecords(payload *RecordsPayload) error {
	spans := payload.Spans
	if len(spans) == 0 {
		return fmt.Errorf("empty record dataset")
	}

	for i, span := range spans {
		last := i == len(spans)-1
		if last {
			if span.End != nil {
				return fmt.Errorf("last span carries an end date")
			}
			continue
		}
		if span.End == nil {
			return fmt.Errorf("span %d has no end date but is not last", i)
		}
		next := spans[i+1]
		if !span.End.Equal(next.Start) {
			return fmt.Errorf("span %d ends at %s but span %d starts at %s",
				i, span.End, i+1, next.Start)
		}
		if !span.Start.Before(*span.End) {
			return fmt.Errorf("span %d does not move forward in time", i)
		}
	}

	if payload.AsOf.IsZero() {
		return fmt.Errorf("records payload carries no as_of time")
	}
	return nil
}

// runChecks executes all dataset verifications and logs each outcome.
func runChecks(checks []namedCheck, stats *Stats) error {
	var failed int
	for _, c := range checks {
		if err := c.fn(); err != nil {
			log.Printf("❌ %s: %v", c.name, err)
			stats.ChecksFailed++
			failed++
			continue
		}
		log.Printf("✅ %s verified", c.name)
		stats.ChecksPassed++
	}
	if failed > 0 {
		return fmt.Errorf("%d dataset checks failed", failed)
	}
	return nil
}

type namedCheck struct {
	name string
	fn   func() error
}
