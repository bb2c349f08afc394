package analysis

import (
	"context"
	"strconv"

	"github.com/podiumlab/podium/internal/domain/model"
	"github.com/podiumlab/podium/internal/domain/ranking"
	"github.com/podiumlab/podium/internal/domain/types"
)

// MedalLeaderboard tallies medals per athlete for the configured season and
// returns the top-N rows ranked by descending (Total, Gold, Silver, Bronze).
// Rows without a medal are ignored; an athlete with zero of one medal kind
// still reports that kind as 0.
func MedalLeaderboard(_ context.Context, rows []model.AthleteEvent, opts ...Option) []types.MedalRow {
	cfg := newSettings(opts)

	tallies := make(map[string]*ranking.Tally)
	order := make([]string, 0)

	for _, row := range rows {
		if row.Season != cfg.season || row.Medal == model.MedalNone {
			continue
		}

		t, ok := tallies[row.ID]
		if !ok {
			t = &ranking.Tally{
				AthleteID: row.ID,
				Name:      row.Name,
				NOC:       row.NOC,
				Team:      row.Team,
			}
			tallies[row.ID] = t
			order = append(order, row.ID)
		}

		switch row.Medal {
		case model.MedalGold:
			t.Gold++
		case model.MedalSilver:
			t.Silver++
		case model.MedalBronze:
			t.Bronze++
		}
		t.Total++
	}

	// Materialize in first-seen order so the stable sort has a deterministic
	// base ordering for full ties.
	ranked := make([]ranking.Tally, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *tallies[id])
	}
	ranking.Sort(ranked)
	ranked = ranking.Top(ranked, cfg.topN)

	out := make([]types.MedalRow, 0, len(ranked))
	for i, t := range ranked {
		out = append(out, types.MedalRow{
			Rank:      i + 1,
			AthleteID: t.AthleteID,
			Name:      t.Name,
			NOC:       t.NOC,
			Team:      t.Team,
			Label:     cfg.labeler.Label(t.Name, t.NOC),
			Gold:      t.Gold,
			Silver:    t.Silver,
			Bronze:    t.Bronze,
			Total:     t.Total,
		})
	}
	return out
}

// itoa is a tiny alias kept local so pipelines avoid importing fmt for a
// single integer conversion.
func itoa(n int) string {
	return strconv.Itoa(n)
}
