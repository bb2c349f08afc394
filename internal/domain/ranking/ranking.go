// Package ranking defines the medal-tally ordering and display labeling used
// by the leaderboard.
package ranking

import (
	"fmt"
	"sort"
)

// Tally is a per-athlete medal count used for ranking.
type Tally struct {
	AthleteID string
	Name      string
	NOC       string
	Team      string
	Gold      int
	Silver    int
	Bronze    int
	Total     int
}

// Less reports whether a ranks strictly above b: descending by Total, then
// Gold, then Silver, then Bronze. Ties beyond all four keys are equal; a
// stable sort keeps their input order.
func Less(a, b Tally) bool {
	if a.Total != b.Total {
		return a.Total > b.Total
	}
	if a.Gold != b.Gold {
		return a.Gold > b.Gold
	}
	if a.Silver != b.Silver {
		return a.Silver > b.Silver
	}
	return a.Bronze > b.Bronze
}

// Sort orders tallies best-first in place. The sort is stable so that
// athletes tied on all four keys retain input order.
func Sort(tallies []Tally) {
	sort.SliceStable(tallies, func(i, j int) bool {
		return Less(tallies[i], tallies[j])
	})
}

// Top returns the first n tallies of an already sorted slice.
func Top(tallies []Tally, n int) []Tally {
	if n > 0 && len(tallies) > n {
		return tallies[:n]
	}
	return tallies
}

// Labeler composes "Name (NOC)" display labels and applies override mappings
// for source names whose own parentheses collide with the NOC suffix.
type Labeler struct {
	overrides map[string]string
}

// NewLabeler creates a Labeler with configuration options.
func NewLabeler(opts ...Option) *Labeler {
	l := &Labeler{
		overrides: make(map[string]string),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Label returns the display label for a name and NOC. If the composed label
// has an override, the override wins.
func (l *Labeler) Label(name, noc string) string {
	label := fmt.Sprintf("%s (%s)", name, noc)
	if fixed, ok := l.overrides[label]; ok {
		return fixed
	}
	return label
}
