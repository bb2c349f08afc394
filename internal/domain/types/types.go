// Package types contains the derived-table row shapes served to renderers.
package types

import "time"

// Participation categories, in display order.
const (
	CategoryMen   = "Men"
	CategoryWomen = "Women"
	CategoryTotal = "Total"
)

// ParticipationPoint is one long-form row of the yearly participation trend:
// distinct athletes per Games year and category.
type ParticipationPoint struct {
	Year     int    `json:"year"`
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// MedalRow is one ranked leaderboard entry. Rank is 1-based and follows the
// descending (Total, Gold, Silver, Bronze) order.
type MedalRow struct {
	Rank      int    `json:"rank"`
	AthleteID string `json:"athlete_id"`
	Name      string `json:"name"`
	NOC       string `json:"noc"`
	Team      string `json:"team"`
	Label     string `json:"label"` // display label, "Name (NOC)" after overrides
	Gold      int    `json:"gold"`
	Silver    int    `json:"silver"`
	Bronze    int    `json:"bronze"`
	Total     int    `json:"total"`
}

// AgeShare is one (sport, age bucket) cell of the age distribution. Every
// sport reports every bucket, including empty ones.
type AgeShare struct {
	Sport        string  `json:"sport"`
	Bucket       string  `json:"bucket"`
	Participants int     `json:"participants"`
	Percentage   float64 `json:"percentage"` // of the sport's total, 0 when the sport total is 0
}

// RecordSpan is the validity interval of one world record. End is nil for the
// still-standing record; consumers evaluate the open end against their own
// clock.
type RecordSpan struct {
	Seconds     float64    `json:"seconds"`
	Wind        *float64   `json:"wind"` // nil when the source carried no wind reading
	Athlete     string     `json:"athlete"`
	Nationality string     `json:"nationality"`
	Start       time.Time  `json:"start"`
	End         *time.Time `json:"end"`
}
