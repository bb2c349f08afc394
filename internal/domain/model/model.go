// Package model contains domain models passed between layers.
package model

import "time"

// Sex is the athlete sex as recorded in the source table.
type Sex string

// Sex values used by the athlete table.
const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// Season identifies the Olympic Games cycle.
type Season string

// Season values used by the athlete table.
const (
	SeasonSummer Season = "Summer"
	SeasonWinter Season = "Winter"
)

// ParseSeason normalizes a raw season cell. Returns false when the value is
// neither Summer nor Winter.
func ParseSeason(raw string) (Season, bool) {
	switch raw {
	case "Summer", "summer", "SUMMER":
		return SeasonSummer, true
	case "Winter", "winter", "WINTER":
		return SeasonWinter, true
	}
	return "", false
}

// Medal is a podium result. The zero value means no medal was won; absence is
// not a fourth medal kind.
type Medal string

// Medal values used by the athlete table.
const (
	MedalNone   Medal = ""
	MedalGold   Medal = "Gold"
	MedalSilver Medal = "Silver"
	MedalBronze Medal = "Bronze"
)

// AthleteEvent is one (athlete, event, year) participation row.
// ID+Event+Year uniquely identifies a row, but the same (ID, Sex) pair
// repeats across years and events, so participant counts must de-duplicate
// by distinct (Year, ID, Sex) first.
type AthleteEvent struct {
	ID     string // athlete identifier, stable across Games
	Name   string
	Sex    Sex
	Age    int     // 0 when missing in the source
	Height float64 // centimeters, 0 when missing
	Weight float64 // kilograms, 0 when missing
	Team   string
	NOC    string // National Olympic Committee code
	Year   int
	Season Season
	City   string
	Sport  string
	Event  string
	Medal  Medal
}

// RecordRow is one record-setting 100m performance. Rows are totally ordered
// by Date; no two rows share a date.
type RecordRow struct {
	Seconds      float64
	Wind         float64 // meters/second tailwind; meaningful only when WindMeasured
	WindMeasured bool
	Athlete      string
	Nationality  string
	Date         time.Time
	DateLabel    string // raw date text as it appeared in the source
}
