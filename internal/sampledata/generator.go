package sampledata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/podiumlab/podium/internal/domain/model"
)

// Generation shape constants.
const (
	maxEditionsPerAthlete = 3
	maxEventsPerEdition   = 3
	minDebutAge           = 16
	debutAgeRange         = 14
	medalChance           = 0.15
	missingAgeChance      = 0.03
	windMeasuredChance    = 0.8
)

// Record progression constants.
const (
	firstRecordSeconds = 10.6
	floorSeconds       = 9.58
	maxImprovement     = 0.06
	minGapYears        = 1
	maxGapYears        = 6
)

var sports = []string{
	"Athletics", "Swimming", "Gymnastics", "Rowing", "Fencing",
	"Judo", "Cycling", "Shooting", "Wrestling", "Boxing",
}

var nationalities = []struct {
	team string
	noc  string
}{
	{"United States", "USA"}, {"Jamaica", "JAM"}, {"Canada", "CAN"},
	{"France", "FRA"}, {"Germany", "GER"}, {"Japan", "JPN"},
	{"Kenya", "KEN"}, {"Brazil", "BRA"}, {"Italy", "ITA"},
	{"Australia", "AUS"},
}

// Generator produces deterministic synthetic source tables from a seed.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator with its own seeded source.
func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Athletes generates participation rows for n athletes across the Summer
// Games between fromYear and toYear. Each athlete appears in one to three
// editions with one to three events each, so the dedupe and tally paths of
// the pipelines all get exercised.
func (g *Generator) Athletes(n, fromYear, toYear int) []model.AthleteEvent {
	years := summerYears(fromYear, toYear)
	rows := make([]model.AthleteEvent, 0, n*maxEditionsPerAthlete)

	for i := 0; i < n; i++ {
		id := fmt.Sprintf("%d", i+1)
		name := fmt.Sprintf("Athlete %04d", i+1)
		sex := model.SexMale
		if g.rng.Intn(2) == 0 {
			sex = model.SexFemale
		}
		nat := nationalities[g.rng.Intn(len(nationalities))]
		sport := sports[g.rng.Intn(len(sports))]
		debutAge := minDebutAge + g.rng.Intn(debutAgeRange)

		editions := 1 + g.rng.Intn(maxEditionsPerAthlete)
		firstEdition := g.rng.Intn(len(years))
		for e := 0; e < editions && firstEdition+e < len(years); e++ {
			year := years[firstEdition+e]
			age := debutAge + (year - years[firstEdition])
			if g.rng.Float64() < missingAgeChance {
				age = 0
			}

			events := 1 + g.rng.Intn(maxEventsPerEdition)
			for ev := 0; ev < events; ev++ {
				rows = append(rows, model.AthleteEvent{
					ID:     id,
					Name:   name,
					Sex:    sex,
					Age:    age,
					Height: 150 + g.rng.Float64()*50,
					Weight: 45 + g.rng.Float64()*60,
					Team:   nat.team,
					NOC:    nat.noc,
					Year:   year,
					Season: model.SeasonSummer,
					City:   "Host City",
					Sport:  sport,
					Event:  fmt.Sprintf("%s Event %d", sport, ev+1),
					Medal:  g.medal(),
				})
			}
		}
	}
	return rows
}

// Records generates a strictly improving record progression between the
// given years, roughly one improvement every few years.
func (g *Generator) Records(fromYear, toYear int) []model.RecordRow {
	rows := make([]model.RecordRow, 0, 32)
	seconds := firstRecordSeconds
	year := fromYear

	for year <= toYear && seconds > floorSeconds {
		nat := nationalities[g.rng.Intn(len(nationalities))]
		date := time.Date(year, time.Month(1+g.rng.Intn(12)), 1+g.rng.Intn(28), 0, 0, 0, 0, time.UTC)

		rec := model.RecordRow{
			Seconds:     seconds,
			Athlete:     fmt.Sprintf("Runner %02d", len(rows)+1),
			Nationality: nat.team,
			Date:        date,
			DateLabel:   date.Format("1/2/2006"),
		}
		if g.rng.Float64() < windMeasuredChance {
			rec.Wind = -2 + g.rng.Float64()*4
			rec.WindMeasured = true
		}
		rows = append(rows, rec)

		seconds -= 0.01 + g.rng.Float64()*(maxImprovement-0.01)
		year += minGapYears + g.rng.Intn(maxGapYears)
	}
	return rows
}

func (g *Generator) medal() model.Medal {
	if g.rng.Float64() >= medalChance {
		return model.MedalNone
	}
	switch g.rng.Intn(3) {
	case 0:
		return model.MedalGold
	case 1:
		return model.MedalSilver
	default:
		return model.MedalBronze
	}
}

// summerYears lists the Summer Games years in [from, to], on the modern
// four-year cycle.
func summerYears(from, to int) []int {
	var years []int
	for y := from; y <= to; y++ {
		if y%4 == 0 {
			years = append(years, y)
		}
	}
	if len(years) == 0 {
		years = []int{from}
	}
	return years
}
