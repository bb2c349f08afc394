package service

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/podiumlab/podium/internal/adapters/repository"
	"github.com/podiumlab/podium/internal/domain/model"
	"github.com/podiumlab/podium/internal/domain/types"
	"github.com/podiumlab/podium/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// fakeLoader serves canned rows and can be told to fail.
type fakeLoader struct {
	athletes []model.AthleteEvent
	records  []model.RecordRow
	fail     bool
	loads    int
}

func (f *fakeLoader) LoadAthletes(context.Context) ([]model.AthleteEvent, error) {
	if f.fail {
		return nil, errors.New("cannot read source table")
	}
	f.loads++
	return f.athletes, nil
}

func (f *fakeLoader) LoadRecords(context.Context) ([]model.RecordRow, error) {
	if f.fail {
		return nil, errors.New("cannot read source table")
	}
	return f.records, nil
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func testAthletes() []model.AthleteEvent {
	return []model.AthleteEvent{
		{ID: "1", Name: "Alice", Sex: model.SexFemale, Age: 23, Year: 2016,
			Season: model.SeasonSummer, Sport: "Swimming", Event: "100m Free", Medal: model.MedalGold},
		{ID: "1", Name: "Alice", Sex: model.SexFemale, Age: 23, Year: 2016,
			Season: model.SeasonSummer, Sport: "Swimming", Event: "200m Free", Medal: model.MedalGold},
		{ID: "2", Name: "Bob", Sex: model.SexMale, Age: 30, Year: 2016,
			Season: model.SeasonSummer, Sport: "Athletics", Event: "100m", Medal: model.MedalSilver},
		{ID: "3", Name: "Carol", Sex: model.SexFemale, Age: 19, Year: 2012,
			Season: model.SeasonSummer, Sport: "Rowing", Event: "Eights"},
	}
}

func testRecords() []model.RecordRow {
	return []model.RecordRow{
		{Seconds: 9.95, Athlete: "Jim Hines", Nationality: "United States", Date: date(1968, 10, 14)},
		{Seconds: 9.93, Athlete: "Calvin Smith", Nationality: "United States", Date: date(1983, 7, 3)},
	}
}

func newStartedService(t *testing.T, loader Loader) *Service {
	t.Helper()
	svc := New(
		WithLoader(loader),
		WithStore(repository.NewMemStore()),
		WithTargetYear(2016),
		WithTargetSeason(model.SeasonSummer),
		WithNationalityColors(map[string]string{"United States": "#3c3b6e"}),
	)
	if err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}
	t.Cleanup(svc.Stop)
	return svc
}

func TestServiceLifecycle(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service whose sources load cleanly", t, func() {
		loader := &fakeLoader{athletes: testAthletes(), records: testRecords()}
		svc := newStartedService(t, loader)

		Convey("When the derived tables are read", func() {
			participation, err := svc.Participation(ctx)

			Convey("Then the participation trend is served from the snapshot", func() {
				So(err, ShouldBeNil)
				// Two years, three categories each.
				So(participation, ShouldHaveLength, 6)
			})

			Convey("Then the leaderboard is served with the requested limit", func() {
				medals, err := svc.Medals(ctx, 1)
				So(err, ShouldBeNil)
				So(medals, ShouldHaveLength, 1)
				So(medals[0].Name, ShouldEqual, "Alice")
				So(medals[0].Gold, ShouldEqual, 2)
			})

			Convey("Then a limit beyond the table length is clipped", func() {
				medals, err := svc.Medals(ctx, 50)
				So(err, ShouldBeNil)
				So(medals, ShouldHaveLength, 2)
			})

			Convey("Then record spans carry a reference time", func() {
				spans, asOf, err := svc.RecordIntervals(ctx)
				So(err, ShouldBeNil)
				So(spans, ShouldHaveLength, 2)
				So(asOf.IsZero(), ShouldBeFalse)
				So(spans[1].End, ShouldBeNil)
			})

			Convey("Then the palette is a defensive copy", func() {
				p := svc.Palette()
				p["United States"] = "mutated"
				So(svc.Palette()["United States"], ShouldEqual, "#3c3b6e")
			})
		})

		Convey("When stats are requested", func() {
			stats := svc.GetStats()

			Convey("Then row counts and build info are reported", func() {
				So(stats["started"], ShouldBeTrue)
				So(stats["athlete_rows"], ShouldEqual, 4)
				So(stats["record_spans"], ShouldEqual, 2)
			})
		})

		Convey("When Start is called again", func() {
			err := svc.Start(ctx)

			Convey("Then it is a no-op", func() {
				So(err, ShouldBeNil)
				So(loader.loads, ShouldEqual, 1)
			})
		})
	})

	Convey("Given a service whose sources are unreadable", t, func() {
		svc := New(
			WithLoader(&fakeLoader{fail: true}),
			WithStore(repository.NewMemStore()),
		)

		Convey("When the service starts", func() {
			err := svc.Start(ctx)

			Convey("Then startup fails instead of serving empty tables", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}

func TestServiceAgeDistribution(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started service targeting 2016 Summer", t, func() {
		loader := &fakeLoader{athletes: testAthletes(), records: testRecords()}
		svc := newStartedService(t, loader)

		Convey("When the distribution is read without overrides", func() {
			shares, err := svc.AgeDistribution(ctx, 0, "")

			Convey("Then the snapshot table is served", func() {
				So(err, ShouldBeNil)
				// Two sports in 2016 Summer, 14 default buckets each.
				So(shares, ShouldHaveLength, 28)
			})
		})

		Convey("When a different year is requested", func() {
			shares, err := svc.AgeDistribution(ctx, 2012, "")

			Convey("Then the table is recomputed for that edition", func() {
				So(err, ShouldBeNil)
				sports := map[string]bool{}
				for _, sh := range shares {
					sports[sh.Sport] = true
				}
				So(sports, ShouldResemble, map[string]bool{"Rowing": true})
			})
		})
	})
}

func TestServiceRefresh(t *testing.T) {
	ctx := context.Background()

	Convey("Given a started service", t, func() {
		loader := &fakeLoader{athletes: testAthletes(), records: testRecords()}
		svc := newStartedService(t, loader)

		Convey("When the sources change and a refresh runs", func() {
			loader.athletes = append(testAthletes(), model.AthleteEvent{
				ID: "4", Name: "Dave", Sex: model.SexMale, Age: 27, Year: 2016,
				Season: model.SeasonSummer, Sport: "Judo", Event: "Half", Medal: model.MedalBronze,
			})
			err := svc.Refresh(ctx)

			Convey("Then reads observe the rebuilt snapshot", func() {
				So(err, ShouldBeNil)
				medals, err := svc.Medals(ctx, 10)
				So(err, ShouldBeNil)
				So(medals, ShouldHaveLength, 3)
			})
		})

		Convey("When the sources become unreadable and a refresh runs", func() {
			loader.fail = true
			err := svc.Refresh(ctx)

			Convey("Then the refresh fails and the old snapshot survives", func() {
				So(err, ShouldNotBeNil)
				medals, merr := svc.Medals(ctx, 10)
				So(merr, ShouldBeNil)
				So(medals, ShouldHaveLength, 2)
			})
		})
	})
}

// Compile-time checks that the service satisfies the read model the API
// expects.
var _ interface {
	Participation(ctx context.Context) ([]types.ParticipationPoint, error)
	Medals(ctx context.Context, limit int) ([]types.MedalRow, error)
	RecordIntervals(ctx context.Context) ([]types.RecordSpan, time.Time, error)
} = (*Service)(nil)
