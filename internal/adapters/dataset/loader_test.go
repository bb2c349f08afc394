package dataset

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/podiumlab/podium/internal/domain/model"
	"github.com/podiumlab/podium/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func writeFixture(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadAthletes(t *testing.T) {
	ctx := context.Background()

	Convey("Given an athlete table with mixed row quality", t, func() {
		path := writeFixture(t, "athletes.csv",
			"ID,Name,Sex,Age,Height,Weight,Team,NOC,Games,Year,Season,City,Sport,Event,Medal\n"+
				"1,Alice,F,23,168,57,United States,USA,2016 Summer,2016,Summer,Rio,Swimming,100m Free,Gold\n"+
				"2,Bob,M,NA,NA,NA,Jamaica,JAM,2016 Summer,2016,Summer,Rio,Athletics,100m,NA\n"+
				"3,Carol,F,abc,170,60,Canada,CAN,2016 Summer,2016,Summer,Rio,Rowing,Eights,Silver\n"+
				",Nobody,M,20,180,80,Nowhere,NON,2016 Summer,2016,Summer,Rio,Judo,Half,NA\n"+
				"4,Dave,M,25,181,77,France,FRA,bad Summer,oops,Summer,Rio,Fencing,Foil,Bronze\n"+
				"5,Eve,X,21,0,0,Italy,ITA,2016 Summer,2016,Summer,Rio,Shooting,Trap,NA\n")
		loader := NewLoader(WithAthletesPath(path))

		Convey("When the table is loaded", func() {
			rows, err := loader.LoadAthletes(ctx)

			Convey("Then usable rows survive and broken rows are dropped", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 3)
				So(rows[0].Name, ShouldEqual, "Alice")
				So(rows[0].Medal, ShouldEqual, model.MedalGold)
				So(rows[0].Age, ShouldEqual, 23)
			})

			Convey("Then missing and malformed cells read as zero values", func() {
				So(rows[1].Age, ShouldEqual, 0)
				So(rows[1].Height, ShouldEqual, 0)
				So(rows[1].Medal, ShouldEqual, model.MedalNone)
				So(rows[2].Age, ShouldEqual, 0)
			})
		})
	})

	Convey("Given a table missing a required column", t, func() {
		path := writeFixture(t, "athletes.csv",
			"ID,Name,Age,Year,Season,Sport,Event\n1,Alice,23,2016,Summer,Swimming,100m Free\n")
		loader := NewLoader(WithAthletesPath(path))

		Convey("When the table is loaded", func() {
			_, err := loader.LoadAthletes(ctx)

			Convey("Then the load fails with ErrMissingColumn", func() {
				So(errors.Is(err, ErrMissingColumn), ShouldBeTrue)
			})
		})
	})

	Convey("Given a path that does not exist", t, func() {
		loader := NewLoader(WithAthletesPath(filepath.Join(t.TempDir(), "absent.csv")))

		Convey("When the table is loaded", func() {
			_, err := loader.LoadAthletes(ctx)

			Convey("Then the load fails with ErrOpenSource", func() {
				So(errors.Is(err, ErrOpenSource), ShouldBeTrue)
			})
		})
	})

	Convey("Given a path with an unsupported extension", t, func() {
		path := writeFixture(t, "athletes.parquet", "not a table")
		loader := NewLoader(WithAthletesPath(path))

		Convey("When the table is loaded", func() {
			_, err := loader.LoadAthletes(ctx)

			Convey("Then the load fails with ErrOpenSource", func() {
				So(errors.Is(err, ErrOpenSource), ShouldBeTrue)
			})
		})
	})
}

func TestLoadRecords(t *testing.T) {
	ctx := context.Background()

	Convey("Given a record progression table", t, func() {
		path := writeFixture(t, "records.csv",
			"Time,Wind,Auto,Athlete,Nationality,Location of race,Date\n"+
				"9.95,0.3,9.95,Jim Hines,United States,Mexico City,10/14/1968\n"+
				"9.93,1.4,,Calvin Smith,United States,Colorado Springs,7/3/1983\n"+
				"9.90,NA,,Leroy Burrell,United States,New York,6/14/1991\n"+
				"oops,0.0,,Broken Row,Nowhere,Nowhere,1/1/2000\n"+
				"9.79,0.1,,Maurice Greene,United States,Athens,not-a-date\n")
		loader := NewLoader(WithRecordsPath(path), WithRecordDateLayout("1/2/2006"))

		Convey("When the table is loaded", func() {
			rows, err := loader.LoadRecords(ctx)

			Convey("Then parseable rows survive in file order", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 3)
				So(rows[0].Athlete, ShouldEqual, "Jim Hines")
				So(rows[0].Seconds, ShouldEqual, 9.95)
				So(rows[0].Date, ShouldEqual, time.Date(1968, 10, 14, 0, 0, 0, 0, time.UTC))
				So(rows[0].DateLabel, ShouldEqual, "10/14/1968")
			})

			Convey("Then wind is optional and kept only when measured", func() {
				So(rows[0].WindMeasured, ShouldBeTrue)
				So(rows[0].Wind, ShouldEqual, 0.3)
				So(rows[2].WindMeasured, ShouldBeFalse)
			})
		})
	})

	Convey("Given dates in an alternate layout", t, func() {
		path := writeFixture(t, "records.csv",
			"Time,Athlete,Nationality,Date\n9.58,Usain Bolt,Jamaica,2009-08-16\n")
		loader := NewLoader(WithRecordsPath(path), WithRecordDateLayout("1/2/2006"))

		Convey("When the table is loaded", func() {
			rows, err := loader.LoadRecords(ctx)

			Convey("Then the fallback layouts still parse them", func() {
				So(err, ShouldBeNil)
				So(rows, ShouldHaveLength, 1)
				So(rows[0].Date.Year(), ShouldEqual, 2009)
			})
		})
	})
}
