package ranking_test

import (
	"testing"

	ranking "github.com/podiumlab/podium/internal/domain/ranking"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSort(t *testing.T) {
	Convey("Given a set of medal tallies", t, func() {
		Convey("When totals differ", func() {
			tallies := []ranking.Tally{
				{AthleteID: "a", Total: 3},
				{AthleteID: "b", Total: 7},
				{AthleteID: "c", Total: 5},
			}
			ranking.Sort(tallies)

			Convey("Then higher total ranks first", func() {
				So(tallies[0].AthleteID, ShouldEqual, "b")
				So(tallies[1].AthleteID, ShouldEqual, "c")
				So(tallies[2].AthleteID, ShouldEqual, "a")
			})
		})

		Convey("When totals tie", func() {
			tallies := []ranking.Tally{
				{AthleteID: "silver-heavy", Gold: 1, Silver: 3, Total: 4},
				{AthleteID: "gold-heavy", Gold: 2, Silver: 2, Total: 4},
			}
			ranking.Sort(tallies)

			Convey("Then gold breaks the tie", func() {
				So(tallies[0].AthleteID, ShouldEqual, "gold-heavy")
			})
		})

		Convey("When totals and golds tie", func() {
			tallies := []ranking.Tally{
				{AthleteID: "bronze-heavy", Gold: 1, Silver: 1, Bronze: 2, Total: 4},
				{AthleteID: "silver-heavy", Gold: 1, Silver: 2, Bronze: 1, Total: 4},
			}
			ranking.Sort(tallies)

			Convey("Then silver breaks the tie", func() {
				So(tallies[0].AthleteID, ShouldEqual, "silver-heavy")
			})
		})

		Convey("When all four keys tie", func() {
			tallies := []ranking.Tally{
				{AthleteID: "first-in", Gold: 1, Silver: 1, Bronze: 1, Total: 3},
				{AthleteID: "second-in", Gold: 1, Silver: 1, Bronze: 1, Total: 3},
			}
			ranking.Sort(tallies)

			Convey("Then input order is retained", func() {
				So(tallies[0].AthleteID, ShouldEqual, "first-in")
				So(tallies[1].AthleteID, ShouldEqual, "second-in")
			})
		})
	})
}

func TestTop(t *testing.T) {
	Convey("Given a sorted tally slice", t, func() {
		tallies := []ranking.Tally{{AthleteID: "a"}, {AthleteID: "b"}, {AthleteID: "c"}}

		Convey("When n is smaller than the slice", func() {
			So(len(ranking.Top(tallies, 2)), ShouldEqual, 2)
		})

		Convey("When n exceeds the slice", func() {
			So(len(ranking.Top(tallies, 10)), ShouldEqual, 3)
		})

		Convey("When n is zero", func() {
			So(len(ranking.Top(tallies, 0)), ShouldEqual, 3)
		})
	})
}

func TestLabeler(t *testing.T) {
	Convey("Given a labeler with override mappings", t, func() {
		l := ranking.NewLabeler(
			ranking.WithOverrides(map[string]string{
				"Larisa Semyonovna Latynina (Diriy-) (URS)": "Larisa Latynina (URS)",
			}),
		)

		Convey("When the composed label has no override", func() {
			So(l.Label("Usain St. Leo Bolt", "JAM"), ShouldEqual, "Usain St. Leo Bolt (JAM)")
		})

		Convey("When the composed label matches an override", func() {
			So(l.Label("Larisa Semyonovna Latynina (Diriy-)", "URS"), ShouldEqual, "Larisa Latynina (URS)")
		})
	})

	Convey("Given a labeler without options", t, func() {
		l := ranking.NewLabeler()

		Convey("Then labels compose directly", func() {
			So(l.Label("Paavo Johannes Nurmi", "FIN"), ShouldEqual, "Paavo Johannes Nurmi (FIN)")
		})
	})
}
