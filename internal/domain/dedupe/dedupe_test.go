package dedupe_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	dedupe "github.com/podiumlab/podium/internal/domain/dedupe"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSetTracker(t *testing.T) {
	Convey("Given a new set tracker", t, func() {
		Convey("When creating a tracker with default options", func() {
			tr := dedupe.NewSetTracker()

			Convey("Then it should start empty", func() {
				So(tr, ShouldNotBeNil)
				So(tr.Size(), ShouldEqual, 0)
			})
		})

		Convey("When creating a tracker with a pre-sized set", func() {
			tr := dedupe.NewSetTracker(
				dedupe.WithInitialCapacity(1000),
			)

			Convey("Then it should still start empty", func() {
				So(tr, ShouldNotBeNil)
				So(tr.Size(), ShouldEqual, 0)
			})
		})

		Convey("When recording keys", func() {
			tr := dedupe.NewSetTracker()

			Convey("And the key is new", func() {
				seen := tr.SeenAndRecord(context.Background(), dedupe.Key("1896", "12345", "M"))

				Convey("Then it should return false and record the key", func() {
					So(seen, ShouldBeFalse)
					So(tr.Size(), ShouldEqual, 1)
				})
			})

			Convey("And the key was already seen", func() {
				key := dedupe.Key("1896", "12345", "M")
				tr.SeenAndRecord(context.Background(), key)

				seen := tr.SeenAndRecord(context.Background(), key)

				Convey("Then it should return true", func() {
					So(seen, ShouldBeTrue)
					So(tr.Size(), ShouldEqual, 1)
				})
			})

			Convey("And the same athlete appears in a different year", func() {
				tr.SeenAndRecord(context.Background(), dedupe.Key("1896", "12345", "M"))
				seen := tr.SeenAndRecord(context.Background(), dedupe.Key("1900", "12345", "M"))

				Convey("Then the second year counts as a new key", func() {
					So(seen, ShouldBeFalse)
					So(tr.Size(), ShouldEqual, 2)
				})
			})
		})

		Convey("When unrecording a key", func() {
			tr := dedupe.NewSetTracker()
			key := dedupe.Key("2016", "271116", "F")
			tr.SeenAndRecord(context.Background(), key)

			tr.Unrecord(context.Background(), key)

			Convey("Then the key can be recorded again", func() {
				So(tr.Size(), ShouldEqual, 0)
				So(tr.SeenAndRecord(context.Background(), key), ShouldBeFalse)
			})
		})

		Convey("When recording keys concurrently", func() {
			tr := dedupe.NewSetTracker(dedupe.WithInitialCapacity(100))
			const goroutines = 8
			const perGoroutine = 50

			var wg sync.WaitGroup
			for g := 0; g < goroutines; g++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := 0; i < perGoroutine; i++ {
						tr.SeenAndRecord(context.Background(), dedupe.Key("2016", fmt.Sprintf("athlete-%d", i), "M"))
					}
				}()
			}
			wg.Wait()

			Convey("Then each distinct key counts exactly once", func() {
				So(tr.Size(), ShouldEqual, int64(perGoroutine))
			})
		})
	})
}

func TestKey(t *testing.T) {
	Convey("Given composite key parts", t, func() {
		Convey("When parts differ only in grouping", func() {
			a := dedupe.Key("19", "1", "M")
			b := dedupe.Key("1", "91", "M")

			Convey("Then the keys must not collide", func() {
				So(a, ShouldNotEqual, b)
			})
		})
	})
}
