package ranking_test

import (
	"math"
	"testing"

	"roundest/feature/ranking"

	. "github.com/smartystreets/goconvey/convey"
)

func ids(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestSeededIndex(t *testing.T) {
	Convey("Given the seeded swap index", t, func() {
		Convey("It follows floor(seed*(i+1)) mod (i+1)", func() {
			So(ranking.SeededIndex(0.5, 3), ShouldEqual, 2)
			So(ranking.SeededIndex(0.99, 9), ShouldEqual, 9)
			So(ranking.SeededIndex(0, 5), ShouldEqual, 0)
			So(ranking.SeededIndex(1.5, 3), ShouldEqual, 2) // floor(6) mod 4
		})

		Convey("It stays in [0, i] for any finite seed", func() {
			seeds := []float64{-1e300, -7.25, -0.3, 0, 0.0001, 0.5, 0.999999, 3.75, 1e12, 1e300}
			for _, s := range seeds {
				for i := 1; i < 200; i++ {
					j := ranking.SeededIndex(s, i)
					So(j, ShouldBeGreaterThanOrEqualTo, 0)
					So(j, ShouldBeLessThanOrEqualTo, i)
				}
			}
		})
	})
}

func TestPickPair(t *testing.T) {
	Convey("Given a sequence of items", t, func() {
		Convey("A worked example matches the shuffle by hand", func() {
			// seed 0.5 over [1 2 3 4]:
			// i=3: j=2 -> [1 2 4 3]; i=2: j=1 -> [1 4 2 3]; i=1: j=1 -> unchanged
			a, b, err := ranking.PickPair([]int{1, 2, 3, 4}, 0.5)
			So(err, ShouldBeNil)
			So(a, ShouldEqual, 1)
			So(b, ShouldEqual, 4)
		})

		Convey("Every length and seed yields two distinct members", func() {
			for n := 2; n <= 40; n++ {
				items := ids(n)
				for k := 0; k < 100; k++ {
					seed := float64(k)/100 + 0.003
					a, b, err := ranking.PickPair(items, seed)
					So(err, ShouldBeNil)
					So(a, ShouldNotEqual, b)
					So(a, ShouldBeBetweenOrEqual, 1, n)
					So(b, ShouldBeBetweenOrEqual, 1, n)
				}
			}
		})

		Convey("The same seed always yields the same pair", func() {
			items := ids(151)
			a1, b1, _ := ranking.PickPair(items, 0.618)
			for k := 0; k < 10; k++ {
				a2, b2, _ := ranking.PickPair(items, 0.618)
				So(a2, ShouldEqual, a1)
				So(b2, ShouldEqual, b1)
			}
		})

		Convey("The input order is left untouched", func() {
			items := ids(10)
			_, _, _ = ranking.PickPair(items, 0.77)
			So(items, ShouldResemble, ids(10))
		})

		Convey("Fewer than two items is insufficient data", func() {
			_, _, err := ranking.PickPair([]int{1}, 0.5)
			So(err, ShouldEqual, ranking.ErrInsufficientData)

			_, _, err = ranking.PickPair([]int{}, 0.5)
			So(err, ShouldEqual, ranking.ErrInsufficientData)
		})

		Convey("Non-finite seeds are rejected", func() {
			_, _, err := ranking.PickPair(ids(5), math.NaN())
			So(err, ShouldEqual, ranking.ErrInvalidSeed)

			_, _, err = ranking.PickPair(ids(5), math.Inf(1))
			So(err, ShouldEqual, ranking.ErrInvalidSeed)
		})
	})
}
