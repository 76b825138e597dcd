package rating_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/burdigala/melee/internal/domain/model"
	"github.com/burdigala/melee/internal/domain/rating"
)

func intPtr(v int) *int { return &v }

func TestPerformanceRatio(t *testing.T) {
	Convey("Given a rating engine with default smoothing", t, func() {
		engine := rating.New()

		Convey("When any count is unknown", func() {
			_, err := engine.PerformanceRatio(nil, intPtr(3), intPtr(1))

			Convey("Then it should propagate the missing record", func() {
				So(err, ShouldEqual, rating.ErrMissingRecord)
			})
		})

		Convey("When the record is complete but empty", func() {
			ratio, err := engine.PerformanceRatio(intPtr(0), intPtr(0), intPtr(0))

			Convey("Then the ratio should be exactly neutral", func() {
				So(err, ShouldBeNil)
				So(ratio, ShouldEqual, 0.5)
			})
		})

		Convey("When the record is 5 wins, 0 losses, 0 draws", func() {
			ratio, err := engine.PerformanceRatio(intPtr(5), intPtr(0), intPtr(0))

			Convey("Then smoothing should pull it to 7/9", func() {
				So(err, ShouldBeNil)
				So(ratio, ShouldAlmostEqual, 7.0/9.0, 1e-12)
			})
		})

		Convey("When draws are present", func() {
			ratio, err := engine.PerformanceRatio(intPtr(2), intPtr(2), intPtr(4))

			Convey("Then each draw should count as half a win", func() {
				So(err, ShouldBeNil)
				// (2 + 0.5*4 + 2) / (8 + 4)
				So(ratio, ShouldAlmostEqual, 0.5, 1e-12)
			})
		})

		Convey("When records are extreme", func() {
			allWins, err1 := engine.PerformanceRatio(intPtr(1000), intPtr(0), intPtr(0))
			allLosses, err2 := engine.PerformanceRatio(intPtr(0), intPtr(1000), intPtr(0))

			Convey("Then ratios should stay inside [0,1]", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(allWins, ShouldBeLessThan, 1)
				So(allWins, ShouldBeGreaterThan, 0.9)
				So(allLosses, ShouldBeGreaterThan, 0)
				So(allLosses, ShouldBeLessThan, 0.1)
			})
		})
	})
}

func TestReliability(t *testing.T) {
	Convey("Given a rating engine with reliability constant 10", t, func() {
		engine := rating.New()

		Convey("When there is no history", func() {
			So(engine.Reliability(0), ShouldEqual, 0)
		})

		Convey("When the bout count equals the constant", func() {
			So(engine.Reliability(10), ShouldEqual, 0.5)
		})

		Convey("When the bout count grows", func() {
			prev := 0.0
			for _, bouts := range []int{1, 2, 5, 10, 50, 100, 1000} {
				w := engine.Reliability(bouts)
				So(w, ShouldBeGreaterThan, prev)
				So(w, ShouldBeLessThan, 1)
				prev = w
			}

			Convey("Then it should approach but never reach one", func() {
				So(engine.Reliability(1_000_000), ShouldBeGreaterThan, 0.999)
				So(engine.Reliability(1_000_000), ShouldBeLessThan, 1)
			})
		})
	})
}

func TestEffectiveRatio(t *testing.T) {
	Convey("Given a rating engine", t, func() {
		engine := rating.New()

		Convey("When reliability is zero", func() {
			Convey("Then any ratio should collapse to neutral", func() {
				So(engine.EffectiveRatio(0, 0), ShouldEqual, 0.5)
				So(engine.EffectiveRatio(1, 0), ShouldEqual, 0.5)
				So(engine.EffectiveRatio(0.9, 0), ShouldEqual, 0.5)
			})
		})

		Convey("When reliability is partial", func() {
			Convey("Then the ratio should shrink toward neutral proportionally", func() {
				So(engine.EffectiveRatio(1, 0.5), ShouldEqual, 0.75)
				So(engine.EffectiveRatio(0, 0.5), ShouldEqual, 0.25)
			})
		})
	})
}

func TestPowerScore(t *testing.T) {
	Convey("Given a rating engine with equal rank/performance weights", t, func() {
		engine := rating.New()

		Convey("When the rank is unknown", func() {
			Convey("Then only the effective ratio should contribute", func() {
				So(engine.PowerScore(nil, 0.6), ShouldAlmostEqual, 0.3, 1e-12)
			})
		})

		Convey("When the rank is non-positive", func() {
			Convey("Then the rank contribution should degrade to zero", func() {
				So(engine.PowerScore(intPtr(0), 0.6), ShouldAlmostEqual, 0.3, 1e-12)
				So(engine.PowerScore(intPtr(-3), 0.6), ShouldAlmostEqual, 0.3, 1e-12)
			})
		})

		Convey("When ranks differ", func() {
			first := engine.PowerScore(intPtr(1), 0.5)
			tenth := engine.PowerScore(intPtr(10), 0.5)

			Convey("Then a better (lower) rank should score higher", func() {
				So(first, ShouldBeGreaterThan, tenth)
				So(first, ShouldAlmostEqual, 0.75, 1e-12)
				So(tenth, ShouldAlmostEqual, 0.3, 1e-12)
			})
		})
	})
}

func TestRate(t *testing.T) {
	Convey("Given a rating engine", t, func() {
		engine := rating.New()

		Convey("When rating a fighter with no history at all", func() {
			r, err := engine.Rate(model.Fighter{
				Name: "novice",
				Wins: intPtr(0), Losses: intPtr(0), Draws: intPtr(0),
			})

			Convey("Then every component should be neutral", func() {
				So(err, ShouldBeNil)
				So(r.Defined, ShouldBeTrue)
				So(r.Ratio, ShouldEqual, 0.5)
				So(r.Reliability, ShouldEqual, 0)
				So(r.EffectiveRatio, ShouldEqual, 0.5)
			})
		})

		Convey("When rating a fighter with an incomplete record", func() {
			r, err := engine.Rate(model.Fighter{Name: "ghost", Wins: intPtr(4)})

			Convey("Then the rating should be undefined", func() {
				So(err, ShouldEqual, rating.ErrMissingRecord)
				So(r.Defined, ShouldBeFalse)
			})
		})

		Convey("When comparing two fighters differing only in sample size", func() {
			small, err1 := engine.Rate(model.Fighter{
				Name: "small-sample",
				Wins: intPtr(2), Losses: intPtr(0), Draws: intPtr(0),
			})
			large, err2 := engine.Rate(model.Fighter{
				Name: "large-sample",
				Wins: intPtr(40), Losses: intPtr(0), Draws: intPtr(0),
			})

			Convey("Then the larger sample should earn the stronger effective ratio", func() {
				So(err1, ShouldBeNil)
				So(err2, ShouldBeNil)
				So(large.EffectiveRatio, ShouldBeGreaterThan, small.EffectiveRatio)
			})
		})
	})
}
