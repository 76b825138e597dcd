package service_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/burdigala/melee/internal/adapters/repository"
	service "github.com/burdigala/melee/internal/app"
	"github.com/burdigala/melee/internal/domain/model"
	"github.com/burdigala/melee/internal/domain/rating"
	"github.com/burdigala/melee/pkg/logger"
)

func intPtr(v int) *int { return &v }

func testRoster() []model.Fighter {
	return []model.Fighter{
		{Name: "Aldric", Club: "Burdigala AMHE", Nation: "FR", Rank: intPtr(3), Wins: intPtr(18), Losses: intPtr(4), Draws: intPtr(2)},
		{Name: "Brunhild", Club: "Gladiatores", Nation: "DE", Rank: intPtr(11), Wins: intPtr(9), Losses: intPtr(9), Draws: intPtr(0)},
		{Name: "Corentin", Club: "Burdigala AMHE", Nation: "FR", Wins: intPtr(2), Losses: intPtr(5), Draws: intPtr(1)},
		{Name: "Deirdre", Nation: "IE", Rank: intPtr(40)},
	}
}

func startService(opts ...service.Option) *service.Service {
	opts = append([]service.Option{
		service.WithFighters(testRoster()),
		service.WithSeed(42),
		service.WithSimulationRuns(300),
	}, opts...)
	svc := service.New(opts...)
	So(svc.Start(context.Background()), ShouldBeNil)
	return svc
}

func TestService(t *testing.T) {
	_ = logger.Init()
	ctx := context.Background()

	Convey("Given a started service over an injected roster", t, func() {
		svc := startService()
		defer svc.Stop()

		Convey("When reading the roster", func() {
			entries := svc.Roster(ctx)

			Convey("Then every fighter appears, rated when possible", func() {
				So(len(entries), ShouldEqual, 4)
				So(entries[0].Rating, ShouldNotBeNil)
				So(entries[0].Rating.Defined, ShouldBeTrue)
				// Deirdre has no recorded bouts; her rating stays undefined.
				So(entries[3].Fighter.Name, ShouldEqual, "Deirdre")
				So(entries[3].Rating, ShouldBeNil)
			})
		})

		Convey("When reading a single rating", func() {
			entry, err := svc.Rating(ctx, "Aldric")

			Convey("Then the derived numbers should be present", func() {
				So(err, ShouldBeNil)
				So(entry.Rating, ShouldNotBeNil)
				So(entry.Rating.Ratio, ShouldBeBetween, 0, 1)
				So(entry.Rating.Reliability, ShouldBeBetween, 0, 1)
			})

			Convey("And unknown names should report not found", func() {
				_, err := svc.Rating(ctx, "nobody")
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When running a duel", func() {
			out, err := svc.Duel(ctx, "Aldric", "Brunhild")

			Convey("Then the favorite should carry the higher probability", func() {
				So(err, ShouldBeNil)
				So(out.ProbA, ShouldBeGreaterThan, 0.5)
				So(out.ProbA+out.ProbB, ShouldEqual, 1)
			})

			Convey("And a fighter without history should propagate the missing record", func() {
				_, err := svc.Duel(ctx, "Aldric", "Deirdre")
				So(errors.Is(err, rating.ErrMissingRecord), ShouldBeTrue)
			})
		})

		Convey("When forecasting", func() {
			dist, err := svc.Forecast(ctx, 0)

			Convey("Then the batch should use the configured default and exclude Deirdre", func() {
				So(err, ShouldBeNil)
				So(dist.Runs, ShouldEqual, 300)
				So(dist.Entrants, ShouldEqual, 3)
				So(dist.Excluded, ShouldResemble, []string{"Deirdre"})

				total := 0
				for _, o := range dist.Outcomes {
					total += o.Wins
				}
				So(total, ShouldEqual, 300)
			})
		})

		Convey("When listing favorites", func() {
			favorites := svc.Favorites(ctx, 2)

			Convey("Then ranked fighters should come back best rank first", func() {
				So(len(favorites), ShouldEqual, 2)
				So(favorites[0].Fighter.Name, ShouldEqual, "Aldric")
				So(favorites[1].Fighter.Name, ShouldEqual, "Brunhild")
			})
		})

		Convey("When summarizing the roster", func() {
			stats := svc.RosterStats(ctx)

			Convey("Then counts and rank statistics should match the supply", func() {
				So(stats.Fighters, ShouldEqual, 4)
				So(stats.Clubs, ShouldEqual, 2)
				So(stats.Nations, ShouldEqual, 3)
				So(stats.Ranked, ShouldEqual, 3)
				So(stats.UnknownRank, ShouldEqual, 1)
				So(stats.BestRank, ShouldEqual, 3)
				So(stats.MeanRank, ShouldAlmostEqual, 18, 1e-12)
				So(stats.MedianRank, ShouldEqual, 11)
			})
		})

		Convey("When asking for service stats", func() {
			stats := svc.GetStats()

			Convey("Then the monitoring view should reflect the running state", func() {
				So(stats["started"], ShouldBeTrue)
				So(stats["fighters"], ShouldEqual, 4)
				So(stats["simulationRuns"], ShouldEqual, 300)
			})
		})
	})

	Convey("Given a roster with duplicate names", t, func() {
		svc := service.New(service.WithFighters([]model.Fighter{
			{Name: "Aldric"}, {Name: "Aldric"},
		}))

		Convey("When starting", func() {
			err := svc.Start(ctx)

			Convey("Then startup should fail before the core runs", func() {
				So(errors.Is(err, repository.ErrDuplicateName), ShouldBeTrue)
			})
		})
	})
}
