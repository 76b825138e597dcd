package repository_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/burdigala/melee/internal/adapters/repository"
	"github.com/burdigala/melee/internal/domain/model"
)

func intPtr(v int) *int { return &v }

func TestMemStore(t *testing.T) {
	ctx := context.Background()

	Convey("Given a valid roster", t, func() {
		fighters := []model.Fighter{
			{Name: "Aldric", Club: "Burdigala AMHE", Rank: intPtr(12)},
			{Name: "Brunhild", Club: "Gladiatores", Wins: intPtr(5), Losses: intPtr(2), Draws: intPtr(0)},
			{Name: "Corentin"},
		}
		store, err := repository.NewMemStore(ctx, fighters)
		So(err, ShouldBeNil)

		Convey("When looking up a known fighter", func() {
			f, err := store.Get(ctx, "Brunhild")

			Convey("Then the full record should come back", func() {
				So(err, ShouldBeNil)
				So(f.Club, ShouldEqual, "Gladiatores")
				So(*f.Wins, ShouldEqual, 5)
			})
		})

		Convey("When looking up an unknown fighter", func() {
			_, err := store.Get(ctx, "nobody")

			Convey("Then it should report not found", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When listing", func() {
			listed := store.List(ctx)

			Convey("Then load order should be preserved", func() {
				So(store.Count(ctx), ShouldEqual, 3)
				So(listed[0].Name, ShouldEqual, "Aldric")
				So(listed[2].Name, ShouldEqual, "Corentin")
			})
		})
	})

	Convey("Given rosters violating data-integrity preconditions", t, func() {
		Convey("When two fighters share a name", func() {
			_, err := repository.NewMemStore(ctx, []model.Fighter{
				{Name: "Aldric"}, {Name: "Aldric"},
			})

			Convey("Then the store should refuse to build", func() {
				So(errors.Is(err, repository.ErrDuplicateName), ShouldBeTrue)
			})
		})

		Convey("When a name is blank", func() {
			_, err := repository.NewMemStore(ctx, []model.Fighter{{Name: "   "}})

			Convey("Then the store should refuse to build", func() {
				So(errors.Is(err, repository.ErrEmptyName), ShouldBeTrue)
			})
		})

		Convey("When names differ only by surrounding whitespace", func() {
			_, err := repository.NewMemStore(ctx, []model.Fighter{
				{Name: "Aldric"}, {Name: " Aldric "},
			})

			Convey("Then they should still collide", func() {
				So(errors.Is(err, repository.ErrDuplicateName), ShouldBeTrue)
			})
		})
	})
}
