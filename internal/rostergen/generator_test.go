package rostergen_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/burdigala/melee/internal/rostergen"
)

func TestGenerate(t *testing.T) {
	Convey("Given a generation request", t, func() {
		Convey("When generating a roster", func() {
			fighters := rostergen.Generate(64, 7)

			Convey("Then the roster should be well-formed", func() {
				So(len(fighters), ShouldEqual, 64)
				seen := make(map[string]struct{})
				for _, f := range fighters {
					So(f.Name, ShouldNotBeEmpty)
					_, dup := seen[f.Name]
					So(dup, ShouldBeFalse)
					seen[f.Name] = struct{}{}

					if f.Rank != nil {
						So(*f.Rank, ShouldBeGreaterThan, 0)
					}
					if f.HasRecord() {
						So(*f.Wins, ShouldBeGreaterThanOrEqualTo, 0)
						So(*f.Losses, ShouldBeGreaterThanOrEqualTo, 0)
						So(*f.Draws, ShouldBeGreaterThanOrEqualTo, 0)
					}
				}
			})

			Convey("Then archetype coverage should include incomplete records", func() {
				incomplete := 0
				for _, f := range fighters {
					if !f.HasRecord() {
						incomplete++
					}
				}
				So(incomplete, ShouldBeGreaterThan, 0)
				So(incomplete, ShouldBeLessThan, len(fighters))
			})
		})

		Convey("When generating twice with the same seed", func() {
			a := rostergen.Generate(16, 99)
			b := rostergen.Generate(16, 99)

			Convey("Then the records should repeat", func() {
				So(len(a), ShouldEqual, len(b))
				for i := range a {
					So(a[i].Club, ShouldEqual, b[i].Club)
					So(a[i].Nation, ShouldEqual, b[i].Nation)
					So(a[i].HasRecord(), ShouldEqual, b[i].HasRecord())
				}
			})
		})
	})
}
