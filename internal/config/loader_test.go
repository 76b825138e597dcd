package config_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/burdigala/melee/internal/config"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	Convey("Given a clean environment", t, func() {
		Convey("When loading configuration", func() {
			cfg, err := config.Load(ctx)

			Convey("Then the documented defaults should apply", func() {
				So(err, ShouldBeNil)
				So(cfg.DrawWeight, ShouldEqual, 0.5)
				So(cfg.Smoothing, ShouldEqual, 2)
				So(cfg.ReliabilityConstant, ShouldEqual, 10)
				So(cfg.Alpha, ShouldEqual, 0.5)
				So(cfg.Beta, ShouldEqual, 0.5)
				So(cfg.Steepness, ShouldEqual, 8)
				So(cfg.SimulationRuns, ShouldEqual, 1000)
				So(cfg.LogLevel, ShouldEqual, "info")
			})
		})
	})

	Convey("Given environment overrides", t, func() {
		t.Setenv("MELEE_SIMULATION_RUNS", "2500")
		t.Setenv("MELEE_STEEPNESS", "4")
		t.Setenv("MELEE_ROSTER_PATH", "fixtures/roster.json")

		Convey("When loading configuration", func() {
			cfg, err := config.Load(ctx)

			Convey("Then env values should win over defaults", func() {
				So(err, ShouldBeNil)
				So(cfg.SimulationRuns, ShouldEqual, 2500)
				So(cfg.Steepness, ShouldEqual, 4)
				So(cfg.RosterPath, ShouldEqual, "fixtures/roster.json")
				// Untouched keys keep their defaults.
				So(cfg.DrawWeight, ShouldEqual, 0.5)
			})
		})
	})

	Convey("Given invalid settings", t, func() {
		cases := map[string]string{
			"MELEE_DRAW_WEIGHT":          "1.5",
			"MELEE_RELIABILITY_CONSTANT": "0",
			"MELEE_SIMULATION_RUNS":      "0",
		}
		for key, val := range cases {
			Convey("When "+key+" is out of range", func() {
				t.Setenv(key, val)
				_, err := config.Load(ctx)

				Convey("Then loading should fail validation", func() {
					So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
				})
			})
		}
	})
}
