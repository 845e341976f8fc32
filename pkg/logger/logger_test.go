package logger_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/okian/keyfeat/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	ctx := context.Background()

	Convey("Given an initialized global logger", t, func() {
		var buf bytes.Buffer
		So(logger.Init(&buf), ShouldBeNil)
		So(logger.SetLevelString("info"), ShouldBeNil)

		Convey("When an info message with fields is logged", func() {
			logger.Get().Info(ctx, "events loaded",
				logger.String("path", "events.csv"),
				logger.Int("rows", 42),
			)

			Convey("Then the output carries the message and fields", func() {
				out := buf.String()
				So(out, ShouldContainSubstring, "events loaded")
				So(out, ShouldContainSubstring, "path=events.csv")
				So(out, ShouldContainSubstring, "rows=42")
			})
		})

		Convey("When the level is raised to error", func() {
			So(logger.SetLevelString("error"), ShouldBeNil)
			logger.Get().Info(ctx, "suppressed")
			logger.Get().Error(ctx, "kept", logger.Error(errors.New("boom")))

			Convey("Then info messages are suppressed", func() {
				out := buf.String()
				So(out, ShouldNotContainSubstring, "suppressed")
				So(out, ShouldContainSubstring, "kept")
				So(out, ShouldContainSubstring, "boom")
			})
		})

		Convey("When a named logger is used", func() {
			logger.Named("aggregate").Warn(ctx, "slow group", logger.Float64("seconds", 1.5))

			Convey("Then fields are grouped under the name", func() {
				So(buf.String(), ShouldContainSubstring, "aggregate.seconds=1.5")
			})
		})
	})

	Convey("Given an unknown level string", t, func() {
		So(logger.SetLevelString("loud"), ShouldNotBeNil)
	})

	Convey("Given the nop logger", t, func() {
		Convey("Then logging through it does not panic", func() {
			So(func() { logger.Nop().Info(ctx, "ignored") }, ShouldNotPanic)
		})
	})
}
