package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/keyfeat/internal/config"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	Convey("Given no file and no environment overrides", t, func() {
		cfg, err := config.Load(ctx)
		So(err, ShouldBeNil)
		So(cfg.EventsPath, ShouldEqual, "train_logs.csv")
	})

	Convey("Given environment overrides", t, func() {
		t.Setenv("KEYFEAT_EVENTS", "/data/events.csv")
		t.Setenv("KEYFEAT_WORKER_COUNT", "3")
		t.Setenv("KEYFEAT_LOG_LEVEL", "debug")

		cfg, err := config.Load(ctx)
		So(err, ShouldBeNil)

		Convey("Then env values win over defaults", func() {
			So(cfg.EventsPath, ShouldEqual, "/data/events.csv")
			So(cfg.WorkerCount, ShouldEqual, 3)
			So(cfg.LogLevel, ShouldEqual, "debug")
			So(cfg.OutputPath, ShouldEqual, "features.csv")
		})
	})

	Convey("Given a YAML config file", t, func() {
		// t.Setenv from earlier blocks persists for the whole test
		// function; clear the overrides so the file values apply.
		os.Unsetenv("KEYFEAT_EVENTS")
		os.Unsetenv("KEYFEAT_WORKER_COUNT")
		os.Unsetenv("KEYFEAT_LOG_LEVEL")

		path := filepath.Join(t.TempDir(), "keyfeat.yaml")
		So(os.WriteFile(path, []byte("events: /tmp/in.csv\noutput: /tmp/out.csv\nworker_count: 2\n"), 0o600), ShouldBeNil)
		t.Setenv("KEYFEAT_CONFIG", path)

		cfg, err := config.Load(ctx)
		So(err, ShouldBeNil)
		So(cfg.EventsPath, ShouldEqual, "/tmp/in.csv")
		So(cfg.OutputPath, ShouldEqual, "/tmp/out.csv")
		So(cfg.WorkerCount, ShouldEqual, 2)

		Convey("And env still wins over the file", func() {
			t.Setenv("KEYFEAT_OUTPUT", "/tmp/env.csv")
			cfg, err := config.Load(ctx)
			So(err, ShouldBeNil)
			So(cfg.OutputPath, ShouldEqual, "/tmp/env.csv")
		})
	})

	Convey("Given an invalid worker count", t, func() {
		t.Setenv("KEYFEAT_WORKER_COUNT", "0")

		_, err := config.Load(ctx)
		So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
	})

	Convey("Given an empty events path", t, func() {
		t.Setenv("KEYFEAT_EVENTS", "")

		_, err := config.Load(ctx)
		So(errors.Is(err, config.ErrInvalidConfig), ShouldBeTrue)
	})

	Convey("Given a config file that does not exist", t, func() {
		t.Setenv("KEYFEAT_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := config.Load(ctx)
		So(errors.Is(err, config.ErrLoadConfig), ShouldBeTrue)
	})
}
