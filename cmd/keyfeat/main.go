// Command keyfeat runs the batch feature aggregation: it loads an event
// table (and optionally a label table), reduces it to one feature row per
// entity id and writes the result back to disk.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/okian/keyfeat/internal/adapters/dataset"
	"github.com/okian/keyfeat/internal/adapters/labels"
	"github.com/okian/keyfeat/internal/config"
	"github.com/okian/keyfeat/internal/domain/aggregate"
	"github.com/okian/keyfeat/pkg/logger"
)

// HTTP server timeout constants for the optional metrics endpoint.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := logger.Init(os.Stdout); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return 1
	}

	// Apply configured log level (fallback to info on invalid input).
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Serve Prometheus metrics while the run is in flight, if configured.
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadTimeout:       readTimeout,
			WriteTimeout:      writeTimeout,
			ReadHeaderTimeout: readHeaderTimeout,
		}
		go func() {
			log.Info(ctx, "serving metrics", logger.String("addr", cfg.MetricsAddr))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Warn(ctx, "metrics server failed", logger.Error(err))
			}
		}()
		defer srv.Close()
	}

	events, err := dataset.ReadEvents(cfg.EventsPath)
	if err != nil {
		log.Error(ctx, "failed to load events",
			logger.String("path", cfg.EventsPath), logger.Error(err))
		return 1
	}
	log.Info(ctx, "events loaded",
		logger.String("path", cfg.EventsPath), logger.Int("rows", len(events)))

	opts := []aggregate.Option{
		aggregate.WithWorkerCount(cfg.WorkerCount),
		aggregate.WithLogger(log.Named("aggregate")),
	}
	if cfg.LabelsPath != "" {
		rows, err := dataset.ReadLabels(cfg.LabelsPath)
		if err != nil {
			log.Error(ctx, "failed to load labels",
				logger.String("path", cfg.LabelsPath), logger.Error(err))
			return 1
		}
		store := labels.NewInMemoryStore(rows)
		log.Info(ctx, "labels loaded",
			logger.String("path", cfg.LabelsPath), logger.Int("ids", store.Count(ctx)))
		opts = append(opts, aggregate.WithLabels(store))
	}

	table, err := aggregate.New(opts...).Aggregate(ctx, events)
	if err != nil {
		log.Error(ctx, "aggregation failed", logger.Error(err))
		return 1
	}

	if err := dataset.WriteFeatures(cfg.OutputPath, table); err != nil {
		log.Error(ctx, "failed to write features",
			logger.String("path", cfg.OutputPath), logger.Error(err))
		return 1
	}
	log.Info(ctx, "features written",
		logger.String("path", cfg.OutputPath), logger.Int("rows", len(table.Rows)))
	return 0
}
