// Command gen-events produces synthetic keystroke-log datasets (events plus
// matching labels) for exercising the aggregation pipeline.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/okian/keyfeat/internal/adapters/dataset"
	"github.com/okian/keyfeat/internal/synth"
	"github.com/okian/keyfeat/pkg/logger"
)

// Default generation parameters.
const (
	defaultEntities = 1000
	defaultMin      = 200
	defaultMax      = 3000
	defaultSeed     = 42
)

func main() {
	var (
		entities = flag.Int("entities", defaultEntities, "Number of distinct entity ids")
		minPer   = flag.Int("min", defaultMin, "Minimum events per entity")
		maxPer   = flag.Int("max", defaultMax, "Maximum events per entity")
		seed     = flag.Int64("seed", defaultSeed, "RNG seed for reproducible datasets")
		workers  = flag.Int("workers", runtime.NumCPU(), "Number of generator goroutines")
		events   = flag.String("events", "events.csv", "Output path for the event table")
		labels   = flag.String("labels", "labels.csv", "Output path for the label table")
	)
	flag.Parse()

	os.Exit(run(*entities, *minPer, *maxPer, *seed, *workers, *events, *labels))
}

func run(entities, minPer, maxPer int, seed int64, workers int, eventsPath, labelsPath string) int {
	if err := logger.Init(os.Stdout); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return 1
	}
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	evs, lbls, err := synth.Generate(ctx, synth.Config{
		Entities:     entities,
		MinPerEntity: minPer,
		MaxPerEntity: maxPer,
		Seed:         seed,
		Workers:      workers,
	})
	if err != nil {
		log.Error(ctx, "generation failed", logger.Error(err))
		return 1
	}
	log.Info(ctx, "dataset generated",
		logger.Int("entities", entities),
		logger.Int("events", len(evs)),
		logger.Duration("elapsed", time.Since(start)),
	)

	if err := dataset.WriteEvents(eventsPath, evs); err != nil {
		log.Error(ctx, "failed to write events", logger.String("path", eventsPath), logger.Error(err))
		return 1
	}
	if err := dataset.WriteLabels(labelsPath, lbls); err != nil {
		log.Error(ctx, "failed to write labels", logger.String("path", labelsPath), logger.Error(err))
		return 1
	}
	log.Info(ctx, "dataset written",
		logger.String("events", eventsPath), logger.String("labels", labelsPath))
	return 0
}
