// Package synth generates realistic keystroke-log datasets for testing and
// benchmarking the aggregation pipeline.
package synth

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/google/uuid"

	"github.com/okian/keyfeat/internal/domain/model"
)

// Config controls dataset generation.
type Config struct {
	Entities     int   // number of distinct entity ids
	MinPerEntity int   // minimum events per entity
	MaxPerEntity int   // maximum events per entity
	Seed         int64 // rng seed; a fixed seed gives a reproducible dataset
	Workers      int   // concurrent generator goroutines
}

// Raw activity forms as they appear in real logs. Move events carry free-text
// coordinates, so they are minted per event instead.
var rawActivities = []string{
	"Input",
	"Input",
	"Input",
	"Nonproduction",
	"Remove/Cut",
	"Paste",
	"Replace",
}

// Raw text-change codes; "q" is the anonymized alphanumeric edit.
var rawTextChanges = []string{"q", "q", "q", " ", "\n", ".", ","}

// Generate produces Config.Entities groups of events with uuid entity ids.
// Entities are sharded across workers; each worker owns a disjoint range of
// the result, seeded deterministically from Config.Seed.
func Generate(ctx context.Context, cfg Config) ([]model.Event, []model.Label, error) {
	if cfg.Entities <= 0 {
		return nil, nil, fmt.Errorf("entities must be positive, got %d", cfg.Entities)
	}
	if cfg.MinPerEntity <= 0 || cfg.MaxPerEntity < cfg.MinPerEntity {
		return nil, nil, fmt.Errorf("bad events-per-entity range [%d, %d]", cfg.MinPerEntity, cfg.MaxPerEntity)
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > cfg.Entities {
		workers = cfg.Entities
	}

	// Mint ids up front so every entity exists exactly once regardless of
	// how the work is sharded.
	ids := make([]string, cfg.Entities)
	for i := range ids {
		ids[i] = uuid.New().String()
	}

	groups := make([][]model.Event, cfg.Entities)
	scores := make([]float64, cfg.Entities)
	perWorker := cfg.Entities / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * perWorker
		end := start + perWorker
		if w == workers-1 {
			end = cfg.Entities
		}

		wg.Add(1)
		go func(worker, start, end int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(cfg.Seed + int64(worker)))
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					return
				default:
				}
				n := cfg.MinPerEntity + rng.Intn(cfg.MaxPerEntity-cfg.MinPerEntity+1)
				groups[i] = generateGroup(rng, ids[i], n)
				scores[i] = 0.5 + math.Round(rng.Float64()*11)/2 // 0.5..6.0 in 0.5 steps
			}
		}(w, start, end)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("generation cancelled: %w", err)
	}

	var events []model.Event
	labelRows := make([]model.Label, cfg.Entities)
	for i, group := range groups {
		events = append(events, group...)
		labelRows[i] = model.Label{ID: ids[i], Score: scores[i]}
	}
	return events, labelRows, nil
}

// generateGroup produces one entity's events: mostly plain input with the
// occasional paste/move, and heavy-tailed (log-normal) action times.
func generateGroup(rng *rand.Rand, id string, n int) []model.Event {
	group := make([]model.Event, n)
	for i := range group {
		activity := rawActivities[rng.Intn(len(rawActivities))]
		if rng.Float64() < 0.03 {
			activity = fmt.Sprintf("Move From [%d, %d] To [%d, %d]",
				rng.Intn(500), rng.Intn(500), rng.Intn(500), rng.Intn(500))
		}
		group[i] = model.Event{
			ID:         id,
			ActionTime: math.Exp(rng.NormFloat64()*1.2 + 4.5), // ms, heavy-tailed
			Activity:   activity,
			TextChange: rawTextChanges[rng.Intn(len(rawTextChanges))],
		}
	}
	return group
}
