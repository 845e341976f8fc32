// Package aggregate turns a raw event table into one fixed-schema feature
// row per entity id: log-scaled timing statistics plus categorical frequency
// histograms over the activity and text-change vocabularies.
package aggregate

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/keyfeat/internal/domain/histogram"
	"github.com/okian/keyfeat/internal/domain/model"
	"github.com/okian/keyfeat/internal/domain/timing"
	"github.com/okian/keyfeat/internal/domain/vocab"
	"github.com/okian/keyfeat/pkg/logger"
	"github.com/okian/keyfeat/pkg/metrics"
)

// LabelLookup abstracts the optional external label table. The second
// return of Get is false for an unlabeled id, which joins as a missing
// (null) value rather than dropping the row.
type LabelLookup interface {
	Get(ctx context.Context, id string) (float64, bool)
}

// Aggregator reduces grouped events to feature vectors. It holds no mutable
// state across runs and is safe for concurrent use.
type Aggregator struct {
	workerCount int
	lookup      LabelLookup

	activity   *histogram.Histogrammer
	textChange *histogram.Histogrammer

	logger  logger.Logger
	metrics *metrics.Manager
}

// New constructs an Aggregator with default configuration.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		workerCount: runtime.NumCPU(),
		activity:    histogram.New(vocab.ActivityNames(), vocab.BucketActivity),
		textChange:  histogram.New(vocab.TextChangeNames(), vocab.BucketTextChange),
		logger:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.metrics == nil {
		a.metrics = metrics.Get()
	}
	return a
}

// Aggregate partitions events by id, reduces each group to a FeatureVector
// and returns the rows sorted by id. When a label lookup is configured the
// rows are left-joined with it: every row is preserved and unlabeled ids get
// a nil Label. Any validation failure aborts the whole run with no partial
// output.
func (a *Aggregator) Aggregate(ctx context.Context, events []model.Event) (*model.FeatureTable, error) {
	runID := uuid.New().String()
	start := time.Now()
	a.metrics.IncRun()
	a.metrics.AddEventsProcessed(len(events))

	groups, ids := groupByID(events)
	a.logger.Info(ctx, "aggregation run started",
		logger.String("run_id", runID),
		logger.Int("events", len(events)),
		logger.Int("groups", len(ids)),
		logger.Int("workers", a.workerCount),
	)

	rows, err := a.reduceGroups(ctx, groups, ids)
	if err != nil {
		a.logger.Error(ctx, "aggregation run failed",
			logger.String("run_id", runID), logger.Error(err))
		return nil, err
	}

	table := &model.FeatureTable{Rows: rows}
	if a.lookup != nil {
		a.join(ctx, table)
	}

	a.metrics.ObserveRunDuration(time.Since(start))
	a.logger.Info(ctx, "aggregation run finished",
		logger.String("run_id", runID),
		logger.Int("rows", len(table.Rows)),
		logger.Duration("elapsed", time.Since(start)),
	)
	return table, nil
}

// groupByID builds the id -> events multi-map in one pass and returns the
// distinct ids sorted ascending, which fixes the output row order.
func groupByID(events []model.Event) (map[string][]model.Event, []string) {
	groups := make(map[string][]model.Event)
	for _, ev := range events {
		groups[ev.ID] = append(groups[ev.ID], ev)
	}
	ids := make([]string, 0, len(groups))
	for id := range groups {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return groups, ids
}

// reduceGroups fans the independent entity groups out over the worker pool.
// Workers write into disjoint ranges of the result slice, so no locking is
// needed; the first error cancels the remaining work.
func (a *Aggregator) reduceGroups(ctx context.Context, groups map[string][]model.Event, ids []string) ([]model.FeatureVector, error) {
	rows := make([]model.FeatureVector, len(ids))

	workers := a.workerCount
	if workers < 1 {
		workers = 1
	}
	if workers > len(ids) {
		workers = len(ids)
	}
	if workers == 0 {
		return rows, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	perWorker := len(ids) / workers

	for w := 0; w < workers; w++ {
		start := w * perWorker
		end := start + perWorker
		if w == workers-1 {
			end = len(ids)
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					return
				default:
				}
				row, err := a.featurize(ids[i], groups[ids[i]])
				if err != nil {
					errOnce.Do(func() {
						firstErr = fmt.Errorf("group %q: %w", ids[i], err)
						cancel()
					})
					return
				}
				rows[i] = row
			}
		}(start, end)
	}
	wg.Wait()

	if firstErr != nil {
		a.metrics.IncValidationError(errorKind(firstErr))
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

// featurize reduces one entity group to its feature row.
func (a *Aggregator) featurize(id string, group []model.Event) (model.FeatureVector, error) {
	start := time.Now()

	durations := make([]float64, len(group))
	activities := make([]string, len(group))
	textChanges := make([]string, len(group))
	for i, ev := range group {
		durations[i] = ev.ActionTime
		activities[i] = ev.Activity
		textChanges[i] = ev.TextChange
	}

	stats, err := timing.Summarize(durations)
	if err != nil {
		return model.FeatureVector{}, err
	}
	activityFreq, err := a.activity.Frequencies(activities)
	if err != nil {
		return model.FeatureVector{}, err
	}
	textChangeFreq, err := a.textChange.Frequencies(textChanges)
	if err != nil {
		return model.FeatureVector{}, err
	}

	a.metrics.IncGroupsAggregated()
	a.metrics.ObserveGroupDuration(time.Since(start))

	return model.FeatureVector{
		ID:                id,
		ActionTimeMaxLog:  stats.MaxLog,
		ActionTimeMeanLog: stats.MeanLog,
		ActionTimeStdLog:  stats.StdLog,
		ActivityFreq:      activityFreq,
		TextChangeFreq:    textChangeFreq,
	}, nil
}

// join left-joins the feature rows with the configured label lookup.
// Every row is preserved; unlabeled ids keep a nil Label.
func (a *Aggregator) join(ctx context.Context, table *model.FeatureTable) {
	table.Labeled = true
	for i := range table.Rows {
		if v, ok := a.lookup.Get(ctx, table.Rows[i].ID); ok {
			score := v
			table.Rows[i].Label = &score
			a.metrics.IncLabelJoinHit()
		} else {
			a.metrics.IncLabelJoinMiss()
		}
	}
}
