// Package metrics provides Prometheus metrics for the feature aggregation
// pipeline.
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus collectors for the aggregator.
type Manager struct {
	namespace string
	registry  prometheus.Registerer
	buckets   []float64

	// Throughput
	runsTotal        prometheus.Counter
	eventsProcessed  prometheus.Counter
	groupsAggregated prometheus.Counter

	// Latency
	groupDuration prometheus.Histogram
	runDuration   prometheus.Histogram

	// Quality
	validationErrors *prometheus.CounterVec
	labelJoinHits    prometheus.Counter
	labelJoinMisses  prometheus.Counter
}

// NewManager builds a Manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "keyfeat",
		registry:  prometheus.DefaultRegisterer,
		buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(m)
	}

	factory := promauto.With(m.registry)

	m.runsTotal = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "runs_total",
		Help:      "Number of aggregation runs started.",
	})
	m.eventsProcessed = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "events_processed_total",
		Help:      "Number of input events consumed by aggregation runs.",
	})
	m.groupsAggregated = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "groups_aggregated_total",
		Help:      "Number of entity groups reduced to feature rows.",
	})
	m.groupDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "group_aggregation_seconds",
		Help:      "Time spent aggregating a single entity group.",
		Buckets:   m.buckets,
	})
	m.runDuration = factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "run_seconds",
		Help:      "End-to-end duration of an aggregation run.",
		Buckets:   m.buckets,
	})
	m.validationErrors = factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "validation_errors_total",
		Help:      "Validation failures by kind.",
	}, []string{"kind"})
	m.labelJoinHits = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "label_join_hits_total",
		Help:      "Feature rows that matched a label.",
	})
	m.labelJoinMisses = factory.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "label_join_misses_total",
		Help:      "Feature rows with no matching label.",
	})

	return m
}

// IncRun records the start of an aggregation run.
func (m *Manager) IncRun() { m.runsTotal.Inc() }

// AddEventsProcessed records n consumed input events.
func (m *Manager) AddEventsProcessed(n int) { m.eventsProcessed.Add(float64(n)) }

// IncGroupsAggregated records one reduced entity group.
func (m *Manager) IncGroupsAggregated() { m.groupsAggregated.Inc() }

// ObserveGroupDuration records the duration of one group reduction.
func (m *Manager) ObserveGroupDuration(d time.Duration) {
	m.groupDuration.Observe(d.Seconds())
}

// ObserveRunDuration records the end-to-end duration of a run.
func (m *Manager) ObserveRunDuration(d time.Duration) {
	m.runDuration.Observe(d.Seconds())
}

// IncValidationError records a validation failure of the given kind.
func (m *Manager) IncValidationError(kind string) {
	m.validationErrors.WithLabelValues(kind).Inc()
}

// IncLabelJoinHit records a feature row that matched a label.
func (m *Manager) IncLabelJoinHit() { m.labelJoinHits.Inc() }

// IncLabelJoinMiss records a feature row with no matching label.
func (m *Manager) IncLabelJoinMiss() { m.labelJoinMisses.Inc() }

var (
	global     *Manager
	globalOnce sync.Once
)

// Get returns the global metrics manager, creating it on first use.
func Get() *Manager {
	globalOnce.Do(func() {
		global = NewManager()
	})
	return global
}
