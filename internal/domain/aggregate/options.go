package aggregate

import (
	"github.com/okian/keyfeat/pkg/logger"
	"github.com/okian/keyfeat/pkg/metrics"
)

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithWorkerCount sets how many goroutines share the entity groups.
// Groups are fully independent, so the count only affects throughput,
// never the output. A count of 1 runs sequentially.
func WithWorkerCount(count int) Option {
	return func(a *Aggregator) {
		if count > 0 {
			a.workerCount = count
		}
	}
}

// WithLabels injects the optional label lookup; when set, Aggregate
// left-joins feature rows with it.
func WithLabels(lookup LabelLookup) Option {
	return func(a *Aggregator) {
		a.lookup = lookup
	}
}

// WithLogger sets a custom logger for the aggregator.
func WithLogger(l logger.Logger) Option {
	return func(a *Aggregator) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMetrics sets a custom metrics manager, mainly for tests.
func WithMetrics(m *metrics.Manager) Option {
	return func(a *Aggregator) {
		if m != nil {
			a.metrics = m
		}
	}
}
