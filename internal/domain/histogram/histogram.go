// Package histogram reduces a categorical column to a frequency vector over
// a fixed, ordered vocabulary.
package histogram

import (
	"fmt"
)

// Bucketer is a bucketing rule: it maps a raw categorical value to one name
// of a fixed vocabulary, or fails when the value is out of domain.
type Bucketer func(raw string) (string, error)

// Histogrammer counts bucketed values and normalizes them into frequencies.
// It is immutable after construction and safe for concurrent use.
type Histogrammer struct {
	names  []string
	index  map[string]int
	bucket Bucketer
}

// New builds a Histogrammer over the given vocabulary and bucketing rule.
// The names slice defines both the output order and the set of valid bucket
// results; a Bucketer returning a name outside it is a programming error
// surfaced as ErrInvalidBucket.
func New(names []string, bucket Bucketer) *Histogrammer {
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	return &Histogrammer{names: names, index: index, bucket: bucket}
}

// Len returns the vocabulary size, i.e. the length of every frequency vector.
func (h *Histogrammer) Len() int { return len(h.names) }

// Frequencies buckets every value and returns count/total per vocabulary name,
// in vocabulary order. Names with zero occurrences are explicitly 0.0. For a
// non-empty input the entries are non-negative and sum to 1.
func (h *Histogrammer) Frequencies(values []string) ([]float64, error) {
	counts := make([]int, len(h.names))
	for _, raw := range values {
		name, err := h.bucket(raw)
		if err != nil {
			return nil, fmt.Errorf("bucket value: %w", err)
		}
		i, ok := h.index[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBucket, name)
		}
		counts[i]++
	}

	freqs := make([]float64, len(h.names))
	if len(values) == 0 {
		return freqs, nil
	}
	total := float64(len(values))
	for i, c := range counts {
		freqs[i] = float64(c) / total
	}
	return freqs, nil
}
