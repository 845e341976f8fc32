// Package labels defines the label lookup interface and its in-memory
// implementation, used for the optional left-outer join of feature rows
// with external training targets.
package labels

import (
	"context"
	"sync"

	"github.com/okian/keyfeat/internal/domain/model"
)

// Lookup provides read access to labels keyed by entity id.
type Lookup interface {
	// Get returns the label for id. The second return is false when the
	// id has no label, which joins as a missing (null) value.
	Get(ctx context.Context, id string) (float64, bool)

	// Count returns the number of distinct labeled ids.
	Count(ctx context.Context) int
}

// InMemoryStore implements Lookup over a plain map.
//
// Duplicate ids in the input follow a last-match-wins policy: rows are
// applied in order and later rows overwrite earlier ones. The policy is
// deterministic and covered by tests; it never duplicates or drops feature
// rows on the join side.
type InMemoryStore struct {
	mu   sync.RWMutex
	byID map[string]float64
}

// NewInMemoryStore builds a store from label rows, applying the
// last-match-wins duplicate policy.
func NewInMemoryStore(rows []model.Label) *InMemoryStore {
	s := &InMemoryStore{byID: make(map[string]float64, len(rows))}
	for _, row := range rows {
		s.byID[row.ID] = row.Score
	}
	return s
}

// Get returns the label for id, or false when id is unlabeled.
func (s *InMemoryStore) Get(ctx context.Context, id string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.byID[id]
	return v, ok
}

// Count returns the number of distinct labeled ids.
func (s *InMemoryStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// Put inserts or overwrites the label for id.
func (s *InMemoryStore) Put(ctx context.Context, id string, score float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[id] = score
}
