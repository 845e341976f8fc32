package aggregate

import (
	"errors"

	"github.com/okian/keyfeat/internal/domain/timing"
	"github.com/okian/keyfeat/internal/domain/vocab"
)

// errorKind classifies a validation failure for the metrics counter.
func errorKind(err error) string {
	switch {
	case errors.Is(err, timing.ErrInvalidActionTime):
		return "action_time"
	case errors.Is(err, vocab.ErrUnknownActivity):
		return "activity"
	case errors.Is(err, timing.ErrEmptyGroup):
		return "empty_group"
	default:
		return "other"
	}
}
