package timing

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidActionTime = errors.New("invalid action_time")
	ErrEmptyGroup        = errors.New("empty group")
)
