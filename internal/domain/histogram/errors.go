package histogram

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrInvalidBucket = errors.New("bucketer produced a name outside the vocabulary")
)
