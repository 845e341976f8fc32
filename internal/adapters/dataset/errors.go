package dataset

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrMissingColumn is a schema error: a required column is absent.
	ErrMissingColumn = errors.New("missing required column")
	// ErrBadValue is a validation error: a cell cannot be parsed.
	ErrBadValue = errors.New("bad cell value")
)
