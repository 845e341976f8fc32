package vocab

import (
	"errors"
	"fmt"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrUnknownActivity = errors.New("unknown activity value")
)

func wrapUnknownActivity(raw string) error {
	return fmt.Errorf("%w: %q", ErrUnknownActivity, raw)
}
