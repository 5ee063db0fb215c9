package booking

import (
	"fmt"
	"strings"

	"github.com/joaquinperez028/landingPageNahuel-sub003/models"
)

// ValidationError rejects a malformed booking request before any store
// access: past start, wrong duration, unknown class. Not retryable as-is.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid booking request: %s", e.Reason)
}

// SlotUnavailableError means the requested window lost the race: it overlaps
// at least one live reservation. The conflicting windows are echoed back so
// admin tooling can diagnose double-booking attempts. Retryable after a
// fresh availability query.
type SlotUnavailableError struct {
	ResourceClass models.ResourceClass
	Requested     models.TimeWindow
	Conflicting   []models.TimeWindow
}

func (e *SlotUnavailableError) Error() string {
	if len(e.Conflicting) == 0 {
		return fmt.Sprintf("slot %s is no longer available for %s", e.Requested, e.ResourceClass)
	}
	windows := make([]string, len(e.Conflicting))
	for i, w := range e.Conflicting {
		windows[i] = w.String()
	}
	return fmt.Sprintf("slot %s is no longer available for %s: conflicts with %s",
		e.Requested, e.ResourceClass, strings.Join(windows, ", "))
}

// StoreTimeoutError signals transient storage trouble: the admission
// transaction did not finish within its deadline. The outcome is unknown;
// callers should retry with backoff using the same availability query flow.
type StoreTimeoutError struct {
	Op  string
	Err error
}

func (e *StoreTimeoutError) Error() string {
	return fmt.Sprintf("reservation store timed out during %s: %v", e.Op, e.Err)
}

func (e *StoreTimeoutError) Unwrap() error {
	return e.Err
}
