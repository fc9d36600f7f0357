package domain

import (
	"fmt"
	"time"
)

// FetchError reports a failed provider round-trip: the request could not be
// sent, the provider answered with an error, or the payload did not decode.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *FetchError) Unwrap() error { return e.Err }

// InvalidRangeError reports a malformed date or a start date after the end
// date. It is raised before any network call.
type InvalidRangeError struct {
	From time.Time
	To   time.Time
	Raw  string
}

func (e *InvalidRangeError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("invalid date %q", e.Raw)
	}
	return fmt.Sprintf("invalid range: start %s after end %s",
		e.From.Format(DateLayout), e.To.Format(DateLayout))
}
