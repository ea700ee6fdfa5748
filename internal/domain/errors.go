package domain

import (
	"errors"
	"fmt"
)

// ErrNoMatch is returned when a currency filter matches no row. Handlers map
// it to a not-found response rather than a server error.
var ErrNoMatch = errors.New("no matching quote")

// FetchError covers transport, navigation and non-2xx failures against an
// upstream. Callers do not distinguish among those causes beyond logging.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ExtractionError reports a required fragment missing from a page where the
// source treats its absence as fatal.
type ExtractionError struct {
	Source string
	Field  string
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: required fragment %q not found", e.Source, e.Field)
}

// NormalizationError reports text that failed strict parsing into its target
// type. A malformed number is never passed through silently.
type NormalizationError struct {
	Input string
	Err   error
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("cannot normalize %q: %v", e.Input, e.Err)
}

func (e *NormalizationError) Unwrap() error { return e.Err }
