package scraper

import (
	"errors"
	"fmt"
)

// ErrWordNotFound is returned when the source site has no page for a word.
// A 404 is a first-class "word unknown" outcome, not a retrieval failure.
var ErrWordNotFound = errors.New("word not found")

// RetrievalError reports a failed page retrieval: a non-404 HTTP status, a
// transport failure, or an unparseable response body.
type RetrievalError struct {
	// URL is the page URL that was requested.
	URL string
	// StatusCode is the HTTP status received, or 0 for transport failures.
	StatusCode int
	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *RetrievalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("retrieve %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("retrieve %s: unexpected status %d", e.URL, e.StatusCode)
}

// Unwrap returns the underlying cause.
func (e *RetrievalError) Unwrap() error {
	return e.Err
}
