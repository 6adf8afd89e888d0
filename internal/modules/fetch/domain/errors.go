package domain

import "fmt"

// SnippetLimit bounds how much of a failing response body is kept for
// diagnostics.
const SnippetLimit = 400

// RetrievalError is the failure produced by one fetch attempt. Transport
// errors, timeouts, unexpected statuses and content-kind mismatches all
// surface as one of these so callers can log a single shape.
type RetrievalError struct {
	URL     string
	Kind    ContentKind
	Status  int
	Snippet string
	Err     error
}

func (e *RetrievalError) Error() string {
	msg := fmt.Sprintf("retrieving %s (%s)", e.URL, e.Kind)
	switch {
	case e.Err != nil:
		msg += ": " + e.Err.Error()
	case e.Status != 0:
		msg += fmt.Sprintf(": unexpected status %d", e.Status)
	}
	if e.Snippet != "" {
		msg += fmt.Sprintf(": body %q", e.Snippet)
	}
	return msg
}

func (e *RetrievalError) Unwrap() error { return e.Err }
