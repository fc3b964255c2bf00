package models

import "fmt"

// LoadError is the single error surface of a feed load: network failure,
// non-success response, malformed JSON, missing items list, or timeout.
// It carries a human-readable message and the attempted source so the
// consumer can render a clean fallback state.
type LoadError struct {
	Source  string
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("loading feed from %s: %s: %v", e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("loading feed from %s: %s", e.Source, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError wraps a load failure with its attempted source.
func NewLoadError(source, message string, err error) *LoadError {
	return &LoadError{Source: source, Message: message, Err: err}
}
