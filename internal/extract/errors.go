package extract

import "fmt"

// RemoteExtractionError describes a failed model-backed extraction attempt.
// It never escapes the package: Remote catches it and falls back to the
// local heuristics.
type RemoteExtractionError struct {
	Message string
	Cause   error
}

func (e *RemoteExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("remote extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("remote extraction error: %s", e.Message)
}

func (e *RemoteExtractionError) Unwrap() error {
	return e.Cause
}
