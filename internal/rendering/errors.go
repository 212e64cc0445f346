// Package rendering populates a decoded template document with the values
// of a ResumeRecord by literal placeholder substitution.
package rendering

import "fmt"

// TemplateEmptyError indicates the decoded template text was blank.
type TemplateEmptyError struct{}

func (e *TemplateEmptyError) Error() string {
	return "template is empty"
}

// TemplateProcessingError wraps a failure in the decode-then-substitute
// pipeline. The message tells the user to verify the template carries
// valid placeholders.
type TemplateProcessingError struct {
	Cause error
}

func (e *TemplateProcessingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to process template, check that it contains valid placeholders: %v", e.Cause)
	}
	return "failed to process template, check that it contains valid placeholders"
}

func (e *TemplateProcessingError) Unwrap() error {
	return e.Cause
}
