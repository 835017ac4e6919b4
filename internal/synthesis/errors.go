package synthesis

import "fmt"

// LLMError represents a failed call to the LLM collaborator, with the
// upstream message preserved for the 500-class response body.
type LLMError struct {
	Message string
	Cause   error
}

func (e *LLMError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("LLM call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("LLM call failed: %s", e.Message)
}

func (e *LLMError) Unwrap() error {
	return e.Cause
}

// ContentError represents an LLM response that is not parseable as
// brochure content JSON. It is surfaced, not retried or repaired.
type ContentError struct {
	Message string
	Cause   error
}

func (e *ContentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("malformed brochure content: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("malformed brochure content: %s", e.Message)
}

func (e *ContentError) Unwrap() error {
	return e.Cause
}
