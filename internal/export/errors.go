package export

import "fmt"

// Error wraps any failure in browser launch, page load, or PDF export as
// the single "PDF generation failed" condition surfaced to callers.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("PDF generation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("PDF generation failed: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}
