package jobtext

import "fmt"

// ExtractionError represents a failure to parse or extract text from HTML.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job text extraction failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("job text extraction failed: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
