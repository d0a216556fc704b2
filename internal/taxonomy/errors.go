package taxonomy

import "fmt"

// TableError represents an invalid taxonomy table caught at compilation.
type TableError struct {
	Table   string
	Message string
}

func (e *TableError) Error() string {
	return fmt.Sprintf("invalid %s table: %s", e.Table, e.Message)
}

// OverlayError represents a taxonomy overlay file that failed to load or
// validate against the schema.
type OverlayError struct {
	Path    string
	Message string
	Cause   error
}

func (e *OverlayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("taxonomy overlay %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("taxonomy overlay %s: %s", e.Path, e.Message)
}

func (e *OverlayError) Unwrap() error {
	return e.Cause
}
