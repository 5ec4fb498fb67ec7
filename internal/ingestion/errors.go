package ingestion

import "fmt"

// DecodeError reports a résumé file that could not be turned into text
type DecodeError struct {
	Path    string
	Format  Format
	Message string
	Cause   error
}

func (e *DecodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("decode error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("decode error: %s: %s", e.Path, e.Message)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
