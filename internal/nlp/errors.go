package nlp

import "fmt"

// ResponseError represents a service response that could not be interpreted
type ResponseError struct {
	Message string
	Cause   error
}

func (e *ResponseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid response: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid response: %s", e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.Cause
}
