package extraction

import (
	"errors"
	"fmt"
)

// Stage names the extraction step that failed
type Stage string

const (
	StageDecode  Stage = "decode"
	StageAnalyze Stage = "analyze"
)

// ErrInvalidEncoding is the cause reported for input that is not valid UTF-8.
var ErrInvalidEncoding = errors.New("text is not valid UTF-8")

// ExtractionError reports that a résumé could not be turned into a profile
type ExtractionError struct {
	Stage   Stage
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction failed (%s): %s: %v", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction failed (%s): %s", e.Stage, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
