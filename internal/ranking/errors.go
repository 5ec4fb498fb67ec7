package ranking

import "fmt"

// ScoringError reports that one candidate could not be scored
type ScoringError struct {
	CandidateID string
	Message     string
	Cause       error
}

func (e *ScoringError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("scoring candidate %s failed: %s: %v", e.CandidateID, e.Message, e.Cause)
	}
	return fmt.Sprintf("scoring candidate %s failed: %s", e.CandidateID, e.Message)
}

func (e *ScoringError) Unwrap() error {
	return e.Cause
}
