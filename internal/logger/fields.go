package logger

import (
	"strings"

	"go.uber.org/zap"
)

const (
	// FieldRunID identifies one CLI invocation.
	FieldRunID = "run_id"
	// FieldCandidateID identifies the candidate being extracted or scored.
	FieldCandidateID = "candidate_id"
	// FieldJobID identifies the job candidates are ranked against.
	FieldJobID = "job_id"
	// FieldStage names the pipeline stage that produced the entry.
	FieldStage = "stage"
	// FieldProvider is the NER or embedding backend in use.
	FieldProvider = "provider"
)

// StringField describes a string-valued structured logging field.
type StringField struct {
	Key   string
	Value string
}

// StringFields converts the provided key/value pairs into zap fields, trimming
// whitespace and omitting entries with empty keys or values.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches the provided fields to the logger, defaulting to a no-op logger when nil.
func WithFields(l *zap.Logger, fields ...zap.Field) *zap.Logger {
	l = OrNop(l)
	if len(fields) == 0 {
		return l
	}
	return l.With(fields...)
}

// WithCandidate scopes a logger to one candidate.
func WithCandidate(l *zap.Logger, candidateID string) *zap.Logger {
	return WithFields(l, StringFields(StringField{Key: FieldCandidateID, Value: candidateID})...)
}
