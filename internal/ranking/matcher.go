// Package ranking scores candidate profiles against a job profile and ranks them.
package ranking

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/nlp"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// DefaultWorkers is the number of candidates scored concurrently.
	DefaultWorkers = 4
	// DefaultTimeout bounds a single embedding call.
	DefaultTimeout = 30 * time.Second
)

// Matcher computes multi-factor match scores using an embedding service for semantic similarity
type Matcher struct {
	embedder nlp.Embedder
	weights  types.Weights
	workers  int
	timeout  time.Duration
	logger   *zap.Logger
}

// Option configures a Matcher
type Option func(*Matcher)

// WithWorkers sets the worker pool size used by Rank; values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(m *Matcher) {
		if n > 0 {
			m.workers = n
		}
	}
}

// WithTimeout bounds each embedding call; zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(m *Matcher) {
		m.timeout = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(m *Matcher) {
		m.logger = logger.OrNop(l)
	}
}

// NewMatcher creates a Matcher using embedder for the semantic factor.
func NewMatcher(embedder nlp.Embedder, opts ...Option) *Matcher {
	m := &Matcher{
		embedder: embedder,
		weights:  DefaultWeights(),
		workers:  DefaultWorkers,
		timeout:  DefaultTimeout,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Score computes the match of one candidate against job. Both texts are embedded
// fresh on every call. Embedding failures are returned as *ScoringError.
func (m *Matcher) Score(ctx context.Context, job *types.JobProfile, candidate types.Candidate) (*types.MatchResult, error) {
	skillScore, matched := SkillMatch(candidate.Profile.Skills, job.RequiredSkills)
	experienceScore := ExperienceMatch(candidate.ExperienceYears, job.MinExperienceYears)
	educationScore := EducationMatch(candidate.Profile.Education, job.RequiredEducationLevel)

	semanticScore, err := m.semanticMatch(ctx, job.DescriptionText, candidate.Profile.RawText)
	if err != nil {
		return nil, &ScoringError{CandidateID: candidate.ID, Message: "semantic similarity", Cause: err}
	}

	breakdown := types.Breakdown{
		SkillMatch:      skillScore,
		ExperienceMatch: experienceScore,
		EducationMatch:  educationScore,
		SemanticMatch:   semanticScore,
		Weights:         m.weights,
	}
	score := Composite(breakdown)

	return &types.MatchResult{
		CandidateID:   candidate.ID,
		DisplayName:   candidate.DisplayName,
		Score:         &score,
		Breakdown:     &breakdown,
		MatchedSkills: matched,
		Notes:         generateNotes(breakdown, matched),
	}, nil
}

// semanticMatch returns the cosine similarity of the two texts' embeddings.
// Blank text on either side scores 0 without calling the embedder.
func (m *Matcher) semanticMatch(ctx context.Context, jobText, candidateText string) (float64, error) {
	if strings.TrimSpace(jobText) == "" || strings.TrimSpace(candidateText) == "" {
		return 0, nil
	}

	jobVec, err := m.embed(ctx, jobText)
	if err != nil {
		return 0, err
	}
	candidateVec, err := m.embed(ctx, candidateText)
	if err != nil {
		return 0, err
	}
	return CosineSimilarity(jobVec, candidateVec)
}

func (m *Matcher) embed(ctx context.Context, text string) ([]float64, error) {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}
	return m.embedder.Embed(ctx, text)
}
