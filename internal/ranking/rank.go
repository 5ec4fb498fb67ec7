package ranking

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/types"
)

// Rank scores every candidate against job on a bounded worker pool and returns them by
// descending score. Ties keep input order. Candidates that fail to score are kept as
// placeholders with Failed set and a nil Score, after all scored candidates.
func (m *Matcher) Rank(ctx context.Context, job *types.JobProfile, candidates []types.Candidate) (*types.RankedResults, error) {
	if job == nil {
		return nil, fmt.Errorf("job profile is required")
	}

	results := make([]types.MatchResult, len(candidates))

	var g errgroup.Group
	g.SetLimit(m.workers)
	for i, candidate := range candidates {
		i, candidate := i, candidate // per-iteration copies for Go < 1.22
		g.Go(func() error {
			log := logger.WithCandidate(m.logger, candidate.ID)

			result, err := m.Score(ctx, job, candidate)
			if err != nil {
				log.Warn("candidate scoring failed", zap.Error(err))
				results[i] = failedResult(candidate, err)
				return nil
			}

			log.Debug("candidate scored", zap.Float64("score", *result.Score))
			results[i] = *result
			return nil
		})
	}
	// Workers never return errors; failures are recorded per candidate.
	_ = g.Wait()

	sortResults(results)

	m.logger.Info("ranking complete",
		zap.String(logger.FieldJobID, job.ID),
		zap.Int("candidates", len(candidates)),
		zap.Int("failed", countFailed(results)),
	)
	return &types.RankedResults{JobID: job.ID, Ranked: results}, nil
}

// sortResults orders scored results by descending score, then failed placeholders.
// The sort is stable so equal scores keep their input order.
func sortResults(results []types.MatchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Failed != b.Failed {
			return !a.Failed
		}
		if a.Failed {
			return false
		}
		return *a.Score > *b.Score
	})
}

func failedResult(candidate types.Candidate, err error) types.MatchResult {
	return types.MatchResult{
		CandidateID:   candidate.ID,
		DisplayName:   candidate.DisplayName,
		MatchedSkills: []string{},
		Failed:        true,
		Error:         err.Error(),
	}
}

func countFailed(results []types.MatchResult) int {
	n := 0
	for _, r := range results {
		if r.Failed {
			n++
		}
	}
	return n
}

// generateNotes creates a brief explanation of the score.
func generateNotes(b types.Breakdown, matchedSkills []string) string {
	var parts []string

	switch {
	case len(matchedSkills) == 0:
		parts = append(parts, "No skill matches")
	case b.SkillMatch >= 0.7:
		parts = append(parts, fmt.Sprintf("Strong skill match (%s)", strings.Join(matchedSkills, ", ")))
	case b.SkillMatch >= 0.4:
		parts = append(parts, fmt.Sprintf("Moderate skill match (%s)", strings.Join(matchedSkills, ", ")))
	default:
		parts = append(parts, fmt.Sprintf("Weak skill match (%s)", strings.Join(matchedSkills, ", ")))
	}

	if b.ExperienceMatch >= 1.0 {
		parts = append(parts, "Meets experience requirement")
	} else {
		parts = append(parts, fmt.Sprintf("Experience at %.0f%% of requirement", b.ExperienceMatch*100))
	}

	switch {
	case b.EducationMatch >= 1.0:
		parts = append(parts, "Meets education requirement")
	case b.EducationMatch > 0:
		parts = append(parts, "Partial education match")
	default:
		parts = append(parts, "No qualifying education found")
	}

	switch {
	case b.SemanticMatch >= 0.7:
		parts = append(parts, "High semantic similarity")
	case b.SemanticMatch < 0:
		parts = append(parts, "Dissimilar description")
	}

	return strings.Join(parts, ". ") + "."
}
