package ranking

import (
	"fmt"
	"math"
	"sort"

	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// Weight constants for the composite score
	skillMatchWeight      = 0.30
	experienceMatchWeight = 0.25
	educationMatchWeight  = 0.20
	semanticMatchWeight   = 0.25
)

// DefaultWeights returns the factor weights used by the Matcher.
func DefaultWeights() types.Weights {
	return types.Weights{
		Skills:     skillMatchWeight,
		Experience: experienceMatchWeight,
		Education:  educationMatchWeight,
		Semantic:   semanticMatchWeight,
	}
}

// Composite returns the weighted sum of the breakdown's sub-scores. It is not clamped.
func Composite(b types.Breakdown) float64 {
	return b.Weights.Skills*b.SkillMatch +
		b.Weights.Experience*b.ExperienceMatch +
		b.Weights.Education*b.EducationMatch +
		b.Weights.Semantic*b.SemanticMatch
}

// SkillMatch returns the Jaccard similarity of the normalized skill sets and their sorted
// intersection. The score is 0 when either set is empty.
func SkillMatch(candidateSkills, jobSkills []string) (float64, []string) {
	candidate := skills.NormalizeSet(candidateSkills)
	job := skills.NormalizeSet(jobSkills)
	matched := []string{}
	if len(candidate) == 0 || len(job) == 0 {
		return 0, matched
	}

	inJob := make(map[string]struct{}, len(job))
	for _, s := range job {
		inJob[s] = struct{}{}
	}
	for _, s := range candidate {
		if _, ok := inJob[s]; ok {
			matched = append(matched, s)
		}
	}
	sort.Strings(matched)

	union := len(candidate) + len(job) - len(matched)
	return float64(len(matched)) / float64(union), matched
}

// ExperienceMatch returns candidateYears/requiredYears capped at 1. A requirement of
// zero or less is always fully met.
func ExperienceMatch(candidateYears, requiredYears float64) float64 {
	if requiredYears <= 0 {
		return 1.0
	}
	if candidateYears <= 0 {
		return 0
	}
	return math.Min(candidateYears/requiredYears, 1.0)
}

// CosineSimilarity returns the cosine of the angle between a and b in [-1, 1].
// A zero vector yields 0.
func CosineSimilarity(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("embedding dimensions differ: %d vs %d", len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// Guard against rounding just past the unit interval
	return math.Max(-1, math.Min(1, sim)), nil
}
