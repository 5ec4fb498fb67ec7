package ranking

import "github.com/jonathan/resume-screener/internal/types"

// EducationMatch scores the candidate's highest degree against the required level.
// It is 0 when the job states no requirement or no entry carries a recognized degree.
// Meeting or exceeding the requirement scores 1; otherwise the score is the ratio of ordinals.
func EducationMatch(entries []types.EducationEntry, required types.DegreeLevel) float64 {
	if required == "" {
		return 0
	}
	highest := types.MaxDegreeOrdinal(entries)
	if highest == 0 {
		return 0
	}

	requiredRank := required.Ordinal()
	if highest >= requiredRank {
		return 1.0
	}
	return float64(highest) / float64(requiredRank)
}
