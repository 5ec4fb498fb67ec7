package types

// Weights are the factor weights used in the composite score
type Weights struct {
	Skills     float64 `json:"skills"`
	Experience float64 `json:"experience"`
	Education  float64 `json:"education"`
	Semantic   float64 `json:"semantic"`
}

// Breakdown holds the per-factor sub-scores behind a composite score
type Breakdown struct {
	SkillMatch      float64 `json:"skill_match"`
	ExperienceMatch float64 `json:"experience_match"`
	EducationMatch  float64 `json:"education_match"`
	SemanticMatch   float64 `json:"semantic_match"`
	Weights         Weights `json:"weights"`
}

// MatchResult is the scored outcome for one candidate.
// Score is nil when scoring failed; Failed and Error describe why.
type MatchResult struct {
	CandidateID   string     `json:"candidate_id"`
	DisplayName   string     `json:"display_name,omitempty"`
	Score         *float64   `json:"score"`
	Breakdown     *Breakdown `json:"breakdown,omitempty"`
	MatchedSkills []string   `json:"matched_skills"`
	Notes         string     `json:"notes,omitempty"`
	Failed        bool       `json:"failed,omitempty"`
	Error         string     `json:"error,omitempty"`
}

// RankedResults is the ranked shortlist for one job
type RankedResults struct {
	JobID  string        `json:"job_id"`
	Ranked []MatchResult `json:"ranked"`
}
