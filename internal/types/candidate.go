package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// EducationEntry is one education fact found in a résumé
type EducationEntry struct {
	DegreeLevel    DegreeLevel `json:"degree_level"`
	Institution    string      `json:"institution,omitempty"`
	SourceSentence string      `json:"source_sentence"`
}

// ExperienceEntry is one work-history fact found in a résumé
type ExperienceEntry struct {
	Years          *float64 `json:"years,omitempty"`
	Company        string   `json:"company,omitempty"`
	SourceSentence string   `json:"source_sentence"`
}

// CandidateProfile is the structured view of a single résumé
type CandidateProfile struct {
	Skills     []string          `json:"skills"`
	Education  []EducationEntry  `json:"education"`
	Experience []ExperienceEntry `json:"experience"`
	RawText    string            `json:"raw_text"`
}

// NewCandidateProfile returns an empty profile with non-nil collections.
func NewCandidateProfile(rawText string) *CandidateProfile {
	return &CandidateProfile{
		Skills:     []string{},
		Education:  []EducationEntry{},
		Experience: []ExperienceEntry{},
		RawText:    rawText,
	}
}

// MaxDegreeOrdinal returns the highest degree ordinal across education entries.
func (p *CandidateProfile) MaxDegreeOrdinal() int {
	return MaxDegreeOrdinal(p.Education)
}

// FirstExperienceYears returns the years of the first experience entry that has one, or 0.
func (p *CandidateProfile) FirstExperienceYears() float64 {
	for _, entry := range p.Experience {
		if entry.Years != nil {
			return *entry.Years
		}
	}
	return 0
}

// Candidate is a profile submitted for ranking against a job
type Candidate struct {
	ID              string           `json:"id" validate:"required"`
	DisplayName     string           `json:"display_name,omitempty"`
	ExperienceYears float64          `json:"experience_years" validate:"gte=0"`
	Profile         CandidateProfile `json:"profile"`
}

// Validate checks the candidate's struct constraints.
func (c *Candidate) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid candidate %q: %w", c.ID, err)
	}
	return nil
}
