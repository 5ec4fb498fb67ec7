// Package types provides type definitions for structured data used throughout the resume-screener system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// JobProfile represents the requirements a candidate is screened against
type JobProfile struct {
	ID                     string      `json:"id" validate:"required"`
	Title                  string      `json:"title,omitempty"`
	RequiredSkills         []string    `json:"required_skills" validate:"dive,required"`
	MinExperienceYears     float64     `json:"min_experience_years" validate:"gte=0"`
	RequiredEducationLevel DegreeLevel `json:"required_education_level,omitempty" validate:"omitempty,oneof=none associate bachelor master phd"`
	DescriptionText        string      `json:"description_text"`
}

// Validate checks the job profile's struct constraints.
func (j *JobProfile) Validate() error {
	if err := validator.New().Struct(j); err != nil {
		return fmt.Errorf("invalid job profile %q: %w", j.ID, err)
	}
	return nil
}

// NormalizeEducationLevel rewrites spellings such as "B.S." or "MS" to their canonical level.
// Unrecognized values are left for Validate to reject.
func (j *JobProfile) NormalizeEducationLevel() {
	if j.RequiredEducationLevel == "" {
		return
	}
	if level := ParseDegreeLevel(string(j.RequiredEducationLevel)); level != DegreeNotDetected {
		j.RequiredEducationLevel = level
	}
}
