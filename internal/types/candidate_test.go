package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestCandidateProfile_MaxDegreeOrdinal(t *testing.T) {
	profile := &CandidateProfile{
		Education: []EducationEntry{
			{DegreeLevel: DegreeBachelor},
			{DegreeLevel: DegreeNotDetected},
			{DegreeLevel: DegreeMaster},
		},
	}
	assert.Equal(t, 3, profile.MaxDegreeOrdinal())
	assert.Equal(t, 0, NewCandidateProfile("").MaxDegreeOrdinal())
}

func TestCandidateProfile_FirstExperienceYears(t *testing.T) {
	profile := &CandidateProfile{
		Experience: []ExperienceEntry{
			{SourceSentence: "Worked at Acme."},
			{Years: floatPtr(4), SourceSentence: "4 years of experience."},
			{Years: floatPtr(2), SourceSentence: "2 years in role."},
		},
	}
	assert.Equal(t, 4.0, profile.FirstExperienceYears())
	assert.Equal(t, 0.0, NewCandidateProfile("x").FirstExperienceYears())
}

func TestCandidateProfile_EmptyCollectionsMarshalAsArrays(t *testing.T) {
	data, err := json.Marshal(NewCandidateProfile(""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"skills":[],"education":[],"experience":[],"raw_text":""}`, string(data))
}

func TestExperienceEntry_AbsentYearsOmitted(t *testing.T) {
	data, err := json.Marshal(ExperienceEntry{SourceSentence: "Held a position at Acme."})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "years")
}

func TestJobProfile_Validate(t *testing.T) {
	valid := &JobProfile{
		ID:                     "job-1",
		RequiredSkills:         []string{"go", "sql"},
		MinExperienceYears:     3,
		RequiredEducationLevel: DegreeBachelor,
	}
	require.NoError(t, valid.Validate())

	noRequirement := &JobProfile{ID: "job-2"}
	require.NoError(t, noRequirement.Validate())

	negative := &JobProfile{ID: "job-3", MinExperienceYears: -1}
	assert.Error(t, negative.Validate())

	badLevel := &JobProfile{ID: "job-4", RequiredEducationLevel: "diploma"}
	assert.Error(t, badLevel.Validate())

	missingID := &JobProfile{}
	assert.Error(t, missingID.Validate())

	blankSkill := &JobProfile{ID: "job-5", RequiredSkills: []string{"go", ""}}
	assert.Error(t, blankSkill.Validate())
}

func TestMatchResult_FailedPlaceholderJSON(t *testing.T) {
	result := MatchResult{CandidateID: "c1", MatchedSkills: []string{}, Failed: true, Error: "timeout"}
	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{"candidate_id":"c1","score":null,"matched_skills":[],"failed":true,"error":"timeout"}`, string(data))
}

func TestCandidate_Validate(t *testing.T) {
	valid := Candidate{ID: "c1", ExperienceYears: 2, Profile: *NewCandidateProfile("text")}
	require.NoError(t, valid.Validate())

	missingID := Candidate{Profile: *NewCandidateProfile("")}
	assert.Error(t, missingID.Validate())

	negative := Candidate{ID: "c2", ExperienceYears: -1}
	err := negative.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"c2"`)
}

func TestJobProfile_NormalizeEducationLevel(t *testing.T) {
	tests := []struct {
		input    DegreeLevel
		expected DegreeLevel
	}{
		{"B.S.", DegreeBachelor},
		{"MS", DegreeMaster},
		{"Ph.D.", DegreePhD},
		{"none", DegreeNone},
		{"", ""},
		{"diploma", "diploma"},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			job := JobProfile{ID: "j", RequiredEducationLevel: tt.input}
			job.NormalizeEducationLevel()
			assert.Equal(t, tt.expected, job.RequiredEducationLevel)
		})
	}

	unknown := JobProfile{ID: "j", RequiredEducationLevel: "diploma"}
	unknown.NormalizeEducationLevel()
	assert.Error(t, unknown.Validate())
}
