package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/types"
)

const testCandidates = `{"candidates": [
  {"id": "weak", "display_name": "Sam", "profile": {
    "skills": ["java"], "education": [],
    "experience": [{"years": 1, "company": "Initech", "source_sentence": "1 year of experience at Initech."}],
    "raw_text": "Java developer. 1 year of experience at Initech."}},
  {"id": "strong", "display_name": "Jane", "experience_years": 6, "profile": {
    "skills": ["python", "sql", "docker"],
    "education": [{"degree_level": "master", "source_sentence": "Master of Science."}],
    "raw_text": "Senior engineer building Python services on SQL databases with Docker."}}
]}`

func decodeResults(t *testing.T, stdout string) types.RankedResults {
	t.Helper()
	require.NoError(t, schemas.Validate(schemas.RankedResults, []byte(stdout)))

	var results types.RankedResults
	require.NoError(t, json.Unmarshal([]byte(stdout), &results))
	return results
}

func TestRankCommand(t *testing.T) {
	dir := t.TempDir()
	job := writeFile(t, dir, "job.json", testJob)
	candidates := writeFile(t, dir, "candidates.json", testCandidates)

	stdout, _, err := runCLI(t, "rank", "--job", job, "--candidates", candidates)
	require.NoError(t, err)

	results := decodeResults(t, stdout)
	assert.Equal(t, "job-1", results.JobID)
	require.Len(t, results.Ranked, 2)

	top := results.Ranked[0]
	assert.Equal(t, "strong", top.CandidateID)
	require.NotNil(t, top.Breakdown)
	assert.Equal(t, 1.0, top.Breakdown.SkillMatch)
	assert.Equal(t, 1.0, top.Breakdown.ExperienceMatch)
	assert.Equal(t, 1.0, top.Breakdown.EducationMatch)
	assert.Equal(t, []string{"docker", "python", "sql"}, top.MatchedSkills)

	second := results.Ranked[1]
	assert.Equal(t, "weak", second.CandidateID)
	require.NotNil(t, second.Breakdown)
	// experience years default to the profile's first stated duration
	assert.InDelta(t, 0.2, second.Breakdown.ExperienceMatch, 1e-9)
	assert.Equal(t, 0.0, second.Breakdown.EducationMatch)
	assert.Greater(t, *top.Score, *second.Score)
}

func TestRankCommand_Top(t *testing.T) {
	dir := t.TempDir()
	job := writeFile(t, dir, "job.json", testJob)
	candidates := writeFile(t, dir, "candidates.json", testCandidates)

	stdout, stderr, err := runCLI(t, "--verbose", "rank", "-j", job, "-c", candidates, "--top", "1")
	require.NoError(t, err)

	results := decodeResults(t, stdout)
	require.Len(t, results.Ranked, 1)
	assert.Equal(t, "strong", results.Ranked[0].CandidateID)
	assert.Contains(t, stderr, "TOP RANKED CANDIDATES")
}

func TestRankCommand_EmptyCandidates(t *testing.T) {
	dir := t.TempDir()
	job := writeFile(t, dir, "job.json", testJob)
	candidates := writeFile(t, dir, "candidates.json", `{"candidates": []}`)

	stdout, _, err := runCLI(t, "rank", "--job", job, "--candidates", candidates)
	require.NoError(t, err)
	assert.Empty(t, decodeResults(t, stdout).Ranked)
}

func TestRankCommand_InvalidJob(t *testing.T) {
	dir := t.TempDir()
	job := writeFile(t, dir, "job.json", `{"id": "job-1", "required_skills": "python", "description_text": ""}`)
	candidates := writeFile(t, dir, "candidates.json", testCandidates)

	_, _, err := runCLI(t, "rank", "--job", job, "--candidates", candidates)
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestRankCommand_DuplicateCandidate(t *testing.T) {
	dir := t.TempDir()
	job := writeFile(t, dir, "job.json", testJob)
	candidates := writeFile(t, dir, "candidates.json", `{"candidates": [
		{"id": "a", "profile": {"raw_text": "x"}},
		{"id": "a", "profile": {"raw_text": "y"}}
	]}`)

	_, _, err := runCLI(t, "rank", "--job", job, "--candidates", candidates)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate candidate id")
}

func TestRankCommand_MissingFlags(t *testing.T) {
	_, _, err := runCLI(t, "rank")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required flag")
}

func TestCandidateInput_ToCandidate(t *testing.T) {
	years := 2.5
	profileYears := 4.0

	explicit := candidateInput{ID: "a", ExperienceYears: &years}
	assert.Equal(t, 2.5, explicit.toCandidate().ExperienceYears)

	derived := candidateInput{ID: "b", Profile: types.CandidateProfile{
		Experience: []types.ExperienceEntry{{SourceSentence: "no years"}, {Years: &profileYears}},
	}}
	c := derived.toCandidate()
	assert.Equal(t, 4.0, c.ExperienceYears)
	assert.NotNil(t, c.Profile.Skills)
	assert.NotNil(t, c.Profile.Education)
}

func TestRankCommand_EducationLevelSpelling(t *testing.T) {
	dir := t.TempDir()
	job := writeFile(t, dir, "job.json", `{
  "id": "job-2",
  "required_skills": ["python"],
  "required_education_level": "M.S.",
  "description_text": "Python engineer."
}`)
	candidates := writeFile(t, dir, "candidates.json", testCandidates)

	stdout, _, err := runCLI(t, "rank", "--job", job, "--candidates", candidates)
	require.NoError(t, err)

	results := decodeResults(t, stdout)
	require.Len(t, results.Ranked, 2)
	assert.Equal(t, "strong", results.Ranked[0].CandidateID)
	assert.Equal(t, 1.0, results.Ranked[0].Breakdown.EducationMatch)
	assert.Equal(t, 0.0, results.Ranked[1].Breakdown.EducationMatch)
}

func TestRankCommand_UnknownEducationLevel(t *testing.T) {
	dir := t.TempDir()
	job := writeFile(t, dir, "job.json", `{"id": "job-3", "required_skills": [], "required_education_level": "diploma", "description_text": ""}`)
	candidates := writeFile(t, dir, "candidates.json", testCandidates)

	_, _, err := runCLI(t, "rank", "--job", job, "--candidates", candidates)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid job profile")
}
