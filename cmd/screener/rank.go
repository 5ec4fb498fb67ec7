package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/types"
)

// candidateSet is the on-disk form of the candidates ranked by the rank command
type candidateSet struct {
	Candidates []candidateInput `json:"candidates"`
}

// candidateInput is a candidate whose experience years may be left out
type candidateInput struct {
	ID              string                 `json:"id"`
	DisplayName     string                 `json:"display_name,omitempty"`
	ExperienceYears *float64               `json:"experience_years,omitempty"`
	Profile         types.CandidateProfile `json:"profile"`
}

// toCandidate fills in defaults: missing experience years come from the profile and
// missing collections become empty.
func (in candidateInput) toCandidate() types.Candidate {
	profile := in.Profile
	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	if profile.Education == nil {
		profile.Education = []types.EducationEntry{}
	}
	if profile.Experience == nil {
		profile.Experience = []types.ExperienceEntry{}
	}

	years := profile.FirstExperienceYears()
	if in.ExperienceYears != nil {
		years = *in.ExperienceYears
	}
	return types.Candidate{
		ID:              in.ID,
		DisplayName:     in.DisplayName,
		ExperienceYears: years,
		Profile:         profile,
	}
}

func toInput(c types.Candidate) candidateInput {
	years := c.ExperienceYears
	return candidateInput{
		ID:              c.ID,
		DisplayName:     c.DisplayName,
		ExperienceYears: &years,
		Profile:         c.Profile,
	}
}

type rankOptions struct {
	jobPath        string
	candidatesPath string
	output         string
	top            int
}

func newRankCmd(root *rootOptions) *cobra.Command {
	opts := &rankOptions{}

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank extracted candidates against a job profile",
		Long:  "Scores every candidate in a candidates JSON file against a JobProfile JSON and writes RankedResults JSON sorted by descending score.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			job, err := loadJob(opts.jobPath)
			if err != nil {
				return err
			}

			var set candidateSet
			if err := readInput(opts.candidatesPath, schemas.Candidates, &set); err != nil {
				return err
			}
			candidates := make([]types.Candidate, 0, len(set.Candidates))
			seen := make(map[string]bool, len(set.Candidates))
			for _, in := range set.Candidates {
				candidate := in.toCandidate()
				if err := candidate.Validate(); err != nil {
					return err
				}
				if seen[candidate.ID] {
					return fmt.Errorf("duplicate candidate id %q", candidate.ID)
				}
				seen[candidate.ID] = true
				candidates = append(candidates, candidate)
			}

			a, err := newApp(cmd.Context(), root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			results, err := a.matcher.Rank(cmd.Context(), job, candidates)
			if err != nil {
				return fmt.Errorf("failed to rank candidates: %w", err)
			}
			return a.emitResults(cmd, results, opts.output, opts.top)
		},
	}

	cmd.Flags().StringVarP(&opts.jobPath, "job", "j", "", "Path to input JobProfile JSON file (required)")
	cmd.Flags().StringVarP(&opts.candidatesPath, "candidates", "c", "", "Path to input candidates JSON file (required)")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "Path to output RankedResults JSON file (default: stdout)")
	cmd.Flags().IntVar(&opts.top, "top", 0, "Keep only the top N results (0 keeps all)")

	mustMarkRequired(cmd, "job", "candidates")
	return cmd
}

func loadJob(path string) (*types.JobProfile, error) {
	var job types.JobProfile
	if err := readInput(path, schemas.JobProfile, &job); err != nil {
		return nil, err
	}
	job.NormalizeEducationLevel()
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return &job, nil
}

func (a *app) emitResults(cmd *cobra.Command, results *types.RankedResults, output string, top int) error {
	if top > 0 && len(results.Ranked) > top {
		results.Ranked = results.Ranked[:top]
	}
	if a.verbose {
		a.printer.PrintRankedResults(results)
	}
	return writeOutput(a.log, cmd.OutOrStdout(), output, schemas.RankedResults, results)
}

func mustMarkRequired(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
}

func mustJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(fmt.Sprintf("failed to marshal %T: %v", v, err))
	}
	return data
}
