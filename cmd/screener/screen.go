package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-screener/internal/types"
)

type screenOptions struct {
	jobPath string
	output  string
	top     int
}

func newScreenCmd(root *rootOptions) *cobra.Command {
	opts := &screenOptions{}

	cmd := &cobra.Command{
		Use:   "screen <resume-file>...",
		Short: "Extract résumés and rank them against a job profile",
		Long:  "Extracts a profile from every résumé file, then ranks the candidates against a JobProfile JSON. Résumés that cannot be extracted are reported as failed results.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := loadJob(opts.jobPath)
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			results, err := a.screen(cmd, job, args)
			if err != nil {
				return err
			}
			return a.emitResults(cmd, results, opts.output, opts.top)
		},
	}

	cmd.Flags().StringVarP(&opts.jobPath, "job", "j", "", "Path to input JobProfile JSON file (required)")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "Path to output RankedResults JSON file (default: stdout)")
	cmd.Flags().IntVar(&opts.top, "top", 0, "Keep only the top N results (0 keeps all)")

	mustMarkRequired(cmd, "job")
	return cmd
}

// screen extracts every résumé on the worker pool, ranks the extracted candidates and
// merges extraction failures back in. Failed entries of either kind follow all scored
// entries in the order their files were given.
func (a *app) screen(cmd *cobra.Command, job *types.JobProfile, paths []string) (*types.RankedResults, error) {
	ctx := cmd.Context()

	extracted := make([]*types.Candidate, len(paths))
	extractErrs := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(a.cfg.Workers)
	for i, path := range paths {
		i, path := i, path // per-iteration copies for Go < 1.22
		g.Go(func() error {
			extracted[i], extractErrs[i] = a.extractFile(ctx, path, fmt.Sprintf("resume-%d", i+1), "")
			return nil
		})
	}
	// Workers never return errors; failures are recorded per file.
	_ = g.Wait()

	candidates := make([]types.Candidate, 0, len(paths))
	for _, c := range extracted {
		if c != nil {
			candidates = append(candidates, *c)
		}
	}

	ranked, err := a.matcher.Rank(ctx, job, candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to rank candidates: %w", err)
	}

	rankFailures := make(map[string]types.MatchResult)
	merged := make([]types.MatchResult, 0, len(paths))
	for _, r := range ranked.Ranked {
		if r.Failed {
			rankFailures[r.CandidateID] = r
			continue
		}
		merged = append(merged, r)
	}

	for i, path := range paths {
		if extractErrs[i] != nil {
			merged = append(merged, types.MatchResult{
				CandidateID:   fmt.Sprintf("resume-%d", i+1),
				DisplayName:   path,
				MatchedSkills: []string{},
				Failed:        true,
				Error:         extractErrs[i].Error(),
			})
			continue
		}
		if r, ok := rankFailures[extracted[i].ID]; ok {
			merged = append(merged, r)
		}
	}

	if n := countExtractFailures(extractErrs); n > 0 {
		a.log.Warn("some résumés could not be extracted", zap.Int("failed", n), zap.Int("total", len(paths)))
	}
	return &types.RankedResults{JobID: job.ID, Ranked: merged}, nil
}

func countExtractFailures(errs []error) int {
	n := 0
	for _, err := range errs {
		if err != nil {
			n++
		}
	}
	return n
}
