package main

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/schemas"
	"github.com/jonathan/resume-screener/internal/types"
)

type extractOptions struct {
	id     string
	name   string
	output string
}

func newExtractCmd(root *rootOptions) *cobra.Command {
	opts := &extractOptions{}

	cmd := &cobra.Command{
		Use:   "extract <resume-file>",
		Short: "Extract a candidate profile from a résumé",
		Long:  "Reads a .txt, .md, .html, .pdf or .docx résumé and writes the extracted skills, education and experience as candidate JSON.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), root, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			candidate, err := a.extractFile(cmd.Context(), args[0], opts.id, opts.name)
			if err != nil {
				return err
			}
			if a.verbose {
				a.printer.PrintCandidateProfile(candidate.ID, &candidate.Profile)
			}
			if err := schemas.Validate(schemas.CandidateProfile, mustJSON(candidate.Profile)); err != nil {
				a.log.Warn("profile validation failed", zap.Error(err))
			}
			return writeOutput(a.log, cmd.OutOrStdout(), opts.output, schemas.Candidates, candidateSet{Candidates: []candidateInput{toInput(*candidate)}})
		},
	}

	cmd.Flags().StringVar(&opts.id, "id", "", "Candidate ID (default: random UUID)")
	cmd.Flags().StringVar(&opts.name, "name", "", "Candidate display name (default: file name)")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "Path to output candidates JSON file (default: stdout)")
	return cmd
}

// extractFile reads one résumé and builds a candidate from it. Experience years default
// to the first experience entry that states a duration.
func (a *app) extractFile(ctx context.Context, path, id, name string) (*types.Candidate, error) {
	if id == "" {
		id = uuid.NewString()
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	log := logger.WithCandidate(a.log, id).With(zap.String("path", path))

	text, err := ingestion.ReadDocument(path)
	if err != nil {
		log.Warn("résumé could not be read", zap.String(logger.FieldStage, string(extraction.StageDecode)), zap.Error(err))
		return nil, &extraction.ExtractionError{Stage: extraction.StageDecode, Message: "failed to read résumé", Cause: err}
	}

	profile, err := a.extractor.Extract(ctx, text)
	if err != nil {
		log.Warn("extraction failed", zap.Error(err))
		return nil, err
	}
	log.Debug("profile extracted",
		zap.Int("skills", len(profile.Skills)),
		zap.Int("education", len(profile.Education)),
		zap.Int("experience", len(profile.Experience)),
	)

	return &types.Candidate{
		ID:              id,
		DisplayName:     name,
		ExperienceYears: profile.FirstExperienceYears(),
		Profile:         *profile,
	}, nil
}
