// Package extraction turns free-text résumés into structured candidate profiles.
package extraction

import (
	"context"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/nlp"
	"github.com/jonathan/resume-screener/internal/types"
)

const (
	// DefaultTimeout bounds a single call to the entity recognizer.
	DefaultTimeout = 30 * time.Second

	// maxPlausibleYears rejects date entities such as "2019" read as a year count.
	maxPlausibleYears = 60
)

// Extractor derives skills, education and experience from résumé text
type Extractor struct {
	recognizer nlp.EntityRecognizer
	vocab      *Vocabulary
	logger     *zap.Logger
	timeout    time.Duration
}

// Option configures an Extractor
type Option func(*Extractor)

// WithVocabulary replaces the built-in vocabulary.
func WithVocabulary(v *Vocabulary) Option {
	return func(e *Extractor) {
		if v != nil {
			e.vocab = v
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger.OrNop(l)
	}
}

// WithTimeout bounds each recognizer call; zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(e *Extractor) {
		e.timeout = d
	}
}

// NewExtractor creates an Extractor using recognizer for entity tagging.
func NewExtractor(recognizer nlp.EntityRecognizer, opts ...Option) *Extractor {
	e := &Extractor{
		recognizer: recognizer,
		vocab:      DefaultVocabulary(),
		logger:     zap.NewNop(),
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// document is text analyzed once and shared by the sentence-level extractors
type document struct {
	sentences []Sentence
	entities  []nlp.Entity
}

// Extract builds a full profile from text with a single recognizer call.
// Blank text yields an empty profile without calling the recognizer.
func (e *Extractor) Extract(ctx context.Context, text string) (*types.CandidateProfile, error) {
	if err := checkEncoding(text); err != nil {
		return nil, err
	}

	profile := types.NewCandidateProfile(text)
	if strings.TrimSpace(text) == "" {
		return profile, nil
	}

	doc, err := e.analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	profile.Skills = e.ExtractSkills(text)
	profile.Education = e.educationFrom(doc)
	profile.Experience = e.experienceFrom(doc)

	e.logger.Debug("profile extracted",
		zap.Int("skills", len(profile.Skills)),
		zap.Int("education", len(profile.Education)),
		zap.Int("experience", len(profile.Experience)),
		zap.Int("entities", len(doc.entities)),
	)
	return profile, nil
}

// ExtractSkills returns the sorted vocabulary skills mentioned in text, each once.
func (e *Extractor) ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	seen := make(map[string]struct{})
	found := []string{}

	record := func(canonical string) {
		if _, ok := seen[canonical]; ok {
			return
		}
		seen[canonical] = struct{}{}
		found = append(found, canonical)
	}

	for _, skill := range e.vocab.Skills {
		if findToken(lower, skill, MatchWord) >= 0 {
			record(resolveAlias(skill, e.vocab.Aliases))
		}
	}
	for alias, canonical := range e.vocab.Aliases {
		if findToken(lower, alias, MatchWord) >= 0 {
			record(canonical)
		}
	}

	sort.Strings(found)
	return found
}

// ExtractEducation returns one entry per sentence mentioning an education keyword.
func (e *Extractor) ExtractEducation(ctx context.Context, text string) ([]types.EducationEntry, error) {
	doc, err := e.prepare(ctx, text)
	if err != nil || doc == nil {
		return []types.EducationEntry{}, err
	}
	return e.educationFrom(doc), nil
}

// ExtractExperience returns one entry per sentence mentioning a work-history keyword.
func (e *Extractor) ExtractExperience(ctx context.Context, text string) ([]types.ExperienceEntry, error) {
	doc, err := e.prepare(ctx, text)
	if err != nil || doc == nil {
		return []types.ExperienceEntry{}, err
	}
	return e.experienceFrom(doc), nil
}

// prepare validates and analyzes text; it returns a nil document for blank input.
func (e *Extractor) prepare(ctx context.Context, text string) (*document, error) {
	if err := checkEncoding(text); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	return e.analyze(ctx, text)
}

func (e *Extractor) analyze(ctx context.Context, text string) (*document, error) {
	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	start := time.Now()
	entities, err := e.recognizer.Analyze(ctx, text)
	if err != nil {
		e.logger.Warn("entity recognition failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		return nil, &ExtractionError{Stage: StageAnalyze, Message: "entity recognition failed", Cause: err}
	}

	valid := nlp.ValidSpans(text, entities)
	if dropped := len(entities) - len(valid); dropped > 0 {
		e.logger.Debug("discarded entities with invalid spans", zap.Int("dropped", dropped))
	}

	return &document{
		sentences: SplitSentences(text),
		entities:  valid,
	}, nil
}

func (e *Extractor) educationFrom(doc *document) []types.EducationEntry {
	keywords, mode := e.vocab.Keywords(EntryEducation)
	entries := []types.EducationEntry{}

	for _, sent := range doc.sentences {
		lower := strings.ToLower(sent.Text)
		if !containsAny(lower, keywords, mode) {
			continue
		}
		entry := types.EducationEntry{
			DegreeLevel:    e.degreeIn(lower),
			SourceSentence: sent.Text,
		}
		if ent, ok := doc.firstEntity(sent, nlp.LabelOrganization, nlp.LabelPlace); ok {
			entry.Institution = ent.Text
		}
		entries = append(entries, entry)
	}
	return entries
}

func (e *Extractor) experienceFrom(doc *document) []types.ExperienceEntry {
	keywords, mode := e.vocab.Keywords(EntryExperience)
	entries := []types.ExperienceEntry{}

	for _, sent := range doc.sentences {
		if !containsAny(strings.ToLower(sent.Text), keywords, mode) {
			continue
		}
		entry := types.ExperienceEntry{SourceSentence: sent.Text}
		for _, ent := range doc.entitiesIn(sent) {
			if ent.Label != nlp.LabelDate {
				continue
			}
			if years, ok := parseYears(ent.Text); ok {
				entry.Years = &years
				break
			}
		}
		if ent, ok := doc.firstEntity(sent, nlp.LabelOrganization); ok {
			entry.Company = ent.Text
		}
		entries = append(entries, entry)
	}
	return entries
}

// degreeIn returns the level of the earliest degree token in a lowercased sentence.
func (e *Extractor) degreeIn(lower string) types.DegreeLevel {
	level := types.DegreeNotDetected
	best := -1
	for _, degree := range e.vocab.Degrees {
		idx := findToken(lower, degree.Token, MatchPlural)
		if idx < 0 {
			continue
		}
		if best < 0 || idx < best {
			best = idx
			level = degree.Level
		}
	}
	return level
}

// entitiesIn returns the entities lying entirely inside sent, in order.
func (d *document) entitiesIn(sent Sentence) []nlp.Entity {
	var out []nlp.Entity
	for _, ent := range d.entities {
		if ent.Start >= sent.Start && ent.End <= sent.End {
			out = append(out, ent)
		}
	}
	return out
}

func (d *document) firstEntity(sent Sentence, labels ...nlp.Label) (nlp.Entity, bool) {
	for _, ent := range d.entitiesIn(sent) {
		for _, label := range labels {
			if ent.Label == label {
				return ent, true
			}
		}
	}
	return nlp.Entity{}, false
}

// parseYears reads a year count from the leading token of a date expression.
func parseYears(text string) (float64, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return 0, false
	}
	token := strings.TrimRight(fields[0], "+")
	years, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(years) || years < 0 || years > maxPlausibleYears {
		return 0, false
	}
	return years, true
}

func resolveAlias(token string, aliases map[string]string) string {
	if canonical, ok := aliases[token]; ok {
		return canonical
	}
	return token
}

func checkEncoding(text string) error {
	if !utf8.ValidString(text) {
		return &ExtractionError{Stage: StageDecode, Message: "cannot read résumé text", Cause: ErrInvalidEncoding}
	}
	return nil
}
