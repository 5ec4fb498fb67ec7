package nlp

import (
	"context"
	"regexp"
	"sort"
	"strings"
)

// entityPattern tags the match (or its first capture group) of re with label
type entityPattern struct {
	label Label
	re    *regexp.Regexp
}

var defaultEntityPatterns = []entityPattern{
	{LabelOrganization, regexp.MustCompile(`\b(?:University|College|Institute|School) of [A-Z][A-Za-z&'-]*(?:\s+[A-Z][A-Za-z&'-]*)*`)},
	{LabelOrganization, regexp.MustCompile(`\b(?:[A-Z][A-Za-z0-9&'-]*\s+){0,4}(?:Inc|LLC|Ltd|Corp|Corporation|Company|Technologies|Systems|Solutions|Labs|Group|Bank|University|College|Institute|Academy)\b`)},
	{LabelOrganization, regexp.MustCompile(`\bat\s+([A-Z][A-Za-z0-9&'-]*(?:\s+[A-Z][A-Za-z0-9&'-]*){0,3})`)},
	{LabelDate, regexp.MustCompile(`(?i)\b(?:jan|feb|mar|apr|may|jun|jul|aug|sep|sept|oct|nov|dec)[a-z]*\.?\s+(?:19|20)\d{2}\b`)},
	{LabelDate, regexp.MustCompile(`(?i)\b(?:19|20)\d{2}\s*(?:-|–|to)\s*(?:(?:19|20)\d{2}|present|current|now)\b`)},
	{LabelDate, regexp.MustCompile(`(?i)\b\d+(?:\.\d+)?\+?\s*(?:years?|yrs?|months?)\b`)},
}

// RuleRecognizer is an offline recognizer for organizations and dates based on
// regular expressions. It does not tag places or people.
type RuleRecognizer struct {
	patterns []entityPattern
}

// NewRuleRecognizer creates a RuleRecognizer with the built-in patterns.
func NewRuleRecognizer() *RuleRecognizer {
	return &RuleRecognizer{patterns: defaultEntityPatterns}
}

// Analyze returns non-overlapping entities per label, ordered by position.
func (r *RuleRecognizer) Analyze(ctx context.Context, text string) ([]Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var candidates []Entity
	for _, p := range r.patterns {
		for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
			start, end := loc[0], loc[1]
			if len(loc) >= 4 && loc[2] >= 0 {
				start, end = loc[2], loc[3]
			}
			span := strings.TrimRight(text[start:end], " .,;")
			if span == "" {
				continue
			}
			candidates = append(candidates, Entity{Label: p.label, Text: span, Start: start, End: start + len(span)})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Start != candidates[j].Start {
			return candidates[i].Start < candidates[j].Start
		}
		return candidates[i].End > candidates[j].End
	})

	lastEnd := make(map[Label]int)
	out := make([]Entity, 0, len(candidates))
	for _, ent := range candidates {
		if end, seen := lastEnd[ent.Label]; seen && ent.Start < end {
			continue
		}
		lastEnd[ent.Label] = ent.End
		out = append(out, ent)
	}
	return out, nil
}
