// Package nlp defines the contracts for the external NER and text-embedding services
// and provides Gemini-backed and offline implementations of both.
package nlp

import (
	"context"
	"sort"
	"strings"
)

// Label classifies a recognized entity
type Label string

const (
	LabelOrganization Label = "organization"
	LabelPlace        Label = "place"
	LabelDate         Label = "date"
	LabelPerson       Label = "person"
)

// labelAliases maps provider-specific tags (including spaCy's) onto canonical labels.
var labelAliases = map[string]Label{
	"organization": LabelOrganization,
	"organisation": LabelOrganization,
	"org":          LabelOrganization,
	"company":      LabelOrganization,
	"place":        LabelPlace,
	"gpe":          LabelPlace,
	"loc":          LabelPlace,
	"location":     LabelPlace,
	"date":         LabelDate,
	"duration":     LabelDate,
	"person":       LabelPerson,
	"per":          LabelPerson,
}

// NormalizeLabel maps a raw tag to a canonical label. ok is false for tags the screener ignores.
func NormalizeLabel(raw string) (label Label, ok bool) {
	label, ok = labelAliases[strings.ToLower(strings.TrimSpace(raw))]
	return label, ok
}

// Entity is a labelled span of the analyzed text. Start and End are byte offsets.
type Entity struct {
	Label Label  `json:"label"`
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// EntityRecognizer tags named entities in text
type EntityRecognizer interface {
	Analyze(ctx context.Context, text string) ([]Entity, error)
}

// Embedder maps text to a fixed-length vector. Identical input must yield identical output.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// RecognizerFunc adapts a function to EntityRecognizer
type RecognizerFunc func(ctx context.Context, text string) ([]Entity, error)

// Analyze calls f.
func (f RecognizerFunc) Analyze(ctx context.Context, text string) ([]Entity, error) {
	return f(ctx, text)
}

// EmbedderFunc adapts a function to Embedder
type EmbedderFunc func(ctx context.Context, text string) ([]float64, error)

// Embed calls f.
func (f EmbedderFunc) Embed(ctx context.Context, text string) ([]float64, error) {
	return f(ctx, text)
}

// ValidSpans drops entities whose offsets fall outside text and returns the rest ordered by Start.
func ValidSpans(text string, entities []Entity) []Entity {
	out := make([]Entity, 0, len(entities))
	for _, ent := range entities {
		if ent.Start < 0 || ent.End > len(text) || ent.Start >= ent.End {
			continue
		}
		out = append(out, ent)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}

// Mention is an entity reported without offsets
type Mention struct {
	Label string `mapstructure:"label"`
	Text  string `mapstructure:"text"`
}

// LocateSpans assigns offsets to mentions by searching text case-insensitively.
// Repeated mentions of the same text resolve to successive occurrences. Mentions that
// cannot be found or carry an unknown label are dropped.
func LocateSpans(text string, mentions []Mention) []Entity {
	haystack := strings.ToLower(text)
	foldCase := len(haystack) == len(text)
	if !foldCase {
		// Lowercasing changed byte lengths; offsets would not map back.
		haystack = text
	}
	cursors := make(map[string]int)
	out := make([]Entity, 0, len(mentions))

	for _, m := range mentions {
		label, ok := NormalizeLabel(m.Label)
		if !ok {
			continue
		}
		needle := strings.TrimSpace(m.Text)
		if foldCase {
			needle = strings.ToLower(needle)
		}
		if needle == "" {
			continue
		}

		from := cursors[needle]
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 && from > 0 {
			// Reported more often than it occurs; reuse the first occurrence.
			from = 0
			idx = strings.Index(haystack, needle)
		}
		if idx < 0 {
			continue
		}
		start := from + idx
		end := start + len(needle)
		cursors[needle] = end

		out = append(out, Entity{Label: label, Text: text[start:end], Start: start, End: end})
	}
	return ValidSpans(text, out)
}
