package extraction

import (
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// EntryKind names the profile section a keyword rule feeds
type EntryKind string

const (
	EntryEducation  EntryKind = "education"
	EntryExperience EntryKind = "experience"
)

// MatchMode controls how a token must be delimited in text
type MatchMode int

const (
	// MatchWord requires word boundaries on both sides.
	MatchWord MatchMode = iota
	// MatchPlural also accepts a trailing "s" or "'s".
	MatchPlural
	// MatchPrefix only requires a boundary before the token.
	MatchPrefix
)

// KeywordRule marks sentences containing any of Keywords as entries of Kind
type KeywordRule struct {
	Kind     EntryKind
	Keywords []string
	Match    MatchMode
}

// DegreeToken maps a degree spelling to its canonical level
type DegreeToken struct {
	Token string
	Level types.DegreeLevel
}

// Vocabulary is the injectable configuration driving extraction
type Vocabulary struct {
	Skills  []string
	Aliases map[string]string
	Degrees []DegreeToken
	Rules   []KeywordRule
}

var defaultSkills = []string{
	"python", "java", "javascript", "c++", "c#", "ruby", "php", "swift", "kotlin", "go", "rust",
	"typescript", "html", "css", "sql", "nosql", "mongodb", "postgresql", "mysql", "oracle",
	"aws", "azure", "gcp", "docker", "kubernetes", "react", "angular", "vue", "node.js",
	"express", "django", "flask", "fastapi", "spring", "laravel", "tensorflow", "pytorch",
	"scikit-learn", "pandas", "numpy", "git", "jenkins", "ci/cd", "agile", "scrum",
	"machine learning", "data analysis",
}

// defaultDegreeTokens are the degree spellings searched for in education sentences.
// Each token's level comes from types.ParseDegreeLevel.
var defaultDegreeTokens = []string{
	"associate", "bachelor", "bsc", "b.sc", "b.s", "b.a", "b.tech",
	"master", "msc", "m.sc", "m.s", "m.a", "m.tech", "mba", "m.b.a",
	"phd", "ph.d", "doctorate",
}

func degreeTokens(tokens []string) []DegreeToken {
	out := make([]DegreeToken, 0, len(tokens))
	for _, token := range tokens {
		if level := types.ParseDegreeLevel(token); level.Ordinal() > 0 {
			out = append(out, DegreeToken{Token: token, Level: level})
		}
	}
	return out
}

// DefaultVocabulary returns a fresh copy of the built-in vocabulary.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Skills:  append([]string(nil), defaultSkills...),
		Aliases: skills.DefaultAliases(),
		Degrees: degreeTokens(defaultDegreeTokens),
		Rules: []KeywordRule{
			{
				Kind: EntryEducation,
				Keywords: []string{
					"bachelor", "master", "phd", "ph.d", "doctorate", "degree", "university", "college",
					"bsc", "b.sc", "b.s", "b.a", "b.tech", "msc", "m.sc", "m.s", "m.a", "m.tech",
					"mba", "m.b.a", "associate degree", "associate of", "associate's", "associate’s",
				},
				Match: MatchPlural,
			},
			{
				Kind:     EntryExperience,
				Keywords: []string{"experience", "worked", "position", "role", "job"},
				Match:    MatchPrefix,
			},
		},
	}
}

// Extension holds user-supplied additions to a vocabulary
type Extension struct {
	Skills             []string          `mapstructure:"skills"`
	Aliases            map[string]string `mapstructure:"aliases"`
	EducationKeywords  []string          `mapstructure:"education_keywords"`
	ExperienceKeywords []string          `mapstructure:"experience_keywords"`
}

// Extend returns a copy of v with ext merged in. Tokens are normalized; duplicates are ignored.
func (v *Vocabulary) Extend(ext Extension) *Vocabulary {
	out := &Vocabulary{
		Skills:  mergeTokens(v.Skills, ext.Skills),
		Aliases: make(map[string]string, len(v.Aliases)+len(ext.Aliases)),
		Degrees: append([]DegreeToken(nil), v.Degrees...),
		Rules:   make([]KeywordRule, 0, len(v.Rules)),
	}
	for k, val := range v.Aliases {
		out.Aliases[k] = val
	}
	for k, val := range ext.Aliases {
		out.Aliases[skills.NormalizeWith(k, nil)] = skills.NormalizeWith(val, nil)
	}
	for _, rule := range v.Rules {
		extra := ext.EducationKeywords
		if rule.Kind == EntryExperience {
			extra = ext.ExperienceKeywords
		}
		out.Rules = append(out.Rules, KeywordRule{
			Kind:     rule.Kind,
			Keywords: mergeTokens(rule.Keywords, extra),
			Match:    rule.Match,
		})
	}
	return out
}

// Keywords returns the keywords of the first rule for kind.
func (v *Vocabulary) Keywords(kind EntryKind) ([]string, MatchMode) {
	for _, rule := range v.Rules {
		if rule.Kind == kind {
			return rule.Keywords, rule.Match
		}
	}
	return nil, MatchWord
}

func mergeTokens(base, extra []string) []string {
	seen := make(map[string]struct{}, len(base)+len(extra))
	out := make([]string, 0, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, token := range list {
			token = skills.NormalizeWith(token, nil)
			if token == "" {
				continue
			}
			if _, ok := seen[token]; ok {
				continue
			}
			seen[token] = struct{}{}
			out = append(out, token)
		}
	}
	return out
}
