// Package skills normalizes skill tokens so that comparisons are case- and whitespace-insensitive.
package skills

import (
	"sort"
	"strings"
)

// defaultAliases maps common skill name variants to canonical tokens
var defaultAliases = map[string]string{
	"golang":   "go",
	"go lang":  "go",
	"js":       "javascript",
	"ts":       "typescript",
	"k8s":      "kubernetes",
	"react.js": "react",
	"reactjs":  "react",
	"vue.js":   "vue",
	"vuejs":    "vue",
	"nodejs":   "node.js",
	"postgres": "postgresql",
	"sklearn":  "scikit-learn",
	"cicd":     "ci/cd",
	"ci-cd":    "ci/cd",
}

// DefaultAliases returns a copy of the built-in alias table.
func DefaultAliases() map[string]string {
	out := make(map[string]string, len(defaultAliases))
	for k, v := range defaultAliases {
		out[k] = v
	}
	return out
}

// Normalize lowercases a token, collapses internal whitespace and resolves aliases
// from the built-in table.
func Normalize(token string) string {
	return NormalizeWith(token, defaultAliases)
}

// NormalizeWith is Normalize with a caller-supplied alias table.
func NormalizeWith(token string, aliases map[string]string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(token), " "))
	if canonical, ok := aliases[normalized]; ok {
		return canonical
	}
	return normalized
}

// NormalizeSet normalizes every token and returns the sorted, deduplicated set.
// Blank tokens are dropped.
func NormalizeSet(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		normalized := Normalize(token)
		if normalized == "" {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	sort.Strings(out)
	return out
}
