package extraction

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var pluralSuffixes = []string{"'s", "’s", "s"}

// findToken returns the byte index of the first delimited occurrence of token in text,
// or -1. Both arguments must already be lowercased.
func findToken(text, token string, mode MatchMode) int {
	if token == "" {
		return -1
	}
	for from := 0; from < len(text); {
		i := strings.Index(text[from:], token)
		if i < 0 {
			return -1
		}
		start := from + i
		end := start + len(token)
		if boundaryBefore(text, start, token) && boundaryAfter(text, end, token, mode) {
			return start
		}
		from = start + 1
	}
	return -1
}

// containsAny reports whether any token occurs in text.
func containsAny(text string, tokens []string, mode MatchMode) bool {
	for _, token := range tokens {
		if findToken(text, token, mode) >= 0 {
			return true
		}
	}
	return false
}

func boundaryBefore(text string, start int, token string) bool {
	first, _ := utf8.DecodeRuneInString(token)
	if !isWordRune(first) || start == 0 {
		return true
	}
	prev, _ := utf8.DecodeLastRuneInString(text[:start])
	// A leading dot joins tokens such as the "js" in "node.js".
	return !isWordRune(prev) && prev != '.'
}

func boundaryAfter(text string, end int, token string, mode MatchMode) bool {
	if mode == MatchPrefix {
		return true
	}
	last, _ := utf8.DecodeLastRuneInString(token)
	if !isWordRune(last) {
		return true
	}
	if atBoundary(text, end) {
		return true
	}
	if mode == MatchPlural {
		rest := text[end:]
		for _, suffix := range pluralSuffixes {
			if strings.HasPrefix(rest, suffix) && atBoundary(text, end+len(suffix)) {
				return true
			}
		}
	}
	return false
}

func atBoundary(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	next, _ := utf8.DecodeRuneInString(text[i:])
	return !isWordRune(next)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
