package extraction

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-screener/internal/types"
)

// Sentence is a trimmed segment of the source text; Start and End are byte offsets into it.
type Sentence struct {
	Text  string
	Start int
	End   int
}

// abbreviations never end a sentence even when followed by whitespace
var abbreviations = map[string]struct{}{
	"inc": {}, "ltd": {}, "co": {}, "corp": {}, "jr": {}, "sr": {}, "dr": {}, "mr": {},
	"mrs": {}, "ms": {}, "prof": {}, "st": {}, "vs": {}, "etc": {}, "approx": {}, "dept": {},
	"no": {}, "jan": {}, "feb": {}, "mar": {}, "apr": {}, "jun": {}, "jul": {}, "aug": {},
	"sep": {}, "sept": {}, "oct": {}, "nov": {}, "dec": {},
}

// clauseOpeners are capitalized words that begin a new sentence after a dotted degree,
// as in "I hold a Ph.D. I worked at Acme".
var clauseOpeners = map[string]struct{}{
	"I": {}, "I'm": {}, "I've": {}, "My": {}, "We": {}, "Our": {}, "He": {}, "She": {},
	"They": {}, "Currently": {}, "Since": {}, "Then": {}, "Later": {},
}

// SplitSentences segments text on line breaks and on sentence terminators followed by
// whitespace. Periods closing abbreviations, initials or dotted degree names do not split.
func SplitSentences(text string) []Sentence {
	var out []Sentence
	emit := func(start, end int) {
		for start < end {
			r, size := utf8.DecodeRuneInString(text[start:end])
			if !unicode.IsSpace(r) {
				break
			}
			start += size
		}
		for end > start {
			r, size := utf8.DecodeLastRuneInString(text[start:end])
			if !unicode.IsSpace(r) {
				break
			}
			end -= size
		}
		if start < end {
			out = append(out, Sentence{Text: text[start:end], Start: start, End: end})
		}
	}

	segStart := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			emit(segStart, i)
			segStart = i + 1
		case '.', '!', '?':
			if !followedBySpace(text, i+1) {
				continue
			}
			if text[i] == '.' && isAbbreviation(text[segStart:i]) && !degreeEndsSentence(text[segStart:i], text[i+1:]) {
				continue
			}
			emit(segStart, i+1)
			segStart = i + 1
		}
	}
	emit(segStart, len(text))
	return out
}

func followedBySpace(text string, i int) bool {
	if i >= len(text) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(text[i:])
	return unicode.IsSpace(r)
}

// lastWord returns the final whitespace-delimited word of segment without leading brackets or quotes.
func lastWord(segment string) string {
	word := segment
	if idx := strings.LastIndexFunc(segment, unicode.IsSpace); idx >= 0 {
		word = segment[idx+1:]
	}
	return strings.TrimLeft(word, "([\"'")
}

// isAbbreviation reports whether the word ending the segment is an abbreviation.
func isAbbreviation(segment string) bool {
	word := lastWord(segment)
	if word == "" {
		return false
	}
	// Dotted forms such as B.S, Ph.D, e.g but not names like Node.js
	if first, _, dotted := strings.Cut(word, "."); dotted {
		return utf8.RuneCountInString(first) <= 2
	}
	// Single-letter initials
	if utf8.RuneCountInString(word) == 1 {
		r, _ := utf8.DecodeRuneInString(word)
		return unicode.IsLetter(r)
	}
	_, ok := abbreviations[strings.ToLower(word)]
	return ok
}

// degreeEndsSentence reports whether a dotted degree such as "Ph.D" closing segment also
// closes the sentence, which holds when rest opens a new clause.
func degreeEndsSentence(segment, rest string) bool {
	word := lastWord(segment)
	if !strings.Contains(word, ".") || types.ParseDegreeLevel(word).Ordinal() == 0 {
		return false
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return false
	}
	next := strings.TrimRightFunc(fields[0], func(r rune) bool { return unicode.IsPunct(r) && r != '\'' })
	_, ok := clauseOpeners[next]
	return ok
}
