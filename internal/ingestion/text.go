// Package ingestion reads résumé files of the supported formats and normalizes their text.
package ingestion

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	inlineSpaceRe  = regexp.MustCompile(`[ \t\x{00A0}\x{2007}\x{202F}]+`)
	blankLineRunRe = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted text while preserving its line structure
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Drop control characters left behind by PDF and DOCX extraction
	content = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) || r == '\uFEFF' {
			return -1
		}
		return r
	}, content)

	// 3. Clean each line
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	// 4. Collapse runs of blank lines (max 1 blank line)
	result := blankLineRunRe.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine trims a line, collapses inline whitespace and normalizes bullet glyphs to "- "
func cleanLine(line string) string {
	line = strings.TrimSpace(inlineSpaceRe.ReplaceAllString(line, " "))
	if line == "" {
		return ""
	}

	for _, bullet := range []string{"•", "·", "▪", "●", "◦", "‣"} {
		if rest, ok := strings.CutPrefix(line, bullet); ok {
			return "- " + strings.TrimSpace(rest)
		}
	}
	return line
}
