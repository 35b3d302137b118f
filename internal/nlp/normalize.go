package nlp

import (
	"regexp"
	"strings"
)

// noisePattern matches everything outside the retained character set:
// letters in any script, digits and underscore, whitespace, and a small
// punctuation allow-list. Go's \w is ASCII-only, so \p{L} carries the
// accented and non-Latin letters.
var (
	noisePattern      = regexp.MustCompile(`[^\p{L}\w\s.,\-¿?¡!]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// CleanText lowercases a text, replaces noise characters with spaces, and
// collapses runs of whitespace. It is deterministic and idempotent.
func CleanText(text string) string {
	text = strings.ToLower(text)
	text = noisePattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
