package nlp

import (
	"context"
	"fmt"
	"strings"

	"offernlp/internal/datasources"
	"offernlp/internal/domain"
)

// Parts of speech that carry content for keyword extraction.
var keywordPOS = map[string]struct{}{
	"NOUN":  {},
	"PROPN": {},
	"ADJ":   {},
}

const minKeywordLength = 3

// KeywordExtractor selects content-bearing tokens from a text using the
// part-of-speech tagger.
type KeywordExtractor struct {
	tagger datasources.Tagger
}

func NewKeywordExtractor(tagger datasources.Tagger) *KeywordExtractor {
	return &KeywordExtractor{tagger: tagger}
}

// Extract returns the deduplicated keywords of a text: non-stopword tokens
// of at least 3 characters tagged NOUN, PROPN, or ADJ. Order follows first
// appearance but is not part of the contract.
func (e *KeywordExtractor) Extract(ctx context.Context, text string) ([]string, error) {
	tokens, err := e.tagger.TagText(ctx, strings.ToLower(text))
	if err != nil {
		return nil, fmt.Errorf("tagging text: %w", err)
	}

	seen := make(map[string]struct{}, len(tokens))
	keywords := []string{}
	for _, token := range tokens {
		if !isKeyword(token) {
			continue
		}
		if _, dup := seen[token.Text]; dup {
			continue
		}
		seen[token.Text] = struct{}{}
		keywords = append(keywords, token.Text)
	}

	return keywords, nil
}

func isKeyword(token domain.TaggedToken) bool {
	if token.IsStopword {
		return false
	}
	if len([]rune(token.Text)) < minKeywordLength {
		return false
	}
	_, ok := keywordPOS[token.POS]
	return ok
}
