package command

import (
	"context"
	"fmt"
	"strings"

	"offernlp/internal/domain"
	"offernlp/internal/nlp"
)

// AnalyzeComment scores a single comment on demand, without persisting
// anything. The comment reaches the model unnormalized: casing and emoji
// carry sentiment signal, and nothing downstream needs the cleaned form.
type AnalyzeComment struct {
	Sentiment *nlp.SentimentScorer
}

type AnalyzeCommentResult struct {
	Comment   string           `json:"comment"`
	Sentiment domain.Sentiment `json:"sentiment"`
}

func (c *AnalyzeComment) Execute(ctx context.Context, comment string) (AnalyzeCommentResult, error) {
	if strings.TrimSpace(comment) == "" {
		return AnalyzeCommentResult{}, ErrEmptyComment
	}

	sentiment, err := c.Sentiment.Score(ctx, comment)
	if err != nil {
		return AnalyzeCommentResult{}, fmt.Errorf("scoring comment: %w", err)
	}

	return AnalyzeCommentResult{Comment: comment, Sentiment: sentiment}, nil
}
