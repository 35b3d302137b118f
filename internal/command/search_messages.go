package command

import (
	"context"
	"fmt"
	"math"

	"offernlp/internal/datasources"
	"offernlp/internal/domain"
	"offernlp/internal/nlp"
)

// SearchMessages finds messages semantically similar to a query,
// optionally restricted to one conversation or sender.
type SearchMessages struct {
	Embedder datasources.Embedder
	Vectors  datasources.VectorStore
}

type SearchMessagesRequest struct {
	Query          string
	Limit          int
	ConversationID string
	SenderID       string
}

func (c *SearchMessages) Execute(ctx context.Context, req SearchMessagesRequest) ([]domain.MessageHit, error) {
	query := nlp.CleanText(req.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	vector, err := c.Embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	filter := map[string]string{}
	if req.ConversationID != "" {
		filter["conversation_id"] = req.ConversationID
	}
	if req.SenderID != "" {
		filter["sender_id"] = req.SenderID
	}
	if len(filter) == 0 {
		filter = nil
	}

	matches, err := c.Vectors.Query(ctx, datasources.CollectionMessages, vector, limit, filter)
	if err != nil {
		return nil, fmt.Errorf("querying message vectors: %w", err)
	}

	hits := make([]domain.MessageHit, 0, len(matches))
	for _, match := range matches {
		metadata := match.Metadata
		sentiment := metadata["sentiment"]
		if sentiment == "" {
			sentiment = domain.SentimentNeutral
		}
		hits = append(hits, domain.MessageHit{
			MessageID:      metadata["message_id"],
			SenderID:       metadata["sender_id"],
			ReceiverID:     metadata["receiver_id"],
			Text:           metadata["original_message"],
			Sentiment:      sentiment,
			TradeID:        metadata["trade_id"],
			ConversationID: metadata["conversation_id"],
			Score:          round4(similarityFromDistance(match.Distance)),
		})
	}
	return hits, nil
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
