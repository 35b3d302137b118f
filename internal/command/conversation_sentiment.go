package command

import (
	"context"
	"fmt"
	"math"

	"offernlp/internal/datasources"
	"offernlp/internal/domain"
)

// conversationScanLimit bounds how many messages one conversation
// aggregation will consider.
const conversationScanLimit = 1000

// ConversationSentiment tallies the stored sentiment labels of every
// message in a conversation and reports the majority with a percentage
// distribution.
type ConversationSentiment struct {
	Vectors datasources.VectorStore
}

func (c *ConversationSentiment) Execute(ctx context.Context, conversationID string) (domain.ConversationSentiment, error) {
	if conversationID == "" {
		return domain.ConversationSentiment{}, fmt.Errorf("%w: conversation_id is required", ErrMissingRequiredField)
	}

	records, err := c.Vectors.List(
		ctx,
		datasources.CollectionMessages,
		map[string]string{"conversation_id": conversationID},
		conversationScanLimit,
	)
	if err != nil {
		return domain.ConversationSentiment{}, fmt.Errorf("listing conversation messages: %w", err)
	}
	if len(records) == 0 {
		return domain.ConversationSentiment{}, fmt.Errorf("%w: [%s]", ErrConversationNotFound, conversationID)
	}

	result := domain.ConversationSentiment{
		ConversationID: conversationID,
		TotalMessages:  len(records),
	}
	for _, record := range records {
		switch record.Metadata["sentiment"] {
		case domain.SentimentPositive:
			result.Positive++
		case domain.SentimentNegative:
			result.Negative++
		default:
			result.Neutral++
		}
	}

	result.Overall = domain.SentimentNeutral
	if result.Positive > result.Negative {
		result.Overall = domain.SentimentPositive
	} else if result.Negative > result.Positive {
		result.Overall = domain.SentimentNegative
	}

	total := float64(result.TotalMessages)
	result.Distribution = domain.SentimentDistribution{
		Positive: percentage(result.Positive, total),
		Negative: percentage(result.Negative, total),
		Neutral:  percentage(result.Neutral, total),
	}

	return result, nil
}

func percentage(count int, total float64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(count)/total*100*100) / 100
}
