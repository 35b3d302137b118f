package command

import (
	"context"
	"fmt"

	"offernlp/internal/datasources"
	"offernlp/internal/domain"
	"offernlp/internal/nlp"
)

// Stored original messages are truncated to bound metadata size.
const maxStoredMessageLength = 500

// IngestMessage indexes a chat message for semantic search and
// conversation-level sentiment aggregation.
type IngestMessage struct {
	Sentiment *nlp.SentimentScorer
	Embedder  datasources.Embedder
	Vectors   datasources.VectorStore
}

type IngestMessageResult struct {
	MessageID string           `json:"message_id"`
	Sentiment domain.Sentiment `json:"sentiment"`
}

func (c *IngestMessage) Execute(ctx context.Context, message domain.Message) (IngestMessageResult, error) {
	if message.MessageID == "" || message.Text == "" {
		return IngestMessageResult{}, fmt.Errorf("%w: message_id and message are required", ErrMissingRequiredField)
	}

	cleaned := nlp.CleanText(message.Text)

	sentiment, err := c.Sentiment.Score(ctx, cleaned)
	if err != nil {
		return IngestMessageResult{}, fmt.Errorf("scoring message sentiment: %w", err)
	}

	vector, err := c.Embedder.EmbedText(ctx, cleaned)
	if err != nil {
		return IngestMessageResult{}, fmt.Errorf("embedding message: %w", err)
	}

	conversationID := message.ConversationID
	if conversationID == "" {
		conversationID = fmt.Sprintf("%s_%s", message.SenderID, message.ReceiverID)
	}

	// Truncation counts runes so a multi-byte character is never split.
	original := message.Text
	if runes := []rune(original); len(runes) > maxStoredMessageLength {
		original = string(runes[:maxStoredMessageLength])
	}

	record := datasources.VectorRecord{
		ID:     message.MessageID,
		Values: vector,
		Metadata: map[string]string{
			"message_id":       message.MessageID,
			"sender_id":        message.SenderID,
			"receiver_id":      message.ReceiverID,
			"message":          cleaned,
			"original_message": original,
			"sentiment":        sentiment.Label,
			"trade_id":         message.TradeID,
			"conversation_id":  conversationID,
		},
	}

	if err := c.Vectors.Add(ctx, datasources.CollectionMessages, []datasources.VectorRecord{record}); err != nil {
		return IngestMessageResult{}, fmt.Errorf("adding message vector: %w", err)
	}

	return IngestMessageResult{MessageID: message.MessageID, Sentiment: sentiment}, nil
}
