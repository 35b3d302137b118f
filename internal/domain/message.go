package domain

// Message is a chat message submitted for indexing.
type Message struct {
	MessageID      string `json:"message_id"`
	SenderID       string `json:"sender_id"`
	ReceiverID     string `json:"receiver_id"`
	Text           string `json:"message"`
	TradeID        string `json:"trade_id"`
	ConversationID string `json:"conversation_id"`
}

// MessageHit is a single semantic search result over indexed messages.
type MessageHit struct {
	MessageID      string  `json:"message_id"`
	SenderID       string  `json:"sender_id"`
	ReceiverID     string  `json:"receiver_id"`
	Text           string  `json:"message"`
	Sentiment      string  `json:"sentiment"`
	TradeID        string  `json:"trade_id"`
	ConversationID string  `json:"conversation_id"`
	Score          float64 `json:"score"`
}

// SentimentDistribution is the percentage split of sentiment labels
// across a conversation.
type SentimentDistribution struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// ConversationSentiment aggregates the sentiment of all messages in a
// conversation. Overall is decided by majority vote, ties are neutral.
type ConversationSentiment struct {
	ConversationID string                `json:"conversation_id"`
	Overall        string                `json:"overall_sentiment"`
	TotalMessages  int                   `json:"total_messages"`
	Positive       int                   `json:"positive"`
	Negative       int                   `json:"negative"`
	Neutral        int                   `json:"neutral"`
	Distribution   SentimentDistribution `json:"sentiment_distribution"`
}
