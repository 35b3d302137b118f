package command

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"offernlp/internal/datasources"
	"offernlp/internal/datasources/mocks"
	"offernlp/internal/domain"
	"offernlp/internal/nlp"
)

func positivePredictor(t *testing.T) *mocks.MockSentimentPredictor {
	predictor := mocks.NewMockSentimentPredictor(t)
	predictor.EXPECT().
		PredictSentiment(mock.Anything, mock.Anything).
		Return(domain.SentimentPrediction{
			TopClass: domain.ClassPositive,
			Probabilities: map[string]float64{
				domain.ClassPositive: 0.9,
				domain.ClassNegative: 0.05,
				domain.ClassNeutral:  0.05,
			},
		}, nil)
	return predictor
}

func TestIngestMessage_StoresMetadata(t *testing.T) {
	embedder := mocks.NewMockEmbedder(t)
	embedder.EXPECT().
		EmbedText(mock.Anything, "me interesa la bicicleta").
		Return([]float32{1, 0}, nil)

	vectors := mocks.NewMockVectorStore(t)
	vectors.EXPECT().
		Add(mock.Anything, datasources.CollectionMessages, mock.Anything).
		Run(func(ctx context.Context, collection string, records []datasources.VectorRecord) {
			require.Len(t, records, 1)
			assert.Equal(t, "m1", records[0].ID)
			assert.Equal(t, map[string]string{
				"message_id":       "m1",
				"sender_id":        "7",
				"receiver_id":      "9",
				"message":          "me interesa la bicicleta",
				"original_message": "Me interesa la bicicleta",
				"sentiment":        domain.SentimentPositive,
				"trade_id":         "t1",
				"conversation_id":  "7_9",
			}, records[0].Metadata)
		}).
		Return(nil)

	cmd := &IngestMessage{
		Sentiment: nlp.NewSentimentScorer(positivePredictor(t)),
		Embedder:  embedder,
		Vectors:   vectors,
	}

	result, err := cmd.Execute(context.Background(), domain.Message{
		MessageID:  "m1",
		SenderID:   "7",
		ReceiverID: "9",
		Text:       "Me interesa la bicicleta",
		TradeID:    "t1",
	})
	require.NoError(t, err)

	assert.Equal(t, "m1", result.MessageID)
	assert.Equal(t, domain.SentimentPositive, result.Sentiment.Label)
}

func TestIngestMessage_ExplicitConversationID(t *testing.T) {
	embedder := mocks.NewMockEmbedder(t)
	embedder.EXPECT().
		EmbedText(mock.Anything, mock.Anything).
		Return([]float32{1, 0}, nil)

	vectors := mocks.NewMockVectorStore(t)
	vectors.EXPECT().
		Add(mock.Anything, datasources.CollectionMessages, mock.Anything).
		Run(func(ctx context.Context, collection string, records []datasources.VectorRecord) {
			assert.Equal(t, "custom", records[0].Metadata["conversation_id"])
		}).
		Return(nil)

	cmd := &IngestMessage{
		Sentiment: nlp.NewSentimentScorer(positivePredictor(t)),
		Embedder:  embedder,
		Vectors:   vectors,
	}

	_, err := cmd.Execute(context.Background(), domain.Message{
		MessageID:      "m1",
		SenderID:       "7",
		ReceiverID:     "9",
		Text:           "hola",
		ConversationID: "custom",
	})
	require.NoError(t, err)
}

func TestIngestMessage_TruncatesStoredOriginal(t *testing.T) {
	embedder := mocks.NewMockEmbedder(t)
	embedder.EXPECT().
		EmbedText(mock.Anything, mock.Anything).
		Return([]float32{1, 0}, nil)

	vectors := mocks.NewMockVectorStore(t)
	vectors.EXPECT().
		Add(mock.Anything, datasources.CollectionMessages, mock.Anything).
		Run(func(ctx context.Context, collection string, records []datasources.VectorRecord) {
			stored := records[0].Metadata["original_message"]
			assert.Equal(t, maxStoredMessageLength, utf8.RuneCountInString(stored))
			assert.True(t, utf8.ValidString(stored))
		}).
		Return(nil)

	cmd := &IngestMessage{
		Sentiment: nlp.NewSentimentScorer(positivePredictor(t)),
		Embedder:  embedder,
		Vectors:   vectors,
	}

	// Multi-byte input: truncation must never split a rune.
	_, err := cmd.Execute(context.Background(), domain.Message{
		MessageID: "m1",
		Text:      strings.Repeat("ñ", maxStoredMessageLength*2),
	})
	require.NoError(t, err)
}

func TestIngestMessage_MissingFields(t *testing.T) {
	cmd := &IngestMessage{}

	_, err := cmd.Execute(context.Background(), domain.Message{Text: "hola"})
	require.ErrorIs(t, err, ErrMissingRequiredField)

	_, err = cmd.Execute(context.Background(), domain.Message{MessageID: "m1"})
	require.ErrorIs(t, err, ErrMissingRequiredField)
}
