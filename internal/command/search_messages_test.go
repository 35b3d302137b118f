package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"offernlp/internal/datasources"
	"offernlp/internal/datasources/mocks"
	"offernlp/internal/domain"
)

func TestSearchMessages_MapsMetadataToHits(t *testing.T) {
	embedder := mocks.NewMockEmbedder(t)
	embedder.EXPECT().
		EmbedText(mock.Anything, "bicicleta").
		Return([]float32{1, 0}, nil)

	vectors := mocks.NewMockVectorStore(t)
	vectors.EXPECT().
		Query(mock.Anything, datasources.CollectionMessages, mock.Anything, DefaultSearchLimit, map[string]string(nil)).
		Return([]datasources.VectorMatch{
			{
				ID:       "m1",
				Distance: 0.5,
				Metadata: map[string]string{
					"message_id":       "m1",
					"sender_id":        "7",
					"receiver_id":      "9",
					"original_message": "Me interesa la bicicleta",
					"sentiment":        domain.SentimentPositive,
					"trade_id":         "t1",
					"conversation_id":  "7_9",
				},
			},
			{
				ID:       "m2",
				Distance: 1,
				Metadata: map[string]string{"message_id": "m2"},
			},
		}, nil)

	cmd := &SearchMessages{Embedder: embedder, Vectors: vectors}

	hits, err := cmd.Execute(context.Background(), SearchMessagesRequest{Query: "bicicleta"})
	require.NoError(t, err)

	require.Len(t, hits, 2)
	assert.Equal(t, domain.MessageHit{
		MessageID:      "m1",
		SenderID:       "7",
		ReceiverID:     "9",
		Text:           "Me interesa la bicicleta",
		Sentiment:      domain.SentimentPositive,
		TradeID:        "t1",
		ConversationID: "7_9",
		Score:          0.75,
	}, hits[0])

	// Messages stored without a sentiment label default to neutral.
	assert.Equal(t, domain.SentimentNeutral, hits[1].Sentiment)
	assert.Equal(t, 0.5, hits[1].Score)
}

func TestSearchMessages_Filters(t *testing.T) {
	embedder := mocks.NewMockEmbedder(t)
	embedder.EXPECT().
		EmbedText(mock.Anything, mock.Anything).
		Return([]float32{1, 0}, nil)

	vectors := mocks.NewMockVectorStore(t)
	vectors.EXPECT().
		Query(mock.Anything, datasources.CollectionMessages, mock.Anything, mock.Anything, map[string]string{
			"conversation_id": "7_9",
			"sender_id":       "7",
		}).
		Return(nil, nil)

	cmd := &SearchMessages{Embedder: embedder, Vectors: vectors}

	hits, err := cmd.Execute(context.Background(), SearchMessagesRequest{
		Query:          "bicicleta",
		ConversationID: "7_9",
		SenderID:       "7",
	})
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSearchMessages_EmptyQuery(t *testing.T) {
	cmd := &SearchMessages{}

	_, err := cmd.Execute(context.Background(), SearchMessagesRequest{Query: "  "})
	require.ErrorIs(t, err, ErrEmptyQuery)
}
