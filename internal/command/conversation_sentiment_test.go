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

func messageRecord(id, sentiment string) datasources.VectorRecord {
	return datasources.VectorRecord{
		ID:       id,
		Metadata: map[string]string{"sentiment": sentiment},
	}
}

func TestConversationSentiment_MajorityPositive(t *testing.T) {
	vectors := mocks.NewMockVectorStore(t)
	vectors.EXPECT().
		List(mock.Anything, datasources.CollectionMessages, map[string]string{"conversation_id": "7_9"}, conversationScanLimit).
		Return([]datasources.VectorRecord{
			messageRecord("m1", domain.SentimentPositive),
			messageRecord("m2", domain.SentimentPositive),
			messageRecord("m3", domain.SentimentNegative),
		}, nil)

	cmd := &ConversationSentiment{Vectors: vectors}

	result, err := cmd.Execute(context.Background(), "7_9")
	require.NoError(t, err)

	assert.Equal(t, "7_9", result.ConversationID)
	assert.Equal(t, domain.SentimentPositive, result.Overall)
	assert.Equal(t, 3, result.TotalMessages)
	assert.Equal(t, 2, result.Positive)
	assert.Equal(t, 1, result.Negative)
	assert.Equal(t, 0, result.Neutral)
	assert.Equal(t, 66.67, result.Distribution.Positive)
	assert.Equal(t, 33.33, result.Distribution.Negative)
	assert.Equal(t, 0.0, result.Distribution.Neutral)
}

func TestConversationSentiment_TieIsNeutral(t *testing.T) {
	vectors := mocks.NewMockVectorStore(t)
	vectors.EXPECT().
		List(mock.Anything, datasources.CollectionMessages, mock.Anything, mock.Anything).
		Return([]datasources.VectorRecord{
			messageRecord("m1", domain.SentimentPositive),
			messageRecord("m2", domain.SentimentNegative),
		}, nil)

	cmd := &ConversationSentiment{Vectors: vectors}

	result, err := cmd.Execute(context.Background(), "7_9")
	require.NoError(t, err)
	assert.Equal(t, domain.SentimentNeutral, result.Overall)
}

func TestConversationSentiment_UnknownLabelCountsAsNeutral(t *testing.T) {
	vectors := mocks.NewMockVectorStore(t)
	vectors.EXPECT().
		List(mock.Anything, datasources.CollectionMessages, mock.Anything, mock.Anything).
		Return([]datasources.VectorRecord{
			messageRecord("m1", ""),
			messageRecord("m2", "garbage"),
		}, nil)

	cmd := &ConversationSentiment{Vectors: vectors}

	result, err := cmd.Execute(context.Background(), "7_9")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Neutral)
	assert.Equal(t, domain.SentimentNeutral, result.Overall)
}

func TestConversationSentiment_NotFound(t *testing.T) {
	vectors := mocks.NewMockVectorStore(t)
	vectors.EXPECT().
		List(mock.Anything, datasources.CollectionMessages, mock.Anything, mock.Anything).
		Return(nil, nil)

	cmd := &ConversationSentiment{Vectors: vectors}

	_, err := cmd.Execute(context.Background(), "missing")
	require.ErrorIs(t, err, ErrConversationNotFound)
}

func TestConversationSentiment_MissingID(t *testing.T) {
	cmd := &ConversationSentiment{}

	_, err := cmd.Execute(context.Background(), "")
	require.ErrorIs(t, err, ErrMissingRequiredField)
}
