package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"offernlp/internal/datasources/mocks"
	"offernlp/internal/domain"
	"offernlp/internal/nlp"
)

func TestBulkInsertHistory_AllValid(t *testing.T) {
	repository := mocks.NewMockOfferRepository(t)
	repository.EXPECT().
		InsertHistory(mock.Anything, domain.HistoryEntry{OfferID: "1", UserID: "7", Type: domain.HistoryConsultation}).
		Return(nil)
	repository.EXPECT().
		InsertHistory(mock.Anything, domain.HistoryEntry{OfferID: "2", UserID: "7", Type: domain.HistoryConsultation}).
		Return(nil)

	cmd := &BulkInsertHistory{History: repository}

	result, err := cmd.Execute(context.Background(), []BulkHistoryItem{
		{OfferID: "1", UserID: "7"},
		{OfferID: "2", UserID: "7"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Errors)
	assert.Equal(t, BulkStatusSuccess, result.Status)
}

func TestBulkInsertHistory_PartialFailure(t *testing.T) {
	repository := mocks.NewMockOfferRepository(t)
	repository.EXPECT().
		InsertHistory(mock.Anything, domain.HistoryEntry{OfferID: "1", UserID: "7", Type: domain.HistoryConsultation}).
		Return(nil)
	repository.EXPECT().
		InsertHistory(mock.Anything, domain.HistoryEntry{OfferID: "3", UserID: "7", Type: domain.HistoryConsultation}).
		Return(nil)

	cmd := &BulkInsertHistory{History: repository}

	result, err := cmd.Execute(context.Background(), []BulkHistoryItem{
		{OfferID: "1", UserID: "7"},
		{OfferID: "2"},
		{OfferID: "3", UserID: "7"},
	})
	require.NoError(t, err)

	// The invalid middle item is reported without aborting the rest.
	assert.Equal(t, 3, result.Processed)
	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Error, "offer_id and user_id are required")
	assert.Equal(t, BulkStatusPartial, result.Status)
}

func TestBulkIngestOffers_PartialFailure(t *testing.T) {
	tagger := mocks.NewMockTagger(t)
	tagger.EXPECT().
		TagText(mock.Anything, mock.Anything).
		Return(bicicletaTokens(), nil)

	predictor := mocks.NewMockSentimentPredictor(t)
	predictor.EXPECT().
		PredictSentiment(mock.Anything, mock.Anything).
		Return(domain.SentimentPrediction{
			TopClass:      domain.ClassNeutral,
			Probabilities: map[string]float64{domain.ClassNeutral: 1},
		}, nil)

	embedder := mocks.NewMockEmbedder(t)
	embedder.EXPECT().
		EmbedTexts(mock.Anything, mock.Anything).
		Return([][]float32{{1, 0}, {0, 1}}, nil)

	vectors := mocks.NewMockVectorStore(t)
	vectors.EXPECT().
		Fetch(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil)
	vectors.EXPECT().
		Add(mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	repository := mocks.NewMockOfferRepository(t)
	repository.EXPECT().
		HasOfferAnalysis(mock.Anything, "10").
		Return(false, nil)
	repository.EXPECT().
		UpsertOfferAnalysis(mock.Anything, mock.Anything).
		Return(nil)
	repository.EXPECT().
		InsertHistory(mock.Anything, mock.Anything).
		Return(nil)

	cmd := &BulkIngestOffers{
		Ingest: &IngestOffer{
			Keywords:  nlp.NewKeywordExtractor(tagger),
			Sentiment: nlp.NewSentimentScorer(predictor),
			Embedder:  embedder,
			Vectors:   vectors,
			Analyses:  repository,
			History:   repository,
		},
	}

	result, err := cmd.Execute(context.Background(), []domain.Offer{
		{OfferID: "10", UserID: "7", Title: "Bicicleta", Comment: "Impecable"},
		{OfferID: "11", Title: "Sin usuario"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, []string{"10"}, result.ProcessedIDs)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Error, "offer_id and user_id are required")
	assert.Equal(t, BulkStatusPartial, result.Status)
}
