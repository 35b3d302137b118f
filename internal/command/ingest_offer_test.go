package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"offernlp/internal/datasources"
	"offernlp/internal/datasources/mocks"
	"offernlp/internal/domain"
	"offernlp/internal/nlp"
)

func bicicletaOffer() domain.Offer {
	return domain.Offer{
		OfferID:  "42",
		UserID:   "7",
		Title:    "Bicicleta de montaña casi nueva",
		Comment:  "Vendo por poco uso, está impecable!",
		Category: "Deportes",
	}
}

func bicicletaTokens() []domain.TaggedToken {
	return []domain.TaggedToken{
		{Text: "bicicleta", POS: "NOUN"},
		{Text: "de", POS: "ADP", IsStopword: true},
		{Text: "montaña", POS: "NOUN"},
		{Text: "casi", POS: "ADV"},
		{Text: "nueva", POS: "ADJ"},
	}
}

func TestIngestOffer_NewOffer(t *testing.T) {
	tagger := mocks.NewMockTagger(t)
	tagger.EXPECT().
		TagText(mock.Anything, "bicicleta de montaña casi nueva").
		Return(bicicletaTokens(), nil)

	predictor := mocks.NewMockSentimentPredictor(t)
	predictor.EXPECT().
		PredictSentiment(mock.Anything, "vendo por poco uso, está impecable!").
		Return(domain.SentimentPrediction{
			TopClass: domain.ClassPositive,
			Probabilities: map[string]float64{
				domain.ClassPositive: 0.91,
				domain.ClassNegative: 0.03,
				domain.ClassNeutral:  0.06,
			},
		}, nil)

	titleVector := []float32{1, 0}
	commentVector := []float32{0, 1}
	embedder := mocks.NewMockEmbedder(t)
	embedder.EXPECT().
		EmbedTexts(mock.Anything, []string{
			"bicicleta de montaña casi nueva",
			"vendo por poco uso, está impecable!",
		}).
		Return([][]float32{titleVector, commentVector}, nil)

	vectors := mocks.NewMockVectorStore(t)
	vectors.EXPECT().
		Fetch(mock.Anything, datasources.CollectionOffers, []string{"42_title", "42_comment"}).
		Return(nil, nil)
	vectors.EXPECT().
		Add(mock.Anything, datasources.CollectionOffers, []datasources.VectorRecord{
			{
				ID:     "42_title",
				Values: titleVector,
				Metadata: map[string]string{
					"offer_id": "42",
					"type":     "title",
					"category": "deportes",
				},
			},
			{
				ID:     "42_comment",
				Values: commentVector,
				Metadata: map[string]string{
					"offer_id": "42",
					"type":     "comment",
					"category": "deportes",
				},
			},
		}).
		Return(nil)

	repository := mocks.NewMockOfferRepository(t)
	repository.EXPECT().
		HasOfferAnalysis(mock.Anything, "42").
		Return(false, nil)
	repository.EXPECT().
		UpsertOfferAnalysis(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, analysis domain.OfferAnalysis) {
			assert.Equal(t, "42", analysis.OfferID)
			assert.Equal(t, []string{"bicicleta", "montaña", "nueva"}, analysis.Keywords)
			assert.Equal(t, domain.SentimentPositive, analysis.Sentiment.Label)
			assert.Equal(t, []string{"42_title", "42_comment"}, analysis.VectorIDs)
		}).
		Return(nil)
	repository.EXPECT().
		InsertHistory(mock.Anything, domain.HistoryEntry{
			OfferID: "42",
			UserID:  "7",
			Type:    domain.HistoryPublication,
		}).
		Return(nil)

	cmd := &IngestOffer{
		Keywords:  nlp.NewKeywordExtractor(tagger),
		Sentiment: nlp.NewSentimentScorer(predictor),
		Embedder:  embedder,
		Vectors:   vectors,
		Analyses:  repository,
		History:   repository,
	}

	result, err := cmd.Execute(context.Background(), bicicletaOffer())
	require.NoError(t, err)

	assert.Equal(t, "42", result.OfferID)
	assert.Equal(t, []string{"bicicleta", "montaña", "nueva"}, result.Keywords)
	assert.Equal(t, domain.SentimentPositive, result.Sentiment.Label)
	assert.Equal(t, 0.91, result.Sentiment.Confidence)
	assert.Equal(t, 0.88, result.Sentiment.Polarity)
	assert.Equal(t, 0.94, result.Sentiment.Subjectivity)
	assert.True(t, result.Created)
}

func TestIngestOffer_ExistingOfferReplacesVectors(t *testing.T) {
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
		Fetch(mock.Anything, datasources.CollectionOffers, []string{"42_title", "42_comment"}).
		Return([]datasources.VectorRecord{
			{ID: "42_title"},
			{ID: "42_comment"},
		}, nil)
	vectors.EXPECT().
		Delete(mock.Anything, datasources.CollectionOffers, []string{"42_title", "42_comment"}).
		Return(nil)
	vectors.EXPECT().
		Add(mock.Anything, datasources.CollectionOffers, mock.Anything).
		Return(nil)

	repository := mocks.NewMockOfferRepository(t)
	repository.EXPECT().
		HasOfferAnalysis(mock.Anything, "42").
		Return(true, nil)
	repository.EXPECT().
		UpsertOfferAnalysis(mock.Anything, mock.Anything).
		Return(nil)

	cmd := &IngestOffer{
		Keywords:  nlp.NewKeywordExtractor(tagger),
		Sentiment: nlp.NewSentimentScorer(predictor),
		Embedder:  embedder,
		Vectors:   vectors,
		Analyses:  repository,
		History:   repository,
	}

	result, err := cmd.Execute(context.Background(), bicicletaOffer())
	require.NoError(t, err)

	// Editing an existing offer must not append a second publication
	// entry; the mock would fail the test on an unexpected InsertHistory.
	assert.False(t, result.Created)
}

func TestIngestOffer_MissingFields(t *testing.T) {
	cmd := &IngestOffer{}

	_, err := cmd.Execute(context.Background(), domain.Offer{OfferID: "42"})
	require.ErrorIs(t, err, ErrMissingRequiredField)

	_, err = cmd.Execute(context.Background(), domain.Offer{UserID: "7"})
	require.ErrorIs(t, err, ErrMissingRequiredField)
}

func TestIngestOffer_EmbeddingFailure(t *testing.T) {
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
		Return(nil, errors.New("model server unavailable"))

	cmd := &IngestOffer{
		Keywords:  nlp.NewKeywordExtractor(tagger),
		Sentiment: nlp.NewSentimentScorer(predictor),
		Embedder:  embedder,
	}

	_, err := cmd.Execute(context.Background(), bicicletaOffer())
	require.ErrorContains(t, err, "model server unavailable")
}
