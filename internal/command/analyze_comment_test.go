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

func TestAnalyzeComment(t *testing.T) {
	predictor := mocks.NewMockSentimentPredictor(t)
	predictor.EXPECT().
		PredictSentiment(mock.Anything, "Producto en MAL estado").
		Return(domain.SentimentPrediction{
			TopClass: domain.ClassNegative,
			Probabilities: map[string]float64{
				domain.ClassPositive: 0.05,
				domain.ClassNegative: 0.85,
				domain.ClassNeutral:  0.1,
			},
		}, nil)

	cmd := &AnalyzeComment{Sentiment: nlp.NewSentimentScorer(predictor)}

	result, err := cmd.Execute(context.Background(), "Producto en MAL estado")
	require.NoError(t, err)

	assert.Equal(t, "Producto en MAL estado", result.Comment)
	assert.Equal(t, domain.SentimentNegative, result.Sentiment.Label)
	assert.Equal(t, 0.85, result.Sentiment.Confidence)
	assert.Equal(t, -0.8, result.Sentiment.Polarity)
	assert.Equal(t, 0.9, result.Sentiment.Subjectivity)
}

func TestAnalyzeComment_ModelSeesRawText(t *testing.T) {
	// Casing and emoji reach the model untouched; the tweet-trained
	// sentiment model reads both as signal.
	predictor := mocks.NewMockSentimentPredictor(t)
	predictor.EXPECT().
		PredictSentiment(mock.Anything, "Me ENCANTA! 😍👍").
		Return(domain.SentimentPrediction{
			TopClass: domain.ClassPositive,
			Probabilities: map[string]float64{
				domain.ClassPositive: 0.95,
				domain.ClassNegative: 0.02,
				domain.ClassNeutral:  0.03,
			},
		}, nil)

	cmd := &AnalyzeComment{Sentiment: nlp.NewSentimentScorer(predictor)}

	result, err := cmd.Execute(context.Background(), "Me ENCANTA! 😍👍")
	require.NoError(t, err)
	assert.Equal(t, domain.SentimentPositive, result.Sentiment.Label)
}

func TestAnalyzeComment_Blank(t *testing.T) {
	cmd := &AnalyzeComment{}

	for _, comment := range []string{"", "   ", "\t\n"} {
		_, err := cmd.Execute(context.Background(), comment)
		require.ErrorIs(t, err, ErrEmptyComment)
	}
}
