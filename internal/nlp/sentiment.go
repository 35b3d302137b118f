package nlp

import (
	"context"
	"fmt"
	"math"
	"strings"

	"offernlp/internal/datasources"
	"offernlp/internal/domain"
)

var sentimentLabels = map[string]string{
	domain.ClassPositive: domain.SentimentPositive,
	domain.ClassNegative: domain.SentimentNegative,
	domain.ClassNeutral:  domain.SentimentNeutral,
}

// SentimentScorer derives a sentiment record from the 3-class model.
type SentimentScorer struct {
	predictor datasources.SentimentPredictor
}

func NewSentimentScorer(predictor datasources.SentimentPredictor) *SentimentScorer {
	return &SentimentScorer{predictor: predictor}
}

// Score analyzes a text. Blank text short-circuits to the neutral zero
// record without a model call.
func (s *SentimentScorer) Score(ctx context.Context, text string) (domain.Sentiment, error) {
	if strings.TrimSpace(text) == "" {
		return domain.NeutralSentiment(), nil
	}

	prediction, err := s.predictor.PredictSentiment(ctx, text)
	if err != nil {
		return domain.Sentiment{}, fmt.Errorf("predicting sentiment: %w", err)
	}

	label, ok := sentimentLabels[prediction.TopClass]
	if !ok {
		return domain.Sentiment{}, fmt.Errorf("unknown sentiment class [%s]", prediction.TopClass)
	}

	confidence := 0.0
	for _, p := range prediction.Probabilities {
		if p > confidence {
			confidence = p
		}
	}

	return domain.Sentiment{
		Label:        label,
		Confidence:   round3(confidence),
		Polarity:     round3(prediction.Probabilities[domain.ClassPositive] - prediction.Probabilities[domain.ClassNegative]),
		Subjectivity: round3(1 - prediction.Probabilities[domain.ClassNeutral]),
	}, nil
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
