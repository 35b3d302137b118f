package datasources

import (
	"context"

	"offernlp/internal/domain"
)

// Embedder embeds text into vectors for similarity search.
// Implementations must return unit-normalized vectors of a fixed dimension.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// SentimentPredictor runs the 3-class sentiment model over a text.
type SentimentPredictor interface {
	PredictSentiment(ctx context.Context, text string) (domain.SentimentPrediction, error)
}

// Tagger runs part-of-speech tagging over a text.
type Tagger interface {
	TagText(ctx context.Context, text string) ([]domain.TaggedToken, error)
}

// ModelRegistry combines all model-backed interfaces. It is constructed once
// at startup and shared across requests.
type ModelRegistry interface {
	Embedder
	SentimentPredictor
	Tagger
}

// NullModelRegistry is a null implementation of ModelRegistry.
type NullModelRegistry struct{}

var _ ModelRegistry = NullModelRegistry{}

func (NullModelRegistry) EmbedText(_ context.Context, _ string) ([]float32, error) {
	return nil, nil
}

func (NullModelRegistry) EmbedTexts(_ context.Context, _ []string) ([][]float32, error) {
	return nil, nil
}

func (NullModelRegistry) PredictSentiment(_ context.Context, _ string) (domain.SentimentPrediction, error) {
	return domain.SentimentPrediction{}, nil
}

func (NullModelRegistry) TagText(_ context.Context, _ string) ([]domain.TaggedToken, error) {
	return nil, nil
}
