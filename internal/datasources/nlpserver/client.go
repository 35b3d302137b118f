package nlpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"offernlp/internal/datasources"
	"offernlp/internal/domain"
)

var _ datasources.ModelRegistry = (*Client)(nil)

// Client talks to the external model server that hosts the embedding,
// sentiment, and part-of-speech models.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a model server client and verifies the server is
// reachable, so that a missing model surfaces as a startup error rather
// than a per-request one.
func NewClient(ctx context.Context, baseURL string) (*Client, error) {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}

	if err := c.ping(ctx); err != nil {
		return nil, fmt.Errorf("checking model server availability: %w", err)
	}

	return c, nil
}

func (c *Client) ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("model server unhealthy (status %d)", resp.StatusCode)
	}
	return nil
}

type embedRequest struct {
	Texts []string `json:"texts"`
}

type embedResponse struct {
	Embeddings [][]float32 `json:"embeddings"`
}

func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	vectors, err := c.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("empty embedding response")
	}
	return vectors[0], nil
}

func (c *Client) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	var result embedResponse
	if err := c.post(ctx, "/embed", embedRequest{Texts: texts}, &result); err != nil {
		return nil, err
	}

	if len(result.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: asked for %d, got %d", len(texts), len(result.Embeddings))
	}

	// All vectors leave this adapter unit-normalized, whatever the model
	// server returned.
	for i := range result.Embeddings {
		normalize(result.Embeddings[i])
	}

	return result.Embeddings, nil
}

type sentimentRequest struct {
	Text string `json:"text"`
}

func (c *Client) PredictSentiment(ctx context.Context, text string) (domain.SentimentPrediction, error) {
	var result domain.SentimentPrediction
	if err := c.post(ctx, "/sentiment", sentimentRequest{Text: text}, &result); err != nil {
		return domain.SentimentPrediction{}, err
	}

	if result.TopClass == "" || len(result.Probabilities) == 0 {
		return domain.SentimentPrediction{}, fmt.Errorf("incomplete sentiment response")
	}

	return result, nil
}

type tagRequest struct {
	Text string `json:"text"`
}

type tagResponse struct {
	Tokens []domain.TaggedToken `json:"tokens"`
}

func (c *Client) TagText(ctx context.Context, text string) ([]domain.TaggedToken, error) {
	var result tagResponse
	if err := c.post(ctx, "/tag", tagRequest{Text: text}, &result); err != nil {
		return nil, err
	}
	return result.Tokens, nil
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("model server error (status %d): %s", resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func normalize(vector []float32) {
	var sumSquares float64
	for _, v := range vector {
		sumSquares += float64(v) * float64(v)
	}
	if sumSquares == 0 {
		return
	}

	norm := float32(math.Sqrt(sumSquares))
	for i := range vector {
		vector[i] /= norm
	}
}
