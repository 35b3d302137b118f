package chroma

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"offernlp/internal/datasources"
)

var _ datasources.VectorStore = (*Client)(nil)

// Client speaks the Chroma REST API. Collections are resolved to their
// server-side IDs lazily and cached for the lifetime of the client.
// Chroma reports cosine distance directly, so no score conversion is needed.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu            sync.Mutex
	collectionIDs map[string]string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		collectionIDs: map[string]string{},
	}
}

type collectionRequest struct {
	Name        string         `json:"name"`
	GetOrCreate bool           `json:"get_or_create"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

type collectionResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (c *Client) collectionID(ctx context.Context, name string) (string, error) {
	c.mu.Lock()
	id, ok := c.collectionIDs[name]
	c.mu.Unlock()
	if ok {
		return id, nil
	}

	var result collectionResponse
	err := c.post(ctx, "/api/v1/collections", collectionRequest{
		Name:        name,
		GetOrCreate: true,
		Metadata:    map[string]any{"hnsw:space": "cosine"},
	}, &result)
	if err != nil {
		return "", fmt.Errorf("resolving collection [%s]: %w", name, err)
	}

	c.mu.Lock()
	c.collectionIDs[name] = result.ID
	c.mu.Unlock()

	return result.ID, nil
}

type addRequest struct {
	IDs        []string            `json:"ids"`
	Embeddings [][]float32         `json:"embeddings"`
	Metadatas  []map[string]string `json:"metadatas"`
}

func (c *Client) Add(ctx context.Context, collection string, records []datasources.VectorRecord) error {
	if len(records) == 0 {
		return nil
	}

	collID, err := c.collectionID(ctx, collection)
	if err != nil {
		return err
	}

	req := addRequest{
		IDs:        make([]string, 0, len(records)),
		Embeddings: make([][]float32, 0, len(records)),
		Metadatas:  make([]map[string]string, 0, len(records)),
	}
	for _, record := range records {
		req.IDs = append(req.IDs, record.ID)
		req.Embeddings = append(req.Embeddings, record.Values)
		req.Metadatas = append(req.Metadatas, record.Metadata)
	}

	if err := c.post(ctx, fmt.Sprintf("/api/v1/collections/%s/add", collID), req, nil); err != nil {
		return fmt.Errorf("adding vectors to [%s]: %w", collection, err)
	}
	return nil
}

type queryRequest struct {
	QueryEmbeddings [][]float32    `json:"query_embeddings"`
	NResults        int            `json:"n_results"`
	Where           map[string]any `json:"where,omitempty"`
	Include         []string       `json:"include"`
}

type queryResponse struct {
	IDs       [][]string            `json:"ids"`
	Distances [][]float64           `json:"distances"`
	Metadatas [][]map[string]string `json:"metadatas"`
}

func (c *Client) Query(
	ctx context.Context,
	collection string,
	vector []float32,
	topK int,
	filter map[string]string,
) ([]datasources.VectorMatch, error) {
	collID, err := c.collectionID(ctx, collection)
	if err != nil {
		return nil, err
	}

	var result queryResponse
	err = c.post(ctx, fmt.Sprintf("/api/v1/collections/%s/query", collID), queryRequest{
		QueryEmbeddings: [][]float32{vector},
		NResults:        topK,
		Where:           whereClause(filter),
		Include:         []string{"metadatas", "distances"},
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("querying [%s]: %w", collection, err)
	}

	if len(result.IDs) == 0 {
		return nil, nil
	}

	matches := make([]datasources.VectorMatch, 0, len(result.IDs[0]))
	for i, id := range result.IDs[0] {
		match := datasources.VectorMatch{ID: id}
		if len(result.Distances) > 0 && i < len(result.Distances[0]) {
			match.Distance = result.Distances[0][i]
		}
		if len(result.Metadatas) > 0 && i < len(result.Metadatas[0]) {
			match.Metadata = result.Metadatas[0][i]
		}
		matches = append(matches, match)
	}

	return matches, nil
}

type getRequest struct {
	IDs     []string       `json:"ids,omitempty"`
	Where   map[string]any `json:"where,omitempty"`
	Limit   int            `json:"limit,omitempty"`
	Include []string       `json:"include"`
}

type getResponse struct {
	IDs        []string            `json:"ids"`
	Embeddings [][]float32         `json:"embeddings"`
	Metadatas  []map[string]string `json:"metadatas"`
}

func (c *Client) Fetch(ctx context.Context, collection string, ids []string) ([]datasources.VectorRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return c.get(ctx, collection, getRequest{
		IDs:     ids,
		Include: []string{"embeddings", "metadatas"},
	})
}

func (c *Client) List(
	ctx context.Context,
	collection string,
	filter map[string]string,
	limit int,
) ([]datasources.VectorRecord, error) {
	return c.get(ctx, collection, getRequest{
		Where:   whereClause(filter),
		Limit:   limit,
		Include: []string{"metadatas"},
	})
}

func (c *Client) get(ctx context.Context, collection string, req getRequest) ([]datasources.VectorRecord, error) {
	collID, err := c.collectionID(ctx, collection)
	if err != nil {
		return nil, err
	}

	var result getResponse
	if err := c.post(ctx, fmt.Sprintf("/api/v1/collections/%s/get", collID), req, &result); err != nil {
		return nil, fmt.Errorf("getting vectors from [%s]: %w", collection, err)
	}

	records := make([]datasources.VectorRecord, 0, len(result.IDs))
	for i, id := range result.IDs {
		record := datasources.VectorRecord{ID: id}
		if i < len(result.Embeddings) {
			record.Values = result.Embeddings[i]
		}
		if i < len(result.Metadatas) {
			record.Metadata = result.Metadatas[i]
		}
		records = append(records, record)
	}

	return records, nil
}

type deleteRequest struct {
	IDs []string `json:"ids"`
}

func (c *Client) Delete(ctx context.Context, collection string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	collID, err := c.collectionID(ctx, collection)
	if err != nil {
		return err
	}

	if err := c.post(ctx, fmt.Sprintf("/api/v1/collections/%s/delete", collID), deleteRequest{IDs: ids}, nil); err != nil {
		return fmt.Errorf("deleting vectors from [%s]: %w", collection, err)
	}
	return nil
}

// whereClause builds a Chroma where filter from equality pairs. Multiple
// conditions require an explicit $and.
func whereClause(filter map[string]string) map[string]any {
	if len(filter) == 0 {
		return nil
	}

	if len(filter) == 1 {
		where := make(map[string]any, 1)
		for k, v := range filter {
			where[k] = v
		}
		return where
	}

	conds := make([]map[string]any, 0, len(filter))
	for k, v := range filter {
		conds = append(conds, map[string]any{k: v})
	}
	return map[string]any{"$and": conds}
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

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("chroma API error (status %d): %s", resp.StatusCode, string(respBody))
	}

	if result == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
