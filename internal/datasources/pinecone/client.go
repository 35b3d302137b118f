package pinecone

import (
	"context"
	"fmt"

	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"

	"offernlp/internal/datasources"
)

var _ datasources.VectorStore = (*Client)(nil)

// Client adapts a Pinecone index to the VectorStore interface. Collections
// map to Pinecone namespaces within a single index.
//
// Pinecone reports cosine similarity s in [-1, 1]; the adapter converts it
// to cosine distance 1 - s so all drivers speak the same convention.
type Client struct {
	pinecone *pinecone.Client
	index    *pinecone.Index
}

func NewClient(ctx context.Context, apiKey, indexName string) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey:     apiKey,
		Headers:    nil,
		Host:       "",
		RestClient: nil,
		SourceTag:  "",
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata for [%s]: %w", indexName, err)
	}

	return &Client{
		pinecone: pc,
		index:    idx,
	}, nil
}

func (c *Client) connect(collection string) (*pinecone.IndexConnection, error) {
	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: collection,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone index connection for [%s]: %w", collection, err)
	}
	return idxConn, nil
}

func (c *Client) Add(ctx context.Context, collection string, records []datasources.VectorRecord) error {
	if len(records) == 0 {
		return nil
	}

	idxConn, err := c.connect(collection)
	if err != nil {
		return err
	}
	defer func() { _ = idxConn.Close() }()

	vectors := make([]*pinecone.Vector, 0, len(records))
	for _, record := range records {
		metadata, err := metadataStruct(record.Metadata)
		if err != nil {
			return fmt.Errorf("building metadata for vector [%s]: %w", record.ID, err)
		}
		vectors = append(vectors, &pinecone.Vector{
			Id:       record.ID,
			Values:   record.Values,
			Metadata: metadata,
		})
	}

	if _, err := idxConn.UpsertVectors(ctx, vectors); err != nil {
		return fmt.Errorf("upserting vectors: %w", err)
	}
	return nil
}

func (c *Client) Query(
	ctx context.Context,
	collection string,
	vector []float32,
	topK int,
	filter map[string]string,
) ([]datasources.VectorMatch, error) {
	idxConn, err := c.connect(collection)
	if err != nil {
		return nil, err
	}
	defer func() { _ = idxConn.Close() }()

	return c.query(ctx, idxConn, vector, topK, filter)
}

func (c *Client) query(
	ctx context.Context,
	idxConn *pinecone.IndexConnection,
	vector []float32,
	topK int,
	filter map[string]string,
) ([]datasources.VectorMatch, error) {
	metadataFilter, err := equalityFilter(filter)
	if err != nil {
		return nil, err
	}

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            uint32(topK),
		MetadataFilter:  metadataFilter,
		IncludeValues:   false,
		IncludeMetadata: true,
		SparseValues:    nil,
	})
	if err != nil {
		return nil, fmt.Errorf("querying for similar vectors: %w", err)
	}

	matches := make([]datasources.VectorMatch, 0, len(resp.Matches))
	for _, scoredVector := range resp.Matches {
		matches = append(matches, datasources.VectorMatch{
			ID:       scoredVector.Vector.Id,
			Distance: 1 - float64(scoredVector.Score),
			Metadata: metadataMap(scoredVector.Vector.Metadata),
		})
	}
	return matches, nil
}

func (c *Client) Fetch(ctx context.Context, collection string, ids []string) ([]datasources.VectorRecord, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	idxConn, err := c.connect(collection)
	if err != nil {
		return nil, err
	}
	defer func() { _ = idxConn.Close() }()

	resp, err := idxConn.FetchVectors(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching vectors: %w", err)
	}

	// Preserve the requested order; absent IDs are skipped.
	records := make([]datasources.VectorRecord, 0, len(resp.Vectors))
	for _, id := range ids {
		vector, ok := resp.Vectors[id]
		if !ok {
			continue
		}
		records = append(records, datasources.VectorRecord{
			ID:       vector.Id,
			Values:   vector.Values,
			Metadata: metadataMap(vector.Metadata),
		})
	}
	return records, nil
}

// List emulates a metadata scan with a filtered probe query, since Pinecone
// has no native get-by-metadata. The probe vector is an arbitrary unit
// vector of the index dimension; ranking is irrelevant for listing.
func (c *Client) List(
	ctx context.Context,
	collection string,
	filter map[string]string,
	limit int,
) ([]datasources.VectorRecord, error) {
	idxConn, err := c.connect(collection)
	if err != nil {
		return nil, err
	}
	defer func() { _ = idxConn.Close() }()

	probe := make([]float32, c.index.Dimension)
	probe[0] = 1

	matches, err := c.query(ctx, idxConn, probe, limit, filter)
	if err != nil {
		return nil, err
	}

	records := make([]datasources.VectorRecord, 0, len(matches))
	for _, match := range matches {
		records = append(records, datasources.VectorRecord{
			ID:       match.ID,
			Metadata: match.Metadata,
		})
	}
	return records, nil
}

func (c *Client) Delete(ctx context.Context, collection string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	idxConn, err := c.connect(collection)
	if err != nil {
		return err
	}
	defer func() { _ = idxConn.Close() }()

	if err := idxConn.DeleteVectorsById(ctx, ids); err != nil {
		return fmt.Errorf("deleting vectors: %w", err)
	}
	return nil
}

func metadataStruct(metadata map[string]string) (*pinecone.Metadata, error) {
	if len(metadata) == 0 {
		return nil, nil
	}

	metadataMap := make(map[string]any, len(metadata))
	for k, v := range metadata {
		metadataMap[k] = v
	}

	s, err := structpb.NewStruct(metadataMap)
	if err != nil {
		return nil, fmt.Errorf("creating metadata struct: %w", err)
	}
	return s, nil
}

func metadataMap(metadata *pinecone.Metadata) map[string]string {
	if metadata == nil {
		return nil
	}

	result := make(map[string]string)
	for k, v := range metadata.AsMap() {
		if s, ok := v.(string); ok {
			result[k] = s
		}
	}
	return result
}

func equalityFilter(filter map[string]string) (*pinecone.MetadataFilter, error) {
	if len(filter) == 0 {
		return nil, nil
	}

	conditions := make(map[string]any, len(filter))
	for k, v := range filter {
		conditions[k] = map[string]any{"$eq": v}
	}

	metadataFilter, err := structpb.NewStruct(conditions)
	if err != nil {
		return nil, fmt.Errorf("creating metadata filter: %w", err)
	}
	return metadataFilter, nil
}
