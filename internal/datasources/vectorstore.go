package datasources

import "context"

// Collection names used in the vector store.
const (
	CollectionOffers   = "offers_embeddings"
	CollectionMessages = "messages_embeddings"
)

// VectorRecord is one stored vector with its metadata.
type VectorRecord struct {
	ID       string
	Values   []float32
	Metadata map[string]string
}

// VectorMatch is one nearest-neighbor hit. Distance is cosine distance in
// [0, 2] regardless of driver; drivers that report similarity convert it.
type VectorMatch struct {
	ID       string
	Distance float64
	Metadata map[string]string
}

// VectorStore is a thin pass-through to an external vector database.
type VectorStore interface {
	Add(ctx context.Context, collection string, records []VectorRecord) error
	Query(ctx context.Context, collection string, vector []float32, topK int, filter map[string]string) ([]VectorMatch, error)
	Fetch(ctx context.Context, collection string, ids []string) ([]VectorRecord, error)
	List(ctx context.Context, collection string, filter map[string]string, limit int) ([]VectorRecord, error)
	Delete(ctx context.Context, collection string, ids []string) error
}

// NullVectorStore is a null implementation of VectorStore.
type NullVectorStore struct{}

var _ VectorStore = NullVectorStore{}

func (NullVectorStore) Add(_ context.Context, _ string, _ []VectorRecord) error {
	return nil
}

func (NullVectorStore) Query(_ context.Context, _ string, _ []float32, _ int, _ map[string]string) ([]VectorMatch, error) {
	return nil, nil
}

func (NullVectorStore) Fetch(_ context.Context, _ string, _ []string) ([]VectorRecord, error) {
	return nil, nil
}

func (NullVectorStore) List(_ context.Context, _ string, _ map[string]string, _ int) ([]VectorRecord, error) {
	return nil, nil
}

func (NullVectorStore) Delete(_ context.Context, _ string, _ []string) error {
	return nil
}
