package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"offernlp/internal/datasources"
	"offernlp/internal/domain"
	"offernlp/internal/nlp"
)

const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
)

// SearchOffers ranks offers by semantic similarity to a free-text query.
// Both indexed fields of an offer compete; an offer's score is the best of
// its title and comment similarities.
type SearchOffers struct {
	Embedder datasources.Embedder
	Vectors  datasources.VectorStore
}

type SearchOffersRequest struct {
	Query    string
	Limit    int
	Category string
}

func (c *SearchOffers) Execute(ctx context.Context, req SearchOffersRequest) ([]domain.SearchResult, error) {
	query := nlp.CleanText(req.Query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	limit := req.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	vector, err := c.Embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	var filter map[string]string
	if req.Category != "" {
		filter = map[string]string{"category": strings.ToLower(req.Category)}
	}

	// Over-fetch so that offers hit on both fields still leave enough
	// distinct offers after consolidation.
	matches, err := c.Vectors.Query(ctx, datasources.CollectionOffers, vector, limit*2, filter)
	if err != nil {
		return nil, fmt.Errorf("querying offer vectors: %w", err)
	}

	return consolidateMatches(matches, limit), nil
}

// consolidateMatches merges per-field hits into one score per offer,
// keeping the maximum across fields, then ranks by score descending with
// offer ID ascending as the stable tie-break.
func consolidateMatches(matches []datasources.VectorMatch, limit int) []domain.SearchResult {
	best := make(map[string]float64, len(matches))
	for _, match := range matches {
		offerID := offerIDFromVectorID(match.ID, match.Metadata)
		score := similarityFromDistance(match.Distance)
		if current, ok := best[offerID]; !ok || score > current {
			best[offerID] = score
		}
	}

	results := make([]domain.SearchResult, 0, len(best))
	for offerID, score := range best {
		results = append(results, domain.SearchResult{OfferID: offerID, Score: score})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].OfferID < results[j].OfferID
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
