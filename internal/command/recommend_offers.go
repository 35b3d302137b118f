package command

import (
	"context"
	"fmt"

	"offernlp/internal/datasources"
	"offernlp/internal/domain"
)

// recommendationCandidates is how many neighbors are pulled for the
// profile vector before exclusion and deduplication.
const recommendationCandidates = 10

// RecommendOffers recommends offers to a user by averaging the vectors of
// everything they have published or viewed into a profile vector and
// querying the vector store for its neighbors, excluding offers the user
// has already seen.
type RecommendOffers struct {
	History  datasources.HistoryLister
	Vectors  datasources.VectorStore
	Keywords datasources.KeywordsFetcher
}

func (c *RecommendOffers) Execute(ctx context.Context, userID string) ([]domain.Recommendation, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user_id is required", ErrMissingRequiredField)
	}

	seen, err := c.seenOfferIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	// A user with no history has no profile to average; recommend nothing
	// rather than fail.
	if len(seen) == 0 {
		return []domain.Recommendation{}, nil
	}

	profile, err := c.profileVector(ctx, seen)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return []domain.Recommendation{}, nil
	}

	matches, err := c.Vectors.Query(ctx, datasources.CollectionOffers, profile, recommendationCandidates, nil)
	if err != nil {
		return nil, fmt.Errorf("querying for neighbors: %w", err)
	}

	offerIDs := selectUnseen(matches, seen)
	if len(offerIDs) == 0 {
		return []domain.Recommendation{}, nil
	}

	keywords, err := c.Keywords.FetchOffersKeywords(ctx, offerIDs)
	if err != nil {
		return nil, fmt.Errorf("fetching offer keywords: %w", err)
	}

	recommendations := make([]domain.Recommendation, 0, len(offerIDs))
	for _, offerID := range offerIDs {
		recommendations = append(recommendations, domain.Recommendation{
			OfferID:  offerID,
			Keywords: keywords[offerID],
		})
	}
	return recommendations, nil
}

// seenOfferIDs unions the user's publication and consultation histories.
func (c *RecommendOffers) seenOfferIDs(ctx context.Context, userID string) (map[string]struct{}, error) {
	published, err := c.History.ListUserOfferIDs(ctx, userID, domain.HistoryPublication)
	if err != nil {
		return nil, fmt.Errorf("listing publication history: %w", err)
	}

	consulted, err := c.History.ListUserOfferIDs(ctx, userID, domain.HistoryConsultation)
	if err != nil {
		return nil, fmt.Errorf("listing consultation history: %w", err)
	}

	seen := make(map[string]struct{}, len(published)+len(consulted))
	for _, id := range published {
		seen[id] = struct{}{}
	}
	for _, id := range consulted {
		seen[id] = struct{}{}
	}
	return seen, nil
}

// profileVector averages the title and comment vectors of every seen
// offer, all equally weighted. Offers missing from the vector store are
// skipped; nil is returned when nothing could be fetched.
func (c *RecommendOffers) profileVector(ctx context.Context, seen map[string]struct{}) ([]float32, error) {
	ids := make([]string, 0, len(seen)*2)
	for offerID := range seen {
		ids = append(ids, titleVectorID(offerID), commentVectorID(offerID))
	}

	records, err := c.Vectors.Fetch(ctx, datasources.CollectionOffers, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching history vectors: %w", err)
	}

	vectors := make([][]float32, 0, len(records))
	for _, record := range records {
		if len(record.Values) > 0 {
			vectors = append(vectors, record.Values)
		}
	}
	return averageVectors(vectors), nil
}

// selectUnseen maps neighbor hits back to offer IDs, drops everything the
// user has already seen, and deduplicates keeping first-seen order, which
// is highest-similarity order.
func selectUnseen(matches []datasources.VectorMatch, seen map[string]struct{}) []string {
	included := make(map[string]struct{}, len(matches))
	offerIDs := make([]string, 0, len(matches))
	for _, match := range matches {
		offerID := offerIDFromVectorID(match.ID, match.Metadata)
		if _, wasSeen := seen[offerID]; wasSeen {
			continue
		}
		if _, dup := included[offerID]; dup {
			continue
		}
		included[offerID] = struct{}{}
		offerIDs = append(offerIDs, offerID)
	}
	return offerIDs
}

func averageVectors(vectors [][]float32) []float32 {
	if len(vectors) == 0 {
		return nil
	}

	result := make([]float32, len(vectors[0]))
	for _, vector := range vectors {
		for i, v := range vector {
			result[i] += v
		}
	}

	for i := range result {
		result[i] /= float32(len(vectors))
	}

	return result
}
