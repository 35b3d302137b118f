package command

import (
	"context"
	"fmt"
	"strings"

	"offernlp/internal/datasources"
	"offernlp/internal/domain"
	"offernlp/internal/nlp"
)

// IngestOffer builds the searchable representation of a single offer:
// keywords from the title, sentiment of the comment, one embedding per
// cleaned field in the vector store, and the analysis row in the
// relational store. Re-ingesting an existing offer replaces its vector
// pair instead of accumulating stale entries.
type IngestOffer struct {
	Keywords  *nlp.KeywordExtractor
	Sentiment *nlp.SentimentScorer
	Embedder  datasources.Embedder
	Vectors   datasources.VectorStore
	Analyses  interface {
		datasources.AnalysisUpserter
		datasources.AnalysisChecker
	}
	History datasources.HistoryInserter
}

type IngestOfferResult struct {
	OfferID   string           `json:"offer_id"`
	Keywords  []string         `json:"keywords"`
	Sentiment domain.Sentiment `json:"sentiment"`
	Created   bool             `json:"created"`
}

func (c *IngestOffer) Execute(ctx context.Context, offer domain.Offer) (IngestOfferResult, error) {
	if offer.OfferID == "" || offer.UserID == "" {
		return IngestOfferResult{}, fmt.Errorf("%w: offer_id and user_id are required", ErrMissingRequiredField)
	}

	keywords, err := c.Keywords.Extract(ctx, offer.Title)
	if err != nil {
		return IngestOfferResult{}, fmt.Errorf("extracting keywords: %w", err)
	}

	cleanTitle := nlp.CleanText(offer.Title)
	cleanComment := nlp.CleanText(offer.Comment)

	sentiment, err := c.Sentiment.Score(ctx, cleanComment)
	if err != nil {
		return IngestOfferResult{}, fmt.Errorf("scoring sentiment: %w", err)
	}

	embeddings, err := c.Embedder.EmbedTexts(ctx, []string{cleanTitle, cleanComment})
	if err != nil {
		return IngestOfferResult{}, fmt.Errorf("embedding offer fields: %w", err)
	}
	if len(embeddings) != 2 {
		return IngestOfferResult{}, fmt.Errorf("expected 2 embeddings, got %d", len(embeddings))
	}

	// An analysis row marks a previously ingested offer: edits must not
	// produce a second publication history entry.
	existed, err := c.Analyses.HasOfferAnalysis(ctx, offer.OfferID)
	if err != nil {
		return IngestOfferResult{}, fmt.Errorf("checking for existing analysis: %w", err)
	}

	vectorIDs := []string{titleVectorID(offer.OfferID), commentVectorID(offer.OfferID)}

	if err := c.replaceVectorPair(ctx, offer, vectorIDs, embeddings); err != nil {
		return IngestOfferResult{}, err
	}

	err = c.Analyses.UpsertOfferAnalysis(ctx, domain.OfferAnalysis{
		OfferID:   offer.OfferID,
		Keywords:  keywords,
		Sentiment: sentiment,
		VectorIDs: vectorIDs,
	})
	if err != nil {
		return IngestOfferResult{}, fmt.Errorf("upserting offer analysis: %w", err)
	}

	if !existed {
		err = c.History.InsertHistory(ctx, domain.HistoryEntry{
			OfferID: offer.OfferID,
			UserID:  offer.UserID,
			Type:    domain.HistoryPublication,
		})
		if err != nil {
			return IngestOfferResult{}, fmt.Errorf("inserting publication history: %w", err)
		}
	}

	return IngestOfferResult{
		OfferID:   offer.OfferID,
		Keywords:  keywords,
		Sentiment: sentiment,
		Created:   !existed,
	}, nil
}

// replaceVectorPair deletes any previously stored vectors for the offer
// before adding the new pair, so repeated edits leave exactly one
// (title, comment) pair per offer ID.
func (c *IngestOffer) replaceVectorPair(
	ctx context.Context,
	offer domain.Offer,
	vectorIDs []string,
	embeddings [][]float32,
) error {
	existing, err := c.Vectors.Fetch(ctx, datasources.CollectionOffers, vectorIDs)
	if err != nil {
		return fmt.Errorf("checking for existing vectors: %w", err)
	}
	if len(existing) > 0 {
		staleIDs := make([]string, 0, len(existing))
		for _, record := range existing {
			staleIDs = append(staleIDs, record.ID)
		}
		if err := c.Vectors.Delete(ctx, datasources.CollectionOffers, staleIDs); err != nil {
			return fmt.Errorf("deleting stale vectors: %w", err)
		}
	}

	category := strings.ToLower(offer.Category)
	records := []datasources.VectorRecord{
		{
			ID:     vectorIDs[0],
			Values: embeddings[0],
			Metadata: map[string]string{
				"offer_id": offer.OfferID,
				"type":     fieldTitle,
				"category": category,
			},
		},
		{
			ID:     vectorIDs[1],
			Values: embeddings[1],
			Metadata: map[string]string{
				"offer_id": offer.OfferID,
				"type":     fieldComment,
				"category": category,
			},
		},
	}

	if err := c.Vectors.Add(ctx, datasources.CollectionOffers, records); err != nil {
		return fmt.Errorf("adding offer vectors: %w", err)
	}
	return nil
}
