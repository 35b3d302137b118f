package command

import (
	"context"
	"fmt"

	"offernlp/internal/datasources"
	"offernlp/internal/domain"
)

// Batch outcome statuses.
const (
	BulkStatusSuccess = "success"
	BulkStatusPartial = "partial"
)

// BulkError records a single failed item without aborting the batch.
type BulkError struct {
	Item  any    `json:"item"`
	Error string `json:"error"`
}

// BulkResult summarizes a best-effort batch: items are processed
// sequentially and independently, with no atomicity across them.
type BulkResult struct {
	Processed    int         `json:"processed"`
	Inserted     int         `json:"inserted"`
	Failed       int         `json:"failed"`
	ProcessedIDs []string    `json:"processed_ids,omitempty"`
	Errors       []BulkError `json:"errors"`
	Status       string      `json:"status"`
}

func (r *BulkResult) finish() {
	r.Failed = len(r.Errors)
	if r.Failed > 0 {
		r.Status = BulkStatusPartial
	} else {
		r.Status = BulkStatusSuccess
	}
}

// BulkIngestOffers runs the offer ingestion pipeline over a list of
// offers, collecting per-item failures.
type BulkIngestOffers struct {
	Ingest *IngestOffer
}

func (c *BulkIngestOffers) Execute(ctx context.Context, offers []domain.Offer) (BulkResult, error) {
	result := BulkResult{
		Processed: len(offers),
		Errors:    []BulkError{},
	}

	for _, offer := range offers {
		if _, err := c.Ingest.Execute(ctx, offer); err != nil {
			result.Errors = append(result.Errors, BulkError{Item: offer, Error: err.Error()})
			continue
		}
		result.Inserted++
		result.ProcessedIDs = append(result.ProcessedIDs, offer.OfferID)
	}

	result.finish()
	return result, nil
}

// BulkHistoryItem is one consultation to record in a history batch.
type BulkHistoryItem struct {
	OfferID string `json:"offer_id"`
	UserID  string `json:"user_id"`
}

// BulkInsertHistory appends consultation history entries for a list of
// items, collecting per-item failures.
type BulkInsertHistory struct {
	History datasources.HistoryInserter
}

func (c *BulkInsertHistory) Execute(ctx context.Context, items []BulkHistoryItem) (BulkResult, error) {
	result := BulkResult{
		Processed: len(items),
		Errors:    []BulkError{},
	}

	for _, item := range items {
		if item.OfferID == "" || item.UserID == "" {
			result.Errors = append(result.Errors, BulkError{
				Item:  item,
				Error: fmt.Sprintf("%s: offer_id and user_id are required", ErrMissingRequiredField),
			})
			continue
		}

		err := c.History.InsertHistory(ctx, domain.HistoryEntry{
			OfferID: item.OfferID,
			UserID:  item.UserID,
			Type:    domain.HistoryConsultation,
		})
		if err != nil {
			result.Errors = append(result.Errors, BulkError{Item: item, Error: err.Error()})
			continue
		}
		result.Inserted++
	}

	result.finish()
	return result, nil
}
