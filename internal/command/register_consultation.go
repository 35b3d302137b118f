package command

import (
	"context"
	"fmt"

	"offernlp/internal/datasources"
	"offernlp/internal/domain"
)

// RegisterConsultation records a user viewing an offer. Owners browsing
// their own offers are not counted as consultations.
type RegisterConsultation struct {
	History interface {
		datasources.HistoryInserter
		datasources.OfferOwnerGetter
	}
}

type RegisterConsultationResult struct {
	OfferID string `json:"offer_id"`
	UserID  string `json:"user_id"`
	Skipped bool   `json:"skipped"`
}

func (c *RegisterConsultation) Execute(ctx context.Context, offerID, userID string) (RegisterConsultationResult, error) {
	if offerID == "" || userID == "" {
		return RegisterConsultationResult{}, fmt.Errorf("%w: offer_id and user_id are required", ErrMissingRequiredField)
	}

	owner, err := c.History.GetOfferOwner(ctx, offerID)
	if err != nil {
		return RegisterConsultationResult{}, fmt.Errorf("looking up offer owner: %w", err)
	}
	if owner != "" && owner == userID {
		return RegisterConsultationResult{OfferID: offerID, UserID: userID, Skipped: true}, nil
	}

	err = c.History.InsertHistory(ctx, domain.HistoryEntry{
		OfferID: offerID,
		UserID:  userID,
		Type:    domain.HistoryConsultation,
	})
	if err != nil {
		return RegisterConsultationResult{}, fmt.Errorf("inserting consultation history: %w", err)
	}

	return RegisterConsultationResult{OfferID: offerID, UserID: userID}, nil
}
