package domain

// HistoryType distinguishes how a user interacted with an offer.
type HistoryType string

const (
	// HistoryPublication records a user publishing an offer.
	HistoryPublication HistoryType = "pub"
	// HistoryConsultation records a user viewing an offer.
	HistoryConsultation HistoryType = "con"
)

// HistoryEntry is one append-only record of a user-offer interaction.
type HistoryEntry struct {
	OfferID string      `json:"offer_id"`
	UserID  string      `json:"user_id"`
	Type    HistoryType `json:"type"`
}
