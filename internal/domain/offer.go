package domain

import "time"

// Offer is a catalog item submitted for indexing.
type Offer struct {
	OfferID  string `json:"offer_id"`
	Title    string `json:"title"`
	Comment  string `json:"comment"`
	Category string `json:"category"`
	UserID   string `json:"user_id"`
}

// Sentiment holds the derived sentiment record of a text.
// Labels follow the model server's Spanish output classes.
type Sentiment struct {
	Label        string  `json:"sentiment"`
	Confidence   float64 `json:"confidence"`
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

const (
	SentimentPositive = "positivo"
	SentimentNegative = "negativo"
	SentimentNeutral  = "neutral"
)

// NeutralSentiment is the record produced for blank text without a model call.
func NeutralSentiment() Sentiment {
	return Sentiment{Label: SentimentNeutral}
}

// OfferAnalysis is the persisted NLP analysis of a single offer.
type OfferAnalysis struct {
	OfferID     string    `json:"offer_id"`
	Keywords    []string  `json:"keywords"`
	Sentiment   Sentiment `json:"sentiment"`
	VectorIDs   []string  `json:"vector_ids"`
	ProcessedAt time.Time `json:"processed_at"`
}

// SearchResult is a single ranked hit of a semantic offer search.
type SearchResult struct {
	OfferID string  `json:"offer_id"`
	Score   float64 `json:"score"`
}

// Recommendation is a recommended offer with its stored keywords attached.
type Recommendation struct {
	OfferID  string   `json:"offer_id"`
	Keywords []string `json:"keywords"`
}
