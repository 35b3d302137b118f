package command

import (
	"errors"
	"fmt"
	"strings"
)

// Validation errors surfaced to callers as client errors.
var (
	ErrEmptyQuery           = errors.New("query must not be empty")
	ErrEmptyComment         = errors.New("comment must not be empty")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrConversationNotFound = errors.New("conversation not found")
)

// Vector ID field suffixes for the two indexed offer fields.
const (
	fieldTitle   = "title"
	fieldComment = "comment"
)

func titleVectorID(offerID string) string {
	return fmt.Sprintf("%s_%s", offerID, fieldTitle)
}

func commentVectorID(offerID string) string {
	return fmt.Sprintf("%s_%s", offerID, fieldComment)
}

// offerIDFromVectorID maps a composite vector ID back to its offer ID,
// preferring the offer_id metadata when the store returned it.
func offerIDFromVectorID(vectorID string, metadata map[string]string) string {
	if id, ok := metadata["offer_id"]; ok && id != "" {
		return id
	}
	if id, ok := strings.CutSuffix(vectorID, "_"+fieldTitle); ok {
		return id
	}
	if id, ok := strings.CutSuffix(vectorID, "_"+fieldComment); ok {
		return id
	}
	return vectorID
}

// similarityFromDistance maps cosine distance in [0, 2] to a similarity
// score in [0, 1]. Both vector store drivers report cosine distance, so
// the mapping holds regardless of driver.
func similarityFromDistance(distance float64) float64 {
	score := 1 - distance/2
	if score < 0 {
		return 0
	}
	return score
}
