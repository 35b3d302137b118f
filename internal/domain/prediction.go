package domain

// Sentiment model class identifiers as reported by the model server.
const (
	ClassPositive = "POS"
	ClassNegative = "NEG"
	ClassNeutral  = "NEU"
)

// SentimentPrediction is the raw output of the 3-class sentiment model.
type SentimentPrediction struct {
	TopClass      string             `json:"label"`
	Probabilities map[string]float64 `json:"probabilities"`
}

// TaggedToken is one token of a part-of-speech tagged text.
type TaggedToken struct {
	Text       string `json:"text"`
	POS        string `json:"pos"`
	IsStopword bool   `json:"is_stop"`
}
