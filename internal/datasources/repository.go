package datasources

import (
	"context"

	"offernlp/internal/domain"
)

// OfferRepository combines all relational store interfaces.
type OfferRepository interface {
	AnalysisUpserter
	AnalysisChecker
	KeywordsFetcher
	HistoryInserter
	HistoryLister
	OfferOwnerGetter
}

type AnalysisUpserter interface {
	UpsertOfferAnalysis(ctx context.Context, analysis domain.OfferAnalysis) error
}

type AnalysisChecker interface {
	HasOfferAnalysis(ctx context.Context, offerID string) (bool, error)
}

// KeywordsFetcher looks up stored keywords for multiple offers in one query.
type KeywordsFetcher interface {
	FetchOffersKeywords(ctx context.Context, offerIDs []string) (map[string][]string, error)
}

type HistoryInserter interface {
	InsertHistory(ctx context.Context, entry domain.HistoryEntry) error
}

type HistoryLister interface {
	ListUserOfferIDs(ctx context.Context, userID string, historyType domain.HistoryType) ([]string, error)
}

// OfferOwnerGetter resolves the publishing user of an offer from its first
// publication history entry. Returns an empty string when unknown.
type OfferOwnerGetter interface {
	GetOfferOwner(ctx context.Context, offerID string) (string, error)
}
