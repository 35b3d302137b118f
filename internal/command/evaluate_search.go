package command

import (
	"context"
	"fmt"

	"offernlp/internal/domain"
)

// EvaluateSearch measures ranking quality of the semantic search over a
// labelled set of queries, reporting MRR and NDCG per query and averaged.
type EvaluateSearch struct {
	Search *SearchOffers
}

type EvaluationItem struct {
	Query    string   `json:"query"`
	Relevant []string `json:"relevant"`
}

type QueryEvaluation struct {
	Query    string   `json:"query"`
	Results  []string `json:"results"`
	Relevant []string `json:"relevant"`
	MRR      float64  `json:"mrr"`
	NDCG     float64  `json:"ndcg"`
}

type EvaluationResult struct {
	Queries  []QueryEvaluation `json:"queries"`
	MeanMRR  float64           `json:"mean_mrr"`
	MeanNDCG float64           `json:"mean_ndcg"`
}

func (c *EvaluateSearch) Execute(ctx context.Context, items []EvaluationItem) (EvaluationResult, error) {
	if len(items) == 0 {
		return EvaluationResult{}, fmt.Errorf("%w: evaluation items are required", ErrMissingRequiredField)
	}

	result := EvaluationResult{
		Queries: make([]QueryEvaluation, 0, len(items)),
	}

	var mrrTotal, ndcgTotal float64
	for _, item := range items {
		if item.Query == "" {
			return EvaluationResult{}, fmt.Errorf("%w: every item needs a query", ErrMissingRequiredField)
		}

		searchResults, err := c.Search.Execute(ctx, SearchOffersRequest{
			Query: item.Query,
			Limit: DefaultSearchLimit,
		})
		if err != nil {
			return EvaluationResult{}, fmt.Errorf("searching for [%s]: %w", item.Query, err)
		}

		resultIDs := make([]string, 0, len(searchResults))
		for _, r := range searchResults {
			resultIDs = append(resultIDs, r.OfferID)
		}

		mrr := domain.MeanReciprocalRank(resultIDs, item.Relevant)
		ndcg := domain.NDCG(resultIDs, item.Relevant)
		mrrTotal += mrr
		ndcgTotal += ndcg

		result.Queries = append(result.Queries, QueryEvaluation{
			Query:    item.Query,
			Results:  resultIDs,
			Relevant: item.Relevant,
			MRR:      mrr,
			NDCG:     ndcg,
		})
	}

	count := float64(len(items))
	result.MeanMRR = mrrTotal / count
	result.MeanNDCG = ndcgTotal / count
	return result, nil
}
