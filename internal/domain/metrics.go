package domain

import "math"

// MeanReciprocalRank returns 1/rank of the first relevant result, or 0 if
// no relevant result appears.
func MeanReciprocalRank(results, relevant []string) float64 {
	relevantSet := make(map[string]struct{}, len(relevant))
	for _, id := range relevant {
		relevantSet[id] = struct{}{}
	}

	for i, id := range results {
		if _, ok := relevantSet[id]; ok {
			return 1.0 / float64(i+1)
		}
	}
	return 0.0
}

// NDCG computes normalized discounted cumulative gain with binary relevance:
// each relevant result contributes 1/log2(rank+1).
func NDCG(results, relevant []string) float64 {
	dcg := discountedCumulativeGain(results, relevant)

	idealOrder := relevant
	if len(idealOrder) > len(results) {
		idealOrder = idealOrder[:len(results)]
	}
	idcg := discountedCumulativeGain(idealOrder, relevant)

	if idcg == 0 {
		return 0.0
	}
	return dcg / idcg
}

func discountedCumulativeGain(results, relevant []string) float64 {
	relevantSet := make(map[string]struct{}, len(relevant))
	for _, id := range relevant {
		relevantSet[id] = struct{}{}
	}

	dcg := 0.0
	for i, id := range results {
		if _, ok := relevantSet[id]; ok {
			dcg += 1 / math.Log2(float64(i+2))
		}
	}
	return dcg
}
