package controller

import (
	"net/http"
	"strconv"

	"offernlp/internal/command"
	"offernlp/internal/domain"
)

type Search struct {
	Search *command.SearchOffers
}

type searchResponse struct {
	Query   string                `json:"query"`
	Results []domain.SearchResult `json:"results"`
	Total   int                   `json:"total"`
}

func (c Search) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params := r.URL.Query()

	limit := 0
	if raw := params.Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, http.StatusBadRequest, "n must be an integer")
			return
		}
		limit = parsed
	}

	query := params.Get("query")
	results, err := c.Search.Execute(ctx, command.SearchOffersRequest{
		Query:    query,
		Limit:    limit,
		Category: params.Get("category"),
	})
	if err != nil {
		writeCommandError(ctx, w, err, "unable to search offers")
		return
	}

	writeJSON(ctx, w, http.StatusOK, searchResponse{
		Query:   query,
		Results: results,
		Total:   len(results),
	})
}
