package controller

import (
	"net/http"

	"offernlp/internal/command"
	"offernlp/internal/domain"
)

type Recommendations struct {
	Recommend *command.RecommendOffers
}

type recommendationsRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

type recommendationsResponse struct {
	UserID          string                  `json:"user_id"`
	Recommendations []domain.Recommendation `json:"recommendations"`
	Total           int                     `json:"total"`
}

func (c Recommendations) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req recommendationsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	recommendations, err := c.Recommend.Execute(ctx, req.UserID)
	if err != nil {
		writeCommandError(ctx, w, err, "unable to recommend offers")
		return
	}

	writeJSON(ctx, w, http.StatusOK, recommendationsResponse{
		UserID:          req.UserID,
		Recommendations: recommendations,
		Total:           len(recommendations),
	})
}
