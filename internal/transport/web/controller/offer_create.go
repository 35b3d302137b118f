package controller

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"offernlp/internal/command"
	"offernlp/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type OfferCreate struct {
	Ingest *command.IngestOffer
}

type offerCreateRequest struct {
	OfferID  string `json:"offer_id" validate:"required"`
	UserID   string `json:"user_id" validate:"required"`
	Title    string `json:"title"`
	Comment  string `json:"comment"`
	Category string `json:"category"`
}

func (c OfferCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req offerCreateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := c.Ingest.Execute(ctx, domain.Offer{
		OfferID:  req.OfferID,
		UserID:   req.UserID,
		Title:    req.Title,
		Comment:  req.Comment,
		Category: req.Category,
	})
	if err != nil {
		writeCommandError(ctx, w, err, "unable to ingest offer")
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	writeJSON(ctx, w, status, result)
}
