package controller

import (
	"net/http"

	"offernlp/internal/command"
)

type ConsultationRegister struct {
	Register *command.RegisterConsultation
}

type consultationRegisterRequest struct {
	OfferID string `json:"offer_id" validate:"required"`
	UserID  string `json:"user_id" validate:"required"`
}

func (c ConsultationRegister) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req consultationRegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := c.Register.Execute(ctx, req.OfferID, req.UserID)
	if err != nil {
		writeCommandError(ctx, w, err, "unable to register consultation")
		return
	}

	writeJSON(ctx, w, http.StatusCreated, result)
}
