package controller

import (
	"net/http"

	"offernlp/internal/command"
)

type Evaluate struct {
	Evaluate *command.EvaluateSearch
}

type evaluateRequest struct {
	Items []command.EvaluationItem `json:"items" validate:"required,min=1"`
}

func (c Evaluate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req evaluateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := c.Evaluate.Execute(ctx, req.Items)
	if err != nil {
		writeCommandError(ctx, w, err, "unable to evaluate search quality")
		return
	}

	writeJSON(ctx, w, http.StatusOK, result)
}
